package main

import (
	"os"

	"github.com/kongminh/auroratest/internal/cmd"
)

func main() {
	if err := cmd.NewAccountCacheCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
