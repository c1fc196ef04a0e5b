package cmd

import (
	"errors"
	"fmt"
	"time"
)

const (
	strategyIncremental = "incremental"
	strategyScan        = "scan"
)

// Config holds the workload settings bound to the command-line flags.
type Config struct {
	Capacity    int
	Accounts    int
	Workers     int
	Ops         int
	Seed        uint64
	Strategy    string
	MetricsAddr string
	Linger      time.Duration
	LogLevel    string
}

func defaultConfig() *Config {
	return &Config{
		Capacity: 1000,
		Accounts: 5000,
		Workers:  8,
		Ops:      10000,
		Seed:     1,
		Strategy: strategyIncremental,
		LogLevel: "info",
	}
}

// Validate rejects settings the workload cannot run with. Capacity is left
// to the cache itself.
func (c *Config) Validate() error {
	if c.Accounts < 1 {
		return errors.New("accounts must be at least 1")
	}
	if c.Workers < 1 {
		return errors.New("workers must be at least 1")
	}
	if c.Ops < 0 {
		return errors.New("ops must not be negative")
	}
	switch c.Strategy {
	case strategyIncremental, strategyScan:
	default:
		return fmt.Errorf("unknown strategy %q", c.Strategy)
	}
	return nil
}
