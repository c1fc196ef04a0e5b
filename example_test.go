package accountcache_test

import (
	"fmt"

	"github.com/rs/zerolog"

	accountcache "github.com/kongminh/auroratest"
)

func Example() {
	c, err := accountcache.New(5, accountcache.WithLogger(zerolog.Nop()))
	if err != nil {
		panic(err)
	}
	c.Subscribe(func(acc accountcache.Account) {
		fmt.Println("updated:", acc)
	})

	for id := int64(1); id <= 5; id++ {
		c.Put(accountcache.Account{ID: id, Balance: id * 1000})
	}
	c.Put(accountcache.Account{ID: 1, Balance: 2000})
	c.Get(1)
	c.Get(999)

	c.Close()
	fmt.Println(c.Top3())
	fmt.Println("hits:", c.HitCount())
	// Output:
	// updated: Account{ID: 1, Balance: 2000}
	// [Account{ID: 5, Balance: 5000} Account{ID: 4, Balance: 4000} Account{ID: 3, Balance: 3000}]
	// hits: 1
}
