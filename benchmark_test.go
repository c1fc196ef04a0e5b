package accountcache

import (
	"testing"

	"github.com/rs/zerolog"
)

/*
Benchmarks for the hot paths.

BenchmarkPut* cycle through more ids than the capacity, so most puts
evict and the incremental tracker regularly has to refill a slot. The
scan variant measures the other side of the trade-off: cheap puts,
O(n) Top3.

Run with:
    go test -bench=. -benchmem
*/

func benchmarkCache(b *testing.B, opts ...Option) *Cache {
	b.Helper()
	opts = append([]Option{WithLogger(zerolog.Nop())}, opts...)
	c, err := New(1024, opts...)
	if err != nil {
		b.Fatal(err)
	}
	b.Cleanup(c.Close)
	return c
}

func BenchmarkPutIncremental(b *testing.B) {
	c := benchmarkCache(b)
	for i := 0; i < b.N; i++ {
		c.Put(Account{ID: int64(i % 4096), Balance: int64(i * 7919 % 100000)})
	}
}

func BenchmarkPutScan(b *testing.B) {
	c := benchmarkCache(b, WithScanStrategy())
	for i := 0; i < b.N; i++ {
		c.Put(Account{ID: int64(i % 4096), Balance: int64(i * 7919 % 100000)})
	}
}

func BenchmarkGet(b *testing.B) {
	c := benchmarkCache(b)
	for i := 0; i < 1024; i++ {
		c.Put(Account{ID: int64(i), Balance: int64(i)})
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Get(int64(i % 1024))
	}
}

func BenchmarkTop3Incremental(b *testing.B) {
	c := benchmarkCache(b)
	for i := 0; i < 1024; i++ {
		c.Put(Account{ID: int64(i), Balance: int64(i)})
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Top3()
	}
}

func BenchmarkTop3Scan(b *testing.B) {
	c := benchmarkCache(b, WithScanStrategy())
	for i := 0; i < 1024; i++ {
		c.Put(Account{ID: int64(i), Balance: int64(i)})
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Top3()
	}
}

func BenchmarkParallelPutGet(b *testing.B) {
	c := benchmarkCache(b)
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			id := int64(i % 2048)
			c.Put(Account{ID: id, Balance: int64(i)})
			c.Get(id)
			i++
		}
	})
}
