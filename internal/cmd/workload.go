package cmd

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"go.uber.org/atomic"

	accountcache "github.com/kongminh/auroratest"
)

// maxBalance bounds the random balances written by the workload.
const maxBalance = 1_000_000

// runWorkload drives cfg.Workers goroutines of random Get/Put calls against
// a fresh cache and writes a summary to out.
func runWorkload(ctx context.Context, cfg *Config, out io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	opts := []accountcache.Option{
		accountcache.WithLogger(log.Logger),
		accountcache.WithMetrics(accountcache.NewMetrics("accountcache", reg)),
	}
	if cfg.Strategy == strategyScan {
		opts = append(opts, accountcache.WithScanStrategy())
	}

	cache, err := accountcache.New(cfg.Capacity, opts...)
	if err != nil {
		return fmt.Errorf("create cache: %w", err)
	}
	defer cache.Close()

	if cfg.MetricsAddr != "" {
		srv := newMetricsServer(cfg.MetricsAddr, reg)
		srv.StartAsync()
		defer srv.Stop()
		log.Info().Str("addr", cfg.MetricsAddr).Msg("metrics server starting")
	}

	updates := atomic.NewUint64(0)
	cache.Subscribe(func(acc accountcache.Account) {
		updates.Inc()
		log.Trace().Int64("id", acc.ID).Int64("balance", acc.Balance).Msg("account updated")
	})

	log.Info().
		Int("capacity", cfg.Capacity).
		Int("accounts", cfg.Accounts).
		Int("workers", cfg.Workers).
		Int("ops", cfg.Ops).
		Str("strategy", cfg.Strategy).
		Msg("starting workload")

	start := time.Now()
	var wg sync.WaitGroup
	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			rng := rand.New(rand.NewPCG(cfg.Seed, uint64(worker)))
			for i := 0; i < cfg.Ops; i++ {
				if ctx.Err() != nil {
					return
				}
				id := rng.Int64N(int64(cfg.Accounts))
				if rng.IntN(2) == 0 {
					cache.Get(id)
					continue
				}
				cache.Put(accountcache.Account{ID: id, Balance: rng.Int64N(maxBalance)})
			}
		}(w)
	}
	wg.Wait()
	// Drain pending notifications so the counters below are final.
	cache.Close()
	elapsed := time.Since(start)

	st := cache.Stats()
	log.Info().
		Dur("elapsed", elapsed).
		Uint64("hits", st.Hits).
		Uint64("misses", st.Misses).
		Uint64("evictions", st.Evictions).
		Uint64("notifications", updates.Load()).
		Msg("workload finished")

	writeSummary(out, cache, st)

	if cfg.MetricsAddr != "" && cfg.Linger > 0 {
		select {
		case <-time.After(cfg.Linger):
		case <-ctx.Done():
		}
	}
	return ctx.Err()
}

func writeSummary(out io.Writer, cache *accountcache.Cache, st accountcache.Stats) {
	fmt.Fprintln(out, "top 3 accounts by balance:")
	for i, acc := range cache.Top3() {
		fmt.Fprintf(out, "  %d. id=%d balance=%d\n", i+1, acc.ID, acc.Balance)
	}
	fmt.Fprintf(out, "entries: %d/%d\n", cache.Len(), cache.Cap())
	fmt.Fprintf(out, "hit count: %d\n", cache.HitCount())
	fmt.Fprintf(out, "hit rate: %.2f%%\n", st.HitRate()*100)
	fmt.Fprintf(out, "puts: %d evictions: %d\n", st.Puts, st.Evictions)
	fmt.Fprintf(out, "notifications: %d failed: %d\n", st.Notifications, st.ListenerFailures)
}
