package accountcache

import "github.com/rs/zerolog"

/*
Option configures a Cache at construction time.

New applies options in order before the cache is returned:

    c, err := accountcache.New(1000,
        accountcache.WithLogger(logger),
        accountcache.WithMetrics(accountcache.NewMetrics("bank", prometheus.DefaultRegisterer)),
    )

Capacity stays a positional argument because it is mandatory and
validated; everything optional goes through an Option.
*/
type Option func(*Cache)

// WithLogger replaces the global zerolog logger used by default.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Cache) {
		c.logger = logger
	}
}

// WithMetrics reports cache activity to m. A nil m disables metrics.
func WithMetrics(m *Metrics) Option {
	return func(c *Cache) {
		c.metrics = m
	}
}

/*
WithScanStrategy switches the top-3 view from incremental maintenance to
a full scan of the store on every Top3 call.

TRADE-OFF
Incremental (default):
    - Put pays a bounded update, plus an O(n) scan only when a leader
      drops out of the top 3 or is evicted.
    - Top3 is a copy of three elements.
Scan:
    - Put pays nothing for the view.
    - Top3 is an O(n) pass under the read lock.

Both produce the same balances for the same store contents.
*/
func WithScanStrategy() Option {
	return func(c *Cache) {
		c.tracker = scanTop3{}
	}
}
