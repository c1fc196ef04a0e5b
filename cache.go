/*
Package accountcache is an in-memory, capacity-bounded cache of account
records with LRU eviction, a live top-3-by-balance view and asynchronous
change notifications.
*/
package accountcache

import (
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

/*
Cache is a thread-safe cache of Account records keyed by account id.

================================================================================
ARCHITECTURAL OVERVIEW
================================================================================
Cache composes three parts:

1. store (store.go)
   - map[int64]*list.Element + container/list in access order.
   - Least recently used entry is evicted once capacity is exceeded.
   - Owns the hit/miss/put/eviction counters.

2. topKTracker (topk.go, scan.go)
   - Keeps the 3 highest-balance accounts.
   - Incremental by default, full scan with WithScanStrategy.

3. notifier (notifier.go)
   - Background dispatcher for the subscribed Listener.

================================================================================
CONCURRENCY MODEL
================================================================================
A single sync.RWMutex guards store, tracker, counters and the listener
reference as one unit.

- Put, Subscribe and Get take Lock().
  Get is a write: a hit promotes the key in the LRU list and bumps the
  hit counter.
- Top3, HitCount, Len, Stats and Accounts take RLock().

No operation blocks on anything but the mutex, and the mutex is only held
for bounded work: one map/list operation, the tracker update, and at
worst one O(n) pass over at most capacity entries.

================================================================================
NOTIFICATION CONTRACT
================================================================================
Put notifies the listener when it overwrites an existing id with a
different value. New ids and identical overwrites never notify.

Delivery is asynchronous. The listener in effect at Put time and a copy
of the new account are queued after the lock is released and run on the
dispatcher goroutine, so:
- a slow listener never blocks the cache,
- the listener may see a cache state newer than the one it reports,
- notifications from concurrent Puts may arrive in any order; Puts from
  one goroutine arrive in the order they were made.
A panicking listener is recovered and logged; Put never sees it.
*/
type Cache struct {
	mu       sync.RWMutex
	store    *store
	tracker  topKTracker
	listener Listener

	notifier *notifier
	logger   zerolog.Logger
	metrics  *Metrics
}

/*
New creates a Cache holding at most capacity accounts.

Capacity below 1 is rejected with ErrInvalidCapacity and no Cache is
returned. Options are applied in order; see options.go.
*/
func New(capacity int, opts ...Option) (*Cache, error) {
	s, err := newStore(capacity)
	if err != nil {
		return nil, err
	}

	c := &Cache{
		store:  s,
		logger: log.Logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.tracker == nil {
		c.tracker = newIncrementalTop3()
	}
	c.notifier = newNotifier(c.logger, c.metrics)

	c.logger.Debug().
		Int("capacity", capacity).
		Str("strategy", strategyName(c.tracker)).
		Msg("account cache created")
	return c, nil
}

// Get returns a copy of the account stored under id.
// A hit promotes the id to most recently used and counts towards HitCount.
func (c *Cache) Get(id int64) (Account, bool) {
	c.mu.Lock()
	acc, ok := c.store.get(id)
	c.mu.Unlock()

	c.metrics.RecordGet(ok)
	return acc, ok
}

/*
Put stores a copy of acc, promoting its id to most recently used.

FLOW (under Lock):
1. store.put: insert or overwrite, evict the LRU entry if over capacity.
2. tracker.update with the previous and new value.
3. tracker.evict with the evicted account, if any.
4. capture the current listener.

After unlocking, the listener is queued if the id existed before and its
value changed.
*/
func (c *Cache) Put(acc Account) {
	c.mu.Lock()
	prev, hadPrev, evicted, didEvict := c.store.put(acc)
	c.tracker.update(prev, hadPrev, acc, c.store)
	if didEvict {
		c.tracker.evict(evicted, c.store)
	}
	listener := c.listener
	size := c.store.len()
	c.mu.Unlock()

	c.metrics.RecordPut(didEvict, size)
	if didEvict {
		c.logger.Debug().Int64("id", evicted.ID).Msg("account evicted")
	}
	if hadPrev && prev != acc && listener != nil {
		c.notifier.enqueue(listener, acc)
	}
}

// Top3 returns up to three accounts with the highest balances, balance
// descending. The slice is a fresh copy on every call.
func (c *Cache) Top3() []Account {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.tracker.top(c.store)
}

// HitCount returns the number of Get calls that found their account.
func (c *Cache) HitCount() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.store.hitCount()
}

/*
Subscribe registers l as the update listener, replacing any previous one.
Subscribe(nil) stops notifications for subsequent Puts; already queued
notifications are still delivered to the listener they were queued with.
*/
func (c *Cache) Subscribe(l Listener) {
	if l != nil {
		c.notifier.start()
	}
	c.mu.Lock()
	c.listener = l
	c.mu.Unlock()
}

// Len returns the number of accounts currently held.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.store.len()
}

// Cap returns the capacity the cache was created with.
func (c *Cache) Cap() int {
	return c.store.capacity
}

// Accounts returns a snapshot of every cached account, most recently used
// first. Reading it does not promote anything.
func (c *Cache) Accounts() []Account {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.store.values()
}

// Stats returns a snapshot of the cache counters.
func (c *Cache) Stats() Stats {
	c.mu.RLock()
	st := c.store.stats
	c.mu.RUnlock()

	st.Notifications = c.notifier.delivered.Load()
	st.ListenerFailures = c.notifier.failed.Load()
	return st
}

/*
Close stops the notification dispatcher after delivering every
notification already queued. The cache stays usable afterwards but no
further notifications are sent. Close is safe to call more than once.
*/
func (c *Cache) Close() {
	c.notifier.stop()
}

func strategyName(t topKTracker) string {
	if _, ok := t.(scanTop3); ok {
		return "scan"
	}
	return "incremental"
}
