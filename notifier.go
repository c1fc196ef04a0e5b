package accountcache

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"go.uber.org/atomic"
)

// Listener receives a copy of an account whose stored value changed.
type Listener func(Account)

type notification struct {
	listener Listener
	account  Account
}

/*
notifier delivers account update notifications on a background goroutine.

================================================================================
EXECUTION MODEL
================================================================================
- Put enqueues (listener, account) after releasing the cache lock.
- The queue is an unbounded FIFO slice guarded by its own mutex, so a slow
  listener grows the queue instead of blocking Put.
- A single dispatcher goroutine drains the queue. It is started by the
  first Subscribe, so caches nobody listens to never spawn it.
- wake has capacity 1; enqueue does a non-blocking send, and the
  dispatcher always drains everything queued after it wakes, so no
  notification is left behind.

================================================================================
FAILURE ISOLATION
================================================================================
A panicking listener is recovered, logged and counted. The notification
is not retried and the dispatcher keeps running.

================================================================================
SHUTDOWN
================================================================================
stop marks the queue closed, signals the dispatcher, and waits for it to
deliver whatever was queued before returning. Later enqueues are dropped.
stop is idempotent.
*/
type notifier struct {
	mu      sync.Mutex
	queue   []notification
	started bool
	closed  bool

	wake     chan struct{}
	stopChan chan struct{}
	done     chan struct{}
	stopOnce sync.Once

	delivered *atomic.Uint64
	failed    *atomic.Uint64

	logger  zerolog.Logger
	metrics *Metrics
}

func newNotifier(logger zerolog.Logger, metrics *Metrics) *notifier {
	return &notifier{
		wake:      make(chan struct{}, 1),
		stopChan:  make(chan struct{}),
		done:      make(chan struct{}),
		delivered: atomic.NewUint64(0),
		failed:    atomic.NewUint64(0),
		logger:    logger,
		metrics:   metrics,
	}
}

func (n *notifier) start() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.started || n.closed {
		return
	}
	n.started = true
	go n.run()
}

// enqueue reports whether the notification was accepted.
func (n *notifier) enqueue(l Listener, acc Account) bool {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return false
	}
	n.queue = append(n.queue, notification{listener: l, account: acc})
	n.mu.Unlock()

	select {
	case n.wake <- struct{}{}:
	default:
	}
	return true
}

func (n *notifier) run() {
	defer close(n.done)
	for {
		select {
		case <-n.wake:
			n.drain()
		case <-n.stopChan:
			n.drain()
			return
		}
	}
}

func (n *notifier) drain() {
	for {
		n.mu.Lock()
		batch := n.queue
		n.queue = nil
		n.mu.Unlock()

		if len(batch) == 0 {
			return
		}
		for _, ev := range batch {
			n.deliver(ev)
		}
	}
}

func (n *notifier) deliver(ev notification) {
	defer func() {
		if r := recover(); r != nil {
			n.failed.Inc()
			n.metrics.RecordNotification(false)
			n.logger.Error().
				Int64("id", ev.account.ID).
				Int64("balance", ev.account.Balance).
				Str("panic", fmt.Sprint(r)).
				Msg("account update listener panicked")
		}
	}()

	ev.listener(ev.account)
	n.delivered.Inc()
	n.metrics.RecordNotification(true)
}

func (n *notifier) stop() {
	n.stopOnce.Do(func() {
		n.mu.Lock()
		n.closed = true
		started := n.started
		n.mu.Unlock()

		if !started {
			return
		}
		close(n.stopChan)
		<-n.done
	})
}
