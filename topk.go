package accountcache

import (
	"cmp"
	"slices"
)

// topK is the size of the balance leaderboard kept by the cache.
const topK = 3

/*
topKTracker maintains the top-3-by-balance view of a store.

The Cache calls update and then evict (if the put evicted something)
after the store has already applied the put, with the write lock held.
top is called under the read lock and must not mutate the store.
*/
type topKTracker interface {
	update(prev Account, hadPrev bool, updated Account, s *store)
	evict(evicted Account, s *store)
	top(s *store) []Account
}

/*
incrementalTop3 keeps the current leaders in a sorted slice and adjusts it
per write instead of rescanning the store.

================================================================================
INVARIANT
================================================================================
After every update/evict pair:
- tracked holds min(3, store.len()) accounts, sorted by balance descending.
- every untracked store entry has a balance <= the smallest tracked one.
- when tracked has fewer than 3 members, it holds every store entry.

================================================================================
ALGORITHM
================================================================================
Fewer than 3 tracked:
    drop prev if tracked, append updated.
Exactly 3 tracked:
    prev absent or untracked:
        admit updated only if it beats the current minimum, replacing it.
    prev tracked:
        updated >= prev or >= minimum -> replace prev in place.
        otherwise                      -> replace prev by the best
                                          untracked entry (a full scan,
                                          which also sees updated).
Eviction of a tracked account frees a slot, refilled by the best
untracked entry.

The O(n) scan only happens when a leader drops out or is evicted.
Membership is by value: the store never holds two accounts with the same
id, so (id, balance) identifies exactly one tracked slot.
*/
type incrementalTop3 struct {
	tracked []Account
}

func newIncrementalTop3() *incrementalTop3 {
	return &incrementalTop3{tracked: make([]Account, 0, topK)}
}

func (t *incrementalTop3) update(prev Account, hadPrev bool, updated Account, s *store) {
	defer t.sort()

	if len(t.tracked) < topK {
		if hadPrev {
			t.remove(prev)
		}
		t.tracked = append(t.tracked, updated)
		return
	}

	last := len(t.tracked) - 1
	minBalance := t.tracked[last].Balance
	idx := -1
	if hadPrev {
		idx = t.indexOf(prev)
	}

	switch {
	case idx < 0:
		if updated.Balance > minBalance {
			t.tracked[last] = updated
		}
	case updated.Balance >= prev.Balance || updated.Balance >= minBalance:
		t.tracked[idx] = updated
	default:
		if candidate, ok := t.bestUntracked(s); ok {
			t.tracked[idx] = candidate
		}
	}
}

func (t *incrementalTop3) evict(evicted Account, s *store) {
	if !t.remove(evicted) {
		return
	}
	if candidate, ok := t.bestUntracked(s); ok {
		t.tracked = append(t.tracked, candidate)
	}
	t.sort()
}

func (t *incrementalTop3) top(*store) []Account {
	out := make([]Account, len(t.tracked))
	copy(out, t.tracked)
	return out
}

// bestUntracked returns the highest-balance store entry not currently
// tracked. Ties keep the first one encountered.
func (t *incrementalTop3) bestUntracked(s *store) (Account, bool) {
	var (
		best  Account
		found bool
	)
	for acc := range s.all() {
		if t.indexOf(acc) >= 0 {
			continue
		}
		if !found || acc.Balance > best.Balance {
			best, found = acc, true
		}
	}
	return best, found
}

func (t *incrementalTop3) indexOf(acc Account) int {
	return slices.Index(t.tracked, acc)
}

func (t *incrementalTop3) remove(acc Account) bool {
	idx := t.indexOf(acc)
	if idx < 0 {
		return false
	}
	t.tracked = slices.Delete(t.tracked, idx, idx+1)
	return true
}

func (t *incrementalTop3) sort() {
	slices.SortStableFunc(t.tracked, byBalanceDesc)
}

func byBalanceDesc(a, b Account) int {
	return cmp.Compare(b.Balance, a.Balance)
}
