package accountcache

import (
	"container/list"
	"fmt"
	"iter"
)

/*
store is the access-ordered, capacity-bounded map from account id to
Account.

================================================================================
LAYOUT
================================================================================
1. Index (map[int64]*list.Element)
   - O(1) lookup from id to its list element.
2. Doubly linked list (*list.List)
   - Front = most recently used, Back = least recently used.
   - Every successful get and every put moves the element to the front.

================================================================================
CONCURRENCY
================================================================================
store has no lock of its own. It is owned by exactly one Cache and every
method is called with the Cache mutex held (write mode for get and put,
read mode for the enumeration helpers).
*/
type store struct {
	data     map[int64]*list.Element
	lru      *list.List
	capacity int
	stats    Stats
}

func newStore(capacity int) (*store, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity)
	}
	return &store{
		data:     make(map[int64]*list.Element, capacity),
		lru:      list.New(),
		capacity: capacity,
	}, nil
}

/*
get returns a copy of the account stored under id.

On a hit the element is promoted to the front and Hits is incremented.
On a miss nothing but the Misses counter changes.
*/
func (s *store) get(id int64) (Account, bool) {
	elem, found := s.data[id]
	if !found {
		s.stats.Misses++
		return Account{}, false
	}
	s.lru.MoveToFront(elem)
	s.stats.Hits++
	return elem.Value.(*item).account, true
}

/*
put inserts or overwrites acc under acc.ID and promotes it.

RETURNS:
- prev, hadPrev       -> the value previously stored under the id
- evicted, didEvict   -> the entry dropped to stay within capacity

Overwriting an existing id never evicts. A new id pushes the live count
to at most capacity+1, so at most one entry (the Back of the list) is
evicted. The new element is at the Front, so it is never its own victim.
*/
func (s *store) put(acc Account) (prev Account, hadPrev bool, evicted Account, didEvict bool) {
	s.stats.Puts++

	if elem, found := s.data[acc.ID]; found {
		it := elem.Value.(*item)
		prev = it.account
		it.account = acc
		s.lru.MoveToFront(elem)
		return prev, true, Account{}, false
	}

	s.data[acc.ID] = s.lru.PushFront(&item{account: acc})
	if s.lru.Len() > s.capacity {
		evicted, didEvict = s.evictOldest()
	}
	return Account{}, false, evicted, didEvict
}

// values returns a snapshot of every stored account, most recently used first.
func (s *store) values() []Account {
	out := make([]Account, 0, s.lru.Len())
	for elem := s.lru.Front(); elem != nil; elem = elem.Next() {
		out = append(out, elem.Value.(*item).account)
	}
	return out
}

// all iterates the stored accounts, most recently used first, without
// allocating a snapshot.
func (s *store) all() iter.Seq[Account] {
	return func(yield func(Account) bool) {
		for elem := s.lru.Front(); elem != nil; elem = elem.Next() {
			if !yield(elem.Value.(*item).account) {
				return
			}
		}
	}
}

func (s *store) hitCount() uint64 {
	return s.stats.Hits
}

func (s *store) len() int {
	return s.lru.Len()
}
