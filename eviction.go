package accountcache

import "container/list"

func (s *store) evictOldest() (Account, bool) {
	elem := s.lru.Back()
	if elem == nil {
		return Account{}, false
	}
	acc := s.removeElement(elem)
	s.stats.Evictions++
	return acc, true
}

func (s *store) removeElement(e *list.Element) Account {
	s.lru.Remove(e)
	it := e.Value.(*item)
	delete(s.data, it.id())
	return it.account
}
