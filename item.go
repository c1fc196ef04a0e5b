package accountcache

/*
item is the payload of a single LRU list element owned by the store.

DESIGN PURPOSE
Each account id maps to a *list.Element whose Value is an *item.
Keeping the account behind a pointer lets an overwrite update the
stored record in place and move the same element to the front, without
allocating a new list node.

The item never leaves the store. Callers only ever see copies of
item.account.
*/
type item struct {
	account Account
}

// id is the key the item is indexed under.
func (i *item) id() int64 {
	return i.account.ID
}
