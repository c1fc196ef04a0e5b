package accountcache

import "fmt"

/*
Account is the record stored in the cache.

It is a plain value type: two int64 fields, compared with ==.
Every Account handed out by the cache (Get, Top3, Accounts, listener
notifications) is a copy, so callers can never reach into the cache's
own storage through an alias.
*/
type Account struct {
	ID      int64
	Balance int64
}

// String implements fmt.Stringer.
func (a Account) String() string {
	return fmt.Sprintf("Account{ID: %d, Balance: %d}", a.ID, a.Balance)
}
