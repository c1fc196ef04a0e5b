package accountcache

import "iter"

// scanTop3 recomputes the leaderboard from the whole store on every read.
// Writes cost nothing; each Top3 call is one O(n) pass.
type scanTop3 struct{}

func (scanTop3) update(Account, bool, Account, *store) {}

func (scanTop3) evict(Account, *store) {}

func (scanTop3) top(s *store) []Account {
	return selectTop3(s.all())
}

/*
selectTop3 returns the three highest-balance accounts in accounts,
balance descending, in a single pass.

Three running slots hold the best, second and third seen so far. A new
account is inserted at the first slot it strictly beats, shifting the
lower slots down. Equal balances therefore keep encounter order.
*/
func selectTop3(accounts iter.Seq[Account]) []Account {
	var (
		slots [topK]Account
		n     int
	)
	for acc := range accounts {
		switch {
		case n < 1 || acc.Balance > slots[0].Balance:
			slots[2], slots[1], slots[0] = slots[1], slots[0], acc
		case n < 2 || acc.Balance > slots[1].Balance:
			slots[2], slots[1] = slots[1], acc
		case n < 3 || acc.Balance > slots[2].Balance:
			slots[2] = acc
		default:
			continue
		}
		if n < topK {
			n++
		}
	}
	out := make([]Account, n)
	copy(out, slots[:n])
	return out
}
