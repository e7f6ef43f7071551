// Package wagerbook is a personal wagering ledger: it records individual
// bets (stake, American odds, outcome, date), derives realized and projected
// profit, and folds the ledger into daily cumulative performance series and
// summary metrics.
//
// The ledger is in-memory and scoped to one session. Every aggregate is
// recomputed from a snapshot on demand; nothing is tracked incrementally.
package wagerbook
