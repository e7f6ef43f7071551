package wagerbook

import (
	"fmt"
	"iter"
	"slices"
)

// Ledger is the append-only (with explicit delete) collection of bet records
// for one session. Bets are kept in entry order, which is not necessarily
// date order; consumers that need date order sort for themselves.
//
// The ledger is owned by its caller and passed explicitly into every
// operation; there is no ambient global state. All aggregates are derived by
// recomputation from a snapshot, never tracked incrementally, so a remove
// reverses exactly the contributions of the removed bet.
type Ledger struct {
	bets []Bet
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{bets: make([]Bet, 0)}
}

// Add validates the bet and appends it. For a closed bet whose payout/profit
// were not supplied by ingestion, they are derived from the odds. On any
// violation it returns a *ValidationError and the ledger is unchanged.
func (l *Ledger) Add(b Bet) error {
	if b.Amount.IsNegative() {
		return &ValidationError{Reason: fmt.Sprintf("stake must be >= 0, got %s", b.Amount)}
	}
	if err := b.Odds.Validate(); err != nil {
		return &ValidationError{Reason: "odds out of domain", Err: err}
	}
	switch b.Status {
	case Open:
		if b.Result != Pending {
			return &ValidationError{Reason: fmt.Sprintf("an open bet must be PENDING, got %s", b.Result)}
		}
		if !b.Payout.IsZero() || !b.Profit.IsZero() {
			return &ValidationError{Reason: "an open bet cannot carry a payout or profit"}
		}
	case Closed:
		if b.Result == Pending {
			return &ValidationError{Reason: "a closed bet must have a WIN or LOSS result"}
		}
		switch {
		case b.Result == Loss:
			// A loss is always fully determined by the stake.
			if err := b.settle(); err != nil {
				return &ValidationError{Reason: "cannot settle bet", Err: err}
			}
		case b.Payout.IsZero() && b.Profit.IsZero():
			// Payout not supplied by ingestion: derive it.
			if err := b.settle(); err != nil {
				return &ValidationError{Reason: "cannot settle bet", Err: err}
			}
		case !b.Payout.EqualRounded(b.Amount.Add(b.Profit)):
			// Supplied values may carry a profit the odds would not price
			// (settlement imports), but payout = stake + profit always holds.
			return &ValidationError{Reason: fmt.Sprintf(
				"a winning bet must pay stake plus profit, got payout %s for stake %s and profit %s",
				b.Payout, b.Amount, b.Profit)}
		}
	default:
		return &ValidationError{Reason: fmt.Sprintf("unknown status %d", b.Status)}
	}
	l.bets = append(l.bets, b)
	return nil
}

// Remove deletes the bet with the given id. It returns a *NotFoundError when
// the id is absent, leaving the ledger unchanged.
func (l *Ledger) Remove(id string) error {
	for i, b := range l.bets {
		if b.ID == id {
			l.bets = slices.Delete(l.bets, i, i+1)
			return nil
		}
	}
	return &NotFoundError{ID: id}
}

// Find returns the bet with the given id, or false.
func (l *Ledger) Find(id string) (Bet, bool) {
	for _, b := range l.bets {
		if b.ID == id {
			return b, true
		}
	}
	return Bet{}, false
}

// Snapshot returns a copy of the current records for read-only use by the
// aggregator and summary metrics, so observed aggregates never reflect a
// ledger mutated mid-computation.
func (l *Ledger) Snapshot() []Bet {
	return slices.Clone(l.bets)
}

// Reset clears all records unconditionally. It is idempotent.
func (l *Ledger) Reset() {
	l.bets = l.bets[:0]
}

// Len returns the number of recorded bets.
func (l *Ledger) Len() int { return len(l.bets) }

// Bets returns an iterator that yields each bet in entry order. With no
// filter every bet is yielded; with filters, a bet passing any filter is.
func (l *Ledger) Bets(filters ...func(Bet) bool) iter.Seq2[int, Bet] {
	return func(yield func(int, Bet) bool) {
		for i, b := range l.bets {
			accept := len(filters) == 0
			for _, filter := range filters {
				if filter(b) {
					accept = true
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(i, b) {
				return
			}
		}
	}
}

// ByStatus returns a predicate that filters bets by status.
func ByStatus(s BetStatus) func(Bet) bool {
	return func(b Bet) bool { return b.Status == s }
}

// ByResult returns a predicate that filters bets by result.
func ByResult(r BetResult) func(Bet) bool {
	return func(b Bet) bool { return b.Result == r }
}

// OldestBetDate returns the earliest wager date in the ledger, or the zero
// date when the ledger is empty.
func (l *Ledger) OldestBetDate() Date {
	var oldest Date
	for _, b := range l.bets {
		if oldest.IsZero() || b.Date.Before(oldest) {
			oldest = b.Date
		}
	}
	return oldest
}
