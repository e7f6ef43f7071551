package wagerbook

import (
	"fmt"

	"github.com/google/uuid"
)

// BetStatus classifies a bet as still open or settled.
type BetStatus int

const (
	// Open is a bet with no settled outcome yet. It contributes to
	// potential metrics, never to realized ones.
	Open BetStatus = iota
	// Closed is a settled bet with a realized payout and profit.
	Closed
)

func (s BetStatus) String() string {
	switch s {
	case Open:
		return "open"
	case Closed:
		return "closed"
	default:
		return "unknown"
	}
}

// ParseBetStatus parses a string into a BetStatus.
func ParseBetStatus(s string) (BetStatus, error) {
	switch s {
	case "open":
		return Open, nil
	case "closed":
		return Closed, nil
	default:
		return 0, fmt.Errorf("unknown bet status: %q", s)
	}
}

// BetResult is the settled outcome of a bet. Pending is only valid while the
// bet is open.
type BetResult int

const (
	Pending BetResult = iota
	Win
	Loss
)

func (r BetResult) String() string {
	switch r {
	case Pending:
		return "PENDING"
	case Win:
		return "WIN"
	case Loss:
		return "LOSS"
	default:
		return "unknown"
	}
}

// ParseBetResult parses a result string, case sensitive on the canonical
// upper-case tokens used in data files. Import token normalization lives in
// the ingestion normalizer, not here.
func ParseBetResult(s string) (BetResult, error) {
	switch s {
	case "PENDING":
		return Pending, nil
	case "WIN":
		return Win, nil
	case "LOSS":
		return Loss, nil
	default:
		return 0, fmt.Errorf("unknown bet result: %q", s)
	}
}

// Bet is a single recorded wager. A bet is never mutated once recorded: a
// correction is modeled as remove + re-add.
type Bet struct {
	ID     string    // unique identity, assigned at creation
	Date   Date      // calendar day of the wager, used for bucketing
	Amount Money     // stake, >= 0
	Odds   Odds      // American odds
	Status BetStatus
	Result BetResult
	Payout Money // set only when closed: 0 for a loss, stake+profit for a win
	Profit Money // set only when closed: payout-stake for a win, -stake for a loss

	// Pass-through metadata, not used in any calculation.
	Player          string
	Team            string
	Position        string
	Line            string
	TransactionType string
}

// NewOpenBet records a wager with no settled outcome.
func NewOpenBet(day Date, amount Money, odds Odds) Bet {
	return Bet{
		ID:     uuid.New().String(),
		Date:   day,
		Amount: amount,
		Odds:   odds,
		Status: Open,
		Result: Pending,
	}
}

// NewClosedBet records a settled wager, deriving payout and profit from the
// odds: a win pays stake plus the odds profit, a loss pays nothing and
// forfeits the stake.
func NewClosedBet(day Date, amount Money, odds Odds, result BetResult) (Bet, error) {
	b := Bet{
		ID:     uuid.New().String(),
		Date:   day,
		Amount: amount,
		Odds:   odds,
		Status: Closed,
		Result: result,
	}
	if err := b.settle(); err != nil {
		return Bet{}, err
	}
	return b, nil
}

// settle fills Payout and Profit from Amount, Odds and Result.
func (b *Bet) settle() error {
	switch b.Result {
	case Win:
		payout, err := b.Odds.Payout(b.Amount)
		if err != nil {
			return err
		}
		b.Payout = payout
		b.Profit = payout.Sub(b.Amount)
	case Loss:
		b.Payout = M(0, b.Amount.Currency())
		b.Profit = b.Amount.Neg()
	default:
		return fmt.Errorf("cannot settle a bet with result %s", b.Result)
	}
	return nil
}

// Equal reports whether two bets carry the same record, identity included.
func (b Bet) Equal(o Bet) bool {
	return b.ID == o.ID &&
		b.Date == o.Date &&
		b.Amount.Equal(o.Amount) &&
		b.Odds == o.Odds &&
		b.Status == o.Status &&
		b.Result == o.Result &&
		b.Payout.Equal(o.Payout) &&
		b.Profit.Equal(o.Profit)
}

// PotentialWin is the profit this bet yields if it eventually wins,
// regardless of status.
func (b Bet) PotentialWin() (Money, error) {
	return b.Odds.PotentialWin(b.Amount)
}

// MarshalJSON writes the bet with a deterministic key order for the JSONL
// session file.
func (b Bet) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", b.ID)
	w.Append("date", b.Date)
	w.Append("amount", b.Amount.Round().Decimal())
	w.Optional("currency", b.Amount.Currency())
	w.Append("odds", int(b.Odds))
	w.Append("status", b.Status.String())
	w.Append("result", b.Result.String())
	if b.Status == Closed {
		w.Append("payout", b.Payout.Round().Decimal())
		w.Append("profit", b.Profit.Round().Decimal())
	}
	w.Optional("player", b.Player)
	w.Optional("team", b.Team)
	w.Optional("position", b.Position)
	w.Optional("line", b.Line)
	w.Optional("transactionType", b.TransactionType)
	return w.MarshalJSON()
}
