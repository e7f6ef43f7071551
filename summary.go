package wagerbook

import "fmt"

// Summary provides an at-a-glance overview of a ledger snapshot. It is
// recomputed from the snapshot on every call; there is no incremental state
// to keep in sync, so removing a bet and re-adding an equivalent one
// restores the prior totals exactly.
type Summary struct {
	TotalPosition   Money   // sum of stakes, per the position scope
	TotalReturns    Money   // sum of profit over closed bets
	AvailableCredit Money   // sum of winning payouts minus losing stakes
	WinPercentage   Percent // 0 when there are no closed bets
	PotentialWin    Money   // profit if every bet (open or closed) had won
	PotentialLoss   Money   // total stakes at risk, both statuses
	OpenBets        int
	ClosedBets      int
	Wins            int
	Losses          int
}

// NewSummary computes the summary metrics over a ledger snapshot.
func NewSummary(bets []Bet, scope PositionScope) (*Summary, error) {
	s := &Summary{}
	for _, b := range bets {
		if scope == AllBets || b.Status == Closed {
			s.TotalPosition = s.TotalPosition.Add(b.Amount)
		}

		// Potential outcomes span both statuses: an upper bound where every
		// bet wins, a lower bound where every stake is lost.
		win, err := b.PotentialWin()
		if err != nil {
			return nil, fmt.Errorf("cannot size bet %s: %w", b.ID, err)
		}
		s.PotentialWin = s.PotentialWin.Add(win)
		s.PotentialLoss = s.PotentialLoss.Add(b.Amount)

		switch b.Status {
		case Open:
			s.OpenBets++
		case Closed:
			s.ClosedBets++
			s.TotalReturns = s.TotalReturns.Add(b.Profit)
			switch b.Result {
			case Win:
				s.Wins++
				s.AvailableCredit = s.AvailableCredit.Add(b.Payout)
			case Loss:
				s.Losses++
				s.AvailableCredit = s.AvailableCredit.Sub(b.Amount)
			}
		}
	}
	if s.ClosedBets > 0 {
		s.WinPercentage = Percent(100 * float64(s.Wins) / float64(s.ClosedBets))
	}
	return s, nil
}
