package wagerbook

import (
	"fmt"
	"slices"
)

// Mode selects the aggregation window.
type Mode int

const (
	// AllTime keeps every bet.
	AllTime Mode = iota
	// MonthToDate keeps only bets dated in the current calendar month, where
	// "current" is the injected now. The window makes aggregation
	// time-dependent, which is why now is a parameter and never wall clock.
	MonthToDate
)

func (m Mode) String() string {
	switch m {
	case AllTime:
		return "all-time"
	case MonthToDate:
		return "month-to-date"
	default:
		return "unknown"
	}
}

// ParseMode parses a string into a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "all-time", "all":
		return AllTime, nil
	case "month-to-date", "mtd":
		return MonthToDate, nil
	default:
		return 0, fmt.Errorf("unknown aggregation mode: %q", s)
	}
}

// DailyBucket is the realized performance of a single calendar day.
type DailyBucket struct {
	Date             Date
	PeriodProfit     Money // sum of profit over closed bets that day
	CumulativeProfit Money // running sum of PeriodProfit in date order
	BetCount         int
}

// ProjectedBucket bounds the performance of a single day's open bets: the
// best case assumes every bet wins (profit = potential win), the worst case
// assumes every bet loses (profit = -stake). They are bounds, not a single
// expected value.
type ProjectedBucket struct {
	Date            Date
	BestProfit      Money
	WorstProfit     Money
	BestCumulative  Money
	WorstCumulative Money
	BetCount        int
}

// Performance is a time-bucketed view of a ledger snapshot: the realized
// series over closed bets, continued by a projected envelope over open bets.
type Performance struct {
	Mode      Mode
	Realized  []DailyBucket
	Projected []ProjectedBucket
}

// inWindow reports whether a bet's date falls in the mode's window.
func inWindow(b Bet, mode Mode, now Date) bool {
	if mode != MonthToDate {
		return true
	}
	return !b.Date.Before(now.StartOfMonth())
}

// Aggregate buckets the closed bets of a snapshot by date and computes
// per-day and cumulative profit. Entry order is irrelevant: bets are grouped
// by date and ties within a date are summed. Days that net to zero are still
// emitted; dropping them is a presentation concern. An empty input yields an
// empty slice.
func Aggregate(bets []Bet, mode Mode, now Date) []DailyBucket {
	groups := make(map[Date]*DailyBucket)
	for _, b := range bets {
		if b.Status != Closed || !inWindow(b, mode, now) {
			continue
		}
		g, ok := groups[b.Date]
		if !ok {
			g = &DailyBucket{Date: b.Date}
			groups[b.Date] = g
		}
		g.PeriodProfit = g.PeriodProfit.Add(b.Profit)
		g.BetCount++
	}

	buckets := make([]DailyBucket, 0, len(groups))
	for _, g := range groups {
		buckets = append(buckets, *g)
	}
	slices.SortFunc(buckets, func(a, b DailyBucket) int {
		switch {
		case a.Date.Before(b.Date):
			return -1
		case a.Date.After(b.Date):
			return 1
		default:
			return 0
		}
	})

	var running Money
	for i := range buckets {
		running = running.Add(buckets[i].PeriodProfit)
		buckets[i].CumulativeProfit = running
	}
	return buckets
}

// Project buckets the open bets of a snapshot by date and bounds their
// outcome. Cumulatives start from baseline, the final realized cumulative,
// so the projected envelope continues from where the realized series ends.
func Project(bets []Bet, baseline Money, mode Mode, now Date) ([]ProjectedBucket, error) {
	groups := make(map[Date]*ProjectedBucket)
	for _, b := range bets {
		if b.Status != Open || !inWindow(b, mode, now) {
			continue
		}
		g, ok := groups[b.Date]
		if !ok {
			g = &ProjectedBucket{Date: b.Date}
			groups[b.Date] = g
		}
		win, err := b.PotentialWin()
		if err != nil {
			return nil, fmt.Errorf("cannot project bet %s: %w", b.ID, err)
		}
		g.BestProfit = g.BestProfit.Add(win)
		g.WorstProfit = g.WorstProfit.Add(b.Amount.Neg())
		g.BetCount++
	}

	buckets := make([]ProjectedBucket, 0, len(groups))
	for _, g := range groups {
		buckets = append(buckets, *g)
	}
	slices.SortFunc(buckets, func(a, b ProjectedBucket) int {
		switch {
		case a.Date.Before(b.Date):
			return -1
		case a.Date.After(b.Date):
			return 1
		default:
			return 0
		}
	})

	best, worst := baseline, baseline
	for i := range buckets {
		best = best.Add(buckets[i].BestProfit)
		worst = worst.Add(buckets[i].WorstProfit)
		buckets[i].BestCumulative = best
		buckets[i].WorstCumulative = worst
	}
	return buckets, nil
}

// NewPerformance computes the full performance view of a snapshot: realized
// buckets over closed bets, and a projected envelope over open bets offset
// by the final realized cumulative.
func NewPerformance(bets []Bet, mode Mode, now Date) (*Performance, error) {
	realized := Aggregate(bets, mode, now)

	var baseline Money
	if len(realized) > 0 {
		baseline = realized[len(realized)-1].CumulativeProfit
	}
	projected, err := Project(bets, baseline, mode, now)
	if err != nil {
		return nil, err
	}
	return &Performance{Mode: mode, Realized: realized, Projected: projected}, nil
}
