package renderer

import (
	"github.com/etnz/wagerbook"
)

// PerformanceMarkdown renders the realized daily series and, when open bets
// exist, the projected envelope that continues it.
func PerformanceMarkdown(p *wagerbook.Performance) string {
	return renderTemplate("performance", "performance.md", p)
}

// SummaryMarkdown renders the summary metrics of a snapshot.
func SummaryMarkdown(s *wagerbook.Summary) string {
	return renderTemplate("summary", "summary.md", s)
}

// Bet renders a one-line description of a bet.
func Bet(b wagerbook.Bet) string {
	switch {
	case b.Status == wagerbook.Open:
		return "Open " + b.Amount.String() + " at " + b.Odds.String() + " on " + b.Date.String()
	case b.Result == wagerbook.Win:
		return "Won " + b.Profit.String() + " on " + b.Amount.String() + " at " + b.Odds.String() + " (" + b.Date.String() + ")"
	default:
		return "Lost " + b.Amount.String() + " at " + b.Odds.String() + " (" + b.Date.String() + ")"
	}
}
