package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/wagerbook"
	"github.com/etnz/wagerbook/renderer"
	"github.com/google/subcommands"
)

// dailyCmd holds the flags for the 'daily' subcommand.
type dailyCmd struct{}

func (*dailyCmd) Name() string     { return "daily" }
func (*dailyCmd) Synopsis() string { return "display the daily betting performance" }
func (*dailyCmd) Usage() string {
	return `wbk daily

  Buckets settled bets by day and shows per-day and cumulative profit over
  the whole ledger, with a projected envelope for open bets.
`
}

func (c *dailyCmd) SetFlags(f *flag.FlagSet) {}

func (c *dailyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return renderPerformance(wagerbook.AllTime)
}

// renderPerformance is shared by the daily and monthly reports.
func renderPerformance(mode wagerbook.Mode) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	ledger, err := loadLedger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	perf, err := wagerbook.NewPerformance(ledger.Snapshot(), mode, renderer.Today())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.PerformanceMarkdown(perf))
	return subcommands.ExitSuccess
}
