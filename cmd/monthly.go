package cmd

import (
	"context"
	"flag"

	"github.com/etnz/wagerbook"
	"github.com/google/subcommands"
)

// monthlyCmd holds the flags for the 'monthly' subcommand.
type monthlyCmd struct{}

func (*monthlyCmd) Name() string     { return "monthly" }
func (*monthlyCmd) Synopsis() string { return "display the month-to-date betting performance" }
func (*monthlyCmd) Usage() string {
	return `wbk monthly

  Like daily, restricted to bets dated in the current calendar month.
`
}

func (c *monthlyCmd) SetFlags(f *flag.FlagSet) {}

func (c *monthlyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return renderPerformance(wagerbook.MonthToDate)
}
