package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/wagerbook"
	"github.com/google/subcommands"
	"github.com/olekukonko/tablewriter"
)

// txCmd lists the recorded bets.
type txCmd struct {
	status string
	tail   int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list recorded bets" }
func (*txCmd) Usage() string {
	return `wbk tx [-status open|closed] [-tail n]

  Lists bets in entry order with their ids, for use with rm.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.status, "status", "", "Only list open or closed bets")
	f.IntVar(&c.tail, "tail", 0, "Only list the last n bets")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	var filters []func(wagerbook.Bet) bool
	if c.status != "" {
		status, err := wagerbook.ParseBetStatus(c.status)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		filters = append(filters, wagerbook.ByStatus(status))
	}

	var bets []wagerbook.Bet
	for _, b := range ledger.Bets(filters...) {
		bets = append(bets, b)
	}
	if c.tail > 0 && len(bets) > c.tail {
		bets = bets[len(bets)-c.tail:]
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Date", "Amount", "Odds", "Status", "Result", "Payout", "Profit", "Player", "Team")
	for _, b := range bets {
		payout, profit := "", ""
		if b.Status == wagerbook.Closed {
			payout = b.Payout.String()
			profit = b.Profit.SignedString()
		}
		table.Append(
			b.ID,
			b.Date.String(),
			b.Amount.String(),
			b.Odds.String(),
			b.Status.String(),
			b.Result.String(),
			payout,
			profit,
			b.Player,
			b.Team,
		)
	}
	table.Render()
	if ledger.Len() > 0 {
		fmt.Printf("%d bet(s) since %s.\n", ledger.Len(), ledger.OldestBetDate())
	}
	return subcommands.ExitSuccess
}
