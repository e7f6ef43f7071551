package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/wagerbook"
	"github.com/etnz/wagerbook/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	amount string
	odds   string
	result string
	date   string

	player          string
	team            string
	position        string
	line            string
	transactionType string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a bet in the ledger" }
func (*addCmd) Usage() string {
	return `wbk add -amount <stake> -odds <american odds> [-result win|loss|pending] [-d <date>]

  Records a bet. With -result pending (the default) the bet is open and only
  counts toward potential metrics; win or loss settles it immediately and
  derives payout and profit from the odds.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "amount", "", "Stake amount (required)")
	f.StringVar(&c.odds, "odds", "", "American odds, e.g. -110 or +150 (required)")
	f.StringVar(&c.result, "result", "pending", "Outcome: win, loss or pending")
	f.StringVar(&c.date, "d", "", "Date of the bet (defaults to today)")
	f.StringVar(&c.player, "player", "", "Optional player metadata")
	f.StringVar(&c.team, "team", "", "Optional team metadata")
	f.StringVar(&c.position, "position", "", "Optional position metadata")
	f.StringVar(&c.line, "line", "", "Optional market line metadata")
	f.StringVar(&c.transactionType, "type", "", "Optional transaction type metadata")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	bet, err := c.bet()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

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
	if err := ledger.Add(bet); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := saveLedger(cfg, ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("%s (id %s)\n", renderer.Bet(bet), bet.ID)
	return subcommands.ExitSuccess
}

// bet builds the bet record from the flags.
func (c *addCmd) bet() (wagerbook.Bet, error) {
	if c.amount == "" || c.odds == "" {
		return wagerbook.Bet{}, fmt.Errorf("both -amount and -odds are required")
	}
	value, err := decimal.NewFromString(c.amount)
	if err != nil {
		return wagerbook.Bet{}, fmt.Errorf("invalid amount %q: %w", c.amount, err)
	}
	odds, err := wagerbook.ParseOdds(c.odds)
	if err != nil {
		return wagerbook.Bet{}, err
	}

	day := renderer.Today()
	if c.date != "" {
		day, err = wagerbook.ParseDate(c.date)
		if err != nil {
			return wagerbook.Bet{}, err
		}
	}

	cfg, err := loadConfig()
	if err != nil {
		return wagerbook.Bet{}, err
	}
	amount := wagerbook.M(value, cfg.Currency)

	var bet wagerbook.Bet
	switch c.result {
	case "pending":
		bet = wagerbook.NewOpenBet(day, amount, odds)
	case "win":
		bet, err = wagerbook.NewClosedBet(day, amount, odds, wagerbook.Win)
	case "loss":
		bet, err = wagerbook.NewClosedBet(day, amount, odds, wagerbook.Loss)
	default:
		return wagerbook.Bet{}, fmt.Errorf("invalid result %q: want win, loss or pending", c.result)
	}
	if err != nil {
		return wagerbook.Bet{}, err
	}

	bet.Player = c.player
	bet.Team = c.team
	bet.Position = c.position
	bet.Line = c.line
	bet.TransactionType = c.transactionType
	return bet, nil
}
