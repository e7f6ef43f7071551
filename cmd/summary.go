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

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	scope string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the summary metrics of the ledger" }
func (*summaryCmd) Usage() string {
	return `wbk summary [-scope all|closed]

  Shows total position, total returns, available credit, win percentage and
  the potential win/loss bounds, all recomputed from the current ledger.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.scope, "scope", "", "Position scope (all, closed); defaults to the configuration")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	scopeTag := cfg.PositionScope
	if c.scope != "" {
		scopeTag = c.scope
	}
	scope, err := wagerbook.ParsePositionScope(scopeTag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger, err := loadLedger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	summary, err := wagerbook.NewSummary(ledger.Snapshot(), scope)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.SummaryMarkdown(summary))
	return subcommands.ExitSuccess
}
