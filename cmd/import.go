package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/wagerbook"
	"github.com/google/subcommands"
)

type importCmd struct {
	schema string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import bets from a CSV file" }
func (*importCmd) Usage() string {
	return `wbk import -schema simple|settlement <file.csv>

  Imports historical bets. The batch is all-or-nothing on schema problems
  (missing columns); individual unparseable rows are skipped and reported.
  See 'wbk topic import' for the column layouts.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.schema, "schema", "simple", "Import column layout: simple or settlement")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Please provide the path to the CSV file.")
		return subcommands.ExitUsageError
	}
	schema, err := wagerbook.ParseSchema(c.schema)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	file, err := os.Open(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening file %q: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	bets, rowErrs, err := wagerbook.ImportCSV(file, schema)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	for _, re := range rowErrs {
		fmt.Fprintf(os.Stderr, "Warning: skipping %v\n", re)
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
	for _, bet := range bets {
		if err := ledger.Add(bet); err != nil {
			// Normalize already validated these records.
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	if err := saveLedger(cfg, ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Successfully imported %d bet(s), skipped %d row(s).\n", len(bets), len(rowErrs))
	return subcommands.ExitSuccess
}
