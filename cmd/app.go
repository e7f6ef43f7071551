// Package cmd implements the CLI application to manage a wagering ledger.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/wagerbook"
	"github.com/etnz/wagerbook/config"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package calls Register() and then Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "bets")
	c.Register(&rmCmd{}, "bets")
	c.Register(&txCmd{}, "bets")
	c.Register(&resetCmd{}, "bets")

	c.Register(&dailyCmd{}, "reports")
	c.Register(&monthlyCmd{}, "reports")
	c.Register(&summaryCmd{}, "reports")

	c.Register(&importCmd{}, "data")
	c.Register(&exportCmd{}, "data")
	c.Register(&fmtCmd{}, "data")

	c.Register(&topicCmd{}, "help")
}

// As a CLI application with a very short lifecycle, globals are fine here.

var configFile = flag.String("config", "wagerbook.yaml", "Path to the configuration file")
var ledgerFile = flag.String("ledger-file", "", "Path to the ledger file (JSONL format), overrides the configuration")

// loadConfig resolves the effective configuration from file, environment and
// flags.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(*configFile)
	if err != nil {
		return nil, err
	}
	if *ledgerFile != "" {
		cfg.LedgerFile = *ledgerFile
	}
	return cfg, nil
}

// loadLedger reads the session ledger from the configured file. A missing
// file yields an empty ledger.
func loadLedger(cfg *config.Config) (*wagerbook.Ledger, error) {
	f, err := os.Open(cfg.LedgerFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, ledger file does not exist, starting from an empty ledger")
		return wagerbook.NewLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open ledger file %q: %w", cfg.LedgerFile, err)
	}
	defer f.Close()
	return wagerbook.DecodeLedger(f)
}

// saveLedger rewrites the whole session file. Mutations go through here so
// the file always reflects exactly the in-memory ledger.
func saveLedger(cfg *config.Config, ledger *wagerbook.Ledger) error {
	f, err := os.Create(cfg.LedgerFile)
	if err != nil {
		return fmt.Errorf("cannot create ledger file %q: %w", cfg.LedgerFile, err)
	}
	defer f.Close()
	if err := wagerbook.EncodeLedger(f, ledger); err != nil {
		return fmt.Errorf("cannot write ledger file %q: %w", cfg.LedgerFile, err)
	}
	return nil
}

// printMarkdown renders a markdown report for the terminal.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
