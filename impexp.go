package wagerbook

import (
	"encoding/csv"
	"fmt"
	"io"
)

// This file handles the flat import/export format: a delimited text file,
// one row per bet, header row included, UTF-8 encoded. Exporting and
// re-importing via the simple schema reproduces the same
// (amount, odds, result, date) tuples.

// exportHeader starts with the simple-schema columns so an exported file is
// importable as-is; the remaining columns are pass-through.
var exportHeader = []string{
	"Amount", "Odds", "Result", "Date", "Status", "Payout", "Profit",
	"Player", "Team", "Position", "Line", "TransactionType",
}

// ExportCSV writes the bets as a delimited table. Money cells are rounded to
// the currency fraction; this is a surfacing boundary.
func ExportCSV(w io.Writer, bets []Bet) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return fmt.Errorf("cannot write export header: %w", err)
	}
	for _, b := range bets {
		record := []string{
			b.Amount.Decimal().Round(2).String(),
			b.Odds.String(),
			b.Result.String(),
			b.Date.String(),
			b.Status.String(),
			moneyCell(b),
			profitCell(b),
			b.Player,
			b.Team,
			b.Position,
			b.Line,
			b.TransactionType,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("cannot write bet %s: %w", b.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func moneyCell(b Bet) string {
	if b.Status != Closed {
		return ""
	}
	return b.Payout.Decimal().Round(2).String()
}

func profitCell(b Bet) string {
	if b.Status != Closed {
		return ""
	}
	return b.Profit.Decimal().Round(2).String()
}

// ImportCSV reads a delimited table and normalizes it with the given schema.
// A malformed container (unbalanced quotes, varying field counts) fails the
// whole batch; individual bad rows are reported per-row by Normalize.
func ImportCSV(r io.Reader, schema Schema) ([]Bet, []RowError, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("cannot read import file: %w", err)
	}
	return Normalize(records, schema)
}
