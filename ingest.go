package wagerbook

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// This file normalizes heterogeneous tabular sources into canonical bet
// records. Raw parsing of the container (CSV reading) is the caller's
// concern; the rules here decide what a row means.

// Schema identifies one of the recognized import column layouts.
type Schema int

const (
	// SchemaSimple is the manual-entry export layout:
	// amount, odds, result, date. Payout is always derived from the odds.
	SchemaSimple Schema = iota
	// SchemaSettlement is the sportsbook settlement export layout:
	// date, amount_usd, price, outcome, outcome_amount, plus optional
	// metadata columns. Profit is taken from outcome_amount, not recomputed:
	// the export encodes a realized settlement, not a priced bet.
	SchemaSettlement
)

func (s Schema) String() string {
	switch s {
	case SchemaSimple:
		return "simple"
	case SchemaSettlement:
		return "settlement"
	default:
		return "unknown"
	}
}

// ParseSchema parses a schema tag.
func ParseSchema(s string) (Schema, error) {
	switch s {
	case "simple":
		return SchemaSimple, nil
	case "settlement":
		return SchemaSettlement, nil
	default:
		return 0, fmt.Errorf("unknown import schema: %q", s)
	}
}

// RowError reports a single skipped row. Line is 1-based and counts the
// header row.
type RowError struct {
	Line int
	Err  error
}

func (e RowError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

var simpleColumns = []string{"amount", "odds", "result", "date"}
var settlementColumns = []string{"date", "amount_usd", "price", "outcome", "outcome_amount"}
var settlementOptional = []string{"player", "team", "position", "line", "transaction_type"}

// winTokens are the accepted WIN spellings, per schema. Any other non-empty
// token is a LOSS; an empty or NaN token means the row is still unsettled
// and is skipped entirely.
var winTokens = map[Schema]map[string]bool{
	SchemaSimple:     {"WIN": true, "W": true, "1": true, "TRUE": true},
	SchemaSettlement: {"WIN": true, "W": true, "1": true, "TRUE": true, "WON": true},
}

// Normalize maps tabular records into canonical bets. records[0] must be the
// header row; column matching is case-insensitive and ignores surrounding
// space. A header missing required columns fails the whole batch with a
// *SchemaError. A row that cannot be parsed is skipped and reported in the
// returned RowError slice; the batch continues.
func Normalize(records [][]string, schema Schema) ([]Bet, []RowError, error) {
	if len(records) == 0 {
		return nil, nil, &SchemaError{Schema: schema, Missing: requiredColumns(schema)}
	}

	cols, err := indexHeader(records[0], schema)
	if err != nil {
		return nil, nil, err
	}

	var bets []Bet
	var rowErrs []RowError
	for i, record := range records[1:] {
		line := i + 2 // 1-based, after the header
		bet, skip, err := normalizeRow(record, cols, schema)
		if err != nil {
			rowErrs = append(rowErrs, RowError{Line: line, Err: err})
			continue
		}
		if skip {
			log.Printf("line %d: no settled outcome, skipping unsettled row", line)
			continue
		}
		bets = append(bets, bet)
	}
	return bets, rowErrs, nil
}

func requiredColumns(schema Schema) []string {
	if schema == SchemaSettlement {
		return settlementColumns
	}
	return simpleColumns
}

// indexHeader resolves column names to indices, rejecting the batch when a
// required column is absent.
func indexHeader(header []string, schema Schema) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[canonicalColumn(name)] = i
	}

	var missing []string
	for _, name := range requiredColumns(schema) {
		if _, ok := cols[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, &SchemaError{Schema: schema, Missing: missing}
	}
	return cols, nil
}

// canonicalColumn lower-cases and snake_cases a header cell so that
// "Amount", " amount " and "TransactionType" all resolve.
func canonicalColumn(name string) string {
	name = strings.TrimSpace(name)
	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			// Break words on a lower-to-upper transition only, so acronyms
			// like "USD" stay together.
			if i > 0 {
				prev := name[i-1]
				if prev != '_' && prev != ' ' && !(prev >= 'A' && prev <= 'Z') {
					b.WriteByte('_')
				}
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		if r == ' ' {
			b.WriteByte('_')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func normalizeRow(record []string, cols map[string]int, schema Schema) (bet Bet, skip bool, err error) {
	if schema == SchemaSettlement {
		return normalizeSettlementRow(record, cols)
	}
	return normalizeSimpleRow(record, cols)
}

func normalizeSimpleRow(record []string, cols map[string]int) (Bet, bool, error) {
	token := cell(record, cols, "result")
	if isUnsettled(token) {
		return Bet{}, true, nil
	}

	day, err := parseDateCell(record, cols, "date")
	if err != nil {
		return Bet{}, false, err
	}
	amount, err := parseMoneyCell(record, cols, "amount")
	if err != nil {
		return Bet{}, false, err
	}
	odds, err := parseOddsCell(record, cols, "odds")
	if err != nil {
		return Bet{}, false, err
	}

	result := Loss
	if winTokens[SchemaSimple][normalizeToken(token)] {
		result = Win
	}
	bet, err := NewClosedBet(day, amount, odds, result)
	if err != nil {
		return Bet{}, false, &RowParseError{Column: "odds", Value: cell(record, cols, "odds"), Err: err}
	}
	return bet, false, nil
}

func normalizeSettlementRow(record []string, cols map[string]int) (Bet, bool, error) {
	token := cell(record, cols, "outcome")
	if isUnsettled(token) {
		// Open bets cannot be imported from the settlement export; they only
		// enter the ledger through manual entry.
		return Bet{}, true, nil
	}

	day, err := parseDateCell(record, cols, "date")
	if err != nil {
		return Bet{}, false, err
	}
	amount, err := parseMoneyCell(record, cols, "amount_usd")
	if err != nil {
		return Bet{}, false, err
	}
	odds, err := parseOddsCell(record, cols, "price")
	if err != nil {
		return Bet{}, false, err
	}

	bet := Bet{
		ID:     uuid.New().String(),
		Date:   day,
		Amount: amount,
		Odds:   odds,
		Status: Closed,
	}
	if winTokens[SchemaSettlement][normalizeToken(token)] {
		// The export encodes the realized settlement: take the profit from
		// outcome_amount instead of repricing from the odds.
		profit, err := parseMoneyCell(record, cols, "outcome_amount")
		if err != nil {
			return Bet{}, false, err
		}
		bet.Result = Win
		bet.Profit = profit
		bet.Payout = amount.Add(profit)
	} else {
		bet.Result = Loss
		bet.Profit = amount.Neg()
		bet.Payout = M(0, amount.Currency())
	}

	// Pass-through metadata.
	bet.Player = cell(record, cols, "player")
	bet.Team = cell(record, cols, "team")
	bet.Position = cell(record, cols, "position")
	bet.Line = cell(record, cols, "line")
	bet.TransactionType = cell(record, cols, "transaction_type")

	return bet, false, nil
}

// cell returns the trimmed value of a named column, or "" when the column is
// absent or the record is short.
func cell(record []string, cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

// isUnsettled reports an empty or NaN outcome token.
func isUnsettled(token string) bool {
	t := normalizeToken(token)
	return t == "" || t == "NAN" || t == "NONE" || t == "NULL" || t == "PENDING"
}

func normalizeToken(token string) string {
	return strings.ToUpper(strings.TrimSpace(token))
}

func parseDateCell(record []string, cols map[string]int, name string) (Date, error) {
	raw := cell(record, cols, name)
	day, err := ParseRecordDate(raw)
	if err != nil {
		return Date{}, &RowParseError{Column: name, Value: raw, Err: err}
	}
	return day, nil
}

func parseMoneyCell(record []string, cols map[string]int, name string) (Money, error) {
	raw := cell(record, cols, name)
	cleaned := strings.ReplaceAll(strings.TrimPrefix(raw, "$"), ",", "")
	value, err := decimal.NewFromString(cleaned)
	if err != nil {
		return Money{}, &RowParseError{Column: name, Value: raw, Err: err}
	}
	return M(value, "USD"), nil
}

// parseOddsCell accepts integer odds, tolerating the float spelling some
// exports use ("120.0").
func parseOddsCell(record []string, cols map[string]int, name string) (Odds, error) {
	raw := cell(record, cols, name)
	s := strings.TrimPrefix(raw, "+")
	n, err := strconv.Atoi(s)
	if err != nil {
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil || f != float64(int(f)) {
			return 0, &RowParseError{Column: name, Value: raw, Err: fmt.Errorf("not an integer odds value")}
		}
		n = int(f)
	}
	o := Odds(n)
	if err := o.Validate(); err != nil {
		return 0, &RowParseError{Column: name, Value: raw, Err: err}
	}
	return o, nil
}
