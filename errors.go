package wagerbook

import (
	"fmt"
	"strings"
)

// Every failure in the engine is local and synchronous: a rejected operation
// reports one of the errors below and leaves prior state intact.

// ValidationError reports a bet rejected by the ledger (bad amount, bad odds,
// inconsistent status/result). The ledger is unchanged.
type ValidationError struct {
	Reason string
	Err    error // underlying cause, e.g. an *InvalidOddsError
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid bet: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid bet: %s", e.Reason)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// InvalidOddsError reports American odds in the undefined (-100, 100) range.
type InvalidOddsError struct {
	Odds Odds
}

func (e *InvalidOddsError) Error() string {
	return fmt.Sprintf("invalid american odds %d: odds must be >= +100 or <= -100", int(e.Odds))
}

// NotFoundError reports a removal of an unknown bet id. The ledger is unchanged.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no bet with id %q", e.ID)
}

// SchemaError rejects a whole import batch whose header is missing required
// columns. Nothing from the batch is imported.
type SchemaError struct {
	Schema  Schema
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s import is missing required column(s): %s", e.Schema, strings.Join(e.Missing, ", "))
}

// RowParseError reports a single unparseable import row. The row is skipped
// and the batch continues.
type RowParseError struct {
	Column string
	Value  string
	Err    error
}

func (e *RowParseError) Error() string {
	return fmt.Sprintf("cannot parse column %q value %q: %v", e.Column, e.Value, e.Err)
}

func (e *RowParseError) Unwrap() error { return e.Err }
