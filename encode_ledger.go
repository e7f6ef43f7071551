package wagerbook

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// The CLI session is persisted as a JSONL file, one bet per line, with a
// deterministic key order so the file diffs cleanly. The engine itself never
// touches the filesystem; this is the adapter boundary.

// betLine is a specialized struct to decode one JSONL bet line.
type betLine struct {
	ID              string          `json:"id"`
	Date            Date            `json:"date"`
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency"`
	Odds            int             `json:"odds"`
	Status          string          `json:"status"`
	Result          string          `json:"result"`
	Payout          decimal.Decimal `json:"payout"`
	Profit          decimal.Decimal `json:"profit"`
	Player          string          `json:"player,omitempty"`
	Team            string          `json:"team,omitempty"`
	Position        string          `json:"position,omitempty"`
	Line            string          `json:"line,omitempty"`
	TransactionType string          `json:"transactionType,omitempty"`
}

func (l betLine) bet() (Bet, error) {
	status, err := ParseBetStatus(l.Status)
	if err != nil {
		return Bet{}, err
	}
	result, err := ParseBetResult(l.Result)
	if err != nil {
		return Bet{}, err
	}
	currency := l.Currency
	if currency == "" {
		currency = "USD"
	}
	b := Bet{
		ID:              l.ID,
		Date:            l.Date,
		Amount:          M(l.Amount, currency),
		Odds:            Odds(l.Odds),
		Status:          status,
		Result:          result,
		Player:          l.Player,
		Team:            l.Team,
		Position:        l.Position,
		Line:            l.Line,
		TransactionType: l.TransactionType,
	}
	if status == Closed {
		b.Payout = M(l.Payout, currency)
		b.Profit = M(l.Profit, currency)
	}
	return b, nil
}

// DecodeLedger decodes bets from a stream of JSONL data and returns the
// reconstructed ledger. Each line goes through the same validation as a
// fresh Add, so a tampered file cannot smuggle an inconsistent record in.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}
		var line betLine
		if err := json.Unmarshal(lineBytes, &line); err != nil {
			return nil, fmt.Errorf("cannot parse ledger line %q: %w", string(lineBytes), err)
		}
		bet, err := line.bet()
		if err != nil {
			return nil, fmt.Errorf("invalid ledger line %q: %w", string(lineBytes), err)
		}
		if err := ledger.Add(bet); err != nil {
			return nil, fmt.Errorf("invalid ledger line %q: %w", string(lineBytes), err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	return ledger, nil
}

// EncodeBet marshals a single bet to JSON and writes it to the writer,
// followed by a newline, in JSONL format.
func EncodeBet(w io.Writer, b Bet) error {
	data, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("failed to marshal bet %s: %w", b.ID, err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write bet: %w", err)
	}
	return nil
}

// EncodeLedger persists the ledger to an io.Writer in JSONL format,
// preserving entry order.
func EncodeLedger(w io.Writer, ledger *Ledger) error {
	for _, b := range ledger.Snapshot() {
		if err := EncodeBet(w, b); err != nil {
			return err
		}
	}
	return nil
}
