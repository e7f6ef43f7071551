package wagerbook

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestEncodeDecodeLedger(t *testing.T) {
	ledger := NewLedger()
	win, err := NewClosedBet(NewDate(2025, time.August, 1), USD(50), 150, Win)
	if err != nil {
		t.Fatal(err)
	}
	loss, err := NewClosedBet(NewDate(2025, time.August, 2), USD(30), 200, Loss)
	if err != nil {
		t.Fatal(err)
	}
	open := NewOpenBet(NewDate(2025, time.August, 3), USD(20), -110)
	open.Team = "SF"
	for _, b := range []Bet{win, loss, open} {
		if err := ledger.Add(b); err != nil {
			t.Fatal(err)
		}
	}

	var buf bytes.Buffer
	if err := EncodeLedger(&buf, ledger); err != nil {
		t.Fatal(err)
	}

	back, err := DecodeLedger(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if back.Len() != 3 {
		t.Fatalf("Len() = %d after round trip, want 3", back.Len())
	}
	snapshot := back.Snapshot()
	for i, want := range []Bet{win, loss, open} {
		if !snapshot[i].Equal(want) {
			t.Errorf("bet %d = %+v, want %+v", i, snapshot[i], want)
		}
	}
	if got, _ := back.Find(open.ID); got.Team != "SF" {
		t.Errorf("metadata lost in round trip: Team = %q", got.Team)
	}
}

func TestEncodeBetLine(t *testing.T) {
	b := Bet{
		ID:     "b1",
		Date:   NewDate(2025, time.August, 1),
		Amount: USD(50),
		Odds:   150,
		Status: Open,
		Result: Pending,
	}
	var buf bytes.Buffer
	if err := EncodeBet(&buf, b); err != nil {
		t.Fatal(err)
	}
	want := `{"id":"b1","date":"2025-08-01","amount":50,"currency":"USD","odds":150,"status":"open","result":"PENDING"}` + "\n"
	if buf.String() != want {
		t.Errorf("EncodeBet() =\n%swant\n%s", buf.String(), want)
	}
}

func TestDecodeLedgerSkipsEmptyLines(t *testing.T) {
	in := `{"id":"b1","date":"2025-08-01","amount":50,"currency":"USD","odds":150,"status":"open","result":"PENDING"}` +
		"\n\n" +
		`{"id":"b2","date":"2025-08-02","amount":30,"currency":"USD","odds":-110,"status":"closed","result":"LOSS","payout":0,"profit":-30}` +
		"\n"
	ledger, err := DecodeLedger(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if ledger.Len() != 2 {
		t.Errorf("Len() = %d, want 2", ledger.Len())
	}
}

// TestDecodeLedgerValidates checks that a hand-edited file goes through the
// same validation as a fresh Add.
func TestDecodeLedgerValidates(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"not json", `not a json line`},
		{"unknown status", `{"id":"b1","date":"2025-08-01","amount":50,"odds":150,"status":"maybe","result":"PENDING"}`},
		{"closed pending", `{"id":"b1","date":"2025-08-01","amount":50,"odds":150,"status":"closed","result":"PENDING"}`},
		{"inconsistent win", `{"id":"b1","date":"2025-08-01","amount":50,"odds":150,"status":"closed","result":"WIN","payout":0,"profit":100}`},
		{"payout not stake plus profit", `{"id":"b1","date":"2025-08-01","amount":50,"odds":150,"status":"closed","result":"WIN","payout":200,"profit":100}`},
		{"odds out of domain", `{"id":"b1","date":"2025-08-01","amount":50,"odds":50,"status":"open","result":"PENDING"}`},
		{"negative stake", `{"id":"b1","date":"2025-08-01","amount":-50,"odds":150,"status":"open","result":"PENDING"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeLedger(strings.NewReader(tt.line + "\n")); err == nil {
				t.Errorf("DecodeLedger accepted %q", tt.line)
			}
		})
	}
}
