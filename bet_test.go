package wagerbook

import (
	"encoding/json"
	"testing"
	"time"
)

func TestNewClosedBetWin(t *testing.T) {
	day := NewDate(2025, time.August, 1)
	b, err := NewClosedBet(day, USD(50), 150, Win)
	if err != nil {
		t.Fatal(err)
	}
	if b.ID == "" {
		t.Error("a new bet must get an identity")
	}
	if b.Status != Closed || b.Result != Win {
		t.Errorf("status/result = %s/%s, want closed/WIN", b.Status, b.Result)
	}
	if !b.Payout.EqualRounded(USD(125)) {
		t.Errorf("Payout = %s, want $125.00", b.Payout)
	}
	if !b.Profit.EqualRounded(USD(75)) {
		t.Errorf("Profit = %s, want $75.00", b.Profit)
	}
}

func TestNewClosedBetLoss(t *testing.T) {
	day := NewDate(2025, time.August, 1)
	b, err := NewClosedBet(day, USD(50), -110, Loss)
	if err != nil {
		t.Fatal(err)
	}
	if !b.Payout.IsZero() {
		t.Errorf("Payout = %s, want zero", b.Payout)
	}
	if !b.Profit.Equal(USD(-50)) {
		t.Errorf("Profit = %s, want -$50.00", b.Profit)
	}
}

func TestNewClosedBetRejectsPending(t *testing.T) {
	if _, err := NewClosedBet(Today(), USD(50), 150, Pending); err == nil {
		t.Error("a closed bet cannot be PENDING")
	}
}

func TestNewOpenBet(t *testing.T) {
	b := NewOpenBet(Today(), USD(50), -110)
	if b.Status != Open || b.Result != Pending {
		t.Errorf("status/result = %s/%s, want open/PENDING", b.Status, b.Result)
	}
	if !b.Payout.IsZero() || !b.Profit.IsZero() {
		t.Error("an open bet carries no payout or profit")
	}
	win, err := b.PotentialWin()
	if err != nil {
		t.Fatal(err)
	}
	if !win.EqualRounded(USD(45.45)) {
		t.Errorf("PotentialWin() = %s, want $45.45", win)
	}
}

func TestBetResultTokens(t *testing.T) {
	for _, r := range []BetResult{Pending, Win, Loss} {
		back, err := ParseBetResult(r.String())
		if err != nil || back != r {
			t.Errorf("ParseBetResult(%q) = %v, %v", r.String(), back, err)
		}
	}
	if _, err := ParseBetResult("win"); err == nil {
		t.Error("data file tokens are canonical upper-case only")
	}
	for _, s := range []BetStatus{Open, Closed} {
		back, err := ParseBetStatus(s.String())
		if err != nil || back != s {
			t.Errorf("ParseBetStatus(%q) = %v, %v", s.String(), back, err)
		}
	}
}

func TestBetMarshalJSON(t *testing.T) {
	open := Bet{
		ID:     "b1",
		Date:   NewDate(2025, time.August, 1),
		Amount: USD(50),
		Odds:   150,
		Status: Open,
		Result: Pending,
	}
	data, err := json.Marshal(open)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"id":"b1","date":"2025-08-01","amount":50,"currency":"USD","odds":150,"status":"open","result":"PENDING"}`
	if string(data) != want {
		t.Errorf("Marshal(open) =\n%s\nwant\n%s", data, want)
	}

	closed, err := NewClosedBet(NewDate(2025, time.August, 2), USD(50), -110, Win)
	if err != nil {
		t.Fatal(err)
	}
	closed.ID = "b2"
	closed.Team = "SF"
	data, err = json.Marshal(closed)
	if err != nil {
		t.Fatal(err)
	}
	// Payout and profit are surfaced rounded to the currency fraction.
	want = `{"id":"b2","date":"2025-08-02","amount":50,"currency":"USD","odds":-110,"status":"closed","result":"WIN","payout":95.45,"profit":45.45,"team":"SF"}`
	if string(data) != want {
		t.Errorf("Marshal(closed) =\n%s\nwant\n%s", data, want)
	}
}

// TestBetMarshalJSONCurrencyFraction checks that rounding follows the
// currency: yen have no fractional unit.
func TestBetMarshalJSONCurrencyFraction(t *testing.T) {
	b := Bet{
		ID:     "b3",
		Date:   NewDate(2025, time.August, 1),
		Amount: M(50.4, "JPY"),
		Odds:   150,
		Status: Open,
		Result: Pending,
	}
	data, err := json.Marshal(b)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"id":"b3","date":"2025-08-01","amount":50,"currency":"JPY","odds":150,"status":"open","result":"PENDING"}`
	if string(data) != want {
		t.Errorf("Marshal(yen) =\n%s\nwant\n%s", data, want)
	}
}
