package wagerbook

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSimple(t *testing.T) {
	records := [][]string{
		{"Amount", "Odds", "Result", "Date"},
		{"50", "+150", "WIN", "2025-08-01"},
		{"30", "-110", "LOSS", "2025-08-02"},
	}
	bets, rowErrs, err := Normalize(records, SchemaSimple)
	require.NoError(t, err)
	require.Empty(t, rowErrs)
	require.Len(t, bets, 2)

	assert.Equal(t, NewDate(2025, time.August, 1), bets[0].Date)
	assert.True(t, bets[0].Amount.Equal(USD(50)))
	assert.Equal(t, Odds(150), bets[0].Odds)
	assert.Equal(t, Closed, bets[0].Status)
	assert.Equal(t, Win, bets[0].Result)
	// The simple schema always derives the payout from the odds.
	assert.True(t, bets[0].Payout.EqualRounded(USD(125)))

	assert.Equal(t, Loss, bets[1].Result)
	assert.True(t, bets[1].Profit.Equal(USD(-30)))
}

func TestNormalizeSimpleWinTokens(t *testing.T) {
	// Any recognized WIN spelling wins; any other settled token is a loss.
	tests := []struct {
		token string
		want  BetResult
	}{
		{"WIN", Win},
		{"win", Win},
		{"W", Win},
		{"1", Win},
		{"TRUE", Win},
		{"LOSS", Loss},
		{"lose", Loss},
		{"0", Loss},
		{"L", Loss},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			records := [][]string{
				{"amount", "odds", "result", "date"},
				{"10", "100", tt.token, "2025-08-01"},
			}
			bets, rowErrs, err := Normalize(records, SchemaSimple)
			require.NoError(t, err)
			require.Empty(t, rowErrs)
			require.Len(t, bets, 1)
			assert.Equal(t, tt.want, bets[0].Result)
		})
	}
}

func TestNormalizeSkipsUnsettledRows(t *testing.T) {
	records := [][]string{
		{"amount", "odds", "result", "date"},
		{"10", "100", "", "2025-08-01"},
		{"10", "100", "NaN", "2025-08-01"},
		{"10", "100", "none", "2025-08-01"},
		{"10", "100", "PENDING", "2025-08-01"},
		{"10", "100", "WIN", "2025-08-01"},
	}
	bets, rowErrs, err := Normalize(records, SchemaSimple)
	require.NoError(t, err)
	require.Empty(t, rowErrs)
	// Only the settled row survives.
	require.Len(t, bets, 1)
	assert.Equal(t, Win, bets[0].Result)
}

func TestNormalizeHeaderMatching(t *testing.T) {
	// Column matching tolerates case and surrounding space.
	records := [][]string{
		{" AMOUNT ", "Odds", "result", "DATE"},
		{"10", "100", "WIN", "2025-08-01"},
	}
	bets, rowErrs, err := Normalize(records, SchemaSimple)
	require.NoError(t, err)
	require.Empty(t, rowErrs)
	require.Len(t, bets, 1)
}

func TestNormalizeMissingColumns(t *testing.T) {
	records := [][]string{
		{"amount", "odds"},
		{"10", "100"},
	}
	_, _, err := Normalize(records, SchemaSimple)
	var serr *SchemaError
	require.ErrorAs(t, err, &serr)
	assert.ElementsMatch(t, []string{"result", "date"}, serr.Missing)

	_, _, err = Normalize(nil, SchemaSimple)
	require.ErrorAs(t, err, &serr)
}

func TestNormalizeRowErrors(t *testing.T) {
	records := [][]string{
		{"amount", "odds", "result", "date"},
		{"ten", "100", "WIN", "2025-08-01"},  // bad amount
		{"10", "abc", "WIN", "2025-08-01"},   // bad odds
		{"10", "50", "WIN", "2025-08-01"},    // odds out of domain
		{"10", "100", "WIN", "not-a-date"},   // bad date
		{"10", "100", "WIN", "2025-08-01"},   // fine
	}
	bets, rowErrs, err := Normalize(records, SchemaSimple)
	require.NoError(t, err)
	// The batch continues past bad rows.
	require.Len(t, bets, 1)
	require.Len(t, rowErrs, 4)
	// Line numbers are 1-based and count the header.
	assert.Equal(t, 2, rowErrs[0].Line)
	assert.Equal(t, 5, rowErrs[3].Line)
	var perr *RowParseError
	assert.ErrorAs(t, rowErrs[1].Err, &perr)
}

func TestNormalizeRejectsRelativeDates(t *testing.T) {
	// Import cells must be self-contained dates: the relative and short forms
	// would resolve against the wall clock and import on a moving day.
	records := [][]string{
		{"amount", "odds", "result", "date"},
		{"10", "100", "WIN", "-1d"},
		{"10", "100", "WIN", "27"},
		{"10", "100", "WIN", "2025-08-01"},
	}
	bets, rowErrs, err := Normalize(records, SchemaSimple)
	require.NoError(t, err)
	require.Len(t, bets, 1)
	require.Len(t, rowErrs, 2)
	var perr *RowParseError
	assert.ErrorAs(t, rowErrs[0].Err, &perr)
	assert.Equal(t, "date", perr.Column)
}

func TestNormalizeSettlement(t *testing.T) {
	records := [][]string{
		{"Date", "Amount_USD", "Price", "Outcome", "Outcome_Amount", "Player", "Team", "Position", "Line", "TransactionType"},
		{"2025-08-27 14:03:22 UTC", "$1,000.00", "120.0", "Won", "1100", "J. Doe", "SF", "over", "47.5", "single"},
		{"2025-08-28 09:10:00 UTC", "250", "-110", "Lost", "0", "", "NYG", "", "", ""},
	}
	bets, rowErrs, err := Normalize(records, SchemaSettlement)
	require.NoError(t, err)
	require.Empty(t, rowErrs)
	require.Len(t, bets, 2)

	won := bets[0]
	assert.Equal(t, NewDate(2025, time.August, 27), won.Date)
	assert.True(t, won.Amount.Equal(USD(1000)))
	assert.Equal(t, Odds(120), won.Odds)
	assert.Equal(t, Win, won.Result)
	// The realized profit comes from outcome_amount, not from repricing the
	// odds (which would have given $1200).
	assert.True(t, won.Profit.Equal(USD(1100)))
	assert.True(t, won.Payout.Equal(USD(2100)))
	assert.Equal(t, "J. Doe", won.Player)
	assert.Equal(t, "SF", won.Team)
	assert.Equal(t, "over", won.Position)
	assert.Equal(t, "47.5", won.Line)
	assert.Equal(t, "single", won.TransactionType)

	lost := bets[1]
	assert.Equal(t, Loss, lost.Result)
	assert.True(t, lost.Profit.Equal(USD(-250)))
	assert.True(t, lost.Payout.IsZero())
}

func TestNormalizeSettlementSkipsOpen(t *testing.T) {
	// Open positions in a settlement export carry no outcome and are skipped:
	// open bets only enter the ledger through manual entry.
	records := [][]string{
		{"date", "amount_usd", "price", "outcome", "outcome_amount"},
		{"2025-08-27", "100", "120", "", ""},
		{"2025-08-27", "100", "120", "NaN", "NaN"},
		{"2025-08-27", "100", "120", "Won", "120"},
	}
	bets, rowErrs, err := Normalize(records, SchemaSettlement)
	require.NoError(t, err)
	require.Empty(t, rowErrs)
	require.Len(t, bets, 1)
}

func TestParseSchema(t *testing.T) {
	s, err := ParseSchema("simple")
	require.NoError(t, err)
	assert.Equal(t, SchemaSimple, s)
	s, err = ParseSchema("settlement")
	require.NoError(t, err)
	assert.Equal(t, SchemaSettlement, s)
	_, err = ParseSchema("fancy")
	assert.Error(t, err)
}
