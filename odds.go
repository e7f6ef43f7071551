package wagerbook

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// Odds is an American odds price: a positive value is the profit per $100
// staked on an underdog, a negative value is the stake required per $100 of
// profit on a favorite. The open interval (-100, 100) is undefined.
type Odds int

var hundred = decimal.NewFromInt(100)

// Validate returns an *InvalidOddsError when the odds are in the forbidden
// (-100, 100) range.
func (o Odds) Validate() error {
	if o > -100 && o < 100 {
		return &InvalidOddsError{Odds: o}
	}
	return nil
}

// ProfitForWin returns the profit a winning bet of the given stake yields.
//
//	odds > 0: stake * odds / 100
//	odds < 0: stake * 100 / |odds|
func (o Odds) ProfitForWin(stake Money) (Money, error) {
	if err := o.Validate(); err != nil {
		return Money{}, err
	}
	if o > 0 {
		v := stake.value.Mul(decimal.NewFromInt(int64(o))).Div(hundred)
		return Money{value: v, cur: stake.cur}, nil
	}
	v := stake.value.Mul(hundred).Div(decimal.NewFromInt(int64(-o)))
	return Money{value: v, cur: stake.cur}, nil
}

// Payout returns the total cash returned on a win, stake included.
func (o Odds) Payout(stake Money) (Money, error) {
	profit, err := o.ProfitForWin(stake)
	if err != nil {
		return Money{}, err
	}
	return stake.Add(profit), nil
}

// PotentialWin is the profit the bet yields if it eventually wins. It is the
// figure projected performance and potential-outcome summaries are built on.
func (o Odds) PotentialWin(stake Money) (Money, error) {
	return o.ProfitForWin(stake)
}

// String formats the odds the way books quote them, with an explicit sign.
func (o Odds) String() string {
	if o > 0 {
		return "+" + strconv.Itoa(int(o))
	}
	return strconv.Itoa(int(o))
}

// ParseOdds parses an American odds string, tolerating a leading '+'.
func ParseOdds(s string) (Odds, error) {
	s = trimPlus(s)
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid odds %q: %w", s, err)
	}
	o := Odds(n)
	if err := o.Validate(); err != nil {
		return 0, err
	}
	return o, nil
}

func trimPlus(s string) string {
	if len(s) > 0 && s[0] == '+' {
		return s[1:]
	}
	return s
}
