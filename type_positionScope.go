package wagerbook

import "fmt"

// PositionScope defines which bets count toward the total position.
type PositionScope int

const (
	// AllBets counts the stakes of open and closed bets alike.
	AllBets PositionScope = iota
	// ClosedOnly counts only settled stakes.
	ClosedOnly
)

func (s PositionScope) String() string {
	switch s {
	case AllBets:
		return "all"
	case ClosedOnly:
		return "closed"
	default:
		return "unknown"
	}
}

// ParsePositionScope parses a string into a PositionScope.
func ParsePositionScope(s string) (PositionScope, error) {
	switch s {
	case "all":
		return AllBets, nil
	case "closed":
		return ClosedOnly, nil
	default:
		return 0, fmt.Errorf("unknown position scope: %q", s)
	}
}
