package renderer

import (
	"os"
	"time"

	"github.com/etnz/wagerbook"
)

// Now returns the current time, or the pinned time from the
// WAGERBOOK_TESTING_NOW environment variable. Documentation tests pin it so
// month-to-date reports are reproducible.
func Now() time.Time {
	if v := os.Getenv("WAGERBOOK_TESTING_NOW"); v != "" {
		t, err := time.Parse("2006-01-02 15:04:05", v)
		if err == nil {
			return t
		}
	}
	return time.Now()
}

// Today returns the current date per Now.
func Today() wagerbook.Date {
	return wagerbook.NewDate(Now().Date())
}
