// Package monthgrid provides arithmetic over 1-indexed simulation months and
// their mapping onto calendar dates for presentation.
package monthgrid

import (
	"fmt"
	"time"
)

// Date maps a 1-indexed simulation month onto a calendar date. Month 1 is
// the start date's month.
func Date(start time.Time, month int) time.Time {
	return time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC).
		AddDate(0, month-1, 0)
}

// Label renders a simulation month as "YYYY-MM".
func Label(start time.Time, month int) string {
	return Date(start, month).Format("2006-01")
}

// Span renders a month count as a compact duration, e.g. "2y3m" or "8m".
func Span(months int) string {
	if months < 0 {
		months = 0
	}
	years := months / 12
	rem := months % 12
	switch {
	case years == 0:
		return fmt.Sprintf("%dm", rem)
	case rem == 0:
		return fmt.Sprintf("%dy", years)
	default:
		return fmt.Sprintf("%dy%dm", years, rem)
	}
}

// Clamp bounds a month to the [1, horizon] interval.
func Clamp(month, horizon int) int {
	if month < 1 {
		return 1
	}
	if month > horizon {
		return horizon
	}
	return month
}
