package payroll

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// CycleRef builds the ledger reference for one employee in one cycle,
// e.g. "SAL-202601-<employeeID>". The numeric year-month keeps refs
// prefix-searchable for idempotence checks.
func CycleRef(year int, month time.Month, employeeID string) string {
	return fmt.Sprintf("%s%s", CycleRefPrefix(year, month), employeeID)
}

// CycleRefPrefix is the shared prefix of every ledger ref a cycle writes.
func CycleRefPrefix(year int, month time.Month) string {
	return fmt.Sprintf("SAL-%04d%02d-", year, int(month))
}

var monthNames = map[string]time.Month{
	"january":   time.January,
	"february":  time.February,
	"march":     time.March,
	"april":     time.April,
	"may":       time.May,
	"june":      time.June,
	"july":      time.July,
	"august":    time.August,
	"september": time.September,
	"october":   time.October,
	"november":  time.November,
	"december":  time.December,
}

// ParseMonth accepts a numeric month ("1".."12") or an English month name.
func ParseMonth(s string) (time.Month, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 || n > 12 {
			return 0, fmt.Errorf("month out of range: %d", n)
		}
		return time.Month(n), nil
	}
	if m, ok := monthNames[strings.ToLower(s)]; ok {
		return m, nil
	}
	return 0, fmt.Errorf("invalid month: %q", s)
}

// DaysInMonth returns the number of calendar days in the given month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
