package holiday

import "time"

// Holiday is a named inclusive date range. A day is a holiday iff it falls
// within any active range.
type Holiday struct {
	ID        string
	Name      string
	FromDate  time.Time
	ToDate    time.Time
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
