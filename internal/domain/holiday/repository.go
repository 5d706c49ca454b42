package holiday

import (
	"context"
	"time"
)

// HolidayRepository defines data access for holidays.
type HolidayRepository interface {
	Create(ctx context.Context, holiday Holiday) (Holiday, error)

	// FindCovering returns the active holiday whose range contains date, or
	// nil when the day is an ordinary working day.
	FindCovering(ctx context.Context, date time.Time) (*Holiday, error)

	// ExistsDuplicate reports whether an active holiday with the same name
	// (case-insensitive) and range exists, ignoring excludeID.
	ExistsDuplicate(ctx context.Context, name string, from, to time.Time, excludeID string) (bool, error)

	List(ctx context.Context) ([]Holiday, error)
	Update(ctx context.Context, holiday Holiday) error
	Delete(ctx context.Context, id string) error
}
