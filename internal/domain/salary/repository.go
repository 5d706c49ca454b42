package salary

import (
	"context"
)

// ConfigurationRepository defines data access for salary configurations.
type ConfigurationRepository interface {
	Create(ctx context.Context, config Configuration) (Configuration, error)
	GetByID(ctx context.Context, id string) (Configuration, error)
	List(ctx context.Context) ([]Configuration, error)

	// ListActiveByPeriod returns ACTIVE configurations whose config_date
	// falls within the given calendar month.
	ListActiveByPeriod(ctx context.Context, year int, month int) ([]Configuration, error)

	// HasActiveInMonth reports whether the employee already holds an ACTIVE
	// configuration in the month of config_date, ignoring excludeID.
	HasActiveInMonth(ctx context.Context, employeeID string, year int, month int, excludeID string) (bool, error)

	Update(ctx context.Context, config Configuration) error

	// Deactivate soft deletes by flipping status to INACTIVE.
	Deactivate(ctx context.Context, id string) error
}
