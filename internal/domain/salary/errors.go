package salary

import "errors"

var (
	ErrConfigurationNotFound = errors.New("salary configuration not found")
	ErrActiveConfigExists    = errors.New("an active salary configuration already exists for this employee in that month")
)
