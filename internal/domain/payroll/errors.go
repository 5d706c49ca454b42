package payroll

import "errors"

var (
	ErrCycleAlreadyRun   = errors.New("payroll cycle already processed for this period")
	ErrNoActiveSalaries  = errors.New("no active salary configurations found for this period")
	ErrInvalidCyclePeriod = errors.New("invalid payroll cycle period")
)
