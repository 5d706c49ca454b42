package payroll

import "context"

// Service runs salary cycles. A cycle is idempotent per (year, month): a
// second run for the same period returns ErrCycleAlreadyRun.
type Service interface {
	RunCycle(ctx context.Context, req RunCycleRequest) (RunCycleResponse, error)
}
