package loan

import (
	"context"

	"github.com/shopspring/decimal"
)

// LoanRepository defines data access for loans.
type LoanRepository interface {
	Create(ctx context.Context, loan Loan) (Loan, error)
	GetByID(ctx context.Context, id string) (Loan, error)
	List(ctx context.Context) ([]Loan, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Loan, error)

	// ListOutstanding returns the employee's loans with a positive remaining
	// amount, locked for update when called inside a transaction.
	ListOutstanding(ctx context.Context, employeeID string) ([]Loan, error)

	// ApplyDeduction moves amount from remaining to returned on one loan.
	ApplyDeduction(ctx context.Context, id string, amount decimal.Decimal) error
}
