package loan

import (
	"time"

	"github.com/shopspring/decimal"
)

// Loan is an employee loan amortized by a fixed installment each payroll
// cycle. RemainingAmount only ever decreases and never goes below zero.
type Loan struct {
	ID                string
	EmployeeID        string
	RefNo             string
	ApplyDate         time.Time
	LoanAmount        decimal.Decimal
	DeductionPerCycle decimal.Decimal
	RemainingAmount   decimal.Decimal
	ReturnedAmount    decimal.Decimal
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// Joined fields
	EmployeeName *string
}

// InstallmentDue is the amount the next payroll cycle deducts: the fixed
// installment, capped by what is still outstanding.
func (l Loan) InstallmentDue() decimal.Decimal {
	if l.RemainingAmount.LessThan(l.DeductionPerCycle) {
		return l.RemainingAmount
	}
	return l.DeductionPerCycle
}
