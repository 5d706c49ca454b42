package loan

import (
	"github.com/shopspring/decimal"
	"github.com/staffhub-erp/staffhub-backend-go/internal/pkg/validator"
)

type CreateLoanRequest struct {
	EmployeeID        string          `json:"employee_id"`
	ApplyDate         string          `json:"apply_date"`
	LoanAmount        decimal.Decimal `json:"loan_amount"`
	DeductionPerCycle decimal.Decimal `json:"deduction_per_cycle"`
}

func (r *CreateLoanRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if _, ok := validator.IsValidDate(r.ApplyDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "apply_date",
			Message: "apply_date must be in YYYY-MM-DD format",
		})
	}
	if !r.LoanAmount.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "loan_amount",
			Message: "loan_amount must be greater than zero",
		})
	}
	if r.DeductionPerCycle.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "deduction_per_cycle",
			Message: "deduction_per_cycle cannot be negative",
		})
	}
	if r.DeductionPerCycle.GreaterThan(r.LoanAmount) {
		errs = append(errs, validator.ValidationError{
			Field:   "deduction_per_cycle",
			Message: "deduction_per_cycle cannot exceed loan_amount",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LoanResponse struct {
	ID                string          `json:"id"`
	EmployeeID        string          `json:"employee_id"`
	EmployeeName      string          `json:"employee_name,omitempty"`
	RefNo             string          `json:"ref_no"`
	ApplyDate         string          `json:"apply_date"`
	LoanAmount        decimal.Decimal `json:"loan_amount"`
	DeductionPerCycle decimal.Decimal `json:"deduction_per_cycle"`
	RemainingAmount   decimal.Decimal `json:"remaining_amount"`
	ReturnedAmount    decimal.Decimal `json:"returned_amount"`
}
