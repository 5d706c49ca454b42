package account

import (
	"github.com/shopspring/decimal"
	"github.com/staffhub-erp/staffhub-backend-go/internal/pkg/validator"
)

var paymentMethods = []string{"Cash", "Bank Transfer", "Cheque"}

type CreateEntryRequest struct {
	EmployeeID    string          `json:"employee_id"`
	RefNo         string          `json:"ref_no"`
	Description   string          `json:"description"`
	Debit         decimal.Decimal `json:"debit"`
	Credit        decimal.Decimal `json:"credit"`
	PaymentMethod string          `json:"payment_method"`
	PaymentDate   string          `json:"payment_date"`
}

func (r *CreateEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if validator.IsEmpty(r.RefNo) {
		errs = append(errs, validator.ValidationError{
			Field:   "ref_no",
			Message: "ref_no is required",
		})
	}
	if r.Debit.IsNegative() || r.Credit.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "debit and credit cannot be negative",
		})
	}
	if r.Debit.IsZero() && r.Credit.IsZero() {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "either debit or credit must be greater than zero",
		})
	}
	if !validator.IsInSlice(r.PaymentMethod, paymentMethods) {
		errs = append(errs, validator.ValidationError{
			Field:   "payment_method",
			Message: "payment_method must be one of Cash, Bank Transfer, Cheque",
		})
	}
	if _, ok := validator.IsValidDate(r.PaymentDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "payment_date",
			Message: "payment_date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EntryResponse struct {
	ID            string          `json:"id"`
	EmployeeID    string          `json:"employee_id"`
	EmployeeName  string          `json:"employee_name,omitempty"`
	RefNo         string          `json:"ref_no"`
	Description   string          `json:"description"`
	Debit         decimal.Decimal `json:"debit"`
	Credit        decimal.Decimal `json:"credit"`
	Balance       decimal.Decimal `json:"balance"`
	PaymentMethod string          `json:"payment_method"`
	PaymentDate   string          `json:"payment_date"`
}

type StatementResponse struct {
	EmployeeID string          `json:"employee_id"`
	Entries    []EntryResponse `json:"entries"`
	Balance    decimal.Decimal `json:"balance"`
}
