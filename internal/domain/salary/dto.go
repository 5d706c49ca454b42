package salary

import (
	"github.com/shopspring/decimal"
	"github.com/staffhub-erp/staffhub-backend-go/internal/pkg/validator"
)

type UpsertConfigurationRequest struct {
	EmployeeID         string          `json:"employee_id"`
	SalaryAmount       decimal.Decimal `json:"salary_amount"`
	MonthAllowance     decimal.Decimal `json:"month_allowance"`
	TransportAllowance decimal.Decimal `json:"transport_allowance"`
	MedicalAllowance   decimal.Decimal `json:"medical_allowance"`
	ConfigDate         string          `json:"config_date"`
	EffectiveFrom      string          `json:"effective_from"`
}

func (r *UpsertConfigurationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if !r.SalaryAmount.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "salary_amount",
			Message: "salary_amount must be greater than zero",
		})
	}
	for field, v := range map[string]decimal.Decimal{
		"month_allowance":     r.MonthAllowance,
		"transport_allowance": r.TransportAllowance,
		"medical_allowance":   r.MedicalAllowance,
	} {
		if v.IsNegative() {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " cannot be negative",
			})
		}
	}

	configDate, configOK := validator.IsValidDate(r.ConfigDate)
	if !configOK {
		errs = append(errs, validator.ValidationError{
			Field:   "config_date",
			Message: "config_date must be in YYYY-MM-DD format",
		})
	}
	effectiveFrom, effectiveOK := validator.IsValidDate(r.EffectiveFrom)
	if !effectiveOK {
		errs = append(errs, validator.ValidationError{
			Field:   "effective_from",
			Message: "effective_from must be in YYYY-MM-DD format",
		})
	}
	if configOK && effectiveOK && effectiveFrom.After(configDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "effective_from",
			Message: "effective_from cannot be after config_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ConfigurationResponse struct {
	ID                 string          `json:"id"`
	EmployeeID         string          `json:"employee_id"`
	EmployeeName       string          `json:"employee_name,omitempty"`
	SalaryAmount       decimal.Decimal `json:"salary_amount"`
	MonthAllowance     decimal.Decimal `json:"month_allowance"`
	TransportAllowance decimal.Decimal `json:"transport_allowance"`
	MedicalAllowance   decimal.Decimal `json:"medical_allowance"`
	TotalSalary        decimal.Decimal `json:"total_salary"`
	ConfigDate         string          `json:"config_date"`
	EffectiveFrom      string          `json:"effective_from"`
	Status             string          `json:"status"`
}
