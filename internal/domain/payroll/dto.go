package payroll

import (
	"github.com/shopspring/decimal"
)

type RunCycleRequest struct {
	Year  int
	Month int
}

// PayslipResult reports the computed amounts for a single employee.
type PayslipResult struct {
	EmployeeID    string          `json:"employee_id"`
	RefNo         string          `json:"ref_no"`
	GrossSalary   decimal.Decimal `json:"gross_salary"`
	LoanDeduction decimal.Decimal `json:"loan_deduction"`
	NetSalary     decimal.Decimal `json:"net_salary"`
}

type RunCycleResponse struct {
	Year               int             `json:"year"`
	Month              string          `json:"month"`
	EmployeesProcessed int             `json:"employees_processed"`
	SkippedEmployeeIDs []string        `json:"skipped_employee_ids"`
	Payslips           []PayslipResult `json:"payslips"`
}
