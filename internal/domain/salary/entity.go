package salary

import (
	"time"

	"github.com/shopspring/decimal"
)

// ConfigStatus enum
type ConfigStatus string

const (
	StatusActive   ConfigStatus = "ACTIVE"
	StatusInactive ConfigStatus = "INACTIVE"
)

// Configuration is one employee's salary setup. At most one ACTIVE
// configuration may exist per employee per calendar month; the payroll cycle
// prorates by the span between EffectiveFrom and ConfigDate.
type Configuration struct {
	ID                 string
	EmployeeID         string
	SalaryAmount       decimal.Decimal
	MonthAllowance     decimal.Decimal
	TransportAllowance decimal.Decimal
	MedicalAllowance   decimal.Decimal
	TotalSalary        decimal.Decimal
	ConfigDate         time.Time
	EffectiveFrom      time.Time
	Status             ConfigStatus
	CreatedAt          time.Time
	UpdatedAt          time.Time

	// Joined fields
	EmployeeName *string
}
