package account

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry is one row of an employee's running account. Balance is the
// post-entry balance: previous balance + debit - credit.
type LedgerEntry struct {
	ID            string
	EmployeeID    string
	RefNo         string
	Description   string
	Debit         decimal.Decimal
	Credit        decimal.Decimal
	Balance       decimal.Decimal
	PaymentMethod string
	PaymentDate   time.Time
	CreatedAt     time.Time

	// Joined fields
	EmployeeName *string
}
