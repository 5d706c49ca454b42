package account

import (
	"context"

	"github.com/shopspring/decimal"
)

// LedgerRepository defines data access for employee account ledgers.
type LedgerRepository interface {
	// Create inserts an entry. A duplicate ref_no maps to ErrDuplicateRefNo.
	Create(ctx context.Context, entry LedgerEntry) (LedgerEntry, error)

	// GetLatestBalance returns the balance of the employee's most recent
	// entry, or zero when the ledger is empty.
	GetLatestBalance(ctx context.Context, employeeID string) (decimal.Decimal, error)

	// HasRefWithPrefix reports whether any entry's ref_no starts with prefix.
	HasRefWithPrefix(ctx context.Context, prefix string) (bool, error)

	ListByEmployee(ctx context.Context, employeeID string) ([]LedgerEntry, error)
	List(ctx context.Context) ([]LedgerEntry, error)
}
