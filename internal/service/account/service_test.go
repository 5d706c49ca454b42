package account

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/staffhub-erp/staffhub-backend-go/internal/domain/account"
	"github.com/staffhub-erp/staffhub-backend-go/internal/domain/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLedgerRepo struct {
	entries []account.LedgerEntry
}

func (f *fakeLedgerRepo) Create(ctx context.Context, e account.LedgerEntry) (account.LedgerEntry, error) {
	for _, existing := range f.entries {
		if existing.RefNo == e.RefNo {
			return account.LedgerEntry{}, account.ErrDuplicateRefNo
		}
	}
	f.entries = append(f.entries, e)
	return e, nil
}

func (f *fakeLedgerRepo) GetLatestBalance(ctx context.Context, employeeID string) (decimal.Decimal, error) {
	balance := decimal.Zero
	for _, e := range f.entries {
		if e.EmployeeID == employeeID {
			balance = e.Balance
		}
	}
	return balance, nil
}

func (f *fakeLedgerRepo) HasRefWithPrefix(ctx context.Context, prefix string) (bool, error) {
	for _, e := range f.entries {
		if strings.HasPrefix(e.RefNo, prefix) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeLedgerRepo) ListByEmployee(ctx context.Context, employeeID string) ([]account.LedgerEntry, error) {
	var out []account.LedgerEntry
	for _, e := range f.entries {
		if e.EmployeeID == employeeID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeLedgerRepo) List(ctx context.Context) ([]account.LedgerEntry, error) {
	return f.entries, nil
}

type fakeEmployeeRepo struct {
	joiningDate time.Time
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	return e, nil
}
func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	if id == "emp1" {
		return employee.Employee{ID: id, JoiningDate: f.joiningDate}, nil
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}
func (f *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) { return nil, nil }
func (f *fakeEmployeeRepo) Update(ctx context.Context, e employee.Employee) error { return nil }
func (f *fakeEmployeeRepo) Deactivate(ctx context.Context, id string) error       { return nil }

func newTestService(ledgerRepo *fakeLedgerRepo) *LedgerServiceImpl {
	return &LedgerServiceImpl{
		ledgerRepo: ledgerRepo,
		employeeRepo: &fakeEmployeeRepo{
			joiningDate: time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
		},
		inTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		},
	}
}

func validRequest() account.CreateEntryRequest {
	return account.CreateEntryRequest{
		EmployeeID:    "emp1",
		RefNo:         "ADV-0001",
		Description:   "Salary advance",
		Debit:         decimal.RequireFromString("1500"),
		Credit:        decimal.Zero,
		PaymentMethod: "Cash",
		PaymentDate:   "2026-01-15",
	}
}

func TestCreateEntry_ComputesRunningBalance(t *testing.T) {
	ledgerRepo := &fakeLedgerRepo{}
	svc := newTestService(ledgerRepo)

	first, err := svc.CreateEntry(context.Background(), validRequest())
	require.NoError(t, err)
	assert.True(t, first.Balance.Equal(decimal.RequireFromString("1500")), "balance %s", first.Balance)

	second := validRequest()
	second.RefNo = "PAY-0001"
	second.Debit = decimal.Zero
	second.Credit = decimal.RequireFromString("400")
	resp, err := svc.CreateEntry(context.Background(), second)
	require.NoError(t, err)
	assert.True(t, resp.Balance.Equal(decimal.RequireFromString("1100")), "balance %s", resp.Balance)
}

func TestCreateEntry_DuplicateRefNo(t *testing.T) {
	svc := newTestService(&fakeLedgerRepo{})

	_, err := svc.CreateEntry(context.Background(), validRequest())
	require.NoError(t, err)

	_, err = svc.CreateEntry(context.Background(), validRequest())
	assert.ErrorIs(t, err, account.ErrDuplicateRefNo)
}

func TestCreateEntry_PaymentBeforeJoiningDate(t *testing.T) {
	svc := newTestService(&fakeLedgerRepo{})

	req := validRequest()
	req.PaymentDate = "2025-05-20"
	_, err := svc.CreateEntry(context.Background(), req)
	assert.ErrorIs(t, err, account.ErrPaymentBeforeJoin)
}

func TestCreateEntry_RequiresAnAmount(t *testing.T) {
	svc := newTestService(&fakeLedgerRepo{})

	req := validRequest()
	req.Debit = decimal.Zero
	req.Credit = decimal.Zero
	_, err := svc.CreateEntry(context.Background(), req)
	assert.Error(t, err)
}

func TestGetStatement(t *testing.T) {
	ledgerRepo := &fakeLedgerRepo{}
	svc := newTestService(ledgerRepo)

	_, err := svc.CreateEntry(context.Background(), validRequest())
	require.NoError(t, err)

	statement, err := svc.GetStatement(context.Background(), "emp1")
	require.NoError(t, err)
	assert.Len(t, statement.Entries, 1)
	assert.True(t, statement.Balance.Equal(decimal.RequireFromString("1500")))
}
