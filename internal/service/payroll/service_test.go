package payroll

import (
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/staffhub-erp/staffhub-backend-go/internal/domain/account"
	"github.com/staffhub-erp/staffhub-backend-go/internal/domain/loan"
	"github.com/staffhub-erp/staffhub-backend-go/internal/domain/payroll"
	"github.com/staffhub-erp/staffhub-backend-go/internal/domain/salary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSalaryRepo struct {
	configs []salary.Configuration
}

func (f *fakeSalaryRepo) Create(ctx context.Context, c salary.Configuration) (salary.Configuration, error) {
	return c, nil
}
func (f *fakeSalaryRepo) GetByID(ctx context.Context, id string) (salary.Configuration, error) {
	return salary.Configuration{}, salary.ErrConfigurationNotFound
}
func (f *fakeSalaryRepo) List(ctx context.Context) ([]salary.Configuration, error) {
	return f.configs, nil
}
func (f *fakeSalaryRepo) ListActiveByPeriod(ctx context.Context, year int, month int) ([]salary.Configuration, error) {
	var out []salary.Configuration
	for _, c := range f.configs {
		if c.Status == salary.StatusActive && c.ConfigDate.Year() == year && int(c.ConfigDate.Month()) == month {
			out = append(out, c)
		}
	}
	return out, nil
}
func (f *fakeSalaryRepo) HasActiveInMonth(ctx context.Context, employeeID string, year, month int, excludeID string) (bool, error) {
	return false, nil
}
func (f *fakeSalaryRepo) Update(ctx context.Context, c salary.Configuration) error { return nil }
func (f *fakeSalaryRepo) Deactivate(ctx context.Context, id string) error          { return nil }

type fakeLoanRepo struct {
	loans map[string]*loan.Loan
}

func (f *fakeLoanRepo) Create(ctx context.Context, l loan.Loan) (loan.Loan, error) { return l, nil }
func (f *fakeLoanRepo) GetByID(ctx context.Context, id string) (loan.Loan, error) {
	if l, ok := f.loans[id]; ok {
		return *l, nil
	}
	return loan.Loan{}, loan.ErrLoanNotFound
}
func (f *fakeLoanRepo) List(ctx context.Context) ([]loan.Loan, error) { return nil, nil }
func (f *fakeLoanRepo) ListByEmployee(ctx context.Context, employeeID string) ([]loan.Loan, error) {
	return nil, nil
}
func (f *fakeLoanRepo) ListOutstanding(ctx context.Context, employeeID string) ([]loan.Loan, error) {
	var out []loan.Loan
	for _, l := range f.loans {
		if l.EmployeeID == employeeID && l.RemainingAmount.IsPositive() {
			out = append(out, *l)
		}
	}
	return out, nil
}
func (f *fakeLoanRepo) ApplyDeduction(ctx context.Context, id string, amount decimal.Decimal) error {
	l, ok := f.loans[id]
	if !ok || l.RemainingAmount.LessThan(amount) {
		return loan.ErrLoanNotFound
	}
	l.RemainingAmount = l.RemainingAmount.Sub(amount)
	l.ReturnedAmount = l.ReturnedAmount.Add(amount)
	return nil
}

func (f *fakeLoanRepo) snapshot() map[string]loan.Loan {
	out := make(map[string]loan.Loan, len(f.loans))
	for id, l := range f.loans {
		out[id] = *l
	}
	return out
}

func (f *fakeLoanRepo) restore(snap map[string]loan.Loan) {
	for id, l := range snap {
		cp := l
		f.loans[id] = &cp
	}
}

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
	return f.entries, nil
}
func (f *fakeLedgerRepo) List(ctx context.Context) ([]account.LedgerEntry, error) {
	return f.entries, nil
}

func newTestService(salaryRepo *fakeSalaryRepo, loanRepo *fakeLoanRepo, ledgerRepo *fakeLedgerRepo) *PayrollServiceImpl {
	s := &PayrollServiceImpl{
		salaryRepo: salaryRepo,
		loanRepo:   loanRepo,
		ledgerRepo: ledgerRepo,
		logger:     slog.Default(),
		location:   time.UTC,
		now: func() time.Time {
			return time.Date(2026, time.February, 1, 9, 0, 0, 0, time.UTC)
		},
	}
	// Mimic transaction rollback: restore the loan store and ledger when fn fails.
	s.inTx = func(ctx context.Context, fn func(ctx context.Context) error) error {
		loanSnap := loanRepo.snapshot()
		ledgerSnap := make([]account.LedgerEntry, len(ledgerRepo.entries))
		copy(ledgerSnap, ledgerRepo.entries)
		if err := fn(ctx); err != nil {
			loanRepo.restore(loanSnap)
			ledgerRepo.entries = ledgerSnap
			return err
		}
		return nil
	}
	return s
}

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

func fullMonthConfig(t *testing.T, employeeID string, total string) salary.Configuration {
	return salary.Configuration{
		ID:            "cfg-" + employeeID,
		EmployeeID:    employeeID,
		TotalSalary:   decimal.RequireFromString(total),
		EffectiveFrom: date(t, "2026-01-01"),
		ConfigDate:    date(t, "2026-01-31"),
		Status:        salary.StatusActive,
	}
}

func TestRunCycle_FullMonthWithLoanDeduction(t *testing.T) {
	salaryRepo := &fakeSalaryRepo{configs: []salary.Configuration{fullMonthConfig(t, "emp1", "60000")}}
	loanRepo := &fakeLoanRepo{loans: map[string]*loan.Loan{
		"loan1": {
			ID:                "loan1",
			EmployeeID:        "emp1",
			LoanAmount:        decimal.RequireFromString("50000"),
			DeductionPerCycle: decimal.RequireFromString("1000"),
			RemainingAmount:   decimal.RequireFromString("50000"),
			ReturnedAmount:    decimal.Zero,
		},
	}}
	ledgerRepo := &fakeLedgerRepo{}
	svc := newTestService(salaryRepo, loanRepo, ledgerRepo)

	resp, err := svc.RunCycle(context.Background(), payroll.RunCycleRequest{Year: 2026, Month: 1})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.EmployeesProcessed)
	assert.Empty(t, resp.SkippedEmployeeIDs)
	require.Len(t, resp.Payslips, 1)

	slip := resp.Payslips[0]
	assert.Equal(t, "SAL-202601-emp1", slip.RefNo)
	assert.True(t, slip.GrossSalary.Equal(decimal.RequireFromString("60000")), "gross %s", slip.GrossSalary)
	assert.True(t, slip.LoanDeduction.Equal(decimal.RequireFromString("1000")), "deduction %s", slip.LoanDeduction)
	assert.True(t, slip.NetSalary.Equal(decimal.RequireFromString("59000")), "net %s", slip.NetSalary)

	require.Len(t, ledgerRepo.entries, 1)
	entry := ledgerRepo.entries[0]
	assert.True(t, entry.Debit.Equal(decimal.RequireFromString("59000")))
	assert.True(t, entry.Balance.Equal(decimal.RequireFromString("59000")))

	l := loanRepo.loans["loan1"]
	assert.True(t, l.RemainingAmount.Equal(decimal.RequireFromString("49000")))
	assert.True(t, l.ReturnedAmount.Equal(decimal.RequireFromString("1000")))
}

func TestRunCycle_ProratesPartialMonth(t *testing.T) {
	config := fullMonthConfig(t, "emp1", "60000")
	config.EffectiveFrom = date(t, "2026-01-17")
	salaryRepo := &fakeSalaryRepo{configs: []salary.Configuration{config}}
	ledgerRepo := &fakeLedgerRepo{}
	svc := newTestService(salaryRepo, &fakeLoanRepo{loans: map[string]*loan.Loan{}}, ledgerRepo)

	resp, err := svc.RunCycle(context.Background(), payroll.RunCycleRequest{Year: 2026, Month: 1})
	require.NoError(t, err)
	require.Len(t, resp.Payslips, 1)

	// 15 effective days out of 31: 60000 * 15 / 31 = 29032.26
	assert.True(t, resp.Payslips[0].GrossSalary.Equal(decimal.RequireFromString("29032.26")),
		"gross %s", resp.Payslips[0].GrossSalary)
}

func TestRunCycle_CapsDeductionAtRemaining(t *testing.T) {
	salaryRepo := &fakeSalaryRepo{configs: []salary.Configuration{fullMonthConfig(t, "emp1", "60000")}}
	loanRepo := &fakeLoanRepo{loans: map[string]*loan.Loan{
		"loan1": {
			ID:                "loan1",
			EmployeeID:        "emp1",
			LoanAmount:        decimal.RequireFromString("10000"),
			DeductionPerCycle: decimal.RequireFromString("1000"),
			RemainingAmount:   decimal.RequireFromString("400"),
			ReturnedAmount:    decimal.RequireFromString("9600"),
		},
	}}
	svc := newTestService(salaryRepo, loanRepo, &fakeLedgerRepo{})

	resp, err := svc.RunCycle(context.Background(), payroll.RunCycleRequest{Year: 2026, Month: 1})
	require.NoError(t, err)

	assert.True(t, resp.Payslips[0].LoanDeduction.Equal(decimal.RequireFromString("400")))
	l := loanRepo.loans["loan1"]
	assert.True(t, l.RemainingAmount.IsZero(), "remaining %s", l.RemainingAmount)
	assert.True(t, l.ReturnedAmount.Equal(decimal.RequireFromString("10000")))
}

func TestRunCycle_SecondRunRejected(t *testing.T) {
	salaryRepo := &fakeSalaryRepo{configs: []salary.Configuration{fullMonthConfig(t, "emp1", "60000")}}
	ledgerRepo := &fakeLedgerRepo{}
	svc := newTestService(salaryRepo, &fakeLoanRepo{loans: map[string]*loan.Loan{}}, ledgerRepo)

	_, err := svc.RunCycle(context.Background(), payroll.RunCycleRequest{Year: 2026, Month: 1})
	require.NoError(t, err)

	_, err = svc.RunCycle(context.Background(), payroll.RunCycleRequest{Year: 2026, Month: 1})
	assert.ErrorIs(t, err, payroll.ErrCycleAlreadyRun)
	assert.Len(t, ledgerRepo.entries, 1)
}

func TestRunCycle_SkipsNegativeNetAndRollsBackLoans(t *testing.T) {
	// emp1: 2 effective days out of 31 of 3100 total = 200 gross, against a
	// 1000 installment. emp2 is a normal full month.
	config1 := fullMonthConfig(t, "emp1", "3100")
	config1.EffectiveFrom = date(t, "2026-01-30")
	salaryRepo := &fakeSalaryRepo{configs: []salary.Configuration{
		config1,
		fullMonthConfig(t, "emp2", "45000"),
	}}
	loanRepo := &fakeLoanRepo{loans: map[string]*loan.Loan{
		"loan1": {
			ID:                "loan1",
			EmployeeID:        "emp1",
			LoanAmount:        decimal.RequireFromString("20000"),
			DeductionPerCycle: decimal.RequireFromString("1000"),
			RemainingAmount:   decimal.RequireFromString("20000"),
			ReturnedAmount:    decimal.Zero,
		},
	}}
	ledgerRepo := &fakeLedgerRepo{}
	svc := newTestService(salaryRepo, loanRepo, ledgerRepo)

	resp, err := svc.RunCycle(context.Background(), payroll.RunCycleRequest{Year: 2026, Month: 1})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.EmployeesProcessed)
	assert.Equal(t, []string{"emp1"}, resp.SkippedEmployeeIDs)

	// The skipped employee's loan must be untouched.
	l := loanRepo.loans["loan1"]
	assert.True(t, l.RemainingAmount.Equal(decimal.RequireFromString("20000")), "remaining %s", l.RemainingAmount)
	assert.True(t, l.ReturnedAmount.IsZero())

	// Only emp2 got a ledger entry.
	require.Len(t, ledgerRepo.entries, 1)
	assert.Equal(t, "emp2", ledgerRepo.entries[0].EmployeeID)
}

func TestRunCycle_NoActiveSalaries(t *testing.T) {
	svc := newTestService(&fakeSalaryRepo{}, &fakeLoanRepo{loans: map[string]*loan.Loan{}}, &fakeLedgerRepo{})

	_, err := svc.RunCycle(context.Background(), payroll.RunCycleRequest{Year: 2026, Month: 1})
	assert.ErrorIs(t, err, payroll.ErrNoActiveSalaries)
}

func TestRunCycle_InvalidPeriod(t *testing.T) {
	svc := newTestService(&fakeSalaryRepo{}, &fakeLoanRepo{loans: map[string]*loan.Loan{}}, &fakeLedgerRepo{})

	_, err := svc.RunCycle(context.Background(), payroll.RunCycleRequest{Year: 2026, Month: 13})
	assert.ErrorIs(t, err, payroll.ErrInvalidCyclePeriod)
}

func TestRunCycle_BalanceAccumulates(t *testing.T) {
	salaryRepo := &fakeSalaryRepo{configs: []salary.Configuration{fullMonthConfig(t, "emp1", "60000")}}
	ledgerRepo := &fakeLedgerRepo{entries: []account.LedgerEntry{{
		EmployeeID: "emp1",
		RefNo:      "ADV-0001",
		Debit:      decimal.RequireFromString("500"),
		Credit:     decimal.Zero,
		Balance:    decimal.RequireFromString("500"),
	}}}
	svc := newTestService(salaryRepo, &fakeLoanRepo{loans: map[string]*loan.Loan{}}, ledgerRepo)

	_, err := svc.RunCycle(context.Background(), payroll.RunCycleRequest{Year: 2026, Month: 1})
	require.NoError(t, err)

	require.Len(t, ledgerRepo.entries, 2)
	assert.True(t, ledgerRepo.entries[1].Balance.Equal(decimal.RequireFromString("60500")))
}

func TestProratedSalary_ZeroWhenRangeOutsideMonth(t *testing.T) {
	config := salary.Configuration{
		TotalSalary:   decimal.RequireFromString("60000"),
		EffectiveFrom: date(t, "2026-02-10"),
		ConfigDate:    date(t, "2026-01-05"),
	}
	got := ProratedSalary(config, 2026, time.January)
	assert.True(t, got.IsZero(), "got %s", got)
}
