package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"github.com/staffhub-erp/staffhub-backend-go/internal/domain/account"
	"github.com/staffhub-erp/staffhub-backend-go/internal/domain/loan"
	"github.com/staffhub-erp/staffhub-backend-go/internal/domain/payroll"
	"github.com/staffhub-erp/staffhub-backend-go/internal/domain/salary"
	"github.com/staffhub-erp/staffhub-backend-go/internal/pkg/database"
	"github.com/staffhub-erp/staffhub-backend-go/internal/repository/postgresql"
)

type PayrollServiceImpl struct {
	db         *database.DB
	salaryRepo salary.ConfigurationRepository
	loanRepo   loan.LoanRepository
	ledgerRepo account.LedgerRepository
	logger     *slog.Logger
	location   *time.Location
	now        func() time.Time

	// inTx wraps per-employee posting in a database transaction.
	inTx func(ctx context.Context, fn func(ctx context.Context) error) error
}

func NewPayrollService(
	db *database.DB,
	salaryRepo salary.ConfigurationRepository,
	loanRepo loan.LoanRepository,
	ledgerRepo account.LedgerRepository,
	logger *slog.Logger,
	location *time.Location,
) payroll.Service {
	return &PayrollServiceImpl{
		db:         db,
		salaryRepo: salaryRepo,
		loanRepo:   loanRepo,
		ledgerRepo: ledgerRepo,
		logger:     logger,
		location:   location,
		now:        time.Now,
		inTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
	}
}

// errNegativeNet aborts an employee's posting transaction so loan deductions
// roll back along with the skipped payslip.
var errNegativeNet = errors.New("net salary is negative")

func (s *PayrollServiceImpl) RunCycle(ctx context.Context, req payroll.RunCycleRequest) (payroll.RunCycleResponse, error) {
	if req.Month < 1 || req.Month > 12 {
		return payroll.RunCycleResponse{}, payroll.ErrInvalidCyclePeriod
	}
	if req.Year < 2000 || req.Year > 2200 {
		return payroll.RunCycleResponse{}, payroll.ErrInvalidCyclePeriod
	}
	month := time.Month(req.Month)

	prefix := payroll.CycleRefPrefix(req.Year, month)
	alreadyRun, err := s.ledgerRepo.HasRefWithPrefix(ctx, prefix)
	if err != nil {
		return payroll.RunCycleResponse{}, err
	}
	if alreadyRun {
		return payroll.RunCycleResponse{}, payroll.ErrCycleAlreadyRun
	}

	configs, err := s.salaryRepo.ListActiveByPeriod(ctx, req.Year, req.Month)
	if err != nil {
		return payroll.RunCycleResponse{}, err
	}
	if len(configs) == 0 {
		return payroll.RunCycleResponse{}, payroll.ErrNoActiveSalaries
	}

	resp := payroll.RunCycleResponse{
		Year:               req.Year,
		Month:              month.String(),
		SkippedEmployeeIDs: []string{},
		Payslips:           []payroll.PayslipResult{},
	}

	for _, config := range configs {
		slip, err := s.postEmployee(ctx, config, req.Year, month)
		if err != nil {
			if errors.Is(err, errNegativeNet) {
				s.logger.Warn("skipping employee with negative net salary",
					slog.String("employee_id", config.EmployeeID),
					slog.Int("year", req.Year),
					slog.String("month", month.String()),
				)
				resp.SkippedEmployeeIDs = append(resp.SkippedEmployeeIDs, config.EmployeeID)
				continue
			}
			// A duplicate cycle ref means another run got here first.
			if errors.Is(err, account.ErrDuplicateRefNo) {
				return payroll.RunCycleResponse{}, payroll.ErrCycleAlreadyRun
			}
			return payroll.RunCycleResponse{}, fmt.Errorf("post salary for employee %s: %w", config.EmployeeID, err)
		}
		resp.Payslips = append(resp.Payslips, slip)
		resp.EmployeesProcessed++
	}

	s.logger.Info("payroll cycle completed",
		slog.Int("year", req.Year),
		slog.String("month", month.String()),
		slog.Int("processed", resp.EmployeesProcessed),
		slog.Int("skipped", len(resp.SkippedEmployeeIDs)),
	)

	return resp, nil
}

// postEmployee computes one employee's payslip and writes the loan deductions
// and the ledger entry atomically. A negative net aborts the transaction and
// returns errNegativeNet.
func (s *PayrollServiceImpl) postEmployee(ctx context.Context, config salary.Configuration, year int, month time.Month) (payroll.PayslipResult, error) {
	var slip payroll.PayslipResult

	err := s.inTx(ctx, func(ctx context.Context) error {
		gross := ProratedSalary(config, year, month)

		loans, err := s.loanRepo.ListOutstanding(ctx, config.EmployeeID)
		if err != nil {
			return err
		}

		deduction := decimal.Zero
		for _, l := range loans {
			due := l.InstallmentDue()
			if due.IsZero() {
				continue
			}
			if err := s.loanRepo.ApplyDeduction(ctx, l.ID, due); err != nil {
				return err
			}
			deduction = deduction.Add(due)
		}

		net := gross.Sub(deduction)
		if net.IsNegative() {
			return errNegativeNet
		}

		balance, err := s.ledgerRepo.GetLatestBalance(ctx, config.EmployeeID)
		if err != nil {
			return err
		}

		refNo := payroll.CycleRef(year, month, config.EmployeeID)
		entry := account.LedgerEntry{
			EmployeeID:    config.EmployeeID,
			RefNo:         refNo,
			Description:   fmt.Sprintf("Salary %s %d", month.String(), year),
			Debit:         net,
			Credit:        decimal.Zero,
			Balance:       balance.Add(net),
			PaymentMethod: "Bank Transfer",
			PaymentDate:   calendarDate(s.now().In(s.location)),
		}
		if _, err := s.ledgerRepo.Create(ctx, entry); err != nil {
			return err
		}

		slip = payroll.PayslipResult{
			EmployeeID:    config.EmployeeID,
			RefNo:         refNo,
			GrossSalary:   gross,
			LoanDeduction: deduction,
			NetSalary:     net,
		}
		return nil
	})
	if err != nil {
		return payroll.PayslipResult{}, err
	}

	return slip, nil
}

// ProratedSalary scales the configured total by the effective days worked in
// the cycle month: days from effective_from through config_date, clamped to
// the month, over the month's day count. Rounded to 2 decimal places.
func ProratedSalary(config salary.Configuration, year int, month time.Month) decimal.Decimal {
	daysInMonth := payroll.DaysInMonth(year, month)
	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := time.Date(year, month, daysInMonth, 0, 0, 0, 0, time.UTC)

	from := config.EffectiveFrom
	if from.Before(monthStart) {
		from = monthStart
	}
	to := config.ConfigDate
	if to.After(monthEnd) {
		to = monthEnd
	}
	if to.Before(from) {
		return decimal.Zero
	}

	effectiveDays := int(to.Sub(from).Hours()/24) + 1
	if effectiveDays >= daysInMonth {
		return config.TotalSalary.Round(2)
	}

	return config.TotalSalary.
		Mul(decimal.NewFromInt(int64(effectiveDays))).
		Div(decimal.NewFromInt(int64(daysInMonth))).
		Round(2)
}

func calendarDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
