package account

import (
	"context"

	"github.com/staffhub-erp/staffhub-backend-go/internal/domain/account"
	"github.com/staffhub-erp/staffhub-backend-go/internal/domain/employee"
	"github.com/staffhub-erp/staffhub-backend-go/internal/pkg/database"
	"github.com/staffhub-erp/staffhub-backend-go/internal/pkg/validator"
	"github.com/staffhub-erp/staffhub-backend-go/internal/repository/postgresql"
)

type LedgerServiceImpl struct {
	db           *database.DB
	ledgerRepo   account.LedgerRepository
	employeeRepo employee.EmployeeRepository

	inTx func(ctx context.Context, fn func(ctx context.Context) error) error
}

func NewLedgerService(
	db *database.DB,
	ledgerRepo account.LedgerRepository,
	employeeRepo employee.EmployeeRepository,
) account.LedgerService {
	return &LedgerServiceImpl{
		db:           db,
		ledgerRepo:   ledgerRepo,
		employeeRepo: employeeRepo,
		inTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
	}
}

func (s *LedgerServiceImpl) CreateEntry(ctx context.Context, req account.CreateEntryRequest) (account.EntryResponse, error) {
	if err := req.Validate(); err != nil {
		return account.EntryResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return account.EntryResponse{}, err
	}

	paymentDate, _ := validator.IsValidDate(req.PaymentDate)
	if paymentDate.Before(emp.JoiningDate) {
		return account.EntryResponse{}, account.ErrPaymentBeforeJoin
	}

	var created account.LedgerEntry
	err = s.inTx(ctx, func(ctx context.Context) error {
		balance, err := s.ledgerRepo.GetLatestBalance(ctx, req.EmployeeID)
		if err != nil {
			return err
		}

		created, err = s.ledgerRepo.Create(ctx, account.LedgerEntry{
			EmployeeID:    req.EmployeeID,
			RefNo:         req.RefNo,
			Description:   req.Description,
			Debit:         req.Debit,
			Credit:        req.Credit,
			Balance:       balance.Add(req.Debit).Sub(req.Credit),
			PaymentMethod: req.PaymentMethod,
			PaymentDate:   paymentDate,
		})
		return err
	})
	if err != nil {
		return account.EntryResponse{}, err
	}

	return toResponse(created), nil
}

func (s *LedgerServiceImpl) GetStatement(ctx context.Context, employeeID string) (account.StatementResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return account.StatementResponse{}, err
	}

	entries, err := s.ledgerRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return account.StatementResponse{}, err
	}

	balance, err := s.ledgerRepo.GetLatestBalance(ctx, employeeID)
	if err != nil {
		return account.StatementResponse{}, err
	}

	responses := make([]account.EntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, toResponse(entry))
	}

	return account.StatementResponse{
		EmployeeID: employeeID,
		Entries:    responses,
		Balance:    balance,
	}, nil
}

func (s *LedgerServiceImpl) ListEntries(ctx context.Context) ([]account.EntryResponse, error) {
	entries, err := s.ledgerRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]account.EntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, toResponse(entry))
	}
	return responses, nil
}

func toResponse(entry account.LedgerEntry) account.EntryResponse {
	resp := account.EntryResponse{
		ID:            entry.ID,
		EmployeeID:    entry.EmployeeID,
		RefNo:         entry.RefNo,
		Description:   entry.Description,
		Debit:         entry.Debit,
		Credit:        entry.Credit,
		Balance:       entry.Balance,
		PaymentMethod: entry.PaymentMethod,
		PaymentDate:   entry.PaymentDate.Format("2006-01-02"),
	}
	if entry.EmployeeName != nil {
		resp.EmployeeName = *entry.EmployeeName
	}
	return resp
}
