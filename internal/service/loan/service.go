package loan

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/staffhub-erp/staffhub-backend-go/internal/domain/employee"
	"github.com/staffhub-erp/staffhub-backend-go/internal/domain/loan"
	"github.com/staffhub-erp/staffhub-backend-go/internal/pkg/validator"
)

type LoanServiceImpl struct {
	loanRepo     loan.LoanRepository
	employeeRepo employee.EmployeeRepository
}

func NewLoanService(loanRepo loan.LoanRepository, employeeRepo employee.EmployeeRepository) loan.LoanService {
	return &LoanServiceImpl{
		loanRepo:     loanRepo,
		employeeRepo: employeeRepo,
	}
}

func (s *LoanServiceImpl) CreateLoan(ctx context.Context, req loan.CreateLoanRequest) (loan.LoanResponse, error) {
	if err := req.Validate(); err != nil {
		return loan.LoanResponse{}, err
	}
	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return loan.LoanResponse{}, err
	}

	applyDate, _ := validator.IsValidDate(req.ApplyDate)
	refNo := fmt.Sprintf("LN-%s", strings.ToUpper(uuid.NewString()[:8]))

	created, err := s.loanRepo.Create(ctx, loan.Loan{
		EmployeeID:        req.EmployeeID,
		RefNo:             refNo,
		ApplyDate:         applyDate,
		LoanAmount:        req.LoanAmount,
		DeductionPerCycle: req.DeductionPerCycle,
		RemainingAmount:   req.LoanAmount,
		ReturnedAmount:    decimal.Zero,
	})
	if err != nil {
		return loan.LoanResponse{}, err
	}

	return toResponse(created), nil
}

func (s *LoanServiceImpl) ListLoans(ctx context.Context) ([]loan.LoanResponse, error) {
	loans, err := s.loanRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toResponses(loans), nil
}

func (s *LoanServiceImpl) ListEmployeeLoans(ctx context.Context, employeeID string) ([]loan.LoanResponse, error) {
	loans, err := s.loanRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return toResponses(loans), nil
}

func toResponses(loans []loan.Loan) []loan.LoanResponse {
	responses := make([]loan.LoanResponse, 0, len(loans))
	for _, l := range loans {
		responses = append(responses, toResponse(l))
	}
	return responses
}

func toResponse(l loan.Loan) loan.LoanResponse {
	resp := loan.LoanResponse{
		ID:                l.ID,
		EmployeeID:        l.EmployeeID,
		RefNo:             l.RefNo,
		ApplyDate:         l.ApplyDate.Format("2006-01-02"),
		LoanAmount:        l.LoanAmount,
		DeductionPerCycle: l.DeductionPerCycle,
		RemainingAmount:   l.RemainingAmount,
		ReturnedAmount:    l.ReturnedAmount,
	}
	if l.EmployeeName != nil {
		resp.EmployeeName = *l.EmployeeName
	}
	return resp
}
