package loan

import "context"

type LoanService interface {
	CreateLoan(ctx context.Context, req CreateLoanRequest) (LoanResponse, error)
	ListLoans(ctx context.Context) ([]LoanResponse, error)
	ListEmployeeLoans(ctx context.Context, employeeID string) ([]LoanResponse, error)
}
