package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/staffhub-erp/staffhub-backend-go/internal/domain/payroll"
	"github.com/staffhub-erp/staffhub-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	RunCycle(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.Service
}

func NewPayrollHandler(payrollService payroll.Service) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

// RunCycle processes the salary cycle for the year and month in the path.
// The month segment accepts a number or an English month name.
func (h *PayrollHandlerImpl) RunCycle(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		response.BadRequest(w, "Invalid year", nil)
		return
	}

	month, err := payroll.ParseMonth(chi.URLParam(r, "month"))
	if err != nil {
		response.BadRequest(w, "Invalid month", nil)
		return
	}

	resp, err := h.payrollService.RunCycle(r.Context(), payroll.RunCycleRequest{
		Year:  year,
		Month: int(month),
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary cycle processed successfully", resp)
}
