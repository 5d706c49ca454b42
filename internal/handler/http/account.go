package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/staffhub-erp/staffhub-backend-go/internal/domain/account"
	"github.com/staffhub-erp/staffhub-backend-go/internal/handler/http/response"
)

type AccountHandler interface {
	CreateEntry(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	GetStatement(w http.ResponseWriter, r *http.Request)
}

type AccountHandlerImpl struct {
	ledgerService account.LedgerService
}

func NewAccountHandler(ledgerService account.LedgerService) AccountHandler {
	return &AccountHandlerImpl{ledgerService: ledgerService}
}

func (h *AccountHandlerImpl) CreateEntry(w http.ResponseWriter, r *http.Request) {
	var req account.CreateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.ledgerService.CreateEntry(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Ledger entry created successfully", resp)
}

func (h *AccountHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	resp, err := h.ledgerService.ListEntries(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

func (h *AccountHandlerImpl) GetStatement(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	resp, err := h.ledgerService.GetStatement(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
