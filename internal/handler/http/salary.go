package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/staffhub-erp/staffhub-backend-go/internal/domain/salary"
	"github.com/staffhub-erp/staffhub-backend-go/internal/handler/http/response"
)

type SalaryHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type SalaryHandlerImpl struct {
	salaryService salary.ConfigurationService
}

func NewSalaryHandler(salaryService salary.ConfigurationService) SalaryHandler {
	return &SalaryHandlerImpl{salaryService: salaryService}
}

func (h *SalaryHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req salary.UpsertConfigurationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.salaryService.CreateConfiguration(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Salary configuration created successfully", resp)
}

func (h *SalaryHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Configuration ID is required", nil)
		return
	}

	resp, err := h.salaryService.GetConfiguration(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

func (h *SalaryHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	resp, err := h.salaryService.ListConfigurations(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

func (h *SalaryHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Configuration ID is required", nil)
		return
	}

	var req salary.UpsertConfigurationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.salaryService.UpdateConfiguration(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary configuration updated successfully", resp)
}

func (h *SalaryHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Configuration ID is required", nil)
		return
	}

	if err := h.salaryService.DeleteConfiguration(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary configuration deleted successfully", nil)
}
