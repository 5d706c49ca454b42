package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/staffhub-erp/staffhub-backend-go/internal/domain/attendance"
	"github.com/staffhub-erp/staffhub-backend-go/internal/handler/http/response"
)

type AttendanceRuleHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type AttendanceRuleHandlerImpl struct {
	ruleService attendance.RuleService
}

func NewAttendanceRuleHandler(ruleService attendance.RuleService) AttendanceRuleHandler {
	return &AttendanceRuleHandlerImpl{ruleService: ruleService}
}

func (h *AttendanceRuleHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req attendance.UpsertRuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.ruleService.CreateRule(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance rule created successfully", resp)
}

func (h *AttendanceRuleHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	resp, err := h.ruleService.ListRules(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

func (h *AttendanceRuleHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Rule ID is required", nil)
		return
	}

	var req attendance.UpsertRuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.ruleService.UpdateRule(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance rule updated successfully", resp)
}

func (h *AttendanceRuleHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Rule ID is required", nil)
		return
	}

	if err := h.ruleService.DeleteRule(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance rule deleted successfully", nil)
}
