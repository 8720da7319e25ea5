package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/nimbus-hr/payroll-backend-go/internal/domain/advance"
	"github.com/nimbus-hr/payroll-backend-go/internal/handler/http/response"
)

type AdvanceHandler interface {
	ListAll(w http.ResponseWriter, r *http.Request)
	Decide(w http.ResponseWriter, r *http.Request)
}

type advanceHandlerImpl struct {
	advanceService advance.Service
}

func NewAdvanceHandler(advanceService advance.Service) AdvanceHandler {
	return &advanceHandlerImpl{advanceService: advanceService}
}

func toAdvanceResponse(req *advance.Request) advance.RequestResponse {
	resp := advance.RequestResponse{
		ID:             req.ID,
		EmployeeID:     req.EmployeeID,
		Amount:         req.Amount,
		Notes:          req.Notes,
		ApprovalStatus: string(req.ApprovalStatus),
		RequestedDate:  req.RequestedDate.Format("2006-01-02"),
		DeductionMonth: req.DeductionMonth,
		DeductionYear:  req.DeductionYear,
	}
	if req.FirstName != nil && req.LastName != nil {
		resp.EmployeeName = *req.FirstName + " " + *req.LastName
	}
	if req.ApprovedDate != nil {
		formatted := req.ApprovedDate.Format("2006-01-02")
		resp.ApprovedDate = &formatted
	}
	return resp
}

// ListAll implements AdvanceHandler
func (h *advanceHandlerImpl) ListAll(w http.ResponseWriter, r *http.Request) {
	requests, err := h.advanceService.ListAll(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	results := make([]advance.RequestResponse, 0, len(requests))
	for i := range requests {
		results = append(results, toAdvanceResponse(&requests[i]))
	}

	response.Success(w, results)
}

// Decide implements AdvanceHandler
func (h *advanceHandlerImpl) Decide(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid advance salary request ID", nil)
		return
	}

	var req advance.DecideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.advanceService.Decide(r.Context(), id, &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Advance salary request "+req.ApprovalStatus, toAdvanceResponse(result))
}
