package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/nimbus-hr/payroll-backend-go/internal/domain/adjustment"
	"github.com/nimbus-hr/payroll-backend-go/internal/handler/http/response"
)

type AdjustmentHandler interface {
	CreateBonus(w http.ResponseWriter, r *http.Request)
	ListBonuses(w http.ResponseWriter, r *http.Request)
	SetBonusApproval(w http.ResponseWriter, r *http.Request)
	DeleteBonus(w http.ResponseWriter, r *http.Request)
	CreateDeduction(w http.ResponseWriter, r *http.Request)
	ListDeductions(w http.ResponseWriter, r *http.Request)
	DeleteDeduction(w http.ResponseWriter, r *http.Request)
	CreateExtraDay(w http.ResponseWriter, r *http.Request)
	ListExtraDays(w http.ResponseWriter, r *http.Request)
	DeleteExtraDay(w http.ResponseWriter, r *http.Request)
}

type adjustmentHandlerImpl struct {
	adjustmentService adjustment.Service
}

func NewAdjustmentHandler(adjustmentService adjustment.Service) AdjustmentHandler {
	return &adjustmentHandlerImpl{adjustmentService: adjustmentService}
}

func periodFilterFromQuery(r *http.Request) adjustment.PeriodFilter {
	filter := adjustment.PeriodFilter{
		EmployeeID: r.URL.Query().Get("employee_id"),
	}
	if m := r.URL.Query().Get("month"); m != "" {
		if month, err := strconv.Atoi(m); err == nil {
			filter.Month = month
		}
	}
	if y := r.URL.Query().Get("year"); y != "" {
		if year, err := strconv.Atoi(y); err == nil {
			filter.Year = year
		}
	}
	return filter
}

func parseID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil
}

func toBonusResponse(b *adjustment.Bonus) adjustment.BonusResponse {
	resp := adjustment.BonusResponse{
		ID:            b.ID,
		EmployeeID:    b.EmployeeID,
		BonusType:     b.BonusType,
		Amount:        b.Amount,
		Description:   b.Description,
		Date:          b.Date.Format("2006-01-02"),
		BonusApproved: b.BonusApproved,
	}
	if b.ApprovalDate != nil {
		formatted := b.ApprovalDate.Format("2006-01-02")
		resp.ApprovalDate = &formatted
	}
	return resp
}

func toDeductionResponse(d *adjustment.Deduction) adjustment.DeductionResponse {
	return adjustment.DeductionResponse{
		ID:            d.ID,
		EmployeeID:    d.EmployeeID,
		DeductionType: d.DeductionType,
		Amount:        d.Amount,
		Description:   d.Description,
		Date:          d.Date.Format("2006-01-02"),
	}
}

func toExtraDayResponse(ed *adjustment.ExtraDay) adjustment.ExtraDayResponse {
	return adjustment.ExtraDayResponse{
		ID:         ed.ID,
		EmployeeID: ed.EmployeeID,
		DaysCount:  ed.DaysCount,
		Reason:     ed.Reason,
		Date:       ed.Date.Format("2006-01-02"),
	}
}

// CreateBonus implements AdjustmentHandler
func (h *adjustmentHandlerImpl) CreateBonus(w http.ResponseWriter, r *http.Request) {
	var req adjustment.CreateBonusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	bonus, err := h.adjustmentService.CreateBonus(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Bonus created", toBonusResponse(bonus))
}

// ListBonuses implements AdjustmentHandler
func (h *adjustmentHandlerImpl) ListBonuses(w http.ResponseWriter, r *http.Request) {
	bonuses, err := h.adjustmentService.ListBonuses(r.Context(), periodFilterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	results := make([]adjustment.BonusResponse, 0, len(bonuses))
	for i := range bonuses {
		results = append(results, toBonusResponse(&bonuses[i]))
	}

	response.Success(w, results)
}

// SetBonusApproval implements AdjustmentHandler
func (h *adjustmentHandlerImpl) SetBonusApproval(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		response.BadRequest(w, "Invalid bonus ID", nil)
		return
	}

	var req adjustment.SetBonusApprovalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	bonus, err := h.adjustmentService.SetBonusApproval(r.Context(), id, &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Bonus approval updated", toBonusResponse(bonus))
}

// DeleteBonus implements AdjustmentHandler
func (h *adjustmentHandlerImpl) DeleteBonus(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		response.BadRequest(w, "Invalid bonus ID", nil)
		return
	}

	if err := h.adjustmentService.DeleteBonus(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Bonus deleted", nil)
}

// CreateDeduction implements AdjustmentHandler
func (h *adjustmentHandlerImpl) CreateDeduction(w http.ResponseWriter, r *http.Request) {
	var req adjustment.CreateDeductionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	deduction, err := h.adjustmentService.CreateDeduction(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Deduction created", toDeductionResponse(deduction))
}

// ListDeductions implements AdjustmentHandler
func (h *adjustmentHandlerImpl) ListDeductions(w http.ResponseWriter, r *http.Request) {
	deductions, err := h.adjustmentService.ListDeductions(r.Context(), periodFilterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	results := make([]adjustment.DeductionResponse, 0, len(deductions))
	for i := range deductions {
		results = append(results, toDeductionResponse(&deductions[i]))
	}

	response.Success(w, results)
}

// DeleteDeduction implements AdjustmentHandler
func (h *adjustmentHandlerImpl) DeleteDeduction(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		response.BadRequest(w, "Invalid deduction ID", nil)
		return
	}

	if err := h.adjustmentService.DeleteDeduction(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Deduction deleted", nil)
}

// CreateExtraDay implements AdjustmentHandler
func (h *adjustmentHandlerImpl) CreateExtraDay(w http.ResponseWriter, r *http.Request) {
	var req adjustment.CreateExtraDayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	extraDay, err := h.adjustmentService.CreateExtraDay(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Extra day record created", toExtraDayResponse(extraDay))
}

// ListExtraDays implements AdjustmentHandler
func (h *adjustmentHandlerImpl) ListExtraDays(w http.ResponseWriter, r *http.Request) {
	extraDays, err := h.adjustmentService.ListExtraDays(r.Context(), periodFilterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	results := make([]adjustment.ExtraDayResponse, 0, len(extraDays))
	for i := range extraDays {
		results = append(results, toExtraDayResponse(&extraDays[i]))
	}

	response.Success(w, results)
}

// DeleteExtraDay implements AdjustmentHandler
func (h *adjustmentHandlerImpl) DeleteExtraDay(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		response.BadRequest(w, "Invalid extra day record ID", nil)
		return
	}

	if err := h.adjustmentService.DeleteExtraDay(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Extra day record deleted", nil)
}
