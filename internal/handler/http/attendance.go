package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/nimbus-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/nimbus-hr/payroll-backend-go/internal/handler/http/middleware"
	"github.com/nimbus-hr/payroll-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	ListEntries(w http.ResponseWriter, r *http.Request)
	RecordDirect(w http.ResponseWriter, r *http.Request)
	UpdateEntry(w http.ResponseWriter, r *http.Request)
	DeleteEntry(w http.ResponseWriter, r *http.Request)
	ListPendingRequests(w http.ResponseWriter, r *http.Request)
	ApproveRequest(w http.ResponseWriter, r *http.Request)
	MarkExtraDay(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.Service
}

func NewAttendanceHandler(attendanceService attendance.Service) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

func toRequestResponse(req *attendance.Request) attendance.RequestResponse {
	resp := attendance.RequestResponse{
		ID:             req.ID,
		EmployeeID:     req.EmployeeID,
		Designation:    req.Designation,
		Department:     req.Department,
		Date:           req.Date.Format("2006-01-02"),
		Status:         string(req.Status),
		HoursWorked:    req.HoursWorked,
		OvertimeHours:  req.OvertimeHours,
		Notes:          req.Notes,
		ApprovalStatus: string(req.ApprovalStatus),
		ApprovedBy:     req.ApprovedBy,
		SubmittedAt:    req.SubmittedAt.Format("2006-01-02 15:04:05"),
	}
	if req.FirstName != nil && req.LastName != nil {
		resp.EmployeeName = *req.FirstName + " " + *req.LastName
	}
	if req.ApprovedAt != nil {
		formatted := req.ApprovedAt.Format("2006-01-02 15:04:05")
		resp.ApprovedAt = &formatted
	}
	return resp
}

func toEntryResponse(entry *attendance.LedgerEntry) attendance.EntryResponse {
	return attendance.EntryResponse{
		ID:            entry.ID,
		EmployeeID:    entry.EmployeeID,
		Date:          entry.Date.Format("2006-01-02"),
		Status:        string(entry.Status),
		HoursWorked:   entry.HoursWorked,
		OvertimeHours: entry.OvertimeHours,
		Notes:         entry.Notes,
	}
}

func entryFilterFromQuery(r *http.Request) attendance.EntryFilter {
	filter := attendance.EntryFilter{
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

// ListEntries implements AttendanceHandler
func (h *attendanceHandlerImpl) ListEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := h.attendanceService.ListEntries(r.Context(), entryFilterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	results := make([]attendance.EntryResponse, 0, len(entries))
	for i := range entries {
		results = append(results, toEntryResponse(&entries[i]))
	}

	response.Success(w, results)
}

// RecordDirect implements AttendanceHandler
func (h *attendanceHandlerImpl) RecordDirect(w http.ResponseWriter, r *http.Request) {
	var req attendance.DirectEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	entry, err := h.attendanceService.RecordDirect(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance recorded", toEntryResponse(entry))
}

// UpdateEntry implements AttendanceHandler
func (h *attendanceHandlerImpl) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid attendance record ID", nil)
		return
	}

	var req attendance.UpdateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	entry, err := h.attendanceService.UpdateEntry(r.Context(), id, &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance updated", toEntryResponse(entry))
}

// DeleteEntry implements AttendanceHandler
func (h *attendanceHandlerImpl) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid attendance record ID", nil)
		return
	}

	if err := h.attendanceService.DeleteEntry(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance deleted", nil)
}

// ListPendingRequests implements AttendanceHandler
func (h *attendanceHandlerImpl) ListPendingRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := h.attendanceService.ListPending(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	results := make([]attendance.RequestResponse, 0, len(requests))
	for i := range requests {
		results = append(results, toRequestResponse(&requests[i]))
	}

	response.Success(w, results)
}

// ApproveRequest implements AttendanceHandler
func (h *attendanceHandlerImpl) ApproveRequest(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid attendance request ID", nil)
		return
	}

	var req attendance.ApproveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.attendanceService.Approve(r.Context(), id, middleware.NameFromContext(r), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance request "+req.ApprovalStatus, toRequestResponse(result))
}

// MarkExtraDay implements AttendanceHandler
func (h *attendanceHandlerImpl) MarkExtraDay(w http.ResponseWriter, r *http.Request) {
	var req attendance.MarkExtraDayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.attendanceService.MarkExtraDay(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Extra day marked", result)
}
