package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/nimbus-hr/payroll-backend-go/internal/domain/adjustment"
	"github.com/nimbus-hr/payroll-backend-go/internal/domain/advance"
	"github.com/nimbus-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/nimbus-hr/payroll-backend-go/internal/domain/employee"
	"github.com/nimbus-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/nimbus-hr/payroll-backend-go/internal/handler/http/middleware"
	"github.com/nimbus-hr/payroll-backend-go/internal/handler/http/response"
	"github.com/nimbus-hr/payroll-backend-go/internal/pkg/validator"
)

// PortalHandler bundles the employee self-service endpoints. Every method
// scopes its reads and writes to the employee identified by the token.
type PortalHandler interface {
	GetProfile(w http.ResponseWriter, r *http.Request)
	UpdateProfile(w http.ResponseWriter, r *http.Request)
	SubmitAttendance(w http.ResponseWriter, r *http.Request)
	ListMyAttendance(w http.ResponseWriter, r *http.Request)
	ListMyBonuses(w http.ResponseWriter, r *http.Request)
	ListMyDeductions(w http.ResponseWriter, r *http.Request)
	CreateAdvance(w http.ResponseWriter, r *http.Request)
	ListMyAdvances(w http.ResponseWriter, r *http.Request)
	ListMyPayroll(w http.ResponseWriter, r *http.Request)
	GetPayslip(w http.ResponseWriter, r *http.Request)
}

type portalHandlerImpl struct {
	employeeService   employee.Service
	attendanceService attendance.Service
	adjustmentService adjustment.Service
	advanceService    advance.Service
	payrollService    payroll.Service
}

func NewPortalHandler(
	employeeService employee.Service,
	attendanceService attendance.Service,
	adjustmentService adjustment.Service,
	advanceService advance.Service,
	payrollService payroll.Service,
) PortalHandler {
	return &portalHandlerImpl{
		employeeService:   employeeService,
		attendanceService: attendanceService,
		adjustmentService: adjustmentService,
		advanceService:    advanceService,
		payrollService:    payrollService,
	}
}

// GetProfile implements PortalHandler
func (h *portalHandlerImpl) GetProfile(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := middleware.EmployeeIDFromContext(r)
	if !ok {
		response.Unauthorized(w, "Missing employee identity")
		return
	}

	emp, err := h.employeeService.Get(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, toEmployeeResponse(emp))
}

// UpdateProfile implements PortalHandler
func (h *portalHandlerImpl) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := middleware.EmployeeIDFromContext(r)
	if !ok {
		response.Unauthorized(w, "Missing employee identity")
		return
	}

	var req employee.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	emp, err := h.employeeService.UpdateProfile(r.Context(), employeeID, &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Profile updated", toEmployeeResponse(emp))
}

// SubmitAttendance implements PortalHandler
func (h *portalHandlerImpl) SubmitAttendance(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := middleware.EmployeeIDFromContext(r)
	if !ok {
		response.Unauthorized(w, "Missing employee identity")
		return
	}

	var req attendance.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	request, err := h.attendanceService.Submit(r.Context(), employeeID, &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance submitted for approval", toRequestResponse(request))
}

// ListMyAttendance implements PortalHandler
func (h *portalHandlerImpl) ListMyAttendance(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := middleware.EmployeeIDFromContext(r)
	if !ok {
		response.Unauthorized(w, "Missing employee identity")
		return
	}

	requests, err := h.attendanceService.ListMine(r.Context(), employeeID)
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

// ListMyBonuses implements PortalHandler
func (h *portalHandlerImpl) ListMyBonuses(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := middleware.EmployeeIDFromContext(r)
	if !ok {
		response.Unauthorized(w, "Missing employee identity")
		return
	}

	filter := periodFilterFromQuery(r)
	filter.EmployeeID = employeeID

	bonuses, err := h.adjustmentService.ListBonuses(r.Context(), filter)
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

// ListMyDeductions implements PortalHandler
func (h *portalHandlerImpl) ListMyDeductions(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := middleware.EmployeeIDFromContext(r)
	if !ok {
		response.Unauthorized(w, "Missing employee identity")
		return
	}

	filter := periodFilterFromQuery(r)
	filter.EmployeeID = employeeID

	deductions, err := h.adjustmentService.ListDeductions(r.Context(), filter)
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

// CreateAdvance implements PortalHandler
func (h *portalHandlerImpl) CreateAdvance(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := middleware.EmployeeIDFromContext(r)
	if !ok {
		response.Unauthorized(w, "Missing employee identity")
		return
	}

	var req advance.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	request, err := h.advanceService.Create(r.Context(), employeeID, &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Advance salary request submitted", toAdvanceResponse(request))
}

// ListMyAdvances implements PortalHandler
func (h *portalHandlerImpl) ListMyAdvances(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := middleware.EmployeeIDFromContext(r)
	if !ok {
		response.Unauthorized(w, "Missing employee identity")
		return
	}

	requests, err := h.advanceService.ListByEmployee(r.Context(), employeeID)
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

// ListMyPayroll implements PortalHandler
func (h *portalHandlerImpl) ListMyPayroll(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := middleware.EmployeeIDFromContext(r)
	if !ok {
		response.Unauthorized(w, "Missing employee identity")
		return
	}

	records, err := h.payrollService.ListMine(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	results := make([]payroll.RecordResponse, 0, len(records))
	for i := range records {
		results = append(results, payroll.NewRecordResponse(&records[i]))
	}

	response.Success(w, results)
}

// GetPayslip implements PortalHandler
func (h *portalHandlerImpl) GetPayslip(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := middleware.EmployeeIDFromContext(r)
	if !ok {
		response.Unauthorized(w, "Missing employee identity")
		return
	}

	month, _ := strconv.Atoi(r.URL.Query().Get("month"))
	year, _ := strconv.Atoi(r.URL.Query().Get("year"))
	if !validator.IsValidMonth(month) || !validator.IsValidYear(year) {
		response.BadRequest(w, "Invalid payslip period", nil)
		return
	}

	detail, err := h.payrollService.PayslipDetail(r.Context(), employeeID, month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, detail)
}
