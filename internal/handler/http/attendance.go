package http

import (
	"encoding/json"
	"net/http"

	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-payroll-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	Classify(w http.ResponseWriter, r *http.Request)
	GetDaily(w http.ResponseWriter, r *http.Request)
	GetMonthly(w http.ResponseWriter, r *http.Request)
	GetRules(w http.ResponseWriter, r *http.Request)
	SaveRules(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// Classify implements AttendanceHandler.
func (h *attendanceHandlerImpl) Classify(w http.ResponseWriter, r *http.Request) {
	var req attendance.ClassifyPunchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.attendanceService.ClassifyPunch(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetDaily implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetDaily(w http.ResponseWriter, r *http.Request) {
	req := attendance.DailyStatusRequest{
		EmployeeCode: r.URL.Query().Get("employee_code"),
		Date:         r.URL.Query().Get("date"),
	}

	result, err := h.attendanceService.GetDailyStatus(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetMonthly implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetMonthly(w http.ResponseWriter, r *http.Request) {
	month, year, details := periodQuery(r)
	if details != nil {
		response.BadRequest(w, "Invalid period", details)
		return
	}

	req := attendance.MonthlyAttendanceRequest{
		EmployeeCode: r.URL.Query().Get("employee_code"),
		Month:        month,
		Year:         year,
	}

	result, err := h.attendanceService.GetMonthlyAttendance(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetRules implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetRules(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.GetRules(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// SaveRules implements AttendanceHandler.
func (h *attendanceHandlerImpl) SaveRules(w http.ResponseWriter, r *http.Request) {
	var req attendance.SaveRulesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.attendanceService.SaveRules(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance rules saved", result)
}
