package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-payroll-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-payroll-go/internal/pkg/period"
	"github.com/go-chi/chi/v5"
)

type PayrollHandler interface {
	Preview(w http.ResponseWriter, r *http.Request)

	// Adjustments
	GetAdjustment(w http.ResponseWriter, r *http.Request)
	SaveAdjustment(w http.ResponseWriter, r *http.Request)

	// Lock state
	Lock(w http.ResponseWriter, r *http.Request)
	Unlock(w http.ResponseWriter, r *http.Request)
	BulkLock(w http.ResponseWriter, r *http.Request)
	BulkUnlock(w http.ResponseWriter, r *http.Request)

	ProposeLoanDeductions(w http.ResponseWriter, r *http.Request)

	// Records
	GetRecord(w http.ResponseWriter, r *http.Request)
	ListRecords(w http.ResponseWriter, r *http.Request)
	GetSummary(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

// recordRequest builds a RecordRequest from the query string. The employee
// code comes from the path when the route has one.
func recordRequest(r *http.Request) (payroll.RecordRequest, map[string]string) {
	month, year, details := periodQuery(r)

	employeeCode := chi.URLParam(r, "employeeCode")
	if employeeCode == "" {
		employeeCode = r.URL.Query().Get("employee_code")
	}

	return payroll.RecordRequest{
		EmployeeCode: employeeCode,
		Month:        month,
		Year:         year,
	}, details
}

func (h *payrollHandlerImpl) Preview(w http.ResponseWriter, r *http.Request) {
	req, details := recordRequest(r)
	if details != nil {
		response.BadRequest(w, "Invalid period", details)
		return
	}

	result, err := h.payrollService.Preview(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ========== ADJUSTMENTS ==========

func (h *payrollHandlerImpl) GetAdjustment(w http.ResponseWriter, r *http.Request) {
	req, details := recordRequest(r)
	if details != nil {
		response.BadRequest(w, "Invalid period", details)
		return
	}

	result, err := h.payrollService.GetAdjustment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) SaveAdjustment(w http.ResponseWriter, r *http.Request) {
	var req payroll.SaveAdjustmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrollService.SaveAdjustment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll adjustment saved", result)
}

// ========== LOCK STATE ==========

func (h *payrollHandlerImpl) Lock(w http.ResponseWriter, r *http.Request) {
	var req payroll.RecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrollService.Lock(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary record locked", result)
}

func (h *payrollHandlerImpl) Unlock(w http.ResponseWriter, r *http.Request) {
	var req payroll.UnlockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrollService.Unlock(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary record unlocked", result)
}

func (h *payrollHandlerImpl) BulkLock(w http.ResponseWriter, r *http.Request) {
	var req payroll.BulkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrollService.BulkLock(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) BulkUnlock(w http.ResponseWriter, r *http.Request) {
	var req payroll.BulkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrollService.BulkUnlock(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) ProposeLoanDeductions(w http.ResponseWriter, r *http.Request) {
	var req payroll.LoanProposalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrollService.ProposeLoanDeductions(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ========== RECORDS ==========

func (h *payrollHandlerImpl) GetRecord(w http.ResponseWriter, r *http.Request) {
	req, details := recordRequest(r)
	if details != nil {
		response.BadRequest(w, "Invalid period", details)
		return
	}

	result, err := h.payrollService.GetRecord(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) ListRecords(w http.ResponseWriter, r *http.Request) {
	filter := payroll.RecordFilter{
		Page:  1,
		Limit: 20,
	}

	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		if page, err := strconv.Atoi(pageStr); err == nil && page > 0 {
			filter.Page = page
		}
	}
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit > 0 {
			filter.Limit = limit
		}
	}
	if monthStr := r.URL.Query().Get("month"); monthStr != "" {
		month, err := period.ParseMonth(monthStr)
		if err != nil {
			response.BadRequest(w, "Invalid month", nil)
			return
		}
		name := month.String()
		filter.Month = &name
	}
	if yearStr := r.URL.Query().Get("year"); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			response.BadRequest(w, "Invalid year", nil)
			return
		}
		filter.Year = &year
	}
	if status := r.URL.Query().Get("status"); status != "" {
		filter.Status = &status
	}
	if employeeCode := r.URL.Query().Get("employee_code"); employeeCode != "" {
		filter.EmployeeCode = &employeeCode
	}

	result, err := h.payrollService.ListRecords(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	totalPages := 0
	if result.Limit > 0 {
		totalPages = int((result.TotalCount + int64(result.Limit) - 1) / int64(result.Limit))
	}
	response.SuccessWithMeta(w, result.Data, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: totalPages,
	})
}

// ========== SUMMARY ==========

func (h *payrollHandlerImpl) GetSummary(w http.ResponseWriter, r *http.Request) {
	month, year, details := periodQuery(r)
	if details != nil {
		response.BadRequest(w, "month and year are required", details)
		return
	}

	result, err := h.payrollService.GetSummary(r.Context(), month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
