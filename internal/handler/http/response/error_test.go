package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-payroll-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/hris-payroll-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleError_StatusMapping(t *testing.T) {
	tests := []struct {
		err  error
		want int
		code string
	}{
		{jwt.ErrInvalidToken, http.StatusUnauthorized, "UNAUTHORIZED"},
		{jwt.ErrAdminPrivilegeRequired, http.StatusForbidden, "FORBIDDEN"},
		{employee.ErrEmployeeNotFound, http.StatusNotFound, "NOT_FOUND"},
		{fmt.Errorf("failed to get record: %w", payroll.ErrRecordNotFound), http.StatusNotFound, "NOT_FOUND"},
		{payroll.ErrRecordLocked, http.StatusConflict, "CONFLICT"},
		{payroll.ErrUnlockConfirmationRequired, http.StatusBadRequest, "BAD_REQUEST"},
		{fmt.Errorf("%w: rules 0 and 1", attendance.ErrDuplicateCompoundingRule), http.StatusBadRequest, "BAD_REQUEST"},
		{payroll.ErrSalaryStructureNotConfigured, http.StatusUnprocessableEntity, "UNPROCESSABLE_ENTITY"},
		{attendance.ErrSummaryNotFound, http.StatusUnprocessableEntity, "UNPROCESSABLE_ENTITY"},
		{errors.New("connection reset"), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			rec := httptest.NewRecorder()

			// Act
			HandleError(rec, tt.err)

			// Assert
			assert.Equal(t, tt.want, rec.Code)
			var body Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.code, body.Error.Code)
		})
	}
}

func TestHandleError_ValidationDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	err := validator.ValidationErrors{{Field: "month", Message: "must be between 1 and 12"}}

	HandleError(rec, err)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
	assert.Equal(t, "must be between 1 and 12", body.Error.Details["month"])
}
