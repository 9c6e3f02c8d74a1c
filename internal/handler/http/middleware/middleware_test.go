package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cmlabs-hris/hris-payroll-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func protected(svc jwt.Service, mw ...func(http.Handler) http.Handler) http.Handler {
	var h http.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	for i := len(mw) - 1; i >= 0; i-- {
		h = mw[i](h)
	}
	return jwtauth.Verifier(svc.JWTAuth())(h)
}

func request(t *testing.T, svc jwt.Service, claims *jwt.Claims) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if claims != nil {
		token, _, err := svc.GenerateAccessToken(*claims)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func TestAuthRequired(t *testing.T) {
	svc := jwt.NewJWTService("test-secret-key-for-jwt", "1h")
	handler := protected(svc, AuthRequired)

	tests := []struct {
		name   string
		claims *jwt.Claims
		want   int
	}{
		{"valid token", &jwt.Claims{UserID: "user-1", CompanyID: "company-1"}, http.StatusNoContent},
		{"no token", nil, http.StatusUnauthorized},
		{"token without company", &jwt.Claims{UserID: "user-1"}, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, request(t, svc, tt.claims))
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestAuthRequired_ForeignSignature(t *testing.T) {
	svc := jwt.NewJWTService("test-secret-key-for-jwt", "1h")
	other := jwt.NewJWTService("some-other-secret", "1h")

	rec := httptest.NewRecorder()
	protected(svc, AuthRequired).ServeHTTP(rec, request(t, other, &jwt.Claims{UserID: "user-1", CompanyID: "company-1"}))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminOnly(t *testing.T) {
	svc := jwt.NewJWTService("test-secret-key-for-jwt", "1h")
	handler := protected(svc, AuthRequired, AdminOnly)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, request(t, svc, &jwt.Claims{UserID: "user-1", CompanyID: "company-1", IsAdmin: true}))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, request(t, svc, &jwt.Claims{UserID: "user-2", CompanyID: "company-1"}))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
