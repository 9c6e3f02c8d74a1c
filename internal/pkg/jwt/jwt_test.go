package jwt

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt"

func TestGenerateAccessToken_RoundTrip(t *testing.T) {
	svc := NewJWTService(testSecret, "1h")

	// Act
	tokenString, expiresAt, err := svc.GenerateAccessToken(Claims{UserID: "user-1", CompanyID: "company-1", IsAdmin: true})

	// Assert
	require.NoError(t, err)
	assert.InDelta(t, time.Now().Add(time.Hour).Unix(), expiresAt, 5)

	token, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	claims, err := ClaimsFromContext(jwtauth.NewContext(context.Background(), token, nil))
	require.NoError(t, err)
	assert.Equal(t, Claims{UserID: "user-1", CompanyID: "company-1", IsAdmin: true}, claims)
}

func TestGenerateAccessToken_InvalidExpiration(t *testing.T) {
	_, _, err := NewJWTService(testSecret, "soon").GenerateAccessToken(Claims{UserID: "user-1"})
	assert.Error(t, err)
}

func TestClaimsFromContext_RejectsNonAccessTokens(t *testing.T) {
	svc := NewJWTService(testSecret, "1h")
	_, refresh, err := svc.JWTAuth().Encode(map[string]interface{}{"user_id": "user-1", "type": "refresh"})
	require.NoError(t, err)

	token, err := svc.JWTAuth().Decode(refresh)
	require.NoError(t, err)

	_, err = ClaimsFromContext(jwtauth.NewContext(context.Background(), token, nil))
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestClaimsFromContext_NoToken(t *testing.T) {
	_, err := ClaimsFromContext(context.Background())
	assert.ErrorIs(t, err, ErrInvalidToken)
}
