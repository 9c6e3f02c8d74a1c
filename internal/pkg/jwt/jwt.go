package jwt

import (
	"context"
	"errors"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

var (
	ErrInvalidToken           = errors.New("invalid or missing access token")
	ErrCompanyIDRequired      = errors.New("token carries no company")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
)

// Claims is what the payroll API reads from an access token.
type Claims struct {
	UserID    string
	CompanyID string
	IsAdmin   bool
}

type Service interface {
	GenerateAccessToken(claims Claims) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	accessTokenExpirationTime string
	tokenAuth                 *jwtauth.JWTAuth
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, accessTokenExpirationTime string) Service {
	return &JWTService{
		accessTokenExpirationTime: accessTokenExpirationTime,
		tokenAuth:                 jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

// GenerateAccessToken issues tokens in the shape the HRIS auth service
// signs, so tokens from either are accepted.
func (j *JWTService) GenerateAccessToken(claims Claims) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.accessTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"user_id":    claims.UserID,
		"company_id": claims.CompanyID,
		"is_admin":   claims.IsAdmin,
		"type":       "access",
		"exp":        expiresAt,
	})
	return tokenString, expiresAt, err
}

// ClaimsFromContext reads the verified token that jwtauth.Verifier stored
// in ctx. Only access tokens are accepted.
func ClaimsFromContext(ctx context.Context) (Claims, error) {
	token, raw, err := jwtauth.FromContext(ctx)
	if err != nil || token == nil {
		return Claims{}, ErrInvalidToken
	}

	if tokenType, _ := raw["type"].(string); tokenType != "access" {
		return Claims{}, ErrInvalidToken
	}

	claims := Claims{}
	claims.UserID, _ = raw["user_id"].(string)
	claims.CompanyID, _ = raw["company_id"].(string)
	claims.IsAdmin, _ = raw["is_admin"].(bool)
	return claims, nil
}
