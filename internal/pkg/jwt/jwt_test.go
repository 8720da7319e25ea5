package jwt

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAccessToken_EmployeeClaims(t *testing.T) {
	svc := NewJWTService("test-secret-key-for-jwt", "1h")

	tokenString, expiresAt, err := svc.GenerateAccessToken(RoleEmployee, "EMP-001", "Asha Nair")
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)
	assert.Positive(t, expiresAt)

	token, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	claims, err := token.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, RoleEmployee, claims["role"])
	assert.Equal(t, "EMP-001", claims["employee_id"])
	assert.Equal(t, "Asha Nair", claims["name"])
	assert.Equal(t, "access", claims["type"])
	assert.NotEmpty(t, claims["jti"])
}

func TestGenerateAccessToken_AdminOmitsEmployeeID(t *testing.T) {
	svc := NewJWTService("test-secret-key-for-jwt", "1h")

	tokenString, _, err := svc.GenerateAccessToken(RoleAdmin, "", "admin")
	require.NoError(t, err)

	token, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	claims, err := token.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, claims["role"])
	_, present := claims["employee_id"]
	assert.False(t, present)
}

func TestGenerateAccessToken_BadExpiration(t *testing.T) {
	svc := NewJWTService("test-secret-key-for-jwt", "not-a-duration")

	_, _, err := svc.GenerateAccessToken(RoleAdmin, "", "admin")
	assert.Error(t, err)
}

func TestJWTAuth_RejectsForeignSignature(t *testing.T) {
	issuer := NewJWTService("issuer-secret", "1h")
	verifier := NewJWTService("other-secret", "1h")

	tokenString, _, err := issuer.GenerateAccessToken(RoleEmployee, "EMP-001", "Asha Nair")
	require.NoError(t, err)

	_, err = verifier.JWTAuth().Decode(tokenString)
	assert.Error(t, err)
}
