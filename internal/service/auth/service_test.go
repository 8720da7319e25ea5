package auth

import (
	"context"
	"testing"

	"github.com/nimbus-hr/payroll-backend-go/internal/config"
	"github.com/nimbus-hr/payroll-backend-go/internal/domain/auth"
	"github.com/nimbus-hr/payroll-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthService() auth.Service {
	admin := config.AdminConfig{Username: "admin", Password: "secret"}
	jwtService := jwt.NewJWTService("test-secret-key-for-jwt", "1h")
	return NewAuthService(admin, jwtService, nil)
}

func TestAdminLogin_Success(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthService()

	resp, err := svc.AdminLogin(ctx, &auth.LoginRequest{Username: "admin", Password: "secret"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, jwt.RoleAdmin, resp.Role)
	assert.Equal(t, "admin", resp.Name)
	assert.Empty(t, resp.EmployeeID)
}

func TestAdminLogin_WrongPassword(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthService()

	_, err := svc.AdminLogin(ctx, &auth.LoginRequest{Username: "admin", Password: "wrong"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAdminLogin_WrongUsername(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthService()

	_, err := svc.AdminLogin(ctx, &auth.LoginRequest{Username: "root", Password: "secret"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAdminLogin_MissingFields(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthService()

	_, err := svc.AdminLogin(ctx, &auth.LoginRequest{})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, auth.ErrInvalidCredentials)
}
