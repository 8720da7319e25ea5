package auth

import (
	"context"
	"crypto/subtle"
	"errors"

	"github.com/nimbus-hr/payroll-backend-go/internal/config"
	"github.com/nimbus-hr/payroll-backend-go/internal/domain/auth"
	"github.com/nimbus-hr/payroll-backend-go/internal/domain/employee"
	"github.com/nimbus-hr/payroll-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	admin      config.AdminConfig
	jwtService jwt.Service
	employee.EmployeeRepository
}

func NewAuthService(admin config.AdminConfig, jwtService jwt.Service, employees employee.EmployeeRepository) auth.Service {
	return &AuthServiceImpl{
		admin:              admin,
		jwtService:         jwtService,
		EmployeeRepository: employees,
	}
}

// AdminLogin implements auth.Service. Admin credentials come from
// configuration; there is no admin user table.
func (s *AuthServiceImpl) AdminLogin(ctx context.Context, req *auth.LoginRequest) (*auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	usernameOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(s.admin.Username)) == 1
	passwordOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(s.admin.Password)) == 1
	if !usernameOK || !passwordOK {
		return nil, auth.ErrInvalidCredentials
	}

	token, _, err := s.jwtService.GenerateAccessToken(jwt.RoleAdmin, "", s.admin.Username)
	if err != nil {
		return nil, err
	}

	return &auth.LoginResponse{
		Token: token,
		Role:  jwt.RoleAdmin,
		Name:  s.admin.Username,
	}, nil
}

// EmployeeLogin implements auth.Service.
func (s *AuthServiceImpl) EmployeeLogin(ctx context.Context, req *auth.EmployeeLoginRequest) (*auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	emp, err := s.EmployeeRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return nil, auth.ErrInvalidCredentials
		}
		return nil, err
	}

	if emp.PasswordHash == nil {
		return nil, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*emp.PasswordHash), []byte(req.Password)); err != nil {
		return nil, auth.ErrInvalidCredentials
	}

	name := emp.FirstName + " " + emp.LastName
	token, _, err := s.jwtService.GenerateAccessToken(jwt.RoleEmployee, emp.EmployeeID, name)
	if err != nil {
		return nil, err
	}

	return &auth.LoginResponse{
		Token:      token,
		Role:       jwt.RoleEmployee,
		EmployeeID: emp.EmployeeID,
		Name:       name,
	}, nil
}
