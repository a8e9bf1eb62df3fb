package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/dailybudgetmart/backend/internal/models"
	"github.com/dailybudgetmart/backend/internal/repo"
	"github.com/dailybudgetmart/backend/internal/transport"
	"github.com/dailybudgetmart/backend/pkg/hash"
	"github.com/dailybudgetmart/backend/pkg/logging"
	"github.com/dailybudgetmart/backend/pkg/tokens"
)

const sessionTTL = 24 * time.Hour

type AuthService struct {
	Repo      *repo.GormRepo
	JWTSecret []byte
}

func (s *AuthService) Register(ctx context.Context, req transport.RegisterRequest) (*models.AdminUser, error) {
	l := logging.FromContext(ctx).With("svc", "auth.register", "tenant_id", req.TenantID)

	if err := requireTenant(ctx, s.Repo, req.TenantID); err != nil {
		return nil, err
	}
	if req.Email == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: email and password required", ErrValidation)
	}

	role := req.Role
	if role == "" {
		role = models.RoleOwner
	}
	if role != models.RoleOwner && role != models.RoleStaff {
		return nil, fmt.Errorf("%w: unknown role %q", ErrValidation, role)
	}

	exists, err := s.Repo.AdminUserExists(ctx, req.TenantID, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: user already exists", ErrConflict)
	}

	pwHash, err := hash.HashPassword(req.Password)
	if err != nil {
		l.Error("password hash failed", "error", err)
		return nil, err
	}

	user := &models.AdminUser{
		TenantID:     req.TenantID,
		Email:        req.Email,
		PasswordHash: pwHash,
		Role:         role,
	}
	if err := s.Repo.CreateAdminUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, req transport.LoginRequest) (*transport.LoginResponse, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login", "tenant_id", req.TenantID, "email", req.Email)

	if !validID(req.TenantID) {
		return nil, fmt.Errorf("%w: invalid tenant id", ErrValidation)
	}

	user, err := s.Repo.FindAdminUser(ctx, req.TenantID, req.Email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}
	if err != nil {
		return nil, err
	}
	if !hash.CheckPassword(user.PasswordHash, req.Password) {
		l.Warn("login failed", "reason", "password mismatch")
		return nil, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}

	token, err := tokens.NewSessionToken(s.JWTSecret, user.TenantID, user.Email, user.Role, time.Now().Add(sessionTTL))
	if err != nil {
		return nil, err
	}

	return &transport.LoginResponse{Token: token, Role: user.Role}, nil
}
