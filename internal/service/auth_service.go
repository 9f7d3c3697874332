package service

import (
	"time"

	"github.com/spec-kit/residence-registry/internal/auth"
	"github.com/spec-kit/residence-registry/internal/config"
	"github.com/spec-kit/residence-registry/internal/domain"
	apperrors "github.com/spec-kit/residence-registry/pkg/util/errorutil"
)

// AuthService evaluates credentials against the fixed two-profile table and
// issues role-bearing tokens. The table is hashed at startup; there is no
// user store behind it.
type AuthService struct {
	profiles map[string]profile
	tokenMgr *auth.TokenManager
}

type profile struct {
	passwordHash string
	role         domain.Role
}

// NewAuthService builds the service from the configured credential table.
func NewAuthService(cfg config.AuthConfig) (*AuthService, error) {
	adminHash, err := auth.HashPassword(cfg.AdminPassword, cfg.BcryptCost)
	if err != nil {
		return nil, err
	}
	residentHash, err := auth.HashPassword(cfg.ResidentPassword, cfg.BcryptCost)
	if err != nil {
		return nil, err
	}

	return &AuthService{
		profiles: map[string]profile{
			"admin":    {passwordHash: adminHash, role: domain.RoleAdmin},
			"resident": {passwordHash: residentHash, role: domain.RoleResident},
		},
		tokenMgr: auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTLMinutes),
	}, nil
}

// Login checks the credential pair and returns a signed token. A mismatch
// gives one undifferentiated error; callers cannot tell unknown user from
// wrong password.
func (s *AuthService) Login(username, password string) (domain.Role, string, time.Time, error) {
	prof, ok := s.profiles[username]
	if ok {
		if err := auth.ComparePassword(prof.passwordHash, password); err == nil {
			token, exp, err := s.tokenMgr.GenerateToken(username, prof.role)
			if err != nil {
				return "", "", time.Time{}, err
			}
			return prof.role, token, exp, nil
		}
	}
	return "", "", time.Time{}, apperrors.NewUnauthorized("invalid username or password")
}

// TokenManager exposes the manager for middleware wiring.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
