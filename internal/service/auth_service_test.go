package service

import (
	"testing"

	"github.com/spec-kit/residence-registry/internal/config"
	"github.com/spec-kit/residence-registry/internal/domain"
)

func newTestAuth(t *testing.T) *AuthService {
	t.Helper()
	svc, err := NewAuthService(config.AuthConfig{
		JWTSecret:             "test-secret",
		AccessTokenTTLMinutes: 5,
		BcryptCost:            4,
		AdminPassword:         "admin",
		ResidentPassword:      "resident",
	})
	if err != nil {
		t.Fatalf("NewAuthService: %v", err)
	}
	return svc
}

func TestLogin_FixedProfiles(t *testing.T) {
	svc := newTestAuth(t)

	role, token, _, err := svc.Login("admin", "admin")
	if err != nil || role != domain.RoleAdmin || token == "" {
		t.Fatalf("admin login: role=%s token=%q err=%v", role, token, err)
	}

	role, token, _, err = svc.Login("resident", "resident")
	if err != nil || role != domain.RoleResident || token == "" {
		t.Fatalf("resident login: role=%s token=%q err=%v", role, token, err)
	}
}

func TestLogin_EveryOtherPairFails(t *testing.T) {
	svc := newTestAuth(t)

	pairs := [][2]string{
		{"admin", "resident"},
		{"resident", "admin"},
		{"admin", ""},
		{"", "admin"},
		{"root", "root"},
		{"Admin", "admin"},
	}
	for _, pair := range pairs {
		if _, _, _, err := svc.Login(pair[0], pair[1]); err == nil {
			t.Fatalf("expected failure for %q/%q", pair[0], pair[1])
		}
	}
}

func TestLogin_TokenCarriesRole(t *testing.T) {
	svc := newTestAuth(t)

	_, token, _, err := svc.Login("admin", "admin")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	claims, err := svc.TokenManager().ParseToken(token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.Role != domain.RoleAdmin || claims.Username != "admin" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}
