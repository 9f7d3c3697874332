package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"APP_PORT", "POSTGRES_DSN", "AUTH_ENFORCE_ROLES",
		"REGISTRY_MAX_RECORDS", "CLIENT_TIMEOUT_SECONDS",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.App.Port != "5000" {
		t.Fatalf("unexpected default port: %s", cfg.App.Port)
	}
	if cfg.Postgres.DSN != "" {
		t.Fatalf("expected empty DSN default, got %q", cfg.Postgres.DSN)
	}
	if cfg.Auth.EnforceRoles {
		t.Fatal("role enforcement must default off")
	}
	if cfg.Registry.MaxRecords != 10000 {
		t.Fatalf("unexpected max records: %d", cfg.Registry.MaxRecords)
	}
	if cfg.Client.Timeout() != 10*time.Second {
		t.Fatalf("unexpected client timeout: %v", cfg.Client.Timeout())
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "8088")
	t.Setenv("AUTH_ENFORCE_ROLES", "true")
	t.Setenv("REGISTRY_MAX_RECORDS", "50")
	t.Setenv("HTTP_REQUEST_TIMEOUT_SECONDS", "7")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.App.Port != "8088" {
		t.Fatalf("port override ignored: %s", cfg.App.Port)
	}
	if !cfg.Auth.EnforceRoles {
		t.Fatal("enforce roles override ignored")
	}
	if cfg.Registry.MaxRecords != 50 {
		t.Fatalf("max records override ignored: %d", cfg.Registry.MaxRecords)
	}
	if cfg.App.RequestTimeout() != 7*time.Second {
		t.Fatalf("request timeout override ignored: %v", cfg.App.RequestTimeout())
	}
}

func TestLoad_BadIntFallsBack(t *testing.T) {
	t.Setenv("REGISTRY_MAX_RECORDS", "lots")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Registry.MaxRecords != 10000 {
		t.Fatalf("expected fallback, got %d", cfg.Registry.MaxRecords)
	}
}
