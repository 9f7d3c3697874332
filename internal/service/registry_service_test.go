package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/residence-registry/internal/config"
	"github.com/spec-kit/residence-registry/internal/domain"
	"github.com/spec-kit/residence-registry/internal/events"
	"github.com/spec-kit/residence-registry/internal/repository"
	apperrors "github.com/spec-kit/residence-registry/pkg/util/errorutil"
)

func newTestRegistry(t *testing.T, maxRecords int) *RegistryService {
	t.Helper()
	return NewRegistryService(
		config.RegistryConfig{MaxRecords: maxRecords, CacheTTLSec: 0},
		RegistryDependencies{
			Repo:       repository.NewMemoryResidentRepository(),
			Dispatcher: events.NewInMemoryDispatcher(),
			Logger:     zap.NewNop(),
		},
	)
}

func resident(id, name string) *domain.Resident {
	return &domain.Resident{
		ID:          id,
		Title:       "Mr.",
		Name:        name,
		Suffix:      "None",
		Sex:         "Male",
		Birthday:    time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC),
		Age:         35,
		PostalCode:  "1105",
		Citizenship: "Filipino",
		CivilStatus: "Single",
		Course:      "Carpenter",
		Address:     "123 Mabini St",
	}
}

func domainCode(t *testing.T, err error) string {
	t.Helper()
	var de *apperrors.DomainError
	if !errors.As(err, &de) {
		t.Fatalf("expected DomainError, got: %v", err)
	}
	return de.Code
}

func TestRegistry_CreateListRoundTrip(t *testing.T) {
	svc := newTestRegistry(t, 0)
	ctx := context.Background()

	if _, err := svc.Create(ctx, resident("1", "Juan Dela Cruz")); err != nil {
		t.Fatalf("create: %v", err)
	}
	list, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].ID != "1" || list[0].Name != "Juan Dela Cruz" {
		t.Fatalf("unexpected list: %+v", list)
	}
}

func TestRegistry_DuplicateIDIsConflict(t *testing.T) {
	svc := newTestRegistry(t, 0)
	ctx := context.Background()

	if _, err := svc.Create(ctx, resident("1", "a")); err != nil {
		t.Fatalf("create: %v", err)
	}
	_, err := svc.Create(ctx, resident("1", "b"))
	if code := domainCode(t, err); code != "CONFLICT" {
		t.Fatalf("expected CONFLICT, got %s", code)
	}
}

func TestRegistry_UpdateReplacesWholesale(t *testing.T) {
	svc := newTestRegistry(t, 0)
	ctx := context.Background()

	if _, err := svc.Create(ctx, resident("1", "Juan Dela Cruz")); err != nil {
		t.Fatalf("create: %v", err)
	}
	replacement := resident("1", "Juan Dela Cruz")
	replacement.Address = "456 Rizal Ave"
	if _, err := svc.Update(ctx, "1", replacement); err != nil {
		t.Fatalf("update: %v", err)
	}

	list, _ := svc.List(ctx)
	if len(list) != 1 || list[0].Address != "456 Rizal Ave" || list[0].Name != "Juan Dela Cruz" {
		t.Fatalf("update not wholesale: %+v", list)
	}
}

func TestRegistry_UpdateMissingIsNotFound(t *testing.T) {
	svc := newTestRegistry(t, 0)

	_, err := svc.Update(context.Background(), "missing", resident("missing", "x"))
	if code := domainCode(t, err); code != "NOT_FOUND" {
		t.Fatalf("expected NOT_FOUND, got %s", code)
	}
}

func TestRegistry_UpdateIDImmutable(t *testing.T) {
	svc := newTestRegistry(t, 0)
	ctx := context.Background()

	if _, err := svc.Create(ctx, resident("1", "a")); err != nil {
		t.Fatalf("create: %v", err)
	}
	_, err := svc.Update(ctx, "1", resident("2", "a"))
	if code := domainCode(t, err); code != "VALIDATION" {
		t.Fatalf("expected VALIDATION, got %s", code)
	}
}

func TestRegistry_DeleteIsTerminal(t *testing.T) {
	svc := newTestRegistry(t, 0)
	ctx := context.Background()

	if _, err := svc.Create(ctx, resident("1", "a")); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Delete(ctx, "1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	list, _ := svc.List(ctx)
	if len(list) != 0 {
		t.Fatalf("expected empty list, got %+v", list)
	}

	err := svc.Delete(ctx, "1")
	if code := domainCode(t, err); code != "NOT_FOUND" {
		t.Fatalf("expected NOT_FOUND, got %s", code)
	}
	list, _ = svc.List(ctx)
	if len(list) != 0 {
		t.Fatalf("failed delete had side effects: %+v", list)
	}
}

func TestRegistry_MaxRecordsBound(t *testing.T) {
	svc := newTestRegistry(t, 2)
	ctx := context.Background()

	for i, id := range []string{"1", "2"} {
		if _, err := svc.Create(ctx, resident(id, "n")); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}
	_, err := svc.Create(ctx, resident("3", "n"))
	if code := domainCode(t, err); code != "VALIDATION" {
		t.Fatalf("expected VALIDATION on full registry, got %s", code)
	}
}

func TestRegistry_MutationsPublishEvents(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	svc := NewRegistryService(
		config.RegistryConfig{},
		RegistryDependencies{
			Repo:       repository.NewMemoryResidentRepository(),
			Dispatcher: dispatcher,
			Logger:     zap.NewNop(),
		},
	)

	var seen []events.EventType
	record := func(_ context.Context, event events.Event) error {
		seen = append(seen, event.Type)
		return nil
	}
	dispatcher.Subscribe(events.EventResidentCreated, record)
	dispatcher.Subscribe(events.EventResidentUpdated, record)
	dispatcher.Subscribe(events.EventResidentDeleted, record)

	ctx := context.Background()
	if _, err := svc.Create(ctx, resident("1", "a")); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Update(ctx, "1", resident("1", "b")); err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := svc.Delete(ctx, "1"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	want := []events.EventType{
		events.EventResidentCreated,
		events.EventResidentUpdated,
		events.EventResidentDeleted,
	}
	if len(seen) != len(want) {
		t.Fatalf("expected %d events, got %v", len(want), seen)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("event %d: got %s want %s", i, seen[i], want[i])
		}
	}
}
