package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/residence-registry/internal/domain"
)

func sampleResident(id, name string) *domain.Resident {
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

func TestMemoryRepository_CRUDRoundTrip(t *testing.T) {
	repo := NewMemoryResidentRepository()
	ctx := context.Background()

	// Create then list must include exactly one equal record.
	created := sampleResident("1", "Juan Dela Cruz")
	if err := repo.Create(ctx, created); err != nil {
		t.Fatalf("create: %v", err)
	}
	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].ID != "1" || list[0].Name != "Juan Dela Cruz" {
		t.Fatalf("unexpected list after create: %+v", list)
	}

	// Update replaces every field except id.
	replacement := sampleResident("1", "Juan D. Cruz")
	replacement.Title = "Mrs."
	replacement.Sex = "Female"
	replacement.Age = 36
	replacement.Address = "456 Rizal Ave"
	if err := repo.Update(ctx, replacement); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, err := repo.GetByID(ctx, "1")
	if err != nil {
		t.Fatalf("get after update: %v", err)
	}
	if got.Name != "Juan D. Cruz" || got.Title != "Mrs." || got.Age != 36 || got.Address != "456 Rizal Ave" {
		t.Fatalf("update not wholesale: %+v", got)
	}

	// Delete is terminal.
	if err := repo.Delete(ctx, "1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.GetByID(ctx, "1"); !errors.Is(err, pgx.ErrNoRows) {
		t.Fatalf("expected no rows after delete, got: %v", err)
	}
	list, _ = repo.List(ctx)
	if len(list) != 0 {
		t.Fatalf("expected empty list after delete, got %d", len(list))
	}
}

func TestMemoryRepository_DuplicateCreate(t *testing.T) {
	repo := NewMemoryResidentRepository()
	ctx := context.Background()

	if err := repo.Create(ctx, sampleResident("7", "a")); err != nil {
		t.Fatalf("create: %v", err)
	}
	err := repo.Create(ctx, sampleResident("7", "b"))
	if !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("expected duplicate id error, got: %v", err)
	}
	list, _ := repo.List(ctx)
	if len(list) != 1 || list[0].Name != "a" {
		t.Fatalf("failed create had side effects: %+v", list)
	}
}

func TestMemoryRepository_MissingIDs(t *testing.T) {
	repo := NewMemoryResidentRepository()
	ctx := context.Background()

	if err := repo.Update(ctx, sampleResident("missing", "x")); !errors.Is(err, pgx.ErrNoRows) {
		t.Fatalf("expected no rows on update, got: %v", err)
	}
	if err := repo.Delete(ctx, "missing"); !errors.Is(err, pgx.ErrNoRows) {
		t.Fatalf("expected no rows on delete, got: %v", err)
	}
	count, err := repo.Count(ctx)
	if err != nil || count != 0 {
		t.Fatalf("failed ops had side effects: count=%d err=%v", count, err)
	}
}

func TestMemoryRepository_ListKeepsInsertionOrder(t *testing.T) {
	repo := NewMemoryResidentRepository()
	ctx := context.Background()

	for _, id := range []string{"3", "1", "2"} {
		if err := repo.Create(ctx, sampleResident(id, "n"+id)); err != nil {
			t.Fatalf("create %s: %v", id, err)
		}
	}
	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []string{"3", "1", "2"}
	for i, id := range want {
		if list[i].ID != id {
			t.Fatalf("order mismatch at %d: got %s want %s", i, list[i].ID, id)
		}
	}
}
