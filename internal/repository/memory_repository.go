package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/residence-registry/internal/domain"
)

// ErrDuplicateID signals an insert with an id that already exists. The
// Postgres implementation surfaces the same condition as a unique violation.
var ErrDuplicateID = errors.New("duplicate resident id")

// memoryRepository keeps residents in insertion order. It backs the registry
// when no POSTGRES_DSN is configured and is used directly by tests.
type memoryRepository struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]domain.Resident
}

// NewMemoryResidentRepository returns an in-memory implementation.
func NewMemoryResidentRepository() ResidentRepository {
	return &memoryRepository{byID: make(map[string]domain.Resident)}
}

func (r *memoryRepository) List(_ context.Context) ([]domain.Resident, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	residents := make([]domain.Resident, 0, len(r.order))
	for _, id := range r.order {
		residents = append(residents, r.byID[id])
	}
	return residents, nil
}

func (r *memoryRepository) GetByID(_ context.Context, id string) (*domain.Resident, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res, ok := r.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &res, nil
}

func (r *memoryRepository) Create(_ context.Context, resident *domain.Resident) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[resident.ID]; exists {
		return ErrDuplicateID
	}
	now := time.Now()
	resident.CreatedAt = now
	resident.UpdatedAt = now
	r.byID[resident.ID] = *resident
	r.order = append(r.order, resident.ID)
	return nil
}

func (r *memoryRepository) Update(_ context.Context, resident *domain.Resident) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.byID[resident.ID]
	if !ok {
		return pgx.ErrNoRows
	}
	resident.CreatedAt = stored.CreatedAt
	resident.UpdatedAt = time.Now()
	r.byID[resident.ID] = *resident
	return nil
}

func (r *memoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.byID, id)
	for i, stored := range r.order {
		if stored == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *memoryRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID), nil
}
