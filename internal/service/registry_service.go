package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/residence-registry/internal/config"
	"github.com/spec-kit/residence-registry/internal/domain"
	"github.com/spec-kit/residence-registry/internal/events"
	"github.com/spec-kit/residence-registry/internal/repository"
	apperrors "github.com/spec-kit/residence-registry/pkg/util/errorutil"
)

const listCacheKey = "residents:list"

// RegistryService coordinates resident CRUD against the record store.
type RegistryService struct {
	repo       repository.ResidentRepository
	dispatcher events.Dispatcher
	cache      *redis.Client
	logger     *zap.Logger
	maxRecords int
	cacheTTL   time.Duration
}

// RegistryDependencies encapsulates requirements for the registry service.
type RegistryDependencies struct {
	Repo       repository.ResidentRepository
	Dispatcher events.Dispatcher
	Cache      *redis.Client
	Logger     *zap.Logger
}

// NewRegistryService builds the service.
func NewRegistryService(cfg config.RegistryConfig, deps RegistryDependencies) *RegistryService {
	return &RegistryService{
		repo:       deps.Repo,
		dispatcher: deps.Dispatcher,
		cache:      deps.Cache,
		logger:     deps.Logger,
		maxRecords: cfg.MaxRecords,
		cacheTTL:   time.Duration(cfg.CacheTTLSec) * time.Second,
	}
}

// List returns the whole collection in deterministic order. A warm Redis
// cache short-circuits the store; cache trouble degrades to the store.
func (s *RegistryService) List(ctx context.Context) ([]domain.Resident, error) {
	if cached, ok := s.cachedList(ctx); ok {
		return cached, nil
	}

	residents, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	s.storeList(ctx, residents)
	return residents, nil
}

// Create persists a new resident under its caller-chosen id.
func (s *RegistryService) Create(ctx context.Context, resident *domain.Resident) (*domain.Resident, error) {
	if s.maxRecords > 0 {
		count, err := s.repo.Count(ctx)
		if err != nil {
			return nil, apperrors.MapError(err)
		}
		if count >= s.maxRecords {
			return nil, apperrors.NewValidationError("registry is full", map[string]any{"max_records": s.maxRecords})
		}
	}

	if err := s.repo.Create(ctx, resident); err != nil {
		if errors.Is(err, repository.ErrDuplicateID) || apperrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflict("resident id already exists", map[string]any{"id": resident.ID})
		}
		return nil, apperrors.MapError(err)
	}

	s.invalidateList(ctx)
	s.publish(ctx, events.EventResidentCreated, resident.ID, events.ResidentCreatedPayload{
		Name:    resident.Name,
		Address: resident.Address,
	})
	return resident, nil
}

// Update replaces the stored resident at id wholesale. The id itself is
// immutable; a payload disagreeing with the path is rejected.
func (s *RegistryService) Update(ctx context.Context, id string, resident *domain.Resident) (*domain.Resident, error) {
	if resident.ID != "" && resident.ID != id {
		return nil, apperrors.NewValidationError("resident id is immutable", map[string]any{"id": id})
	}
	resident.ID = id

	if err := s.repo.Update(ctx, resident); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("resident", map[string]any{"id": id})
		}
		return nil, apperrors.MapError(err)
	}

	s.invalidateList(ctx)
	s.publish(ctx, events.EventResidentUpdated, resident.ID, events.ResidentUpdatedPayload{
		Name:    resident.Name,
		Address: resident.Address,
	})
	return resident, nil
}

// Delete removes the resident at id. Deleting an unknown id fails without
// side effects.
func (s *RegistryService) Delete(ctx context.Context, id string) error {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("resident", map[string]any{"id": id})
		}
		return apperrors.MapError(err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("resident", map[string]any{"id": id})
		}
		return apperrors.MapError(err)
	}

	s.invalidateList(ctx)
	s.publish(ctx, events.EventResidentDeleted, id, events.ResidentDeletedPayload{Name: res.Name})
	return nil
}

func (s *RegistryService) publish(ctx context.Context, eventType events.EventType, residentID string, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		ResidentID: residentID,
		Timestamp:  time.Now(),
		Payload:    payload,
	})
}

func (s *RegistryService) cachedList(ctx context.Context) ([]domain.Resident, bool) {
	if s.cache == nil {
		return nil, false
	}
	raw, err := s.cache.Get(ctx, listCacheKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logger.Debug("list cache read failed", zap.Error(err))
		}
		return nil, false
	}
	var residents []domain.Resident
	if err := json.Unmarshal(raw, &residents); err != nil {
		s.logger.Debug("list cache decode failed", zap.Error(err))
		return nil, false
	}
	return residents, true
}

func (s *RegistryService) storeList(ctx context.Context, residents []domain.Resident) {
	if s.cache == nil || s.cacheTTL <= 0 {
		return
	}
	raw, err := json.Marshal(residents)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, listCacheKey, raw, s.cacheTTL).Err(); err != nil {
		s.logger.Debug("list cache write failed", zap.Error(err))
	}
}

func (s *RegistryService) invalidateList(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, listCacheKey).Err(); err != nil {
		s.logger.Debug("list cache invalidation failed", zap.Error(err))
	}
}
