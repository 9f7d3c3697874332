package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/residence-registry/internal/events"
)

// AuditService logs every registry mutation emitted on the dispatcher.
type AuditService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewAuditService creates the service.
func NewAuditService(dispatcher events.Dispatcher, logger *zap.Logger) *AuditService {
	return &AuditService{dispatcher: dispatcher, logger: logger}
}

// RegisterHandlers subscribes to mutation events.
func (a *AuditService) RegisterHandlers() {
	if a.dispatcher == nil {
		return
	}
	a.dispatcher.Subscribe(events.EventResidentCreated, a.handleMutation)
	a.dispatcher.Subscribe(events.EventResidentUpdated, a.handleMutation)
	a.dispatcher.Subscribe(events.EventResidentDeleted, a.handleMutation)
}

func (a *AuditService) handleMutation(_ context.Context, event events.Event) error {
	a.logger.Info("registry mutation",
		zap.String("event_id", event.ID),
		zap.String("type", string(event.Type)),
		zap.String("resident_id", event.ResidentID),
		zap.Time("at", event.Timestamp),
		zap.Any("payload", event.Payload),
	)
	return nil
}
