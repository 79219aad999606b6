package service

import (
	"context"
	"time"

	"github.com/shenikar/emergency_dispatch_system/internal/models"
	"github.com/shenikar/emergency_dispatch_system/internal/simulation"
	"github.com/shenikar/emergency_dispatch_system/internal/webhook"
	"github.com/sirupsen/logrus"
)

// EventRecorder сохраняет события движка в историю выездов и публикует вебхуки.
// Ошибки только логируются: симуляция не должна зависеть от бд и очереди.
type EventRecorder struct {
	repo      DispatchRepository
	publisher webhook.WebhookPublisher
	logger    *logrus.Logger
	timeout   time.Duration
}

func NewEventRecorder(repo DispatchRepository, publisher webhook.WebhookPublisher, logger *logrus.Logger) *EventRecorder {
	return &EventRecorder{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		timeout:   5 * time.Second,
	}
}

var _ simulation.EventHandler = (*EventRecorder)(nil)

// HandleEvent вызывается раннером для каждого события движка
func (r *EventRecorder) HandleEvent(ctx context.Context, event simulation.Event) {
	log := r.logger.WithFields(logrus.Fields{
		"service":     "recorder",
		"event_type":  event.Type,
		"dispatch_id": event.DispatchID,
		"unit_id":     event.UnitID,
	})

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	if r.repo != nil {
		if err := r.persist(ctx, event); err != nil {
			log.WithError(err).Error("Failed to persist dispatch event")
		}
	}

	if r.publisher != nil {
		if err := r.publisher.Publish(ctx, toWebhookEvent(event)); err != nil {
			log.WithError(err).Error("Failed to publish webhook event")
			return
		}
	}
	log.Debug("Dispatch event recorded")
}

func (r *EventRecorder) persist(ctx context.Context, event simulation.Event) error {
	switch event.Type {
	case simulation.EventDispatched:
		return r.repo.Create(ctx, &models.Dispatch{
			ID:           event.DispatchID,
			EmergencyID:  event.EmergencyID,
			UnitID:       event.UnitID,
			HospitalID:   event.HospitalID,
			Latitude:     event.Position.Lat,
			Longitude:    event.Position.Lng,
			EtaMinutes:   event.EtaMinutes,
			DistanceKm:   event.DistanceKm,
			Status:       models.DispatchActive,
			DispatchedAt: event.OccurredAt,
		})
	case simulation.EventCompleted:
		return r.repo.UpdateStatus(ctx, event.DispatchID, models.DispatchCompleted, event.OccurredAt)
	case simulation.EventCancelled:
		return r.repo.UpdateStatus(ctx, event.DispatchID, models.DispatchCancelled, event.OccurredAt)
	}
	return nil
}

func toWebhookEvent(event simulation.Event) webhook.WebhookEvent {
	return webhook.WebhookEvent{
		Type:        string(event.Type),
		DispatchID:  event.DispatchID,
		EmergencyID: event.EmergencyID,
		UnitID:      event.UnitID,
		HospitalID:  event.HospitalID,
		Latitude:    event.Position.Lat,
		Longitude:   event.Position.Lng,
		EtaMinutes:  event.EtaMinutes,
		DistanceKm:  event.DistanceKm,
		Timestamp:   event.OccurredAt,
	}
}
