package service_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
	"github.com/shenikar/emergency_dispatch_system/internal/service"
	"github.com/shenikar/emergency_dispatch_system/internal/service/mocks"
	"github.com/shenikar/emergency_dispatch_system/internal/simulation"
	"github.com/shenikar/emergency_dispatch_system/internal/webhook"
	webhook_mocks "github.com/shenikar/emergency_dispatch_system/internal/webhook/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newTestRecorder(t *testing.T) (*service.EventRecorder, *mocks.MockDispatchRepository, *webhook_mocks.MockWebhookPublisher, *bytes.Buffer) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockDispatchRepository(ctrl)
	webhookMock := webhook_mocks.NewMockWebhookPublisher(ctrl)

	var logBuf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&logBuf)

	return service.NewEventRecorder(repoMock, webhookMock, logger), repoMock, webhookMock, &logBuf
}

var recorderNow = time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)

func TestRecorder_DispatchCreated(t *testing.T) {
	// Подготовка
	recorder, repoMock, webhookMock, _ := newTestRecorder(t)
	event := simulation.Event{
		Type:        simulation.EventDispatched,
		DispatchID:  uuid.New(),
		EmergencyID: uuid.New(),
		UnitID:      "AMB002",
		HospitalID:  "HSP001",
		Position:    models.Point{Lat: 13.0, Lng: 80.22},
		EtaMinutes:  4,
		DistanceKm:  6.3,
		OccurredAt:  recorderNow,
	}

	// Ожидания
	repoMock.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, d *models.Dispatch) error {
			assert.Equal(t, event.DispatchID, d.ID)
			assert.Equal(t, "AMB002", d.UnitID)
			assert.Equal(t, models.DispatchActive, d.Status)
			assert.Equal(t, 13.0, d.Latitude)
			assert.Equal(t, recorderNow, d.DispatchedAt)
			return nil
		}).
		Times(1)
	webhookMock.EXPECT().
		Publish(gomock.Any(), webhook.WebhookEvent{
			Type:        "dispatch.created",
			DispatchID:  event.DispatchID,
			EmergencyID: event.EmergencyID,
			UnitID:      "AMB002",
			HospitalID:  "HSP001",
			Latitude:    13.0,
			Longitude:   80.22,
			EtaMinutes:  4,
			DistanceKm:  6.3,
			Timestamp:   recorderNow,
		}).
		Return(nil).
		Times(1)

	// Действие
	recorder.HandleEvent(context.Background(), event)
}

func TestRecorder_CompletedAndCancelled(t *testing.T) {
	recorder, repoMock, webhookMock, _ := newTestRecorder(t)
	completed := simulation.Event{Type: simulation.EventCompleted, DispatchID: uuid.New(), UnitID: "AMB001", OccurredAt: recorderNow}
	cancelled := simulation.Event{Type: simulation.EventCancelled, DispatchID: uuid.New(), UnitID: "AMB003", OccurredAt: recorderNow}

	repoMock.EXPECT().UpdateStatus(gomock.Any(), completed.DispatchID, models.DispatchCompleted, recorderNow).Return(nil)
	repoMock.EXPECT().UpdateStatus(gomock.Any(), cancelled.DispatchID, models.DispatchCancelled, recorderNow).Return(nil)
	webhookMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	recorder.HandleEvent(context.Background(), completed)
	recorder.HandleEvent(context.Background(), cancelled)
}

func TestRecorder_RepositoryErrorStillPublishes(t *testing.T) {
	// Подготовка
	recorder, repoMock, webhookMock, logBuf := newTestRecorder(t)
	event := simulation.Event{Type: simulation.EventCompleted, DispatchID: uuid.New(), UnitID: "AMB001"}

	// Ожидания
	repoMock.EXPECT().UpdateStatus(gomock.Any(), event.DispatchID, gomock.Any(), gomock.Any()).Return(models.ErrNotFound)
	webhookMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	// Действие
	recorder.HandleEvent(context.Background(), event)

	// Проверки
	assert.Contains(t, logBuf.String(), "Failed to persist dispatch event")
	assert.Contains(t, logBuf.String(), "Failed to publish webhook event")
}
