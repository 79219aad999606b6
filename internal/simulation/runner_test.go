package simulation

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/shenikar/emergency_dispatch_system/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingHandler struct {
	mu     sync.Mutex
	events []Event
}

func (h *recordingHandler) HandleEvent(_ context.Context, ev Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, ev)
}

func (h *recordingHandler) types() []EventType {
	h.mu.Lock()
	defer h.mu.Unlock()
	return eventTypes(h.events)
}

type staticSource struct {
	hotspots []models.Hotspot
	err      error
}

func (s staticSource) Hotspots(context.Context) ([]models.Hotspot, error) {
	return s.hotspots, s.err
}

func newTestRunner(t *testing.T, cfg RunnerConfig, source HotspotSource) (*Runner, *recordingHandler) {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	handler := &recordingHandler{}
	r := NewRunner(newTestEngine(t), cfg, source, handler, logger)

	ctx, cancel := context.WithCancel(context.Background())
	go r.Run(ctx)
	t.Cleanup(cancel)
	return r, handler
}

func TestRunner_DoRunsOnLoopAndForwardsEvents(t *testing.T) {
	r, handler := newTestRunner(t, RunnerConfig{TickInterval: 10 * time.Millisecond, GenerateInterval: time.Hour, RefreshInterval: time.Hour}, nil)
	ctx := context.Background()

	var unitID string
	err := r.Do(ctx, func(e *Engine) error {
		rec, _, err := e.Dispatch(testScene, "Medical Emergency", "high")
		if err != nil {
			return err
		}
		unitID = rec.Unit.ID
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "AMB002", unitID)

	require.Eventually(t, func() bool {
		types := handler.types()
		return len(types) > 0 && types[0] == EventDispatched
	}, time.Second, 10*time.Millisecond)
}

func TestRunner_DoReturnsError(t *testing.T) {
	r, _ := newTestRunner(t, RunnerConfig{GenerateInterval: time.Hour, RefreshInterval: time.Hour}, nil)
	boom := errors.New("boom")
	assert.ErrorIs(t, r.Do(context.Background(), func(*Engine) error { return boom }), boom)
}

func TestRunner_StartStop(t *testing.T) {
	r, _ := newTestRunner(t, RunnerConfig{GenerateInterval: time.Hour, RefreshInterval: time.Hour, AutoGenerate: true}, nil)
	ctx := context.Background()

	running, err := r.Running(ctx)
	require.NoError(t, err)
	assert.True(t, running)

	require.NoError(t, r.Do(ctx, func(e *Engine) error {
		_, _, err := e.Dispatch(testScene, "Medical Emergency", "low")
		return err
	}))

	dropped, err := r.Stop(ctx)
	require.NoError(t, err)
	assert.Positive(t, dropped)

	running, err = r.Running(ctx)
	require.NoError(t, err)
	assert.False(t, running)

	require.NoError(t, r.Start(ctx))
	running, err = r.Running(ctx)
	require.NoError(t, err)
	assert.True(t, running)

	require.NoError(t, r.Inspect(ctx, func(e *Engine, generating bool) error {
		assert.True(t, generating)
		assert.Empty(t, e.Emergencies())
		for _, u := range e.Fleet() {
			assert.Equal(t, models.StatusIdle, u.Status)
		}
		return nil
	}))

	// после Stop -> Start весь парк снова доступен
	for range 3 {
		require.NoError(t, r.Do(ctx, func(e *Engine) error {
			_, _, err := e.Dispatch(testScene, "Medical Emergency", "low")
			return err
		}))
	}
}

func TestRunner_RefreshAppliesHotspots(t *testing.T) {
	fresh := []models.Hotspot{{ID: "HS999", Name: "Marina Beach", Position: models.Point{Lat: 13.05, Lng: 80.28}, Category: models.RiskHigh}}
	r, _ := newTestRunner(t, RunnerConfig{GenerateInterval: time.Hour, RefreshInterval: 10 * time.Millisecond}, staticSource{hotspots: fresh})

	require.Eventually(t, func() bool {
		var ids []string
		_ = r.Do(context.Background(), func(e *Engine) error {
			for _, h := range e.Hotspots() {
				ids = append(ids, h.ID)
			}
			return nil
		})
		return len(ids) == 1 && ids[0] == "HS999"
	}, time.Second, 10*time.Millisecond)
}

func TestRunner_DoAfterShutdown(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	r := NewRunner(newTestEngine(t), RunnerConfig{}, nil, nil, logger)

	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		r.Run(ctx)
		close(stopped)
	}()
	cancel()
	<-stopped

	assert.ErrorIs(t, r.Do(context.Background(), func(*Engine) error { return nil }), ErrRunnerStopped)
}
