package simulation

import (
	"io"
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/emergency_dispatch_system/internal/dispatch"
	"github.com/shenikar/emergency_dispatch_system/internal/geo"
	"github.com/shenikar/emergency_dispatch_system/internal/hotspot"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var engineNow = time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return NewEngine(Options{
		Bounds: DefaultBounds(),
		Rand:   rand.New(rand.NewSource(11)),
		Now:    func() time.Time { return engineNow },
		Logger: logger,
		Fleet: []*models.Unit{
			{ID: "AMB001", Position: models.Point{Lat: 13.08, Lng: 80.27}},
			{ID: "AMB002", Position: models.Point{Lat: 13.00, Lng: 80.22}},
			{ID: "AMB003", Position: models.Point{Lat: 12.97, Lng: 80.23}},
		},
		Hospitals: []models.Hospital{
			{ID: "HSP001", Name: "Apollo Hospital", Position: testHospital},
		},
		Hotspots: hotspot.Registry(),
	})
}

func eventTypes(events []Event) []EventType {
	out := make([]EventType, 0, len(events))
	for _, ev := range events {
		out = append(out, ev.Type)
	}
	return out
}

func TestEngine_FullRouteReturnsToIdle(t *testing.T) {
	e := newTestEngine(t)

	rec, em, err := e.Dispatch(testScene, "Medical Emergency", "high")
	require.NoError(t, err)
	assert.Equal(t, "AMB002", rec.Unit.ID)
	assert.Equal(t, models.StatusDispatched, rec.Unit.Status)
	assert.Equal(t, 2, rec.EtaMinutes)
	assert.Equal(t, rec.EmergencyID, em.ID)
	assert.Equal(t, "HSP001", em.Hospital.ID)
	assert.Len(t, e.Emergencies(), 1)
	assert.Equal(t, 1, e.Metrics().ActiveEmergencies)

	events := e.DrainEvents()
	require.Len(t, events, 1)
	assert.Equal(t, EventDispatched, events[0].Type)
	assert.Equal(t, rec.ID, events[0].DispatchID)
	assert.Equal(t, engineNow, events[0].OccurredAt)

	e.Advance(0)
	unit, err := e.Unit("AMB002")
	require.NoError(t, err)
	assert.Equal(t, models.StatusEnRoute, unit.Status)
	assert.Equal(t, models.LegToEmergency, unit.Leg)
	assert.Equal(t, "2 mins", unit.ETA)

	e.Advance(RouteDuration(DefaultMovementConfig()))
	unit, err = e.Unit("AMB002")
	require.NoError(t, err)
	assert.Equal(t, models.StatusIdle, unit.Status)
	assert.Nil(t, unit.Destination)
	assert.Empty(t, unit.ETA)
	assert.Equal(t, testHospital, unit.Position)

	m := e.Metrics()
	assert.Equal(t, 0, m.ActiveEmergencies)
	assert.Equal(t, 1, m.TotalDispatches)
	assert.Equal(t, 1, m.SuccessfulOutcomes)
	assert.Empty(t, e.Emergencies())
	assert.Zero(t, e.Pending())
	assert.Equal(t, []EventType{EventCompleted}, eventTypes(e.DrainEvents()))
}

func TestEngine_UnitOnDutyAtScene(t *testing.T) {
	e := newTestEngine(t)
	cfg := DefaultMovementConfig()

	_, _, err := e.Dispatch(testScene, "Traffic Accident", "medium")
	require.NoError(t, err)

	e.Advance(time.Duration(cfg.StepsPerLeg) * cfg.StepInterval)
	unit, err := e.Unit("AMB002")
	require.NoError(t, err)
	assert.Equal(t, models.StatusOnDuty, unit.Status)
	assert.Equal(t, testScene, unit.Position)
	require.NotNil(t, unit.Destination)
}

func TestEngine_StopDiscardsPendingUpdates(t *testing.T) {
	e := newTestEngine(t)
	scene := models.Point{Lat: 13.06, Lng: 80.26}

	rec, _, err := e.Dispatch(scene, "Fire Incident", "high")
	require.NoError(t, err)
	assert.Equal(t, "AMB001", rec.Unit.ID)

	e.Advance(1200 * time.Millisecond)
	moved, err := e.Unit("AMB001")
	require.NoError(t, err)
	assert.NotEqual(t, rec.UnitOrigin, moved.Position)

	assert.Positive(t, e.Stop())
	before := e.Fleet()
	e.Advance(time.Minute)

	assert.Equal(t, before, e.Fleet())
	assert.Zero(t, e.Pending())
}

func TestEngine_StopReleasesUnitsInPlace(t *testing.T) {
	e := newTestEngine(t)
	scene := models.Point{Lat: 13.06, Lng: 80.26}

	rec, _, err := e.Dispatch(scene, "Fire Incident", "high")
	require.NoError(t, err)
	e.DrainEvents()
	e.Advance(2 * time.Second)
	moved, err := e.Unit(rec.Unit.ID)
	require.NoError(t, err)

	e.Stop()
	e.Advance(time.Hour)

	unit, err := e.Unit(rec.Unit.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusIdle, unit.Status)
	assert.Equal(t, moved.Position, unit.Position)
	assert.Nil(t, unit.Destination)
	assert.Empty(t, unit.ETA)
	assert.Empty(t, e.Emergencies())
	assert.Zero(t, e.Metrics().ActiveEmergencies)
	assert.Equal(t, 1, e.Metrics().TotalDispatches)
	assert.Equal(t, []EventType{EventCancelled}, eventTypes(e.DrainEvents()))

	// после остановки машина снова доступна
	again, _, err := e.Dispatch(scene, "Fire Incident", "high")
	require.NoError(t, err)
	assert.Equal(t, rec.Unit.ID, again.Unit.ID)
}

func TestEngine_SkipsEntriesOutsideBounds(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	bounds, err := geo.NewBoundingBox(models.Point{Lat: 12.95, Lng: 80.20}, models.Point{Lat: 13.02, Lng: 80.30})
	require.NoError(t, err)
	inside := models.Point{Lat: 13.0108, Lng: 80.2571}

	e := NewEngine(Options{
		Bounds: bounds,
		Rand:   rand.New(rand.NewSource(5)),
		Now:    func() time.Time { return engineNow },
		Logger: logger,
		Fleet: []*models.Unit{
			{ID: "AMB001", Position: models.Point{Lat: 12.98, Lng: 80.22}},
			{ID: "AMB002", Position: models.Point{Lat: 13.08, Lng: 80.27}},
		},
		Hospitals: []models.Hospital{
			{ID: "HSP001", Name: "Rajiv Gandhi Government General Hospital", Position: models.Point{Lat: 13.0806, Lng: 80.2772}},
			{ID: "HSP006", Name: "Fortis Malar Hospital", Position: inside},
		},
	})

	require.Len(t, e.Fleet(), 1)
	assert.Equal(t, "AMB001", e.Fleet()[0].ID)
	require.Len(t, e.Hospitals(), 1)
	assert.Equal(t, "HSP006", e.Hospitals()[0].ID)

	rec, _, err := e.Dispatch(models.Point{Lat: 13.015, Lng: 80.28}, "Medical Emergency", "high")
	require.NoError(t, err)
	assert.Equal(t, "HSP006", rec.Hospital.ID)

	e.Advance(time.Hour)
	unit, err := e.Unit("AMB001")
	require.NoError(t, err)
	assert.Equal(t, models.StatusIdle, unit.Status)
	assert.Equal(t, inside, unit.Position)
}

func TestEngine_ResetUnitCancelsRoute(t *testing.T) {
	e := newTestEngine(t)
	_, _, err := e.Dispatch(models.Point{Lat: 13.06, Lng: 80.26}, "Fire Incident", "high")
	require.NoError(t, err)
	e.DrainEvents()

	e.Advance(2 * time.Second)
	require.NoError(t, e.ResetUnit("AMB001"))

	unit, err := e.Unit("AMB001")
	require.NoError(t, err)
	assert.Equal(t, models.StatusIdle, unit.Status)
	assert.Nil(t, unit.Destination)
	assert.Empty(t, unit.ETA)
	assert.Zero(t, e.Pending())

	m := e.Metrics()
	assert.Equal(t, 0, m.ActiveEmergencies)
	assert.Equal(t, 0, m.SuccessfulOutcomes)
	assert.Empty(t, e.Emergencies())
	assert.Equal(t, []EventType{EventCancelled}, eventTypes(e.DrainEvents()))

	position := unit.Position
	e.Advance(time.Minute)
	unit, err = e.Unit("AMB001")
	require.NoError(t, err)
	assert.Equal(t, position, unit.Position)

	assert.ErrorIs(t, e.ResetUnit("AMB404"), ErrUnitNotFound)
}

func TestEngine_StepsForMissingUnitAreNoop(t *testing.T) {
	e := newTestEngine(t)
	_, _, err := e.Dispatch(testScene, "Medical Emergency", "low")
	require.NoError(t, err)

	require.NoError(t, e.removeUnit("AMB002"))
	assert.NotPanics(t, func() { e.Advance(time.Minute) })
	assert.Len(t, e.Fleet(), 2)
	_, err = e.Unit("AMB002")
	assert.ErrorIs(t, err, ErrUnitNotFound)
}

func TestEngine_StaleStepIsIgnored(t *testing.T) {
	e := newTestEngine(t)
	_, _, err := e.Dispatch(testScene, "Medical Emergency", "low")
	require.NoError(t, err)

	before, err := e.Unit("AMB002")
	require.NoError(t, err)
	e.applyStep("AMB002", uuid.New(), Step{Kind: StepRelease, Position: testHospital, Status: models.StatusIdle})

	after, err := e.Unit("AMB002")
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestEngine_NoAvailableUnit(t *testing.T) {
	e := newTestEngine(t)
	for i := 0; i < 3; i++ {
		_, _, err := e.Dispatch(testScene, "Medical Emergency", "low")
		require.NoError(t, err)
	}

	before := e.Fleet()
	_, _, err := e.Dispatch(testScene, "Medical Emergency", "low")
	assert.ErrorIs(t, err, dispatch.ErrNoAvailableUnit)
	assert.Equal(t, before, e.Fleet())
	assert.Equal(t, 3, e.Metrics().TotalDispatches)
}

func TestEngine_DispatchOutOfBounds(t *testing.T) {
	e := newTestEngine(t)
	_, _, err := e.Dispatch(models.Point{Lat: 19.07, Lng: 72.87}, "Medical Emergency", "low")
	assert.ErrorIs(t, err, ErrOutOfBounds)
	assert.Zero(t, e.Metrics().TotalDispatches)
}

func TestEngine_Reset(t *testing.T) {
	e := newTestEngine(t)
	homes := map[string]models.Point{}
	for _, u := range e.Fleet() {
		homes[u.ID] = u.Position
	}

	for i := 0; i < 2; i++ {
		_, _, err := e.Dispatch(testScene, "Medical Emergency", "low")
		require.NoError(t, err)
	}
	e.Advance(5 * time.Second)
	e.Reset()

	for _, u := range e.Fleet() {
		assert.Equal(t, models.StatusIdle, u.Status)
		assert.Equal(t, homes[u.ID], u.Position)
	}
	assert.Empty(t, e.Emergencies())
	assert.Zero(t, e.Pending())
	assert.Zero(t, e.Metrics().ActiveEmergencies)
}

func TestEngine_SimulateEmergency(t *testing.T) {
	e := newTestEngine(t)
	rec, em, err := e.SimulateEmergency()
	require.NoError(t, err)
	assert.True(t, e.Bounds().Contains(em.Position))
	assert.NotEmpty(t, em.Type)
	assert.Equal(t, em.Position, rec.EmergencyPosition)
}
