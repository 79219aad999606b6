package dispatch

import (
	"testing"
	"time"

	"github.com/shenikar/emergency_dispatch_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)

func newTestAssigner() *Assigner {
	return NewAssigner(0, 0, func() time.Time { return fixedNow })
}

func idleUnit(id string, lat, lng float64) *models.Unit {
	return &models.Unit{ID: id, Position: models.Point{Lat: lat, Lng: lng}, Status: models.StatusIdle}
}

func TestNewAssigner_Defaults(t *testing.T) {
	a := newTestAssigner()
	assert.Equal(t, DefaultSpeedKmph, a.SpeedKmph)
	assert.Equal(t, DefaultMinimumEtaMinutes, a.MinimumEtaMinutes)

	custom := NewAssigner(40, 5, nil)
	assert.Equal(t, 40.0, custom.SpeedKmph)
	assert.Equal(t, 5, custom.MinimumEtaMinutes)
}

func TestEtaMinutes(t *testing.T) {
	a := newTestAssigner()
	assert.Equal(t, 2, a.EtaMinutes(0))
	assert.Equal(t, 2, a.EtaMinutes(0.5))
	// 10 км при 25 км/ч = 24 минуты
	assert.Equal(t, 24, a.EtaMinutes(10))
}

func TestDispatch_EndToEnd(t *testing.T) {
	a := newTestAssigner()
	fleet := []*models.Unit{
		idleUnit("AMB001", 13.08, 80.27),
		idleUnit("AMB002", 13.00, 80.22),
		idleUnit("AMB003", 12.97, 80.23),
	}
	hospitals := []models.Hospital{
		{ID: "HSP001", Name: "Apollo Hospital", Position: models.Point{Lat: 13.04, Lng: 80.24}},
	}
	emergency := models.Point{Lat: 13.00, Lng: 80.22}

	rec, err := a.Dispatch(emergency, fleet, hospitals)
	require.NoError(t, err)

	assert.Equal(t, "AMB002", rec.Unit.ID)
	assert.Equal(t, "HSP001", rec.Hospital.ID)
	assert.Equal(t, 2, rec.EtaMinutes)
	// 0 км до места вызова + ~4.95 км до больницы
	assert.InDelta(t, 4.95, rec.DistanceKm, 0.05)
	assert.Equal(t, 12, rec.RouteEtaMinutes)
	assert.Equal(t, emergency, rec.EmergencyPosition)
	assert.Equal(t, emergency, rec.UnitOrigin)
	assert.Equal(t, fixedNow, rec.DispatchedAt)

	assert.Equal(t, models.StatusDispatched, fleet[1].Status)
	require.NotNil(t, fleet[1].Destination)
	assert.Equal(t, "HSP001", fleet[1].Destination.ID)
	assert.Equal(t, "2 mins", fleet[1].ETA)

	assert.Equal(t, models.StatusIdle, fleet[0].Status)
	assert.Equal(t, models.StatusIdle, fleet[2].Status)
}

func TestDispatch_SingleUnitSingleHospital(t *testing.T) {
	a := newTestAssigner()
	fleet := []*models.Unit{idleUnit("AMB001", 13.15, 80.29)}
	hospitals := []models.Hospital{{ID: "HSP001", Position: models.Point{Lat: 12.92, Lng: 80.12}}}

	rec, err := a.Dispatch(models.Point{Lat: 13.0, Lng: 80.2}, fleet, hospitals)
	require.NoError(t, err)
	assert.Equal(t, "AMB001", rec.Unit.ID)
	assert.Equal(t, "HSP001", rec.Hospital.ID)
	assert.GreaterOrEqual(t, rec.EtaMinutes, a.MinimumEtaMinutes)
	assert.GreaterOrEqual(t, rec.RouteEtaMinutes, rec.EtaMinutes)
	assert.Greater(t, rec.DistanceKm, 0.0)
}

func TestDispatch_NoAvailableUnitLeavesFleetUntouched(t *testing.T) {
	a := newTestAssigner()
	fleet := []*models.Unit{
		{ID: "AMB001", Status: models.StatusEnRoute, Leg: models.LegToEmergency, ETA: "7 mins"},
		{ID: "AMB002", Status: models.StatusOnDuty, ETA: "3 mins"},
		{ID: "AMB003", Status: models.StatusDispatched, ETA: "4 mins"},
	}
	before := make([]models.Unit, len(fleet))
	for i, u := range fleet {
		before[i] = *u
	}
	hospitals := []models.Hospital{{ID: "HSP001"}}

	rec, err := a.Dispatch(models.Point{Lat: 13.0, Lng: 80.2}, fleet, hospitals)
	assert.ErrorIs(t, err, ErrNoAvailableUnit)
	assert.Nil(t, rec)
	for i, u := range fleet {
		assert.Equal(t, before[i], *u)
	}
}

func TestDispatch_NoHospital(t *testing.T) {
	a := newTestAssigner()
	fleet := []*models.Unit{idleUnit("AMB001", 13.0, 80.2)}

	_, err := a.Dispatch(models.Point{Lat: 13.0, Lng: 80.2}, fleet, nil)
	assert.ErrorIs(t, err, ErrNoHospital)
	assert.Equal(t, models.StatusIdle, fleet[0].Status)
}
