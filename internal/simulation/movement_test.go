package simulation

import (
	"testing"
	"time"

	"github.com/shenikar/emergency_dispatch_system/internal/geo"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testOrigin   = models.Point{Lat: 13.08, Lng: 80.27}
	testScene    = models.Point{Lat: 13.00, Lng: 80.22}
	testHospital = models.Point{Lat: 13.04, Lng: 80.24}
)

func TestPlanRoute_Shape(t *testing.T) {
	cfg := DefaultMovementConfig()
	steps := PlanRoute(testOrigin, testScene, testHospital, cfg)
	require.Len(t, steps, 2*cfg.StepsPerLeg+3)

	first, last := steps[0], steps[len(steps)-1]
	assert.Equal(t, StepDepart, first.Kind)
	assert.Equal(t, time.Duration(0), first.Offset)
	assert.Equal(t, models.StatusEnRoute, first.Status)
	assert.Equal(t, models.LegToEmergency, first.Leg)

	assert.Equal(t, StepRelease, last.Kind)
	assert.Equal(t, models.StatusIdle, last.Status)
	assert.Equal(t, testHospital, last.Position)
	assert.Equal(t, RouteDuration(cfg), last.Offset)

	for i := 1; i < len(steps); i++ {
		assert.GreaterOrEqual(t, steps[i].Offset, steps[i-1].Offset)
	}
}

func TestPlanRoute_LegsLandExactly(t *testing.T) {
	steps := PlanRoute(testOrigin, testScene, testHospital, DefaultMovementConfig())

	var arriveScene, arriveHospital *Step
	for i := range steps {
		switch steps[i].Kind {
		case StepArriveScene:
			arriveScene = &steps[i]
		case StepArriveHospital:
			arriveHospital = &steps[i]
		}
	}
	require.NotNil(t, arriveScene)
	require.NotNil(t, arriveHospital)
	assert.Equal(t, testScene, arriveScene.Position)
	assert.Equal(t, models.StatusOnDuty, arriveScene.Status)
	assert.Equal(t, testHospital, arriveHospital.Position)
	assert.Equal(t, models.LegToHospital, arriveHospital.Leg)
}

func TestPlanRoute_MonotonicApproach(t *testing.T) {
	steps := PlanRoute(testOrigin, testScene, testHospital, MovementConfig{StepsPerLeg: 8})

	prev := geo.DistanceKm(testOrigin, testScene)
	for _, s := range steps {
		if s.Leg != models.LegToEmergency && s.Kind != StepArriveScene {
			continue
		}
		d := geo.DistanceKm(s.Position, testScene)
		assert.LessOrEqual(t, d, prev)
		prev = d
	}
	assert.Zero(t, prev)

	prev = geo.DistanceKm(testScene, testHospital)
	for _, s := range steps {
		if s.Leg != models.LegToHospital {
			continue
		}
		d := geo.DistanceKm(s.Position, testHospital)
		assert.LessOrEqual(t, d, prev)
		prev = d
	}
	assert.Zero(t, prev)
}

func TestPlanRoute_TransitionsFollowTable(t *testing.T) {
	status := models.StatusDispatched
	for _, s := range PlanRoute(testOrigin, testScene, testHospital, DefaultMovementConfig()) {
		if s.Status != status {
			assert.True(t, models.CanTransition(status, s.Status), "%s -> %s", status, s.Status)
			status = s.Status
		}
	}
	assert.Equal(t, models.StatusIdle, status)
}

func TestRouteDuration_Defaults(t *testing.T) {
	// 10 шагов по 1.2с + 3с на месте + 2с в больнице
	assert.Equal(t, 17*time.Second, RouteDuration(MovementConfig{}))
}
