package simulation

import (
	"time"

	"github.com/shenikar/emergency_dispatch_system/internal/geo"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
)

// MovementConfig - параметры движения машины по маршруту
type MovementConfig struct {
	StepsPerLeg   int
	StepInterval  time.Duration
	OnSceneDwell  time.Duration
	HospitalDwell time.Duration
}

// DefaultMovementConfig возвращает эталонные параметры движения
func DefaultMovementConfig() MovementConfig {
	return MovementConfig{
		StepsPerLeg:   5,
		StepInterval:  1200 * time.Millisecond,
		OnSceneDwell:  3 * time.Second,
		HospitalDwell: 2 * time.Second,
	}
}

func (c MovementConfig) withDefaults() MovementConfig {
	d := DefaultMovementConfig()
	if c.StepsPerLeg <= 0 {
		c.StepsPerLeg = d.StepsPerLeg
	}
	if c.StepInterval <= 0 {
		c.StepInterval = d.StepInterval
	}
	if c.OnSceneDwell < 0 {
		c.OnSceneDwell = 0
	}
	if c.HospitalDwell < 0 {
		c.HospitalDwell = 0
	}
	return c
}

// StepKind - тип шага маршрута
type StepKind int

const (
	StepDepart StepKind = iota
	StepMove
	StepArriveScene
	StepLeaveScene
	StepArriveHospital
	StepRelease
)

func (k StepKind) String() string {
	switch k {
	case StepDepart:
		return "depart"
	case StepMove:
		return "move"
	case StepArriveScene:
		return "arrive_scene"
	case StepLeaveScene:
		return "leave_scene"
	case StepArriveHospital:
		return "arrive_hospital"
	case StepRelease:
		return "release"
	default:
		return "unknown"
	}
}

// Step - одно обновление позиции/статуса со смещением от момента выезда
type Step struct {
	Offset   time.Duration
	Kind     StepKind
	Position models.Point
	Status   models.UnitStatus
	Leg      models.Leg
}

// PlanRoute строит упорядоченную по времени последовательность шагов:
// выезд -> место вызова -> больница -> Idle.
func PlanRoute(origin, scene, hospital models.Point, cfg MovementConfig) []Step {
	cfg = cfg.withDefaults()
	n := cfg.StepsPerLeg
	steps := make([]Step, 0, 2*n+3)

	steps = append(steps, Step{
		Offset:   0,
		Kind:     StepDepart,
		Position: origin,
		Status:   models.StatusEnRoute,
		Leg:      models.LegToEmergency,
	})

	var offset time.Duration
	for i := 1; i <= n; i++ {
		offset = time.Duration(i) * cfg.StepInterval
		step := Step{
			Offset:   offset,
			Kind:     StepMove,
			Position: geo.Interpolate(origin, scene, float64(i)/float64(n)),
			Status:   models.StatusEnRoute,
			Leg:      models.LegToEmergency,
		}
		if i == n {
			step.Kind = StepArriveScene
			step.Position = scene
			step.Status = models.StatusOnDuty
			step.Leg = models.LegNone
		}
		steps = append(steps, step)
	}

	leave := offset + cfg.OnSceneDwell
	steps = append(steps, Step{
		Offset:   leave,
		Kind:     StepLeaveScene,
		Position: scene,
		Status:   models.StatusEnRoute,
		Leg:      models.LegToHospital,
	})

	for i := 1; i <= n; i++ {
		offset = leave + time.Duration(i)*cfg.StepInterval
		step := Step{
			Offset:   offset,
			Kind:     StepMove,
			Position: geo.Interpolate(scene, hospital, float64(i)/float64(n)),
			Status:   models.StatusEnRoute,
			Leg:      models.LegToHospital,
		}
		if i == n {
			step.Kind = StepArriveHospital
			step.Position = hospital
		}
		steps = append(steps, step)
	}

	steps = append(steps, Step{
		Offset:   offset + cfg.HospitalDwell,
		Kind:     StepRelease,
		Position: hospital,
		Status:   models.StatusIdle,
		Leg:      models.LegNone,
	})
	return steps
}

// RouteDuration возвращает полное время маршрута
func RouteDuration(cfg MovementConfig) time.Duration {
	cfg = cfg.withDefaults()
	return 2*time.Duration(cfg.StepsPerLeg)*cfg.StepInterval + cfg.OnSceneDwell + cfg.HospitalDwell
}
