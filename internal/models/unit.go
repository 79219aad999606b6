package models

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidTransition возвращается при попытке недопустимой смены статуса
var ErrInvalidTransition = errors.New("invalid unit status transition")

// UnitStatus - статус машины скорой помощи
type UnitStatus int

const (
	StatusIdle UnitStatus = iota
	StatusDispatched
	StatusEnRoute
	StatusOnDuty
)

func (s UnitStatus) String() string {
	switch s {
	case StatusIdle:
		return "Idle"
	case StatusDispatched:
		return "Dispatched"
	case StatusEnRoute:
		return "EnRoute"
	case StatusOnDuty:
		return "OnDuty"
	default:
		return "Unknown"
	}
}

// Leg - участок маршрута, по которому движется машина в статусе EnRoute
type Leg int

const (
	LegNone Leg = iota
	LegToEmergency
	LegToHospital
)

func (l Leg) String() string {
	switch l {
	case LegToEmergency:
		return "to_emergency"
	case LegToHospital:
		return "to_hospital"
	default:
		return ""
	}
}

// transitions - таблица допустимых переходов.
// Idle -> Dispatched -> EnRoute -> OnDuty -> EnRoute -> Idle
var transitions = map[UnitStatus]map[UnitStatus]bool{
	StatusIdle:       {StatusDispatched: true},
	StatusDispatched: {StatusEnRoute: true},
	StatusEnRoute:    {StatusOnDuty: true, StatusIdle: true},
	StatusOnDuty:     {StatusEnRoute: true},
}

// CanTransition проверяет, разрешен ли переход между статусами
func CanTransition(from, to UnitStatus) bool {
	return transitions[from][to]
}

// Unit - машина скорой помощи
type Unit struct {
	ID          string
	Position    Point
	Home        Point
	Status      UnitStatus
	Leg         Leg
	Destination *Hospital
	ETA         string
	Driver      string
	Phone       string
	Station     string
	UpdatedAt   time.Time
}

// IsIdle сообщает, доступна ли машина для нового вызова
func (u *Unit) IsIdle() bool {
	return u.Status == StatusIdle
}

// TransitionTo меняет статус машины по таблице переходов
func (u *Unit) TransitionTo(to UnitStatus, leg Leg) error {
	if !CanTransition(u.Status, to) {
		return fmt.Errorf("%w: %s -> %s (unit %s)", ErrInvalidTransition, u.Status, to, u.ID)
	}
	u.Status = to
	u.Leg = leg
	return nil
}

// Release возвращает машину в Idle вне таблицы переходов (принудительный сброс)
func (u *Unit) Release() {
	u.Status = StatusIdle
	u.Leg = LegNone
	u.Destination = nil
	u.ETA = ""
}

// Clone возвращает копию машины, безопасную для передачи за пределы движка
func (u *Unit) Clone() *Unit {
	c := *u
	if u.Destination != nil {
		h := *u.Destination
		c.Destination = &h
	}
	return &c
}
