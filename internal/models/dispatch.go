package models

import (
	"time"

	"github.com/google/uuid"
)

// DispatchStatus - состояние записи о выезде в истории
type DispatchStatus string

const (
	DispatchActive    DispatchStatus = "active"
	DispatchCompleted DispatchStatus = "completed"
	DispatchCancelled DispatchStatus = "cancelled"
)

// DispatchRecord - результат назначения машины на вызов
type DispatchRecord struct {
	ID                uuid.UUID
	EmergencyID       uuid.UUID
	Unit              *Unit
	Hospital          Hospital
	EtaMinutes        int
	RouteEtaMinutes   int
	DistanceKm        float64
	EmergencyPosition Point
	UnitOrigin        Point
	DispatchedAt      time.Time
}

// Dispatch - запись истории выездов, хранимая в бд
type Dispatch struct {
	ID           uuid.UUID      `json:"id"`
	EmergencyID  uuid.UUID      `json:"emergency_id"`
	UnitID       string         `json:"unit_id"`
	HospitalID   string         `json:"hospital_id"`
	Latitude     float64        `json:"latitude"`
	Longitude    float64        `json:"longitude"`
	EtaMinutes   int            `json:"eta_minutes"`
	DistanceKm   float64        `json:"distance_km"`
	Status       DispatchStatus `json:"status"`
	DispatchedAt time.Time      `json:"dispatched_at"`
	CompletedAt  *time.Time     `json:"completed_at,omitempty"`
}

// Metrics - счетчики симуляции
type Metrics struct {
	ActiveEmergencies  int     `json:"active_emergencies"`
	TotalDispatches    int     `json:"total_dispatches"`
	SuccessfulOutcomes int     `json:"successful_outcomes"`
	AverageEtaMinutes  float64 `json:"average_eta_minutes"`
}
