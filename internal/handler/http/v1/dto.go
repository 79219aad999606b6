package v1

import (
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
)

// DispatchRequest DTO для ручного вызова
// @Description DTO для ручного вызова скорой
type DispatchRequest struct {
	Latitude  float64 `json:"latitude" validate:"required,latitude"`
	Longitude float64 `json:"longitude" validate:"required,longitude"`
	Type      string  `json:"type,omitempty" validate:"omitempty,max=64"`
	Severity  string  `json:"severity,omitempty" validate:"omitempty,oneof=low medium high critical"`
}

// UnitResponse DTO машины скорой помощи
// @Description DTO машины скорой помощи
type UnitResponse struct {
	ID          string           `json:"unit_id"`
	Position    models.Point     `json:"position"`
	Status      string           `json:"status"`
	Leg         string           `json:"leg,omitempty"`
	Destination *models.Hospital `json:"destination,omitempty"`
	ETA         string           `json:"eta,omitempty"`
	Driver      string           `json:"driver"`
	Phone       string           `json:"phone"`
	Station     string           `json:"station"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// DispatchResponse DTO результата назначения
// @Description DTO результата назначения машины
type DispatchResponse struct {
	DispatchID        uuid.UUID         `json:"dispatch_id"`
	EmergencyID       uuid.UUID         `json:"emergency_id"`
	Unit              UnitResponse      `json:"unit"`
	Hospital          models.Hospital   `json:"hospital"`
	EtaMinutes        int               `json:"eta_minutes"`
	RouteEtaMinutes   int               `json:"route_eta_minutes"`
	DistanceKm        float64           `json:"distance_km"`
	EmergencyLocation models.Point      `json:"emergency_location"`
	Emergency         *models.Emergency `json:"emergency,omitempty"`
	DispatchedAt      time.Time         `json:"dispatched_at"`
}

// SimulationStatusResponse DTO состояния симуляции
// @Description DTO состояния симуляции
type SimulationStatusResponse struct {
	Status       string `json:"status"`
	DroppedSteps int    `json:"dropped_steps,omitempty"`
}

// LocationRequest - координаты или адрес точки маршрута
// @Description Координаты или адрес точки маршрута
type LocationRequest struct {
	Latitude  *float64 `json:"lat,omitempty" validate:"omitempty,latitude"`
	Longitude *float64 `json:"lng,omitempty" validate:"omitempty,longitude"`
	Address   string   `json:"address,omitempty" validate:"omitempty,max=255"`
}

// RouteRequest DTO для построения маршрута
// @Description DTO для построения маршрута
type RouteRequest struct {
	Origin      LocationRequest `json:"origin"`
	Destination LocationRequest `json:"destination"`
}

// ErrorResponse DTO ошибки
// @Description DTO ошибки
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    string `json:"code,omitempty"`
}
