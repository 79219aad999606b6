package v1

import (
	"github.com/shenikar/emergency_dispatch_system/internal/models"
	"github.com/shenikar/emergency_dispatch_system/internal/service"
)

// ModelToUnitResponse преобразует машину в DTO
func ModelToUnitResponse(u *models.Unit) UnitResponse {
	return UnitResponse{
		ID:          u.ID,
		Position:    u.Position,
		Status:      u.Status.String(),
		Leg:         u.Leg.String(),
		Destination: u.Destination,
		ETA:         u.ETA,
		Driver:      u.Driver,
		Phone:       u.Phone,
		Station:     u.Station,
		UpdatedAt:   u.UpdatedAt,
	}
}

func ModelsToUnitResponses(units []*models.Unit) []UnitResponse {
	responses := make([]UnitResponse, len(units))
	for i, u := range units {
		responses[i] = ModelToUnitResponse(u)
	}
	return responses
}

// RecordToDispatchResponse преобразует результат назначения в DTO
func RecordToDispatchResponse(rec *models.DispatchRecord, emergency *models.Emergency) *DispatchResponse {
	return &DispatchResponse{
		DispatchID:        rec.ID,
		EmergencyID:       rec.EmergencyID,
		Unit:              ModelToUnitResponse(rec.Unit),
		Hospital:          rec.Hospital,
		EtaMinutes:        rec.EtaMinutes,
		RouteEtaMinutes:   rec.RouteEtaMinutes,
		DistanceKm:        rec.DistanceKm,
		EmergencyLocation: rec.EmergencyPosition,
		Emergency:         emergency,
		DispatchedAt:      rec.DispatchedAt,
	}
}

// DTOToLocation преобразует точку маршрута; координаты важнее адреса
func DTOToLocation(dto LocationRequest) service.Location {
	if dto.Latitude != nil && dto.Longitude != nil {
		return service.Location{Position: &models.Point{Lat: *dto.Latitude, Lng: *dto.Longitude}}
	}
	return service.Location{Address: dto.Address}
}
