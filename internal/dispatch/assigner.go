package dispatch

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/emergency_dispatch_system/internal/geo"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
)

const (
	DefaultSpeedKmph         = 25.0
	DefaultMinimumEtaMinutes = 2
)

var (
	// ErrNoAvailableUnit - нет ни одной свободной машины; ожидаемый исход, не сбой
	ErrNoAvailableUnit = errors.New("no available units")
	// ErrNoHospital - реестр больниц пуст
	ErrNoHospital = errors.New("hospital registry is empty")
)

// Assigner назначает ближайшую свободную машину и ближайшую больницу
type Assigner struct {
	SpeedKmph         float64
	MinimumEtaMinutes int
	now               func() time.Time
}

// NewAssigner создает Assigner; нулевые значения заменяются значениями по умолчанию
func NewAssigner(speedKmph float64, minimumEtaMinutes int, now func() time.Time) *Assigner {
	if speedKmph <= 0 {
		speedKmph = DefaultSpeedKmph
	}
	if minimumEtaMinutes <= 0 {
		minimumEtaMinutes = DefaultMinimumEtaMinutes
	}
	if now == nil {
		now = time.Now
	}
	return &Assigner{
		SpeedKmph:         speedKmph,
		MinimumEtaMinutes: minimumEtaMinutes,
		now:               now,
	}
}

// EtaMinutes переводит дистанцию в минуты пути, не меньше минимального ETA
func (a *Assigner) EtaMinutes(distanceKm float64) int {
	eta := int(math.Round(distanceKm / a.SpeedKmph * 60))
	if eta < a.MinimumEtaMinutes {
		return a.MinimumEtaMinutes
	}
	return eta
}

// FormatETA форматирует ETA для отображения
func FormatETA(minutes int) string {
	return fmt.Sprintf("%d mins", minutes)
}

// Dispatch выбирает машину и больницу для вызова и переводит машину в Dispatched.
// Если свободных машин нет, возвращает ErrNoAvailableUnit и не меняет парк.
func (a *Assigner) Dispatch(emergency models.Point, fleet []*models.Unit, hospitals []models.Hospital) (*models.DispatchRecord, error) {
	unit, ok := geo.Nearest(emergency, fleet, unitPosition, isIdle)
	if !ok {
		return nil, ErrNoAvailableUnit
	}

	hospital, ok := geo.Nearest(emergency, hospitals, hospitalPosition, geo.Any[models.Hospital])
	if !ok {
		return nil, ErrNoHospital
	}

	origin := unit.Position
	toScene := geo.DistanceKm(origin, emergency)
	total := toScene + geo.DistanceKm(emergency, hospital.Position)
	// ETA - время прибытия на место вызова; полный маршрут до больницы отдельно
	eta := a.EtaMinutes(toScene)

	if err := unit.TransitionTo(models.StatusDispatched, models.LegNone); err != nil {
		return nil, fmt.Errorf("dispatch: %w", err)
	}
	dest := hospital
	unit.Destination = &dest
	unit.ETA = FormatETA(eta)
	now := a.now()
	unit.UpdatedAt = now

	return &models.DispatchRecord{
		ID:                uuid.New(),
		Unit:              unit,
		Hospital:          hospital,
		EtaMinutes:        eta,
		RouteEtaMinutes:   a.EtaMinutes(total),
		DistanceKm:        total,
		EmergencyPosition: emergency,
		UnitOrigin:        origin,
		DispatchedAt:      now,
	}, nil
}

func unitPosition(u *models.Unit) models.Point { return u.Position }

func isIdle(u *models.Unit) bool { return u != nil && u.IsIdle() }

func hospitalPosition(h models.Hospital) models.Point { return h.Position }
