package geo

import (
	"math"

	"github.com/shenikar/emergency_dispatch_system/internal/models"
)

// EarthRadiusKm - средний радиус Земли
const EarthRadiusKm = 6371.0

// DistanceKm вычисляет расстояние по дуге большого круга (формула гаверсинусов)
func DistanceKm(a, b models.Point) float64 {
	if a == b {
		return 0
	}

	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	// погрешность округления может вывести h за [0, 1]
	h = math.Min(1, math.Max(0, h))
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusKm * c
}

// Interpolate возвращает точку на отрезке a-b при доле пути t в [0, 1].
// При t == 1 результат в точности равен b.
func Interpolate(a, b models.Point, t float64) models.Point {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return models.Point{
		Lat: a.Lat + (b.Lat-a.Lat)*t,
		Lng: a.Lng + (b.Lng-a.Lng)*t,
	}
}
