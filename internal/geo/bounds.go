package geo

import (
	"fmt"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/s2"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
)

// BoundingBox - прямоугольная область, в которой допустимы координаты симуляции
type BoundingBox struct {
	southWest models.Point
	northEast models.Point
	rect      s2.Rect
}

// NewBoundingBox строит область по юго-западному и северо-восточному углам
func NewBoundingBox(southWest, northEast models.Point) (BoundingBox, error) {
	if !southWest.Valid() || !northEast.Valid() {
		return BoundingBox{}, fmt.Errorf("invalid bounding box corners: %v %v", southWest, northEast)
	}
	if southWest.Lat > northEast.Lat || southWest.Lng > northEast.Lng {
		return BoundingBox{}, fmt.Errorf("bounding box south-west %v must precede north-east %v", southWest, northEast)
	}
	rect := s2.RectFromLatLng(s2.LatLngFromDegrees(southWest.Lat, southWest.Lng))
	rect = rect.AddPoint(s2.LatLngFromDegrees(northEast.Lat, northEast.Lng))
	return BoundingBox{southWest: southWest, northEast: northEast, rect: rect}, nil
}

// SouthWest возвращает юго-западный угол
func (b BoundingBox) SouthWest() models.Point {
	return b.southWest
}

// NorthEast возвращает северо-восточный угол
func (b BoundingBox) NorthEast() models.Point {
	return b.northEast
}

// IsZero сообщает, что область не задана
func (b BoundingBox) IsZero() bool {
	return b == BoundingBox{}
}

// Contains проверяет попадание точки в область (границы включительно)
func (b BoundingBox) Contains(p models.Point) bool {
	return b.rect.ContainsLatLng(s2.LatLngFromDegrees(p.Lat, p.Lng))
}

// Clamp прижимает точку к границам области. На границе возвращаются
// исходные координаты углов, без погрешности перевода в радианы.
func (b BoundingBox) Clamp(p models.Point) models.Point {
	ll := s2.LatLngFromDegrees(p.Lat, p.Lng)
	lng := r1.Interval{Lo: b.rect.Lng.Lo, Hi: b.rect.Lng.Hi}
	return models.Point{
		Lat: snap(b.rect.Lat, b.rect.Lat.ClampPoint(ll.Lat.Radians()), p.Lat, b.southWest.Lat, b.northEast.Lat),
		Lng: snap(lng, lng.ClampPoint(ll.Lng.Radians()), p.Lng, b.southWest.Lng, b.northEast.Lng),
	}
}

// Center возвращает центр области
func (b BoundingBox) Center() models.Point {
	c := b.rect.Center()
	return models.Point{Lat: c.Lat.Degrees(), Lng: c.Lng.Degrees()}
}

// AreaKm2 возвращает площадь области на сфере
func (b BoundingBox) AreaKm2() float64 {
	return b.rect.Area() * EarthRadiusKm * EarthRadiusKm
}

// snap переводит результат ClampPoint обратно в градусы
func snap(iv r1.Interval, clamped, deg, lo, hi float64) float64 {
	switch clamped {
	case iv.Lo:
		return lo
	case iv.Hi:
		return hi
	}
	return deg
}
