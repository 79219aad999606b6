package simulation

import (
	"math/rand"

	"github.com/shenikar/emergency_dispatch_system/internal/geo"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
)

const (
	DefaultHotspotBias    = 0.7
	DefaultHighSpread     = 0.008
	DefaultModerateSpread = 0.012
)

var emergencyTypes = []string{
	"Traffic Accident",
	"Medical Emergency",
	"Fire Incident",
	"Public Disturbance",
	"Infrastructure Issue",
}

// Generator генерирует координаты вызовов со смещением к горячим точкам
type Generator struct {
	rng            *rand.Rand
	HotspotBias    float64
	HighSpread     float64
	ModerateSpread float64
}

// NewGenerator создает генератор поверх переданного источника случайности
func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{
		rng:            rng,
		HotspotBias:    DefaultHotspotBias,
		HighSpread:     DefaultHighSpread,
		ModerateSpread: DefaultModerateSpread,
	}
}

// Generate возвращает точку вызова внутри bounds.
// С вероятностью HotspotBias берется случайная горячая точка со смещением,
// иначе - равномерная точка в области.
func (g *Generator) Generate(hotspots []models.Hotspot, bounds geo.BoundingBox) models.Point {
	if len(hotspots) > 0 && g.rng.Float64() < g.HotspotBias {
		h := hotspots[g.rng.Intn(len(hotspots))]
		spread := g.ModerateSpread
		if h.Category == models.RiskHigh {
			spread = g.HighSpread
		}
		p := models.Point{
			Lat: h.Position.Lat + (g.rng.Float64()*2-1)*spread,
			Lng: h.Position.Lng + (g.rng.Float64()*2-1)*spread,
		}
		return bounds.Clamp(p)
	}

	sw, ne := bounds.SouthWest(), bounds.NorthEast()
	return models.Point{
		Lat: sw.Lat + g.rng.Float64()*(ne.Lat-sw.Lat),
		Lng: sw.Lng + g.rng.Float64()*(ne.Lng-sw.Lng),
	}
}

// Describe выбирает тип и тяжесть вызова
func (g *Generator) Describe() (kind, severity string) {
	kind = emergencyTypes[g.rng.Intn(len(emergencyTypes))]
	switch r := g.rng.Float64(); {
	case r > 0.7:
		severity = "high"
	case r > 0.4:
		severity = "medium"
	default:
		severity = "low"
	}
	return kind, severity
}
