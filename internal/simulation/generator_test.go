package simulation

import (
	"math/rand"
	"testing"

	"github.com/shenikar/emergency_dispatch_system/internal/hotspot"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestGenerate_EmptyHotspotsStaysInBounds(t *testing.T) {
	g := NewGenerator(rand.New(rand.NewSource(1)))
	bounds := DefaultBounds()

	for i := 0; i < 1000; i++ {
		p := g.Generate(nil, bounds)
		assert.True(t, bounds.Contains(p), "point %v outside bounds", p)
	}
}

func TestGenerate_ClustersAroundHotspots(t *testing.T) {
	g := NewGenerator(rand.New(rand.NewSource(2)))
	g.HotspotBias = 1
	bounds := DefaultBounds()

	high := models.Hotspot{ID: "HS005", Position: models.Point{Lat: 13.0878, Lng: 80.2785}, Category: models.RiskHigh}
	moderate := models.Hotspot{ID: "HS006", Position: models.Point{Lat: 12.9897, Lng: 80.1693}, Category: models.RiskModerate}

	for i := 0; i < 200; i++ {
		p := g.Generate([]models.Hotspot{high}, bounds)
		assert.InDelta(t, high.Position.Lat, p.Lat, DefaultHighSpread+1e-9)
		assert.InDelta(t, high.Position.Lng, p.Lng, DefaultHighSpread+1e-9)

		p = g.Generate([]models.Hotspot{moderate}, bounds)
		assert.InDelta(t, moderate.Position.Lat, p.Lat, DefaultModerateSpread+1e-9)
		assert.InDelta(t, moderate.Position.Lng, p.Lng, DefaultModerateSpread+1e-9)
	}
}

func TestGenerate_Reproducible(t *testing.T) {
	hotspots := hotspot.Registry()
	bounds := DefaultBounds()
	a := NewGenerator(rand.New(rand.NewSource(99)))
	b := NewGenerator(rand.New(rand.NewSource(99)))

	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Generate(hotspots, bounds), b.Generate(hotspots, bounds))
	}
}

func TestDescribe(t *testing.T) {
	g := NewGenerator(rand.New(rand.NewSource(3)))
	for i := 0; i < 50; i++ {
		kind, severity := g.Describe()
		assert.Contains(t, emergencyTypes, kind)
		assert.Contains(t, []string{"low", "medium", "high"}, severity)
	}
}
