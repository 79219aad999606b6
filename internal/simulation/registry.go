package simulation

import (
	"fmt"
	"math/rand"

	"github.com/shenikar/emergency_dispatch_system/internal/geo"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
)

// CrewMember - экипаж машины из штатного расписания
type CrewMember struct {
	UnitID string
	Driver string
	Phone  string
}

// DefaultRoster - штатный парк из десяти машин
func DefaultRoster() []CrewMember {
	return []CrewMember{
		{"AMB001", "Raj Kumar", "+91 98765 43210"},
		{"AMB002", "Priya Sharma", "+91 98765 43211"},
		{"AMB003", "Kumar Singh", "+91 98765 43212"},
		{"AMB004", "Deepak Raj", "+91 98765 43213"},
		{"AMB005", "Sita Devi", "+91 98765 43214"},
		{"AMB006", "Suresh Kumar", "+91 98765 43215"},
		{"AMB007", "Anjali Reddy", "+91 98765 43216"},
		{"AMB008", "Vikram Patel", "+91 98765 43217"},
		{"AMB009", "Lakshmi Nair", "+91 98765 43218"},
		{"AMB010", "Ravi Shankar", "+91 98765 43219"},
	}
}

// DefaultHospitals - справочник больниц
func DefaultHospitals() []models.Hospital {
	return []models.Hospital{
		{ID: "HSP001", Name: "Apollo Hospital Chennai", Address: "21 Greams Lane, Thousand Lights", Phone: "+91 44 2829 0200", Position: models.Point{Lat: 13.0358, Lng: 80.2433}},
		{ID: "HSP002", Name: "Rajiv Gandhi Government General Hospital", Address: "Park Town, Chennai", Phone: "+91 44 2530 5000", Position: models.Point{Lat: 13.0806, Lng: 80.2772}},
		{ID: "HSP003", Name: "Stanley Medical College Hospital", Address: "Old Jail Road, Royapuram", Phone: "+91 44 2528 1347", Position: models.Point{Lat: 13.1065, Lng: 80.2872}},
		{ID: "HSP004", Name: "Kilpauk Medical College Hospital", Address: "Poonamallee High Road, Kilpauk", Phone: "+91 44 2836 4951", Position: models.Point{Lat: 13.0780, Lng: 80.2420}},
		{ID: "HSP005", Name: "MIOT International", Address: "4/112 Mount Poonamallee Road, Manapakkam", Phone: "+91 44 4200 2288", Position: models.Point{Lat: 13.0196, Lng: 80.1856}},
		{ID: "HSP006", Name: "Fortis Malar Hospital", Address: "52 1st Main Road, Adyar", Phone: "+91 44 4289 2222", Position: models.Point{Lat: 13.0108, Lng: 80.2571}},
	}
}

const stationOffset = 0.01

// DefaultBounds - область симуляции вокруг Ченнаи
func DefaultBounds() geo.BoundingBox {
	b, err := geo.NewBoundingBox(models.Point{Lat: 12.85, Lng: 80.05}, models.Point{Lat: 13.25, Lng: 80.33})
	if err != nil {
		panic(err)
	}
	return b
}

// BuildFleet расставляет машины у горячих точек: по одной у Moderate, по две у High.
// Оставшиеся машины распределяются по точкам по кругу.
func BuildFleet(roster []CrewMember, hotspots []models.Hotspot, rng *rand.Rand) []*models.Unit {
	if len(hotspots) == 0 {
		return nil
	}

	placements := make([]models.Hotspot, 0, len(roster))
	for _, h := range hotspots {
		needed := 1
		if h.Category == models.RiskHigh {
			needed = 2
		}
		for i := 0; i < needed; i++ {
			placements = append(placements, h)
		}
	}
	for i := 0; len(placements) < len(roster); i++ {
		placements = append(placements, hotspots[i%len(hotspots)])
	}

	fleet := make([]*models.Unit, 0, len(roster))
	for i, crew := range roster {
		h := placements[i]
		pos := models.Point{
			Lat: h.Position.Lat + (rng.Float64()-0.5)*stationOffset,
			Lng: h.Position.Lng + (rng.Float64()-0.5)*stationOffset,
		}
		fleet = append(fleet, &models.Unit{
			ID:       crew.UnitID,
			Position: pos,
			Home:     pos,
			Status:   models.StatusIdle,
			Driver:   crew.Driver,
			Phone:    crew.Phone,
			Station:  fmt.Sprintf("Near %s", h.Name),
		})
	}
	return fleet
}
