package hotspot

import "github.com/shenikar/emergency_dispatch_system/internal/models"

// Registry возвращает фиксированный набор горячих точек Ченнаи
func Registry() []models.Hotspot {
	base := []struct {
		id, name  string
		lat, lng  float64
		intensity float64
	}{
		{"HS001", "T. Nagar Commercial District", 13.0417, 80.2341, 0.8},
		{"HS002", "Anna Nagar Roundabout", 13.0850, 80.2101, 0.7},
		{"HS003", "Velachery Main Road", 13.0067, 80.2206, 0.75},
		{"HS004", "OMR IT Corridor", 12.9698, 80.2282, 0.85},
		{"HS005", "Central Railway Station Area", 13.0878, 80.2785, 0.9},
		{"HS006", "Airport Road Junction", 12.9897, 80.1693, 0.65},
	}

	hotspots := make([]models.Hotspot, 0, len(base))
	for _, b := range base {
		hotspots = append(hotspots, models.Hotspot{
			ID:            b.id,
			Name:          b.name,
			Position:      models.Point{Lat: b.lat, Lng: b.lng},
			BaseIntensity: b.intensity,
			Intensity:     b.intensity,
			Category:      models.CategoryForIntensity(b.intensity),
			Trend:         models.TrendStable,
		})
	}
	return hotspots
}

// FilterByCategory оставляет только точки указанной категории; пустая категория - все
func FilterByCategory(hotspots []models.Hotspot, category models.RiskCategory) []models.Hotspot {
	if category == "" {
		return hotspots
	}
	out := make([]models.Hotspot, 0, len(hotspots))
	for _, h := range hotspots {
		if h.Category == category {
			out = append(out, h)
		}
	}
	return out
}
