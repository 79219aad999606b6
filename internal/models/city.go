package models

import "time"

// Weather - текущая погода для города или точки
type Weather struct {
	Temperature float64 `json:"temperature"`
	Condition   string  `json:"condition"`
	City        string  `json:"city,omitempty"`
}

// Route - маршрут между двумя точками
type Route struct {
	DistanceKm      float64 `json:"distance_km"`
	DurationMin     int     `json:"duration_min"`
	DurationText    string  `json:"duration_text"`
	DistanceText    string  `json:"distance_text"`
	Geometry        []Point `json:"geometry"`
	EncodedPolyline string  `json:"encoded_polyline"`
	Origin          Point   `json:"origin"`
	Destination     Point   `json:"destination"`
}

// CityEvent - массовое мероприятие, влияющее на загруженность дорог
type CityEvent struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Venue       string    `json:"venue"`
	Address     string    `json:"address"`
	Position    Point     `json:"position"`
	StartsAt    time.Time `json:"time"`
	URL         string    `json:"url,omitempty"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category"`
	IsFree      bool      `json:"is_free"`
	Currency    string    `json:"currency"`
}

// Snapshot - согласованный срез состояния симуляции
type Snapshot struct {
	Fleet       []*Unit
	Hospitals   []Hospital
	Hotspots    []Hotspot
	Emergencies []Emergency
	Metrics     Metrics
	Running     bool
	TakenAt     time.Time
}
