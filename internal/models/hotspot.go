package models

// RiskCategory - категория риска горячей точки
type RiskCategory string

const (
	RiskModerate RiskCategory = "moderate"
	RiskHigh     RiskCategory = "high"
)

// HighRiskThreshold - интенсивность, выше которой точка считается High
const HighRiskThreshold = 0.7

// CategoryForIntensity вычисляет категорию по непрерывной интенсивности
func CategoryForIntensity(intensity float64) RiskCategory {
	if intensity > HighRiskThreshold {
		return RiskHigh
	}
	return RiskModerate
}

// Trend - динамика загруженности
type Trend string

const (
	TrendRising    Trend = "rising"
	TrendStable    Trend = "stable"
	TrendDeclining Trend = "declining"
)

type Hotspot struct {
	ID               string       `json:"hotspot_id"`
	Name             string       `json:"name"`
	Position         Point        `json:"position"`
	BaseIntensity    float64      `json:"-"`
	Intensity        float64      `json:"intensity"`
	Category         RiskCategory `json:"category"`
	Trend            Trend        `json:"trend,omitempty"`
	Prediction       string       `json:"prediction,omitempty"`
	TrafficLevel     string       `json:"traffic_level,omitempty"`
	CurrentSpeedKmph int          `json:"current_speed_kmph,omitempty"`
}
