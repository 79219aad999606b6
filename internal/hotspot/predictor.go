package hotspot

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/shenikar/emergency_dispatch_system/internal/models"
)

const maxIntensity = 0.95

// Predictor прогнозирует интенсивность горячих точек по времени суток и дню недели
type Predictor struct {
	rng      *rand.Rand
	registry []models.Hotspot
}

func NewPredictor(rng *rand.Rand, registry []models.Hotspot) *Predictor {
	return &Predictor{rng: rng, registry: registry}
}

// IsRushHour - будние часы пик 08-10 и 17-19
func IsRushHour(t time.Time) bool {
	h := t.Hour()
	return (h >= 8 && h <= 10) || (h >= 17 && h <= 19)
}

// IsWeekend - суббота или воскресенье
func IsWeekend(t time.Time) bool {
	return t.Weekday() == time.Saturday || t.Weekday() == time.Sunday
}

// Multiplier возвращает поправку интенсивности на время
func Multiplier(t time.Time) float64 {
	switch {
	case IsWeekend(t):
		return 0.7
	case IsRushHour(t):
		return 1.3
	default:
		return 1.0
	}
}

// TrendAt определяет динамику по часу
func TrendAt(t time.Time) models.Trend {
	h := t.Hour()
	switch {
	case IsRushHour(t) && h < 19:
		return models.TrendRising
	case h > 19 || h < 7:
		return models.TrendDeclining
	default:
		return models.TrendStable
	}
}

// Predict возвращает прогноз для всех точек реестра на момент now
func (p *Predictor) Predict(now time.Time) []models.Hotspot {
	multiplier := Multiplier(now)
	trend := TrendAt(now)

	out := make([]models.Hotspot, 0, len(p.registry))
	for _, h := range p.registry {
		variation := 0.8 + p.rng.Float64()*0.4
		intensity := math.Min(maxIntensity, h.BaseIntensity*multiplier*variation)
		intensity = math.Round(intensity*100) / 100

		h.Intensity = intensity
		h.Trend = trend
		h.Category = models.CategoryForIntensity(intensity)
		h.Prediction = p.predictionText(intensity, trend)
		out = append(out, h)
	}
	return out
}

func (p *Predictor) predictionText(intensity float64, trend models.Trend) string {
	risk := "Low"
	switch {
	case intensity > 0.8:
		risk = "High"
	case intensity > 0.5:
		risk = "Moderate"
	}

	traffic := "stable"
	switch trend {
	case models.TrendRising:
		traffic = "increasing"
	case models.TrendDeclining:
		traffic = "decreasing"
	}

	texts := []string{
		fmt.Sprintf("%d%% congestion expected", int(math.Round(intensity*100))),
		fmt.Sprintf("Traffic %s", traffic),
		fmt.Sprintf("%s emergency response delay risk", risk),
	}
	return texts[p.rng.Intn(len(texts))]
}
