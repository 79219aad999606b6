package simulation

import "github.com/shenikar/emergency_dispatch_system/internal/models"

// Metrics - счетчики выездов. Значения никогда не уходят в минус.
type Metrics struct {
	activeEmergencies  int
	totalDispatches    int
	successfulOutcomes int
	etaSum             int
}

// RecordDispatch учитывает новый выезд
func (m *Metrics) RecordDispatch(etaMinutes int) {
	m.activeEmergencies++
	m.totalDispatches++
	m.etaSum += etaMinutes
}

// RecordCompletion учитывает завершенный маршрут
func (m *Metrics) RecordCompletion() {
	m.releaseActive()
	m.successfulOutcomes++
}

// RecordCancellation учитывает прерванный маршрут
func (m *Metrics) RecordCancellation() {
	m.releaseActive()
}

func (m *Metrics) releaseActive() {
	if m.activeEmergencies > 0 {
		m.activeEmergencies--
	}
}

// Snapshot возвращает текущие значения
func (m *Metrics) Snapshot() models.Metrics {
	s := models.Metrics{
		ActiveEmergencies:  m.activeEmergencies,
		TotalDispatches:    m.totalDispatches,
		SuccessfulOutcomes: m.successfulOutcomes,
	}
	if m.totalDispatches > 0 {
		s.AverageEtaMinutes = float64(m.etaSum) / float64(m.totalDispatches)
	}
	return s
}
