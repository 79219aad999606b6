package simulation

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/emergency_dispatch_system/internal/dispatch"
	"github.com/shenikar/emergency_dispatch_system/internal/geo"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
	"github.com/sirupsen/logrus"
)

var (
	ErrUnitNotFound = errors.New("unit not found")
	ErrOutOfBounds  = errors.New("location is outside the simulation area")
)

// EventType - тип события жизненного цикла выезда
type EventType string

const (
	EventDispatched EventType = "dispatch.created"
	EventCompleted  EventType = "dispatch.completed"
	EventCancelled  EventType = "dispatch.cancelled"
)

// Event - событие движка, обрабатываемое вне цикла симуляции
type Event struct {
	Type        EventType    `json:"type"`
	DispatchID  uuid.UUID    `json:"dispatch_id"`
	EmergencyID uuid.UUID    `json:"emergency_id"`
	UnitID      string       `json:"unit_id"`
	HospitalID  string       `json:"hospital_id"`
	Position    models.Point `json:"position"`
	EtaMinutes  int          `json:"eta_minutes"`
	DistanceKm  float64      `json:"distance_km"`
	OccurredAt  time.Time    `json:"occurred_at"`
}

// Options - зависимости и параметры движка
type Options struct {
	Bounds    geo.BoundingBox
	Movement  MovementConfig
	Assigner  *dispatch.Assigner
	Rand      *rand.Rand
	Now       func() time.Time
	Logger    *logrus.Logger
	Fleet     []*models.Unit
	Hospitals []models.Hospital
	Hotspots  []models.Hotspot
}

type activeRoute struct {
	dispatchID  uuid.UUID
	emergencyID uuid.UUID
	hospitalID  string
}

// Engine владеет всем состоянием симуляции. Не потокобезопасен:
// все вызовы должны идти из одной горутины (см. Runner).
type Engine struct {
	fleet       []*models.Unit
	index       map[string]*models.Unit
	hospitals   []models.Hospital
	hotspots    []models.Hotspot
	emergencies map[uuid.UUID]*models.Emergency
	routes      map[string]*activeRoute

	bounds    geo.BoundingBox
	movement  MovementConfig
	assigner  *dispatch.Assigner
	generator *Generator
	scheduler *Scheduler
	metrics   Metrics

	now    func() time.Time
	logger *logrus.Logger
	events []Event
}

func NewEngine(opts Options) *Engine {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Assigner == nil {
		opts.Assigner = dispatch.NewAssigner(0, 0, opts.Now)
	}
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}
	if opts.Bounds.IsZero() {
		opts.Bounds = DefaultBounds()
	}

	e := &Engine{
		index:       make(map[string]*models.Unit, len(opts.Fleet)),
		hotspots:    append([]models.Hotspot(nil), opts.Hotspots...),
		emergencies: make(map[uuid.UUID]*models.Emergency),
		routes:      make(map[string]*activeRoute),
		bounds:      opts.Bounds,
		movement:    opts.Movement.withDefaults(),
		assigner:    opts.Assigner,
		generator:   NewGenerator(opts.Rand),
		scheduler:   NewScheduler(),
		now:         opts.Now,
		logger:      opts.Logger,
	}
	log := opts.Logger.WithField("component", "simulation")
	// маршруты строятся только между точками внутри области
	for _, h := range opts.Hospitals {
		if !e.bounds.Contains(h.Position) {
			log.WithField("hospital_id", h.ID).Warn("Hospital is outside the simulation area, skipping")
			continue
		}
		e.hospitals = append(e.hospitals, h)
	}
	for _, u := range opts.Fleet {
		if u.Home == (models.Point{}) {
			u.Home = u.Position
		}
		if !e.bounds.Contains(u.Position) || !e.bounds.Contains(u.Home) {
			log.WithField("unit_id", u.ID).Warn("Unit is outside the simulation area, skipping")
			continue
		}
		e.fleet = append(e.fleet, u)
		e.index[u.ID] = u
	}
	return e
}

// Generator возвращает генератор вызовов для настройки параметров
func (e *Engine) Generator() *Generator {
	return e.generator
}

// Dispatch назначает ближайшую свободную машину на вызов в точке p и планирует маршрут
func (e *Engine) Dispatch(p models.Point, kind, severity string) (*models.DispatchRecord, *models.Emergency, error) {
	if !p.Valid() || !e.bounds.Contains(p) {
		return nil, nil, fmt.Errorf("%w: %.5f,%.5f", ErrOutOfBounds, p.Lat, p.Lng)
	}

	rec, err := e.assigner.Dispatch(p, e.fleet, e.hospitals)
	if err != nil {
		return nil, nil, err
	}
	rec.EmergencyID = uuid.New()

	hospital := rec.Hospital
	emergency := &models.Emergency{
		ID:        rec.EmergencyID,
		Type:      kind,
		Severity:  severity,
		Position:  p,
		Hospital:  &hospital,
		UnitID:    rec.Unit.ID,
		CreatedAt: rec.DispatchedAt,
	}
	e.emergencies[emergency.ID] = emergency
	e.routes[rec.Unit.ID] = &activeRoute{
		dispatchID:  rec.ID,
		emergencyID: emergency.ID,
		hospitalID:  hospital.ID,
	}
	e.metrics.RecordDispatch(rec.EtaMinutes)
	e.scheduleRoute(rec)

	e.emit(Event{
		Type:        EventDispatched,
		DispatchID:  rec.ID,
		EmergencyID: emergency.ID,
		UnitID:      rec.Unit.ID,
		HospitalID:  hospital.ID,
		Position:    p,
		EtaMinutes:  rec.EtaMinutes,
		DistanceKm:  rec.DistanceKm,
	})

	e.logger.WithFields(logrus.Fields{
		"component":   "simulation",
		"unit_id":     rec.Unit.ID,
		"hospital_id": hospital.ID,
		"eta_minutes": rec.EtaMinutes,
	}).Info("Unit dispatched")

	unit := rec.Unit.Clone()
	out := *rec
	out.Unit = unit
	em := *emergency
	return &out, &em, nil
}

// SimulateEmergency генерирует вызов рядом с горячими точками и сразу назначает машину
func (e *Engine) SimulateEmergency() (*models.DispatchRecord, *models.Emergency, error) {
	p := e.generator.Generate(e.hotspots, e.bounds)
	kind, severity := e.generator.Describe()
	return e.Dispatch(p, kind, severity)
}

func (e *Engine) scheduleRoute(rec *models.DispatchRecord) {
	unitID := rec.Unit.ID
	dispatchID := rec.ID
	for _, step := range PlanRoute(rec.UnitOrigin, rec.EmergencyPosition, rec.Hospital.Position, e.movement) {
		step := step
		e.scheduler.Schedule(step.Offset, unitID, func() {
			e.applyStep(unitID, dispatchID, step)
		})
	}
}

// applyStep применяет шаг маршрута. Шаги для несуществующей машины
// или устаревшего маршрута игнорируются.
func (e *Engine) applyStep(unitID string, dispatchID uuid.UUID, step Step) {
	unit, ok := e.index[unitID]
	if !ok {
		return
	}
	route, ok := e.routes[unitID]
	if !ok || route.dispatchID != dispatchID {
		return
	}

	if unit.Status != step.Status {
		if err := unit.TransitionTo(step.Status, step.Leg); err != nil {
			e.logger.WithError(err).WithField("unit_id", unitID).Warn("Skipping route step")
			return
		}
	}
	unit.Leg = step.Leg
	unit.Position = step.Position
	unit.UpdatedAt = e.now()

	if step.Kind != StepRelease {
		return
	}

	unit.Release()
	delete(e.routes, unitID)
	delete(e.emergencies, route.emergencyID)
	e.metrics.RecordCompletion()
	e.emit(Event{
		Type:        EventCompleted,
		DispatchID:  route.dispatchID,
		EmergencyID: route.emergencyID,
		UnitID:      unitID,
		HospitalID:  route.hospitalID,
		Position:    unit.Position,
	})
	e.logger.WithFields(logrus.Fields{
		"component": "simulation",
		"unit_id":   unitID,
	}).Info("Unit returned to idle")
}

// Advance сдвигает виртуальное время и применяет наступившие шаги
func (e *Engine) Advance(d time.Duration) int {
	return e.scheduler.Advance(d)
}

// Stop отбрасывает все ожидающие шаги маршрутов. Машины в пути
// освобождаются на месте, их вызовы закрываются как отмененные.
func (e *Engine) Stop() int {
	dropped := e.scheduler.Clear()
	for _, u := range e.fleet {
		if _, ok := e.routes[u.ID]; ok {
			e.cancelRoute(u)
		}
	}
	return dropped
}

// Pending возвращает число ожидающих шагов
func (e *Engine) Pending() int {
	return e.scheduler.Pending()
}

// ResetUnit прерывает маршрут машины и возвращает ее в Idle на текущей позиции
func (e *Engine) ResetUnit(unitID string) error {
	unit, ok := e.index[unitID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnitNotFound, unitID)
	}
	e.scheduler.CancelUnit(unitID)
	e.cancelRoute(unit)
	return nil
}

// Reset возвращает все машины на станции в Idle и очищает активные вызовы
func (e *Engine) Reset() {
	e.scheduler.Clear()
	for _, u := range e.fleet {
		e.cancelRoute(u)
		u.Position = u.Home
	}
	e.emergencies = make(map[uuid.UUID]*models.Emergency)
}

func (e *Engine) cancelRoute(unit *models.Unit) {
	route, ok := e.routes[unit.ID]
	unit.Release()
	unit.UpdatedAt = e.now()
	if !ok {
		return
	}
	delete(e.routes, unit.ID)
	delete(e.emergencies, route.emergencyID)
	e.metrics.RecordCancellation()
	e.emit(Event{
		Type:        EventCancelled,
		DispatchID:  route.dispatchID,
		EmergencyID: route.emergencyID,
		UnitID:      unit.ID,
		HospitalID:  route.hospitalID,
		Position:    unit.Position,
	})
}

// removeUnit выводит машину из парка; ее ожидающие шаги становятся no-op
func (e *Engine) removeUnit(unitID string) error {
	unit, ok := e.index[unitID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnitNotFound, unitID)
	}
	e.cancelRoute(unit)
	delete(e.index, unitID)
	for i, u := range e.fleet {
		if u.ID == unitID {
			e.fleet = append(e.fleet[:i], e.fleet[i+1:]...)
			break
		}
	}
	return nil
}

// SetHotspots заменяет текущие горячие точки (цикл обновления)
func (e *Engine) SetHotspots(hotspots []models.Hotspot) {
	e.hotspots = append([]models.Hotspot(nil), hotspots...)
}

// Fleet возвращает копии машин в порядке парка
func (e *Engine) Fleet() []*models.Unit {
	out := make([]*models.Unit, 0, len(e.fleet))
	for _, u := range e.fleet {
		out = append(out, u.Clone())
	}
	return out
}

// Unit возвращает копию машины по идентификатору
func (e *Engine) Unit(unitID string) (*models.Unit, error) {
	u, ok := e.index[unitID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnitNotFound, unitID)
	}
	return u.Clone(), nil
}

func (e *Engine) Hospitals() []models.Hospital {
	return append([]models.Hospital(nil), e.hospitals...)
}

func (e *Engine) Hotspots() []models.Hotspot {
	return append([]models.Hotspot(nil), e.hotspots...)
}

// Emergencies возвращает активные вызовы по времени создания
func (e *Engine) Emergencies() []models.Emergency {
	out := make([]models.Emergency, 0, len(e.emergencies))
	for _, em := range e.emergencies {
		out = append(out, *em)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].UnitID < out[j].UnitID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

func (e *Engine) Metrics() models.Metrics {
	return e.metrics.Snapshot()
}

func (e *Engine) Bounds() geo.BoundingBox {
	return e.bounds
}

// DrainEvents возвращает накопленные события и очищает буфер
func (e *Engine) DrainEvents() []Event {
	events := e.events
	e.events = nil
	return events
}

func (e *Engine) emit(ev Event) {
	ev.OccurredAt = e.now()
	e.events = append(e.events, ev)
}
