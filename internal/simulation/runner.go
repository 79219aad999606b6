package simulation

import (
	"context"
	"errors"
	"time"

	"github.com/shenikar/emergency_dispatch_system/internal/models"
	"github.com/sirupsen/logrus"
)

var ErrRunnerStopped = errors.New("simulation runner is not running")

// HotspotSource - источник обновлений горячих точек
type HotspotSource interface {
	Hotspots(ctx context.Context) ([]models.Hotspot, error)
}

// EventHandler обрабатывает события движка вне цикла симуляции
type EventHandler interface {
	HandleEvent(ctx context.Context, event Event)
}

// RunnerConfig - интервалы цикла симуляции
type RunnerConfig struct {
	TickInterval     time.Duration
	GenerateInterval time.Duration
	RefreshInterval  time.Duration
	AutoGenerate     bool
	EventBuffer      int
}

func (c RunnerConfig) withDefaults() RunnerConfig {
	if c.TickInterval <= 0 {
		c.TickInterval = 200 * time.Millisecond
	}
	if c.GenerateInterval <= 0 {
		c.GenerateInterval = 10 * time.Second
	}
	if c.RefreshInterval <= 0 {
		c.RefreshInterval = 30 * time.Second
	}
	if c.EventBuffer <= 0 {
		c.EventBuffer = 256
	}
	return c
}

type command struct {
	fn   func(*Engine) error
	done chan error
}

// Runner - единственная горутина-владелец движка. Все обращения к Engine
// проходят через канал команд и выполняются в цикле Run.
type Runner struct {
	engine  *Engine
	cfg     RunnerConfig
	source  HotspotSource
	handler EventHandler
	logger  *logrus.Logger

	cmds       chan command
	events     chan Event
	generating bool
	done       chan struct{}
}

func NewRunner(engine *Engine, cfg RunnerConfig, source HotspotSource, handler EventHandler, logger *logrus.Logger) *Runner {
	cfg = cfg.withDefaults()
	return &Runner{
		engine:     engine,
		cfg:        cfg,
		source:     source,
		handler:    handler,
		logger:     logger,
		cmds:       make(chan command),
		events:     make(chan Event, cfg.EventBuffer),
		generating: cfg.AutoGenerate,
		done:       make(chan struct{}),
	}
}

// Do выполняет fn в цикле симуляции и ждет результата
func (r *Runner) Do(ctx context.Context, fn func(*Engine) error) error {
	cmd := command{fn: fn, done: make(chan error, 1)}
	select {
	case r.cmds <- cmd:
	case <-r.done:
		return ErrRunnerStopped
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case err := <-cmd.done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Start возобновляет автоматическую генерацию вызовов
func (r *Runner) Start(ctx context.Context) error {
	return r.Do(ctx, func(*Engine) error {
		r.generating = true
		return nil
	})
}

// Stop отбрасывает все ожидающие шаги и приостанавливает генерацию
func (r *Runner) Stop(ctx context.Context) (int, error) {
	var dropped int
	err := r.Do(ctx, func(e *Engine) error {
		r.generating = false
		dropped = e.Stop()
		return nil
	})
	return dropped, err
}

// Inspect выполняет fn в цикле вместе с флагом генерации, одной командой
func (r *Runner) Inspect(ctx context.Context, fn func(e *Engine, running bool) error) error {
	return r.Do(ctx, func(e *Engine) error {
		return fn(e, r.generating)
	})
}

// Running сообщает, включена ли автоматическая генерация
func (r *Runner) Running(ctx context.Context) (bool, error) {
	var running bool
	err := r.Inspect(ctx, func(_ *Engine, generating bool) error {
		running = generating
		return nil
	})
	return running, err
}

// Run крутит цикл симуляции до отмены ctx
func (r *Runner) Run(ctx context.Context) {
	log := r.logger.WithField("component", "simulation_runner")
	log.Info("Starting simulation loop...")

	go r.dispatchEvents(ctx)

	tick := time.NewTicker(r.cfg.TickInterval)
	defer tick.Stop()
	generate := time.NewTicker(r.cfg.GenerateInterval)
	defer generate.Stop()
	refresh := time.NewTicker(r.cfg.RefreshInterval)
	defer refresh.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			close(r.done)
			log.Info("Stopping simulation loop.")
			return
		case cmd := <-r.cmds:
			cmd.done <- cmd.fn(r.engine)
		case now := <-tick.C:
			r.engine.Advance(now.Sub(last))
			last = now
		case <-generate.C:
			if !r.generating {
				continue
			}
			if _, _, err := r.engine.SimulateEmergency(); err != nil {
				log.WithError(err).Debug("Simulated emergency was not dispatched")
			}
		case <-refresh.C:
			if r.source != nil {
				go r.refreshHotspots(ctx)
			}
		}
		r.flushEvents()
	}
}

// refreshHotspots получает данные вне цикла и применяет их командой
func (r *Runner) refreshHotspots(ctx context.Context) {
	hotspots, err := r.source.Hotspots(ctx)
	if err != nil {
		r.logger.WithError(err).Warn("Failed to refresh hotspots, keeping previous set")
		return
	}
	if len(hotspots) == 0 {
		return
	}
	err = r.Do(ctx, func(e *Engine) error {
		e.SetHotspots(hotspots)
		return nil
	})
	if err != nil {
		r.logger.WithError(err).Debug("Refreshed hotspots were not applied")
	}
}

func (r *Runner) flushEvents() {
	for _, ev := range r.engine.DrainEvents() {
		select {
		case r.events <- ev:
		default:
			r.logger.WithFields(logrus.Fields{
				"component":   "simulation_runner",
				"event_type":  ev.Type,
				"dispatch_id": ev.DispatchID,
			}).Warn("Event buffer is full, dropping event")
		}
	}
}

func (r *Runner) dispatchEvents(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-r.events:
			if r.handler != nil {
				r.handler.HandleEvent(ctx, ev)
			}
		}
	}
}
