package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/emergency_dispatch_system/internal/hotspot"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
	"github.com/shenikar/emergency_dispatch_system/internal/simulation"
	"github.com/sirupsen/logrus"
)

// DispatchRepository определяет контракт для работы с историей выездов в бд
type DispatchRepository interface {
	Create(ctx context.Context, dispatch *models.Dispatch) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.DispatchStatus, completedAt time.Time) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Dispatch, error)
	List(ctx context.Context, page, pageSize int) ([]*models.Dispatch, error)
}

// Simulation - доступ к движку через цикл-владелец (simulation.Runner)
type Simulation interface {
	Do(ctx context.Context, fn func(*simulation.Engine) error) error
	Start(ctx context.Context) error
	Stop(ctx context.Context) (int, error)
	Inspect(ctx context.Context, fn func(e *simulation.Engine, running bool) error) error
}

// DispatchService определяет контракт бизнес-логики диспетчеризации
type DispatchService interface {
	Dispatch(ctx context.Context, p models.Point, kind, severity string) (*models.DispatchRecord, *models.Emergency, error)
	SimulateEmergency(ctx context.Context) (*models.DispatchRecord, *models.Emergency, error)
	Fleet(ctx context.Context) ([]*models.Unit, error)
	Hospitals(ctx context.Context) ([]models.Hospital, error)
	Hotspots(ctx context.Context, category models.RiskCategory) ([]models.Hotspot, error)
	Emergencies(ctx context.Context) ([]models.Emergency, error)
	Metrics(ctx context.Context) (models.Metrics, error)
	Snapshot(ctx context.Context) (*models.Snapshot, error)
	StartSimulation(ctx context.Context) error
	StopSimulation(ctx context.Context) (int, error)
	ResetSimulation(ctx context.Context) error
	ResetUnit(ctx context.Context, unitID string) (*models.Unit, error)
	GetDispatch(ctx context.Context, id uuid.UUID) (*models.Dispatch, error)
	ListDispatches(ctx context.Context, page, pageSize int) ([]*models.Dispatch, error)
}

type dispatchService struct {
	sim    Simulation
	repo   DispatchRepository
	logger *logrus.Logger
	now    func() time.Time
}

func NewDispatchService(sim Simulation, repo DispatchRepository, logger *logrus.Logger) DispatchService {
	return &dispatchService{
		sim:    sim,
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// Dispatch назначает машину на вызов в указанной точке
func (s *dispatchService) Dispatch(ctx context.Context, p models.Point, kind, severity string) (*models.DispatchRecord, *models.Emergency, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "dispatch",
		"method":  "Dispatch",
		"lat":     p.Lat,
		"lng":     p.Lng,
	})
	log.Info("Attempting to dispatch a unit")

	var (
		rec       *models.DispatchRecord
		emergency *models.Emergency
	)
	err := s.sim.Do(ctx, func(e *simulation.Engine) error {
		var err error
		rec, emergency, err = e.Dispatch(p, kind, severity)
		return err
	})
	if err != nil {
		log.WithError(err).Warn("Dispatch was not completed")
		return nil, nil, fmt.Errorf("service: could not dispatch unit: %w", err)
	}

	log.WithFields(logrus.Fields{
		"dispatch_id": rec.ID,
		"unit_id":     rec.Unit.ID,
		"eta_minutes": rec.EtaMinutes,
	}).Info("Unit dispatched successfully")
	return rec, emergency, nil
}

// SimulateEmergency генерирует случайный вызов и назначает на него машину
func (s *dispatchService) SimulateEmergency(ctx context.Context) (*models.DispatchRecord, *models.Emergency, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "dispatch",
		"method":  "SimulateEmergency",
	})

	var (
		rec       *models.DispatchRecord
		emergency *models.Emergency
	)
	err := s.sim.Do(ctx, func(e *simulation.Engine) error {
		var err error
		rec, emergency, err = e.SimulateEmergency()
		return err
	})
	if err != nil {
		log.WithError(err).Warn("Simulated emergency was not dispatched")
		return nil, nil, fmt.Errorf("service: could not simulate emergency: %w", err)
	}

	log.WithField("emergency_id", emergency.ID).Info("Simulated emergency dispatched")
	return rec, emergency, nil
}

func (s *dispatchService) Fleet(ctx context.Context) ([]*models.Unit, error) {
	var fleet []*models.Unit
	err := s.sim.Do(ctx, func(e *simulation.Engine) error {
		fleet = e.Fleet()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("service: could not read fleet: %w", err)
	}
	return fleet, nil
}

func (s *dispatchService) Hospitals(ctx context.Context) ([]models.Hospital, error) {
	var hospitals []models.Hospital
	err := s.sim.Do(ctx, func(e *simulation.Engine) error {
		hospitals = e.Hospitals()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("service: could not read hospitals: %w", err)
	}
	return hospitals, nil
}

// Hotspots возвращает текущие горячие точки; пустая категория - все
func (s *dispatchService) Hotspots(ctx context.Context, category models.RiskCategory) ([]models.Hotspot, error) {
	var hotspots []models.Hotspot
	err := s.sim.Do(ctx, func(e *simulation.Engine) error {
		hotspots = e.Hotspots()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("service: could not read hotspots: %w", err)
	}
	return hotspot.FilterByCategory(hotspots, category), nil
}

func (s *dispatchService) Emergencies(ctx context.Context) ([]models.Emergency, error) {
	var emergencies []models.Emergency
	err := s.sim.Do(ctx, func(e *simulation.Engine) error {
		emergencies = e.Emergencies()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("service: could not read emergencies: %w", err)
	}
	return emergencies, nil
}

func (s *dispatchService) Metrics(ctx context.Context) (models.Metrics, error) {
	var metrics models.Metrics
	err := s.sim.Do(ctx, func(e *simulation.Engine) error {
		metrics = e.Metrics()
		return nil
	})
	if err != nil {
		return models.Metrics{}, fmt.Errorf("service: could not read metrics: %w", err)
	}
	return metrics, nil
}

// Snapshot читает все состояние за одну команду цикла
func (s *dispatchService) Snapshot(ctx context.Context) (*models.Snapshot, error) {
	snapshot := &models.Snapshot{TakenAt: s.now()}
	err := s.sim.Inspect(ctx, func(e *simulation.Engine, running bool) error {
		snapshot.Running = running
		snapshot.Fleet = e.Fleet()
		snapshot.Hospitals = e.Hospitals()
		snapshot.Hotspots = e.Hotspots()
		snapshot.Emergencies = e.Emergencies()
		snapshot.Metrics = e.Metrics()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("service: could not take snapshot: %w", err)
	}
	return snapshot, nil
}

func (s *dispatchService) StartSimulation(ctx context.Context) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "dispatch",
		"method":  "StartSimulation",
	})
	if err := s.sim.Start(ctx); err != nil {
		log.WithError(err).Error("Failed to start simulation")
		return fmt.Errorf("service: could not start simulation: %w", err)
	}
	log.Info("Simulation started")
	return nil
}

// StopSimulation отбрасывает все ожидающие шаги и останавливает генерацию вызовов
func (s *dispatchService) StopSimulation(ctx context.Context) (int, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "dispatch",
		"method":  "StopSimulation",
	})
	dropped, err := s.sim.Stop(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to stop simulation")
		return 0, fmt.Errorf("service: could not stop simulation: %w", err)
	}
	log.WithField("dropped_steps", dropped).Info("Simulation stopped")
	return dropped, nil
}

func (s *dispatchService) ResetSimulation(ctx context.Context) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "dispatch",
		"method":  "ResetSimulation",
	})
	err := s.sim.Do(ctx, func(e *simulation.Engine) error {
		e.Reset()
		return nil
	})
	if err != nil {
		log.WithError(err).Error("Failed to reset simulation")
		return fmt.Errorf("service: could not reset simulation: %w", err)
	}
	log.Info("Simulation reset, all units returned to stations")
	return nil
}

// ResetUnit прерывает маршрут машины
func (s *dispatchService) ResetUnit(ctx context.Context, unitID string) (*models.Unit, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "dispatch",
		"method":  "ResetUnit",
		"unit_id": unitID,
	})

	var unit *models.Unit
	err := s.sim.Do(ctx, func(e *simulation.Engine) error {
		if err := e.ResetUnit(unitID); err != nil {
			return err
		}
		var err error
		unit, err = e.Unit(unitID)
		return err
	})
	if err != nil {
		log.WithError(err).Warn("Failed to reset unit")
		return nil, fmt.Errorf("service: could not reset unit: %w", err)
	}
	log.Info("Unit reset to idle")
	return unit, nil
}

// GetDispatch возвращает запись истории выездов по ID
func (s *dispatchService) GetDispatch(ctx context.Context, id uuid.UUID) (*models.Dispatch, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "dispatch",
		"method":      "GetDispatch",
		"dispatch_id": id,
	})
	log.Info("Fetching dispatch by ID")

	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get dispatch from repository")
		return nil, fmt.Errorf("service: could not get dispatch: %w", err)
	}
	return d, nil
}

// ListDispatches возвращает историю выездов с пагинацией
func (s *dispatchService) ListDispatches(ctx context.Context, page, pageSize int) ([]*models.Dispatch, error) {
	if page < 1 {
		page = 1
	}

	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":   "dispatch",
		"method":    "ListDispatches",
		"page":      page,
		"page_size": pageSize,
	})
	log.Info("Listing dispatches")

	dispatches, err := s.repo.List(ctx, page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list dispatches from repository")
		return nil, fmt.Errorf("service: could not list dispatches: %w", err)
	}

	log.WithField("count", len(dispatches)).Info("Dispatches listed successfully")
	return dispatches, nil
}
