package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/emergency_dispatch_system/internal/config"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
	"github.com/shenikar/emergency_dispatch_system/internal/service"
	"github.com/sirupsen/logrus"
)

const (
	defaultEmergencyType     = "Medical Emergency"
	defaultEmergencySeverity = "high"
)

type Handler struct {
	dispatchService service.DispatchService
	cityService     service.CityService
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
}

func NewHandler(dispatchService service.DispatchService, cityService service.CityService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		dispatchService: dispatchService,
		cityService:     cityService,
		logger:          logger,
		validate:        validator.New(),
		cfg:             cfg,
	}
}

// @Summary Dispatch an ambulance
// @Description Assign the nearest idle ambulance to an emergency at the given location. Requires API key.
// @Tags Dispatch
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param dispatch body DispatchRequest true "Emergency location"
// @Success 201 {object} DispatchResponse
// @Failure 400 {object} ErrorResponse "Invalid request body, validation error or location out of area"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} ErrorResponse "No available units"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /dispatch [post]
func (h *Handler) dispatch(c *gin.Context) {
	var input DispatchRequest
	log := h.logger.WithField("method", "dispatch")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	kind, severity := input.Type, input.Severity
	if kind == "" {
		kind = defaultEmergencyType
	}
	if severity == "" {
		severity = defaultEmergencySeverity
	}

	p := models.Point{Lat: input.Latitude, Lng: input.Longitude}
	rec, emergency, err := h.dispatchService.Dispatch(c.Request.Context(), p, kind, severity)
	if err != nil {
		writeError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, RecordToDispatchResponse(rec, emergency))
}

// @Summary Simulate a random emergency
// @Description Generate an emergency near the hotspots and dispatch a unit to it. Requires API key.
// @Tags Dispatch
// @Produce json
// @Security ApiKeyAuth
// @Success 201 {object} DispatchResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} ErrorResponse "No available units"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /emergencies/simulate [post]
func (h *Handler) simulateEmergency(c *gin.Context) {
	log := h.logger.WithField("method", "simulateEmergency")

	rec, emergency, err := h.dispatchService.SimulateEmergency(c.Request.Context())
	if err != nil {
		writeError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, RecordToDispatchResponse(rec, emergency))
}

// @Summary Get the fleet
// @Description Get all ambulances with their status and position
// @Tags Fleet
// @Produce json
// @Success 200 {array} UnitResponse
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /fleet [get]
func (h *Handler) getFleet(c *gin.Context) {
	fleet, err := h.dispatchService.Fleet(c.Request.Context())
	if err != nil {
		writeError(c, h.logger.WithField("method", "getFleet"), err)
		return
	}
	c.JSON(http.StatusOK, ModelsToUnitResponses(fleet))
}

// @Summary Reset a unit
// @Description Abort the unit's route and return it to Idle. Requires API key.
// @Tags Fleet
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Unit ID"
// @Success 200 {object} UnitResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} ErrorResponse "Unit not found"
// @Router /units/{id}/reset [post]
func (h *Handler) resetUnit(c *gin.Context) {
	unitID := c.Param("id")
	log := h.logger.WithField("method", "resetUnit").WithField("unit_id", unitID)

	unit, err := h.dispatchService.ResetUnit(c.Request.Context(), unitID)
	if err != nil {
		writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToUnitResponse(unit))
}

// @Summary Get hospitals
// @Description Get the hospital registry
// @Tags Fleet
// @Produce json
// @Success 200 {array} models.Hospital
// @Router /hospitals [get]
func (h *Handler) getHospitals(c *gin.Context) {
	hospitals, err := h.dispatchService.Hospitals(c.Request.Context())
	if err != nil {
		writeError(c, h.logger.WithField("method", "getHospitals"), err)
		return
	}
	c.JSON(http.StatusOK, hospitals)
}

// @Summary Get current hotspots
// @Description Get the hotspots used by the emergency generator
// @Tags Hotspots
// @Produce json
// @Param category query string false "Risk category filter" Enums(high, moderate)
// @Success 200 {array} models.Hotspot
// @Failure 400 {object} ErrorResponse "Unknown category"
// @Router /hotspots [get]
func (h *Handler) getHotspots(c *gin.Context) {
	category := models.RiskCategory(c.Query("category"))
	if category != "" && category != models.RiskHigh && category != models.RiskModerate {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category must be high or moderate"})
		return
	}

	hotspots, err := h.dispatchService.Hotspots(c.Request.Context(), category)
	if err != nil {
		writeError(c, h.logger.WithField("method", "getHotspots"), err)
		return
	}
	c.JSON(http.StatusOK, hotspots)
}

// @Summary Get active emergencies
// @Tags Dispatch
// @Produce json
// @Success 200 {array} models.Emergency
// @Router /emergencies [get]
func (h *Handler) getEmergencies(c *gin.Context) {
	emergencies, err := h.dispatchService.Emergencies(c.Request.Context())
	if err != nil {
		writeError(c, h.logger.WithField("method", "getEmergencies"), err)
		return
	}
	c.JSON(http.StatusOK, emergencies)
}

// @Summary Get simulation metrics
// @Tags Simulation
// @Produce json
// @Success 200 {object} models.Metrics
// @Router /metrics [get]
func (h *Handler) getMetrics(c *gin.Context) {
	metrics, err := h.dispatchService.Metrics(c.Request.Context())
	if err != nil {
		writeError(c, h.logger.WithField("method", "getMetrics"), err)
		return
	}
	c.JSON(http.StatusOK, metrics)
}

// @Summary Start the simulation
// @Description Resume automatic emergency generation. Requires API key.
// @Tags Simulation
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} SimulationStatusResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /simulation/start [post]
func (h *Handler) startSimulation(c *gin.Context) {
	if err := h.dispatchService.StartSimulation(c.Request.Context()); err != nil {
		writeError(c, h.logger.WithField("method", "startSimulation"), err)
		return
	}
	c.JSON(http.StatusOK, SimulationStatusResponse{Status: "running"})
}

// @Summary Stop the simulation
// @Description Discard all pending movement steps, release in-flight units where they stand and pause emergency generation. Requires API key.
// @Tags Simulation
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} SimulationStatusResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /simulation/stop [post]
func (h *Handler) stopSimulation(c *gin.Context) {
	dropped, err := h.dispatchService.StopSimulation(c.Request.Context())
	if err != nil {
		writeError(c, h.logger.WithField("method", "stopSimulation"), err)
		return
	}
	c.JSON(http.StatusOK, SimulationStatusResponse{Status: "stopped", DroppedSteps: dropped})
}

// @Summary Reset the simulation
// @Description Return every unit to its station in Idle and clear active emergencies. Requires API key.
// @Tags Simulation
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} SimulationStatusResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /simulation/reset [post]
func (h *Handler) resetSimulation(c *gin.Context) {
	if err := h.dispatchService.ResetSimulation(c.Request.Context()); err != nil {
		writeError(c, h.logger.WithField("method", "resetSimulation"), err)
		return
	}
	c.JSON(http.StatusOK, SimulationStatusResponse{Status: "reset"})
}

// @Summary Get dispatch history
// @Description Get a paginated list of recorded dispatches
// @Tags Dispatch
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(20)
// @Success 200 {array} models.Dispatch
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /dispatches [get]
func (h *Handler) listDispatches(c *gin.Context) {
	log := h.logger.WithField("method", "listDispatches")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	dispatches, err := h.dispatchService.ListDispatches(c.Request.Context(), page, pageSize)
	if err != nil {
		writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, dispatches)
}

// @Summary Get dispatch by ID
// @Tags Dispatch
// @Produce json
// @Param id path string true "Dispatch ID"
// @Success 200 {object} models.Dispatch
// @Failure 400 {object} map[string]string "Invalid dispatch ID"
// @Failure 404 {object} ErrorResponse "Dispatch not found"
// @Router /dispatches/{id} [get]
func (h *Handler) getDispatch(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid dispatch ID"})
		return
	}
	log := h.logger.WithField("method", "getDispatch").WithField("id", id)

	d, err := h.dispatchService.GetDispatch(c.Request.Context(), id)
	if err != nil {
		writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]any "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	snapshot, err := h.dispatchService.Snapshot(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}

	idle := 0
	for _, u := range snapshot.Fleet {
		if u.IsIdle() {
			idle++
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"status":             "ok",
		"simulation_running": snapshot.Running,
		"units_total":        len(snapshot.Fleet),
		"units_idle":         idle,
	})
}
