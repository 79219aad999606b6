package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/emergency_dispatch_system/internal/hotspot"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
	"github.com/shenikar/emergency_dispatch_system/internal/service"
)

// @Summary Get current weather
// @Description Get weather by city name or by coordinates
// @Tags City
// @Produce json
// @Param city query string false "City name"
// @Param lat query number false "Latitude"
// @Param lng query number false "Longitude"
// @Success 200 {object} models.Weather
// @Failure 400 {object} ErrorResponse "Missing city or coordinates"
// @Failure 500 {object} ErrorResponse "API_CONFIG_ERROR"
// @Failure 502 {object} ErrorResponse "Upstream error"
// @Router /weather [get]
func (h *Handler) getWeather(c *gin.Context) {
	log := h.logger.WithField("method", "getWeather")

	q := service.WeatherQuery{City: c.Query("city")}
	if q.City == "" {
		lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
		lng, lngErr := strconv.ParseFloat(c.Query("lng"), 64)
		if latErr != nil || lngErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "city or lat/lng parameters are required"})
			return
		}
		q.Position = &models.Point{Lat: lat, Lng: lng}
	}

	weather, err := h.cityService.Weather(c.Request.Context(), q)
	if err != nil {
		writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, weather)
}

// @Summary Get live traffic around hotspots
// @Description Traffic level per hotspot; hotspots without live data get a fallback record
// @Tags City
// @Produce json
// @Success 200 {array} models.Hotspot
// @Router /traffic [get]
func (h *Handler) getTraffic(c *gin.Context) {
	traffic, err := h.cityService.Traffic(c.Request.Context())
	if err != nil {
		writeError(c, h.logger.WithField("method", "getTraffic"), err)
		return
	}
	c.JSON(http.StatusOK, traffic)
}

// @Summary Calculate a route
// @Description Driving route between two points given as coordinates or addresses
// @Tags City
// @Accept json
// @Produce json
// @Param route body RouteRequest true "Route request"
// @Success 200 {object} models.Route
// @Failure 400 {object} ErrorResponse "Missing coordinates or geocoding failure"
// @Failure 404 {object} ErrorResponse "No route found"
// @Failure 500 {object} ErrorResponse "API_CONFIG_ERROR"
// @Router /route [post]
func (h *Handler) calculateRoute(c *gin.Context) {
	var input RouteRequest
	log := h.logger.WithField("method", "calculateRoute")

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

	route, err := h.cityService.Route(c.Request.Context(), service.RouteQuery{
		Origin:      DTOToLocation(input.Origin),
		Destination: DTOToLocation(input.Destination),
	})
	if err != nil {
		writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, route)
}

// @Summary Get city events
// @Description Upcoming events with venue coordinates, sorted by start time
// @Tags City
// @Produce json
// @Param city query string false "City name" default(Chennai)
// @Success 200 {array} models.CityEvent
// @Failure 500 {object} ErrorResponse "API_CONFIG_ERROR"
// @Failure 502 {object} ErrorResponse "Upstream error"
// @Router /events [get]
func (h *Handler) getEvents(c *gin.Context) {
	events, err := h.cityService.Events(c.Request.Context(), c.Query("city"))
	if err != nil {
		writeError(c, h.logger.WithField("method", "getEvents"), err)
		return
	}
	c.JSON(http.StatusOK, events)
}

// @Summary Get hotspot predictions
// @Description Predicted congestion per hotspot for the current time of day
// @Tags Hotspots
// @Produce json
// @Param city query string false "City name" default(Chennai)
// @Param category query string false "Risk category filter" Enums(high, moderate)
// @Success 200 {array} models.Hotspot
// @Router /hotspots/predictions [get]
func (h *Handler) getPredictions(c *gin.Context) {
	predictions, err := h.cityService.Predictions(c.Request.Context(), c.Query("city"))
	if err != nil {
		writeError(c, h.logger.WithField("method", "getPredictions"), err)
		return
	}

	category := models.RiskCategory(c.Query("category"))
	c.JSON(http.StatusOK, hotspot.FilterByCategory(predictions, category))
}
