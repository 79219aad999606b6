package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/emergency_dispatch_system/internal/clients"
	"github.com/shenikar/emergency_dispatch_system/internal/dispatch"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
	"github.com/shenikar/emergency_dispatch_system/internal/service"
	"github.com/shenikar/emergency_dispatch_system/internal/simulation"
	"github.com/sirupsen/logrus"
)

const apiConfigErrorCode = "API_CONFIG_ERROR"

// writeError переводит ошибку сервиса в HTTP-ответ
func writeError(c *gin.Context, log *logrus.Entry, err error) {
	var upstream *clients.UpstreamError

	switch {
	case errors.Is(err, dispatch.ErrNoAvailableUnit):
		log.WithError(err).Warn("No available units")
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "no available units",
			Message: "All ambulances are currently assigned or en-route",
		})
	case errors.Is(err, simulation.ErrOutOfBounds):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "location is outside the simulation area"})
	case errors.Is(err, simulation.ErrUnitNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "unit not found"})
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "dispatch not found"})
	case errors.Is(err, service.ErrInvalidQuery):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, clients.ErrGeocodeFailure):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unable to geocode address"})
	case errors.Is(err, clients.ErrNoRoute):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "no route found between specified points"})
	case errors.Is(err, clients.ErrMissingCredential):
		log.WithError(err).Error("External API is not configured")
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "external API is not configured",
			Code:  apiConfigErrorCode,
		})
	case errors.As(err, &upstream):
		log.WithError(err).Warn("Upstream API request failed")
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: upstream.Message})
	case errors.Is(err, simulation.ErrRunnerStopped):
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "simulation is shutting down"})
	default:
		log.WithError(err).Error("Request failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}
