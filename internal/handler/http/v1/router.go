package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Чтение состояния симуляции
	api.GET("/fleet", h.getFleet)
	api.GET("/hospitals", h.getHospitals)
	api.GET("/hotspots", h.getHotspots)
	api.GET("/hotspots/predictions", h.getPredictions)
	api.GET("/emergencies", h.getEmergencies)
	api.GET("/metrics", h.getMetrics)
	api.GET("/map.kml", h.exportKML)

	// История выездов
	dispatches := api.Group("/dispatches")
	{
		dispatches.GET("", h.listDispatches)
		dispatches.GET("/:id", h.getDispatch)
	}

	// Городские данные
	api.GET("/weather", h.getWeather)
	api.GET("/traffic", h.getTraffic)
	api.POST("/route", h.calculateRoute)
	api.GET("/events", h.getEvents)

	// Управление симуляцией, только по API-ключу
	protected := api.Group("")
	protected.Use(APIKeyAuthMiddleware(h.cfg, h.logger))
	{
		protected.POST("/dispatch", h.dispatch)
		protected.POST("/emergencies/simulate", h.simulateEmergency)
		protected.POST("/units/:id/reset", h.resetUnit)
		protected.POST("/simulation/start", h.startSimulation)
		protected.POST("/simulation/stop", h.stopSimulation)
		protected.POST("/simulation/reset", h.resetSimulation)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
