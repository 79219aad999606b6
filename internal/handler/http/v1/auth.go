package v1

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/emergency_dispatch_system/internal/config"
	"github.com/sirupsen/logrus"
)

// APIKeyAuthMiddleware защищает управляющие маршруты симуляции.
// Ключ берется из X-API-Key или Authorization: Bearer.
func APIKeyAuthMiddleware(cfg *config.Config, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		entry := log.WithFields(logrus.Fields{
			"middleware": "api_key",
			"path":       c.FullPath(),
		})

		apiKey := requestAPIKey(c)
		if apiKey == "" {
			entry.Warn("API key missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "API key required"})
			return
		}

		if !validAPIKey(cfg.APIKeys, apiKey) {
			entry.Warn("Invalid API key provided")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid API key"})
			return
		}

		c.Next()
	}
}

func requestAPIKey(c *gin.Context) string {
	if key := c.GetHeader("X-API-Key"); key != "" {
		return key
	}
	if auth := c.GetHeader("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	}
	return ""
}

func validAPIKey(keys []string, candidate string) bool {
	for _, key := range keys {
		if key != "" && subtle.ConstantTimeCompare([]byte(key), []byte(candidate)) == 1 {
			return true
		}
	}
	return false
}
