package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL      string `env:"DATABASE_URL"`
	DatabaseMaxConns int32  `env:"DATABASE_MAX_CONNS" envDefault:"4"`
	HTTPPort         string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel         string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`

	// Внешние API
	OpenWeatherAPIKey string        `env:"OPENWEATHER_API_KEY"`
	MapboxToken       string        `env:"MAPBOX_TOKEN"`
	EventbriteToken   string        `env:"EVENTBRITE_TOKEN"`
	DefaultCity       string        `env:"DEFAULT_CITY" envDefault:"Chennai"`
	ClientTimeout     time.Duration `env:"CLIENT_TIMEOUT" envDefault:"10s"`

	// Cache TTL
	WeatherCacheTTL    time.Duration `env:"WEATHER_CACHE_TTL" envDefault:"10m"`
	TrafficCacheTTL    time.Duration `env:"TRAFFIC_CACHE_TTL" envDefault:"2m"`
	RouteCacheTTL      time.Duration `env:"ROUTE_CACHE_TTL" envDefault:"5m"`
	EventsCacheTTL     time.Duration `env:"EVENTS_CACHE_TTL" envDefault:"30m"`
	PredictionCacheTTL time.Duration `env:"PREDICTION_CACHE_TTL" envDefault:"1m"`

	Simulation SimulationConfig
}

// SimulationConfig - параметры движка симуляции
type SimulationConfig struct {
	Seed              int64         `env:"SIM_SEED"`
	SpeedKmph         float64       `env:"SIM_SPEED_KMPH" envDefault:"25"`
	MinimumEtaMinutes int           `env:"SIM_MIN_ETA_MINUTES" envDefault:"2"`
	StepsPerLeg       int           `env:"SIM_STEPS_PER_LEG" envDefault:"5"`
	StepInterval      time.Duration `env:"SIM_STEP_INTERVAL" envDefault:"1200ms"`
	OnSceneDwell      time.Duration `env:"SIM_ON_SCENE_DWELL" envDefault:"3s"`
	HospitalDwell     time.Duration `env:"SIM_HOSPITAL_DWELL" envDefault:"2s"`
	TickInterval      time.Duration `env:"SIM_TICK_INTERVAL" envDefault:"200ms"`
	GenerateInterval  time.Duration `env:"SIM_GENERATE_INTERVAL" envDefault:"10s"`
	RefreshInterval   time.Duration `env:"HOTSPOT_REFRESH_INTERVAL" envDefault:"30s"`
	AutoGenerate      bool          `env:"SIM_AUTO_GENERATE" envDefault:"true"`
	HotspotBias       float64       `env:"SIM_HOTSPOT_BIAS" envDefault:"0.7"`
	BoundsSouthWest   [2]float64    `env:"SIM_BOUNDS_SW" envDefault:"12.85,80.05"`
	BoundsNorthEast   [2]float64    `env:"SIM_BOUNDS_NE" envDefault:"13.25,80.33"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		DatabaseMaxConns:   int32(getEnvAsInt("DATABASE_MAX_CONNS", 4)),
		HTTPPort:           getEnv("HTTP_PORT", "8080"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		RedisAddr:          getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:          os.Getenv("REDIS_PASSWORD"),
		RedisDB:            getEnvAsInt("REDIS_DB", 0),
		WebhookURL:         os.Getenv("WEBHOOK_URL"),
		WebhookSecret:      os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:     getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:  getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:   getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		OpenWeatherAPIKey:  os.Getenv("OPENWEATHER_API_KEY"),
		MapboxToken:        os.Getenv("MAPBOX_TOKEN"),
		EventbriteToken:    os.Getenv("EVENTBRITE_TOKEN"),
		DefaultCity:        getEnv("DEFAULT_CITY", "Chennai"),
		ClientTimeout:      getEnvAsDuration("CLIENT_TIMEOUT", 10*time.Second),
		WeatherCacheTTL:    getEnvAsDuration("WEATHER_CACHE_TTL", 10*time.Minute),
		TrafficCacheTTL:    getEnvAsDuration("TRAFFIC_CACHE_TTL", 2*time.Minute),
		RouteCacheTTL:      getEnvAsDuration("ROUTE_CACHE_TTL", 5*time.Minute),
		EventsCacheTTL:     getEnvAsDuration("EVENTS_CACHE_TTL", 30*time.Minute),
		PredictionCacheTTL: getEnvAsDuration("PREDICTION_CACHE_TTL", time.Minute),
		Simulation: SimulationConfig{
			Seed:              getEnvAsInt64("SIM_SEED", time.Now().UnixNano()),
			SpeedKmph:         getEnvAsFloat("SIM_SPEED_KMPH", 25),
			MinimumEtaMinutes: getEnvAsInt("SIM_MIN_ETA_MINUTES", 2),
			StepsPerLeg:       getEnvAsInt("SIM_STEPS_PER_LEG", 5),
			StepInterval:      getEnvAsDuration("SIM_STEP_INTERVAL", 1200*time.Millisecond),
			OnSceneDwell:      getEnvAsDuration("SIM_ON_SCENE_DWELL", 3*time.Second),
			HospitalDwell:     getEnvAsDuration("SIM_HOSPITAL_DWELL", 2*time.Second),
			TickInterval:      getEnvAsDuration("SIM_TICK_INTERVAL", 200*time.Millisecond),
			GenerateInterval:  getEnvAsDuration("SIM_GENERATE_INTERVAL", 10*time.Second),
			RefreshInterval:   getEnvAsDuration("HOTSPOT_REFRESH_INTERVAL", 30*time.Second),
			AutoGenerate:      getEnvAsBool("SIM_AUTO_GENERATE", true),
			HotspotBias:       getEnvAsFloat("SIM_HOTSPOT_BIAS", 0.7),
		},
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	var err error
	if cfg.Simulation.BoundsSouthWest, err = getEnvAsCoordinate("SIM_BOUNDS_SW", [2]float64{12.85, 80.05}); err != nil {
		return nil, err
	}
	if cfg.Simulation.BoundsNorthEast, err = getEnvAsCoordinate("SIM_BOUNDS_NE", [2]float64{13.25, 80.33}); err != nil {
		return nil, err
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}

// getEnvAsCoordinate разбирает пару "lat,lng"
func getEnvAsCoordinate(key string, defaultValue [2]float64) ([2]float64, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue, nil
	}
	parts := strings.Split(value, ",")
	if len(parts) != 2 {
		return defaultValue, fmt.Errorf("%s must be in \"lat,lng\" format, got %q", key, value)
	}
	var out [2]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return defaultValue, fmt.Errorf("%s: invalid coordinate %q: %w", key, p, err)
		}
		out[i] = f
	}
	return out, nil
}
