package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shenikar/emergency_dispatch_system/internal/clients"
	"github.com/shenikar/emergency_dispatch_system/internal/clients/eventbrite"
	"github.com/shenikar/emergency_dispatch_system/internal/clients/mapbox"
	"github.com/shenikar/emergency_dispatch_system/internal/hotspot"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/twpayne/go-polyline"
	"golang.org/x/sync/errgroup"
)

// ErrInvalidQuery - в запросе не хватает города, координат или адреса
var ErrInvalidQuery = errors.New("invalid query")

const (
	maxEvents           = 20
	eventDescriptionLen = 200
	trafficProbeOffset  = 0.01
	trafficConcurrency  = 4
)

// WeatherProvider - источник текущей погоды
type WeatherProvider interface {
	ByCity(ctx context.Context, city string) (*models.Weather, error)
	ByCoordinates(ctx context.Context, p models.Point) (*models.Weather, error)
}

// MapProvider - маршруты, геокодирование и матрица времени в пути
type MapProvider interface {
	Directions(ctx context.Context, origin, destination models.Point) (*mapbox.Directions, error)
	Geocode(ctx context.Context, address string) (models.Point, error)
	Matrix(ctx context.Context, origin models.Point, destinations []models.Point) ([]float64, error)
}

// EventProvider - поиск городских мероприятий
type EventProvider interface {
	Search(ctx context.Context, city string) ([]eventbrite.Event, error)
}

// Cache - кеш ответов внешних API с временем жизни
type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}

// WeatherQuery - город или координаты
type WeatherQuery struct {
	City     string
	Position *models.Point
}

// Location - точка маршрута: координаты или адрес
type Location struct {
	Position *models.Point
	Address  string
}

func (l Location) cacheKey() string {
	if l.Position != nil {
		return fmt.Sprintf("p:%.5f,%.5f", l.Position.Lat, l.Position.Lng)
	}
	return "a:" + strings.ToLower(strings.TrimSpace(l.Address))
}

// RouteQuery - запрос маршрута
type RouteQuery struct {
	Origin      Location
	Destination Location
}

// CityConfig - время жизни кеша и город по умолчанию
type CityConfig struct {
	DefaultCity   string
	WeatherTTL    time.Duration
	TrafficTTL    time.Duration
	RouteTTL      time.Duration
	EventsTTL     time.Duration
	PredictionTTL time.Duration
}

// CityService определяет контракт обертки над внешними городскими данными
type CityService interface {
	Weather(ctx context.Context, q WeatherQuery) (*models.Weather, error)
	Traffic(ctx context.Context) ([]models.Hotspot, error)
	Route(ctx context.Context, q RouteQuery) (*models.Route, error)
	Events(ctx context.Context, city string) ([]models.CityEvent, error)
	Predictions(ctx context.Context, city string) ([]models.Hotspot, error)
	Hotspots(ctx context.Context) ([]models.Hotspot, error)
}

type cityService struct {
	weather WeatherProvider
	maps    MapProvider
	events  EventProvider
	cache   Cache

	mu        sync.Mutex
	predictor *hotspot.Predictor
	registry  []models.Hotspot

	cfg    CityConfig
	logger *logrus.Logger
	now    func() time.Time
}

func NewCityService(
	weather WeatherProvider,
	maps MapProvider,
	events EventProvider,
	cache Cache,
	predictor *hotspot.Predictor,
	registry []models.Hotspot,
	cfg CityConfig,
	logger *logrus.Logger,
) CityService {
	if cfg.DefaultCity == "" {
		cfg.DefaultCity = "Chennai"
	}
	return &cityService{
		weather:   weather,
		maps:      maps,
		events:    events,
		cache:     cache,
		predictor: predictor,
		registry:  registry,
		cfg:       cfg,
		logger:    logger,
		now:       time.Now,
	}
}

// cached возвращает значение из кеша или загружает его и сохраняет на ttl.
// Ошибки кеша не прерывают запрос.
func cached[T any](ctx context.Context, s *cityService, key string, ttl time.Duration, load func() (T, error)) (T, error) {
	log := s.logger.WithFields(logrus.Fields{"service": "city", "cache_key": key})

	if s.cache != nil {
		var hit T
		ok, err := s.cache.Get(ctx, key, &hit)
		if err != nil {
			log.WithError(err).Warn("Cache read failed")
		} else if ok {
			log.Debug("Cache hit")
			return hit, nil
		}
	}

	value, err := load()
	if err != nil {
		return value, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, value, ttl); err != nil {
			log.WithError(err).Warn("Cache write failed")
		}
	}
	return value, nil
}

// Weather возвращает погоду по городу или координатам
func (s *cityService) Weather(ctx context.Context, q WeatherQuery) (*models.Weather, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "city",
		"method":  "Weather",
		"city":    q.City,
	})

	city := strings.TrimSpace(q.City)
	var key string
	switch {
	case city != "":
		key = "weather:city:" + strings.ToLower(city)
	case q.Position != nil && q.Position.Valid():
		key = fmt.Sprintf("weather:coord:%.4f,%.4f", q.Position.Lat, q.Position.Lng)
	default:
		return nil, fmt.Errorf("%w: missing city or coordinates", ErrInvalidQuery)
	}

	weather, err := cached(ctx, s, key, s.cfg.WeatherTTL, func() (*models.Weather, error) {
		if city != "" {
			return s.weather.ByCity(ctx, city)
		}
		return s.weather.ByCoordinates(ctx, *q.Position)
	})
	if err != nil {
		log.WithError(err).Warn("Failed to fetch weather")
		return nil, fmt.Errorf("service: could not fetch weather: %w", err)
	}
	return weather, nil
}

// Traffic оценивает загруженность у горячих точек по матрице времени в пути.
// Точки без данных получают запасную запись; ошибкой это не считается.
func (s *cityService) Traffic(ctx context.Context) ([]models.Hotspot, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "city",
		"method":  "Traffic",
	})

	var out []models.Hotspot
	if ok, err := s.cacheGet(ctx, "traffic", &out); err == nil && ok {
		return out, nil
	}

	out = make([]models.Hotspot, len(s.registry))
	var missingCredential atomic.Bool
	var degraded atomic.Int32

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(trafficConcurrency)
	for i, h := range s.registry {
		g.Go(func() error {
			reading, err := s.trafficAt(gctx, h)
			if err != nil {
				if errors.Is(err, clients.ErrMissingCredential) {
					missingCredential.Store(true)
				} else {
					log.WithError(err).WithField("hotspot_id", h.ID).Warn("Traffic lookup failed, using fallback")
				}
				degraded.Add(1)
				reading = trafficFallback(h, "Traffic data unavailable - using fallback")
			}
			out[i] = reading
			return nil
		})
	}
	_ = g.Wait()

	if missingCredential.Load() {
		log.Warn("Mapbox token is not configured, returning fallback traffic data")
		for i, h := range s.registry {
			out[i] = trafficFallback(h, "Live traffic data temporarily unavailable")
		}
		return out, nil
	}

	if degraded.Load() < int32(len(out)) {
		s.cacheSet(ctx, "traffic", out, s.cfg.TrafficTTL)
	}
	log.WithField("count", len(out)).Info("Traffic data updated")
	return out, nil
}

func (s *cityService) trafficAt(ctx context.Context, h models.Hotspot) (models.Hotspot, error) {
	p := h.Position
	probes := []models.Point{
		{Lat: p.Lat, Lng: p.Lng + trafficProbeOffset},
		{Lat: p.Lat, Lng: p.Lng - trafficProbeOffset},
		{Lat: p.Lat + trafficProbeOffset, Lng: p.Lng},
		{Lat: p.Lat - trafficProbeOffset, Lng: p.Lng},
	}
	durations, err := s.maps.Matrix(ctx, p, probes)
	if err != nil {
		return models.Hotspot{}, err
	}
	if len(durations) == 0 {
		return models.Hotspot{}, fmt.Errorf("no reachable probes around %s", h.ID)
	}

	var sum float64
	for _, d := range durations {
		sum += d
	}
	avg := sum / float64(len(durations))

	// условный километр за avg секунд
	speed := 30.0
	if avg > 0 {
		speed = 1000 / avg * 3.6
	}
	return trafficReading(h, speed), nil
}

func trafficReading(h models.Hotspot, speed float64) models.Hotspot {
	h.CurrentSpeedKmph = int(math.Round(speed))
	switch {
	case speed < 15:
		h.TrafficLevel, h.Category, h.Intensity = "heavy", models.RiskHigh, 0.9
	case speed < 25:
		h.TrafficLevel, h.Category, h.Intensity = "moderate", models.RiskModerate, 0.6
	default:
		h.TrafficLevel, h.Category, h.Intensity = "low", models.RiskModerate, 0.3
	}
	h.Prediction = fmt.Sprintf("Current traffic: %s congestion", h.TrafficLevel)
	h.Trend = models.TrendStable
	if speed < 20 {
		h.Trend = models.TrendRising
	}
	return h
}

func trafficFallback(h models.Hotspot, prediction string) models.Hotspot {
	h.TrafficLevel = "moderate"
	h.CurrentSpeedKmph = 25
	h.Category = models.RiskModerate
	h.Intensity = 0.5
	h.Prediction = prediction
	h.Trend = models.TrendStable
	return h
}

// Route строит маршрут; адреса предварительно геокодируются
func (s *cityService) Route(ctx context.Context, q RouteQuery) (*models.Route, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "city",
		"method":  "Route",
	})

	if !q.Origin.isSet() || !q.Destination.isSet() {
		return nil, fmt.Errorf("%w: origin and destination are required", ErrInvalidQuery)
	}

	key := "route:" + q.Origin.cacheKey() + ":" + q.Destination.cacheKey()
	route, err := cached(ctx, s, key, s.cfg.RouteTTL, func() (*models.Route, error) {
		origin, err := s.resolve(ctx, q.Origin)
		if err != nil {
			return nil, err
		}
		destination, err := s.resolve(ctx, q.Destination)
		if err != nil {
			return nil, err
		}
		directions, err := s.maps.Directions(ctx, origin, destination)
		if err != nil {
			return nil, err
		}
		return buildRoute(origin, destination, directions), nil
	})
	if err != nil {
		log.WithError(err).Warn("Route calculation failed")
		return nil, fmt.Errorf("service: could not calculate route: %w", err)
	}

	log.WithField("distance_km", route.DistanceKm).Info("Route calculated successfully")
	return route, nil
}

func (l Location) isSet() bool {
	if l.Position != nil {
		return l.Position.Valid()
	}
	return strings.TrimSpace(l.Address) != ""
}

func (s *cityService) resolve(ctx context.Context, l Location) (models.Point, error) {
	if l.Position != nil {
		return *l.Position, nil
	}
	return s.maps.Geocode(ctx, l.Address)
}

func buildRoute(origin, destination models.Point, d *mapbox.Directions) *models.Route {
	distanceKm := math.Round(d.DistanceMeters/1000*100) / 100
	durationMin := int(math.Round(d.DurationSeconds / 60))

	geometry := make([]models.Point, 0, len(d.Coordinates))
	latLng := make([][]float64, 0, len(d.Coordinates))
	for _, c := range d.Coordinates {
		if len(c) < 2 {
			continue
		}
		geometry = append(geometry, models.Point{Lat: c[1], Lng: c[0]})
		latLng = append(latLng, []float64{c[1], c[0]})
	}

	return &models.Route{
		DistanceKm:      distanceKm,
		DurationMin:     durationMin,
		DurationText:    fmt.Sprintf("%d min", durationMin),
		DistanceText:    strconv.FormatFloat(distanceKm, 'f', -1, 64) + " km",
		Geometry:        geometry,
		EncodedPolyline: string(polyline.EncodeCoords(latLng)),
		Origin:          origin,
		Destination:     destination,
	}
}

// Events возвращает ближайшие мероприятия города с координатами, по времени начала
func (s *cityService) Events(ctx context.Context, city string) ([]models.CityEvent, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		city = s.cfg.DefaultCity
	}
	log := s.logger.WithFields(logrus.Fields{
		"service": "city",
		"method":  "Events",
		"city":    city,
	})

	events, err := cached(ctx, s, "events:"+strings.ToLower(city), s.cfg.EventsTTL, func() ([]models.CityEvent, error) {
		raw, err := s.events.Search(ctx, city)
		if err != nil {
			return nil, err
		}
		if len(raw) > maxEvents {
			raw = raw[:maxEvents]
		}

		out := make([]models.CityEvent, 0, len(raw))
		for _, e := range raw {
			event, ok := s.convertEvent(ctx, e)
			if !ok {
				continue
			}
			out = append(out, event)
		}
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].StartsAt.Before(out[j].StartsAt)
		})
		return out, nil
	})
	if err != nil {
		log.WithError(err).Warn("Failed to fetch events")
		return nil, fmt.Errorf("service: could not fetch events: %w", err)
	}

	log.WithField("count", len(events)).Info("Events fetched successfully")
	return events, nil
}

// convertEvent возвращает false для мероприятий без координат
func (s *cityService) convertEvent(ctx context.Context, e eventbrite.Event) (models.CityEvent, bool) {
	event := models.CityEvent{
		ID:          e.ID,
		Name:        e.Name.Text,
		Venue:       "Unknown Venue",
		Address:     "Address not available",
		URL:         e.URL,
		Description: truncate(e.Description.Text, eventDescriptionLen),
		Category:    "Live Event",
		IsFree:      e.IsFree,
		Currency:    e.Currency,
		StartsAt:    parseEventTime(e.Start.Local, e.Start.UTC),
	}
	if event.Name == "" {
		event.Name = "Unnamed Event"
	}
	if event.Currency == "" {
		event.Currency = "INR"
	}
	if e.Venue == nil {
		return event, false
	}
	if e.Venue.Name != "" {
		event.Venue = e.Venue.Name
	}
	if addr := e.Venue.StreetAddress(); addr != "" {
		event.Address = addr
	}

	lat, latErr := strconv.ParseFloat(e.Venue.Latitude, 64)
	lng, lngErr := strconv.ParseFloat(e.Venue.Longitude, 64)
	if latErr == nil && lngErr == nil && (lat != 0 || lng != 0) {
		event.Position = models.Point{Lat: lat, Lng: lng}
		return event, true
	}

	query := e.Venue.GeocodeQuery()
	if query == "" {
		return event, false
	}
	p, err := s.maps.Geocode(ctx, query)
	if err != nil {
		s.logger.WithError(err).WithField("event_id", e.ID).Warn("Failed to geocode venue address")
		return event, false
	}
	event.Position = p
	return event, true
}

func parseEventTime(local, utc string) time.Time {
	if local != "" {
		if t, err := time.Parse("2006-01-02T15:04:05", local); err == nil {
			return t
		}
	}
	if utc != "" {
		if t, err := time.Parse(time.RFC3339, utc); err == nil {
			return t
		}
	}
	return time.Time{}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}

// Predictions возвращает прогноз интенсивности горячих точек
func (s *cityService) Predictions(ctx context.Context, city string) ([]models.Hotspot, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		city = s.cfg.DefaultCity
	}

	return cached(ctx, s, "predictions:"+strings.ToLower(city), s.cfg.PredictionTTL, func() ([]models.Hotspot, error) {
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.predictor.Predict(s.now()), nil
	})
}

// Hotspots - источник обновлений для цикла симуляции: прогноз плюс текущий трафик
func (s *cityService) Hotspots(ctx context.Context) ([]models.Hotspot, error) {
	predictions, err := s.Predictions(ctx, s.cfg.DefaultCity)
	if err != nil {
		return nil, err
	}
	traffic, err := s.Traffic(ctx)
	if err != nil {
		return predictions, nil
	}

	byID := make(map[string]models.Hotspot, len(traffic))
	for _, t := range traffic {
		byID[t.ID] = t
	}
	for i, p := range predictions {
		if t, ok := byID[p.ID]; ok {
			predictions[i].TrafficLevel = t.TrafficLevel
			predictions[i].CurrentSpeedKmph = t.CurrentSpeedKmph
		}
	}
	return predictions, nil
}

func (s *cityService) cacheGet(ctx context.Context, key string, dest any) (bool, error) {
	if s.cache == nil {
		return false, nil
	}
	ok, err := s.cache.Get(ctx, key, dest)
	if err != nil {
		s.logger.WithError(err).WithField("cache_key", key).Warn("Cache read failed")
	}
	return ok, err
}

func (s *cityService) cacheSet(ctx context.Context, key string, value any, ttl time.Duration) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, value, ttl); err != nil {
		s.logger.WithError(err).WithField("cache_key", key).Warn("Cache write failed")
	}
}
