package service_test

import (
	"bytes"
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/shenikar/emergency_dispatch_system/internal/clients"
	"github.com/shenikar/emergency_dispatch_system/internal/clients/eventbrite"
	"github.com/shenikar/emergency_dispatch_system/internal/clients/mapbox"
	"github.com/shenikar/emergency_dispatch_system/internal/hotspot"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
	"github.com/shenikar/emergency_dispatch_system/internal/service"
	"github.com/shenikar/emergency_dispatch_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testCityConfig = service.CityConfig{
	DefaultCity:   "Chennai",
	WeatherTTL:    10 * time.Minute,
	TrafficTTL:    2 * time.Minute,
	RouteTTL:      5 * time.Minute,
	EventsTTL:     30 * time.Minute,
	PredictionTTL: time.Minute,
}

var testTrafficRegistry = []models.Hotspot{
	{ID: "HS001", Name: "T. Nagar Commercial District", Position: models.Point{Lat: 13.0417, Lng: 80.2341}, BaseIntensity: 0.8},
	{ID: "HS002", Name: "Anna Nagar Roundabout", Position: models.Point{Lat: 13.0850, Lng: 80.2101}, BaseIntensity: 0.7},
}

type cityMocks struct {
	weather *mocks.MockWeatherProvider
	maps    *mocks.MockMapProvider
	events  *mocks.MockEventProvider
	cache   *mocks.MockCache
}

// newTestCityService создает сервис с моками провайдеров и кеша
func newTestCityService(t *testing.T) (service.CityService, cityMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := cityMocks{
		weather: mocks.NewMockWeatherProvider(ctrl),
		maps:    mocks.NewMockMapProvider(ctrl),
		events:  mocks.NewMockEventProvider(ctrl),
		cache:   mocks.NewMockCache(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	predictor := hotspot.NewPredictor(rand.New(rand.NewSource(5)), testTrafficRegistry)
	svc := service.NewCityService(m.weather, m.maps, m.events, m.cache, predictor, testTrafficRegistry, testCityConfig, logger)
	return svc, m
}

func TestWeather_ByCity_CacheMiss(t *testing.T) {
	// Подготовка
	svc, m := newTestCityService(t)
	ctx := context.Background()
	expected := &models.Weather{Temperature: 31.5, Condition: "Haze", City: "Chennai"}

	// Ожидания
	m.cache.EXPECT().
		Get(ctx, "weather:city:chennai", gomock.Any()).
		Return(false, nil).
		Times(1)
	m.weather.EXPECT().
		ByCity(ctx, "Chennai").
		Return(expected, nil).
		Times(1)
	m.cache.EXPECT().
		Set(ctx, "weather:city:chennai", expected, 10*time.Minute).
		Return(nil).
		Times(1)

	// Действие
	weather, err := svc.Weather(ctx, service.WeatherQuery{City: "Chennai"})

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, weather)
}

func TestWeather_ByCoordinates_CacheHit(t *testing.T) {
	// Подготовка
	svc, m := newTestCityService(t)
	ctx := context.Background()
	cachedWeather := &models.Weather{Temperature: 29, Condition: "Clouds", City: "Chennai"}

	// Ожидания: провайдер не вызывается
	m.cache.EXPECT().
		Get(ctx, "weather:coord:13.0827,80.2707", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, dest any) (bool, error) {
			*(dest.(**models.Weather)) = cachedWeather
			return true, nil
		}).
		Times(1)

	// Действие
	weather, err := svc.Weather(ctx, service.WeatherQuery{Position: &models.Point{Lat: 13.0827, Lng: 80.2707}})

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, cachedWeather, weather)
}

func TestWeather_CacheErrorIsIgnored(t *testing.T) {
	svc, m := newTestCityService(t)
	ctx := context.Background()
	expected := &models.Weather{Temperature: 30, Condition: "Clear", City: "Madurai"}

	m.cache.EXPECT().Get(ctx, gomock.Any(), gomock.Any()).Return(false, errors.New("redis: connection refused"))
	m.weather.EXPECT().ByCity(ctx, "Madurai").Return(expected, nil)
	m.cache.EXPECT().Set(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis: connection refused"))

	weather, err := svc.Weather(ctx, service.WeatherQuery{City: "Madurai"})

	require.NoError(t, err)
	assert.Equal(t, expected, weather)
}

func TestWeather_InvalidQuery(t *testing.T) {
	svc, _ := newTestCityService(t)

	weather, err := svc.Weather(context.Background(), service.WeatherQuery{})

	require.Error(t, err)
	assert.Nil(t, weather)
	assert.ErrorIs(t, err, service.ErrInvalidQuery)
}

func TestWeather_MissingCredential(t *testing.T) {
	svc, m := newTestCityService(t)
	ctx := context.Background()

	m.cache.EXPECT().Get(ctx, gomock.Any(), gomock.Any()).Return(false, nil)
	m.weather.EXPECT().ByCity(ctx, "Chennai").Return(nil, clients.ErrMissingCredential)

	_, err := svc.Weather(ctx, service.WeatherQuery{City: "Chennai"})

	require.Error(t, err)
	assert.ErrorIs(t, err, clients.ErrMissingCredential)
	assert.ErrorContains(t, err, "could not fetch weather")
}

func TestTraffic_Levels(t *testing.T) {
	// Подготовка
	svc, m := newTestCityService(t)
	ctx := context.Background()

	// Ожидания: 400 с на км - 9 км/ч, 100 с на км - 36 км/ч
	m.cache.EXPECT().Get(ctx, "traffic", gomock.Any()).Return(false, nil)
	m.maps.EXPECT().
		Matrix(gomock.Any(), testTrafficRegistry[0].Position, gomock.Len(4)).
		Return([]float64{400, 400, 400, 400}, nil)
	m.maps.EXPECT().
		Matrix(gomock.Any(), testTrafficRegistry[1].Position, gomock.Len(4)).
		Return([]float64{100, 100}, nil)
	m.cache.EXPECT().Set(ctx, "traffic", gomock.Any(), 2*time.Minute).Return(nil)

	// Действие
	traffic, err := svc.Traffic(ctx)

	// Проверки
	require.NoError(t, err)
	require.Len(t, traffic, 2)

	assert.Equal(t, "HS001", traffic[0].ID)
	assert.Equal(t, "heavy", traffic[0].TrafficLevel)
	assert.Equal(t, models.RiskHigh, traffic[0].Category)
	assert.Equal(t, 9, traffic[0].CurrentSpeedKmph)
	assert.Equal(t, 0.9, traffic[0].Intensity)
	assert.Equal(t, models.TrendRising, traffic[0].Trend)
	assert.Equal(t, "Current traffic: heavy congestion", traffic[0].Prediction)

	assert.Equal(t, "low", traffic[1].TrafficLevel)
	assert.Equal(t, models.RiskModerate, traffic[1].Category)
	assert.Equal(t, 36, traffic[1].CurrentSpeedKmph)
	assert.Equal(t, models.TrendStable, traffic[1].Trend)
}

func TestTraffic_PartialFailureUsesFallback(t *testing.T) {
	svc, m := newTestCityService(t)
	ctx := context.Background()

	m.cache.EXPECT().Get(ctx, "traffic", gomock.Any()).Return(false, nil)
	m.maps.EXPECT().
		Matrix(gomock.Any(), testTrafficRegistry[0].Position, gomock.Any()).
		Return([]float64{180, 180}, nil)
	m.maps.EXPECT().
		Matrix(gomock.Any(), testTrafficRegistry[1].Position, gomock.Any()).
		Return(nil, &clients.UpstreamError{Service: "mapbox", StatusCode: 503, Message: "unavailable"})
	m.cache.EXPECT().Set(ctx, "traffic", gomock.Any(), gomock.Any()).Return(nil)

	traffic, err := svc.Traffic(ctx)

	require.NoError(t, err)
	require.Len(t, traffic, 2)
	assert.Equal(t, "moderate", traffic[0].TrafficLevel)
	assert.Equal(t, 0.6, traffic[0].Intensity)
	assert.Equal(t, "moderate", traffic[1].TrafficLevel)
	assert.Equal(t, 25, traffic[1].CurrentSpeedKmph)
	assert.Equal(t, 0.5, traffic[1].Intensity)
	assert.Equal(t, "Traffic data unavailable - using fallback", traffic[1].Prediction)
}

func TestTraffic_MissingToken(t *testing.T) {
	// Подготовка
	svc, m := newTestCityService(t)
	ctx := context.Background()

	// Ожидания: запасные данные не кешируются
	m.cache.EXPECT().Get(ctx, "traffic", gomock.Any()).Return(false, nil)
	m.maps.EXPECT().
		Matrix(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, clients.ErrMissingCredential).
		Times(2)

	// Действие
	traffic, err := svc.Traffic(ctx)

	// Проверки
	require.NoError(t, err)
	require.Len(t, traffic, 2)
	for _, h := range traffic {
		assert.Equal(t, "Live traffic data temporarily unavailable", h.Prediction)
		assert.Equal(t, models.RiskModerate, h.Category)
	}
}

func TestRoute_GeocodesAddresses(t *testing.T) {
	// Подготовка
	svc, m := newTestCityService(t)
	ctx := context.Background()
	origin := models.Point{Lat: 38.5, Lng: -120.2}
	destination := models.Point{Lat: 43.252, Lng: -126.453}
	query := service.RouteQuery{
		Origin:      service.Location{Address: "Marina Beach"},
		Destination: service.Location{Address: "Guindy"},
	}

	// Ожидания
	m.cache.EXPECT().Get(ctx, "route:a:marina beach:a:guindy", gomock.Any()).Return(false, nil)
	m.maps.EXPECT().Geocode(ctx, "Marina Beach").Return(origin, nil)
	m.maps.EXPECT().Geocode(ctx, "Guindy").Return(destination, nil)
	m.maps.EXPECT().
		Directions(ctx, origin, destination).
		Return(&mapbox.Directions{
			DistanceMeters:  9416.4,
			DurationSeconds: 1290,
			Coordinates:     [][]float64{{-120.2, 38.5}, {-120.95, 40.7}, {-126.453, 43.252}},
		}, nil)
	m.cache.EXPECT().Set(ctx, "route:a:marina beach:a:guindy", gomock.Any(), 5*time.Minute).Return(nil)

	// Действие
	route, err := svc.Route(ctx, query)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 9.42, route.DistanceKm)
	assert.Equal(t, "9.42 km", route.DistanceText)
	assert.Equal(t, 22, route.DurationMin)
	assert.Equal(t, "22 min", route.DurationText)
	assert.Equal(t, origin, route.Origin)
	require.Len(t, route.Geometry, 3)
	assert.Equal(t, models.Point{Lat: 40.7, Lng: -120.95}, route.Geometry[1])
	assert.Equal(t, "_p~iF~ps|U_ulLnnqC_mqNvxq`@", route.EncodedPolyline)
}

func TestRoute_GeocodeFailure(t *testing.T) {
	svc, m := newTestCityService(t)
	ctx := context.Background()
	query := service.RouteQuery{
		Origin:      service.Location{Address: "Nowhere"},
		Destination: service.Location{Position: &models.Point{Lat: 13.0067, Lng: 80.2206}},
	}

	m.cache.EXPECT().Get(ctx, gomock.Any(), gomock.Any()).Return(false, nil)
	m.maps.EXPECT().Geocode(ctx, "Nowhere").Return(models.Point{}, clients.ErrGeocodeFailure)

	route, err := svc.Route(ctx, query)

	require.Error(t, err)
	assert.Nil(t, route)
	assert.ErrorIs(t, err, clients.ErrGeocodeFailure)
}

func TestRoute_MissingEndpoint(t *testing.T) {
	svc, _ := newTestCityService(t)

	_, err := svc.Route(context.Background(), service.RouteQuery{
		Origin: service.Location{Address: "Marina Beach"},
	})

	assert.ErrorIs(t, err, service.ErrInvalidQuery)
}

func TestEvents_ConvertsFiltersAndSorts(t *testing.T) {
	// Подготовка
	svc, m := newTestCityService(t)
	ctx := context.Background()
	raw := []eventbrite.Event{
		{
			ID:    "late",
			Name:  eventbrite.Text{Text: "Carnatic Night"},
			Start: eventbrite.Time{Local: "2026-10-20T19:00:00"},
			Venue: &eventbrite.Venue{Name: "Music Academy", Latitude: "13.0453", Longitude: "80.2590"},
		},
		{
			ID:    "geocoded",
			Start: eventbrite.Time{Local: "2026-10-18T10:00:00"},
			Venue: &eventbrite.Venue{Address: eventbrite.Address{Address1: "Anna Salai", City: "Chennai", Region: "TN"}},
		},
		{
			ID:    "no-venue",
			Start: eventbrite.Time{Local: "2026-10-17T10:00:00"},
		},
		{
			ID:    "ungeocodable",
			Start: eventbrite.Time{Local: "2026-10-17T11:00:00"},
			Venue: &eventbrite.Venue{Address: eventbrite.Address{City: "Atlantis"}},
		},
	}

	// Ожидания
	m.cache.EXPECT().Get(ctx, "events:chennai", gomock.Any()).Return(false, nil)
	m.events.EXPECT().Search(ctx, "Chennai").Return(raw, nil)
	m.maps.EXPECT().Geocode(ctx, "Anna Salai Chennai TN").Return(models.Point{Lat: 13.06, Lng: 80.25}, nil)
	m.maps.EXPECT().Geocode(ctx, "Atlantis").Return(models.Point{}, clients.ErrGeocodeFailure)
	m.cache.EXPECT().Set(ctx, "events:chennai", gomock.Any(), 30*time.Minute).Return(nil)

	// Действие: пустой город заменяется городом по умолчанию
	events, err := svc.Events(ctx, "")

	// Проверки
	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.Equal(t, "geocoded", events[0].ID)
	assert.Equal(t, "Unnamed Event", events[0].Name)
	assert.Equal(t, "Unknown Venue", events[0].Venue)
	assert.Equal(t, "Anna Salai Chennai", events[0].Address)
	assert.Equal(t, models.Point{Lat: 13.06, Lng: 80.25}, events[0].Position)
	assert.Equal(t, "INR", events[0].Currency)

	assert.Equal(t, "late", events[1].ID)
	assert.Equal(t, "Music Academy", events[1].Venue)
	assert.Equal(t, "Live Event", events[1].Category)
	assert.Equal(t, models.Point{Lat: 13.0453, Lng: 80.2590}, events[1].Position)
	assert.Equal(t, time.Date(2026, 10, 20, 19, 0, 0, 0, time.UTC), events[1].StartsAt)
}

func TestEvents_UpstreamError(t *testing.T) {
	svc, m := newTestCityService(t)
	ctx := context.Background()

	m.cache.EXPECT().Get(ctx, gomock.Any(), gomock.Any()).Return(false, nil)
	m.events.EXPECT().Search(ctx, "Pune").Return(nil, &clients.UpstreamError{Service: "eventbrite", StatusCode: 401, Message: "INVALID_AUTH"})

	events, err := svc.Events(ctx, "Pune")

	require.Error(t, err)
	assert.Nil(t, events)
	var upstream *clients.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, 401, upstream.StatusCode)
}

func TestPredictions_WithoutCache(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	predictor := hotspot.NewPredictor(rand.New(rand.NewSource(5)), testTrafficRegistry)
	svc := service.NewCityService(nil, nil, nil, nil, predictor, testTrafficRegistry, testCityConfig, logger)

	predictions, err := svc.Predictions(context.Background(), "")

	require.NoError(t, err)
	require.Len(t, predictions, 2)
	for _, p := range predictions {
		assert.LessOrEqual(t, p.Intensity, 0.95)
		assert.Equal(t, models.CategoryForIntensity(p.Intensity), p.Category)
		assert.NotEmpty(t, p.Prediction)
	}
}

func TestHotspots_MergesTraffic(t *testing.T) {
	// Подготовка
	svc, m := newTestCityService(t)
	ctx := context.Background()

	// Ожидания
	m.cache.EXPECT().Get(ctx, "predictions:chennai", gomock.Any()).Return(false, nil)
	m.cache.EXPECT().Set(ctx, "predictions:chennai", gomock.Any(), time.Minute).Return(nil)
	m.cache.EXPECT().Get(ctx, "traffic", gomock.Any()).Return(false, nil)
	m.maps.EXPECT().
		Matrix(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]float64{200}, nil).
		Times(2)
	m.cache.EXPECT().Set(ctx, "traffic", gomock.Any(), gomock.Any()).Return(nil)

	// Действие
	hotspots, err := svc.Hotspots(ctx)

	// Проверки
	require.NoError(t, err)
	require.Len(t, hotspots, 2)
	for _, h := range hotspots {
		assert.Equal(t, "moderate", h.TrafficLevel)
		assert.Equal(t, 18, h.CurrentSpeedKmph)
		assert.NotZero(t, h.Intensity)
	}
}
