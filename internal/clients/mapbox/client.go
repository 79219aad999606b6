package mapbox

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/shenikar/emergency_dispatch_system/internal/clients"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
)

const DefaultBaseURL = "https://api.mapbox.com"

// Client - клиент Mapbox Directions, Geocoding и Matrix API
type Client struct {
	token   string
	baseURL string
	http    clients.HTTPDoer
}

func NewClient(token, baseURL string, doer clients.HTTPDoer) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{token: token, baseURL: baseURL, http: doer}
}

// Directions - первый маршрут из ответа Directions API
type Directions struct {
	DistanceMeters  float64
	DurationSeconds float64
	// Coordinates - вершины линии в порядке [lng, lat], как в GeoJSON
	Coordinates [][]float64
}

type directionsResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Distance float64 `json:"distance"`
		Duration float64 `json:"duration"`
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"routes"`
}

type geocodingResponse struct {
	Features []struct {
		PlaceName string    `json:"place_name"`
		Center    []float64 `json:"center"`
	} `json:"features"`
}

type matrixResponse struct {
	Code      string       `json:"code"`
	Durations [][]*float64 `json:"durations"`
}

// Directions строит автомобильный маршрут между двумя точками
func (c *Client) Directions(ctx context.Context, origin, destination models.Point) (*Directions, error) {
	if c.token == "" {
		return nil, fmt.Errorf("mapbox: %w", clients.ErrMissingCredential)
	}

	params := url.Values{}
	params.Set("geometries", "geojson")
	params.Set("overview", "full")
	params.Set("access_token", c.token)
	requestURL := fmt.Sprintf("%s/directions/v5/mapbox/driving/%s?%s",
		c.baseURL, joinCoordinates(origin, destination), params.Encode())

	var resp directionsResponse
	if err := clients.GetJSON(ctx, c.http, "mapbox directions", requestURL, &resp); err != nil {
		var upstream *clients.UpstreamError
		if errors.As(err, &upstream) && upstream.StatusCode == 422 {
			return nil, fmt.Errorf("%w: %s", clients.ErrNoRoute, upstream.Message)
		}
		return nil, err
	}
	if len(resp.Routes) == 0 {
		return nil, clients.ErrNoRoute
	}

	route := resp.Routes[0]
	return &Directions{
		DistanceMeters:  route.Distance,
		DurationSeconds: route.Duration,
		Coordinates:     route.Geometry.Coordinates,
	}, nil
}

// Geocode переводит адрес в координаты первого найденного объекта
func (c *Client) Geocode(ctx context.Context, address string) (models.Point, error) {
	if c.token == "" {
		return models.Point{}, fmt.Errorf("mapbox: %w", clients.ErrMissingCredential)
	}
	address = strings.TrimSpace(address)
	if address == "" {
		return models.Point{}, fmt.Errorf("%w: empty address", clients.ErrGeocodeFailure)
	}

	params := url.Values{}
	params.Set("limit", "1")
	params.Set("access_token", c.token)
	requestURL := fmt.Sprintf("%s/geocoding/v5/mapbox.places/%s.json?%s",
		c.baseURL, url.PathEscape(address), params.Encode())

	var resp geocodingResponse
	if err := clients.GetJSON(ctx, c.http, "mapbox geocoding", requestURL, &resp); err != nil {
		return models.Point{}, err
	}
	if len(resp.Features) == 0 || len(resp.Features[0].Center) < 2 {
		return models.Point{}, fmt.Errorf("%w: %s", clients.ErrGeocodeFailure, address)
	}

	center := resp.Features[0].Center
	return models.Point{Lat: center[1], Lng: center[0]}, nil
}

// Matrix возвращает время в пути в секундах от origin до каждой из точек.
// Недостижимые точки пропускаются.
func (c *Client) Matrix(ctx context.Context, origin models.Point, destinations []models.Point) ([]float64, error) {
	if c.token == "" {
		return nil, fmt.Errorf("mapbox: %w", clients.ErrMissingCredential)
	}

	points := append([]models.Point{origin}, destinations...)
	params := url.Values{}
	params.Set("sources", "0")
	params.Set("access_token", c.token)
	requestURL := fmt.Sprintf("%s/directions-matrix/v1/mapbox/driving-traffic/%s?%s",
		c.baseURL, joinCoordinates(points...), params.Encode())

	var resp matrixResponse
	if err := clients.GetJSON(ctx, c.http, "mapbox matrix", requestURL, &resp); err != nil {
		return nil, err
	}
	if len(resp.Durations) == 0 || len(resp.Durations[0]) < 2 {
		return nil, fmt.Errorf("mapbox matrix: empty durations (code %q)", resp.Code)
	}

	durations := make([]float64, 0, len(destinations))
	for _, d := range resp.Durations[0][1:] {
		if d != nil {
			durations = append(durations, *d)
		}
	}
	return durations, nil
}

func joinCoordinates(points ...models.Point) string {
	parts := make([]string, 0, len(points))
	for _, p := range points {
		parts = append(parts, fmt.Sprintf("%.6f,%.6f", p.Lng, p.Lat))
	}
	return strings.Join(parts, ";")
}
