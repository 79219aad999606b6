package openweather

import (
	"context"
	"fmt"
	"net/url"

	"github.com/shenikar/emergency_dispatch_system/internal/clients"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
)

const DefaultBaseURL = "https://api.openweathermap.org"

// Client - клиент OpenWeatherMap Current Weather API
type Client struct {
	apiKey  string
	baseURL string
	http    clients.HTTPDoer
}

func NewClient(apiKey, baseURL string, doer clients.HTTPDoer) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{apiKey: apiKey, baseURL: baseURL, http: doer}
}

type currentResponse struct {
	Name string `json:"name"`
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
}

// ByCity возвращает текущую погоду по названию города
func (c *Client) ByCity(ctx context.Context, city string) (*models.Weather, error) {
	params := url.Values{}
	params.Set("q", city)
	return c.current(ctx, params)
}

// ByCoordinates возвращает текущую погоду по координатам
func (c *Client) ByCoordinates(ctx context.Context, p models.Point) (*models.Weather, error) {
	params := url.Values{}
	params.Set("lat", fmt.Sprintf("%.6f", p.Lat))
	params.Set("lon", fmt.Sprintf("%.6f", p.Lng))
	return c.current(ctx, params)
}

func (c *Client) current(ctx context.Context, params url.Values) (*models.Weather, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("openweather: %w", clients.ErrMissingCredential)
	}
	params.Set("appid", c.apiKey)
	params.Set("units", "metric")

	var resp currentResponse
	requestURL := fmt.Sprintf("%s/data/2.5/weather?%s", c.baseURL, params.Encode())
	if err := clients.GetJSON(ctx, c.http, "openweather", requestURL, &resp); err != nil {
		return nil, err
	}

	weather := &models.Weather{
		Temperature: resp.Main.Temp,
		City:        resp.Name,
	}
	if len(resp.Weather) > 0 {
		weather.Condition = resp.Weather[0].Description
	}
	return weather, nil
}
