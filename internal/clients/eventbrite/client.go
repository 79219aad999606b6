package eventbrite

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/shenikar/emergency_dispatch_system/internal/clients"
)

const DefaultBaseURL = "https://www.eventbriteapi.com"

// Client - клиент поиска мероприятий Eventbrite
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

// Text - многоязычное поле Eventbrite, используется только text
type Text struct {
	Text string `json:"text"`
}

// Time - время начала в локальной зоне площадки и в UTC
type Time struct {
	Local string `json:"local"`
	UTC   string `json:"utc"`
}

// Address - адрес площадки
type Address struct {
	Address1 string `json:"address_1"`
	City     string `json:"city"`
	Region   string `json:"region"`
}

// Event - мероприятие в формате Eventbrite (expand=venue)
type Event struct {
	ID          string `json:"id"`
	Name        Text   `json:"name"`
	Description Text   `json:"description"`
	URL         string `json:"url"`
	Start       Time   `json:"start"`
	IsFree      bool   `json:"is_free"`
	Currency    string `json:"currency"`
	Venue       *Venue `json:"venue"`
}

type Venue struct {
	Name      string  `json:"name"`
	Latitude  string  `json:"latitude"`
	Longitude string  `json:"longitude"`
	Address   Address `json:"address"`
}

// StreetAddress - адрес площадки одной строкой без региона
func (v *Venue) StreetAddress() string {
	if v == nil {
		return ""
	}
	return strings.TrimSpace(v.Address.Address1 + " " + v.Address.City)
}

// GeocodeQuery - адрес площадки для геокодирования
func (v *Venue) GeocodeQuery() string {
	if v == nil {
		return ""
	}
	return strings.Join(strings.Fields(v.Address.Address1+" "+v.Address.City+" "+v.Address.Region), " ")
}

type searchResponse struct {
	Events []Event `json:"events"`
}

// Search ищет мероприятия в городе
func (c *Client) Search(ctx context.Context, city string) ([]Event, error) {
	if c.token == "" {
		return nil, fmt.Errorf("eventbrite: %w", clients.ErrMissingCredential)
	}

	params := url.Values{}
	params.Set("q", city)
	params.Set("location.address", city)
	params.Set("expand", "venue")
	params.Set("token", c.token)
	requestURL := fmt.Sprintf("%s/v3/events/search/?%s", c.baseURL, params.Encode())

	var resp searchResponse
	if err := clients.GetJSON(ctx, c.http, "eventbrite", requestURL, &resp); err != nil {
		return nil, err
	}
	return resp.Events, nil
}
