package openweather

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/shenikar/emergency_dispatch_system/internal/clients"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockHTTPDoer struct {
	mock.Mock
}

func (m *MockHTTPDoer) Do(req *http.Request) (*http.Response, error) {
	args := m.Called(req)
	resp, _ := args.Get(0).(*http.Response)
	return resp, args.Error(1)
}

func createMockResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
}

const chennaiWeather = `{
	"name": "Chennai",
	"cod": 200,
	"main": {"temp": 31.4, "humidity": 70},
	"weather": [{"main": "Clouds", "description": "scattered clouds"}]
}`

func TestByCity(t *testing.T) {
	doer := &MockHTTPDoer{}
	doer.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		q := req.URL.Query()
		return req.URL.Path == "/data/2.5/weather" &&
			q.Get("q") == "Chennai" && q.Get("appid") == "key" && q.Get("units") == "metric"
	})).Return(createMockResponse(200, chennaiWeather), nil)

	c := NewClient("key", "https://weather.test", doer)
	w, err := c.ByCity(context.Background(), "Chennai")
	require.NoError(t, err)
	assert.Equal(t, &models.Weather{Temperature: 31.4, Condition: "scattered clouds", City: "Chennai"}, w)
	doer.AssertExpectations(t)
}

func TestByCoordinates(t *testing.T) {
	doer := &MockHTTPDoer{}
	doer.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		q := req.URL.Query()
		return q.Get("lat") == "13.082700" && q.Get("lon") == "80.270700"
	})).Return(createMockResponse(200, chennaiWeather), nil)

	c := NewClient("key", "https://weather.test", doer)
	w, err := c.ByCoordinates(context.Background(), models.Point{Lat: 13.0827, Lng: 80.2707})
	require.NoError(t, err)
	assert.Equal(t, 31.4, w.Temperature)
}

func TestMissingKey(t *testing.T) {
	doer := &MockHTTPDoer{}
	c := NewClient("", "", doer)

	_, err := c.ByCity(context.Background(), "Chennai")
	assert.ErrorIs(t, err, clients.ErrMissingCredential)
	doer.AssertNotCalled(t, "Do", mock.Anything)
}

func TestCityNotFound(t *testing.T) {
	doer := &MockHTTPDoer{}
	doer.On("Do", mock.Anything).Return(createMockResponse(404, `{"cod":"404","message":"city not found"}`), nil)

	c := NewClient("key", "", doer)
	_, err := c.ByCity(context.Background(), "Atlantis")

	var upstream *clients.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusNotFound, upstream.StatusCode)
	assert.Equal(t, "city not found", upstream.Message)
}
