package eventbrite

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/shenikar/emergency_dispatch_system/internal/clients"
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

const searchBody = `{"events":[
	{"id":"1","name":{"text":"Chennai Music Fest"},"url":"https://eventbrite.test/1",
	 "start":{"local":"2026-03-07T18:00:00"},"is_free":false,"currency":"INR",
	 "venue":{"name":"YMCA Grounds","latitude":"13.0305","longitude":"80.2510",
	 "address":{"address_1":"Nandanam","city":"Chennai","region":"TN"}}},
	{"id":"2","name":{"text":"Tech Meetup"},"start":{"utc":"2026-03-05T12:30:00Z"},"is_free":true}
]}`

func TestSearch(t *testing.T) {
	doer := &MockHTTPDoer{}
	doer.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		q := req.URL.Query()
		return req.URL.Path == "/v3/events/search/" && q.Get("location.address") == "Chennai" &&
			q.Get("expand") == "venue" && q.Get("token") == "token"
	})).Return(createMockResponse(200, searchBody), nil)

	c := NewClient("token", "https://eventbrite.test", doer)
	events, err := c.Search(context.Background(), "Chennai")
	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.Equal(t, "Chennai Music Fest", events[0].Name.Text)
	require.NotNil(t, events[0].Venue)
	assert.Equal(t, "13.0305", events[0].Venue.Latitude)
	assert.Equal(t, "Nandanam Chennai", events[0].Venue.StreetAddress())
	assert.Equal(t, "Nandanam Chennai TN", events[0].Venue.GeocodeQuery())
	assert.Nil(t, events[1].Venue)
	assert.Empty(t, events[1].Venue.StreetAddress())
}

func TestSearch_Errors(t *testing.T) {
	_, err := NewClient("", "", &MockHTTPDoer{}).Search(context.Background(), "Chennai")
	assert.ErrorIs(t, err, clients.ErrMissingCredential)

	doer := &MockHTTPDoer{}
	doer.On("Do", mock.Anything).Return(createMockResponse(401, `{"error":"INVALID_AUTH","error_description":"The OAuth token you provided was invalid."}`), nil)
	_, err = NewClient("bad", "", doer).Search(context.Background(), "Chennai")

	var upstream *clients.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusUnauthorized, upstream.StatusCode)
}
