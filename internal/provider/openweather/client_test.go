package openweather

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/tj/assert"

	"github.com/katiamach/weather-dashboard/internal/model"
)

const parisResponse = `{
	"coord": {"lon": 2.3488, "lat": 48.8534},
	"weather": [{"id": 803, "main": "Clouds", "description": "broken clouds", "icon": "04d"}],
	"main": {"temp": 12.7, "feels_like": 11.9, "temp_min": -0.5, "temp_max": 14.2, "pressure": 1018, "humidity": 76},
	"visibility": 9500,
	"wind": {"speed": 4.12, "deg": 230},
	"dt": 1729339200,
	"sys": {"country": "FR", "sunrise": 1729317600, "sunset": 1729356000},
	"timezone": 7200,
	"name": "Paris",
	"cod": 200
}`

func newTestServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/weather", r.URL.Path)
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		assert.Equal(t, "test-key", r.URL.Query().Get("appid"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)

	return srv
}

func TestFetch(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, parisResponse)
	c := NewClient("test-key", WithBaseURL(srv.URL))

	record, err := c.Fetch(context.Background(), "Paris")
	assert.Nil(t, err)

	assert.Equal(t, "Paris", record.Location)
	assert.Equal(t, "FR", record.Country)
	assert.Equal(t, "broken clouds", record.Description)
	assert.Equal(t, model.IconDrizzle, record.Icon)
	assert.True(t, record.Icon.Valid())
	assert.Equal(t, 12, record.Temperature)
	assert.Equal(t, -1, record.TempMin)
	assert.Equal(t, 14, record.TempMax)
	assert.Equal(t, 76, record.Humidity)
	assert.Equal(t, 1018, record.Pressure)
	assert.Equal(t, 4.12, record.WindSpeed)
	assert.Equal(t, 230, record.WindDeg)
	assert.Equal(t, 9.5, record.VisibilityKM)
	assert.Equal(t, "8:00 AM", record.Sunrise)
	assert.Equal(t, "6:40 PM", record.Sunset)
	assert.Equal(t, "Oct 19, 2:00 PM", record.Date)
	assert.Equal(t, model.Coord{Lat: 48.8534, Lon: 2.3488}, record.Coord)
}

func TestFetchSendsCityQuery(t *testing.T) {
	var gotCity string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCity = r.URL.Query().Get("q")
		fmt.Fprint(w, parisResponse)
	}))
	defer srv.Close()

	c := NewClient("test-key", WithBaseURL(srv.URL+"/"))

	_, err := c.Fetch(context.Background(), "São Paulo")
	assert.Nil(t, err)
	assert.Equal(t, "São Paulo", gotCity)
}

func TestFetchErrors(t *testing.T) {
	cases := []struct {
		name            string
		status          int
		body            string
		expectedMessage string
		isProviderError bool
	}{
		{
			name:            "city not found",
			status:          http.StatusNotFound,
			body:            `{"cod":"404","message":"city not found"}`,
			expectedMessage: "city not found",
			isProviderError: true,
		},
		{
			name:            "invalid api key",
			status:          http.StatusUnauthorized,
			body:            `{"cod":401,"message":"Invalid API key. Please see https://openweathermap.org/faq#error401 for more info."}`,
			expectedMessage: "Invalid API key. Please see https://openweathermap.org/faq#error401 for more info.",
			isProviderError: true,
		},
		{
			name:            "error without message",
			status:          http.StatusBadGateway,
			body:            `<html>bad gateway</html>`,
			expectedMessage: "bad gateway",
			isProviderError: true,
		},
		{
			name:   "malformed body",
			status: http.StatusOK,
			body:   `{"name": "Paris", "main": `,
		},
		{
			name:   "no weather conditions",
			status: http.StatusOK,
			body:   `{"name": "Paris", "weather": [], "main": {"temp": 10}}`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := newTestServer(t, tc.status, tc.body)
			c := NewClient("test-key", WithBaseURL(srv.URL))

			record, err := c.Fetch(context.Background(), "Paris")
			assert.Nil(t, record)
			assert.NotNil(t, err)

			var providerErr *model.ProviderError
			assert.Equal(t, tc.isProviderError, errors.As(err, &providerErr))
			if tc.isProviderError {
				assert.Equal(t, tc.status, providerErr.StatusCode)
				assert.Equal(t, tc.expectedMessage, providerErr.Message)
			}
		})
	}
}

func TestFetchTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	c := NewClient("test-key", WithBaseURL(srv.URL))

	record, err := c.Fetch(context.Background(), "Paris")
	assert.Nil(t, record)
	assert.NotNil(t, err)

	var providerErr *model.ProviderError
	assert.False(t, errors.As(err, &providerErr))
}

func TestFetchUsesClockWithoutObservationTime(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, `{
		"weather": [{"id": 701, "description": "mist", "icon": "50d"}],
		"visibility": 10000,
		"name": "Reykjavik"
	}`)

	now := time.Date(2024, time.January, 5, 9, 30, 0, 0, time.UTC)
	c := NewClient("test-key", WithBaseURL(srv.URL), WithClock(func() time.Time { return now }))

	record, err := c.Fetch(context.Background(), "Reykjavik")
	assert.Nil(t, err)
	assert.Equal(t, "Jan 5, 9:30 AM", record.Date)
	assert.Equal(t, 10.0, record.VisibilityKM)
	assert.Equal(t, model.DefaultIcon, record.Icon)
	assert.Equal(t, now, record.FetchedAt)
}

func TestIconFor(t *testing.T) {
	cases := map[string]model.IconCategory{
		"01d": model.IconClear,
		"01n": model.IconClear,
		"02d": model.IconClouds,
		"03n": model.IconClouds,
		"04d": model.IconDrizzle,
		"09n": model.IconRain,
		"10d": model.IconRain,
		"13n": model.IconSnow,
		"11d": model.DefaultIcon,
		"50n": model.DefaultIcon,
		"":    model.DefaultIcon,
	}

	for code, expected := range cases {
		assert.Equal(t, expected, IconFor(code), code)
	}

	assert.Len(t, icons, 14)
	for _, icon := range icons {
		assert.True(t, icon.Valid())
	}
}
