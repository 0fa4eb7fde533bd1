// Package openweather fetches current conditions from the OpenWeatherMap API
// and maps them into dashboard records.
package openweather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/katiamach/weather-dashboard/internal/model"
)

// DefaultBaseURL is the OpenWeatherMap 2.5 API root.
const DefaultBaseURL = "https://api.openweathermap.org/data/2.5"

const (
	timeLayout = "3:04 PM"
	dateLayout = "Jan 2, 3:04 PM"
)

var errNoConditions = errors.New("response has no weather conditions")

// Client fetches current weather from OpenWeatherMap.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	now        func() time.Time
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API root.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if u := strings.TrimSpace(baseURL); u != "" {
			c.baseURL = strings.TrimRight(u, "/")
		}
	}
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithClock overrides the clock used when the payload carries no observation time.
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		c.now = now
	}
}

// NewClient creates new OpenWeatherMap client.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{},
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch retrieves current conditions for the given city. It makes exactly one
// request. A non-success status yields a *model.ProviderError carrying the
// provider's message.
func (c *Client) Fetch(ctx context.Context, city string) (*model.WeatherRecord, error) {
	params := url.Values{}
	params.Set("q", city)
	params.Set("units", "metric")
	params.Set("appid", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/weather?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to get weather for %q: %w", city, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, providerError(resp.StatusCode, body)
	}

	var res currentWeather
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	record, err := toRecord(&res, c.now())
	if err != nil {
		return nil, fmt.Errorf("failed to map response for %q: %w", city, err)
	}

	return record, nil
}

type currentWeather struct {
	Coord struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"coord"`
	Weather []struct {
		ID          int    `json:"id"`
		Main        string `json:"main"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Main struct {
		Temp     float64 `json:"temp"`
		TempMin  float64 `json:"temp_min"`
		TempMax  float64 `json:"temp_max"`
		Pressure int     `json:"pressure"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Visibility int `json:"visibility"`
	Wind       struct {
		Speed float64 `json:"speed"`
		Deg   int     `json:"deg"`
	} `json:"wind"`
	Dt  int64 `json:"dt"`
	Sys struct {
		Country string `json:"country"`
		Sunrise int64  `json:"sunrise"`
		Sunset  int64  `json:"sunset"`
	} `json:"sys"`
	Timezone int    `json:"timezone"`
	Name     string `json:"name"`
}

type errorResponse struct {
	Message string `json:"message"`
}

func providerError(status int, body []byte) *model.ProviderError {
	var res errorResponse
	if err := json.Unmarshal(body, &res); err != nil || strings.TrimSpace(res.Message) == "" {
		res.Message = strings.ToLower(http.StatusText(status))
	}
	return &model.ProviderError{StatusCode: status, Message: res.Message}
}

// toRecord maps the provider payload into a record. now is used as the
// observation time when the payload has none.
func toRecord(res *currentWeather, now time.Time) (*model.WeatherRecord, error) {
	if len(res.Weather) == 0 {
		return nil, errNoConditions
	}

	// the provider reports the place's offset from UTC in seconds
	zone := time.FixedZone("", res.Timezone)

	observed := now
	if res.Dt > 0 {
		observed = time.Unix(res.Dt, 0)
	}

	return &model.WeatherRecord{
		Location:     res.Name,
		Country:      res.Sys.Country,
		Description:  res.Weather[0].Description,
		Icon:         IconFor(res.Weather[0].Icon),
		Temperature:  int(math.Floor(res.Main.Temp)),
		TempMin:      int(math.Floor(res.Main.TempMin)),
		TempMax:      int(math.Floor(res.Main.TempMax)),
		Humidity:     res.Main.Humidity,
		Pressure:     res.Main.Pressure,
		WindSpeed:    res.Wind.Speed,
		WindDeg:      res.Wind.Deg,
		VisibilityKM: math.Round(float64(res.Visibility)/100) / 10,
		Sunrise:      time.Unix(res.Sys.Sunrise, 0).In(zone).Format(timeLayout),
		Sunset:       time.Unix(res.Sys.Sunset, 0).In(zone).Format(timeLayout),
		Date:         observed.In(zone).Format(dateLayout),
		Coord:        model.Coord{Lat: res.Coord.Lat, Lon: res.Coord.Lon},
		FetchedAt:    now,
	}, nil
}
