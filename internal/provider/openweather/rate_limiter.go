package openweather

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"github.com/katiamach/weather-dashboard/internal/model"
)

// Fetcher fetches current conditions for a city.
type Fetcher interface {
	Fetch(ctx context.Context, city string) (*model.WeatherRecord, error)
}

// RateLimited wraps a Fetcher with a token bucket. It waits for a token and
// then makes the single underlying call; it never retries.
type RateLimited struct {
	fetcher Fetcher
	limiter *rate.Limiter
}

// NewRateLimited creates a fetcher allowing rps requests per second with the given burst.
func NewRateLimited(fetcher Fetcher, rps float64, burst int) *RateLimited {
	return &RateLimited{
		fetcher: fetcher,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

// Fetch waits for rate limiter permission and delegates.
func (r *RateLimited) Fetch(ctx context.Context, city string) (*model.WeatherRecord, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait canceled: %w", err)
	}
	return r.fetcher.Fetch(ctx, city)
}

var (
	_ Fetcher = (*Client)(nil)
	_ Fetcher = (*RateLimited)(nil)
)
