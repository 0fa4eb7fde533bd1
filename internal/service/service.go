package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/umahmood/haversine"

	"github.com/katiamach/weather-dashboard/internal/logger"
	"github.com/katiamach/weather-dashboard/internal/model"
)

//go:generate mockgen -source=service.go -destination=mock/mock.go Fetcher

// Errors returned by Dashboard.
var (
	ErrEmptyCityName    = model.ErrEmptyCityName
	ErrCityAlreadyAdded = model.ErrCityAlreadyAdded
	ErrBusy             = model.ErrBusy
	ErrCityNotFound     = model.ErrCityNotFound
	ErrFetchFailed      = model.ErrFetchFailed
)

// DefaultCities are loaded when the dashboard starts.
var DefaultCities = []string{"Colombo", "Tokyo", "Liverpool", "Sydney", "Boston"}

// Fetcher provides current conditions for a city.
type Fetcher interface {
	Fetch(ctx context.Context, city string) (*model.WeatherRecord, error)
}

// Dashboard holds the ordered city records and the optional selection.
type Dashboard struct {
	fetcher Fetcher

	mu       sync.RWMutex
	cities   []*model.WeatherRecord
	selected string
	busy     bool
	loading  bool
}

// New creates new Dashboard.
func New(fetcher Fetcher) *Dashboard {
	return &Dashboard{
		fetcher: fetcher,
	}
}

// AddCity fetches the given city and appends it to the dashboard.
func (d *Dashboard) AddCity(ctx context.Context, name string) (*model.WeatherRecord, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyCityName
	}

	d.mu.Lock()
	if d.busy {
		d.mu.Unlock()
		return nil, ErrBusy
	}
	if d.indexOf(name) >= 0 {
		d.mu.Unlock()
		return nil, ErrCityAlreadyAdded
	}
	d.busy = true
	d.mu.Unlock()

	record, err := d.fetch(ctx, name)

	d.mu.Lock()
	defer d.mu.Unlock()

	d.busy = false
	if err != nil {
		return nil, err
	}

	// the provider may resolve the query to a place that is already shown
	if d.indexOf(record.Location) >= 0 {
		return nil, ErrCityAlreadyAdded
	}

	d.cities = append(d.cities, record)
	logger.WithFields(logger.Fields{"city": record.Location, "count": len(d.cities)}).Info("city added")

	return record, nil
}

// RemoveCity removes the city from the dashboard, clearing the selection if it pointed at it.
func (d *Dashboard) RemoveCity(name string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	i := d.indexOf(name)
	if i < 0 {
		return ErrCityNotFound
	}

	if strings.EqualFold(d.selected, d.cities[i].Location) {
		d.selected = ""
	}
	d.cities = append(d.cities[:i:i], d.cities[i+1:]...)

	return nil
}

// SelectCity switches the dashboard to the detail view of the given city.
func (d *Dashboard) SelectCity(name string) (*model.WeatherRecord, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	i := d.indexOf(name)
	if i < 0 {
		return nil, ErrCityNotFound
	}
	d.selected = d.cities[i].Location

	return d.cities[i], nil
}

// DeselectCity switches the dashboard back to the grid view.
func (d *Dashboard) DeselectCity() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.selected = ""
}

// LoadDefaults fetches the given cities one after another and appends every
// one that succeeds, in the requested order. It returns the number added.
func (d *Dashboard) LoadDefaults(ctx context.Context, cities []string) int {
	d.setLoading(true)
	defer d.setLoading(false)

	var added int
	for _, city := range cities {
		if ctx.Err() != nil {
			break
		}

		record, err := d.fetch(ctx, city)
		if err != nil {
			continue
		}

		d.mu.Lock()
		if d.indexOf(record.Location) < 0 {
			d.cities = append(d.cities, record)
			added++
		}
		d.mu.Unlock()
	}

	logger.WithFields(logger.Fields{"requested": len(cities), "added": added}).Info("default cities loaded")

	return added
}

// RefreshCity fetches the city again and replaces its record in place.
func (d *Dashboard) RefreshCity(ctx context.Context, name string) (*model.WeatherRecord, error) {
	d.mu.RLock()
	i := d.indexOf(name)
	if i < 0 {
		d.mu.RUnlock()
		return nil, ErrCityNotFound
	}
	current := d.cities[i]
	d.mu.RUnlock()

	query := current.Location
	if current.Country != "" {
		query = fmt.Sprintf("%s,%s", current.Location, current.Country)
	}

	record, err := d.fetch(ctx, query)
	if err != nil {
		return nil, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	i = d.indexOf(current.Location)
	if i < 0 {
		return nil, ErrCityNotFound
	}
	if j := d.indexOf(record.Location); j >= 0 && j != i {
		return nil, ErrCityAlreadyAdded
	}

	if strings.EqualFold(d.selected, current.Location) {
		d.selected = record.Location
	}
	d.cities[i] = record

	return record, nil
}

// Distances returns the distance from the given city to every other city on
// the dashboard, nearest first.
func (d *Dashboard) Distances(name string) ([]model.CityDistance, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	i := d.indexOf(name)
	if i < 0 {
		return nil, ErrCityNotFound
	}

	from := haversine.Coord{Lat: d.cities[i].Coord.Lat, Lon: d.cities[i].Coord.Lon}

	distances := make([]model.CityDistance, 0, len(d.cities)-1)
	for j, c := range d.cities {
		if j == i {
			continue
		}

		_, km := haversine.Distance(from, haversine.Coord{Lat: c.Coord.Lat, Lon: c.Coord.Lon})
		distances = append(distances, model.CityDistance{Location: c.Location, Country: c.Country, KM: km})
	}

	sort.SliceStable(distances, func(a, b int) bool {
		return distances[a].KM < distances[b].KM
	})

	return distances, nil
}

// Snapshot returns a copy of the current dashboard state.
func (d *Dashboard) Snapshot() *model.Dashboard {
	d.mu.RLock()
	defer d.mu.RUnlock()

	snapshot := &model.Dashboard{
		Cities:  make([]*model.WeatherRecord, len(d.cities)),
		View:    model.ViewDashboard,
		Loading: d.loading,
		Busy:    d.busy,
	}
	copy(snapshot.Cities, d.cities)

	if i := d.indexOf(d.selected); d.selected != "" && i >= 0 {
		snapshot.Selected = d.cities[i]
		snapshot.View = model.ViewDetail
	}

	return snapshot
}

// fetch calls the fetcher and sorts its failures: provider errors are passed
// through, anything else is logged and reported as ErrFetchFailed.
func (d *Dashboard) fetch(ctx context.Context, city string) (*model.WeatherRecord, error) {
	record, err := d.fetcher.Fetch(ctx, city)

	var providerErr *model.ProviderError
	if errors.As(err, &providerErr) {
		logger.WithFields(logger.Fields{"city": city, "status": providerErr.StatusCode}).Warn(providerErr.Message)
		return nil, providerErr
	}
	if err != nil {
		logger.Error(fmt.Errorf("failed to fetch weather for %q: %w", city, err))
		return nil, ErrFetchFailed
	}
	if record == nil {
		logger.Error(fmt.Errorf("empty weather record for %q", city))
		return nil, ErrFetchFailed
	}

	return record, nil
}

func (d *Dashboard) setLoading(loading bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.loading = loading
}

// indexOf finds a city by location, ignoring case. Callers hold the lock.
func (d *Dashboard) indexOf(name string) int {
	name = strings.TrimSpace(name)
	for i, c := range d.cities {
		if strings.EqualFold(c.Location, name) {
			return i
		}
	}
	return -1
}
