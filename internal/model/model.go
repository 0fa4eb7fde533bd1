package model

import (
	"errors"
	"fmt"
	"time"
)

// Dashboard errors.
var (
	ErrEmptyCityName    = errors.New("enter city name")
	ErrCityAlreadyAdded = errors.New("city already added")
	ErrBusy             = errors.New("another city is being added, please wait")
	ErrCityNotFound     = errors.New("city is not on the dashboard")
	ErrFetchFailed      = errors.New("failed to fetch weather data")
)

// IconCategory is one of the six condition icons the dashboard can show.
type IconCategory string

// Icon categories.
const (
	IconClear   IconCategory = "clear"
	IconClouds  IconCategory = "clouds"
	IconDrizzle IconCategory = "drizzle"
	IconRain    IconCategory = "rain"
	IconSnow    IconCategory = "snow"
	IconWind    IconCategory = "wind"

	// DefaultIcon is used for condition codes missing from the lookup.
	DefaultIcon = IconClear
)

// IconCategories lists every known icon category.
var IconCategories = []IconCategory{IconClear, IconClouds, IconDrizzle, IconRain, IconSnow, IconWind}

// Valid reports whether c is a known icon category.
func (c IconCategory) Valid() bool {
	for _, known := range IconCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Coord is a geographic position in decimal degrees.
type Coord struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// WeatherRecord is the normalized current conditions for one city.
// Records are never modified after creation.
type WeatherRecord struct {
	Location     string       `json:"location"`
	Country      string       `json:"country"`
	Description  string       `json:"description"`
	Icon         IconCategory `json:"icon"`
	Temperature  int          `json:"temperature"`
	TempMin      int          `json:"tempMin"`
	TempMax      int          `json:"tempMax"`
	Humidity     int          `json:"humidity"`
	Pressure     int          `json:"pressure"`
	WindSpeed    float64      `json:"windSpeed"`
	WindDeg      int          `json:"windDeg"`
	VisibilityKM float64      `json:"visibility"`
	Sunrise      string       `json:"sunrise"`
	Sunset       string       `json:"sunset"`
	Date         string       `json:"date"`
	Coord        Coord        `json:"coord"`
	FetchedAt    time.Time    `json:"fetchedAt"`
}

// View is the page the dashboard currently shows.
type View string

// Dashboard views.
const (
	ViewDashboard View = "dashboard"
	ViewDetail    View = "detail"
)

// Dashboard is a point-in-time copy of the dashboard state.
type Dashboard struct {
	Cities   []*WeatherRecord `json:"cities"`
	Selected *WeatherRecord   `json:"selected,omitempty"`
	View     View             `json:"view"`
	Loading  bool             `json:"loading"`
	Busy     bool             `json:"busy"`
}

// CityDistance is the great-circle distance to another city on the dashboard.
type CityDistance struct {
	Location string  `json:"location"`
	Country  string  `json:"country"`
	KM       float64 `json:"km"`
}

// CityRequest contains add/select request parameters.
type CityRequest struct {
	City string `json:"city"`
}

// ProviderError is a non-success answer from the weather provider.
type ProviderError struct {
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider responded %d: %s", e.StatusCode, e.Message)
}
