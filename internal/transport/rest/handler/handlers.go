package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/gorilla/mux"

	"github.com/katiamach/weather-dashboard/internal/model"
	"github.com/katiamach/weather-dashboard/internal/view"
)

//go:generate mockgen -source=handlers.go -destination=mock/mock.go Dashboard

// Dashboard provides dashboard state operations.
type Dashboard interface {
	AddCity(ctx context.Context, name string) (*model.WeatherRecord, error)
	RemoveCity(name string) error
	SelectCity(name string) (*model.WeatherRecord, error)
	DeselectCity()
	RefreshCity(ctx context.Context, name string) (*model.WeatherRecord, error)
	Distances(name string) ([]model.CityDistance, error)
	Snapshot() *model.Dashboard
}

// WeatherServer serves the dashboard pages and its JSON API.
type WeatherServer struct {
	dashboard Dashboard
	pages     *view.Renderer
	notices   *notices
}

// NewWeatherServer creates new WeatherServer.
func NewWeatherServer(dashboard Dashboard, pages *view.Renderer) *WeatherServer {
	return &WeatherServer{dashboard: dashboard, pages: pages, notices: newNotices()}
}

// GetCitiesHandler handles GetCities request.
func (s *WeatherServer) GetCitiesHandler(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, s.dashboard.Snapshot())
}

// AddCityHandler handles AddCity request.
func (s *WeatherServer) AddCityHandler(w http.ResponseWriter, r *http.Request) {
	req, err := decodeCityRequest(r)
	if err != nil {
		respondErr(w, http.StatusBadRequest, err)
		return
	}

	record, err := s.dashboard.AddCity(r.Context(), req.City)
	if err != nil {
		s.respondServiceErr(w, r, err)
		return
	}

	respond(w, http.StatusCreated, record)
}

// RemoveCityHandler handles RemoveCity request.
func (s *WeatherServer) RemoveCityHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.dashboard.RemoveCity(cityName(r)); err != nil {
		s.respondServiceErr(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RefreshCityHandler handles RefreshCity request.
func (s *WeatherServer) RefreshCityHandler(w http.ResponseWriter, r *http.Request) {
	record, err := s.dashboard.RefreshCity(r.Context(), cityName(r))
	if err != nil {
		s.respondServiceErr(w, r, err)
		return
	}

	respond(w, http.StatusOK, record)
}

// GetDistancesHandler handles GetDistances request.
func (s *WeatherServer) GetDistancesHandler(w http.ResponseWriter, r *http.Request) {
	distances, err := s.dashboard.Distances(cityName(r))
	if err != nil {
		s.respondServiceErr(w, r, err)
		return
	}

	respond(w, http.StatusOK, distances)
}

// SelectCityHandler handles SelectCity request.
func (s *WeatherServer) SelectCityHandler(w http.ResponseWriter, r *http.Request) {
	req, err := decodeCityRequest(r)
	if err != nil {
		respondErr(w, http.StatusBadRequest, err)
		return
	}

	if _, err := s.dashboard.SelectCity(req.City); err != nil {
		s.respondServiceErr(w, r, err)
		return
	}

	respond(w, http.StatusOK, s.dashboard.Snapshot())
}

// DeselectCityHandler handles DeselectCity request.
func (s *WeatherServer) DeselectCityHandler(w http.ResponseWriter, r *http.Request) {
	s.dashboard.DeselectCity()
	respond(w, http.StatusOK, s.dashboard.Snapshot())
}

// HealthHandler reports that the server is up.
func (s *WeatherServer) HealthHandler(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func decodeCityRequest(r *http.Request) (*model.CityRequest, error) {
	req := new(model.CityRequest)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		return nil, fmt.Errorf("invalid request body: %w", err)
	}

	return req, nil
}

// cityName returns the {name} route variable. Routes match on the escaped
// path, so a name holding a slash arrives as %2F.
func cityName(r *http.Request) string {
	name := mux.Vars(r)["name"]
	if unescaped, err := url.PathUnescape(name); err == nil {
		return unescaped
	}
	return name
}
