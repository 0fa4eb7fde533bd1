package handler

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/katiamach/weather-dashboard/internal/logger"
	"github.com/katiamach/weather-dashboard/internal/model"
	"github.com/katiamach/weather-dashboard/internal/view"
)

// IndexHandler renders the grid or the detail page, depending on the selection.
func (s *WeatherServer) IndexHandler(w http.ResponseWriter, r *http.Request) {
	page := &view.Page{
		Dashboard: s.dashboard.Snapshot(),
		Notice:    s.notices.take(r.URL.Query().Get("notice")),
	}

	if selected := page.Dashboard.Selected; selected != nil {
		distances, err := s.dashboard.Distances(selected.Location)
		if err != nil && !errors.Is(err, model.ErrCityNotFound) {
			logger.WithFields(logger.Fields{"requestID": requestID(r)}).Error(err)
		}
		page.Distances = distances
	}

	var buf bytes.Buffer
	if err := s.pages.Render(&buf, page); err != nil {
		logger.WithFields(logger.Fields{"requestID": requestID(r)}).Error(err)
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		logger.Error(fmt.Errorf("can't write page: %w", err))
	}
}

// AddCityFormHandler handles the add city form.
func (s *WeatherServer) AddCityFormHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectHome(w, r, "")
		return
	}

	_, err := s.dashboard.AddCity(r.Context(), r.PostForm.Get("city"))
	redirectHome(w, r, s.noticeFor(err))
}

// RemoveCityFormHandler handles the card close button.
func (s *WeatherServer) RemoveCityFormHandler(w http.ResponseWriter, r *http.Request) {
	err := s.dashboard.RemoveCity(cityName(r))
	redirectHome(w, r, s.noticeFor(err))
}

// SelectCityFormHandler opens the detail page of a card.
func (s *WeatherServer) SelectCityFormHandler(w http.ResponseWriter, r *http.Request) {
	_, err := s.dashboard.SelectCity(cityName(r))
	redirectHome(w, r, s.noticeFor(err))
}

// RefreshCityFormHandler fetches a city again from the detail page.
func (s *WeatherServer) RefreshCityFormHandler(w http.ResponseWriter, r *http.Request) {
	_, err := s.dashboard.RefreshCity(r.Context(), cityName(r))
	redirectHome(w, r, s.noticeFor(err))
}

// DeselectCityFormHandler goes back to the dashboard grid.
func (s *WeatherServer) DeselectCityFormHandler(w http.ResponseWriter, r *http.Request) {
	s.dashboard.DeselectCity()
	redirectHome(w, r, "")
}

// noticeFor turns a dashboard error into the notice key to redirect with.
// Fetch failures other than provider errors are not shown.
func (s *WeatherServer) noticeFor(err error) string {
	var providerErr *model.ProviderError

	switch {
	case err == nil:
		return ""
	case errors.Is(err, model.ErrEmptyCityName):
		return noticeKeyEmptyCity
	case errors.Is(err, model.ErrCityAlreadyAdded):
		return noticeKeyAlreadyAdded
	case errors.Is(err, model.ErrBusy):
		return noticeKeyBusy
	case errors.Is(err, model.ErrCityNotFound):
		return noticeKeyNotFound
	case errors.As(err, &providerErr):
		return s.notices.put(providerErr.Message)
	case errors.Is(err, model.ErrFetchFailed):
		return ""
	default:
		return s.notices.put(err.Error())
	}
}

func redirectHome(w http.ResponseWriter, r *http.Request, notice string) {
	target := "/"
	if notice != "" {
		target += "?notice=" + url.QueryEscape(notice)
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
