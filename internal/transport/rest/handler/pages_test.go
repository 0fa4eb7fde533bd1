package handler

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	"github.com/tj/assert"

	"github.com/katiamach/weather-dashboard/internal/model"
	mock "github.com/katiamach/weather-dashboard/internal/transport/rest/handler/mock"
	"github.com/katiamach/weather-dashboard/internal/view"
)

func newPageServer(t *testing.T) (*WeatherServer, *mock.MockDashboard) {
	t.Helper()

	pages, err := view.New()
	assert.Nil(t, err)

	ctrl := gomock.NewController(t)
	mockDashboard := mock.NewMockDashboard(ctrl)

	return NewWeatherServer(mockDashboard, pages), mockDashboard
}

func postForm(target string, form url.Values) *http.Request {
	r := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

func TestIndexHandlerDashboard(t *testing.T) {
	s, mockDashboard := newPageServer(t)

	mockDashboard.EXPECT().Snapshot().Return(&model.Dashboard{
		Cities: []*model.WeatherRecord{{Location: "Colombo", Country: "LK", Description: "few clouds", Icon: model.IconClouds}},
		View:   model.ViewDashboard,
	})

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/?notice=already-added", nil)

	s.IndexHandler(w, r)

	res := w.Result()
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "text/html; charset=utf-8", res.Header.Get("Content-Type"))

	body, err := io.ReadAll(res.Body)
	assert.Nil(t, err)
	assert.Contains(t, string(body), "Colombo, LK")
	assert.Contains(t, string(body), "Few clouds")
	assert.Contains(t, string(body), "City already added!")
}

func TestIndexHandlerDetail(t *testing.T) {
	s, mockDashboard := newPageServer(t)

	boston := &model.WeatherRecord{Location: "Boston", Country: "US", Description: "clear sky"}
	mockDashboard.EXPECT().Snapshot().Return(&model.Dashboard{
		Cities:   []*model.WeatherRecord{boston},
		Selected: boston,
		View:     model.ViewDetail,
	})
	mockDashboard.EXPECT().Distances("Boston").Return([]model.CityDistance{{Location: "Tokyo", Country: "JP", KM: 10800}}, nil)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	s.IndexHandler(w, r)

	body, err := io.ReadAll(w.Result().Body)
	assert.Nil(t, err)
	assert.Contains(t, string(body), `class="back-btn"`)
	assert.Contains(t, string(body), "Tokyo, JP: 10800 km")
	assert.NotContains(t, string(body), `class="search-container"`)
}

func TestAddCityFormHandler(t *testing.T) {
	cases := []struct {
		name           string
		serviceErr     error
		expectedNotice string
	}{
		{
			name: "ok",
		},
		{
			name:           "empty",
			serviceErr:     model.ErrEmptyCityName,
			expectedNotice: "Enter City Name",
		},
		{
			name:           "duplicate",
			serviceErr:     model.ErrCityAlreadyAdded,
			expectedNotice: "City already added!",
		},
		{
			name:           "busy",
			serviceErr:     model.ErrBusy,
			expectedNotice: "Please wait, a city is still loading",
		},
		{
			name:           "provider error",
			serviceErr:     &model.ProviderError{StatusCode: http.StatusNotFound, Message: "city not found"},
			expectedNotice: "city not found",
		},
		{
			name:       "fetch failed is not shown",
			serviceErr: model.ErrFetchFailed,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, mockDashboard := newPageServer(t)

			mockDashboard.EXPECT().AddCity(gomock.Any(), "Paris").Return(nil, tc.serviceErr)

			w := httptest.NewRecorder()
			s.AddCityFormHandler(w, postForm("/cities", url.Values{"city": {"Paris"}}))

			res := w.Result()
			assert.Equal(t, http.StatusSeeOther, res.StatusCode)

			if tc.expectedNotice == "" {
				assert.Equal(t, "/", res.Header.Get("Location"))
				return
			}

			location, err := url.Parse(res.Header.Get("Location"))
			assert.Nil(t, err)
			assert.Equal(t, "/", location.Path)
			assert.Equal(t, tc.expectedNotice, s.notices.take(location.Query().Get("notice")))
		})
	}
}

func TestProviderNoticeIsShownOnce(t *testing.T) {
	s, mockDashboard := newPageServer(t)

	mockDashboard.EXPECT().AddCity(gomock.Any(), "Atlantis").
		Return(nil, &model.ProviderError{StatusCode: http.StatusNotFound, Message: "city not found"})
	mockDashboard.EXPECT().Snapshot().Return(&model.Dashboard{View: model.ViewDashboard}).Times(2)

	w := httptest.NewRecorder()
	s.AddCityFormHandler(w, postForm("/cities", url.Values{"city": {"Atlantis"}}))
	location := w.Result().Header.Get("Location")
	assert.NotContains(t, location, "city+not+found")

	w = httptest.NewRecorder()
	s.IndexHandler(w, httptest.NewRequest(http.MethodGet, location, nil))
	body, err := io.ReadAll(w.Result().Body)
	assert.Nil(t, err)
	assert.Contains(t, string(body), "city not found")

	w = httptest.NewRecorder()
	s.IndexHandler(w, httptest.NewRequest(http.MethodGet, location, nil))
	body, err = io.ReadAll(w.Result().Body)
	assert.Nil(t, err)
	assert.NotContains(t, string(body), "city not found")
}

func TestIndexHandlerIgnoresUnknownNotice(t *testing.T) {
	s, mockDashboard := newPageServer(t)

	mockDashboard.EXPECT().Snapshot().Return(&model.Dashboard{View: model.ViewDashboard})

	w := httptest.NewRecorder()
	s.IndexHandler(w, httptest.NewRequest(http.MethodGet, "/?notice=Your+account+is+locked", nil))

	body, err := io.ReadAll(w.Result().Body)
	assert.Nil(t, err)
	assert.NotContains(t, string(body), "Your account is locked")
	assert.NotContains(t, string(body), `class="notice"`)
}

func TestCardFormHandlers(t *testing.T) {
	s, mockDashboard := newPageServer(t)

	gomock.InOrder(
		mockDashboard.EXPECT().SelectCity("Tokyo").Return(&model.WeatherRecord{Location: "Tokyo"}, nil),
		mockDashboard.EXPECT().DeselectCity(),
		mockDashboard.EXPECT().RemoveCity("Tokyo").Return(nil),
		mockDashboard.EXPECT().RefreshCity(gomock.Any(), "Tokyo").Return(nil, model.ErrCityNotFound),
	)

	vars := map[string]string{"name": "Tokyo"}

	w := httptest.NewRecorder()
	s.SelectCityFormHandler(w, mux.SetURLVars(postForm("/cities/Tokyo/select", nil), vars))
	assert.Equal(t, "/", w.Result().Header.Get("Location"))

	w = httptest.NewRecorder()
	s.DeselectCityFormHandler(w, postForm("/selection/clear", nil))
	assert.Equal(t, "/", w.Result().Header.Get("Location"))

	w = httptest.NewRecorder()
	s.RemoveCityFormHandler(w, mux.SetURLVars(postForm("/cities/Tokyo/remove", nil), vars))
	assert.Equal(t, "/", w.Result().Header.Get("Location"))

	w = httptest.NewRecorder()
	s.RefreshCityFormHandler(w, mux.SetURLVars(postForm("/cities/Tokyo/refresh", nil), vars))
	assert.Equal(t, "/?notice=not-found", w.Result().Header.Get("Location"))
}

func TestFormHandlersUnescapeSlashedName(t *testing.T) {
	s, mockDashboard := newPageServer(t)

	gomock.InOrder(
		mockDashboard.EXPECT().SelectCity("Biel/Bienne").Return(&model.WeatherRecord{Location: "Biel/Bienne"}, nil),
		mockDashboard.EXPECT().RemoveCity("Biel/Bienne").Return(nil),
	)

	vars := map[string]string{"name": "Biel%2FBienne"}

	w := httptest.NewRecorder()
	s.SelectCityFormHandler(w, mux.SetURLVars(postForm("/cities/Biel%2FBienne/select", nil), vars))
	assert.Equal(t, "/", w.Result().Header.Get("Location"))

	w = httptest.NewRecorder()
	s.RemoveCityFormHandler(w, mux.SetURLVars(postForm("/cities/Biel%2FBienne/remove", nil), vars))
	assert.Equal(t, "/", w.Result().Header.Get("Location"))
}
