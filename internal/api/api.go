package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/katiamach/weather-dashboard/internal/config"
	"github.com/katiamach/weather-dashboard/internal/logger"
	"github.com/katiamach/weather-dashboard/internal/provider/openweather"
	"github.com/katiamach/weather-dashboard/internal/service"
	"github.com/katiamach/weather-dashboard/internal/transport/rest/handler"
	"github.com/katiamach/weather-dashboard/internal/view"
)

const shutdownTimeout = 10 * time.Second

// RunAPI runs the weather dashboard until SIGINT or SIGTERM.
func RunAPI(cfg *config.Config) error {
	logger.SetLevel(cfg.LogLevel)

	dashboard, router, err := newApp(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cities := cfg.DefaultCities
	if len(cities) == 0 {
		cities = service.DefaultCities
	}
	go dashboard.LoadDefaults(ctx, cities)

	accessLog := logger.Writer()
	defer accessLog.Close()

	srv := &http.Server{
		Addr:    ":" + cfg.HTTP.Port,
		Handler: handlers.CombinedLoggingHandler(accessLog, router),
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error(fmt.Errorf("failed to shut down: %w", err))
		}
	}()

	logger.Infof("Starting weather dashboard at port %s", cfg.HTTP.Port)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	logger.Info("Weather dashboard stopped")
	return nil
}

func newApp(cfg *config.Config) (*service.Dashboard, http.Handler, error) {
	dashboard := service.New(newFetcher(cfg.Provider))

	pages, err := view.New()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load pages: %w", err)
	}

	server := handler.NewWeatherServer(dashboard, pages)

	var h http.Handler = newRouter(server)
	if cfg.HTTP.Origin != "" {
		h = handlers.CORS(setupCorsOptions(cfg.HTTP.Origin)...)(h)
	}
	h = handlers.RecoveryHandler(handlers.RecoveryLogger(recoveryLogger{}))(h)

	return dashboard, h, nil
}

func newFetcher(cfg config.ProviderConfig) service.Fetcher {
	client := openweather.NewClient(
		cfg.APIKey,
		openweather.WithBaseURL(cfg.BaseURL),
		openweather.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
	)

	if cfg.RateLimit > 0 {
		return openweather.NewRateLimited(client, cfg.RateLimit, cfg.Burst)
	}

	return client
}

func newRouter(server *handler.WeatherServer) *mux.Router {
	r := mux.NewRouter().UseEncodedPath()
	r.Use(handler.RequestID)

	r.HandleFunc("/", server.IndexHandler).Methods(http.MethodGet)
	r.HandleFunc("/cities", server.AddCityFormHandler).Methods(http.MethodPost)
	r.HandleFunc("/cities/{name}/remove", server.RemoveCityFormHandler).Methods(http.MethodPost)
	r.HandleFunc("/cities/{name}/select", server.SelectCityFormHandler).Methods(http.MethodPost)
	r.HandleFunc("/cities/{name}/refresh", server.RefreshCityFormHandler).Methods(http.MethodPost)
	r.HandleFunc("/selection/clear", server.DeselectCityFormHandler).Methods(http.MethodPost)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", server.HealthHandler).Methods(http.MethodGet)
	api.HandleFunc("/cities", server.GetCitiesHandler).Methods(http.MethodGet)
	api.HandleFunc("/cities", server.AddCityHandler).Methods(http.MethodPost)
	api.HandleFunc("/cities/{name}", server.RemoveCityHandler).Methods(http.MethodDelete)
	api.HandleFunc("/cities/{name}/refresh", server.RefreshCityHandler).Methods(http.MethodPost)
	api.HandleFunc("/cities/{name}/distances", server.GetDistancesHandler).Methods(http.MethodGet)
	api.HandleFunc("/selection", server.SelectCityHandler).Methods(http.MethodPut)
	api.HandleFunc("/selection", server.DeselectCityHandler).Methods(http.MethodDelete)

	return r
}

type recoveryLogger struct{}

func (recoveryLogger) Println(v ...interface{}) {
	logger.Error(fmt.Errorf("recovered from panic: %s", fmt.Sprint(v...)))
}
