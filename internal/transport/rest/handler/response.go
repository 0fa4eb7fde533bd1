package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/katiamach/weather-dashboard/internal/logger"
	"github.com/katiamach/weather-dashboard/internal/model"
)

type errorResponse struct {
	Code    int
	Message string
}

// Respond is a function to send http responses.
func respond(w http.ResponseWriter, code int, payload interface{}) {
	body, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, fmt.Sprintf("can't marshal the given payload: %v", err), http.StatusInternalServerError)
		logger.Error(err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err = w.Write(body); err != nil {
		logger.Error(fmt.Errorf("can't write response: %w", err))
	}
}

// RespondErr is a function to make http error responses.
func respondErr(w http.ResponseWriter, code int, err error) {
	respErr := errorResponse{
		Code:    code,
		Message: err.Error(),
	}

	respond(w, code, respErr)
}

// respondServiceErr maps dashboard errors onto HTTP statuses.
func (s *WeatherServer) respondServiceErr(w http.ResponseWriter, r *http.Request, err error) {
	var providerErr *model.ProviderError

	switch {
	case errors.Is(err, model.ErrEmptyCityName):
		respondErr(w, http.StatusBadRequest, err)
	case errors.Is(err, model.ErrCityAlreadyAdded), errors.Is(err, model.ErrBusy):
		respondErr(w, http.StatusConflict, err)
	case errors.Is(err, model.ErrCityNotFound):
		respondErr(w, http.StatusNotFound, err)
	case errors.As(err, &providerErr):
		respondErr(w, http.StatusBadGateway, errors.New(providerErr.Message))
	case errors.Is(err, model.ErrFetchFailed):
		respondErr(w, http.StatusBadGateway, err)
	default:
		logger.WithFields(logger.Fields{"requestID": requestID(r)}).Error(err)
		respondErr(w, http.StatusInternalServerError, err)
	}
}
