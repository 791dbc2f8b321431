package controllers

import (
	"errors"
	"net/http"

	json "github.com/goccy/go-json"

	"marinecast/internal/forecast"
	"marinecast/internal/models"
	"marinecast/internal/providers"
	"marinecast/internal/services"
)

type ApiController struct {
	logger  providers.Logger
	service services.ForecastServiceInterface
	cache   providers.CacheProviderInterface
}

func NewApiController(logger providers.Logger, service services.ForecastServiceInterface, cache providers.CacheProviderInterface) *ApiController {
	return &ApiController{
		logger:  logger,
		service: service,
		cache:   cache,
	}
}

func getZone(r *http.Request) string {
	return r.URL.Query().Get("zone")
}

func writeJSON(w http.ResponseWriter, status int, data []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// writeServiceError maps domain errors to API responses. Upstream error text
// never reaches the client.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, forecast.ErrZoneNotFound):
		http.Error(w, "Zone not found", http.StatusNotFound)
	case errors.Is(err, forecast.ErrUnavailable):
		http.Error(w, "Forecast currently unavailable", http.StatusServiceUnavailable)
	default:
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// serveFromCacheOrCompute returns the cached response body for cacheKey when
// present; otherwise it computes, caches and serves. Failed computations are
// never cached.
func (ac *ApiController) serveFromCacheOrCompute(w http.ResponseWriter, cacheKey string, compute func() (any, error)) {
	if data, ok := ac.cache.Get(cacheKey); ok {
		writeJSON(w, http.StatusOK, data)
		return
	}

	result, err := compute()
	if err != nil {
		writeServiceError(w, err)
		return
	}

	gson, err := json.Marshal(result)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ac.cache.Set(cacheKey, gson)
	writeJSON(w, http.StatusOK, gson)
}

func (ac *ApiController) GetServiceInfo(w http.ResponseWriter, r *http.Request) {
	gson, _ := json.Marshal(map[string]any{
		"message":         "Puget Sound Marine Forecast API",
		"version":         "1.0.0",
		"status":          "active",
		"available_zones": len(ac.service.Zones()),
	})
	writeJSON(w, http.StatusOK, gson)
}

func (ac *ApiController) GetZones(w http.ResponseWriter, r *http.Request) {
	ac.serveFromCacheOrCompute(w, "zones", func() (any, error) {
		return map[string][]models.ZoneMetadata{"zones": ac.service.Zones()}, nil
	})
}

func (ac *ApiController) GetForecast(w http.ResponseWriter, r *http.Request) {
	zone := getZone(r)
	if zone == "" {
		http.Error(w, "Missing zone parameter", http.StatusBadRequest)
		return
	}
	ac.serveFromCacheOrCompute(w, "forecast:"+zone, func() (any, error) {
		return ac.service.GetForecast(r.Context(), zone)
	})
}

func (ac *ApiController) GetAllForecasts(w http.ResponseWriter, r *http.Request) {
	ac.serveFromCacheOrCompute(w, "forecasts", func() (any, error) {
		return ac.service.GetAllForecasts(r.Context()), nil
	})
}

func (ac *ApiController) TriggerRefresh(w http.ResponseWriter, r *http.Request) {
	zone := getZone(r)
	if err := ac.service.TriggerRefresh(zone); err != nil {
		writeServiceError(w, err)
		return
	}

	ac.logger.Infof(providers.TypePost, "manual refresh accepted, zone=%q", zone)
	gson, _ := json.Marshal(map[string]string{"status": "accepted"})
	writeJSON(w, http.StatusAccepted, gson)
}

func (ac *ApiController) GetCacheStatus(w http.ResponseWriter, r *http.Request) {
	gson, err := json.Marshal(ac.service.CacheStatus())
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, gson)
}

func (ac *ApiController) GetRawBulletin(w http.ResponseWriter, r *http.Request) {
	zone := getZone(r)
	if zone == "" {
		http.Error(w, "Missing zone parameter", http.StatusBadRequest)
		return
	}

	raw, err := ac.service.RawBulletin(zone)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(raw))
}
