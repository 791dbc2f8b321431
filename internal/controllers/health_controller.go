package controllers

import (
	"net/http"
	"time"

	json "github.com/goccy/go-json"

	"marinecast/internal/services"
)

type HealthController struct {
	service   services.ForecastServiceInterface
	startTime time.Time
}

type healthResponse struct {
	Status          string  `json:"status"`
	Uptime          string  `json:"uptime"`
	UptimeSeconds   float64 `json:"uptime_seconds"`
	Zones           int     `json:"zones"`
	ZonesWithData   int     `json:"zones_with_data"`
	RefreshSuccess  int64   `json:"refresh_successes"`
	RefreshFailures int64   `json:"refresh_failures"`
}

func (hc *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	uptime := time.Since(hc.startTime)
	successes, failures := hc.service.RefreshTotals()

	resp := healthResponse{
		Status:          "ok",
		Uptime:          uptime.Round(time.Second).String(),
		UptimeSeconds:   uptime.Seconds(),
		Zones:           len(hc.service.Zones()),
		ZonesWithData:   hc.service.RecordCount(),
		RefreshSuccess:  successes,
		RefreshFailures: failures,
	}

	gson, err := json.Marshal(resp)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

func NewHealthController(service services.ForecastServiceInterface) *HealthController {
	return &HealthController{
		service:   service,
		startTime: time.Now(),
	}
}
