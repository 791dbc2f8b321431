package models

import "time"

// ForecastResponse is the API envelope for one zone's forecast. Stale means
// the latest refresh failed and Record is the last known good one.
type ForecastResponse struct {
	Record    *ForecastRecord `json:"forecast"`
	Stale     bool            `json:"stale"`
	FetchedAt time.Time       `json:"fetched_at"`
}

// ZoneResult carries either a forecast or that zone's error inside the
// all-zones response; partial results are expected.
type ZoneResult struct {
	Forecast *ForecastResponse `json:"forecast,omitempty"`
	Error    string            `json:"error,omitempty"`
}
