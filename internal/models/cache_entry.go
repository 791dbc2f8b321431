package models

import "time"

// CacheEntry is the per-zone unit of mutation and staleness. One entry exists
// for every registered zone from process start; only the refresh orchestrator
// writes it, as a whole-entry replacement.
type CacheEntry struct {
	Zone        ZoneCode
	Record      *ForecastRecord
	FetchedAt   time.Time
	LastError   string
	LastErrorAt time.Time
	InFlight    bool
}

// HasRecord reports whether any fetch has ever succeeded for this zone.
func (e CacheEntry) HasRecord() bool {
	return e.Record != nil
}

// Age returns the entry age relative to now, or a negative duration when no
// fetch has succeeded yet.
func (e CacheEntry) Age(now time.Time) time.Duration {
	if !e.HasRecord() {
		return -1
	}
	return now.Sub(e.FetchedAt)
}

// Fresh reports whether the entry holds a record younger than maxAge.
// The boundary is exclusive: an entry exactly maxAge old is stale.
func (e CacheEntry) Fresh(now time.Time, maxAge time.Duration) bool {
	return e.HasRecord() && now.Sub(e.FetchedAt) < maxAge
}
