package models

import (
	"regexp"
	"time"
)

// ZoneCode identifies a marine forecast zone, e.g. "pzz135".
// Codes are stored lowercase; Valid does not imply the zone is registered.
type ZoneCode string

var zoneCodePattern = regexp.MustCompile(`^[a-z]{3}[0-9]{3}$`)

func (z ZoneCode) Valid() bool {
	return zoneCodePattern.MatchString(string(z))
}

func (z ZoneCode) String() string {
	return string(z)
}

// ZoneMetadata is one row of the static zone registry.
type ZoneMetadata struct {
	Code ZoneCode `json:"code"`
	Name string   `json:"name"`
}

// Range is a normalized numeric span extracted from bulletin text.
// Low equals High when the source gave a single value.
type Range struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
	Unit string  `json:"unit"`
}

// WindData holds the structured wind fields of one forecast period.
type WindData struct {
	Direction string   `json:"direction"`
	Speed     *Range   `json:"speed,omitempty"`
	Gust      *float64 `json:"gust,omitempty"`
	Trend     string   `json:"trend,omitempty"`
	RawText   string   `json:"raw_text"`
}

// ForecastPeriod is one named time window within a bulletin. A period whose
// wind fields could not be extracted is kept with Partial set rather than
// dropped.
type ForecastPeriod struct {
	Name    string    `json:"name"`
	Wind    *WindData `json:"wind,omitempty"`
	Waves   *Range    `json:"waves,omitempty"`
	Notes   string    `json:"notes,omitempty"`
	Partial bool      `json:"partial,omitempty"`
	RawText string    `json:"raw_text"`
}

// ForecastRecord is one zone's parsed bulletin. Immutable after creation;
// a refresh produces a new record.
type ForecastRecord struct {
	Zone    ZoneCode         `json:"zone"`
	Name    string           `json:"name"`
	Issued  time.Time        `json:"issued"`
	Expires time.Time        `json:"expires,omitempty"`
	Periods []ForecastPeriod `json:"periods"`
	RawText string           `json:"-"`
}
