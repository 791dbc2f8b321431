package forecast

import (
	"errors"
	"fmt"

	"marinecast/internal/models"
)

// ErrZoneNotFound is returned for zone codes absent from the registry. The
// check happens before any fetch is attempted.
var ErrZoneNotFound = errors.New("zone not found")

// ErrUnavailable is returned when a zone has no record ever and the current
// refresh failed. It is the only hard failure surfaced to the API layer.
var ErrUnavailable = errors.New("forecast currently unavailable")

type ParseReason string

const (
	HeaderMissing ParseReason = "header_missing"
	EmptyInput    ParseReason = "empty_input"
)

// ParseError makes a whole record unusable. Field-level anomalies degrade to
// nulls instead and never produce a ParseError.
type ParseError struct {
	Zone   models.ZoneCode
	Reason ParseReason
	Detail string
}

func (e *ParseError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("parse %s: %s", e.Zone, e.Reason)
	}
	return fmt.Sprintf("parse %s: %s (%s)", e.Zone, e.Reason, e.Detail)
}

type FetchErrorKind string

const (
	FetchTimeout FetchErrorKind = "timeout"
	FetchHTTP    FetchErrorKind = "http"
	FetchNetwork FetchErrorKind = "network"
)

type FetchError struct {
	Zone   models.ZoneCode
	Kind   FetchErrorKind
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Kind == FetchHTTP {
		return fmt.Sprintf("fetch %s: upstream status %d", e.Zone, e.Status)
	}
	return fmt.Sprintf("fetch %s: %s", e.Zone, e.Kind)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
