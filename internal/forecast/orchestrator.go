package forecast

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"marinecast/internal/models"
	"marinecast/internal/providers"
	"marinecast/internal/structures"
)

// ZoneStatus is the per-zone diagnostic view exposed by Status.
type ZoneStatus struct {
	Zone        models.ZoneCode `json:"zone"`
	Name        string          `json:"name"`
	HasRecord   bool            `json:"has_record"`
	LastSuccess *time.Time      `json:"last_success,omitempty"`
	AgeSeconds  *float64        `json:"age_seconds,omitempty"`
	LastError   string          `json:"last_error,omitempty"`
	LastErrorAt *time.Time      `json:"last_error_at,omitempty"`
	InFlight    bool            `json:"in_flight"`
}

type OrchestratorInterface interface {
	// GetFresh returns the zone's record, refreshing it when its age reaches
	// maxAge. The bool reports staleness: true means the latest refresh
	// failed and the returned record is the last known good one.
	GetFresh(ctx context.Context, zone models.ZoneCode, maxAge time.Duration) (*models.ForecastRecord, bool, error)
	RefreshAll(ctx context.Context, force bool)
	Status() map[models.ZoneCode]ZoneStatus
}

// flight is one in-progress fetch+parse. Concurrent callers for the same zone
// attach to it and share its outcome instead of starting their own fetch.
type flight struct {
	done   chan struct{}
	record *models.ForecastRecord
	err    error
}

type Orchestrator struct {
	config   *structures.Config
	logger   providers.Logger
	registry ZoneRegistryInterface
	store    EntryStoreInterface
	fetcher  FetcherInterface
	metrics  providers.MetricsProviderInterface
	clock    clockwork.Clock

	mu      sync.Mutex
	flights map[models.ZoneCode]*flight
}

func NewOrchestrator(
	config *structures.Config,
	logger providers.Logger,
	registry ZoneRegistryInterface,
	store EntryStoreInterface,
	fetcher FetcherInterface,
	metrics providers.MetricsProviderInterface,
	clock clockwork.Clock,
) OrchestratorInterface {
	return &Orchestrator{
		config:   config,
		logger:   logger,
		registry: registry,
		store:    store,
		fetcher:  fetcher,
		metrics:  metrics,
		clock:    clock,
		flights:  make(map[models.ZoneCode]*flight),
	}
}

func (o *Orchestrator) GetFresh(ctx context.Context, zone models.ZoneCode, maxAge time.Duration) (*models.ForecastRecord, bool, error) {
	if _, ok := o.registry.Lookup(zone); !ok {
		return nil, false, ErrZoneNotFound
	}

	entry, _ := o.store.Get(zone)
	if entry.Fresh(o.clock.Now(), maxAge) {
		return entry.Record, false, nil
	}

	f, leader := o.join(zone)
	if leader {
		o.runFlight(zone, f)
	} else {
		select {
		case <-f.done:
		case <-ctx.Done():
			// Abandon the wait without cancelling the underlying fetch;
			// it will still complete and update the cache.
			if entry.HasRecord() {
				return entry.Record, true, nil
			}
			return nil, false, ctx.Err()
		}
	}

	if f.err == nil {
		return f.record, false, nil
	}
	if entry.HasRecord() {
		return entry.Record, true, nil
	}
	return nil, false, ErrUnavailable
}

// RefreshAll sweeps every registered zone concurrently. Zone outcomes are
// independent: one upstream failure neither aborts nor delays the others.
// force bypasses the freshness check but still coalesces with any in-flight
// refresh for the zone.
func (o *Orchestrator) RefreshAll(ctx context.Context, force bool) {
	maxAge := o.config.Forecast.MaxAge
	if force {
		maxAge = 0
	}

	var wg sync.WaitGroup
	for _, meta := range o.registry.ListAll() {
		wg.Add(1)
		go func(zone models.ZoneCode) {
			defer wg.Done()
			if _, _, err := o.GetFresh(ctx, zone, maxAge); err != nil {
				o.logger.Warnf(providers.TypeFetch, "refresh %s: %s", zone, err)
			}
		}(meta.Code)
	}
	wg.Wait()
}

func (o *Orchestrator) Status() map[models.ZoneCode]ZoneStatus {
	now := o.clock.Now()
	snapshot := o.store.Snapshot()

	out := make(map[models.ZoneCode]ZoneStatus, len(snapshot))
	for zone, entry := range snapshot {
		meta, _ := o.registry.Lookup(zone)
		status := ZoneStatus{
			Zone:      zone,
			Name:      meta.Name,
			HasRecord: entry.HasRecord(),
			LastError: entry.LastError,
			InFlight:  entry.InFlight,
		}
		if entry.HasRecord() {
			fetchedAt := entry.FetchedAt
			age := now.Sub(fetchedAt).Seconds()
			status.LastSuccess = &fetchedAt
			status.AgeSeconds = &age
		}
		if !entry.LastErrorAt.IsZero() {
			errorAt := entry.LastErrorAt
			status.LastErrorAt = &errorAt
		}
		out[zone] = status
	}
	return out
}

// join attaches to the zone's in-flight refresh, creating one when none
// exists. Flight creation and the entry's in-flight marker are set under the
// same lock, so a racing second caller always observes the first's marker.
func (o *Orchestrator) join(zone models.ZoneCode) (*flight, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if f, ok := o.flights[zone]; ok {
		return f, false
	}
	f := &flight{done: make(chan struct{})}
	o.flights[zone] = f
	o.store.SetInFlight(zone, true)
	return f, true
}

// runFlight executes the fetch+parse for one flight and fans the outcome out
// to every attached caller. The fetch runs on its own bounded context, never
// a caller's, so client-side abandonment cannot cancel it; the timeout itself
// is a FAILED outcome that releases the flight.
func (o *Orchestrator) runFlight(zone models.ZoneCode, f *flight) {
	start := o.clock.Now()

	ctx, cancel := context.WithTimeout(context.Background(), o.config.Forecast.FetchTimeout)
	raw, err := o.fetcher.Fetch(ctx, zone)
	cancel()

	var record *models.ForecastRecord
	if err == nil {
		record, err = Parse(raw, zone)
		if err != nil {
			o.metrics.IncParseFailures()
		}
	}

	now := o.clock.Now()
	o.metrics.ObserveFetchDuration(now.Sub(start))

	if err != nil {
		o.metrics.IncFetches("failure")
		o.store.PutError(zone, err, now)
		o.logger.Warnf(providers.TypeFetch, "zone %s refresh failed: %s", zone, err)
	} else {
		o.metrics.IncFetches("success")
		o.store.PutRecord(zone, record, raw, now)
		o.logger.Infof(providers.TypeFetch, "zone %s refreshed, %d periods", zone, len(record.Periods))
	}

	// The store commit above must be visible before the flight closes and
	// the zone reads as idle again.
	o.mu.Lock()
	f.record = record
	f.err = err
	delete(o.flights, zone)
	o.store.SetInFlight(zone, false)
	o.mu.Unlock()
	close(f.done)
}
