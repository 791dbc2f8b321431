package services

import (
	"context"
	"strings"
	"sync"

	"marinecast/internal/forecast"
	"marinecast/internal/models"
	"marinecast/internal/structures"
)

type ForecastServiceInterface interface {
	GetForecast(ctx context.Context, code string) (*models.ForecastResponse, error)
	GetAllForecasts(ctx context.Context) map[models.ZoneCode]*models.ZoneResult
	TriggerRefresh(code string) error
	CacheStatus() map[models.ZoneCode]forecast.ZoneStatus
	Zones() []models.ZoneMetadata
	RawBulletin(code string) (string, error)
	RecordCount() int
	RefreshTotals() (successes, failures int64)
}

type ForecastService struct {
	config       *structures.Config
	registry     forecast.ZoneRegistryInterface
	store        forecast.EntryStoreInterface
	orchestrator forecast.OrchestratorInterface
}

func NewForecastService(
	config *structures.Config,
	registry forecast.ZoneRegistryInterface,
	store forecast.EntryStoreInterface,
	orchestrator forecast.OrchestratorInterface,
) ForecastServiceInterface {
	return &ForecastService{
		config:       config,
		registry:     registry,
		store:        store,
		orchestrator: orchestrator,
	}
}

func normalizeZone(code string) models.ZoneCode {
	return models.ZoneCode(strings.ToLower(strings.TrimSpace(code)))
}

func (fs *ForecastService) GetForecast(ctx context.Context, code string) (*models.ForecastResponse, error) {
	zone := normalizeZone(code)

	record, stale, err := fs.orchestrator.GetFresh(ctx, zone, fs.config.Forecast.MaxAge)
	if err != nil {
		return nil, err
	}

	entry, _ := fs.store.Get(zone)
	return &models.ForecastResponse{
		Record:    record,
		Stale:     stale,
		FetchedAt: entry.FetchedAt,
	}, nil
}

// GetAllForecasts resolves every registered zone concurrently and returns
// partial results: a zone whose refresh fails contributes its error without
// affecting the others.
func (fs *ForecastService) GetAllForecasts(ctx context.Context) map[models.ZoneCode]*models.ZoneResult {
	zones := fs.registry.ListAll()
	results := make(map[models.ZoneCode]*models.ZoneResult, len(zones))

	var mu sync.Mutex
	var wg sync.WaitGroup
	for _, meta := range zones {
		wg.Add(1)
		go func(zone models.ZoneCode) {
			defer wg.Done()
			result := &models.ZoneResult{}
			if resp, err := fs.GetForecast(ctx, zone.String()); err != nil {
				result.Error = err.Error()
			} else {
				result.Forecast = resp
			}
			mu.Lock()
			results[zone] = result
			mu.Unlock()
		}(meta.Code)
	}
	wg.Wait()

	return results
}

// TriggerRefresh starts a forced refresh in the background; an empty code
// means all zones. Forced refreshes still coalesce with in-flight ones.
func (fs *ForecastService) TriggerRefresh(code string) error {
	if strings.TrimSpace(code) == "" {
		go fs.orchestrator.RefreshAll(context.Background(), true)
		return nil
	}

	zone := normalizeZone(code)
	if _, ok := fs.registry.Lookup(zone); !ok {
		return forecast.ErrZoneNotFound
	}
	go fs.orchestrator.GetFresh(context.Background(), zone, 0)
	return nil
}

func (fs *ForecastService) CacheStatus() map[models.ZoneCode]forecast.ZoneStatus {
	return fs.orchestrator.Status()
}

func (fs *ForecastService) Zones() []models.ZoneMetadata {
	return fs.registry.ListAll()
}

func (fs *ForecastService) RawBulletin(code string) (string, error) {
	zone := normalizeZone(code)
	if _, ok := fs.registry.Lookup(zone); !ok {
		return "", forecast.ErrZoneNotFound
	}
	raw, ok := fs.store.RawText(zone)
	if !ok {
		return "", forecast.ErrUnavailable
	}
	return raw, nil
}

func (fs *ForecastService) RecordCount() int {
	return fs.store.RecordCount()
}

func (fs *ForecastService) RefreshTotals() (int64, int64) {
	return fs.store.RefreshTotals()
}
