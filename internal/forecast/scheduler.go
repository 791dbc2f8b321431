package forecast

import (
	"context"
	"sync"

	"github.com/roylee0704/gron"

	"marinecast/internal/forecast/interfaces"
	"marinecast/internal/providers"
	"marinecast/internal/structures"
)

// Scheduler drives the periodic refresh-all sweep. It goes through the
// orchestrator's public entry point exactly as an API caller would, so
// scheduled sweeps and on-demand refreshes coalesce on the same flights.
type Scheduler struct {
	config       *structures.Config
	logger       providers.Logger
	orchestrator OrchestratorInterface
	cron         *gron.Cron
	opsMu        sync.Mutex
}

func (s *Scheduler) Init() {
	s.cron = gron.New()
	interval := s.config.Forecast.RefreshInterval

	s.cron.AddFunc(gron.Every(interval), func() {
		s.opsMu.Lock()
		defer s.opsMu.Unlock()

		s.logger.Infof(providers.TypeFetch, "Refreshing all zones...")
		s.orchestrator.RefreshAll(context.Background(), false)
		s.logger.Infof(providers.TypeFetch, "Refresh sweep complete")
	})

	s.cron.Start()

	// Warm the cache once at startup so the first requests don't all pay
	// the upstream latency.
	go func() {
		s.opsMu.Lock()
		defer s.opsMu.Unlock()
		s.orchestrator.RefreshAll(context.Background(), false)
	}()
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

func NewScheduler(config *structures.Config, logger providers.Logger, orchestrator OrchestratorInterface) interfaces.SchedulerInterface {
	return &Scheduler{
		config:       config,
		logger:       logger,
		orchestrator: orchestrator,
	}
}
