//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"

	"marinecast/internal"
	"marinecast/internal/controllers"
	"marinecast/internal/forecast"
	"marinecast/internal/providers"
	"marinecast/internal/services"
	"marinecast/internal/structures"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,

		forecast.NewClock,
		forecast.NewZoneRegistry,
		forecast.NewZstdCompressor,
		forecast.NewEntryStore,
		forecast.NewRecordCounter,
		forecast.NewTextProductFetcher,
		forecast.NewOrchestrator,
		forecast.NewScheduler,

		services.NewForecastService,
		controllers.NewApiController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}
