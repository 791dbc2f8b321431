package internal

import (
	"net/http"

	"marinecast/internal/controllers"
	"marinecast/internal/providers"
	"marinecast/internal/structures"
)

func InitRoutes(apiController *controllers.ApiController, conf *structures.Config) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Get("/", http.HandlerFunc(apiController.GetServiceInfo))
	routers.Get("/zones", http.HandlerFunc(apiController.GetZones))
	routers.Get("/forecast", http.HandlerFunc(apiController.GetForecast))
	routers.Get("/forecasts", http.HandlerFunc(apiController.GetAllForecasts))
	routers.Post("/refresh", http.HandlerFunc(apiController.TriggerRefresh))
	routers.Get("/status", http.HandlerFunc(apiController.GetCacheStatus))
	routers.Get("/raw", http.HandlerFunc(apiController.GetRawBulletin))
	return routers
}
