package geo_fx

import (
	"os"

	"go.uber.org/fx"

	"roamio/internal/services"
	"roamio/pkg/memcache"
)

var Module = fx.Provide(
	provideGeocoder,
	provideRouteClient)

// Both caches are built once at startup and handed to the clients, so the
// 7-day TTL policy lives in one place and tests can swap the stores.
func provideGeocoder() services.GeocoderServiceInterface {
	cache := memcache.NewStore[services.GeoPoint]()
	return services.NewNominatimGeocoder(
		cache,
		os.Getenv("GEOCODER_BASE_URL"),
		getEnvWithDefault("GEOCODER_COUNTRY_BIAS", "Sri Lanka"),
	)
}

func provideRouteClient() services.RouteServiceInterface {
	cache := memcache.NewStore[services.RouteInfo]()
	return services.NewOSRMRouteClient(cache, os.Getenv("OSRM_BASE_URL"))
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
