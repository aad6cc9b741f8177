package trip_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"roamio/internal/repositories"
	"roamio/internal/services"
)

var Module = fx.Provide(
	provideTripRepo,
	provideDistanceService,
	provideTripService)

func provideTripRepo(db *gorm.DB) repositories.TripRepository {
	return repositories.NewTripRepository(db)
}

func provideDistanceService(
	geocoder services.GeocoderServiceInterface,
	routes services.RouteServiceInterface,
) services.DistanceServiceInterface {
	return services.NewDistanceService(geocoder, routes)
}

func provideTripService(
	planner services.PlannerServiceInterface,
	distance services.DistanceServiceInterface,
	tripRepo repositories.TripRepository,
) services.TripServiceInterface {
	return services.NewTripService(planner, distance, tripRepo)
}
