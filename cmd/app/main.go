package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"roamio/cmd/fx/controllers_fx"
	"roamio/cmd/fx/db_fx"
	"roamio/cmd/fx/geo_fx"
	"roamio/cmd/fx/planner_fx"
	"roamio/cmd/fx/trip_fx"
	"roamio/internal/api/controllers"
	"roamio/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment")
	}

	app := fx.New(
		db_fx.Module,
		geo_fx.Module,
		planner_fx.Module,
		trip_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(tripController *controllers.TripController) *gin.Engine {
	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, tripController)

	return r
}

func RegisterRoutes(r *gin.Engine, tripController *controllers.TripController) {
	trips := r.Group("/trips")
	trips.Use(middleware.JWTAuthMiddleware())
	trips.POST("/generate-trip-plan", tripController.GenerateTripPlan)
	trips.POST("/calculate-trip-distance", tripController.CalculateTripDistance)
	trips.GET("/get-trip-by-id/:tripId", tripController.GetTripById)
	trips.GET("/get-trips-by-userid", tripController.GetTripsByUserId)
}
