package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	arrangefx "yatra/cmd/fx/arrange_fx"
	controllersfx "yatra/cmd/fx/controllers_fx"
	dbfx "yatra/cmd/fx/db_fx"
	placesfx "yatra/cmd/fx/places_fx"
	plannerfx "yatra/cmd/fx/planner_fx"
	"yatra/internal/api/controllers"
	"yatra/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	app := fx.New(
		dbfx.Module,
		placesfx.Module,
		plannerfx.Module,
		arrangefx.Module,
		controllersfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
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

func ProvideRouter(
	itineraryController *controllers.ItineraryController,
	placesController *controllers.PlacesController,
	transportController *controllers.TransportController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, itineraryController, placesController, transportController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	itineraryController *controllers.ItineraryController,
	placesController *controllers.PlacesController,
	transportController *controllers.TransportController) {

	itineraries := r.Group("/itineraries")
	itineraries.POST("/generate", itineraryController.GenerateItinerary)
	itineraries.POST("/validate-budget", itineraryController.ValidateBudget)
	itineraries.GET("/:id", itineraryController.GetSavedItinerary)

	places := r.Group("/places")
	places.GET("", placesController.ListPlaces)
	places.GET("/search", placesController.SearchPlaces)
	places.GET("/semantic-search", placesController.SemanticSearch)
	places.GET("/:id", placesController.GetPlaceByID)

	transport := r.Group("/transport")
	transport.GET("/estimate", transportController.GetEstimate)
}
