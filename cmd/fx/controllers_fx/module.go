package controllersfx

import (
	"go.uber.org/fx"

	"yatra/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewItineraryController),
	fx.Provide(controllers.NewPlacesController),
	fx.Provide(controllers.NewTransportController))
