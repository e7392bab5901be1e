package controllersfx

import (
	"go.uber.org/fx"

	"tripscout/internal/api/controllers"
)

var Module = fx.Provide(
	controllers.NewAttractionsController,
	controllers.NewTravelController,
)
