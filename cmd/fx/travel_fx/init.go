package travelfx

import (
	"go.uber.org/fx"

	"tripscout/internal/services"
)

var Module = fx.Provide(services.NewTravelService)
