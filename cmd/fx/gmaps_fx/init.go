package gmapsfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"tripscout/internal/config"
	"tripscout/internal/gmaps"
	"tripscout/pkg/memcache"
)

var Module = fx.Provide(
	provideClient,
	provideGeocoder,
	providePlaceSearcher,
	provideDirections,
)

func provideClient(cfg *config.Config, log *zap.Logger) *gmaps.Client {
	return gmaps.NewClient(cfg.Maps, memcache.NewGeocodeCache(), log)
}

func provideGeocoder(client *gmaps.Client) gmaps.Geocoder {
	return client
}

func providePlaceSearcher(client *gmaps.Client) gmaps.PlaceSearcher {
	return client
}

func provideDirections(client *gmaps.Client) gmaps.DirectionsProvider {
	return client
}
