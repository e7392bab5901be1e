package gmaps

import (
	"context"
	"fmt"
	"net/url"

	"go.uber.org/zap"

	"tripscout/pkg/utils"
)

// Geocode resolves an address to coordinates. A provider miss (ZERO_RESULTS
// or an empty result set) is reported as ErrCityNotFound so callers can
// surface it as a not-found outcome rather than an upstream failure.
func (c *Client) Geocode(ctx context.Context, address string) (LatLng, error) {
	if c.geocache != nil {
		if lat, lng, ok := c.geocache.Get(address); ok {
			return LatLng{Lat: lat, Lng: lng}, nil
		}
	}

	params := url.Values{}
	params.Set("address", address)

	var payload geocodeResponse
	if err := c.get(ctx, geocodeEndpoint, params, &payload); err != nil {
		return LatLng{}, err
	}

	switch {
	case payload.Status == "ZERO_RESULTS" || (payload.Status == "OK" && len(payload.Results) == 0):
		return LatLng{}, fmt.Errorf("geocode %q: %w", address, utils.ErrCityNotFound)
	case payload.Status != "OK":
		c.logger.Warn("geocoding failed",
			zap.String("address", address),
			zap.String("status", payload.Status))
		return LatLng{}, &StatusError{Status: payload.Status, Message: payload.ErrorMessage}
	}

	loc := payload.Results[0].Geometry.Location
	if c.geocache != nil {
		c.geocache.Set(address, loc.Lat, loc.Lng, c.geocacheTTL)
	}
	return loc, nil
}
