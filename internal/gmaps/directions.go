package gmaps

import (
	"context"
	"net/url"

	"go.uber.org/zap"
)

// Directions fetches the first route between origin and destination for the
// given transport mode. Transit requests ask for a departure now so the
// provider returns departure and arrival timestamps.
func (c *Client) Directions(ctx context.Context, origin, destination, mode string) (*DirectionsRoute, error) {
	params := url.Values{}
	params.Set("origin", origin)
	params.Set("destination", destination)
	params.Set("mode", mode)
	if mode == "transit" {
		params.Set("departure_time", "now")
	}

	var payload directionsResponse
	if err := c.get(ctx, directionsEndpoint, params, &payload); err != nil {
		return nil, err
	}

	if payload.Status != "OK" || len(payload.Routes) == 0 {
		c.logger.Debug("no routes",
			zap.String("mode", mode),
			zap.String("status", payload.Status))
		return nil, &StatusError{Status: payload.Status, Message: payload.ErrorMessage}
	}

	return &payload.Routes[0], nil
}
