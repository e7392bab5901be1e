package gmaps

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"tripscout/internal/config"
	"tripscout/pkg/memcache"
	"tripscout/pkg/utils"
)

const (
	geocodeEndpoint    = "/geocode/json"
	nearbyEndpoint     = "/place/nearbysearch/json"
	directionsEndpoint = "/directions/json"
)

// Geocoder resolves a free-text place name to a coordinate.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (LatLng, error)
}

// PlaceSearcher fetches nearby points of interest, single page or paginated.
type PlaceSearcher interface {
	NearbySearch(ctx context.Context, q NearbyQuery) (NearbyPage, error)
	SearchAllPages(ctx context.Context, q NearbyQuery, maxPages int) ([]PlaceResult, error)
}

// DirectionsProvider fetches a routed path for a transport mode.
type DirectionsProvider interface {
	Directions(ctx context.Context, origin, destination, mode string) (*DirectionsRoute, error)
}

// StatusError is a provider response whose body-level status was not OK.
type StatusError struct {
	Status  string
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("provider status %s", e.Status)
	}
	return fmt.Sprintf("provider status %s: %s", e.Status, e.Message)
}

func (e *StatusError) Unwrap() error { return utils.ErrUpstream }

// Client talks to the Google Maps web service endpoints. It implements
// Geocoder, PlaceSearcher and DirectionsProvider.
type Client struct {
	http        *http.Client
	baseURL     string
	apiKey      string
	pageDelay   time.Duration
	pageRetries int
	geocache    memcache.GeocodeCache
	geocacheTTL time.Duration
	logger      *zap.Logger
}

func NewClient(cfg config.MapsConfig, geocache memcache.GeocodeCache, logger *zap.Logger) *Client {
	return &Client{
		http:        &http.Client{Timeout: cfg.HTTPTimeout},
		baseURL:     cfg.BaseURL,
		apiKey:      cfg.APIKey,
		pageDelay:   cfg.PageTokenDelay,
		pageRetries: cfg.PageTokenRetries,
		geocache:    geocache,
		geocacheTTL: cfg.GeocodeCacheTTL,
		logger:      logger,
	}
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values, out interface{}) error {
	params.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("maps http error: %w: %v", utils.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("maps bad status %s: %w", resp.Status, utils.ErrUpstream)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("maps decode: %w: %v", utils.ErrUpstream, err)
	}
	return nil
}

// sleepCtx waits for d unless the request is cancelled first.
func sleepCtx(ctx context.Context, d time.Duration) error {
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
