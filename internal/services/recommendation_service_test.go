package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tripscout/internal/gmaps"
	"tripscout/pkg/utils"
)

type fakeMaps struct {
	geocodeFn    func(ctx context.Context, address string) (gmaps.LatLng, error)
	nearbyFn     func(ctx context.Context, q gmaps.NearbyQuery) (gmaps.NearbyPage, error)
	allPagesFn   func(ctx context.Context, q gmaps.NearbyQuery, maxPages int) ([]gmaps.PlaceResult, error)
	directionsFn func(ctx context.Context, origin, destination, mode string) (*gmaps.DirectionsRoute, error)

	nearbyCalls   []gmaps.NearbyQuery
	allPagesCalls []int
}

func (f *fakeMaps) Geocode(ctx context.Context, address string) (gmaps.LatLng, error) {
	if f.geocodeFn == nil {
		return gmaps.LatLng{}, errors.New("unexpected geocode call")
	}
	return f.geocodeFn(ctx, address)
}

func (f *fakeMaps) NearbySearch(ctx context.Context, q gmaps.NearbyQuery) (gmaps.NearbyPage, error) {
	f.nearbyCalls = append(f.nearbyCalls, q)
	if f.nearbyFn == nil {
		return gmaps.NearbyPage{}, nil
	}
	return f.nearbyFn(ctx, q)
}

func (f *fakeMaps) SearchAllPages(ctx context.Context, q gmaps.NearbyQuery, maxPages int) ([]gmaps.PlaceResult, error) {
	f.allPagesCalls = append(f.allPagesCalls, maxPages)
	if f.allPagesFn == nil {
		return nil, nil
	}
	return f.allPagesFn(ctx, q, maxPages)
}

func (f *fakeMaps) Directions(ctx context.Context, origin, destination, mode string) (*gmaps.DirectionsRoute, error) {
	if f.directionsFn == nil {
		return nil, errors.New("unexpected directions call")
	}
	return f.directionsFn(ctx, origin, destination, mode)
}

func newTestService(fake *fakeMaps) RecommendationServiceInterface {
	return NewRecommendationService(fake, fake, fake, zap.NewNop())
}

func TestNearbyRecommendations_FiltersAndRanks(t *testing.T) {
	fake := &fakeMaps{
		nearbyFn: func(ctx context.Context, q gmaps.NearbyQuery) (gmaps.NearbyPage, error) {
			return gmaps.NearbyPage{Results: []gmaps.PlaceResult{
				rawPlace("good", 4.8, 1200),
				rawPlace("weak", 3.9, 50),
			}}, nil
		},
	}

	result := newTestService(fake).NearbyRecommendations(context.Background(), 40.7580, -73.9855)

	assert.Equal(t, "nearby", result.Source)
	require.Len(t, result.Recommendations, 1)
	assert.Equal(t, "good", result.Recommendations[0].PlaceID)

	require.Len(t, fake.nearbyCalls, 1)
	assert.Equal(t, nearbyRadiusMeters, fake.nearbyCalls[0].RadiusMeters)
	assert.Equal(t, nearbyCategories, fake.nearbyCalls[0].Category)
}

func TestNearbyRecommendations_FallsBackOnUpstreamFailure(t *testing.T) {
	fake := &fakeMaps{
		nearbyFn: func(ctx context.Context, q gmaps.NearbyQuery) (gmaps.NearbyPage, error) {
			return gmaps.NearbyPage{}, utils.ErrUpstream
		},
	}

	result := newTestService(fake).NearbyRecommendations(context.Background(), 40.0, -73.0)

	assert.Equal(t, "famous", result.Source)
	assert.Len(t, result.Recommendations, 10)
}

func TestNearbyRecommendations_FallsBackOnEmptyResult(t *testing.T) {
	fake := &fakeMaps{}

	result := newTestService(fake).NearbyRecommendations(context.Background(), 40.0, -73.0)

	assert.Equal(t, "famous", result.Source)
	assert.Len(t, result.Recommendations, 10)
}

func TestCityAttractions_GeocodeFailure(t *testing.T) {
	fake := &fakeMaps{
		geocodeFn: func(ctx context.Context, address string) (gmaps.LatLng, error) {
			return gmaps.LatLng{}, utils.ErrCityNotFound
		},
	}

	result, err := newTestService(fake).CityAttractions(context.Background(), "Nowhere12345")

	require.ErrorIs(t, err, utils.ErrCityNotFound)
	assert.Empty(t, result.Attractions)
	assert.Equal(t, 0, result.Count)
	assert.Equal(t, "Nowhere12345", result.City)
}

func TestCityAttractions_AggregatesAllCategorySearches(t *testing.T) {
	fake := &fakeMaps{
		geocodeFn: func(ctx context.Context, address string) (gmaps.LatLng, error) {
			return gmaps.LatLng{Lat: 41.0, Lng: 28.9}, nil
		},
		allPagesFn: func(ctx context.Context, q gmaps.NearbyQuery, maxPages int) ([]gmaps.PlaceResult, error) {
			return []gmaps.PlaceResult{rawPlace("primary", 4.7, 2000)}, nil
		},
		nearbyFn: func(ctx context.Context, q gmaps.NearbyQuery) (gmaps.NearbyPage, error) {
			if q.Category == "museum" {
				return gmaps.NearbyPage{Results: []gmaps.PlaceResult{rawPlace("museum-1", 4.5, 600)}}, nil
			}
			return gmaps.NearbyPage{}, nil
		},
	}

	result, err := newTestService(fake).CityAttractions(context.Background(), "Istanbul")
	require.NoError(t, err)

	assert.Equal(t, "Istanbul", result.City)
	assert.Equal(t, 2, result.Count)
	require.Len(t, result.Attractions, 2)
	assert.Equal(t, "primary", result.Attractions[0].PlaceID)

	// One paginated primary search plus one per extra category.
	require.Len(t, fake.allPagesCalls, 1)
	assert.Equal(t, cityPrimaryPages, fake.allPagesCalls[0])
	assert.Len(t, fake.nearbyCalls, len(cityExtraCategories))
	for _, call := range fake.nearbyCalls {
		assert.Equal(t, cityRadiusMeters, call.RadiusMeters)
	}
}

func TestCityAttractions_NoResultsIsNotFound(t *testing.T) {
	fake := &fakeMaps{
		geocodeFn: func(ctx context.Context, address string) (gmaps.LatLng, error) {
			return gmaps.LatLng{Lat: 41.0, Lng: 28.9}, nil
		},
	}

	result, err := newTestService(fake).CityAttractions(context.Background(), "Ghost Town")

	require.ErrorIs(t, err, utils.ErrCityNotFound)
	assert.Empty(t, result.Attractions)
}

func TestRouteAttractions_SearchesSampledPoints(t *testing.T) {
	located := func(id string, rating float64, reviews int) gmaps.PlaceResult {
		p := rawPlace(id, rating, reviews)
		p.Geometry = gmaps.Geometry{Location: &gmaps.LatLng{Lat: 40.5, Lng: -73.5}}
		return p
	}

	fake := &fakeMaps{
		directionsFn: func(ctx context.Context, origin, destination, mode string) (*gmaps.DirectionsRoute, error) {
			assert.Equal(t, "driving", mode)
			return buildRoute(100000), nil
		},
		nearbyFn: func(ctx context.Context, q gmaps.NearbyQuery) (gmaps.NearbyPage, error) {
			return gmaps.NearbyPage{Results: []gmaps.PlaceResult{
				located("roadside", 4.6, 300),
				rawPlace("no-coords", 4.6, 300),
			}}, nil
		},
	}

	result := newTestService(fake).RouteAttractions(context.Background(), "New York", "Boston", 50)

	require.Len(t, result.Attractions, 1)
	assert.Equal(t, "roadside", result.Attractions[0].PlaceID)
	assert.NotNil(t, result.Attractions[0].Lat)
	assert.Equal(t, 1, result.Count)
	assert.Equal(t, 50.0, result.DistanceFilter)
	assert.Empty(t, result.Message)

	// Four middle points sampled from the 100km single-step route.
	require.Len(t, fake.nearbyCalls, 4)
	for _, call := range fake.nearbyCalls {
		assert.Equal(t, 50000, call.RadiusMeters)
		assert.Equal(t, primaryCategory, call.Category)
	}
}

func TestRouteAttractions_RadiusCapped(t *testing.T) {
	fake := &fakeMaps{
		directionsFn: func(ctx context.Context, origin, destination, mode string) (*gmaps.DirectionsRoute, error) {
			return buildRoute(100000), nil
		},
	}

	newTestService(fake).RouteAttractions(context.Background(), "A", "B", 120)

	require.NotEmpty(t, fake.nearbyCalls)
	for _, call := range fake.nearbyCalls {
		assert.Equal(t, routeRadiusCapMeter, call.RadiusMeters)
	}
}

func TestRouteAttractions_DirectionsFailureDegrades(t *testing.T) {
	fake := &fakeMaps{
		directionsFn: func(ctx context.Context, origin, destination, mode string) (*gmaps.DirectionsRoute, error) {
			return nil, utils.ErrUpstream
		},
	}

	result := newTestService(fake).RouteAttractions(context.Background(), "A", "B", 50)

	assert.Empty(t, result.Attractions)
	assert.Equal(t, 0, result.Count)
	assert.Equal(t, "No popular attractions found along this route", result.Message)
}
