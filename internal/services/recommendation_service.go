package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"tripscout/internal/gmaps"
	"tripscout/internal/models/response_models"
	"tripscout/pkg/utils"
)

const (
	nearbyRadiusMeters  = 500000
	cityRadiusMeters    = 50000
	routeRadiusCapMeter = 50000
	cityPrimaryPages    = 3

	nearbyCategories = "tourist_attraction|amusement_park|museum|park|zoo|aquarium"
	primaryCategory  = "tourist_attraction"
)

// cityExtraCategories are searched once each in addition to the paginated
// primary search.
var cityExtraCategories = []string{
	"amusement_park", "museum", "park", "zoo", "aquarium",
	"art_gallery", "church", "mosque", "synagogue",
}

type RecommendationServiceInterface interface {
	NearbyRecommendations(ctx context.Context, lat, lng float64) response_models.RecommendationsResponse
	FamousRecommendations() response_models.RecommendationsResponse
	CityAttractions(ctx context.Context, cityName string) (response_models.CityAttractionsResponse, error)
	RouteAttractions(ctx context.Context, origin, destination string, distanceKm float64) response_models.RouteAttractionsResponse
}

type RecommendationService struct {
	geocoder   gmaps.Geocoder
	places     gmaps.PlaceSearcher
	directions gmaps.DirectionsProvider
	logger     *zap.Logger
}

func NewRecommendationService(
	geocoder gmaps.Geocoder,
	places gmaps.PlaceSearcher,
	directions gmaps.DirectionsProvider,
	logger *zap.Logger) RecommendationServiceInterface {

	return &RecommendationService{
		geocoder:   geocoder,
		places:     places,
		directions: directions,
		logger:     logger,
	}
}

func (s *RecommendationService) FamousRecommendations() response_models.RecommendationsResponse {
	return response_models.RecommendationsResponse{
		Recommendations: FamousLandmarks(),
		Source:          "famous",
	}
}

// NearbyRecommendations runs a single wide-radius search around the caller's
// coordinate. Any provider failure or empty result degrades to the famous
// fallback rather than an error.
func (s *RecommendationService) NearbyRecommendations(ctx context.Context, lat, lng float64) response_models.RecommendationsResponse {
	page, err := s.places.NearbySearch(ctx, gmaps.NearbyQuery{
		Location:     gmaps.LatLng{Lat: lat, Lng: lng},
		RadiusMeters: nearbyRadiusMeters,
		Category:     nearbyCategories,
	})
	if err != nil {
		s.logger.Warn("nearby search failed, falling back to famous landmarks", zap.Error(err))
		return s.FamousRecommendations()
	}

	candidates := AggregateCandidates([][]gmaps.PlaceResult{page.Results}, GeneralProfile.Filter())
	ranked := RankPlaces(candidates, GeneralProfile)

	if len(ranked) == 0 {
		return s.FamousRecommendations()
	}

	return response_models.RecommendationsResponse{
		Recommendations: ranked,
		Source:          "nearby",
	}
}

// CityAttractions geocodes the city, then aggregates a paginated primary
// search with one search per extra category. A failed geocode or an empty
// aggregate surfaces as ErrCityNotFound.
func (s *RecommendationService) CityAttractions(ctx context.Context, cityName string) (response_models.CityAttractionsResponse, error) {
	empty := response_models.CityAttractionsResponse{
		Attractions: []response_models.Place{},
		City:        cityName,
	}

	center, err := s.geocoder.Geocode(ctx, cityName)
	if err != nil {
		s.logger.Info("geocoding failed", zap.String("city", cityName), zap.Error(err))
		return empty, fmt.Errorf("city %q: %w", cityName, utils.ErrCityNotFound)
	}

	var batches [][]gmaps.PlaceResult

	primary, err := s.places.SearchAllPages(ctx, gmaps.NearbyQuery{
		Location:     center,
		RadiusMeters: cityRadiusMeters,
		Category:     primaryCategory,
	}, cityPrimaryPages)
	if err != nil {
		s.logger.Warn("primary city search failed", zap.String("city", cityName), zap.Error(err))
	} else {
		batches = append(batches, primary)
	}

	for _, category := range cityExtraCategories {
		page, err := s.places.NearbySearch(ctx, gmaps.NearbyQuery{
			Location:     center,
			RadiusMeters: cityRadiusMeters,
			Category:     category,
		})
		if err != nil {
			s.logger.Warn("category search failed",
				zap.String("city", cityName),
				zap.String("category", category),
				zap.Error(err))
			continue
		}
		batches = append(batches, page.Results)
	}

	filter := CityProfile.Filter()
	filter.LocationFallback = cityName

	candidates := AggregateCandidates(batches, filter)
	ranked := RankPlaces(candidates, CityProfile)

	if len(ranked) == 0 {
		return empty, fmt.Errorf("no attractions for city %q: %w", cityName, utils.ErrCityNotFound)
	}

	return response_models.CityAttractionsResponse{
		Attractions: ranked,
		City:        cityName,
		Count:       len(ranked),
	}, nil
}

// RouteAttractions fetches the driving route, samples search points from its
// middle section and searches around each. All failures degrade to an empty
// result with a message; the endpoint never errors on provider trouble.
func (s *RecommendationService) RouteAttractions(ctx context.Context, origin, destination string, distanceKm float64) response_models.RouteAttractionsResponse {
	empty := response_models.RouteAttractionsResponse{
		Attractions:    []response_models.Place{},
		DistanceFilter: distanceKm,
		Message:        "No popular attractions found along this route",
	}

	route, err := s.directions.Directions(ctx, origin, destination, "driving")
	if err != nil {
		s.logger.Warn("route lookup failed",
			zap.String("origin", origin),
			zap.String("destination", destination),
			zap.Error(err))
		return empty
	}

	searchPoints := SampleSearchPoints(route)
	if len(searchPoints) == 0 {
		return empty
	}

	radius := int(distanceKm * 1000)
	if radius > routeRadiusCapMeter {
		// Provider limit per request.
		radius = routeRadiusCapMeter
	}

	var batches [][]gmaps.PlaceResult
	for _, point := range searchPoints {
		page, err := s.places.NearbySearch(ctx, gmaps.NearbyQuery{
			Location:     point,
			RadiusMeters: radius,
			Category:     primaryCategory,
		})
		if err != nil {
			s.logger.Warn("route point search failed", zap.Error(err))
			continue
		}
		batches = append(batches, page.Results)
	}

	filter := RouteProfile.Filter()
	filter.RequireCoordinate = true
	filter.LocationFallback = "Along route"

	candidates := AggregateCandidates(batches, filter)
	ranked := RankPlaces(candidates, RouteProfile)

	if len(ranked) == 0 {
		return empty
	}

	return response_models.RouteAttractionsResponse{
		Attractions:    ranked,
		Count:          len(ranked),
		DistanceFilter: distanceKm,
	}
}
