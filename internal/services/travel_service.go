package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"tripscout/internal/gmaps"
	"tripscout/internal/models/response_models"
)

type TravelServiceInterface interface {
	TravelTime(ctx context.Context, origin, destination string) response_models.TravelTimeResponse
}

type TravelService struct {
	directions gmaps.DirectionsProvider
	logger     *zap.Logger
}

func NewTravelService(directions gmaps.DirectionsProvider, logger *zap.Logger) TravelServiceInterface {
	return &TravelService{directions: directions, logger: logger}
}

// TravelTime queries driving and transit independently; a failure in one
// mode never blocks the other.
func (s *TravelService) TravelTime(ctx context.Context, origin, destination string) response_models.TravelTimeResponse {
	return response_models.TravelTimeResponse{
		Driving: s.modeTravelTime(ctx, origin, destination, "driving"),
		Transit: s.modeTravelTime(ctx, origin, destination, "transit"),
	}
}

func (s *TravelService) modeTravelTime(ctx context.Context, origin, destination, mode string) response_models.ModeTravelTime {
	route, err := s.directions.Directions(ctx, origin, destination, mode)
	if err != nil {
		s.logger.Info("directions failed",
			zap.String("mode", mode),
			zap.Error(err))
		return response_models.ModeTravelTime{
			Status:  "error",
			Message: fmt.Sprintf("No routes found for %s mode", mode),
		}
	}

	if len(route.Legs) == 0 {
		return response_models.ModeTravelTime{
			Status:  "error",
			Message: fmt.Sprintf("No routes found for %s mode", mode),
		}
	}

	leg := route.Legs[0]
	result := response_models.ModeTravelTime{
		Status:   "success",
		Duration: leg.Duration.Text,
		Distance: leg.Distance.Text,
	}

	// Transit legs carry scheduled departure and arrival timestamps.
	if mode == "transit" && leg.DepartureTime != nil && leg.ArrivalTime != nil {
		result.DepartureTime = clockTime(leg.DepartureTime.Value)
		result.ArrivalTime = clockTime(leg.ArrivalTime.Value)
	}

	return result
}

func clockTime(epochSeconds int64) string {
	return time.Unix(epochSeconds, 0).Format("15:04")
}
