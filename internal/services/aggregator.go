package services

import (
	"tripscout/internal/gmaps"
	"tripscout/internal/models/response_models"
)

// QualityFilter is the aggregation policy for one calling context.
// LocationFallback substitutes for a missing vicinity string.
// RequireCoordinate drops places without a resolvable location and also
// surfaces lat/lng on the normalized record.
type QualityFilter struct {
	MinRating         float64
	MinReviews        int
	RequireCoordinate bool
	LocationFallback  string
}

// Filter derives the aggregation thresholds from a scoring profile.
func (p Profile) Filter() QualityFilter {
	return QualityFilter{MinRating: p.MinRating, MinReviews: p.MinReviews}
}

// AggregateCandidates flattens the raw result batches, deduplicates by place
// identifier keeping the first occurrence, and applies the quality filter.
// Records without an identifier, with out-of-range rating or review values,
// or below the thresholds are dropped; nothing here can fail the batch.
// Places with no rating decode as 0 and therefore never clear the minimum
// rating, which keeps unrated places out deliberately.
func AggregateCandidates(batches [][]gmaps.PlaceResult, filter QualityFilter) []response_models.Place {
	seen := make(map[string]struct{})
	var out []response_models.Place

	for _, batch := range batches {
		for _, raw := range batch {
			if raw.PlaceID == "" {
				continue
			}
			if _, dup := seen[raw.PlaceID]; dup {
				continue
			}
			seen[raw.PlaceID] = struct{}{}

			if raw.Rating < 0 || raw.Rating > 5 || raw.UserRatingsTotal < 0 {
				continue
			}
			if raw.Rating < filter.MinRating || raw.UserRatingsTotal < filter.MinReviews {
				continue
			}
			if filter.RequireCoordinate && raw.Geometry.Location == nil {
				continue
			}

			out = append(out, normalizePlace(raw, filter))
		}
	}

	return out
}

func normalizePlace(raw gmaps.PlaceResult, filter QualityFilter) response_models.Place {
	place := response_models.Place{
		PlaceID:          raw.PlaceID,
		Name:             raw.Name,
		Location:         raw.Vicinity,
		Rating:           raw.Rating,
		UserRatingsTotal: raw.UserRatingsTotal,
		Types:            raw.Types,
	}

	if place.Location == "" {
		place.Location = filter.LocationFallback
	}
	if len(raw.Photos) > 0 && raw.Photos[0].PhotoReference != "" {
		ref := raw.Photos[0].PhotoReference
		place.PhotoReference = &ref
	}
	if filter.RequireCoordinate && raw.Geometry.Location != nil {
		lat := raw.Geometry.Location.Lat
		lng := raw.Geometry.Location.Lng
		place.Lat = &lat
		place.Lng = &lng
	}

	return place
}
