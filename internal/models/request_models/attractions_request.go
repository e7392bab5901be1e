package request_models

// RecommendationsRequest carries an optional coordinate. Both fields absent
// means the caller declined to share a location and gets the famous-landmark
// fallback.
type RecommendationsRequest struct {
	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`
}

type CityAttractionsRequest struct {
	CityName string `json:"city_name"`
}

type RouteAttractionsRequest struct {
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	DistanceKm  float64 `json:"distance_km"`
}

type TravelTimeRequest struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
}
