package response_models

// Place is an attraction as surfaced to clients. Lat/Lng are only populated
// for route searches, where the map layer needs to pin results.
type Place struct {
	PlaceID          string   `json:"place_id,omitempty"`
	Name             string   `json:"name"`
	Location         string   `json:"location"`
	Rating           float64  `json:"rating"`
	UserRatingsTotal int      `json:"user_ratings_total,omitempty"`
	Types            []string `json:"types"`
	PhotoReference   *string  `json:"photo_reference"`
	Lat              *float64 `json:"lat,omitempty"`
	Lng              *float64 `json:"lng,omitempty"`
}

type RecommendationsResponse struct {
	Recommendations []Place `json:"recommendations"`
	Source          string  `json:"source"`
}

type CityAttractionsResponse struct {
	Attractions []Place `json:"attractions"`
	City        string  `json:"city"`
	Count       int     `json:"count"`
}

type RouteAttractionsResponse struct {
	Attractions    []Place `json:"attractions"`
	Count          int     `json:"count"`
	DistanceFilter float64 `json:"distance_filter"`
	Message        string  `json:"message,omitempty"`
}
