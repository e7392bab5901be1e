package gmaps

// LatLng is a WGS84 coordinate pair as the provider serializes it.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type geocodeResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Results      []struct {
		Geometry struct {
			Location LatLng `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// PlaceResult is one raw record from the nearby-search endpoint. Rating and
// review count decode to zero when the provider omits them; the aggregator's
// minimum-quality filters are responsible for what that means.
type PlaceResult struct {
	PlaceID          string   `json:"place_id"`
	Name             string   `json:"name"`
	Vicinity         string   `json:"vicinity"`
	Rating           float64  `json:"rating"`
	UserRatingsTotal int      `json:"user_ratings_total"`
	Types            []string `json:"types"`
	Photos           []Photo  `json:"photos"`
	Geometry         Geometry `json:"geometry"`
}

type Photo struct {
	PhotoReference string `json:"photo_reference"`
}

type Geometry struct {
	Location *LatLng `json:"location"`
}

type nearbyResponse struct {
	Status        string        `json:"status"`
	ErrorMessage  string        `json:"error_message"`
	Results       []PlaceResult `json:"results"`
	NextPageToken string        `json:"next_page_token"`
}

// NearbyQuery is one nearby-search call. A non-empty PageToken continues a
// previous result set and makes the provider ignore the other parameters.
type NearbyQuery struct {
	Location     LatLng
	RadiusMeters int
	Category     string
	PageToken    string
}

// NearbyPage is a single page of results plus the continuation token, empty
// on the last page.
type NearbyPage struct {
	Results       []PlaceResult
	NextPageToken string
}

// TextValue mirrors the provider's {text, value} pairs: a display string and
// the underlying quantity (meters, seconds, or epoch seconds).
type TextValue struct {
	Text  string `json:"text"`
	Value int64  `json:"value"`
}

type RouteStep struct {
	StartLocation LatLng    `json:"start_location"`
	EndLocation   LatLng    `json:"end_location"`
	Distance      TextValue `json:"distance"`
}

type RouteLeg struct {
	Steps         []RouteStep `json:"steps"`
	Duration      TextValue   `json:"duration"`
	Distance      TextValue   `json:"distance"`
	DepartureTime *TextValue  `json:"departure_time"`
	ArrivalTime   *TextValue  `json:"arrival_time"`
}

// DirectionsRoute is one routed path returned by the directions endpoint.
type DirectionsRoute struct {
	Legs []RouteLeg `json:"legs"`
}

type directionsResponse struct {
	Status       string            `json:"status"`
	ErrorMessage string            `json:"error_message"`
	Routes       []DirectionsRoute `json:"routes"`
}
