package response_models

// ModeTravelTime is the outcome for a single transport mode. The two modes
// succeed or fail independently.
type ModeTravelTime struct {
	Status        string `json:"status"`
	Duration      string `json:"duration,omitempty"`
	Distance      string `json:"distance,omitempty"`
	DepartureTime string `json:"departure_time,omitempty"`
	ArrivalTime   string `json:"arrival_time,omitempty"`
	Message       string `json:"message,omitempty"`
}

type TravelTimeResponse struct {
	Driving ModeTravelTime `json:"driving"`
	Transit ModeTravelTime `json:"transit"`
}
