package services

import (
	"tripscout/internal/models/response_models"
)

// famousLandmarks is the process-wide fallback shown when no location is
// available or the provider returns nothing. Fixed data, never scored.
var famousLandmarks = []response_models.Place{
	{Name: "Times Square", Location: "Times Square, New York, NY, USA", Rating: 4.3, Types: []string{"tourist_attraction"}},
	{Name: "Eiffel Tower", Location: "Champ de Mars, 5 Avenue Anatole France, 75007 Paris, France", Rating: 4.6, Types: []string{"tourist_attraction"}},
	{Name: "Central Park", Location: "Central Park, New York, NY, USA", Rating: 4.7, Types: []string{"park"}},
	{Name: "Golden Gate Bridge", Location: "Golden Gate Bridge, San Francisco, CA, USA", Rating: 4.8, Types: []string{"tourist_attraction"}},
	{Name: "Statue of Liberty", Location: "Statue of Liberty, New York, NY, USA", Rating: 4.5, Types: []string{"tourist_attraction"}},
	{Name: "Big Ben", Location: "Westminster, London SW1A 0AA, UK", Rating: 4.4, Types: []string{"tourist_attraction"}},
	{Name: "Sydney Opera House", Location: "Bennelong Point, Sydney NSW 2000, Australia", Rating: 4.7, Types: []string{"tourist_attraction"}},
	{Name: "Colosseum", Location: "Piazza del Colosseo, 1, 00184 Roma RM, Italy", Rating: 4.6, Types: []string{"tourist_attraction"}},
	{Name: "Machu Picchu", Location: "08680 Machu Picchu, Peru", Rating: 4.8, Types: []string{"tourist_attraction"}},
	{Name: "Great Wall of China", Location: "Huairou, China", Rating: 4.6, Types: []string{"tourist_attraction"}},
}

// FamousLandmarks returns a copy so callers cannot mutate the shared table.
func FamousLandmarks() []response_models.Place {
	out := make([]response_models.Place, len(famousLandmarks))
	copy(out, famousLandmarks)
	return out
}
