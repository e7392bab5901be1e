package services

import (
	"tripscout/internal/gmaps"
)

const (
	// Steps longer than this get interpolated so search points are never
	// further apart than one search radius allows.
	interpolationStepMeters = 20000

	middleStartFraction = 0.2
	middleEndFraction   = 0.8
	maxSearchPoints     = 8
)

// RoutePoint is a coordinate tagged with its cumulative distance from the
// route origin, in meters.
type RoutePoint struct {
	Lat      float64
	Lng      float64
	Distance float64
}

// FlattenRoute walks all legs and steps in order and emits a RoutePoint at
// each step start, interpolating extra points along steps longer than 20km,
// plus a final point at the route end carrying the total distance. Distances
// are monotonically non-decreasing in emission order.
func FlattenRoute(route *gmaps.DirectionsRoute) []RoutePoint {
	if route == nil {
		return nil
	}

	var points []RoutePoint
	var total float64
	var last gmaps.LatLng
	haveSteps := false

	for _, leg := range route.Legs {
		for _, step := range leg.Steps {
			haveSteps = true
			stepDistance := float64(step.Distance.Value)

			points = append(points, RoutePoint{
				Lat:      step.StartLocation.Lat,
				Lng:      step.StartLocation.Lng,
				Distance: total,
			})

			if stepDistance > interpolationStepMeters {
				latDiff := step.EndLocation.Lat - step.StartLocation.Lat
				lngDiff := step.EndLocation.Lng - step.StartLocation.Lng

				segments := int(stepDistance / interpolationStepMeters)
				for i := 1; i < segments; i++ {
					ratio := float64(i) / float64(segments)
					points = append(points, RoutePoint{
						Lat:      step.StartLocation.Lat + latDiff*ratio,
						Lng:      step.StartLocation.Lng + lngDiff*ratio,
						Distance: total + stepDistance*ratio,
					})
				}
			}

			total += stepDistance
			last = step.EndLocation
		}
	}

	if !haveSteps {
		return nil
	}

	points = append(points, RoutePoint{Lat: last.Lat, Lng: last.Lng, Distance: total})
	return points
}

// SampleSearchPoints reduces a route to at most 8 coordinates drawn from its
// middle 60%. The endpoints' surroundings are deliberately skipped: origin
// and destination are already covered by their own searches. The result may
// be empty and callers must tolerate that.
func SampleSearchPoints(route *gmaps.DirectionsRoute) []gmaps.LatLng {
	points := FlattenRoute(route)
	if len(points) == 0 {
		return nil
	}

	total := points[len(points)-1].Distance
	start := total * middleStartFraction
	end := total * middleEndFraction

	var middle []RoutePoint
	for _, p := range points {
		if p.Distance >= start && p.Distance <= end {
			middle = append(middle, p)
		}
	}
	if len(middle) == 0 {
		return nil
	}

	stride := len(middle) / maxSearchPoints
	if stride < 1 {
		stride = 1
	}

	sampled := make([]gmaps.LatLng, 0, maxSearchPoints)
	for i := 0; i < len(middle) && len(sampled) < maxSearchPoints; i += stride {
		sampled = append(sampled, gmaps.LatLng{Lat: middle[i].Lat, Lng: middle[i].Lng})
	}
	return sampled
}
