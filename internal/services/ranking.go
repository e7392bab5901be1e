package services

import (
	"math"
	"sort"

	"tripscout/internal/models/response_models"
)

// bonusRule is an additive score adjustment for places clearing secondary
// rating/review thresholds. Rules are checked in order and only the first
// match applies.
type bonusRule struct {
	MinRating  float64
	MinReviews int
	Bonus      float64
}

// Profile is one named scoring scheme. The three calling contexts (nearby,
// city, route) differ only in these parameters, so there is a single scoring
// implementation.
type Profile struct {
	Name          string
	MinRating     float64
	MinReviews    int
	RatingWeight  float64
	ReviewWeight  float64
	ReviewDivisor float64
	TopN          int
	Bonuses       []bonusRule
	// CategoryBonus is added when Types contains CategoryType.
	CategoryType  string
	CategoryBonus float64
}

var (
	GeneralProfile = Profile{
		Name:          "general",
		MinRating:     4.0,
		MinReviews:    5,
		RatingWeight:  0.7,
		ReviewWeight:  0.3,
		ReviewDivisor: 4,
		TopN:          10,
		Bonuses:       []bonusRule{{MinRating: 4.5, MinReviews: 100, Bonus: 0.1}},
	}

	CityProfile = Profile{
		Name:          "city",
		MinRating:     4.0,
		MinReviews:    10,
		RatingWeight:  0.65,
		ReviewWeight:  0.35,
		ReviewDivisor: 4.5,
		TopN:          20,
		Bonuses: []bonusRule{
			{MinRating: 4.5, MinReviews: 500, Bonus: 0.15},
			{MinRating: 4.3, MinReviews: 1000, Bonus: 0.1},
		},
		CategoryType:  "tourist_attraction",
		CategoryBonus: 0.05,
	}

	RouteProfile = Profile{
		Name:          "route",
		MinRating:     3.8,
		MinReviews:    10,
		RatingWeight:  0.6,
		ReviewWeight:  0.4,
		ReviewDivisor: 4,
		TopN:          15,
		Bonuses:       []bonusRule{{MinRating: 4.5, MinReviews: 100, Bonus: 0.1}},
	}
)

// Score computes the composite score for a place: the 1-5 rating normalized
// to 0-1, a log10-damped review component capped at 1 so review volume alone
// never dominates, weighted per profile, plus any bonus.
func (p Profile) Score(place response_models.Place) float64 {
	ratingScore := (place.Rating - 1) / 4
	reviewScore := math.Min(math.Log10(float64(place.UserRatingsTotal)+1)/p.ReviewDivisor, 1.0)

	score := p.RatingWeight*ratingScore + p.ReviewWeight*reviewScore

	for _, b := range p.Bonuses {
		if place.Rating >= b.MinRating && place.UserRatingsTotal >= b.MinReviews {
			score += b.Bonus
			break
		}
	}

	if p.CategoryBonus > 0 {
		for _, t := range place.Types {
			if t == p.CategoryType {
				score += p.CategoryBonus
				break
			}
		}
	}

	return score
}

type scoredPlace struct {
	place response_models.Place
	score float64
}

// RankPlaces sorts places by descending composite score and truncates to the
// profile's top-N. The sort is stable, so ties keep their post-dedup
// insertion order.
func RankPlaces(places []response_models.Place, profile Profile) []response_models.Place {
	scored := make([]scoredPlace, 0, len(places))
	for _, pl := range places {
		scored = append(scored, scoredPlace{place: pl, score: profile.Score(pl)})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	n := len(scored)
	if n > profile.TopN {
		n = profile.TopN
	}

	ranked := make([]response_models.Place, 0, n)
	for _, sp := range scored[:n] {
		ranked = append(ranked, sp.place)
	}
	return ranked
}
