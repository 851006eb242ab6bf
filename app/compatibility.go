package app

import (
	"math"

	"tripmates-api/models"
)

// compatibilityFields is the number of profile fields compared for scoring:
// city, travel style, and the two survey answers.
const compatibilityFields = 4

// CompatibilityScore is a pure function over two profiles: the fraction of
// compared fields matching exactly, as a percentage rounded to two decimals.
// Scores annotate responses and are never persisted.
func CompatibilityScore(a, b *models.Profile) float64 {
	matching := 0
	if a.City == b.City {
		matching++
	}
	if a.TravelStyle == b.TravelStyle {
		matching++
	}
	if a.Question1 == b.Question1 {
		matching++
	}
	if a.Question2 == b.Question2 {
		matching++
	}

	percent := float64(matching) / compatibilityFields * 100
	return math.Round(percent*100) / 100
}
