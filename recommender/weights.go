// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package recommender

import (
	"fmt"
	"math"
)

const weightSumTolerance = 0.001

// Weights defines the relative importance of each scoring factor.
// All weights must sum to 1.0 so totals stay on the 0-100 scale.
type Weights struct {
	GenreMatch        float64 `json:"genre_match"`
	LengthFit         float64 `json:"length_fit"`
	SuggesterInterest float64 `json:"suggester_interest"`
	DiversityBonus    float64 `json:"diversity_bonus"`
}

// DefaultWeights returns the standard scoring weights.
func DefaultWeights() Weights {
	return Weights{
		GenreMatch:        0.40,
		LengthFit:         0.20,
		SuggesterInterest: 0.30,
		DiversityBonus:    0.10,
	}
}

// Validate checks that all weights are non-negative and sum to 1.0
// within tolerance.
func (w Weights) Validate() error {
	if w.GenreMatch < 0 || w.LengthFit < 0 || w.SuggesterInterest < 0 || w.DiversityBonus < 0 {
		return fmt.Errorf("weights must be non-negative")
	}

	sum := w.GenreMatch + w.LengthFit + w.SuggesterInterest + w.DiversityBonus
	if math.Abs(sum-1.0) > weightSumTolerance {
		return fmt.Errorf("weights must sum to 1.0, got %.3f", sum)
	}

	return nil
}
