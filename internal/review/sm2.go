// Package review implements spaced-repetition scheduling for flashcards.
package review

import (
	"math"
	"time"
)

const (
	DefaultEaseFactor   = 2.5
	MinEaseFactor       = 1.3
	DefaultIntervalDays = 1

	// First successful recall graduates to a fixed step before
	// geometric growth takes over.
	firstSuccessIntervalDays = 6

	passThreshold = 3
)

// Computed is the result of one schedule computation.
type Computed struct {
	IntervalDays   int
	EaseFactor     float64
	NextReviewDate time.Time
}

// ClampQuality bounds a recall quality grade to [0, 5]. Out-of-range values
// come from UI sliders and are approximate input, not errors.
func ClampQuality(quality int) int {
	if quality < 0 {
		return 0
	}
	if quality > 5 {
		return 5
	}
	return quality
}

// NextEaseFactor calculates the new ease factor for a quality grade using
// the standard SM-2 delta. The result never drops below MinEaseFactor.
func NextEaseFactor(ef float64, quality int) float64 {
	if ef == 0 {
		ef = DefaultEaseFactor
	}
	q := float64(ClampQuality(quality))

	newEF := ef + (0.1 - (5-q)*(0.08+(5-q)*0.02))
	return math.Max(newEF, MinEaseFactor)
}

// Compute derives the next schedule from the current interval, ease factor
// and a recall quality grade. Deterministic given its inputs and now.
//
// A failed recall (quality < 3) resets the interval to one day. The first
// successful recall graduates to a six-day step; later successes grow the
// interval geometrically by the new ease factor.
func Compute(intervalDays int, easeFactor float64, quality int, now time.Time) Computed {
	quality = ClampQuality(quality)
	newEF := NextEaseFactor(easeFactor, quality)

	var newInterval int
	switch {
	case quality < passThreshold:
		newInterval = DefaultIntervalDays
	case intervalDays <= DefaultIntervalDays:
		newInterval = firstSuccessIntervalDays
	default:
		newInterval = int(math.Round(float64(intervalDays) * newEF))
	}

	return Computed{
		IntervalDays:   newInterval,
		EaseFactor:     newEF,
		NextReviewDate: now.AddDate(0, 0, newInterval),
	}
}
