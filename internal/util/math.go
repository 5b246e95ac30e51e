package util

import (
	"math"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/constraints"
)

type Number interface {
	constraints.Integer | constraints.Float
}

// Mean returns the arithmetic mean of values, or 0 for an empty slice.
func Mean[T Number](values []T) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += float64(v)
	}
	return sum / float64(len(values))
}

// StdDev returns the standard deviation of values. When isUnbiased is true the
// Bessel-corrected (n-1) denominator is used. Fewer samples than the
// denominator requires yields 0.
func StdDev[T Number](values []T, isUnbiased bool) float64 {
	n := len(values)
	denominator := n
	if isUnbiased {
		denominator -= 1
	}
	if denominator <= 0 {
		return 0
	}

	avg := Mean(values)
	squareSum := 0.0
	for _, v := range values {
		d := float64(v) - avg
		squareSum += d * d
	}
	variance := squareSum / float64(denominator)
	if variance < 0 {
		// should not happen, the sum of squared deviations is never negative
		log.Error().Msgf("variance is less than 0: %f", variance)
		return 0
	}
	return math.Sqrt(variance)
}

func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func RoundFloat64(f float64, n int) float64 {
	pow := math.Pow10(n)
	return math.Round(f*pow) / pow
}
