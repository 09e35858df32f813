package calculator

import "math"

// Mean returns the arithmetic mean of values.
func Mean(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmptyInput
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values)), nil
}

// PopulationStdDev returns the standard deviation of values, dividing by N.
func PopulationStdDev(values []float64) (float64, error) {
	mean, err := Mean(values)
	if err != nil {
		return 0, err
	}
	sumSquares := 0.0
	for _, v := range values {
		diff := v - mean
		sumSquares += diff * diff
	}
	return math.Sqrt(sumSquares / float64(len(values))), nil
}

// PercentChange returns the change from `from` to `to` in percent units.
func PercentChange(from, to float64) float64 {
	return (to - from) / from * 100
}
