// Package stats provides the statistical routines shared by every
// question generator. All functions are pure: they never draw random
// numbers and never mutate their input slice.
package stats

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// ErrDatasetTooSmall is returned when an operation requires more values
// than the dataset contains (e.g. trimming both ends of a 2-item set).
var ErrDatasetTooSmall = errors.New("dataset too small")

// Mean returns the arithmetic mean of data.
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return Sum(data) / float64(len(data))
}

// Sum returns the total of data.
func Sum(data []float64) float64 {
	var total float64
	for _, v := range data {
		total += v
	}
	return total
}

// Median returns the middle value of data when sorted, or the mean of
// the two middle values for an even count.
func Median(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	sorted := sortedCopy(data)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

// Mode returns the mode(s) of data as a display string:
//
//	"no mode"    — every value appears exactly once
//	"all values" — every distinct value appears equally often (>1)
//	"8"          — a single mode
//	"3, 8"       — multiple tied modes, sorted ascending
func Mode(data []float64) string {
	counts := make(map[float64]int, len(data))
	for _, v := range data {
		counts[v]++
	}

	maxCount := 0
	for _, c := range counts {
		if c > maxCount {
			maxCount = c
		}
	}
	if maxCount <= 1 {
		return "no mode"
	}

	var modes []float64
	for v, c := range counts {
		if c == maxCount {
			modes = append(modes, v)
		}
	}
	sort.Float64s(modes)

	if len(modes) == len(counts) {
		return "all values"
	}

	parts := make([]string, len(modes))
	for i, m := range modes {
		parts[i] = formatModeValue(m)
	}
	return strings.Join(parts, ", ")
}

// formatModeValue renders whole numbers without a decimal point.
func formatModeValue(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// TrimmedMean removes removeFromEachEnd values from both ends of the
// sorted dataset and returns the mean of what remains. At least one
// value must survive the trim.
func TrimmedMean(data []float64, removeFromEachEnd int) (float64, error) {
	if removeFromEachEnd < 1 {
		return 0, fmt.Errorf("remove count must be >= 1, got %d", removeFromEachEnd)
	}
	if len(data) <= 2*removeFromEachEnd {
		return 0, fmt.Errorf("%w: need more than %d values to trim %d from each end, got %d",
			ErrDatasetTooSmall, 2*removeFromEachEnd, removeFromEachEnd, len(data))
	}
	sorted := sortedCopy(data)
	trimmed := sorted[removeFromEachEnd : len(sorted)-removeFromEachEnd]
	return Mean(trimmed), nil
}

// WeightedMean computes the weighted mean of values. Weights that do
// not sum to 1.0 are normalized first.
func WeightedMean(values, weights []float64) (float64, error) {
	if len(values) != len(weights) {
		return 0, fmt.Errorf("values and weights must have the same length: %d vs %d",
			len(values), len(weights))
	}
	weightSum := Sum(weights)
	if weightSum == 0 {
		return 0, fmt.Errorf("weights sum to zero")
	}

	var total float64
	for i, v := range values {
		total += v * (weights[i] / weightSum)
	}
	return total, nil
}

// WeightedMeanFrequency computes the mean of values repeated by their
// frequencies: Σ(value×frequency) / Σ(frequency).
func WeightedMeanFrequency(values []float64, frequencies []int) (float64, error) {
	if len(values) != len(frequencies) {
		return 0, fmt.Errorf("values and frequencies must have the same length: %d vs %d",
			len(values), len(frequencies))
	}

	var total float64
	var count int
	for i, v := range values {
		total += v * float64(frequencies[i])
		count += frequencies[i]
	}
	if count == 0 {
		return 0, fmt.Errorf("frequencies sum to zero")
	}
	return total / float64(count), nil
}

// PercentileRank computes PR = (b/n) × 100 where b is the count of
// values strictly below value. Ties at value never raise the rank.
func PercentileRank(value float64, dataset []float64) float64 {
	if len(dataset) == 0 {
		return 0
	}
	below := 0
	for _, v := range dataset {
		if v < value {
			below++
		}
	}
	return float64(below) / float64(len(dataset)) * 100
}

// ValueAtPercentile returns the value at the given percentile using
// linear interpolation between the two nearest ranks.
func ValueAtPercentile(percentile float64, dataset []float64) float64 {
	if len(dataset) == 0 {
		return 0
	}
	sorted := sortedCopy(dataset)
	if percentile <= 0 {
		return sorted[0]
	}
	if percentile >= 100 {
		return sorted[len(sorted)-1]
	}
	rank := percentile / 100 * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo]
	}
	frac := rank - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}

// IdentifyOutliers flags values more than 1.5 IQR outside the quartiles.
// When the IQR collapses to zero it falls back to flagging values more
// than two standard deviations from the median. Datasets with fewer
// than 4 values report no outliers.
func IdentifyOutliers(data []float64) []float64 {
	if len(data) < 4 {
		return nil
	}

	q1 := ValueAtPercentile(25, data)
	q3 := ValueAtPercentile(75, data)
	iqr := q3 - q1

	if iqr == 0 {
		median := Median(data)
		sd := stdDev(data)
		if sd == 0 {
			return nil
		}
		var outliers []float64
		for _, v := range data {
			if math.Abs(v-median) > 2*sd {
				outliers = append(outliers, v)
			}
		}
		return outliers
	}

	lower := q1 - 1.5*iqr
	upper := q3 + 1.5*iqr
	var outliers []float64
	for _, v := range data {
		if v < lower || v > upper {
			outliers = append(outliers, v)
		}
	}
	return outliers
}

// stdDev returns the population standard deviation.
func stdDev(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	mean := Mean(data)
	var sumSq float64
	for _, v := range data {
		d := v - mean
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(len(data)))
}

func sortedCopy(data []float64) []float64 {
	sorted := make([]float64, len(data))
	copy(sorted, data)
	sort.Float64s(sorted)
	return sorted
}
