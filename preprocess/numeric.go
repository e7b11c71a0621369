package preprocess

import (
	"math"
	"strconv"
	"strings"
)

// Normalize rescales values linearly so that the minimum maps to newMin and
// the maximum maps to newMax (min-max scaling).
//
// When every value is equal the range is degenerate and every output is
// newMin. An empty input yields an empty result.
func Normalize(values []float64, newMin, newMax float64) []float64 {
	if len(values) == 0 {
		return []float64{}
	}

	oldMin, oldMax := Min(values), Max(values)
	result := make([]float64, len(values))
	if oldMin == oldMax {
		for i := range result {
			result[i] = newMin
		}
		return result
	}

	for i, v := range values {
		result[i] = ((v-oldMin)/(oldMax-oldMin))*(newMax-newMin) + newMin
	}
	return result
}

// Standardize applies z-score standardization using the population
// standard deviation. Constant input yields all zeros.
func Standardize(values []float64) []float64 {
	if len(values) == 0 {
		return []float64{}
	}

	mean := Mean(values)
	std := Std(values)
	result := make([]float64, len(values))
	if std == 0 {
		return result
	}

	for i, v := range values {
		result[i] = (v - mean) / std
	}
	return result
}

// Clip clamps each value against maxValue first and then against minValue.
// The bounds are not validated; with minValue > maxValue every value
// becomes minValue.
func Clip(values []float64, minValue, maxValue float64) []float64 {
	result := make([]float64, len(values))
	for i, v := range values {
		result[i] = math.Max(math.Min(v, maxValue), minValue)
	}
	return result
}

// ConvertToInt parses each string as a base-10 integer. Surrounding
// whitespace is ignored, a leading sign is allowed and single underscores
// may separate digits ("1_000"). Entries that do not parse, including
// decimal-looking strings such as "4.2", are dropped rather than defaulted.
func ConvertToInt(values []string) []int {
	result := make([]int, 0, len(values))
	for _, s := range values {
		digits, ok := stripDigitSeparators(strings.TrimSpace(s))
		if !ok {
			continue
		}
		n, err := strconv.Atoi(digits)
		if err != nil {
			continue
		}
		result = append(result, n)
	}
	return result
}

// stripDigitSeparators removes underscores that sit between two digits.
// Any other underscore makes s invalid.
func stripDigitSeparators(s string) (string, bool) {
	if !strings.Contains(s, "_") {
		return s, true
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '_' {
			b.WriteByte(s[i])
			continue
		}
		if i == 0 || i == len(s)-1 || !isDigit(s[i-1]) || !isDigit(s[i+1]) {
			return "", false
		}
	}
	return b.String(), true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// LogTransform returns the natural logarithm of every strictly positive
// value. Zero, negative and NaN values are dropped.
func LogTransform(values []float64) []float64 {
	result := make([]float64, 0, len(values))
	for _, v := range values {
		if v > 0 {
			result = append(result, math.Log(v))
		}
	}
	return result
}
