package preprocess

import "math"

// IsMissing reports whether v is a missing marker: nil, an empty string, or
// a floating-point NaN. Values of any other type are never missing.
func IsMissing(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return x == ""
	case float64:
		return math.IsNaN(x)
	case float32:
		return math.IsNaN(float64(x))
	}
	return false
}

// RemoveMissing returns the values that are not missing, in their original order.
func RemoveMissing(values []any) []any {
	result := make([]any, 0, len(values))
	for _, v := range values {
		if !IsMissing(v) {
			result = append(result, v)
		}
	}
	return result
}

// FillMissing replaces every missing value with fill.
// The result always has the same length as values.
func FillMissing(values []any, fill any) []any {
	result := make([]any, len(values))
	for i, v := range values {
		if IsMissing(v) {
			result[i] = fill
		} else {
			result[i] = v
		}
	}
	return result
}

// RemoveDuplicates returns the distinct elements of values.
//
// Callers must not depend on the order of the result. The current
// implementation keeps first occurrences, but that is not part of the
// contract. Dynamic values that are not comparable (slices, maps, funcs
// stored in an interface) cause a runtime panic, as with any map key.
func RemoveDuplicates[T comparable](values []T) []T {
	seen := make(map[T]struct{}, len(values))
	result := make([]T, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}
	return result
}
