// Package preprocess provides missing-value handling and numeric scaling
// for in-memory sequences.
//
// Every function is a pure, single-pass transform: the input is never
// modified and a new slice is returned. Malformed elements are dropped or
// defaulted as documented on each function; nothing here returns an error.
//
// # Missing Values
//
// A value is missing when it is nil, an empty string, or a NaN:
//
//	values := []any{"1", "2", "a", "", nil}
//	clean := preprocess.RemoveMissing(values)   // ["1" "2" "a"]
//	filled := preprocess.FillMissing(values, 0) // ["1" "2" "a" 0 0]
//
// # Scaling
//
// Rescale numeric data:
//
//	preprocess.Normalize([]float64{1, 2, 3, 4, 5}, 0, 1) // [0 0.25 0.5 0.75 1]
//	preprocess.Standardize([]float64{1, 2, 3})           // mean 0, population std 1
//	preprocess.Clip([]float64{1, 5, 10}, 2, 8)           // [2 5 8]
//
// Degenerate input never divides by zero: constant sequences normalize to
// newMin and standardize to zeros.
//
// # Coercion and Transforms
//
//	preprocess.ConvertToInt([]string{"1", "a", "4.2", "2"}) // [1 2]
//	preprocess.LogTransform([]float64{-1, 0, 2})            // [0.693...]
//
// Numeric functions assume genuine numbers. NaN inputs propagate through
// Normalize, Standardize and Clip following IEEE 754 rules.
package preprocess
