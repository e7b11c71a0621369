// Package goprep provides small, pure data preprocessing utilities and the
// prep command-line tool that exposes them.
//
// # Features
//
//   - Missing-value detection, removal and filling (nil, "" and NaN)
//   - Duplicate removal
//   - Min-max normalization, z-score standardization and clipping
//   - Lenient integer coercion and log transforms that drop bad elements
//   - Text tokenization, cleaning and stopword removal
//   - List flattening and seeded shuffling
//
// # Quick Start
//
// Clean and rescale a sequence:
//
//	values := preprocess.RemoveMissing([]any{"1", "", nil, "2"})
//	scaled := preprocess.Normalize([]float64{1, 2, 3, 4, 5}, 0, 1)
//	z := preprocess.Standardize([]float64{1, 2, 3})
//
// Shuffle reproducibly with an explicit generator:
//
//	shuffled := listutil.Shuffle(items, listutil.NewRand(42))
//
// # Packages
//
// The library is organized into the following packages:
//
//   - preprocess: missing values, scaling, coercion and summary statistics
//   - text: tokenization and cleaning of free text
//   - listutil: flattening and shuffling
//   - dataset: parsing of command-line lists and CSV columns
//
// The prep command in cmd/prep wires these together behind the clean,
// numeric, text and struct command groups.
package goprep
