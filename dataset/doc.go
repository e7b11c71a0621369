// Package dataset turns raw command-line and CSV input into value sequences.
//
// Comma-separated arguments are split into trimmed tokens. The literal
// "None" and empty tokens become nil for missing-value processing:
//
//	values := dataset.ParseMissing("1,,2,None,3") // ["1" nil "2" nil "3"]
//
// Numeric input is parsed strictly; a bad token is reported with
// ErrInvalidNumber:
//
//	nums, err := dataset.ParseFloats(dataset.SplitTokens("1,2,x"))
//
// A column can also be loaded from CSV:
//
//	opts := dataset.DefaultCSVOptions()
//	opts.Column = "price"
//	cells, err := dataset.LoadColumnFile("data.csv", opts)
package dataset
