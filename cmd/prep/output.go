package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/sartorproj/goprep/internal/config"
	"github.com/sartorproj/goprep/preprocess"
)

// printResult writes v to w in the configured output format.
// In repr mode a bare string result is printed as-is. JSON has no NaN or
// infinity, so non-finite floats are written as null.
func printResult(w io.Writer, format string, v any) error {
	if format == config.OutputJSON {
		if err := json.NewEncoder(w).Encode(jsonValue(v)); err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		return nil
	}

	if s, ok := v.(string); ok {
		_, err := fmt.Fprintln(w, s)
		return err
	}
	_, err := fmt.Fprintln(w, repr(v))
	return err
}

// summaryJSON mirrors preprocess.Summary with nullable statistics.
type summaryJSON struct {
	Count  int      `json:"count"`
	Mean   *float64 `json:"mean"`
	Std    *float64 `json:"std"`
	Min    *float64 `json:"min"`
	Max    *float64 `json:"max"`
	Median *float64 `json:"median"`
}

// finite returns nil for NaN and infinities.
func finite(f float64) *float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// jsonValue replaces non-finite floats in v with nil.
func jsonValue(v any) any {
	switch x := v.(type) {
	case float64:
		if p := finite(x); p != nil {
			return *p
		}
		return nil
	case float32:
		return jsonValue(float64(x))
	case []float64:
		out := make([]any, len(x))
		for i, f := range x {
			out[i] = jsonValue(f)
		}
		return out
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = jsonValue(e)
		}
		return out
	case preprocess.Summary:
		return summaryJSON{
			Count:  x.Count,
			Mean:   finite(x.Mean),
			Std:    finite(x.Std),
			Min:    finite(x.Min),
			Max:    finite(x.Max),
			Median: finite(x.Median),
		}
	}
	return v
}

// repr renders v as a literal: lists in brackets, quoted strings, None for nil.
func repr(v any) string {
	switch x := v.(type) {
	case nil:
		return "None"
	case string:
		return reprString(x)
	case bool:
		if x {
			return "True"
		}
		return "False"
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float64:
		return reprFloat(x)
	case float32:
		return reprFloat(float64(x))
	case []any:
		return reprList(len(x), func(i int) string { return repr(x[i]) })
	case []string:
		return reprList(len(x), func(i int) string { return reprString(x[i]) })
	case []float64:
		return reprList(len(x), func(i int) string { return reprFloat(x[i]) })
	case []int:
		return reprList(len(x), func(i int) string { return strconv.Itoa(x[i]) })
	case preprocess.Summary:
		return fmt.Sprintf("{'count': %d, 'mean': %s, 'std': %s, 'min': %s, 'max': %s, 'median': %s}",
			x.Count, reprFloat(x.Mean), reprFloat(x.Std), reprFloat(x.Min), reprFloat(x.Max), reprFloat(x.Median))
	}
	return fmt.Sprint(v)
}

func reprList(n int, elem func(int) string) string {
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(elem(i))
	}
	b.WriteByte(']')
	return b.String()
}

// reprString quotes s with single quotes, switching to double quotes when
// s contains a single quote but no double quote.
func reprString(s string) string {
	quote := byte('\'')
	if strings.ContainsRune(s, '\'') && !strings.ContainsRune(s, '"') {
		quote = '"'
	}

	var b strings.Builder
	b.WriteByte(quote)
	for _, r := range s {
		switch {
		case r == '\\':
			b.WriteString(`\\`)
		case r == rune(quote):
			b.WriteByte('\\')
			b.WriteRune(r)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\t':
			b.WriteString(`\t`)
		case r == '\r':
			b.WriteString(`\r`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte(quote)
	return b.String()
}

// reprFloat formats f with the shortest round-tripping digits, always
// showing a fractional part, and switches to exponent form outside
// [1e-4, 1e16).
func reprFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}
