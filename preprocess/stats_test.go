package preprocess

import (
	"math"
	"testing"
)

func TestMean(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected float64
	}{
		{"simple", []float64{1, 2, 3, 4, 5}, 3.0},
		{"single", []float64{5}, 5.0},
		{"negative", []float64{-1, -2, -3}, -2.0},
		{"mixed", []float64{-1, 0, 1}, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Mean(tt.values)
			if math.Abs(result-tt.expected) > 1e-10 {
				t.Errorf("Expected mean %f, got %f", tt.expected, result)
			}
		})
	}
}

func TestStd(t *testing.T) {
	result := Std([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	if math.Abs(result-2) > 1e-10 {
		t.Errorf("Expected population std 2, got %f", result)
	}
}

func TestMinMax(t *testing.T) {
	values := []float64{5, 2, 8, 1, 9, 3}

	if Min(values) != 1 {
		t.Errorf("Expected min 1, got %f", Min(values))
	}
	if Max(values) != 9 {
		t.Errorf("Expected max 9, got %f", Max(values))
	}
}

func TestMedian(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected float64
	}{
		{"odd", []float64{1, 3, 5}, 3.0},
		{"even", []float64{1, 2, 3, 4}, 2.5},
		{"single", []float64{5}, 5.0},
		{"unsorted", []float64{5, 1, 3}, 3.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Median(tt.values)
			if math.Abs(result-tt.expected) > 1e-10 {
				t.Errorf("Expected median %f, got %f", tt.expected, result)
			}
		})
	}
}

func TestMedianDoesNotSortInput(t *testing.T) {
	values := []float64{3, 1, 2}
	Median(values)
	if values[0] != 3 || values[1] != 1 || values[2] != 2 {
		t.Errorf("Median modified its input: %v", values)
	}
}

func TestDescribe(t *testing.T) {
	s := Describe([]float64{2, 4, 4, 4, 5, 5, 7, 9})

	if s.Count != 8 {
		t.Errorf("Expected count 8, got %d", s.Count)
	}
	if s.Mean != 5 || s.Std != 2 || s.Min != 2 || s.Max != 9 || s.Median != 4.5 {
		t.Errorf("Unexpected summary: %+v", s)
	}
}

func TestDescribeEmpty(t *testing.T) {
	s := Describe(nil)
	if s.Count != 0 {
		t.Errorf("Expected count 0, got %d", s.Count)
	}
	if !math.IsNaN(s.Mean) || !math.IsNaN(s.Median) {
		t.Errorf("Expected NaN statistics for empty input, got %+v", s)
	}
}
