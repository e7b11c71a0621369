package main

import (
	"bytes"
	"math"
	"testing"

	"github.com/sartorproj/goprep/preprocess"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReprFloat(t *testing.T) {
	tests := []struct {
		value    float64
		expected string
	}{
		{1, "1.0"},
		{0.25, "0.25"},
		{-3, "-3.0"},
		{0, "0.0"},
		{0.0001, "0.0001"},
		{1.5e-05, "1.5e-05"},
		{123456789, "123456789.0"},
		{1e16, "1e+16"},
		{math.NaN(), "nan"},
		{math.Inf(1), "inf"},
		{math.Inf(-1), "-inf"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, reprFloat(tt.value), "value %v", tt.value)
	}
}

func TestReprString(t *testing.T) {
	assert.Equal(t, "'abc'", reprString("abc"))
	assert.Equal(t, `"it's"`, reprString("it's"))
	assert.Equal(t, `'it\'s "x"'`, reprString(`it's "x"`))
	assert.Equal(t, `'a\nb\\c'`, reprString("a\nb\\c"))
}

func TestRepr(t *testing.T) {
	assert.Equal(t, "[None, '1', 2, 1.5, [True]]", repr([]any{nil, "1", 2, 1.5, []any{true}}))
	assert.Equal(t, "[]", repr([]string{}))
	assert.Equal(t, "[1, 2]", repr([]int{1, 2}))
	assert.Equal(t, "[0.5]", repr([]float64{0.5}))
	assert.Equal(t, "{'count': 1, 'mean': 2.0, 'std': 0.0, 'min': 2.0, 'max': 2.0, 'median': 2.0}",
		repr(preprocess.Describe([]float64{2})))
}

func TestPrintResult(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printResult(&buf, "repr", "plain"))
	assert.Equal(t, "plain\n", buf.String())

	buf.Reset()
	require.NoError(t, printResult(&buf, "json", []any{nil, "a", 1}))
	assert.Equal(t, "[null,\"a\",1]\n", buf.String())

	buf.Reset()
	require.NoError(t, printResult(&buf, "json", []float64{math.NaN(), 1.5, math.Inf(-1)}))
	assert.Equal(t, "[null,1.5,null]\n", buf.String())

	buf.Reset()
	require.NoError(t, printResult(&buf, "json", []any{"a", math.Inf(1), []any{math.NaN()}}))
	assert.Equal(t, "[\"a\",null,[null]]\n", buf.String())

	buf.Reset()
	require.NoError(t, printResult(&buf, "json", preprocess.Describe(nil)))
	assert.Equal(t, `{"count":0,"mean":null,"std":null,"min":null,"max":null,"median":null}`+"\n", buf.String())
}
