package text

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"punctuation", "Hello, World!", []string{"hello", "world"}},
		{"underscore", "snake_case value", []string{"snake_case", "value"}},
		{"digits", "route 66!", []string{"route", "66"}},
		{"unicode", "Crème Brûlée", []string{"crème", "brûlée"}},
		{"full width", "ＡＢＣ１２", []string{"abc12"}},
		{"empty", "", []string{}},
		{"only punctuation", "?!...", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Tokenize(tt.input)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("Tokenize(%q) = %q, expected %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestKeepAlphanumericAndSpaces(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Hello, World!", "hello world"},
		{"Hello, World!!!", "hello world"},
		{"a\tb\nc", "a\tb\nc"},
		{"Café 42", "caf 42"},
	}

	for _, tt := range tests {
		if result := KeepAlphanumericAndSpaces(tt.input); result != tt.expected {
			t.Errorf("KeepAlphanumericAndSpaces(%q) = %q, expected %q", tt.input, result, tt.expected)
		}
	}
}

func TestRemoveStopwords(t *testing.T) {
	result := RemoveStopwords("this is a test", []string{"is", "a"})

	expected := []string{"this", "test"}
	if !reflect.DeepEqual(result, expected) {
		t.Errorf("Expected %q, got %q", expected, result)
	}
}

func TestRemoveStopwordsCaseInsensitiveInput(t *testing.T) {
	result := RemoveStopwords("The Cat and THE Hat", []string{"the", "and"})

	expected := []string{"cat", "hat"}
	if !reflect.DeepEqual(result, expected) {
		t.Errorf("Expected %q, got %q", expected, result)
	}
}
