package dataset

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidNumber is returned when a token cannot be parsed as a float.
	ErrInvalidNumber = errors.New("invalid number")
	// ErrInvalidList is returned when a nested list literal cannot be parsed.
	ErrInvalidList = errors.New("invalid list format")
)

// MissingToken is the literal text treated as a null marker on input.
const MissingToken = "None"

// SplitTokens splits a comma-separated argument into trimmed tokens.
// An empty argument yields a single empty token.
func SplitTokens(s string) []string {
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// IsMissingToken reports whether tok denotes a missing value on input.
func IsMissingToken(tok string) bool {
	tok = strings.TrimSpace(tok)
	return tok == "" || tok == MissingToken
}

// ToValues converts tokens into a value sequence where missing tokens
// become nil and every other token is kept as its trimmed string.
func ToValues(tokens []string) []any {
	values := make([]any, len(tokens))
	for i, tok := range tokens {
		if IsMissingToken(tok) {
			continue
		}
		values[i] = strings.TrimSpace(tok)
	}
	return values
}

// ParseMissing splits s and converts it with ToValues.
func ParseMissing(s string) []any {
	return ToValues(SplitTokens(s))
}

// ParseFloats parses every token as a float64. The first token that is not
// a valid number aborts parsing with an error wrapping ErrInvalidNumber.
func ParseFloats(tokens []string) ([]float64, error) {
	values := make([]float64, len(tokens))
	for i, tok := range tokens {
		v, err := strconv.ParseFloat(strings.TrimSpace(tok), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q at position %d", ErrInvalidNumber, tok, i+1)
		}
		values[i] = v
	}
	return values, nil
}

// ParseNested parses a list-of-lists literal such as "[[1,2],[3,4]]" or
// "[['a'], [None, 3]]". Quoted scalars decode to string, None to nil,
// True and False to bool, integers to int and decimals to float64. Inner
// lists may nest further and decode to []any. Bare words, mappings and
// block-style input are rejected.
func ParseNested(s string) ([][]any, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(s), &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidList, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) != 1 {
		return nil, fmt.Errorf("%w: expected a list of lists", ErrInvalidList)
	}

	root := doc.Content[0]
	if !isFlowSequence(root) {
		return nil, fmt.Errorf("%w: expected a list of lists", ErrInvalidList)
	}

	nested := make([][]any, 0, len(root.Content))
	for _, item := range root.Content {
		if !isFlowSequence(item) {
			return nil, fmt.Errorf("%w: element at line %d is not a list", ErrInvalidList, item.Line)
		}
		inner, err := decodeList(item)
		if err != nil {
			return nil, err
		}
		nested = append(nested, inner)
	}
	return nested, nil
}

func isFlowSequence(n *yaml.Node) bool {
	return n.Kind == yaml.SequenceNode && n.Style&yaml.FlowStyle != 0
}

func decodeList(n *yaml.Node) ([]any, error) {
	values := make([]any, 0, len(n.Content))
	for _, item := range n.Content {
		v, err := decodeLiteral(item)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

// decodeLiteral converts a single list element node.
func decodeLiteral(n *yaml.Node) (any, error) {
	switch {
	case isFlowSequence(n):
		return decodeList(n)
	case n.Kind != yaml.ScalarNode:
		return nil, fmt.Errorf("%w: unsupported element at line %d", ErrInvalidList, n.Line)
	case n.Style&(yaml.SingleQuotedStyle|yaml.DoubleQuotedStyle) != 0:
		return n.Value, nil
	}

	switch n.Value {
	case MissingToken:
		return nil, nil
	case "True":
		return true, nil
	case "False":
		return false, nil
	}
	if i, err := strconv.Atoi(n.Value); err == nil {
		return i, nil
	}
	if isNumeric(n.Value) {
		if f, err := strconv.ParseFloat(n.Value, 64); err == nil {
			return f, nil
		}
	}
	return nil, fmt.Errorf("%w: bare word %q", ErrInvalidList, n.Value)
}

// isNumeric reports whether s starts like a number literal, after an
// optional sign. It keeps names such as inf and nan out of ParseFloat.
func isNumeric(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return s != "" && (s[0] == '.' || (s[0] >= '0' && s[0] <= '9'))
}
