// Package parse turns raw text entered at the CLI boundary into integer
// datasets. Validation lives here so malformed input never reaches the
// calculator.
package parse

import (
	"fmt"
	"strconv"
	"strings"
)

// Line parses a comma-separated list of integers, tolerating whitespace
// around each value. A blank line yields an empty dataset. The first
// malformed or empty token fails the whole line; positions in errors
// are 1-based.
func Line(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	values := make([]int, 0, len(parts))
	for i, part := range parts {
		token := strings.TrimSpace(part)
		if token == "" {
			return nil, fmt.Errorf("parse: empty value at position %d", i+1)
		}
		v, err := strconv.Atoi(token)
		if err != nil {
			return nil, fmt.Errorf("parse: invalid integer %q at position %d", token, i+1)
		}
		values = append(values, v)
	}
	return values, nil
}

// IsQuit reports whether the line is the quit sentinel ("q" or "quit",
// case-insensitive, surrounding whitespace ignored).
func IsQuit(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "q", "quit":
		return true
	}
	return false
}
