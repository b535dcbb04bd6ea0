// Package render formats statistics for display: a human-readable text
// report plus JSON and YAML for machine consumption. All of it is
// presentation output with no compatibility guarantee.
package render

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/statkit/statkit/internal/descstat"
	"gopkg.in/yaml.v3"
)

// ModeString formats a mode result the way the interactive driver
// prints it.
func ModeString(m descstat.ModeResult) string {
	switch len(m.Values) {
	case 0:
		return "No mode (empty dataset)"
	case 1:
		suffix := "s"
		if m.Frequency == 1 {
			suffix = ""
		}
		return fmt.Sprintf("%d (appears %d time%s)", m.Values[0], m.Frequency, suffix)
	default:
		return fmt.Sprintf("%v (each appears %d times)", m.Values, m.Frequency)
	}
}

// Text renders the summary as key-value lines.
func Text(s descstat.ExtendedSummary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Data: %v\n", s.Data)
	fmt.Fprintf(&b, "Size: %d elements\n", s.Size)
	fmt.Fprintf(&b, "Mean: %.2f\n", s.Mean)
	fmt.Fprintf(&b, "Median: %.2f\n", s.Median)
	fmt.Fprintf(&b, "Mode: %s\n", ModeString(descstat.ModeResult{Values: s.Mode, Frequency: s.ModeFrequency}))
	fmt.Fprintf(&b, "Range: %d\n", s.Range)
	fmt.Fprintf(&b, "Variance: %.2f\n", s.Variance)
	fmt.Fprintf(&b, "Standard Deviation: %.2f\n", s.StdDev)

	return b.String()
}

// JSON renders the summary as indented JSON.
func JSON(s descstat.ExtendedSummary) (string, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return "", fmt.Errorf("render: marshal json: %w", err)
	}
	return string(data), nil
}

// YAML renders the summary as a YAML document.
func YAML(s descstat.ExtendedSummary) (string, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("render: marshal yaml: %w", err)
	}
	return string(data), nil
}
