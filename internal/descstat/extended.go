package descstat

import "math"

// Extended adds dispersion statistics on top of a Calculator. It wraps
// the base calculator rather than copying it: extended reads see the
// exact same dataset and sorted-view cache, so a mutation through
// either surface is immediately visible to both.
type Extended struct {
	*Calculator
}

// NewExtended returns an Extended calculator owning a private copy of
// data.
func NewExtended(data []int) *Extended {
	return &Extended{Calculator: New(data)}
}

// Range returns max - min of the dataset, or 0 when empty.
func (e *Extended) Range() int {
	if e.IsEmpty() {
		return 0
	}
	s := e.sortedView()
	return s[len(s)-1] - s[0]
}

// Variance returns the population variance: the mean of squared
// deviations from the mean, with divisor n (not the sample divisor
// n-1). Returns 0.0 when empty.
func (e *Extended) Variance() float64 {
	if e.IsEmpty() {
		return 0.0
	}
	mean := e.Mean()
	sum := 0.0
	for _, v := range e.data {
		d := float64(v) - mean
		sum += d * d
	}
	return sum / float64(len(e.data))
}

// StdDev returns the population standard deviation, the square root of
// Variance. Returns 0.0 when empty.
func (e *Extended) StdDev() float64 {
	return math.Sqrt(e.Variance())
}

// Summary returns the base summary extended with the dispersion
// statistics.
func (e *Extended) Summary() ExtendedSummary {
	return ExtendedSummary{
		Summary:  e.Calculator.Summary(),
		Range:    e.Range(),
		Variance: e.Variance(),
		StdDev:   e.StdDev(),
	}
}

// ExtendedSummary is Summary plus the dispersion statistics.
type ExtendedSummary struct {
	Summary  `yaml:",inline"`
	Range    int     `json:"range" yaml:"range"`
	Variance float64 `json:"variance" yaml:"variance"`
	StdDev   float64 `json:"std_dev" yaml:"std_dev"`
}
