// Package descstat computes descriptive statistics over a dataset of
// integers: mean, median and mode on the base Calculator, with range,
// variance and standard deviation added by Extended.
package descstat

import "sort"

// Calculator owns a mutable dataset of integers and derives statistics
// from it. The dataset is private; every way in or out of the calculator
// copies, so callers can never alias internal state.
//
// Empty datasets are a normal condition, not an error: every statistic
// has a documented zero-valued result when no data is present.
type Calculator struct {
	data []int

	// Ascending copy of data, computed lazily and reused by every
	// order-dependent statistic. nil means stale; every mutation
	// resets it.
	sorted []int
}

// New returns a Calculator owning a private copy of data. A nil or
// empty slice yields an empty calculator.
func New(data []int) *Calculator {
	c := &Calculator{}
	c.SetData(data)
	return c
}

// Data returns a copy of the dataset. Mutating the returned slice has
// no effect on the calculator.
func (c *Calculator) Data() []int {
	out := make([]int, len(c.data))
	copy(out, c.data)
	return out
}

// SetData replaces the dataset with a copy of values.
func (c *Calculator) SetData(values []int) {
	c.data = make([]int, len(values))
	copy(c.data, values)
	c.sorted = nil
}

// Size returns the number of elements in the dataset.
func (c *Calculator) Size() int {
	return len(c.data)
}

// IsEmpty reports whether the dataset has no elements.
func (c *Calculator) IsEmpty() bool {
	return len(c.data) == 0
}

// AddValue appends a single value to the dataset.
func (c *Calculator) AddValue(v int) {
	c.data = append(c.data, v)
	c.sorted = nil
}

// AddValues appends all given values to the dataset.
func (c *Calculator) AddValues(values []int) {
	c.data = append(c.data, values...)
	c.sorted = nil
}

// Clear removes all data from the calculator.
func (c *Calculator) Clear() {
	c.data = nil
	c.sorted = nil
}

func (c *Calculator) sortedView() []int {
	if c.sorted == nil {
		c.sorted = make([]int, len(c.data))
		copy(c.sorted, c.data)
		sort.Ints(c.sorted)
	}
	return c.sorted
}

// Mean returns the arithmetic mean of the dataset, or 0.0 when empty.
func (c *Calculator) Mean() float64 {
	if c.IsEmpty() {
		return 0.0
	}
	sum := 0
	for _, v := range c.data {
		sum += v
	}
	return float64(sum) / float64(len(c.data))
}

// Median returns the middle value of the sorted dataset. For an even
// number of elements it is the average of the two middle values.
// Returns 0.0 when empty.
func (c *Calculator) Median() float64 {
	if c.IsEmpty() {
		return 0.0
	}
	s := c.sortedView()
	n := len(s)
	if n%2 == 1 {
		return float64(s[n/2])
	}
	return float64(s[n/2-1]+s[n/2]) / 2.0
}

// Mode returns every value sharing the maximum observed frequency.
// Multimodal datasets report all tied values; ties are never broken
// arbitrarily. Returns a zero ModeResult when empty.
func (c *Calculator) Mode() ModeResult {
	if c.IsEmpty() {
		return ModeResult{}
	}

	freq := make(map[int]int, len(c.data))
	maxFreq := 0
	for _, v := range c.data {
		freq[v]++
		if freq[v] > maxFreq {
			maxFreq = freq[v]
		}
	}

	var values []int
	for v, f := range freq {
		if f == maxFreq {
			values = append(values, v)
		}
	}
	sort.Ints(values)

	return ModeResult{Values: values, Frequency: maxFreq}
}

// Summary returns a snapshot of the dataset together with every base
// statistic. It is a convenience aggregate; no new computation happens
// here.
func (c *Calculator) Summary() Summary {
	mode := c.Mode()
	return Summary{
		Data:          c.Data(),
		Size:          c.Size(),
		Mean:          c.Mean(),
		Median:        c.Median(),
		Mode:          mode.Values,
		ModeFrequency: mode.Frequency,
	}
}

// ModeResult holds the values that share the maximum observed frequency
// in a dataset, sorted ascending with no duplicates, plus that
// frequency. An empty dataset yields no values and frequency 0.
type ModeResult struct {
	Values    []int `json:"values" yaml:"values"`
	Frequency int   `json:"frequency" yaml:"frequency"`
}

// Summary is a fixed-shape aggregate of the base statistics, suitable
// for display serialization. It carries no compatibility guarantee; it
// is presentation output, not a persisted contract.
type Summary struct {
	Data          []int   `json:"data" yaml:"data"`
	Size          int     `json:"size" yaml:"size"`
	Mean          float64 `json:"mean" yaml:"mean"`
	Median        float64 `json:"median" yaml:"median"`
	Mode          []int   `json:"mode" yaml:"mode"`
	ModeFrequency int     `json:"mode_frequency" yaml:"mode_frequency"`
}
