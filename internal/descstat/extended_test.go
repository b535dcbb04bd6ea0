package descstat

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRange(t *testing.T) {
	tests := []struct {
		name string
		data []int
		want int
	}{
		{"empty", nil, 0},
		{"single", []int{42}, 0},
		{"sequence", []int{2, 4, 6, 8, 10}, 8},
		{"unsorted", []int{7, 1, 5}, 6},
		{"negatives", []int{-10, -2, 3}, 13},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewExtended(tt.data)
			require.Equal(t, tt.want, e.Range())
		})
	}
}

func TestVariance(t *testing.T) {
	tests := []struct {
		name string
		data []int
		want float64
	}{
		{"empty", nil, 0.0},
		{"single", []int{5}, 0.0},
		{"identical", []int{3, 3, 3, 3}, 0.0},
		{"even spread", []int{2, 4, 6, 8, 10}, 8.0},
		{"two values", []int{1, 3}, 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewExtended(tt.data)
			require.InDelta(t, tt.want, e.Variance(), 1e-9)
		})
	}
}

// Variance must use the population divisor n. With the sample divisor
// n-1 this dataset would yield 10.0 instead of 8.0.
func TestVariance_PopulationDivisor(t *testing.T) {
	e := NewExtended([]int{2, 4, 6, 8, 10})
	require.InDelta(t, 8.0, e.Variance(), 1e-9)
}

func TestStdDev(t *testing.T) {
	tests := []struct {
		name string
		data []int
		want float64
	}{
		{"empty", nil, 0.0},
		{"identical", []int{7, 7}, 0.0},
		{"even spread", []int{2, 4, 6, 8, 10}, 2.8284271247461903},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewExtended(tt.data)
			require.InDelta(t, tt.want, e.StdDev(), 1e-9)
		})
	}
}

func TestExtendedSharesDataset(t *testing.T) {
	e := NewExtended([]int{1, 2, 3})
	require.Equal(t, 2, e.Range()) // populate the sorted cache

	e.AddValue(11)
	require.Equal(t, 10, e.Range())
	require.InDelta(t, 2.5, e.Median(), 1e-9)

	e.SetData([]int{4, 4})
	require.Equal(t, 0, e.Range())
	require.Equal(t, 0.0, e.Variance())
}

func TestExtendedSummary(t *testing.T) {
	e := NewExtended([]int{2, 4, 6, 8, 10})
	got := e.Summary()

	require.Equal(t, []int{2, 4, 6, 8, 10}, got.Data)
	require.Equal(t, 5, got.Size)
	require.InDelta(t, 6.0, got.Mean, 1e-9)
	require.InDelta(t, 6.0, got.Median, 1e-9)
	require.Equal(t, []int{2, 4, 6, 8, 10}, got.Mode)
	require.Equal(t, 1, got.ModeFrequency)
	require.Equal(t, 8, got.Range)
	require.InDelta(t, 8.0, got.Variance, 1e-9)
	require.InDelta(t, 2.8284271247461903, got.StdDev, 1e-9)
}

func TestExtendedSummary_Empty(t *testing.T) {
	got := NewExtended(nil).Summary()

	require.Equal(t, 0, got.Range)
	require.Equal(t, 0.0, got.Variance)
	require.Equal(t, 0.0, got.StdDev)
}
