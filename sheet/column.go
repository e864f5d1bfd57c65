package sheet

import (
	"math"
	"sort"

	"github.com/redhooksw/sheetstats/stats"
)

// Column represents a spreadsheet column: an ordered sequence of numeric
// cell values. Element i of one column corresponds positionally to element i
// of another.
type Column struct {
	Name   string
	Values []float64
}

// New creates a column from values.
func New(values []float64) *Column {
	return &Column{Values: values}
}

// NewNamed creates a named column from values.
func NewNamed(name string, values []float64) *Column {
	return &Column{Name: name, Values: values}
}

// Len returns the number of cells in the column.
func (c *Column) Len() int {
	return len(c.Values)
}

// Mean returns the arithmetic mean of the column.
func (c *Column) Mean() (float64, error) {
	return stats.Average(c.Values)
}

// AvgDev returns the mean absolute deviation of the column.
func (c *Column) AvgDev() (float64, error) {
	return stats.AvgDev(c.Values)
}

// DevSq returns the sum of squared deviations of the column from its mean.
func (c *Column) DevSq() (float64, error) {
	return stats.DevSq(c.Values)
}

// Var returns the sample variance of the column.
func (c *Column) Var() (float64, error) {
	return stats.Var(c.Values)
}

// VarP returns the population variance of the column.
func (c *Column) VarP() (float64, error) {
	return stats.VarP(c.Values)
}

// StDev returns the sample standard deviation of the column.
func (c *Column) StDev() (float64, error) {
	return stats.StDev(c.Values)
}

// StDevP returns the population standard deviation of the column.
func (c *Column) StDevP() (float64, error) {
	return stats.StDevP(c.Values)
}

// Min returns the minimum value in the column, or NaN if it is empty.
func (c *Column) Min() float64 {
	if len(c.Values) == 0 {
		return math.NaN()
	}
	min := c.Values[0]
	for _, v := range c.Values[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

// Max returns the maximum value in the column, or NaN if it is empty.
func (c *Column) Max() float64 {
	if len(c.Values) == 0 {
		return math.NaN()
	}
	max := c.Values[0]
	for _, v := range c.Values[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

// Median returns the median value of the column, or NaN if it is empty.
func (c *Column) Median() float64 {
	if len(c.Values) == 0 {
		return math.NaN()
	}
	sorted := make([]float64, len(c.Values))
	copy(sorted, c.Values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}
