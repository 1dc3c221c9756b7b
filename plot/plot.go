// Package plot samples easing curves into tables that can be printed or
// uploaded to a spreadsheet.
package plot

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/yuhongherald/curvesheet/numerics"
)

const XColumn = "x"

var ErrMissingColumn = errors.New("missing column")

// DefaultCuts split a column into five equal percentile bands.
var DefaultCuts = []float64{0.0, 0.2, 0.4, 0.6, 0.8, 1.0}

type Table struct {
	Functions []numerics.Function
	X         []float64
	// Values[i][j] is Functions[j] evaluated at X[i].
	Values [][]float64
}

// Sample walks steps+1 evenly spaced points from r.Start() to r.End() and
// evaluates every function over r at each point.
func Sample(r numerics.Range, steps int, functions []numerics.Function) Table {
	steps = numerics.AtOrAbove(steps, 1)
	t := Table{
		Functions: functions,
		X:         make([]float64, 0, steps+1),
		Values:    make([][]float64, 0, steps+1),
	}
	for i := 0; i <= steps; i++ {
		x := r.Lerp(float64(i) / float64(steps))
		row := make([]float64, len(functions))
		for j, fn := range functions {
			row[j] = fn.Over(x, r)
		}
		t.X = append(t.X, x)
		t.Values = append(t.Values, row)
	}
	return t
}

func (t Table) Header() []string {
	header := []string{XColumn}
	for _, fn := range t.Functions {
		header = append(header, fn.String())
	}
	return header
}

// Rows renders the header followed by one row per sample.
func (t Table) Rows() [][]string {
	rows := [][]string{t.Header()}
	for i, x := range t.X {
		row := []string{formatFloat(x)}
		for _, v := range t.Values[i] {
			row = append(row, formatFloat(v))
		}
		rows = append(rows, row)
	}
	return rows
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Column parses the numeric values below the header named name.
func Column(table [][]string, name string) ([]float64, error) {
	if len(table) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
	}
	index := -1
	for i, header := range table[0] {
		if header == name {
			index = i
			break
		}
	}
	if index < 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
	}

	values := make([]float64, 0, len(table)-1)
	for row := 1; row < len(table); row++ {
		if index >= len(table[row]) {
			return nil, fmt.Errorf("row %d has no %s value", row, name)
		}
		value, err := strconv.ParseFloat(table[row][index], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d column %s: %w", row, name, err)
		}
		values = append(values, value)
	}
	return values, nil
}

// Bands cuts the sorted values at the given percentile ratios and returns one
// Range per pair of neighbouring cuts. NaN values are ignored.
func Bands(values []float64, cuts []float64) []numerics.Range {
	sorted := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			sorted = append(sorted, v)
		}
	}
	if len(sorted) == 0 || len(cuts) < 2 {
		return nil
	}
	sort.Float64s(sorted)

	last := float64(len(sorted) - 1)
	at := func(cut float64) float64 {
		return sorted[int(math.Ceil(last*numerics.ZeroOne.AtOrBetween(cut)))]
	}

	bands := make([]numerics.Range, 0, len(cuts)-1)
	for i := 0; i < len(cuts)-1; i++ {
		bands = append(bands, numerics.NewRange(at(cuts[i]), at(cuts[i+1])))
	}
	return bands
}
