// Package numerics provides bounded-value arithmetic: directional ranges,
// amounts clamped to a range, and easing curves between two boundaries.
package numerics

import (
	"math"
	"strconv"
)

var (
	ZeroOne     = NewRange(0, 1)
	ZeroTen     = NewRange(0, 10)
	ZeroHundred = NewRange(0, 100)
)

// Range is an interval of float64 values. The boundaries are stored as given;
// fromEnd only changes which one is reported by Start and End. Min and Max
// never depend on the direction.
type Range struct {
	start   float64
	end     float64
	fromEnd bool
}

func NewRange(start float64, end float64) Range {
	return NewDirectedRange(start, end, false)
}

// NewDirectedRange creates a Range whose Start and End are swapped when
// fromEnd is set.
func NewDirectedRange(start float64, end float64, fromEnd bool) Range {
	return Range{
		start:   start,
		end:     end,
		fromEnd: fromEnd,
	}
}

func (r Range) Min() float64 {
	return math.Min(r.start, r.end)
}

func (r Range) Max() float64 {
	return math.Max(r.start, r.end)
}

// Span is Max - Min.
func (r Range) Span() float64 {
	return r.Max() - r.Min()
}

func (r Range) Start() float64 {
	if r.fromEnd {
		return r.end
	}
	return r.start
}

func (r Range) End() float64 {
	if r.fromEnd {
		return r.start
	}
	return r.end
}

func (r Range) FromEnd() bool {
	return r.fromEnd
}

// WithStart returns a copy with the stored start boundary replaced. The
// reported Start of the copy is still subject to FromEnd.
func (r Range) WithStart(start float64) Range {
	r.start = start
	return r
}

// WithEnd returns a copy with the stored end boundary replaced.
func (r Range) WithEnd(end float64) Range {
	r.end = end
	return r
}

func (r Range) WithFromEnd(fromEnd bool) Range {
	r.fromEnd = fromEnd
	return r
}

// Reversed flips the reported direction.
func (r Range) Reversed() Range {
	return r.WithFromEnd(!r.fromEnd)
}

func (r Range) AtOrBetween(input float64) float64 {
	return AtOrBetween(input, r.Min(), r.Max())
}

func (r Range) Contains(input float64) bool {
	return IsBetween(input, r.Min(), r.Max())
}

// Ratio is the position of input relative to Min (0) and Max (1). It is not
// clamped. A zero-width range yields 1 when input is past End, 0 otherwise.
func (r Range) Ratio(input float64) float64 {
	span := r.Span()
	if span == 0 {
		if input > r.End() {
			return 1
		}
		return 0
	}
	return (input - r.Min()) / span
}

func (r Range) Percent(input float64) float64 {
	return r.Ratio(input) * 100
}

// Lerp returns the value at ratio on the way from Start to End.
func (r Range) Lerp(ratio float64) float64 {
	start := r.Start()
	return start + (r.End()-start)*ratio
}

// Union spans both ranges. The result is never reversed.
func (r Range) Union(other Range) Range {
	return NewRange(math.Min(r.Min(), other.Min()), math.Max(r.Max(), other.Max()))
}

// Equal compares Min and Max only, so direction is ignored.
func (r Range) Equal(other Range) bool {
	return r.Min() == other.Min() && r.Max() == other.Max()
}

// Greater compares Max values and Less compares Min values. Together they are
// not a total order: two different ranges can be neither Less nor Greater
// than each other, or both.
func (r Range) Greater(other Range) bool {
	return r.Max() > other.Max()
}

func (r Range) Less(other Range) bool {
	return r.Min() < other.Min()
}

func (r Range) String() string {
	return formatFloat(r.Min()) + "~" + formatFloat(r.Max())
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
