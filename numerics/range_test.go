package numerics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRange_MinMaxIgnoreDirection(t *testing.T) {
	tests := []struct {
		name string
		r    Range
	}{
		{"ascending", NewRange(2, 8)},
		{"descending", NewRange(8, 2)},
		{"ascending from end", NewDirectedRange(2, 8, true)},
		{"descending from end", NewDirectedRange(8, 2, true)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, 2.0, tt.r.Min())
			assert.Equal(t, 8.0, tt.r.Max())
			assert.LessOrEqual(t, tt.r.Min(), tt.r.Max())
		})
	}
}

func TestRange_StartEndFollowDirection(t *testing.T) {
	r := NewRange(1, 5)
	assert.Equal(t, 1.0, r.Start())
	assert.Equal(t, 5.0, r.End())
	assert.False(t, r.FromEnd())

	rev := NewDirectedRange(1, 5, true)
	assert.Equal(t, 5.0, rev.Start())
	assert.Equal(t, 1.0, rev.End())
	assert.True(t, rev.FromEnd())

	assert.Equal(t, rev, r.Reversed())
	assert.Equal(t, r, r.Reversed().Reversed())
}

func TestRange_WithSetsStoredBoundary(t *testing.T) {
	rev := NewDirectedRange(1, 5, true)

	changed := rev.WithStart(3)
	assert.Equal(t, 5.0, changed.Start())
	assert.Equal(t, 3.0, changed.End())
	assert.Equal(t, 1.0, rev.End(), "original is untouched")

	changed = rev.WithEnd(9)
	assert.Equal(t, 9.0, changed.Start())
	assert.Equal(t, 9.0, changed.Max())

	assert.False(t, rev.WithFromEnd(false).FromEnd())
}

func TestRange_AtOrBetween(t *testing.T) {
	r := NewRange(10, -10)
	for _, x := range []float64{-100, -10, -3.5, 0, 7, 10, 1e9} {
		got := r.AtOrBetween(x)
		assert.GreaterOrEqual(t, got, r.Min())
		assert.LessOrEqual(t, got, r.Max())
	}
	assert.Equal(t, -10.0, r.AtOrBetween(-11))
	assert.Equal(t, 10.0, r.AtOrBetween(11))
	assert.Equal(t, 4.0, r.AtOrBetween(4))
}

func TestRange_Contains(t *testing.T) {
	r := NewRange(5, 1)
	assert.True(t, r.Contains(1))
	assert.True(t, r.Contains(3))
	assert.True(t, r.Contains(5))
	assert.False(t, r.Contains(0.99))
	assert.False(t, r.Contains(5.01))
}

func TestRange_Ratio(t *testing.T) {
	r := NewRange(2, 6)
	assert.Equal(t, 0.0, r.Ratio(r.Min()))
	assert.Equal(t, 1.0, r.Ratio(r.Max()))
	assert.Equal(t, 0.25, r.Ratio(3))
	assert.Equal(t, 1.5, r.Ratio(8), "ratio is not clamped")
	assert.Equal(t, -0.5, r.Ratio(0))

	assert.Equal(t, r.Ratio(3), NewDirectedRange(6, 2, true).Ratio(3))
}

func TestRange_RatioZeroWidth(t *testing.T) {
	r := NewRange(5, 5)
	assert.Equal(t, 1.0, r.Ratio(10))
	assert.Equal(t, 0.0, r.Ratio(3))
	assert.Equal(t, 0.0, r.Ratio(5))
	assert.Equal(t, 100.0, r.Percent(6))
}

func TestRange_Percent(t *testing.T) {
	assert.Equal(t, 50.0, ZeroTen.Percent(5))
	assert.Equal(t, 25.0, ZeroHundred.Percent(25))
	assert.Equal(t, 100.0, ZeroOne.Percent(1))
}

func TestRange_Lerp(t *testing.T) {
	r := NewRange(10, 20)
	assert.Equal(t, 10.0, r.Lerp(0))
	assert.Equal(t, 15.0, r.Lerp(0.5))
	assert.Equal(t, 20.0, r.Lerp(1))

	rev := r.Reversed()
	assert.Equal(t, 20.0, rev.Lerp(0))
	assert.Equal(t, 12.5, rev.Lerp(0.75))
}

func TestRange_Union(t *testing.T) {
	a := NewRange(2, 5)
	b := NewRange(-1, 3)

	assert.True(t, a.Union(b).Equal(NewRange(-1, 5)))
	assert.True(t, a.Union(b).Equal(b.Union(a)))

	u := NewDirectedRange(9, 7, true).Union(a)
	assert.Equal(t, 2.0, u.Min())
	assert.Equal(t, 9.0, u.Max())
	assert.False(t, u.FromEnd())
}

func TestRange_EqualIgnoresDirection(t *testing.T) {
	assert.True(t, NewRange(0, 1).Equal(NewRange(1, 0)))
	assert.True(t, NewRange(0, 1).Equal(NewDirectedRange(0, 1, true)))
	assert.True(t, ZeroOne.Equal(NewRange(0, 1)))
	assert.False(t, NewRange(0, 1).Equal(NewRange(0, 2)))
}

func TestRange_ComparisonIsNotTotalOrder(t *testing.T) {
	outer := NewRange(0, 20)
	inner := NewRange(1, 10)
	// outer starts lower and ends higher, so it is both Less and Greater.
	assert.True(t, outer.Less(inner))
	assert.True(t, outer.Greater(inner))

	a := NewRange(0, 10)
	b := NewRange(-1, 20)
	assert.False(t, a.Equal(b))
	assert.False(t, a.Less(b))
	assert.False(t, a.Greater(b))
}

func TestRange_String(t *testing.T) {
	assert.Equal(t, "0~1", ZeroOne.String())
	assert.Equal(t, "-2.5~4", NewDirectedRange(4, -2.5, true).String())
}
