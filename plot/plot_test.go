package plot

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuhongherald/curvesheet/numerics"
)

func TestSample(t *testing.T) {
	fns := []numerics.Function{numerics.LinearFT, numerics.SmoothFTF}
	table := Sample(numerics.ZeroTen, 4, fns)

	assert.Equal(t, []float64{0, 2.5, 5, 7.5, 10}, table.X)
	require.Len(t, table.Values, 5)
	for i, x := range table.X {
		require.Len(t, table.Values[i], 2)
		assert.Equal(t, x, table.Values[i][0])
		assert.Equal(t, numerics.SmoothReturn(x, 0, 10), table.Values[i][1])
	}
	assert.InDelta(t, 10.0, table.Values[2][1], 1e-9)
}

func TestSample_Reversed(t *testing.T) {
	table := Sample(numerics.ZeroTen.Reversed(), 2, []numerics.Function{numerics.SmoothFT})
	assert.Equal(t, []float64{10, 5, 0}, table.X)
	assert.InDelta(t, 10.0, table.Values[0][0], 1e-9)
	assert.InDelta(t, 0.0, table.Values[2][0], 1e-9)
}

func TestSample_AtLeastOneStep(t *testing.T) {
	table := Sample(numerics.ZeroOne, 0, numerics.Functions())
	assert.Equal(t, []float64{0, 1}, table.X)
	assert.Len(t, table.Values[0], len(numerics.Functions()))
}

func TestTable_Rows(t *testing.T) {
	table := Sample(numerics.ZeroTen, 2, []numerics.Function{numerics.LinearFT})
	assert.Equal(t, [][]string{
		{"x", "Linear_FT"},
		{"0", "0"},
		{"5", "5"},
		{"10", "10"},
	}, table.Rows())
}

func TestColumn(t *testing.T) {
	rows := [][]string{
		{"x", "v"},
		{"0", "1.5"},
		{"1", "-2"},
	}
	values, err := Column(rows, "v")
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, -2}, values)

	_, err = Column(rows, "w")
	require.ErrorIs(t, err, ErrMissingColumn)

	_, err = Column([][]string{{"v"}, {"abc"}}, "v")
	require.Error(t, err)

	_, err = Column(nil, "v")
	require.ErrorIs(t, err, ErrMissingColumn)
}

func TestBands(t *testing.T) {
	values := []float64{9, 1, 5, 3, 7, math.NaN()}
	bands := Bands(values, []float64{0, 0.5, 1})
	require.Len(t, bands, 2)
	assert.Equal(t, "1~5", bands[0].String())
	assert.Equal(t, "5~9", bands[1].String())

	assert.Len(t, Bands(values, DefaultCuts), len(DefaultCuts)-1)
	assert.Nil(t, Bands(nil, DefaultCuts))
	assert.Nil(t, Bands(values, []float64{0.5}))
}
