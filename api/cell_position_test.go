package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexToColumn(t *testing.T) {
	tests := map[int]string{
		1:     "A",
		3:     "C",
		26:    "Z",
		27:    "AA",
		29:    "AC",
		52:    "AZ",
		731:   "ABC",
		18278: "ZZZ",
	}
	for index, want := range tests {
		got, err := indexToColumn(index)
		require.NoError(t, err)
		assert.Equal(t, want, got)

		back, err := columnToIndex(got)
		require.NoError(t, err)
		assert.Equal(t, index, back)
	}
}

func TestIndexToColumn_OutOfRange(t *testing.T) {
	_, err := indexToColumn(0)
	require.Error(t, err)
	_, err = indexToColumn(maxColumnIndex + 1)
	require.Error(t, err)
}

func TestColumnToIndex_InvalidCharacter(t *testing.T) {
	_, err := columnToIndex("A1")
	require.Error(t, err)
	_, err = columnToIndex("")
	require.Error(t, err)
}

func TestCellPosition_ToAlphaNumeric(t *testing.T) {
	got, err := Origin().ToAlphaNumeric()
	require.NoError(t, err)
	assert.Equal(t, "A1", got)

	got, err = Origin().Offset(20, 2).ToAlphaNumeric()
	require.NoError(t, err)
	assert.Equal(t, "C21", got)
}

func TestCellPosition_OffsetStaysOnSheet(t *testing.T) {
	p := Origin().Offset(-5, -5)
	assert.Equal(t, 1, p.RowIndex)
	assert.Equal(t, 1, p.ColumnIndex)
}

func TestFromAlphaNumeric(t *testing.T) {
	p, err := FromAlphaNumeric("ab12")
	require.NoError(t, err)
	assert.Equal(t, &CellPosition{RowIndex: 12, ColumnIndex: 28}, p)

	_, err = FromAlphaNumeric("12")
	require.Error(t, err)
	_, err = FromAlphaNumeric("ABC")
	require.Error(t, err)
}
