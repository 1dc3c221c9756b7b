package api

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/yuhongherald/curvesheet/numerics"
)

// Column ZZZ is the last one the A1 helpers accept.
const maxColumnIndex = 18278

// CellPosition is 1-based: A1 is row 1, column 1.
type CellPosition struct {
	RowIndex    int
	ColumnIndex int
}

func Origin() *CellPosition {
	return &CellPosition{1, 1}
}

func (c *CellPosition) ToAlphaNumeric() (string, error) {
	if c.RowIndex < 1 {
		return "", fmt.Errorf("row index must be at least 1, got %d", c.RowIndex)
	}
	col, err := indexToColumn(c.ColumnIndex)
	if err != nil {
		return "", err
	}
	return col + strconv.Itoa(c.RowIndex), nil
}

func FromAlphaNumeric(alphaNumeric string) (*CellPosition, error) {
	splitIndex := strings.IndexFunc(alphaNumeric, unicode.IsDigit)
	if splitIndex <= 0 {
		return nil, fmt.Errorf("invalid A1 notation %q", alphaNumeric)
	}
	col, err := columnToIndex(strings.ToUpper(alphaNumeric[:splitIndex]))
	if err != nil {
		return nil, err
	}
	row, err := strconv.Atoi(alphaNumeric[splitIndex:])
	if err != nil {
		return nil, fmt.Errorf("invalid row in %q: %w", alphaNumeric, err)
	}

	return &CellPosition{
		RowIndex:    row,
		ColumnIndex: col,
	}, nil
}

// Offset never moves above row 1 or left of column A.
func (c *CellPosition) Offset(rowOffset int, columnOffset int) *CellPosition {
	return &CellPosition{
		RowIndex:    numerics.AtOrAbove(c.RowIndex+rowOffset, 1),
		ColumnIndex: numerics.AtOrAbove(c.ColumnIndex+columnOffset, 1),
	}
}

// indexToColumn converts a column index to A1 letters.
// E.g. 1 == A, 3 == C, 29 == AC, 731 == ABC
func indexToColumn(index int) (string, error) {
	if !numerics.IsBetween(index, 1, maxColumnIndex) {
		return "", fmt.Errorf("column index must be between 1 and %d (column ZZZ), got %d", maxColumnIndex, index)
	}

	var letters []byte
	for index > 0 {
		index--
		letters = append([]byte{byte('A' + index%26)}, letters...)
		index /= 26
	}
	return string(letters), nil
}

// columnToIndex converts A1 letters to a column index.
// E.g. C == 3, AC == 29, ABC == 731
func columnToIndex(column string) (int, error) {
	if column == "" {
		return 0, fmt.Errorf("empty column")
	}
	index := 0
	for i := 0; i < len(column); i++ {
		r := column[i]
		if r < 'A' || r > 'Z' {
			return 0, fmt.Errorf("invalid character in column, expected A-Z but got [%c]", r)
		}
		index = index*26 + int(r-'A') + 1
	}
	if index > maxColumnIndex {
		return 0, fmt.Errorf("column %s is past ZZZ", column)
	}
	return index, nil
}
