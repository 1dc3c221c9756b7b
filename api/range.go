package api

import (
	"errors"
	"fmt"

	"github.com/yuhongherald/curvesheet/numerics"
	"google.golang.org/api/sheets/v4"
)

var ErrMissingColumn = errors.New("missing column")

// columnRange spans the numeric cells of one column. ok is false when the
// column holds no numbers.
func columnRange(rows []*sheets.RowData, index int64) (r numerics.Range, ok bool) {
	for _, row := range rows {
		if row == nil || index >= int64(len(row.Values)) {
			continue
		}
		value, isNumber := numberValue(row.Values[index])
		if !isNumber {
			continue
		}
		if !ok {
			r = numerics.NewRange(value, value)
			ok = true
			continue
		}
		r = r.Union(numerics.NewRange(value, value))
	}
	return r, ok
}

func chartColumns(header *sheets.RowData, chart *Chart) (int64, []int64, error) {
	indexes := make(map[string]int64)
	for index, headerCell := range header.Values {
		if headerCell == nil || headerCell.EffectiveValue == nil || headerCell.EffectiveValue.StringValue == nil {
			continue
		}
		indexes[*headerCell.EffectiveValue.StringValue] = int64(index)
	}

	labelIndex, ok := indexes[chart.LabelColumn]
	if !ok {
		return 0, nil, fmt.Errorf("%w: %s", ErrMissingColumn, chart.LabelColumn)
	}

	dataIndexes := make([]int64, 0, len(chart.Series))
	for _, name := range chart.Series {
		index, ok := indexes[name]
		if !ok {
			return 0, nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
		dataIndexes = append(dataIndexes, index)
	}
	return labelIndex, dataIndexes, nil
}

// cellAt looks up a 1-based CellPosition in grid data that may not start at A1.
func cellAt(grid *sheets.GridData, rowIndex int, columnIndex int) *sheets.CellData {
	row := int64(rowIndex) - grid.StartRow - 1
	column := int64(columnIndex) - grid.StartColumn - 1
	if row < 0 || row >= int64(len(grid.RowData)) || grid.RowData[row] == nil {
		return nil
	}
	values := grid.RowData[row].Values
	if column < 0 || column >= int64(len(values)) {
		return nil
	}
	return values[column]
}

func numberValue(cell *sheets.CellData) (float64, bool) {
	if cell == nil || cell.EffectiveValue == nil || cell.EffectiveValue.NumberValue == nil {
		return 0, false
	}
	return *cell.EffectiveValue.NumberValue, true
}
