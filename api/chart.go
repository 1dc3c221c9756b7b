package api

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type Chart struct {
	Title       string   `json:"title" yaml:"title"`
	TopLeft     Coord    `json:"top_left" yaml:"top_left"`
	Size        Size     `json:"size" yaml:"size"`
	XAxisTitle  string   `json:"x_axis_title" yaml:"x_axis_title"`
	YAxisTitle  string   `json:"y_axis_title" yaml:"y_axis_title"`
	LabelColumn string   `json:"label_column" yaml:"label_column"`
	Series      []string `json:"series" yaml:"series"`
}

// 0-indexed coordinate
type Coord struct {
	X int64 `json:"x" yaml:"x"`
	Y int64 `json:"y" yaml:"y"`
}

type Size struct {
	Height int64 `json:"height" yaml:"height"`
	Width  int64 `json:"width" yaml:"width"`
}

// DefaultChart plots every column after the first against the first one.
func DefaultChart(title string, header []string) *Chart {
	chart := &Chart{
		Title:      title,
		TopLeft:    Coord{X: 900, Y: 20},
		Size:       Size{Height: 380, Width: 600},
		XAxisTitle: "x",
		YAxisTitle: "f(x)",
	}
	if len(header) > 0 {
		chart.LabelColumn = header[0]
		chart.Series = append(chart.Series, header[1:]...)
	}
	return chart
}

// ReadFromFile loads a list of charts. Files ending in .yaml or .yml are read
// as YAML, anything else as JSON.
func ReadFromFile(filename string) ([]*Chart, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	charts := make([]*Chart, 0)
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &charts)
	default:
		err = json.Unmarshal(b, &charts)
	}
	if err != nil {
		return nil, fmt.Errorf("parse chart file %s: %w", filename, err)
	}
	return charts, nil
}
