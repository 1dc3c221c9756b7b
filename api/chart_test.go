package api

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name string, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadFromFile_JSON(t *testing.T) {
	path := writeFile(t, "chart.json", `[
 {
   "title": "Easing",
   "top_left": {"x": 900, "y": 20},
   "size": {"height": 380, "width": 600},
   "x_axis_title": "x",
   "y_axis_title": "f(x)",
   "label_column": "x",
   "series": ["Linear_FT", "Smooth_FT"]
 }
]`)

	charts, err := ReadFromFile(path)
	require.NoError(t, err)
	require.Len(t, charts, 1)
	assert.Equal(t, "Easing", charts[0].Title)
	assert.Equal(t, int64(900), charts[0].TopLeft.X)
	assert.Equal(t, int64(600), charts[0].Size.Width)
	assert.Equal(t, []string{"Linear_FT", "Smooth_FT"}, charts[0].Series)
}

func TestReadFromFile_YAML(t *testing.T) {
	path := writeFile(t, "chart.yaml", `
- title: Return curves
  top_left: {x: 10, y: 400}
  size: {height: 200, width: 300}
  label_column: x
  series:
    - Smooth_FTF
    - SmoothMiddle_FTF
`)

	charts, err := ReadFromFile(path)
	require.NoError(t, err)
	require.Len(t, charts, 1)
	assert.Equal(t, "Return curves", charts[0].Title)
	assert.Equal(t, int64(400), charts[0].TopLeft.Y)
	assert.Equal(t, "x", charts[0].LabelColumn)
	assert.Equal(t, []string{"Smooth_FTF", "SmoothMiddle_FTF"}, charts[0].Series)
}

func TestReadFromFile_Errors(t *testing.T) {
	_, err := ReadFromFile(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)

	_, err = ReadFromFile(writeFile(t, "bad.json", "{not json"))
	require.Error(t, err)
}

func TestDefaultChart(t *testing.T) {
	chart := DefaultChart("curves", []string{"x", "Linear_FT", "Smooth_FT"})
	assert.Equal(t, "curves", chart.Title)
	assert.Equal(t, "x", chart.LabelColumn)
	assert.Equal(t, []string{"Linear_FT", "Smooth_FT"}, chart.Series)

	empty := DefaultChart("none", nil)
	assert.Empty(t, empty.LabelColumn)
	assert.Empty(t, empty.Series)
}
