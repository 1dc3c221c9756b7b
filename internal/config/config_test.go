package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuhongherald/curvesheet/numerics"
)

func TestNewAppConfig_Defaults(t *testing.T) {
	cfg := NewAppConfig()

	assert.Equal(t, DefaultTitle, cfg.Title())
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel())
	assert.Equal(t, LogFormatPretty, cfg.LogFormat())
	assert.Equal(t, DefaultSteps, cfg.Steps())
	assert.Equal(t, numerics.Functions(), cfg.Functions())
	assert.True(t, cfg.Range().Equal(numerics.ZeroOne))
	assert.Empty(t, cfg.SpreadsheetID())
	assert.Empty(t, cfg.ShareWith())
}

func TestAppConfig_WithDoesNotMutate(t *testing.T) {
	base := NewAppConfigWithOptions(WithShareWith("a@example.com"), WithSteps(5))
	changed := base.With(WithShareWith("b@example.com"), WithSteps(0), WithTitle("t"))

	assert.Equal(t, []string{"a@example.com"}, base.ShareWith())
	assert.Equal(t, 5, base.Steps())
	assert.Equal(t, []string{"b@example.com"}, changed.ShareWith())
	assert.Equal(t, 1, changed.Steps(), "steps are at least 1")
	assert.Equal(t, "t", changed.Title())
}

func TestAppConfig_RangeKeepsDirection(t *testing.T) {
	cfg := NewAppConfigWithOptions(WithRange(10, -10))
	r := cfg.Range()
	assert.Equal(t, 10.0, r.Start())
	assert.Equal(t, -10.0, r.End())
	assert.Equal(t, -10.0, r.Min())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("CURVESHEET_STEPS", "8")
	t.Setenv("CURVESHEET_FUNCTIONS", "smooth_ft, SmoothMiddle_FTF")
	t.Setenv("CURVESHEET_SHARE_WITH", "a@example.com, ,b@example.com")
	t.Setenv("CURVESHEET_LOG_FORMAT", "JSON")
	t.Setenv("CURVESHEET_FROM", "2")
	t.Setenv("CURVESHEET_TO", "4.5")

	env, err := LoadFromEnv()
	require.NoError(t, err)
	cfg := env.ToAppConfig()

	assert.Equal(t, 8, cfg.Steps())
	assert.Equal(t, []numerics.Function{numerics.SmoothFT, numerics.SmoothMiddleFTF}, cfg.Functions())
	assert.Equal(t, []string{"a@example.com", "b@example.com"}, cfg.ShareWith())
	assert.Equal(t, LogFormatJSON, cfg.LogFormat())
	assert.Equal(t, "2~4.5", cfg.Range().String())
	assert.Equal(t, DefaultTitle, cfg.Title())
}

func TestLoadFromEnv_InvalidFunction(t *testing.T) {
	t.Setenv("CURVESHEET_FUNCTIONS", "bounce")

	_, err := LoadFromEnv()
	require.Error(t, err)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("CURVESHEET_TITLE=from-dotenv\n"), 0o644))
	t.Setenv("CURVESHEET_TITLE", "")
	require.NoError(t, os.Unsetenv("CURVESHEET_TITLE"))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", cfg.Title())
}

func TestLoadDotEnv_MissingFile(t *testing.T) {
	require.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "nope.env")))
}
