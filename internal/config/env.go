package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/yuhongherald/curvesheet/numerics"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "CURVESHEET"

// EnvConfig holds all environment-based configuration.
// Field names map to environment variables with the CURVESHEET_ prefix.
type EnvConfig struct {
	// GoogleCredentials is the service account credentials JSON.
	// Env: CURVESHEET_GOOGLE_CREDENTIALS
	GoogleCredentials string `envconfig:"GOOGLE_CREDENTIALS"`

	// SpreadsheetID selects an existing spreadsheet to recreate.
	// Env: CURVESHEET_SPREADSHEET_ID
	SpreadsheetID string `envconfig:"SPREADSHEET_ID"`

	// ShareWith is a comma-separated list of emails.
	// Env: CURVESHEET_SHARE_WITH
	ShareWith string `envconfig:"SHARE_WITH"`

	// Title is the spreadsheet title.
	// Env: CURVESHEET_TITLE (default: curvesheet)
	Title string `envconfig:"TITLE" default:"curvesheet"`

	// LogLevel is the log verbosity level.
	// Env: CURVESHEET_LOG_LEVEL (default: INFO)
	LogLevel string `envconfig:"LOG_LEVEL" default:"INFO"`

	// LogFormat is the log output format (pretty or json).
	// Env: CURVESHEET_LOG_FORMAT (default: pretty)
	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`

	// Steps is the number of intervals each curve is sampled at.
	// Env: CURVESHEET_STEPS (default: 20)
	Steps int `envconfig:"STEPS" default:"20"`

	// Functions is a comma-separated list of curve names; empty means all.
	// Env: CURVESHEET_FUNCTIONS
	Functions []numerics.Function `envconfig:"FUNCTIONS"`

	// From and To bound the sampled interval.
	// Env: CURVESHEET_FROM (default: 0), CURVESHEET_TO (default: 1)
	From float64 `envconfig:"FROM" default:"0"`
	To   float64 `envconfig:"TO" default:"1"`
}

// LoadFromEnv reads EnvConfig from the process environment.
func LoadFromEnv() (EnvConfig, error) {
	var cfg EnvConfig
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return EnvConfig{}, fmt.Errorf("process env: %w", err)
	}
	return cfg, nil
}

// ToAppConfig converts the environment configuration.
func (e EnvConfig) ToAppConfig() AppConfig {
	opts := []Option{
		WithGoogleCredentials(e.GoogleCredentials),
		WithSpreadsheetID(e.SpreadsheetID),
		WithShareWith(splitList(e.ShareWith)...),
		WithTitle(e.Title),
		WithLogLevel(e.LogLevel),
		WithLogFormat(parseLogFormat(e.LogFormat)),
		WithSteps(e.Steps),
		WithRange(e.From, e.To),
	}
	if len(e.Functions) > 0 {
		opts = append(opts, WithFunctions(e.Functions...))
	}
	return NewAppConfigWithOptions(opts...)
}

// LoadConfig loads the .env file at envFile (or ./.env when empty) and then
// the environment.
func LoadConfig(envFile string) (AppConfig, error) {
	if err := LoadDotEnv(envFile); err != nil {
		return AppConfig{}, fmt.Errorf("load .env: %w", err)
	}
	env, err := LoadFromEnv()
	if err != nil {
		return AppConfig{}, err
	}
	return env.ToAppConfig(), nil
}

func parseLogFormat(format string) LogFormat {
	if strings.EqualFold(format, string(LogFormatJSON)) {
		return LogFormatJSON
	}
	return LogFormatPretty
}

func splitList(list string) []string {
	var out []string
	for _, item := range strings.Split(list, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
