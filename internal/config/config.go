// Package config provides application configuration.
package config

import (
	"github.com/yuhongherald/curvesheet/numerics"
)

// Default configuration values.
const (
	DefaultLogLevel = "INFO"
	DefaultSteps    = 20
	DefaultTitle    = "curvesheet"
)

// LogFormat represents the log output format.
type LogFormat string

// LogFormat values.
const (
	LogFormatPretty LogFormat = "pretty"
	LogFormatJSON   LogFormat = "json"
)

// AppConfig holds the resolved configuration. It is immutable; use the With
// options to derive a changed copy.
type AppConfig struct {
	googleCredentials string
	spreadsheetID     string
	shareWith         []string
	title             string
	logLevel          string
	logFormat         LogFormat
	steps             int
	functions         []numerics.Function
	from              float64
	to                float64
}

// NewAppConfig creates an AppConfig with defaults.
func NewAppConfig() AppConfig {
	return AppConfig{
		title:     DefaultTitle,
		logLevel:  DefaultLogLevel,
		logFormat: LogFormatPretty,
		steps:     DefaultSteps,
		functions: numerics.Functions(),
		from:      numerics.ZeroOne.Start(),
		to:        numerics.ZeroOne.End(),
	}
}

// Option is a functional option for AppConfig.
type Option func(*AppConfig)

// NewAppConfigWithOptions creates an AppConfig with defaults and applies opts.
func NewAppConfigWithOptions(opts ...Option) AppConfig {
	cfg := NewAppConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// With returns a copy with opts applied.
func (c AppConfig) With(opts ...Option) AppConfig {
	c.shareWith = append([]string(nil), c.shareWith...)
	c.functions = append([]numerics.Function(nil), c.functions...)
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// GoogleCredentials returns the service account credentials JSON.
func (c AppConfig) GoogleCredentials() string { return c.googleCredentials }

// SpreadsheetID returns the spreadsheet to recreate, or "" to create one.
func (c AppConfig) SpreadsheetID() string { return c.spreadsheetID }

// ShareWith returns the emails the spreadsheet is shared with.
func (c AppConfig) ShareWith() []string { return append([]string(nil), c.shareWith...) }

// Title returns the spreadsheet title.
func (c AppConfig) Title() string { return c.title }

// LogLevel returns the log level.
func (c AppConfig) LogLevel() string { return c.logLevel }

// LogFormat returns the log format.
func (c AppConfig) LogFormat() LogFormat { return c.logFormat }

// Steps returns the number of intervals a curve is sampled at.
func (c AppConfig) Steps() int { return c.steps }

// Functions returns the curves to sample.
func (c AppConfig) Functions() []numerics.Function {
	return append([]numerics.Function(nil), c.functions...)
}

// Range returns the sampled interval. Start is from even when from > to.
func (c AppConfig) Range() numerics.Range {
	return numerics.NewRange(c.from, c.to)
}

// WithGoogleCredentials sets the credentials JSON.
func WithGoogleCredentials(credentials string) Option {
	return func(c *AppConfig) { c.googleCredentials = credentials }
}

// WithSpreadsheetID sets the spreadsheet to recreate.
func WithSpreadsheetID(id string) Option {
	return func(c *AppConfig) { c.spreadsheetID = id }
}

// WithShareWith sets the emails to share with.
func WithShareWith(emails ...string) Option {
	return func(c *AppConfig) { c.shareWith = append([]string(nil), emails...) }
}

// WithTitle sets the spreadsheet title.
func WithTitle(title string) Option {
	return func(c *AppConfig) { c.title = title }
}

// WithLogLevel sets the log level.
func WithLogLevel(level string) Option {
	return func(c *AppConfig) { c.logLevel = level }
}

// WithLogFormat sets the log format.
func WithLogFormat(format LogFormat) Option {
	return func(c *AppConfig) { c.logFormat = format }
}

// WithSteps sets the sample count; values below 1 become 1.
func WithSteps(steps int) Option {
	return func(c *AppConfig) { c.steps = numerics.AtOrAbove(steps, 1) }
}

// WithFunctions sets the curves to sample.
func WithFunctions(functions ...numerics.Function) Option {
	return func(c *AppConfig) { c.functions = append([]numerics.Function(nil), functions...) }
}

// WithRange sets the sampled interval boundaries.
func WithRange(from, to float64) Option {
	return func(c *AppConfig) {
		c.from = from
		c.to = to
	}
}
