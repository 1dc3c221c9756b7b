package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yuhongherald/curvesheet/api"
	"github.com/yuhongherald/curvesheet/internal/config"
	"github.com/yuhongherald/curvesheet/internal/log"
	"github.com/yuhongherald/curvesheet/numerics"
	"github.com/yuhongherald/curvesheet/plot"
)

var errNoCredentials = errors.New("google credentials are required (set CURVESHEET_GOOGLE_CREDENTIALS or --google-credentials)")

const sheetURL = "https://docs.google.com/spreadsheets/d/"

type plotOptions struct {
	sample            sampleFlags
	title             string
	googleCredentials string
	spreadsheetID     string
	users             []string
	chartFile         string
	highlightColumns  []string
	gradient          string
	emailMessage      string
}

func plotCmd() *cobra.Command {
	var opts plotOptions

	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Upload sampled curves to Google Sheets",
		Long: `Upload sampled curves to Google Sheets with a line chart.

A new spreadsheet is created unless --spreadsheet-id names one to recreate.
Charts come from --chart-file (JSON, or YAML for .yaml/.yml); without it one
chart plots every curve against x.

Environment variables:
  CURVESHEET_GOOGLE_CREDENTIALS  Service account credentials JSON
  CURVESHEET_SPREADSHEET_ID      Spreadsheet to recreate
  CURVESHEET_SHARE_WITH          Comma-separated emails to share with
  CURVESHEET_TITLE               Spreadsheet title (default: curvesheet)
  CURVESHEET_LOG_LEVEL           DEBUG, INFO, WARN, ERROR (default: INFO)
  CURVESHEET_LOG_FORMAT          pretty, json (default: pretty)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}
			logger := log.NewLogger(cfg)
			return runPlot(cmd.Context(), cmd, cfg, opts, logger)
		},
	}

	opts.sample.register(cmd)
	cmd.Flags().StringVar(&opts.title, "title", config.DefaultTitle, "Title of Google Sheet")
	cmd.Flags().StringVar(&opts.googleCredentials, "google-credentials", "", "Google credentials JSON string")
	cmd.Flags().StringVar(&opts.spreadsheetID, "spreadsheet-id", "", "Existing spreadsheet id: "+sheetURL+"<id>/...")
	cmd.Flags().StringSliceVar(&opts.users, "share", nil, "Emails to share the spreadsheet with")
	cmd.Flags().StringVar(&opts.chartFile, "chart-file", "", "List of chart config objects (JSON or YAML)")
	cmd.Flags().StringSliceVar(&opts.highlightColumns, "highlight", nil, "Columns to colour by percentile band")
	cmd.Flags().StringVar(&opts.gradient, "gradient", "", "Colour highlighted columns with a gradient eased by this curve instead of bands")
	cmd.Flags().StringVar(&opts.emailMessage, "email-message", "", "Email the shared users this message. Leave blank to not send email")

	return cmd
}

func (o *plotOptions) load(cmd *cobra.Command) (config.AppConfig, error) {
	cfg, err := o.sample.load(cmd)
	if err != nil {
		return config.AppConfig{}, err
	}

	var opts []config.Option
	flags := cmd.Flags()
	if flags.Changed("title") {
		opts = append(opts, config.WithTitle(o.title))
	}
	if flags.Changed("google-credentials") {
		opts = append(opts, config.WithGoogleCredentials(o.googleCredentials))
	}
	if flags.Changed("spreadsheet-id") {
		opts = append(opts, config.WithSpreadsheetID(o.spreadsheetID))
	}
	if flags.Changed("share") {
		opts = append(opts, config.WithShareWith(o.users...))
	}
	return cfg.With(opts...), nil
}

func runPlot(ctx context.Context, cmd *cobra.Command, cfg config.AppConfig, opts plotOptions, logger *log.Logger) error {
	if cfg.GoogleCredentials() == "" {
		return errNoCredentials
	}

	r := opts.sample.sampleRange(cfg)
	table := plot.Sample(r, cfg.Steps(), cfg.Functions()).Rows()
	logger.Debug("sampled curves", "range", r.String(), "steps", cfg.Steps(), "rows", len(table))

	charts, err := loadCharts(opts.chartFile, cfg.Title(), table[0])
	if err != nil {
		return err
	}

	var gradient *numerics.Function
	if opts.gradient != "" {
		fn, err := numerics.ParseFunction(opts.gradient)
		if err != nil {
			return err
		}
		gradient = &fn
	}

	service, err := api.NewService(ctx, []byte(cfg.GoogleCredentials()))
	if err != nil {
		return fmt.Errorf("failed to start service: %w", err)
	}

	spreadsheetID := cfg.SpreadsheetID()
	if spreadsheetID != "" {
		if err := service.Recreate(ctx, spreadsheetID, cfg.Title()); err != nil {
			return fmt.Errorf("failed to recreate spreadsheet: %w", err)
		}
		logger.Info("recreated spreadsheet", "spreadsheet_id", spreadsheetID)
	} else {
		spreadsheetID, err = service.Create(ctx, cfg.Title())
		if err != nil {
			return fmt.Errorf("failed to create new spreadsheet: %w", err)
		}
		logger.Info("created spreadsheet", "spreadsheet_id", spreadsheetID)
	}
	logger = logger.With("spreadsheet_id", spreadsheetID)

	fmt.Fprintln(cmd.OutOrStdout(), sheetURL+spreadsheetID)

	users := cfg.ShareWith()
	for _, user := range users {
		if err := service.Share(ctx, spreadsheetID, user); err != nil {
			return fmt.Errorf("failed to share spreadsheet with user %s: %w", user, err)
		}
		logger.Info("shared spreadsheet", "user", user)
	}

	if err := service.InsertTable(ctx, spreadsheetID, api.Origin(), table); err != nil {
		return fmt.Errorf("failed to insert table: %w", err)
	}

	for _, column := range opts.highlightColumns {
		if gradient != nil {
			err = gradientHighlightColumn(ctx, service, spreadsheetID, table, column, *gradient)
		} else {
			err = percentileHighlightColumn(ctx, service, spreadsheetID, table, column)
		}
		if err != nil {
			return fmt.Errorf("failed to highlight column %s: %w", column, err)
		}
		logger.Debug("highlighted column", "column", column)
	}

	for _, chart := range charts {
		if err := service.AddChart(ctx, spreadsheetID, chart); err != nil {
			return fmt.Errorf("failed to add chart %s: %w", chart.Title, err)
		}
		logger.Info("added chart", "title", chart.Title, "series", len(chart.Series))
	}

	if opts.emailMessage != "" && len(users) > 0 {
		body := "Document link: " + sheetURL + spreadsheetID + "\n\n" + opts.emailMessage
		if err := service.SendEmail(ctx, strings.Join(users, ","), cfg.Title(), body); err != nil {
			return fmt.Errorf("failed to send email: %w", err)
		}
		logger.Info("sent email", "recipients", len(users))
	}

	return nil
}

func loadCharts(chartFile string, title string, header []string) ([]*api.Chart, error) {
	if chartFile == "" {
		return []*api.Chart{api.DefaultChart(title, header)}, nil
	}
	charts, err := api.ReadFromFile(chartFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read chart config: %w", err)
	}
	return charts, nil
}

func columnIndex(header []string, name string) int {
	for index, element := range header {
		if element == name {
			return index
		}
	}
	return -1
}

// columnCells returns the first and last data cell of a column, below the header.
func columnCells(table [][]string, name string) (*api.CellPosition, *api.CellPosition, error) {
	index := columnIndex(table[0], name)
	if index < 0 {
		return nil, nil, fmt.Errorf("%w: %s", plot.ErrMissingColumn, name)
	}
	return api.Origin().Offset(1, index), api.Origin().Offset(len(table)-1, index), nil
}

// percentileHighlightColumn paints each percentile band of a column a shade
// closer to white the higher the band.
func percentileHighlightColumn(ctx context.Context, service *api.Service, spreadsheetID string, table [][]string, name string) error {
	if len(table) <= 1 {
		return nil
	}
	start, end, err := columnCells(table, name)
	if err != nil {
		return err
	}
	values, err := plot.Column(table, name)
	if err != nil {
		return err
	}

	for i, band := range plot.Bands(values, plot.DefaultCuts) {
		color := api.Lerp(api.Red, api.White, plot.DefaultCuts[i])
		if err := service.Highlight(ctx, spreadsheetID, start, end, band, color); err != nil {
			return err
		}
	}
	return nil
}

func gradientHighlightColumn(ctx context.Context, service *api.Service, spreadsheetID string, table [][]string, name string, fn numerics.Function) error {
	if len(table) <= 1 {
		return nil
	}
	start, end, err := columnCells(table, name)
	if err != nil {
		return err
	}
	values, err := plot.Column(table, name)
	if err != nil {
		return err
	}
	band := plot.Bands(values, []float64{0, 1})
	if len(band) == 0 {
		return nil
	}
	return service.GradientHighlight(ctx, spreadsheetID, start, end, band[0], api.Green, api.Red, fn)
}
