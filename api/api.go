package api

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/yuhongherald/curvesheet/numerics"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

var (
	ErrNoSheets   = errors.New("spreadsheet has no sheets")
	ErrEmptyTable = errors.New("attempting to insert empty table")
	ErrNoGridData = errors.New("sheet has no grid data")
)

const firstSheetTitle = "Sheet1"

type Service struct {
	sheets *sheets.Service
	drive  *drive.Service
	gmail  *gmail.Service
}

func NewService(ctx context.Context, credentialsJson []byte) (*Service, error) {
	sheetsService, err := sheets.NewService(ctx, option.WithCredentialsJSON(credentialsJson))
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}

	driveService, err := drive.NewService(ctx, option.WithCredentialsJSON(credentialsJson))
	if err != nil {
		return nil, fmt.Errorf("drive service: %w", err)
	}

	gmailService, err := gmail.NewService(ctx, option.WithCredentialsJSON(credentialsJson))
	if err != nil {
		return nil, fmt.Errorf("gmail service: %w", err)
	}

	return &Service{
		sheets: sheetsService,
		drive:  driveService,
		gmail:  gmailService,
	}, nil
}

func (s *Service) Share(ctx context.Context, fileId string, email string) error {
	permission := &drive.Permission{
		EmailAddress: email,
		Role:         "writer",
		Type:         "user",
	}
	_, err := s.drive.Permissions.Create(fileId, permission).Context(ctx).Do()
	return err
}

func (s *Service) Create(ctx context.Context, title string) (string, error) {
	spreadsheet, err := s.sheets.Spreadsheets.Create(&sheets.Spreadsheet{
		Properties: &sheets.SpreadsheetProperties{
			Title: title,
		},
	}).Context(ctx).Do()
	if err != nil {
		return "", err
	}
	return spreadsheet.SpreadsheetId, nil
}

// Recreate renames the spreadsheet and swaps Sheet1 for a blank one, so a
// previously plotted table and its charts disappear.
func (s *Service) Recreate(ctx context.Context, spreadsheetId string, title string) error {
	resp, err := s.sheets.Spreadsheets.Get(spreadsheetId).Context(ctx).Do()
	if err != nil {
		return err
	}
	if len(resp.Sheets) == 0 {
		return ErrNoSheets
	}

	_, err = s.sheets.Spreadsheets.BatchUpdate(spreadsheetId, &sheets.BatchUpdateSpreadsheetRequest{
		Requests: recreateRequests(resp.Sheets, title),
	}).Context(ctx).Do()
	return err
}

func recreateRequests(existing []*sheets.Sheet, title string) []*sheets.Request {
	var requests []*sheets.Request
	if title != "" {
		requests = append(requests, &sheets.Request{
			UpdateSpreadsheetProperties: &sheets.UpdateSpreadsheetPropertiesRequest{
				Fields: "title",
				Properties: &sheets.SpreadsheetProperties{
					Title: title,
				},
			},
		})
	}

	addFirstSheet := &sheets.Request{
		AddSheet: &sheets.AddSheetRequest{
			Properties: &sheets.SheetProperties{
				Title: firstSheetTitle,
			},
		},
	}

	for _, sheet := range existing {
		if sheet.Properties == nil || sheet.Properties.Title != firstSheetTitle {
			continue
		}
		// A spreadsheet cannot lose its last sheet, so rename, add, then delete.
		return append(requests,
			&sheets.Request{
				UpdateSheetProperties: &sheets.UpdateSheetPropertiesRequest{
					Fields: "title",
					Properties: &sheets.SheetProperties{
						SheetId: sheet.Properties.SheetId,
						Title:   "Temp",
					},
				},
			},
			addFirstSheet,
			&sheets.Request{
				DeleteSheet: &sheets.DeleteSheetRequest{
					SheetId: sheet.Properties.SheetId,
				},
			},
		)
	}

	return append(requests, addFirstSheet)
}

func (s *Service) InsertTable(ctx context.Context, spreadsheetId string, cellPosition *CellPosition, table [][]string) error {
	if len(table) == 0 || len(table[0]) == 0 {
		return ErrEmptyTable
	}
	height := len(table)
	width := len(table[0])

	var tableRaw [][]interface{}
	for _, row := range table {
		tableRawRow := make([]interface{}, 0, len(row))
		for _, column := range row {
			tableRawRow = append(tableRawRow, column)
		}
		tableRaw = append(tableRaw, tableRawRow)
	}
	start, err := cellPosition.ToAlphaNumeric()
	if err != nil {
		return err
	}

	end, err := cellPosition.Offset(height-1, width-1).ToAlphaNumeric()
	if err != nil {
		return err
	}

	_, err = s.sheets.Spreadsheets.Values.Update(spreadsheetId, start+":"+end, &sheets.ValueRange{
		Values: tableRaw,
	}).ValueInputOption("USER_ENTERED").Context(ctx).Do()
	return err
}

func (s *Service) firstGrid(ctx context.Context, spreadsheetId string) (int64, *sheets.GridData, error) {
	resp, err := s.sheets.Spreadsheets.Get(spreadsheetId).IncludeGridData(true).Context(ctx).Do()
	if err != nil {
		return 0, nil, err
	}
	if len(resp.Sheets) == 0 {
		return 0, nil, ErrNoSheets
	}
	first := resp.Sheets[0]
	if len(first.Data) == 0 || len(first.Data[0].RowData) == 0 {
		return 0, nil, ErrNoGridData
	}
	return first.Properties.SheetId, first.Data[0], nil
}

// AddChart draws a line chart with one series per chart.Series column, using
// chart.LabelColumn as the domain.
func (s *Service) AddChart(ctx context.Context, spreadsheetId string, chart *Chart) error {
	sheetId, grid, err := s.firstGrid(ctx, spreadsheetId)
	if err != nil {
		return err
	}

	labelIndex, dataIndexes, err := chartColumns(grid.RowData[0], chart)
	if err != nil {
		return err
	}

	startColumn := grid.StartColumn
	startRow := grid.StartRow
	endRow := int64(len(grid.RowData)) + startRow

	sourceRange := func(index int64) *sheets.ChartSourceRange {
		return &sheets.ChartSourceRange{
			Sources: []*sheets.GridRange{
				{
					StartColumnIndex: index + startColumn,
					EndColumnIndex:   index + startColumn + 1,
					StartRowIndex:    startRow,
					EndRowIndex:      endRow,
					SheetId:          sheetId,
				},
			},
		}
	}

	var series []*sheets.BasicChartSeries
	var window *numerics.Range
	for _, dataIndex := range dataIndexes {
		series = append(series, &sheets.BasicChartSeries{
			DataLabel: &sheets.DataLabel{
				TextFormat: &sheets.TextFormat{
					FontFamily: "Roboto",
				},
				Type: "NONE",
			},
			Series: &sheets.ChartData{
				SourceRange: sourceRange(dataIndex),
			},
			TargetAxis: "LEFT_AXIS",
		})
		if r, ok := columnRange(grid.RowData, dataIndex); ok {
			if window != nil {
				r = window.Union(r)
			}
			window = &r
		}
	}

	var viewWindowOptions *sheets.ChartAxisViewWindowOptions
	if window != nil {
		viewWindowOptions = &sheets.ChartAxisViewWindowOptions{
			ViewWindowMin: window.Min(),
			ViewWindowMax: window.Max(),
		}
	}

	request := &sheets.Request{
		AddChart: &sheets.AddChartRequest{
			Chart: &sheets.EmbeddedChart{
				Position: &sheets.EmbeddedObjectPosition{
					OverlayPosition: &sheets.OverlayPosition{
						AnchorCell: &sheets.GridCoordinate{
							ColumnIndex: 0,
							RowIndex:    0,
							SheetId:     sheetId,
						},
						HeightPixels:  chart.Size.Height,
						OffsetXPixels: chart.TopLeft.X,
						OffsetYPixels: chart.TopLeft.Y,
						WidthPixels:   chart.Size.Width,
					},
				},
				Spec: &sheets.ChartSpec{
					BasicChart: &sheets.BasicChartSpec{
						Axis: []*sheets.BasicChartAxis{
							{
								Format: &sheets.TextFormat{
									FontFamily: "Roboto",
								},
								Position:          "BOTTOM_AXIS",
								Title:             chart.XAxisTitle,
								ViewWindowOptions: &sheets.ChartAxisViewWindowOptions{},
							},
							{
								Format: &sheets.TextFormat{
									FontFamily: "Roboto",
								},
								Position:          "LEFT_AXIS",
								Title:             chart.YAxisTitle,
								ViewWindowOptions: viewWindowOptions,
							},
						},
						ChartType: "LINE",
						Domains: []*sheets.BasicChartDomain{
							{
								Domain: &sheets.ChartData{
									SourceRange: sourceRange(labelIndex),
								},
							},
						},
						HeaderCount: 1,
						Series:      series,
					},
					FontName:                "Roboto",
					HiddenDimensionStrategy: "SKIP_HIDDEN_ROWS_AND_COLUMNS",
					Title:                   chart.Title,
					TitleTextFormat: &sheets.TextFormat{
						FontFamily: "Roboto",
					},
				},
			},
		},
	}

	_, err = s.sheets.Spreadsheets.BatchUpdate(spreadsheetId, &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{
			request,
		},
	}).Context(ctx).Do()

	return err
}

func (s *Service) GetFirstSheetId(ctx context.Context, spreadsheetId string) (int64, error) {
	resp, err := s.sheets.Spreadsheets.Get(spreadsheetId).Context(ctx).Do()
	if err != nil {
		return 0, err
	}
	if len(resp.Sheets) == 0 {
		return 0, ErrNoSheets
	}
	return resp.Sheets[0].Properties.SheetId, nil
}

// Highlight paints every numeric cell between the two positions that falls
// inside band. Other cells keep their current background.
func (s *Service) Highlight(ctx context.Context, spreadsheetId string,
	startPosition *CellPosition, endPosition *CellPosition,
	band numerics.Range, chosenColor *Color) error {

	return s.paint(ctx, spreadsheetId, startPosition, endPosition, func(value float64) *sheets.Color {
		if !band.Contains(value) {
			return nil
		}
		return chosenColor.toSheetsColor()
	})
}

// GradientHighlight blends from color1 at the band's Start to color2 at its
// End, reshaped by fn.
func (s *Service) GradientHighlight(ctx context.Context, spreadsheetId string,
	startPosition *CellPosition, endPosition *CellPosition,
	band numerics.Range, color1 *Color, color2 *Color, fn numerics.Function) error {

	return s.paint(ctx, spreadsheetId, startPosition, endPosition, func(value float64) *sheets.Color {
		if !band.Contains(value) {
			return nil
		}
		return Ease(color1, color2, directedRatio(band, value), fn).toSheetsColor()
	})
}

// directedRatio is the position of value travelling from Start to End.
func directedRatio(r numerics.Range, value float64) float64 {
	ratio := r.Ratio(value)
	if r.Start() > r.End() {
		return 1 - ratio
	}
	return ratio
}

func (s *Service) paint(ctx context.Context, spreadsheetId string,
	startPosition *CellPosition, endPosition *CellPosition,
	pick func(value float64) *sheets.Color) error {

	sheetId, grid, err := s.firstGrid(ctx, spreadsheetId)
	if err != nil {
		return err
	}

	var rows []*sheets.RowData
	for i := startPosition.RowIndex; i <= endPosition.RowIndex; i++ {
		var cols []*sheets.CellData
		for j := startPosition.ColumnIndex; j <= endPosition.ColumnIndex; j++ {
			cell := cellAt(grid, i, j)

			var color *sheets.Color
			if value, ok := numberValue(cell); ok {
				color = pick(value)
			}
			if color == nil && cell != nil && cell.EffectiveFormat != nil {
				color = cell.EffectiveFormat.BackgroundColor
			}

			cols = append(cols, &sheets.CellData{
				UserEnteredFormat: &sheets.CellFormat{
					BackgroundColor: color,
				},
			})
		}
		rows = append(rows, &sheets.RowData{
			Values: cols,
		})
	}

	request := &sheets.Request{
		UpdateCells: &sheets.UpdateCellsRequest{
			Fields: "user_entered_format.background_color",
			Range: &sheets.GridRange{
				EndColumnIndex:   int64(endPosition.ColumnIndex),
				EndRowIndex:      int64(endPosition.RowIndex),
				SheetId:          sheetId,
				StartColumnIndex: int64(startPosition.ColumnIndex - 1),
				StartRowIndex:    int64(startPosition.RowIndex - 1),
			},
			Rows: rows,
		},
	}

	_, err = s.sheets.Spreadsheets.BatchUpdate(spreadsheetId, &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{
			request,
		},
	}).Context(ctx).Do()

	return err
}

func (s *Service) SendEmail(ctx context.Context, users string, title string, message string) error {
	messageObject := &gmail.Message{
		Payload: &gmail.MessagePart{
			Body: &gmail.MessagePartBody{
				Data: base64.StdEncoding.EncodeToString([]byte(message)),
			},
			Headers: []*gmail.MessagePartHeader{
				{
					Name:  "To",
					Value: users,
				},
				{
					Name:  "Subject",
					Value: title,
				},
			},
			MimeType: "text/html",
		},
	}

	_, err := s.gmail.Users.Messages.Send("me", messageObject).Context(ctx).Do()
	return err
}
