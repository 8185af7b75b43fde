// Package sheets implements the tabular sink on top of the Google Sheets
// API: each logical report becomes a header row, data rows and an optional
// formula-based summary row on a named sheet.
package sheets

import (
	"context"
	"fmt"

	"log/slog"

	"google.golang.org/api/option"
	sheets "google.golang.org/api/sheets/v4"
)

// Config holds the sink target and credentials.
type Config struct {
	SpreadsheetID   string `mapstructure:"spreadsheet_id"`
	CredentialsJSON string `mapstructure:"credentials_json"` // path to service account JSON file, or raw JSON (for env vars)
}

// Sink writes reports to one spreadsheet.
type Sink struct {
	svc           *sheets.Service
	spreadsheetID string
}

// New creates the sheets service client.
func New(ctx context.Context, c *Config) (*Sink, error) {
	if c.SpreadsheetID == "" {
		return nil, fmt.Errorf("sheets spreadsheet_id is required")
	}

	var opts []option.ClientOption
	if c.CredentialsJSON != "" {
		jsonBytes := []byte(c.CredentialsJSON)
		if len(jsonBytes) > 0 && jsonBytes[0] == '{' {
			opts = append(opts, option.WithCredentialsJSON(jsonBytes))
		} else {
			opts = append(opts, option.WithCredentialsFile(c.CredentialsJSON))
		}
	}

	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &Sink{svc: svc, spreadsheetID: c.SpreadsheetID}, nil
}

// Validate checks the configured spreadsheet is reachable. Runs at startup,
// before any report query executes.
func (s *Sink) Validate(ctx context.Context) error {
	if _, err := s.svc.Spreadsheets.Get(s.spreadsheetID).Fields("spreadsheetId").Context(ctx).Do(); err != nil {
		return fmt.Errorf("sheets.spreadsheet_id %q is not accessible: %w", s.spreadsheetID, err)
	}
	return nil
}

// WriteReport clears the target sheet and writes header, data rows and the
// optional summary row in one update. Summary cells may carry formulas, so
// values go in as USER_ENTERED.
func (s *Sink) WriteReport(ctx context.Context, sheet string, headers []string, rows [][]interface{}, summary []interface{}) error {
	rng := fmt.Sprintf("'%s'", sheet)
	if _, err := s.svc.Spreadsheets.Values.Clear(s.spreadsheetID, rng, &sheets.ClearValuesRequest{}).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to clear sheet %q: %w", sheet, err)
	}

	values := make([][]interface{}, 0, len(rows)+2)
	headerRow := make([]interface{}, len(headers))
	for i, h := range headers {
		headerRow[i] = h
	}
	values = append(values, headerRow)
	values = append(values, rows...)
	if len(summary) > 0 {
		values = append(values, summary)
	}

	vr := &sheets.ValueRange{Values: values}
	_, err := s.svc.Spreadsheets.Values.
		Update(s.spreadsheetID, fmt.Sprintf("'%s'!A1", sheet), vr).
		ValueInputOption("USER_ENTERED").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to write report to sheet %q: %w", sheet, err)
	}

	slog.Default().InfoContext(ctx, "report written",
		slog.String("sheet", sheet),
		slog.Int("rows", len(rows)))

	return nil
}
