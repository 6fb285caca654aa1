package sheets

import (
	"context"
	"fmt"
	"strings"

	"jobtracker/internal/models"
	"jobtracker/internal/store"

	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"
)

// Store is the Google Sheets implementation of the tabular store,
// authenticated with a service account. Column meaning is driven by the
// header row, so a reordered sheet still reconciles correctly; writes
// always use the canonical A-E order.
type Store struct {
	svc           *sheetsapi.Service
	spreadsheetID string
	sheetName     string
}

// New connects to the spreadsheet and writes the header row if the sheet
// is still empty.
func New(ctx context.Context, cfg models.SheetConfig) (*Store, error) {
	svc, err := sheetsapi.NewService(ctx,
		option.WithCredentialsFile(cfg.CredentialsFile),
		option.WithScopes(sheetsapi.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("sheets: creating service: %w", err)
	}

	s := &Store{
		svc:           svc,
		spreadsheetID: cfg.SpreadsheetID,
		sheetName:     cfg.Name,
	}

	if err := s.ensureHeader(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) ensureHeader(ctx context.Context) error {
	resp, err := s.svc.Spreadsheets.Values.
		Get(s.spreadsheetID, s.rangeRef("A1:E1")).
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("sheets: reading header row: %w", err)
	}
	if len(resp.Values) > 0 && len(resp.Values[0]) > 0 {
		return nil
	}

	header := make([]interface{}, len(store.Headers))
	for i, h := range store.Headers {
		header[i] = h
	}
	_, err = s.svc.Spreadsheets.Values.
		Update(s.spreadsheetID, s.rangeRef("A1:E1"), &sheetsapi.ValueRange{Values: [][]interface{}{header}}).
		ValueInputOption("RAW").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("sheets: writing header row: %w", err)
	}
	return nil
}

// Rows reads the whole sheet and maps each data row through the header
// row, keeping its 1-based sheet index.
func (s *Store) Rows(ctx context.Context) ([]store.Row, error) {
	resp, err := s.svc.Spreadsheets.Values.
		Get(s.spreadsheetID, s.rangeRef("A1:E")).
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("sheets: reading rows: %w", err)
	}
	if len(resp.Values) == 0 {
		return nil, nil
	}

	columns := headerIndex(resp.Values[0])
	rows := make([]store.Row, 0, len(resp.Values)-1)
	for i, values := range resp.Values[1:] {
		rows = append(rows, rowFromValues(i+store.FirstDataRow, columns, values))
	}
	return rows, nil
}

// UpdateRow overwrites columns A-E of the given 1-based row.
func (s *Store) UpdateRow(ctx context.Context, index int, rec models.Record) error {
	rangeRef := s.rangeRef(fmt.Sprintf("A%d:E%d", index, index))
	_, err := s.svc.Spreadsheets.Values.
		Update(s.spreadsheetID, rangeRef, &sheetsapi.ValueRange{Values: [][]interface{}{recordValues(rec)}}).
		ValueInputOption("RAW").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("sheets: updating row %d: %w", index, err)
	}
	return nil
}

// AppendRow adds the record after the last data row.
func (s *Store) AppendRow(ctx context.Context, rec models.Record) error {
	_, err := s.svc.Spreadsheets.Values.
		Append(s.spreadsheetID, s.rangeRef("A:E"), &sheetsapi.ValueRange{Values: [][]interface{}{recordValues(rec)}}).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("sheets: appending row: %w", err)
	}
	return nil
}

func (s *Store) rangeRef(cells string) string {
	return fmt.Sprintf("%s!%s", s.sheetName, cells)
}

func recordValues(rec models.Record) []interface{} {
	values := store.RowValues(rec)
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

// headerIndex maps normalized header names to column positions.
func headerIndex(header []interface{}) map[string]int {
	columns := make(map[string]int, len(header))
	for i, v := range header {
		name := strings.ToLower(strings.TrimSpace(cellString(v)))
		if name != "" {
			columns[name] = i
		}
	}
	return columns
}

// rowFromValues builds a Row from one sheet row using the header mapping.
// Missing cells (Sheets trims trailing empties) come back as "".
func rowFromValues(index int, columns map[string]int, values []interface{}) store.Row {
	cell := func(name string) string {
		i, ok := columns[name]
		if !ok || i >= len(values) {
			return ""
		}
		return cellString(values[i])
	}

	return store.Row{
		Index:       index,
		Company:     cell("company name"),
		Title:       cell("job title"),
		Date:        cell("date"),
		SenderEmail: cell("sender email"),
		Status:      cell("status"),
	}
}

func cellString(v interface{}) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
