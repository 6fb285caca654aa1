package store

import (
	"context"

	"jobtracker/internal/models"
)

// Column headers of the application sheet, in column order A-E.
var Headers = []string{"Company Name", "Job Title", "Date", "Sender Email", "Status"}

// FirstDataRow is the 1-based index of the first data row; row 1 holds
// the headers.
const FirstDataRow = 2

// Row is a persisted application entry together with its 1-based sheet
// index.
type Row struct {
	Index       int
	Company     string
	Title       string
	Date        string
	SenderEmail string
	Status      string
}

// Store is the tabular store contract the reconciler writes through.
// Implementations never delete rows.
type Store interface {
	// Rows returns every data row in sheet order.
	Rows(ctx context.Context) ([]Row, error)
	// UpdateRow replaces the full row at the given 1-based index.
	UpdateRow(ctx context.Context, index int, rec models.Record) error
	// AppendRow adds a new row after the last data row.
	AppendRow(ctx context.Context, rec models.Record) error
}

// RowValues renders a record in column order A-E.
func RowValues(rec models.Record) []string {
	return []string{rec.Company, rec.Title, rec.ReceivedDate, rec.SenderEmail, rec.Status}
}
