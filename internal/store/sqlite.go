package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"jobtracker/internal/models"

	_ "modernc.org/sqlite"
)

// SQLiteStore is a local Store backend for running without a Google
// account. It keeps the sheet's 1-based row contract by storing the row
// index explicitly, starting at FirstDataRow.
type SQLiteStore struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS applications (
	row_idx      INTEGER PRIMARY KEY,
	company      TEXT NOT NULL,
	title        TEXT NOT NULL,
	date         TEXT NOT NULL DEFAULT '',
	sender_email TEXT NOT NULL DEFAULT '',
	status       TEXT NOT NULL DEFAULT ''
);`

// OpenSQLite opens (creating if needed) the local application store.
func OpenSQLite(path string) (*SQLiteStore, error) {
	// modernc sqlite uses DSN like: file:foo.db?_pragma=busy_timeout(5000)
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)", path)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite store: %w", err)
	}

	// sqlite typically wants a single writer
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite store: %w", err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init sqlite schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Rows returns every data row ordered by row index.
func (s *SQLiteStore) Rows(ctx context.Context) ([]Row, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT row_idx, company, title, date, sender_email, status
FROM applications
ORDER BY row_idx;`)
	if err != nil {
		return nil, fmt.Errorf("read store rows: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []Row
	for rows.Next() {
		var r Row
		if err := rows.Scan(&r.Index, &r.Company, &r.Title, &r.Date, &r.SenderEmail, &r.Status); err != nil {
			return nil, fmt.Errorf("scan store row: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate store rows: %w", err)
	}
	return out, nil
}

// UpdateRow replaces the full row at the given index.
func (s *SQLiteStore) UpdateRow(ctx context.Context, index int, rec models.Record) error {
	res, err := s.db.ExecContext(ctx, `
UPDATE applications
SET company = ?, title = ?, date = ?, sender_email = ?, status = ?
WHERE row_idx = ?;`,
		rec.Company, rec.Title, rec.ReceivedDate, rec.SenderEmail, rec.Status, index,
	)
	if err != nil {
		return fmt.Errorf("update store row %d: %w", index, err)
	}
	affected, err := res.RowsAffected()
	if err == nil && affected == 0 {
		return fmt.Errorf("update store row %d: no such row", index)
	}
	return nil
}

// AppendRow inserts a new row after the last one, at FirstDataRow when
// the store is empty.
func (s *SQLiteStore) AppendRow(ctx context.Context, rec models.Record) error {
	_, err := s.db.ExecContext(ctx, `
INSERT INTO applications (row_idx, company, title, date, sender_email, status)
SELECT COALESCE(MAX(row_idx) + 1, ?), ?, ?, ?, ?, ?
FROM applications;`,
		FirstDataRow, rec.Company, rec.Title, rec.ReceivedDate, rec.SenderEmail, rec.Status,
	)
	if err != nil {
		return fmt.Errorf("append store row: %w", err)
	}
	return nil
}
