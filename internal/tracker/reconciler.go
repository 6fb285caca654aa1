package tracker

import (
	"context"
	"fmt"
	"strings"

	"jobtracker/internal/models"
	"jobtracker/internal/store"
)

// Outcome is the terminal state of a record offered to the reconciler.
type Outcome int

const (
	// OutcomeSkipped covers every path that ends without a store write.
	OutcomeSkipped Outcome = iota
	// OutcomeRejected means the record was invalid (missing company or title).
	OutcomeRejected
	// OutcomeUpdated means an existing row with the same composite key was overwritten.
	OutcomeUpdated
	// OutcomeAppended means a new row was added.
	OutcomeAppended
)

func (o Outcome) String() string {
	switch o {
	case OutcomeRejected:
		return "rejected"
	case OutcomeUpdated:
		return "updated"
	case OutcomeAppended:
		return "appended"
	default:
		return "skipped"
	}
}

// Reconciler matches records against the store by composite key
// (company, title, sender email) and updates in place or appends.
// The scan is linear over all rows, which is fine at email-triage scale;
// a larger deployment would swap in an indexed Store without changing
// this contract.
type Reconciler struct {
	store store.Store
}

func NewReconciler(s store.Store) *Reconciler {
	return &Reconciler{store: s}
}

// Upsert writes the record to the store. Invalid records are rejected
// without touching the store. On a composite-key match the whole row is
// overwritten, status and date included: the newest extraction supersedes
// any prior one for the same application.
func (r *Reconciler) Upsert(ctx context.Context, rec models.Record) (Outcome, error) {
	if !rec.Valid() {
		return OutcomeRejected, nil
	}

	rows, err := r.store.Rows(ctx)
	if err != nil {
		return OutcomeSkipped, fmt.Errorf("scanning store: %w", err)
	}

	key := rec.Key()
	for _, row := range rows {
		if rowKey(row) == key {
			if err := r.store.UpdateRow(ctx, row.Index, rec); err != nil {
				return OutcomeSkipped, fmt.Errorf("updating row %d: %w", row.Index, err)
			}
			return OutcomeUpdated, nil
		}
	}

	if err := r.store.AppendRow(ctx, rec); err != nil {
		return OutcomeSkipped, fmt.Errorf("appending row: %w", err)
	}
	return OutcomeAppended, nil
}

func rowKey(row store.Row) [3]string {
	return [3]string{
		strings.ToLower(strings.TrimSpace(row.Company)),
		strings.ToLower(strings.TrimSpace(row.Title)),
		strings.ToLower(strings.TrimSpace(row.SenderEmail)),
	}
}
