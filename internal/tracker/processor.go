package tracker

import (
	"context"
	"strings"
	"time"

	"jobtracker/internal/fields"
	"jobtracker/internal/filter"
	"jobtracker/internal/logging"
	"jobtracker/internal/models"
	"jobtracker/internal/store"

	"golang.org/x/time/rate"
)

// MessageSource yields one normalized email per mailbox sequence number
// without altering its unread state.
type MessageSource interface {
	FetchEmail(seqNum uint32) (*models.Email, error)
}

// Extractor turns a message's subject and body into the labeled-line text
// block the field parser understands.
type Extractor interface {
	Extract(ctx context.Context, subject, body string) (string, error)
}

// Summary counts the terminal states of one pipeline pass.
type Summary struct {
	Messages int
	Updated  int
	Appended int
	Skipped  int
}

// Processor drives one message at a time through filter, extraction,
// parsing and reconciliation. Every per-message failure is logged and
// skipped; a poisoned message never aborts the batch.
type Processor struct {
	source     MessageSource
	extractor  Extractor
	reconciler *Reconciler
	keywords   filter.Keywords
	pacer      *rate.Limiter
}

// NewProcessor wires the pipeline stages together. The pacing interval
// spaces messages to respect the extraction service's rate limit; zero
// disables pacing.
func NewProcessor(source MessageSource, extractor Extractor, st store.Store, keywords filter.Keywords, pacing time.Duration) *Processor {
	return &Processor{
		source:     source,
		extractor:  extractor,
		reconciler: NewReconciler(st),
		keywords:   keywords,
		pacer:      newPacer(pacing),
	}
}

func newPacer(interval time.Duration) *rate.Limiter {
	if interval <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	l := rate.NewLimiter(rate.Every(interval), 1)
	// The bucket starts full; drain it so the wait after the first
	// message already enforces the interval.
	l.Allow()
	return l
}

// Run processes the batch sequentially. The pacing wait applies after
// every message regardless of how it terminated.
func (p *Processor) Run(ctx context.Context, seqNums []uint32) Summary {
	var sum Summary
	for _, seqNum := range seqNums {
		sum.Messages++

		outcome, err := p.ProcessMessage(ctx, seqNum)
		switch {
		case err != nil:
			logging.Log.Errorf("Error processing message %d: %v", seqNum, err)
			sum.Skipped++
		case outcome == OutcomeUpdated:
			sum.Updated++
		case outcome == OutcomeAppended:
			sum.Appended++
		default:
			sum.Skipped++
		}

		if err := p.pacer.Wait(ctx); err != nil {
			logging.Log.Warnf("Run interrupted: %v", err)
			return sum
		}
	}
	return sum
}

// ProcessMessage walks one message through the pipeline:
// fetch → filter → extract → parse → reconcile.
// A returned error means the message could not be fetched; every later
// failure is handled here and reported through the outcome.
func (p *Processor) ProcessMessage(ctx context.Context, seqNum uint32) (Outcome, error) {
	email, err := p.source.FetchEmail(seqNum)
	if err != nil {
		return OutcomeSkipped, err
	}

	locallog := logging.Log.WithField("trace_id", email.TraceID)

	if !p.keywords.Match(email.Subject) {
		locallog.Debugf("Subject not job-related, skipping: %s", email.Subject)
		return OutcomeSkipped, nil
	}

	if strings.TrimSpace(email.BodyText) == "" {
		locallog.Infof("Skipping email with empty body. Subject: %s", email.Subject)
		return OutcomeSkipped, nil
	}

	locallog.Infof("Processing email | From: %s | Subject: %s", email.From, email.Subject)

	output, err := p.extractor.Extract(ctx, email.Subject, email.BodyText)
	if err != nil {
		locallog.WithError(err).Error("Extraction failed, skipping message")
		return OutcomeSkipped, nil
	}
	if strings.TrimSpace(output) == "" {
		locallog.Info("Extractor returned nothing, skipping message")
		return OutcomeSkipped, nil
	}

	rec := fields.BuildRecord(fields.Parse(output), email)

	outcome, err := p.reconciler.Upsert(ctx, rec)
	if err != nil {
		locallog.WithError(err).Error("Store write failed, record dropped for this pass")
		return OutcomeSkipped, nil
	}

	switch outcome {
	case OutcomeRejected:
		locallog.Warn("Missing company or job title, skipping")
	case OutcomeUpdated:
		locallog.Infof("Updated entry for %s at %s", rec.Title, rec.Company)
	case OutcomeAppended:
		locallog.Infof("Added new entry for %s at %s", rec.Title, rec.Company)
	}

	return outcome, nil
}
