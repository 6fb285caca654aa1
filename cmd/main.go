package main

import (
	"context"
	"io"

	"jobtracker/internal/config"
	"jobtracker/internal/filter"
	"jobtracker/internal/gemini"
	imapclient "jobtracker/internal/imap"
	"jobtracker/internal/logging"
	"jobtracker/internal/models"
	"jobtracker/internal/runlock"
	"jobtracker/internal/secrets"
	"jobtracker/internal/sheets"
	"jobtracker/internal/store"
	"jobtracker/internal/tracker"
)

func main() {
	cfg, err := config.Load("config.yaml")
	if err != nil {
		logging.Log.Fatalf("Error reading configuration file: %v", err)
	}

	if cfg.LockFile != "" {
		lock, held, err := runlock.Acquire(cfg.LockFile)
		if err != nil {
			logging.Log.Fatalf("Run lock error: %v", err)
		}
		if !held {
			logging.Log.Warn("Another run is in progress, exiting")
			return
		}
		defer func() {
			_ = lock.Release()
		}()
	}

	ctx := context.Background()

	st, closer, err := openStore(ctx, cfg)
	if err != nil {
		logging.Log.Fatalf("Store error: %v", err)
	}
	if closer != nil {
		defer func() {
			_ = closer.Close()
		}()
	}

	summary := runPass(ctx, cfg, st)

	logging.Log.Infof("Run complete: %d messages, %d updated, %d appended, %d skipped",
		summary.Messages, summary.Updated, summary.Appended, summary.Skipped)
}

// openStore builds the configured tabular store backend.
func openStore(ctx context.Context, cfg *models.Config) (store.Store, io.Closer, error) {
	switch cfg.Sheet.Backend {
	case "sqlite":
		s, err := store.OpenSQLite(cfg.Sheet.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return s, s, nil
	default:
		s, err := sheets.New(ctx, cfg.Sheet)
		if err != nil {
			return nil, nil, err
		}
		return s, nil, nil
	}
}

// runPass executes exactly one pipeline pass over the currently-unread
// messages inside the lookback window.
func runPass(ctx context.Context, cfg *models.Config, st store.Store) tracker.Summary {
	password, err := secrets.ResolveIMAPPassword(cfg.Email)
	if err != nil {
		logging.Log.Fatalf("Credential error: %v", err)
	}

	client := imapclient.NewStandardClient()

	// A connection failure aborts the whole run: no messages processed.
	if err := client.Connect(cfg.Email.Imap); err != nil {
		logging.Log.Fatalf("IMAP connection error: %v", err)
	}
	defer func(client *imapclient.StandardClient) {
		_ = client.Close()
	}(client)

	if err := client.Login(cfg.Email.Login, password); err != nil {
		logging.Log.Fatalf("Login error: %v", err)
	}

	if err := client.SelectMailbox(cfg.Email.MailBox); err != nil {
		logging.Log.Fatalf("Folder selection error: %v", err)
	}

	seqNums, err := client.ListUnseenSeqNums(cfg.Email.LookbackDays)
	if err != nil {
		logging.Log.Fatalf("Error searching for unseen emails: %v", err)
	}

	if len(seqNums) == 0 {
		logging.Log.Info("No new unread emails found")
		return tracker.Summary{}
	}

	logging.Log.Infof("Found %d unread emails to process from the last %d days", len(seqNums), cfg.Email.LookbackDays)

	processor := tracker.NewProcessor(
		client,
		gemini.NewClient(cfg.Gemini),
		st,
		filter.New(cfg.Keywords),
		cfg.Pacing,
	)

	return processor.Run(ctx, seqNums)
}
