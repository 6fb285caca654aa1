package imap

import "jobtracker/internal/models"

// Client is the message source contract: select unread messages within a
// lookback window and peek-fetch them by sequence number (valid for the
// current session, which spans exactly one pipeline pass). There is
// deliberately no way to mark a message seen; the pipeline never alters
// read state.
type Client interface {
	Connect(server string) error
	Login(user, password string) error
	SelectMailbox(name string) error
	ListUnseenSeqNums(lookbackDays int) ([]uint32, error)
	FetchEmail(seqNum uint32) (*models.Email, error)
	Close() error
}
