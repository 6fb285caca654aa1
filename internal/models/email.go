package models

import "time"

// Email represents a normalized parsed email message.
// SeqNum is the message's sequence number in the selected mailbox, valid
// for the current session only. From holds the bare sender address (name
// and brackets stripped); HeaderDate is the parsed Date header, zero when
// absent or malformed.
type Email struct {
	SeqNum       uint32
	From         string
	Subject      string
	BodyText     string
	HeaderDate   time.Time
	InternalDate time.Time
	TraceID      string
}
