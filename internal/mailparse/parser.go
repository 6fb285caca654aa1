package mailparse

import (
	"io"
	"mime"
	"regexp"
	"strings"

	"jobtracker/internal/models"

	"github.com/emersion/go-imap"
	"github.com/emersion/go-message/mail"
	"github.com/google/uuid"
)

// Parse extracts a normalized Email from a fetched IMAP message.
func Parse(msg *imap.Message) (*models.Email, error) {
	section := &imap.BodySectionName{}
	r := msg.GetBody(section)
	if r == nil {
		return nil, io.EOF
	}

	email, err := ReadMail(r)
	if err != nil {
		return nil, err
	}

	email.SeqNum = msg.SeqNum
	email.InternalDate = msg.InternalDate
	return email, nil
}

// ReadMail parses a raw RFC 822 message. Body selection follows the
// pipeline contract: the first text/plain inline part of a multipart
// message, or the decoded single payload of a non-multipart message.
// BodyText stays empty when neither exists.
func ReadMail(r io.Reader) (*models.Email, error) {
	mr, err := mail.CreateReader(r)
	if err != nil {
		return nil, err
	}

	email := &models.Email{
		TraceID: uuid.New().String(),
	}

	header := mr.Header

	// Extract bare sender address
	email.From = extractEmailAddress(header.Get("From"))

	// Date header drives the received-date fallback
	if date, err := header.Date(); err == nil {
		email.HeaderDate = date
	}

	// Decode Subject
	decodedSubject, err := DecodeHeader(header.Get("Subject"))
	if err != nil {
		return nil, err
	}
	email.Subject = decodedSubject

	contentType, _, _ := header.ContentType()
	isMultipart := strings.HasPrefix(contentType, "multipart/")

	for {
		p, err := mr.NextPart()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}

		h, ok := p.Header.(*mail.InlineHeader)
		if !ok {
			continue
		}
		partType, _, err := h.ContentType()
		if err != nil {
			continue
		}
		// Multipart messages contribute only their plaintext part.
		if isMultipart && partType != "text/plain" {
			continue
		}
		if email.BodyText != "" {
			continue
		}
		body, err := io.ReadAll(p.Body)
		if err != nil {
			continue
		}
		email.BodyText = string(body)
	}

	return email, nil
}

// Simple regex to extract email address from "From" header, which may contain name and email
func extractEmailAddress(fromHeader string) string {
	re := regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	return re.FindString(fromHeader)
}

// DecodeHeader decodes MIME-encoded headers (e.g., "=?UTF-8?B?...?=") to plain text
func DecodeHeader(encoded string) (string, error) {
	decoder := new(mime.WordDecoder)
	decoded, err := decoder.DecodeHeader(encoded)
	if err != nil {
		return "", err
	}
	return decoded, nil
}
