package fields

import (
	"strings"
	"time"

	"jobtracker/internal/models"
)

// Normalized lookup keys for the labeled lines the extraction service is
// asked to produce. Keys are lowercased with internal whitespace collapsed
// to single spaces, so "Job  Title" and "job title" land on the same key.
const (
	KeyJobTitle    = "job title"
	KeyCompanyName = "company name"
	KeyStatus      = "application status"
	KeyDate        = "date"
)

const isoDate = "2006-01-02"

// Layouts accepted for an extractor-supplied date before falling back to
// the message's Date header.
var dateLayouts = []string{
	isoDate,
	"January 2, 2006",
	"Jan 2, 2006",
	"02/01/2006",
	"2006/01/02",
}

// Parse splits the extractor's raw output into a key → value map. Each
// line is split on its first colon; lines without a colon are ignored.
// Purely syntactic, no validation.
func Parse(output string) map[string]string {
	data := make(map[string]string)
	for _, line := range strings.Split(output, "\n") {
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		data[normalizeKey(key)] = strings.TrimSpace(value)
	}
	return data
}

func normalizeKey(key string) string {
	return strings.ToLower(strings.Join(strings.Fields(key), " "))
}

// BuildRecord maps parsed fields into a normalized record, deriving the
// received date from the Date header when the extractor did not supply a
// usable one, and the sender address from the message's From header.
func BuildRecord(parsed map[string]string, email *models.Email) models.Record {
	rec := models.Record{
		Company:     strings.TrimSpace(parsed[KeyCompanyName]),
		Title:       strings.TrimSpace(parsed[KeyJobTitle]),
		Status:      strings.TrimSpace(parsed[KeyStatus]),
		SenderEmail: email.From,
	}
	if rec.Status == "" {
		rec.Status = models.StatusOther
	}
	rec.ReceivedDate = resolveDate(parsed[KeyDate], email.HeaderDate)
	return rec
}

// resolveDate prefers an extractor-supplied date it can understand, then
// the Date header, then empty. Never fails the record over a bad date.
func resolveDate(extracted string, headerDate time.Time) string {
	extracted = strings.TrimSpace(extracted)
	if extracted != "" {
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, extracted); err == nil {
				return t.Format(isoDate)
			}
		}
	}
	if !headerDate.IsZero() {
		return headerDate.Format(isoDate)
	}
	return ""
}
