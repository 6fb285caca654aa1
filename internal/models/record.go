package models

import "strings"

// Advisory application status vocabulary. The extraction service is asked
// to answer with one of these but nothing enforces it.
const (
	StatusSubmitted = "Submitted"
	StatusInterview = "Interview"
	StatusOffer     = "Offer"
	StatusRejected  = "Rejected"
	StatusOther     = "Other"
)

// Record is the normalized unit the pipeline reconciles into the store.
// ReceivedDate is ISO YYYY-MM-DD or empty; SenderEmail may be empty.
type Record struct {
	Company      string
	Title        string
	Status       string
	ReceivedDate string
	SenderEmail  string
}

// Valid reports whether the record carries the two required identity
// fields. Invalid records must never reach the store.
func (r Record) Valid() bool {
	return strings.TrimSpace(r.Company) != "" && strings.TrimSpace(r.Title) != ""
}

// Key returns the lowercased composite identity key (company, title,
// sender email) used to match records against store rows.
func (r Record) Key() [3]string {
	return [3]string{
		strings.ToLower(strings.TrimSpace(r.Company)),
		strings.ToLower(strings.TrimSpace(r.Title)),
		strings.ToLower(strings.TrimSpace(r.SenderEmail)),
	}
}
