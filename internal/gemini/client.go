package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"jobtracker/internal/models"
)

// DefaultEndpoint is the Google generative-language API base URL.
const DefaultEndpoint = "https://generativelanguage.googleapis.com"

// extractionPrompt asks for one labeled line per field. The parser on the
// other side splits on the first colon of each line, so the shape of the
// answer matters more than its wording.
const extractionPrompt = `You are an intelligent assistant reading an email about a job application.
Extract the following details:
- Job Title (if it cannot be determined from the body, fall back to the email subject)
- Company Name
- Application Status (one of: Submitted, Interview, Offer, Rejected, Other)
- Date (only if a date is mentioned in the email, as YYYY-MM-DD)

Respond only with the following format, one field per line:
Job Title: [The Job Title]
Company Name: [The Company Name]
Application Status: [The Application Status]
Date: [The Date]`

// Client calls the Gemini generateContent endpoint. No retries: a failed
// call means the message is skipped this pass (retry policy lives outside
// the pipeline).
type Client struct {
	apiKey   string
	model    string
	endpoint string
	http     *http.Client
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// NewClient creates a Gemini client from the service configuration.
func NewClient(cfg models.GeminiConfig) *Client {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{
		apiKey:   cfg.APIKey,
		model:    cfg.Model,
		endpoint: strings.TrimRight(endpoint, "/"),
		http: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// Extract sends the extraction prompt plus the message text to the model
// and returns its raw labeled-line answer.
func (c *Client) Extract(ctx context.Context, subject, body string) (string, error) {
	reqBody := generateRequest{
		Contents: []content{
			{Parts: []part{{Text: buildInput(subject, body)}}},
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("gemini: marshaling request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.endpoint, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("gemini: creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini: sending request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("gemini: reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini: HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	var parsed generateResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("gemini: decoding response: %w", err)
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini: empty response")
	}

	var sb strings.Builder
	for _, p := range parsed.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}

	return strings.TrimSpace(sb.String()), nil
}

func buildInput(subject, body string) string {
	return extractionPrompt + "\n\nEMAIL SUBJECT:\n" + subject + "\n\nEMAIL BODY:\n" + body
}
