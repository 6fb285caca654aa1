package gemini

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"jobtracker/internal/models"
)

func testClient(endpoint string) *Client {
	return NewClient(models.GeminiConfig{
		APIKey:   "test-key",
		Model:    "gemini-1.5-flash",
		Endpoint: endpoint,
		Timeout:  5 * time.Second,
	})
}

func TestExtract(t *testing.T) {
	var gotPath string
	var gotKey string
	var gotInput string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")

		raw, _ := io.ReadAll(r.Body)
		var req generateRequest
		if err := json.Unmarshal(raw, &req); err == nil && len(req.Contents) > 0 && len(req.Contents[0].Parts) > 0 {
			gotInput = req.Contents[0].Parts[0].Text
		}

		_, _ = w.Write([]byte(`{
			"candidates": [
				{
					"content": {
						"parts": [
							{"text": "Job Title: Software Engineer\nCompany Name: Acme Corp\nApplication Status: Interview"}
						]
					}
				}
			]
		}`))
	}))
	defer server.Close()

	client := testClient(server.URL)

	out, err := client.Extract(context.Background(), "Interview Invitation - Acme Corp", "We would like to interview you.")
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}

	if !strings.Contains(out, "Company Name: Acme Corp") {
		t.Errorf("Extract() = %q, want the candidate text", out)
	}

	if gotPath != "/v1beta/models/gemini-1.5-flash:generateContent" {
		t.Errorf("request path = %q, want the generateContent path", gotPath)
	}
	if gotKey != "test-key" {
		t.Errorf("api key header = %q, want %q", gotKey, "test-key")
	}
	if !strings.Contains(gotInput, "EMAIL SUBJECT:\nInterview Invitation - Acme Corp") {
		t.Errorf("request input missing subject section:\n%s", gotInput)
	}
	if !strings.Contains(gotInput, "EMAIL BODY:\nWe would like to interview you.") {
		t.Errorf("request input missing body section:\n%s", gotInput)
	}
}

func TestExtractHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error": {"message": "quota exceeded"}}`))
	}))
	defer server.Close()

	client := testClient(server.URL)

	_, err := client.Extract(context.Background(), "subject", "body")
	if err == nil {
		t.Fatal("Extract() expected error on HTTP 429, got nil")
	}
	if !strings.Contains(err.Error(), "429") {
		t.Errorf("Extract() error = %v, want mention of status 429", err)
	}
}

func TestExtractEmptyCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates": []}`))
	}))
	defer server.Close()

	client := testClient(server.URL)

	_, err := client.Extract(context.Background(), "subject", "body")
	if err == nil {
		t.Fatal("Extract() expected error on empty candidates, got nil")
	}
}
