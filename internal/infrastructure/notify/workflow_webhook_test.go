package notify

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"kyndly_ichra/internal/domain/entities"
)

func sampleQuote() entities.Quote {
	deductible := 2500
	censusKey := "submissions/tpa-1/emp-1/sub-1/census.csv"
	return entities.Quote{
		ID:                 "q-1",
		TransperraRep:      "Jane Rep",
		CompanyName:        "Acme Co",
		CensusFileKey:      &censusKey,
		IchraEffectiveDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		PEPM:               entities.DefaultPEPM,
		TargetDeductible:   &deductible,
		PriorityLevel:      entities.PriorityEarliest,
		Status:             entities.QuoteStatusNew,
		TPAID:              "tpa-1",
		EmployerID:         "emp-1",
		SubmissionID:       "sub-1",
	}
}

func TestWorkflowWebhook_TriggerQuoteSubmission(t *testing.T) {
	t.Run("posts the expected payload", func(t *testing.T) {
		var got map[string]any
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				t.Fatalf("expected POST, got %s", r.Method)
			}
			if ct := r.Header.Get("Content-Type"); ct != "application/json" {
				t.Fatalf("expected application/json, got %s", ct)
			}
			if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
				t.Fatalf("invalid body: %v", err)
			}
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		hook, err := NewWorkflowWebhook(srv.URL)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := hook.TriggerQuoteSubmission(context.Background(), sampleQuote()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got["companyName"] != "Acme Co" || got["submissionId"] != "sub-1" {
			t.Fatalf("unexpected payload: %v", got)
		}
		if got["ichraEffectiveDate"] != "2026-01-01" {
			t.Fatalf("unexpected date: %v", got["ichraEffectiveDate"])
		}
		if got["targetDeductible"] != "2500" {
			t.Fatalf("deductible should serialize as string: %v", got["targetDeductible"])
		}
		if got["censusFileKey"] != "submissions/tpa-1/emp-1/sub-1/census.csv" {
			t.Fatalf("unexpected census key: %v", got["censusFileKey"])
		}
		if _, err := time.Parse(time.RFC3339, got["dateSubmitted"].(string)); err != nil {
			t.Fatalf("dateSubmitted not RFC3339: %v", got["dateSubmitted"])
		}
	})

	t.Run("non-2xx is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		hook, _ := NewWorkflowWebhook(srv.URL)
		err := hook.TriggerQuoteSubmission(context.Background(), sampleQuote())
		if err == nil {
			t.Fatalf("expected error on 502")
		}
	})

	t.Run("missing url", func(t *testing.T) {
		_, err := NewWorkflowWebhook("")
		if !errors.Is(err, ErrMissingWebhookURL) {
			t.Fatalf("expected ErrMissingWebhookURL, got %v", err)
		}
	})
}

func TestQuoteEmailBody(t *testing.T) {
	q := sampleQuote()
	q.IsGLI = true
	body := quoteEmailBody(q)

	for _, want := range []string{
		"Jane Rep has just submitted a GLI for Acme Co",
		"https://drive.google.com/drive/folders/tpa-1/emp-1/sub-1",
		"Plan Effective date: 01/01/2026",
		"PEPM: $70.00",
		"Target Deductible: 2500",
		"Broker Name & Email: N/A / N/A",
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("body missing %q:\n%s", want, body)
		}
	}
}
