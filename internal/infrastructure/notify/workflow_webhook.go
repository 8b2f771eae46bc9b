package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"kyndly_ichra/internal/domain/entities"
	"kyndly_ichra/internal/usecase/interfaces"
)

var ErrMissingWebhookURL = errors.New("missing workflow webhook URL")

const webhookRequestTimeout = 10 * time.Second

// WorkflowWebhook POSTs a persisted quote to the configured workflow
// endpoint (Zapier in production, which fans it into Google Workspace).
type WorkflowWebhook struct {
	url    string
	client *http.Client
}

var _ interfaces.IWorkflowWebhook = (*WorkflowWebhook)(nil)

func NewWorkflowWebhook(url string) (*WorkflowWebhook, error) {
	if url == "" {
		return nil, ErrMissingWebhookURL
	}
	return &WorkflowWebhook{
		url:    url,
		client: &http.Client{Timeout: webhookRequestTimeout},
	}, nil
}

// quoteSubmissionPayload is the field set the downstream Google Form
// expects. Optional fields serialize as empty strings, not nulls.
type quoteSubmissionPayload struct {
	TPAID                  string  `json:"tpaId"`
	EmployerID             string  `json:"employerId"`
	SubmissionID           string  `json:"submissionId"`
	CompanyName            string  `json:"companyName"`
	TransperraRep          string  `json:"transperraRep"`
	ContactType            string  `json:"contactType"`
	IchraEffectiveDate     string  `json:"ichraEffectiveDate"`
	PEPM                   float64 `json:"pepm"`
	CurrentFundingStrategy string  `json:"currentFundingStrategy"`
	TargetDeductible       string  `json:"targetDeductible"`
	TargetHSA              string  `json:"targetHSA"`
	BrokerName             string  `json:"brokerName"`
	BrokerEmail            string  `json:"brokerEmail"`
	PriorityLevel          string  `json:"priorityLevel"`
	AdditionalNotes        string  `json:"additionalNotes"`
	CensusFileKey          string  `json:"censusFileKey"`
	PlanComparisonFileKey  string  `json:"planComparisonFileKey"`
	DateSubmitted          string  `json:"dateSubmitted"`
}

func (w *WorkflowWebhook) TriggerQuoteSubmission(ctx context.Context, q entities.Quote) error {
	payload := quoteSubmissionPayload{
		TPAID:                  q.TPAID,
		EmployerID:             q.EmployerID,
		SubmissionID:           q.SubmissionID,
		CompanyName:            q.CompanyName,
		TransperraRep:          q.TransperraRep,
		ContactType:            q.ContactType,
		IchraEffectiveDate:     q.IchraEffectiveDate.Format("2006-01-02"),
		PEPM:                   q.PEPM,
		CurrentFundingStrategy: q.CurrentFundingStrategy,
		TargetDeductible:       derefDeductible(q.TargetDeductible),
		TargetHSA:              q.TargetHSA,
		BrokerName:             q.BrokerName,
		BrokerEmail:            q.BrokerEmail,
		PriorityLevel:          q.PriorityLevel,
		AdditionalNotes:        q.AdditionalNotes,
		CensusFileKey:          derefKey(q.CensusFileKey),
		PlanComparisonFileKey:  derefKey(q.PlanComparisonFileKey),
		DateSubmitted:          time.Now().UTC().Format(time.RFC3339),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("post webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}

	log.Printf("[notify][webhook] triggered quote_id=%s submission_id=%s", q.ID, q.SubmissionID)
	return nil
}

func derefDeductible(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func derefKey(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
