package response

import (
	"time"

	"kyndly_ichra/internal/domain/entities"
	"kyndly_ichra/internal/usecase"
)

// QuoteCreatedResponse is the only thing a submitter learns: the identity
// of the durably created quote.
type QuoteCreatedResponse struct {
	ID           string `json:"id"`
	SubmissionID string `json:"submissionId"`
}

func FromIntakeResult(r usecase.QuoteIntakeResult) QuoteCreatedResponse {
	return QuoteCreatedResponse{ID: r.ID, SubmissionID: r.SubmissionID}
}

type QuoteResponse struct {
	ID                     string    `json:"id"`
	TransperraRep          string    `json:"transperraRep"`
	ContactType            string    `json:"contactType,omitempty"`
	CompanyName            string    `json:"companyName"`
	CensusFileKey          *string   `json:"censusFileKey"`
	PlanComparisonFileKey  *string   `json:"planComparisonFileKey"`
	IchraEffectiveDate     string    `json:"ichraEffectiveDate"`
	PEPM                   float64   `json:"pepm"`
	CurrentFundingStrategy string    `json:"currentFundingStrategy,omitempty"`
	TargetDeductible       *int      `json:"targetDeductible"`
	TargetHSA              string    `json:"targetHSA,omitempty"`
	BrokerName             string    `json:"brokerName,omitempty"`
	BrokerEmail            string    `json:"brokerEmail,omitempty"`
	PriorityLevel          string    `json:"priorityLevel"`
	AdditionalNotes        string    `json:"additionalNotes,omitempty"`
	Status                 string    `json:"status"`
	TPAID                  string    `json:"tpaId"`
	BrokerID               string    `json:"brokerId,omitempty"`
	EmployerID             string    `json:"employerId"`
	SubmissionID           string    `json:"submissionId"`
	IsGLI                  bool      `json:"isGLI"`
	CreatedAt              time.Time `json:"createdAt"`
	UpdatedAt              time.Time `json:"updatedAt"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		ID:                     q.ID,
		TransperraRep:          q.TransperraRep,
		ContactType:            q.ContactType,
		CompanyName:            q.CompanyName,
		CensusFileKey:          q.CensusFileKey,
		PlanComparisonFileKey:  q.PlanComparisonFileKey,
		IchraEffectiveDate:     q.IchraEffectiveDate.Format("2006-01-02"),
		PEPM:                   q.PEPM,
		CurrentFundingStrategy: q.CurrentFundingStrategy,
		TargetDeductible:       q.TargetDeductible,
		TargetHSA:              q.TargetHSA,
		BrokerName:             q.BrokerName,
		BrokerEmail:            q.BrokerEmail,
		PriorityLevel:          q.PriorityLevel,
		AdditionalNotes:        q.AdditionalNotes,
		Status:                 string(q.Status),
		TPAID:                  q.TPAID,
		BrokerID:               q.BrokerID,
		EmployerID:             q.EmployerID,
		SubmissionID:           q.SubmissionID,
		IsGLI:                  q.IsGLI,
		CreatedAt:              q.CreatedAt,
		UpdatedAt:              q.UpdatedAt,
	}
}

func FromQuotes(quotes []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, FromQuote(q))
	}
	return out
}

// QuoteDetailResponse adds freshly signed read URLs for the stored files.
type QuoteDetailResponse struct {
	QuoteResponse
	CensusFileURL         *string `json:"censusFileUrl"`
	PlanComparisonFileURL *string `json:"planComparisonFileUrl"`
}

func FromQuoteDetail(d usecase.QuoteDetail) QuoteDetailResponse {
	return QuoteDetailResponse{
		QuoteResponse:         FromQuote(d.Quote),
		CensusFileURL:         d.CensusFileURL,
		PlanComparisonFileURL: d.PlanComparisonFileURL,
	}
}

// QuoteDeletedResponse reports both phases of the delete so callers can
// see when storage cleanup needs a manual retry.
type QuoteDeletedResponse struct {
	RecordDeleted  bool     `json:"recordDeleted"`
	FailedFileKeys []string `json:"failedFileKeys,omitempty"`
}

func FromQuoteDeleteResult(r usecase.QuoteDeleteResult) QuoteDeletedResponse {
	return QuoteDeletedResponse{
		RecordDeleted:  r.RecordDeleted,
		FailedFileKeys: r.FailedFileKeys,
	}
}
