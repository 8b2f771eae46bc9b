package entities

import "time"

// QuoteStatus represents the lifecycle of a quote submission.
//
// Domain notes:
//   - A quote is created as "new" by the intake flow and moved by the
//     Kyndly team while they work the submission.
//   - Any status inside the enum may be set from any other status; the
//     enum membership itself is the only constraint enforced.
type QuoteStatus string

const (
	QuoteStatusNew        QuoteStatus = "new"
	QuoteStatusInProgress QuoteStatus = "in_progress"
	QuoteStatusCompleted  QuoteStatus = "completed"
	QuoteStatusCancelled  QuoteStatus = "cancelled"
)

// QuoteStatuses lists every valid status, in lifecycle order.
func QuoteStatuses() []QuoteStatus {
	return []QuoteStatus{QuoteStatusNew, QuoteStatusInProgress, QuoteStatusCompleted, QuoteStatusCancelled}
}

// Valid reports whether s belongs to the closed status enumeration.
func (s QuoteStatus) Valid() bool {
	switch s {
	case QuoteStatusNew, QuoteStatusInProgress, QuoteStatusCompleted, QuoteStatusCancelled:
		return true
	}
	return false
}

const (
	PriorityASAP     = "asap"
	PriorityEarliest = "earliest"
)

// DefaultPEPM is applied when the submission carries no usable per-employee
// -per-month rate.
const DefaultPEPM = 70.00

// Quote is the central aggregate of the intake portal.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (tpa_id-index): tpa_id
//
// Ownership (TPAID, EmployerID, BrokerID) and SubmissionID are immutable
// after creation: they determine the access scope and the S3 partition for
// the life of the record. Every file attached to the quote shares one
// SubmissionID so all of its documents land under a single partition.
type Quote struct {
	ID                     string      `json:"id"`
	TransperraRep          string      `json:"transperraRep"`
	ContactType            string      `json:"contactType"`
	CompanyName            string      `json:"companyName"`
	CensusFileKey          *string     `json:"censusFileKey"`
	PlanComparisonFileKey  *string     `json:"planComparisonFileKey"`
	IchraEffectiveDate     time.Time   `json:"ichraEffectiveDate"`
	PEPM                   float64     `json:"pepm"`
	CurrentFundingStrategy string      `json:"currentFundingStrategy,omitempty"`
	TargetDeductible       *int        `json:"targetDeductible"`
	TargetHSA              string      `json:"targetHSA,omitempty"`
	BrokerName             string      `json:"brokerName,omitempty"`
	BrokerEmail            string      `json:"brokerEmail,omitempty"`
	PriorityLevel          string      `json:"priorityLevel"`
	AdditionalNotes        string      `json:"additionalNotes,omitempty"`
	Status                 QuoteStatus `json:"status"`
	TPAID                  string      `json:"tpaId"`
	BrokerID               string      `json:"brokerId,omitempty"`
	EmployerID             string      `json:"employerId"`
	SubmissionID           string      `json:"submissionId"`
	IsGLI                  bool        `json:"isGLI"`
	CreatedAt              time.Time   `json:"createdAt"`
	UpdatedAt              time.Time   `json:"updatedAt"`
}
