package request

import (
	"strings"

	"kyndly_ichra/internal/usecase"
)

// QuoteRequest is the intake payload. It binds from JSON bodies and from
// multipart form fields alike; the two file parts (censusFile,
// planComparisonFile) are read separately by the handler.
type QuoteRequest struct {
	TPAID                  string `form:"tpaId" json:"tpaId"`
	BrokerID               string `form:"brokerId" json:"brokerId"`
	EmployerID             string `form:"employerId" json:"employerId"`
	TransperraRep          string `form:"transperraRep" json:"transperraRep"`
	ContactType            string `form:"contactType" json:"contactType"`
	CompanyName            string `form:"companyName" json:"companyName"`
	IchraEffectiveDate     string `form:"ichraEffectiveDate" json:"ichraEffectiveDate"`
	PEPM                   string `form:"pepm" json:"pepm"`
	CurrentFundingStrategy string `form:"currentFundingStrategy" json:"currentFundingStrategy"`
	TargetDeductible       string `form:"targetDeductible" json:"targetDeductible"`
	TargetHSA              string `form:"targetHSA" json:"targetHSA"`
	BrokerName             string `form:"brokerName" json:"brokerName"`
	BrokerEmail            string `form:"brokerEmail" json:"brokerEmail"`
	PriorityLevel          string `form:"priorityLevel" json:"priorityLevel"`
	AdditionalNotes        string `form:"additionalNotes" json:"additionalNotes"`
	IsGLI                  string `form:"isGLI" json:"isGLI"`
}

// ToSubmission translates the wire payload into the intake command. File
// attachments are filled in by the handler.
func (r QuoteRequest) ToSubmission() usecase.QuoteSubmission {
	return usecase.QuoteSubmission{
		TPAID:                  r.TPAID,
		BrokerID:               r.BrokerID,
		EmployerID:             r.EmployerID,
		TransperraRep:          r.TransperraRep,
		ContactType:            r.ContactType,
		CompanyName:            r.CompanyName,
		IchraEffectiveDate:     r.IchraEffectiveDate,
		PEPM:                   r.PEPM,
		CurrentFundingStrategy: r.CurrentFundingStrategy,
		TargetDeductible:       r.TargetDeductible,
		TargetHSA:              r.TargetHSA,
		BrokerName:             r.BrokerName,
		BrokerEmail:            r.BrokerEmail,
		PriorityLevel:          r.PriorityLevel,
		AdditionalNotes:        r.AdditionalNotes,
		IsGLI:                  strings.EqualFold(strings.TrimSpace(r.IsGLI), "true"),
	}
}

// QuoteStatusRequest updates the quote status.
type QuoteStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
