package notify

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"kyndly_ichra/internal/domain/entities"
	"kyndly_ichra/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

var ErrMissingEmailConfig = errors.New("missing SES sender/recipient configuration")

// SESMailer sends the internal team alert for a submitted quote. Sender
// and recipient are explicit constructor arguments so tests can build the
// mailer without global state.
type SESMailer struct {
	client    *ses.Client
	sender    string
	recipient string
}

var _ interfaces.ITeamMailer = (*SESMailer)(nil)

func NewSESMailer(client *ses.Client, sender, recipient string) (*SESMailer, error) {
	if sender == "" || recipient == "" {
		return nil, ErrMissingEmailConfig
	}
	return &SESMailer{client: client, sender: sender, recipient: recipient}, nil
}

func (m *SESMailer) NotifyQuoteSubmitted(ctx context.Context, q entities.Quote) error {
	subject := fmt.Sprintf("%s, %s, has submitted a company to quote", q.PriorityLevel, q.TransperraRep)

	_, err := m.client.SendEmail(ctx, &ses.SendEmailInput{
		Source: aws.String(m.sender),
		Destination: &types.Destination{
			ToAddresses: []string{m.recipient},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject)},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(quoteEmailBody(q))},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("send quote notification: %w", err)
	}

	log.Printf("[notify][ses] sent quote_id=%s recipient=%s", q.ID, m.recipient)
	return nil
}

func quoteEmailBody(q entities.Quote) string {
	quoteType := "Non-GLI"
	if q.IsGLI {
		quoteType = "GLI"
	}

	// The drive folder mirrors the S3 partition, so the team can jump
	// straight to the submission's documents.
	driveFolderLink := fmt.Sprintf("https://drive.google.com/drive/folders/%s/%s/%s", q.TPAID, q.EmployerID, q.SubmissionID)

	var b strings.Builder
	fmt.Fprintf(&b, "%s has just submitted a %s for %s click %s to access the google drive\n\n", q.TransperraRep, quoteType, q.CompanyName, driveFolderLink)
	fmt.Fprintf(&b, "Plan Effective date: %s\n", q.IchraEffectiveDate.Format("01/02/2006"))
	fmt.Fprintf(&b, "PEPM: $%.2f\n", q.PEPM)
	fmt.Fprintf(&b, "Target Deductible: %s\n", orNA(formatDeductible(q.TargetDeductible)))
	fmt.Fprintf(&b, "Current Funding Strategy: %s\n", orNA(q.CurrentFundingStrategy))
	fmt.Fprintf(&b, "Broker Name & Email: %s / %s\n", orNA(q.BrokerName), orNA(q.BrokerEmail))
	fmt.Fprintf(&b, "Additional Notes: %s", orNA(q.AdditionalNotes))
	return b.String()
}

func formatDeductible(v *int) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%d", *v)
}

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
