package interfaces

import (
	"context"
	"kyndly_ichra/internal/domain/entities"
)

// ITeamMailer delivers the internal alert when a quote lands. Failures are
// logged by the caller and never affect the submission outcome.

type ITeamMailer interface {
	NotifyQuoteSubmitted(ctx context.Context, q entities.Quote) error
}

// IWorkflowWebhook pushes a persisted quote to the external workflow
// integration (Google Workspace via Zapier in production). Same contract
// as the mailer: best-effort, isolated per channel.

type IWorkflowWebhook interface {
	TriggerQuoteSubmission(ctx context.Context, q entities.Quote) error
}
