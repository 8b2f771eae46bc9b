package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"kyndly_ichra/internal/domain/auth"
	"kyndly_ichra/internal/domain/entities"
	"kyndly_ichra/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrQuoteNotFound      = errors.New("quote not found")
	ErrInvalidQuoteID     = errors.New("invalid quote id")
	ErrInvalidQuoteStatus = errors.New("invalid quote status")
)

// MissingFieldsError names the required submission fields that were absent.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// defaultNotifyTimeout bounds each fan-out channel so a hung email or
// webhook cannot stall the response after the quote is already durable.
const defaultNotifyTimeout = 15 * time.Second

// FileUpload is one attachment carried by a submission.
type FileUpload struct {
	Data        []byte
	FileName    string
	ContentType string
}

// QuoteSubmission is the intake command. Numeric fields arrive as raw
// strings and are parsed/defaulted here, matching the portal form.
type QuoteSubmission struct {
	TPAID                  string
	BrokerID               string
	EmployerID             string
	TransperraRep          string
	ContactType            string
	CompanyName            string
	IchraEffectiveDate     string
	PEPM                   string
	CurrentFundingStrategy string
	TargetDeductible       string
	TargetHSA              string
	BrokerName             string
	BrokerEmail            string
	PriorityLevel          string
	AdditionalNotes        string
	IsGLI                  bool
	CensusFile             *FileUpload
	PlanComparisonFile     *FileUpload
}

// QuoteIntakeResult is the only thing the caller learns about a
// submission: the identity of the durably created quote. Notification
// outcomes are intentionally absent.
type QuoteIntakeResult struct {
	ID           string
	SubmissionID string
}

// QuoteDetail is a quote plus freshly signed URLs for its stored files.
type QuoteDetail struct {
	Quote                 entities.Quote
	CensusFileURL         *string
	PlanComparisonFileURL *string
}

// QuoteDeleteResult reports each phase of the two-phase delete: the record
// delete, then best-effort cleanup of up to two storage keys.
type QuoteDeleteResult struct {
	RecordDeleted  bool
	FailedFileKeys []string
}

// IQuoteUseCase exposes the quote submission and fulfillment pipeline.
//
// SubmitQuote is the only multi-step writer in the system:
// validate -> store files -> persist -> fan out notifications -> respond.

type IQuoteUseCase interface {
	SubmitQuote(ctx context.Context, actor auth.Actor, in QuoteSubmission) (QuoteIntakeResult, error)
	GetByID(ctx context.Context, actor auth.Actor, id string) (QuoteDetail, error)
	List(ctx context.Context, actor auth.Actor, tpaID string) ([]entities.Quote, error)
	UpdateStatus(ctx context.Context, actor auth.Actor, id, status string) (entities.Quote, error)
	Delete(ctx context.Context, actor auth.Actor, id string) (QuoteDeleteResult, error)
}

type QuoteUseCase struct {
	repo          interfaces.IQuoteRepository
	files         interfaces.IFileStore
	mailer        interfaces.ITeamMailer
	webhook       interfaces.IWorkflowWebhook
	notifyTimeout time.Duration
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository, files interfaces.IFileStore, mailer interfaces.ITeamMailer, webhook interfaces.IWorkflowWebhook) *QuoteUseCase {
	return &QuoteUseCase{
		repo:          repo,
		files:         files,
		mailer:        mailer,
		webhook:       webhook,
		notifyTimeout: defaultNotifyTimeout,
	}
}

func (u *QuoteUseCase) SubmitQuote(ctx context.Context, actor auth.Actor, in QuoteSubmission) (QuoteIntakeResult, error) {
	log.Printf("[quote][usecase] submit start tpa_id=%s employer_id=%s company=%q", in.TPAID, in.EmployerID, in.CompanyName)

	if missing := missingSubmissionFields(in); len(missing) > 0 {
		log.Printf("[quote][usecase] submit rejected missing=%v", missing)
		return QuoteIntakeResult{}, &MissingFieldsError{Fields: missing}
	}
	if !actor.CanAccessTenant(in.TPAID) {
		log.Printf("[quote][usecase] submit denied actor_tpa=%s resource_tpa=%s", actor.TPAID, in.TPAID)
		return QuoteIntakeResult{}, ErrTenantAccessDenied
	}

	effectiveDate, err := parseEffectiveDate(in.IchraEffectiveDate)
	if err != nil {
		return QuoteIntakeResult{}, &MissingFieldsError{Fields: []string{"ichraEffectiveDate"}}
	}

	// One submission id per quote; every file of this quote shares it so
	// all documents land under a single S3 partition.
	submissionID := uuid.NewString()

	var censusKey, planKey *string
	if in.CensusFile != nil {
		stored, err := u.files.StoreQuoteFile(ctx, in.CensusFile.Data, in.CensusFile.FileName, in.TPAID, in.EmployerID, in.CensusFile.ContentType, submissionID)
		if err != nil {
			log.Printf("[quote][usecase] census upload failed submission_id=%s err=%v", submissionID, err)
			return QuoteIntakeResult{}, err
		}
		censusKey = &stored.Key
	}
	if in.PlanComparisonFile != nil {
		stored, err := u.files.StoreQuoteFile(ctx, in.PlanComparisonFile.Data, in.PlanComparisonFile.FileName, in.TPAID, in.EmployerID, in.PlanComparisonFile.ContentType, submissionID)
		if err != nil {
			log.Printf("[quote][usecase] plan comparison upload failed submission_id=%s err=%v", submissionID, err)
			return QuoteIntakeResult{}, err
		}
		planKey = &stored.Key
	}

	now := time.Now().UTC()
	q := entities.Quote{
		ID:                     uuid.NewString(),
		TransperraRep:          strings.TrimSpace(in.TransperraRep),
		ContactType:            strings.TrimSpace(in.ContactType),
		CompanyName:            strings.TrimSpace(in.CompanyName),
		CensusFileKey:          censusKey,
		PlanComparisonFileKey:  planKey,
		IchraEffectiveDate:     effectiveDate,
		PEPM:                   parsePEPM(in.PEPM),
		CurrentFundingStrategy: in.CurrentFundingStrategy,
		TargetDeductible:       parseTargetDeductible(in.TargetDeductible),
		TargetHSA:              in.TargetHSA,
		BrokerName:             in.BrokerName,
		BrokerEmail:            in.BrokerEmail,
		PriorityLevel:          defaultPriority(in.PriorityLevel),
		AdditionalNotes:        in.AdditionalNotes,
		Status:                 entities.QuoteStatusNew,
		TPAID:                  in.TPAID,
		BrokerID:               in.BrokerID,
		EmployerID:             in.EmployerID,
		SubmissionID:           submissionID,
		IsGLI:                  in.IsGLI,
		CreatedAt:              now,
		UpdatedAt:              now,
	}

	created, err := u.repo.Create(ctx, q)
	if err != nil {
		log.Printf("[quote][usecase] persist failed submission_id=%s err=%v", submissionID, err)
		return QuoteIntakeResult{}, err
	}
	log.Printf("[quote][usecase] persisted quote_id=%s submission_id=%s status=%s", created.ID, created.SubmissionID, created.Status)

	// Fan-out: each channel is attempted independently and may fail
	// without affecting the caller-visible result. The quote is already
	// durable at this point and is never rolled back.
	u.notifyQuoteSubmitted(ctx, created)

	return QuoteIntakeResult{ID: created.ID, SubmissionID: created.SubmissionID}, nil
}

func (u *QuoteUseCase) notifyQuoteSubmitted(ctx context.Context, q entities.Quote) {
	base := context.WithoutCancel(ctx)

	if u.mailer != nil {
		mailCtx, cancel := context.WithTimeout(base, u.notifyTimeout)
		if err := u.mailer.NotifyQuoteSubmitted(mailCtx, q); err != nil {
			log.Printf("[quote][notify] team email failed quote_id=%s submission_id=%s err=%v", q.ID, q.SubmissionID, err)
		}
		cancel()
	}

	if u.webhook != nil {
		hookCtx, cancel := context.WithTimeout(base, u.notifyTimeout)
		if err := u.webhook.TriggerQuoteSubmission(hookCtx, q); err != nil {
			log.Printf("[quote][notify] workflow webhook failed quote_id=%s submission_id=%s err=%v", q.ID, q.SubmissionID, err)
		}
		cancel()
	}
}

func (u *QuoteUseCase) GetByID(ctx context.Context, actor auth.Actor, id string) (QuoteDetail, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return QuoteDetail{}, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return QuoteDetail{}, err
	}
	// A quote outside the actor's tenant looks exactly like a missing one.
	if q.ID == "" || !actor.CanAccessTenant(q.TPAID) {
		return QuoteDetail{}, ErrQuoteNotFound
	}

	detail := QuoteDetail{Quote: q}
	if q.CensusFileKey != nil {
		url, err := u.files.SignedURL(ctx, *q.CensusFileKey, 0)
		if err != nil {
			return QuoteDetail{}, err
		}
		detail.CensusFileURL = &url
	}
	if q.PlanComparisonFileKey != nil {
		url, err := u.files.SignedURL(ctx, *q.PlanComparisonFileKey, 0)
		if err != nil {
			return QuoteDetail{}, err
		}
		detail.PlanComparisonFileURL = &url
	}
	return detail, nil
}

func (u *QuoteUseCase) List(ctx context.Context, actor auth.Actor, tpaID string) ([]entities.Quote, error) {
	tpaID = strings.TrimSpace(tpaID)

	if actor.IsAdmin() {
		if tpaID == "" {
			return u.repo.List(ctx)
		}
		return u.repo.ListByTPAID(ctx, tpaID)
	}

	// Non-admins only ever see their own tenant, whatever they asked for.
	return u.repo.ListByTPAID(ctx, actor.TPAID)
}

func (u *QuoteUseCase) UpdateStatus(ctx context.Context, actor auth.Actor, id, status string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	next := entities.QuoteStatus(strings.TrimSpace(status))
	if !next.Valid() {
		return entities.Quote{}, fmt.Errorf("%w: %q", ErrInvalidQuoteStatus, status)
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" || !actor.CanAccessTenant(q.TPAID) {
		return entities.Quote{}, ErrQuoteNotFound
	}

	updated, err := u.repo.UpdateStatus(ctx, id, next)
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		// Deleted between the scope check and the conditional update.
		return entities.Quote{}, ErrQuoteNotFound
	}
	log.Printf("[quote][usecase] status updated quote_id=%s status=%s", id, next)
	return updated, nil
}

func (u *QuoteUseCase) Delete(ctx context.Context, actor auth.Actor, id string) (QuoteDeleteResult, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return QuoteDeleteResult{}, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return QuoteDeleteResult{}, err
	}
	if q.ID == "" || !actor.CanAccessTenant(q.TPAID) {
		return QuoteDeleteResult{}, ErrQuoteNotFound
	}

	if err := u.repo.Delete(ctx, id); err != nil {
		return QuoteDeleteResult{}, err
	}
	result := QuoteDeleteResult{RecordDeleted: true}

	// Phase two: best-effort cleanup of the two storage keys. A missing
	// object or backend failure is logged and reported, never raised.
	for _, key := range []*string{q.CensusFileKey, q.PlanComparisonFileKey} {
		if key == nil {
			continue
		}
		if err := u.files.Delete(ctx, *key); err != nil {
			log.Printf("[quote][usecase] file cleanup failed quote_id=%s key=%s err=%v", id, *key, err)
			result.FailedFileKeys = append(result.FailedFileKeys, *key)
		}
	}
	log.Printf("[quote][usecase] deleted quote_id=%s failed_file_keys=%d", id, len(result.FailedFileKeys))
	return result, nil
}

func missingSubmissionFields(in QuoteSubmission) []string {
	var missing []string
	if strings.TrimSpace(in.TPAID) == "" {
		missing = append(missing, "tpaId")
	}
	if strings.TrimSpace(in.EmployerID) == "" {
		missing = append(missing, "employerId")
	}
	if strings.TrimSpace(in.TransperraRep) == "" {
		missing = append(missing, "transperraRep")
	}
	if strings.TrimSpace(in.CompanyName) == "" {
		missing = append(missing, "companyName")
	}
	if strings.TrimSpace(in.IchraEffectiveDate) == "" {
		missing = append(missing, "ichraEffectiveDate")
	}
	return missing
}

func parseEffectiveDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}

// parsePEPM mirrors the portal form: anything non-numeric falls back to
// the default rate.
func parsePEPM(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || v <= 0 {
		return entities.DefaultPEPM
	}
	return v
}

func parseTargetDeductible(raw string) *int {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return nil
	}
	return &v
}

func defaultPriority(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return entities.PriorityEarliest
	}
	return raw
}
