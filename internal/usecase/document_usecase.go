package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"kyndly_ichra/internal/domain/auth"
	"kyndly_ichra/internal/domain/entities"
	"kyndly_ichra/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrDocumentNotFound     = errors.New("document not found")
	ErrInvalidDocumentID    = errors.New("invalid document id")
	ErrInvalidDocumentInput = errors.New("invalid document input")
	ErrMissingDocumentFile  = errors.New("no file uploaded")
)

// DocumentUpload is the upload command for a general-purpose attachment.
type DocumentUpload struct {
	EmployerID   string
	Title        string
	DocumentType string
	File         FileUpload
}

// DocumentDetail is a document record plus a signed read URL.
type DocumentDetail struct {
	Document entities.Document
	FileURL  string
}

// DocumentDeleteResult mirrors QuoteDeleteResult for the two-phase delete.
type DocumentDeleteResult struct {
	RecordDeleted bool
	FileKeyFailed string
}

type IDocumentUseCase interface {
	Upload(ctx context.Context, actor auth.Actor, in DocumentUpload) (entities.Document, error)
	GetByID(ctx context.Context, actor auth.Actor, id string) (DocumentDetail, error)
	ListByEmployerID(ctx context.Context, actor auth.Actor, employerID string) ([]entities.Document, error)
	Delete(ctx context.Context, actor auth.Actor, id string) (DocumentDeleteResult, error)
}

type DocumentUseCase struct {
	repo         interfaces.IDocumentRepository
	employerRepo interfaces.IEmployerRepository
	files        interfaces.IFileStore
}

var _ IDocumentUseCase = (*DocumentUseCase)(nil)

func NewDocumentUseCase(repo interfaces.IDocumentRepository, employerRepo interfaces.IEmployerRepository, files interfaces.IFileStore) *DocumentUseCase {
	return &DocumentUseCase{repo: repo, employerRepo: employerRepo, files: files}
}

// scopedEmployer loads the owning employer and applies the tenant check.
// Documents inherit their access scope from the employer that owns them.
func (u *DocumentUseCase) scopedEmployer(ctx context.Context, actor auth.Actor, employerID string) (entities.Employer, error) {
	e, err := u.employerRepo.GetByID(ctx, employerID)
	if err != nil {
		return entities.Employer{}, err
	}
	if e.ID == "" || !actor.CanAccessTenant(e.TPAID) {
		return entities.Employer{}, ErrEmployerNotFound
	}
	return e, nil
}

func (u *DocumentUseCase) Upload(ctx context.Context, actor auth.Actor, in DocumentUpload) (entities.Document, error) {
	if strings.TrimSpace(in.EmployerID) == "" || strings.TrimSpace(in.Title) == "" {
		return entities.Document{}, ErrInvalidDocumentInput
	}
	if len(in.File.Data) == 0 || in.File.FileName == "" {
		return entities.Document{}, ErrMissingDocumentFile
	}
	if _, err := u.scopedEmployer(ctx, actor, in.EmployerID); err != nil {
		return entities.Document{}, err
	}

	docID := uuid.NewString()

	// General documents reuse the quote partition scheme with the
	// employer as the top segment and the document id as the leaf:
	// submissions/{employerId}/documents/{docId}/{fileName}.
	stored, err := u.files.StoreQuoteFile(ctx, in.File.Data, in.File.FileName, in.EmployerID, "documents", in.File.ContentType, docID)
	if err != nil {
		log.Printf("[document][usecase] upload failed employer_id=%s err=%v", in.EmployerID, err)
		return entities.Document{}, err
	}

	now := time.Now().UTC()
	d := entities.Document{
		ID:           docID,
		EmployerID:   in.EmployerID,
		Title:        strings.TrimSpace(in.Title),
		DocumentType: in.DocumentType,
		FileKey:      stored.Key,
		MimeType:     in.File.ContentType,
		FileSize:     int64(len(in.File.Data)),
		UploadedBy:   actor.Sub,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	created, err := u.repo.Create(ctx, d)
	if err != nil {
		return entities.Document{}, err
	}
	log.Printf("[document][usecase] uploaded document_id=%s employer_id=%s key=%s", created.ID, created.EmployerID, created.FileKey)
	return created, nil
}

func (u *DocumentUseCase) GetByID(ctx context.Context, actor auth.Actor, id string) (DocumentDetail, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return DocumentDetail{}, ErrInvalidDocumentID
	}

	d, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return DocumentDetail{}, err
	}
	if d.ID == "" {
		return DocumentDetail{}, ErrDocumentNotFound
	}
	if _, err := u.scopedEmployer(ctx, actor, d.EmployerID); err != nil {
		return DocumentDetail{}, ErrDocumentNotFound
	}

	url, err := u.files.SignedURL(ctx, d.FileKey, 0)
	if err != nil {
		return DocumentDetail{}, err
	}
	return DocumentDetail{Document: d, FileURL: url}, nil
}

func (u *DocumentUseCase) ListByEmployerID(ctx context.Context, actor auth.Actor, employerID string) ([]entities.Document, error) {
	employerID = strings.TrimSpace(employerID)
	if employerID == "" {
		return nil, ErrInvalidEmployerID
	}
	if _, err := u.scopedEmployer(ctx, actor, employerID); err != nil {
		return nil, err
	}
	return u.repo.ListByEmployerID(ctx, employerID)
}

func (u *DocumentUseCase) Delete(ctx context.Context, actor auth.Actor, id string) (DocumentDeleteResult, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return DocumentDeleteResult{}, ErrInvalidDocumentID
	}

	d, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return DocumentDeleteResult{}, err
	}
	if d.ID == "" {
		return DocumentDeleteResult{}, ErrDocumentNotFound
	}
	if _, err := u.scopedEmployer(ctx, actor, d.EmployerID); err != nil {
		return DocumentDeleteResult{}, ErrDocumentNotFound
	}

	if err := u.repo.Delete(ctx, d.ID); err != nil {
		return DocumentDeleteResult{}, err
	}
	result := DocumentDeleteResult{RecordDeleted: true}

	if d.FileKey != "" {
		if err := u.files.Delete(ctx, d.FileKey); err != nil {
			log.Printf("[document][usecase] file cleanup failed document_id=%s key=%s err=%v", d.ID, d.FileKey, err)
			result.FileKeyFailed = d.FileKey
		}
	}
	return result, nil
}
