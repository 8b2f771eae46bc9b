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
	ErrEmployerNotFound      = errors.New("employer not found")
	ErrInvalidEmployerID     = errors.New("invalid employer id")
	ErrInvalidEmployerInput  = errors.New("invalid employer input")
	ErrInvalidEmployeeCount  = errors.New("employee count must be at least 1")
	ErrInvalidEmployerStatus = errors.New("invalid employer status")
)

// EmployerInput carries the writable employer fields.
type EmployerInput struct {
	Name          string
	ContactPerson string
	Email         string
	Phone         string
	Address       string
	EmployeeCount int
	Status        string
	TPAID         string
	BrokerID      string
}

type IEmployerUseCase interface {
	Create(ctx context.Context, actor auth.Actor, in EmployerInput) (entities.Employer, error)
	GetByID(ctx context.Context, actor auth.Actor, id string) (entities.Employer, error)
	List(ctx context.Context, actor auth.Actor, tpaID string) ([]entities.Employer, error)
	Update(ctx context.Context, actor auth.Actor, id string, in EmployerInput) (entities.Employer, error)
	Delete(ctx context.Context, actor auth.Actor, id string) error
}

type EmployerUseCase struct {
	repo    interfaces.IEmployerRepository
	docRepo interfaces.IDocumentRepository
	files   interfaces.IFileStore
}

var _ IEmployerUseCase = (*EmployerUseCase)(nil)

func NewEmployerUseCase(repo interfaces.IEmployerRepository, docRepo interfaces.IDocumentRepository, files interfaces.IFileStore) *EmployerUseCase {
	return &EmployerUseCase{repo: repo, docRepo: docRepo, files: files}
}

func (u *EmployerUseCase) Create(ctx context.Context, actor auth.Actor, in EmployerInput) (entities.Employer, error) {
	if err := validateEmployerInput(in); err != nil {
		return entities.Employer{}, err
	}
	if !actor.CanAccessTenant(in.TPAID) {
		return entities.Employer{}, ErrTenantAccessDenied
	}

	status := entities.EmployerStatus(in.Status)
	if in.Status == "" {
		status = entities.EmployerStatusPending
	} else if !status.Valid() {
		return entities.Employer{}, ErrInvalidEmployerStatus
	}

	now := time.Now().UTC()
	e := entities.Employer{
		ID:            uuid.NewString(),
		Name:          strings.TrimSpace(in.Name),
		ContactPerson: strings.TrimSpace(in.ContactPerson),
		Email:         strings.TrimSpace(in.Email),
		Phone:         strings.TrimSpace(in.Phone),
		Address:       in.Address,
		EmployeeCount: in.EmployeeCount,
		Status:        status,
		TPAID:         in.TPAID,
		BrokerID:      in.BrokerID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	created, err := u.repo.Create(ctx, e)
	if err != nil {
		return entities.Employer{}, err
	}
	log.Printf("[employer][usecase] created employer_id=%s tpa_id=%s", created.ID, created.TPAID)
	return created, nil
}

func (u *EmployerUseCase) GetByID(ctx context.Context, actor auth.Actor, id string) (entities.Employer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Employer{}, ErrInvalidEmployerID
	}

	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Employer{}, err
	}
	if e.ID == "" || !actor.CanAccessTenant(e.TPAID) {
		return entities.Employer{}, ErrEmployerNotFound
	}
	return e, nil
}

func (u *EmployerUseCase) List(ctx context.Context, actor auth.Actor, tpaID string) ([]entities.Employer, error) {
	tpaID = strings.TrimSpace(tpaID)

	if actor.IsAdmin() {
		if tpaID == "" {
			return u.repo.List(ctx)
		}
		return u.repo.ListByTPAID(ctx, tpaID)
	}
	return u.repo.ListByTPAID(ctx, actor.TPAID)
}

func (u *EmployerUseCase) Update(ctx context.Context, actor auth.Actor, id string, in EmployerInput) (entities.Employer, error) {
	existing, err := u.GetByID(ctx, actor, id)
	if err != nil {
		return entities.Employer{}, err
	}
	if err := validateEmployerInput(in); err != nil {
		return entities.Employer{}, err
	}

	status := existing.Status
	if in.Status != "" {
		status = entities.EmployerStatus(in.Status)
		if !status.Valid() {
			return entities.Employer{}, ErrInvalidEmployerStatus
		}
	}

	// Ownership fields are immutable; only business fields move.
	existing.Name = strings.TrimSpace(in.Name)
	existing.ContactPerson = strings.TrimSpace(in.ContactPerson)
	existing.Email = strings.TrimSpace(in.Email)
	existing.Phone = strings.TrimSpace(in.Phone)
	existing.Address = in.Address
	existing.EmployeeCount = in.EmployeeCount
	existing.Status = status
	existing.UpdatedAt = time.Now().UTC()

	return u.repo.Update(ctx, existing)
}

// Delete removes the employer and cascades intent to its documents:
// document records and their stored files are deleted best-effort, and a
// failure there never blocks the employer delete.
func (u *EmployerUseCase) Delete(ctx context.Context, actor auth.Actor, id string) error {
	e, err := u.GetByID(ctx, actor, id)
	if err != nil {
		return err
	}

	if err := u.repo.Delete(ctx, e.ID); err != nil {
		return err
	}

	docs, err := u.docRepo.ListByEmployerID(ctx, e.ID)
	if err != nil {
		log.Printf("[employer][usecase] cascade list failed employer_id=%s err=%v", e.ID, err)
		return nil
	}
	for _, d := range docs {
		if err := u.docRepo.Delete(ctx, d.ID); err != nil {
			log.Printf("[employer][usecase] cascade record delete failed document_id=%s err=%v", d.ID, err)
			continue
		}
		if d.FileKey != "" {
			if err := u.files.Delete(ctx, d.FileKey); err != nil {
				log.Printf("[employer][usecase] cascade file delete failed key=%s err=%v", d.FileKey, err)
			}
		}
	}
	log.Printf("[employer][usecase] deleted employer_id=%s cascaded_documents=%d", e.ID, len(docs))
	return nil
}

func validateEmployerInput(in EmployerInput) error {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.ContactPerson) == "" ||
		strings.TrimSpace(in.Email) == "" || strings.TrimSpace(in.Phone) == "" {
		return ErrInvalidEmployerInput
	}
	if in.EmployeeCount < 1 {
		return ErrInvalidEmployeeCount
	}
	return nil
}
