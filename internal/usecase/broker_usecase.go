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
	ErrBrokerNotFound     = errors.New("broker not found")
	ErrInvalidBrokerID    = errors.New("invalid broker id")
	ErrInvalidBrokerInput = errors.New("broker name is required")
)

// BrokerInput carries the writable broker fields.
type BrokerInput struct {
	Name  string
	Email string
	Phone string
	TPAID string
}

type IBrokerUseCase interface {
	Create(ctx context.Context, actor auth.Actor, in BrokerInput) (entities.Broker, error)
	GetByID(ctx context.Context, actor auth.Actor, id string) (entities.Broker, error)
	List(ctx context.Context, actor auth.Actor, tpaID string) ([]entities.Broker, error)
	Update(ctx context.Context, actor auth.Actor, id string, in BrokerInput) (entities.Broker, error)
	Delete(ctx context.Context, actor auth.Actor, id string) error
}

type BrokerUseCase struct {
	repo interfaces.IBrokerRepository
}

var _ IBrokerUseCase = (*BrokerUseCase)(nil)

func NewBrokerUseCase(repo interfaces.IBrokerRepository) *BrokerUseCase {
	return &BrokerUseCase{repo: repo}
}

func (u *BrokerUseCase) Create(ctx context.Context, actor auth.Actor, in BrokerInput) (entities.Broker, error) {
	if strings.TrimSpace(in.Name) == "" {
		return entities.Broker{}, ErrInvalidBrokerInput
	}

	// Non-admins always create into their own TPA, whatever the payload says.
	tpaID := in.TPAID
	if !actor.IsAdmin() || tpaID == "" {
		tpaID = actor.TPAID
	}
	if !actor.CanAccessTenant(tpaID) {
		return entities.Broker{}, ErrTenantAccessDenied
	}

	now := time.Now().UTC()
	b := entities.Broker{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(in.Name),
		Email:     strings.TrimSpace(in.Email),
		Phone:     strings.TrimSpace(in.Phone),
		TPAID:     tpaID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	created, err := u.repo.Create(ctx, b)
	if err != nil {
		return entities.Broker{}, err
	}
	log.Printf("[broker][usecase] created broker_id=%s tpa_id=%s", created.ID, created.TPAID)
	return created, nil
}

func (u *BrokerUseCase) GetByID(ctx context.Context, actor auth.Actor, id string) (entities.Broker, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Broker{}, ErrInvalidBrokerID
	}

	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Broker{}, err
	}
	if b.ID == "" || !actor.CanAccessTenant(b.TPAID) {
		return entities.Broker{}, ErrBrokerNotFound
	}
	return b, nil
}

func (u *BrokerUseCase) List(ctx context.Context, actor auth.Actor, tpaID string) ([]entities.Broker, error) {
	tpaID = strings.TrimSpace(tpaID)

	if actor.IsAdmin() {
		if tpaID == "" {
			return u.repo.List(ctx)
		}
		return u.repo.ListByTPAID(ctx, tpaID)
	}
	return u.repo.ListByTPAID(ctx, actor.TPAID)
}

func (u *BrokerUseCase) Update(ctx context.Context, actor auth.Actor, id string, in BrokerInput) (entities.Broker, error) {
	existing, err := u.GetByID(ctx, actor, id)
	if err != nil {
		return entities.Broker{}, err
	}
	if strings.TrimSpace(in.Name) == "" {
		return entities.Broker{}, ErrInvalidBrokerInput
	}

	// The owning TPA is immutable; only contact fields move.
	existing.Name = strings.TrimSpace(in.Name)
	existing.Email = strings.TrimSpace(in.Email)
	existing.Phone = strings.TrimSpace(in.Phone)
	existing.UpdatedAt = time.Now().UTC()

	return u.repo.Update(ctx, existing)
}

// Delete removes the broker record. Employers keep their brokerId
// reference; reassignment is a back-office concern, not a cascade.
func (u *BrokerUseCase) Delete(ctx context.Context, actor auth.Actor, id string) error {
	b, err := u.GetByID(ctx, actor, id)
	if err != nil {
		return err
	}
	if err := u.repo.Delete(ctx, b.ID); err != nil {
		return err
	}
	log.Printf("[broker][usecase] deleted broker_id=%s tpa_id=%s", b.ID, b.TPAID)
	return nil
}
