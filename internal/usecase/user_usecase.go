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
	ErrUserNotFound     = errors.New("user not found")
	ErrInvalidUserID    = errors.New("invalid user id")
	ErrInvalidUserInput = errors.New("invalid user input")
	ErrInvalidUserRole  = errors.New("invalid user role")
)

// UserInput carries the writable user fields.
type UserInput struct {
	Username   string
	Email      string
	Name       string
	Role       string
	TPAID      string
	BrokerID   string
	EmployerID string
	Enabled    *bool
}

type IUserUseCase interface {
	Create(ctx context.Context, actor auth.Actor, in UserInput) (entities.User, error)
	GetByID(ctx context.Context, actor auth.Actor, id string) (entities.User, error)
	List(ctx context.Context, actor auth.Actor, tpaID string) ([]entities.User, error)
	Update(ctx context.Context, actor auth.Actor, id string, in UserInput) (entities.User, error)
	Delete(ctx context.Context, actor auth.Actor, id string) error
}

type UserUseCase struct {
	repo interfaces.IUserRepository
}

var _ IUserUseCase = (*UserUseCase)(nil)

func NewUserUseCase(repo interfaces.IUserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

func (u *UserUseCase) Create(ctx context.Context, actor auth.Actor, in UserInput) (entities.User, error) {
	if strings.TrimSpace(in.Username) == "" || strings.TrimSpace(in.Email) == "" {
		return entities.User{}, ErrInvalidUserInput
	}
	role := auth.Role(strings.TrimSpace(in.Role))
	if !role.Valid() {
		return entities.User{}, ErrInvalidUserRole
	}

	// A tenant admin can only mint users inside their own TPA: whatever
	// tenant the payload claims, the creator's own tenant wins.
	tpaID := strings.TrimSpace(in.TPAID)
	if actor.Role == auth.RoleTPAAdmin {
		tpaID = actor.TPAID
	}
	if !actor.CanAccessTenant(tpaID) {
		return entities.User{}, ErrTenantAccessDenied
	}

	now := time.Now().UTC()
	user := entities.User{
		ID:         uuid.NewString(),
		Username:   strings.TrimSpace(in.Username),
		Email:      strings.TrimSpace(in.Email),
		Name:       strings.TrimSpace(in.Name),
		Role:       string(role),
		TPAID:      tpaID,
		BrokerID:   in.BrokerID,
		EmployerID: in.EmployerID,
		Enabled:    true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if in.Enabled != nil {
		user.Enabled = *in.Enabled
	}

	created, err := u.repo.Create(ctx, user)
	if err != nil {
		return entities.User{}, err
	}
	log.Printf("[user][usecase] created user_id=%s role=%s tpa_id=%s", created.ID, created.Role, created.TPAID)
	return created, nil
}

func (u *UserUseCase) GetByID(ctx context.Context, actor auth.Actor, id string) (entities.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.User{}, ErrInvalidUserID
	}

	user, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.User{}, err
	}
	if user.ID == "" || !actor.CanAccessTenant(user.TPAID) {
		return entities.User{}, ErrUserNotFound
	}
	return user, nil
}

func (u *UserUseCase) List(ctx context.Context, actor auth.Actor, tpaID string) ([]entities.User, error) {
	tpaID = strings.TrimSpace(tpaID)

	if actor.IsAdmin() {
		if tpaID == "" {
			return u.repo.List(ctx)
		}
		return u.repo.ListByTPAID(ctx, tpaID)
	}
	return u.repo.ListByTPAID(ctx, actor.TPAID)
}

func (u *UserUseCase) Update(ctx context.Context, actor auth.Actor, id string, in UserInput) (entities.User, error) {
	existing, err := u.GetByID(ctx, actor, id)
	if err != nil {
		return entities.User{}, err
	}

	if v := strings.TrimSpace(in.Email); v != "" {
		existing.Email = v
	}
	if v := strings.TrimSpace(in.Name); v != "" {
		existing.Name = v
	}
	if v := strings.TrimSpace(in.Role); v != "" {
		role := auth.Role(v)
		if !role.Valid() {
			return entities.User{}, ErrInvalidUserRole
		}
		existing.Role = string(role)
	}
	if in.Enabled != nil {
		existing.Enabled = *in.Enabled
	}
	// TPAID is immutable: moving a user across tenants is a delete+create.
	existing.UpdatedAt = time.Now().UTC()

	return u.repo.Update(ctx, existing)
}

func (u *UserUseCase) Delete(ctx context.Context, actor auth.Actor, id string) error {
	existing, err := u.GetByID(ctx, actor, id)
	if err != nil {
		return err
	}
	if err := u.repo.Delete(ctx, existing.ID); err != nil {
		return err
	}
	log.Printf("[user][usecase] deleted user_id=%s", existing.ID)
	return nil
}
