package usecase

import (
	"context"
	"errors"
	"testing"

	"kyndly_ichra/internal/domain/auth"
	"kyndly_ichra/internal/domain/entities"
	mock_interfaces "kyndly_ichra/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func tpaAdminActor(tpaID string) auth.Actor {
	return auth.NewActor("admin-tpa", "admin@tpa.com", auth.RoleTPAAdmin, tpaID, "", "", nil)
}

func TestUserUseCase_Create(t *testing.T) {
	t.Run("missing username", func(t *testing.T) {
		uc := NewUserUseCase(nil)
		_, err := uc.Create(context.Background(), adminActor(), UserInput{Email: "a@b.com", Role: "tpa_user"})
		if !errors.Is(err, ErrInvalidUserInput) {
			t.Fatalf("expected ErrInvalidUserInput, got %v", err)
		}
	})

	t.Run("invalid role", func(t *testing.T) {
		uc := NewUserUseCase(nil)
		_, err := uc.Create(context.Background(), adminActor(), UserInput{Username: "u", Email: "a@b.com", Role: "superuser"})
		if !errors.Is(err, ErrInvalidUserRole) {
			t.Fatalf("expected ErrInvalidUserRole, got %v", err)
		}
	})

	t.Run("tenant admin cannot mint into foreign tpa", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo)

		// The payload claims tpa-2 but the creator is a tpa-1 admin: the
		// created user lands in tpa-1 regardless.
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u entities.User) (entities.User, error) {
				if u.TPAID != "tpa-1" {
					t.Fatalf("expected tpa-1, got %q", u.TPAID)
				}
				return u, nil
			},
		)

		in := UserInput{Username: "u", Email: "a@b.com", Role: "tpa_user", TPAID: "tpa-2"}
		created, err := uc.Create(context.Background(), tpaAdminActor("tpa-1"), in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.TPAID != "tpa-1" {
			t.Fatalf("expected forced tenant, got %q", created.TPAID)
		}
	})

	t.Run("non-admin outside own tenant denied", func(t *testing.T) {
		uc := NewUserUseCase(nil)
		in := UserInput{Username: "u", Email: "a@b.com", Role: "tpa_user", TPAID: "tpa-2"}
		_, err := uc.Create(context.Background(), tpaActor("tpa-1"), in)
		if !errors.Is(err, ErrTenantAccessDenied) {
			t.Fatalf("expected ErrTenantAccessDenied, got %v", err)
		}
	})

	t.Run("enabled defaults to true", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u entities.User) (entities.User, error) {
				if !u.Enabled {
					t.Fatalf("expected enabled by default")
				}
				if u.ID == "" || u.CreatedAt.IsZero() {
					t.Fatalf("expected generated id and timestamps: %+v", u)
				}
				return u, nil
			},
		)

		in := UserInput{Username: "u", Email: "a@b.com", Role: "tpa_user", TPAID: "tpa-1"}
		if _, err := uc.Create(context.Background(), adminActor(), in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestUserUseCase_GetByID(t *testing.T) {
	t.Run("cross tenant looks like not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo)
		repo.EXPECT().GetByID(gomock.Any(), "u-1").Return(entities.User{ID: "u-1", TPAID: "tpa-2"}, nil)

		_, err := uc.GetByID(context.Background(), tpaActor("tpa-1"), "u-1")
		if !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})
}

func TestUserUseCase_Update(t *testing.T) {
	t.Run("partial update keeps tenant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo)

		existing := entities.User{ID: "u-1", Username: "u", Email: "old@b.com", Role: "tpa_user", TPAID: "tpa-1", Enabled: true}
		repo.EXPECT().GetByID(gomock.Any(), "u-1").Return(existing, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u entities.User) (entities.User, error) {
				if u.Email != "new@b.com" || u.TPAID != "tpa-1" || u.Username != "u" {
					t.Fatalf("unexpected update: %+v", u)
				}
				return u, nil
			},
		)

		disabled := false
		updated, err := uc.Update(context.Background(), tpaActor("tpa-1"), "u-1", UserInput{Email: "new@b.com", Enabled: &disabled})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Enabled {
			t.Fatalf("expected disabled user")
		}
	})

	t.Run("invalid role rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo)
		repo.EXPECT().GetByID(gomock.Any(), "u-1").Return(entities.User{ID: "u-1", TPAID: "tpa-1"}, nil)

		_, err := uc.Update(context.Background(), tpaActor("tpa-1"), "u-1", UserInput{Role: "root"})
		if !errors.Is(err, ErrInvalidUserRole) {
			t.Fatalf("expected ErrInvalidUserRole, got %v", err)
		}
	})
}

func TestUserUseCase_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo)
		repo.EXPECT().GetByID(gomock.Any(), "u-1").Return(entities.User{ID: "u-1", TPAID: "tpa-1"}, nil)
		repo.EXPECT().Delete(gomock.Any(), "u-1").Return(nil)

		if err := uc.Delete(context.Background(), tpaActor("tpa-1"), "u-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
