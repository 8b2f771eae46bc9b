package usecase

import (
	"context"
	"errors"
	"testing"

	"kyndly_ichra/internal/domain/entities"
	"kyndly_ichra/internal/usecase/interfaces"
	mock_interfaces "kyndly_ichra/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validEmployerInput() EmployerInput {
	return EmployerInput{
		Name:          "Acme Co",
		ContactPerson: "Jane Doe",
		Email:         "jane@acme.com",
		Phone:         "555-0100",
		Address:       "1 Main St",
		EmployeeCount: 12,
		TPAID:         "tpa-1",
	}
}

func TestEmployerUseCase_Create(t *testing.T) {
	t.Run("missing contact fields", func(t *testing.T) {
		uc := NewEmployerUseCase(nil, nil, nil)
		in := validEmployerInput()
		in.Email = " "
		_, err := uc.Create(context.Background(), adminActor(), in)
		if !errors.Is(err, ErrInvalidEmployerInput) {
			t.Fatalf("expected ErrInvalidEmployerInput, got %v", err)
		}
	})

	t.Run("employee count below one", func(t *testing.T) {
		uc := NewEmployerUseCase(nil, nil, nil)
		in := validEmployerInput()
		in.EmployeeCount = 0
		_, err := uc.Create(context.Background(), adminActor(), in)
		if !errors.Is(err, ErrInvalidEmployeeCount) {
			t.Fatalf("expected ErrInvalidEmployeeCount, got %v", err)
		}
	})

	t.Run("tenant denied", func(t *testing.T) {
		uc := NewEmployerUseCase(nil, nil, nil)
		_, err := uc.Create(context.Background(), tpaActor("tpa-other"), validEmployerInput())
		if !errors.Is(err, ErrTenantAccessDenied) {
			t.Fatalf("expected ErrTenantAccessDenied, got %v", err)
		}
	})

	t.Run("status defaults to pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEmployerRepository(ctrl)
		uc := NewEmployerUseCase(repo, nil, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Employer) (entities.Employer, error) {
				if e.Status != entities.EmployerStatusPending {
					t.Fatalf("expected pending, got %s", e.Status)
				}
				if e.ID == "" || e.CreatedAt.IsZero() {
					t.Fatalf("expected generated id and timestamps")
				}
				return e, nil
			},
		)

		if _, err := uc.Create(context.Background(), tpaActor("tpa-1"), validEmployerInput()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		uc := NewEmployerUseCase(nil, nil, nil)
		in := validEmployerInput()
		in.Status = "archived"
		_, err := uc.Create(context.Background(), adminActor(), in)
		if !errors.Is(err, ErrInvalidEmployerStatus) {
			t.Fatalf("expected ErrInvalidEmployerStatus, got %v", err)
		}
	})
}

func TestEmployerUseCase_Update(t *testing.T) {
	t.Run("ownership is immutable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEmployerRepository(ctrl)
		uc := NewEmployerUseCase(repo, nil, nil)

		existing := entities.Employer{ID: "e-1", Name: "Old", ContactPerson: "x", Email: "x@x", Phone: "1", EmployeeCount: 5, Status: entities.EmployerStatusActive, TPAID: "tpa-1", BrokerID: "br-1"}
		repo.EXPECT().GetByID(gomock.Any(), "e-1").Return(existing, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Employer) (entities.Employer, error) {
				if e.TPAID != "tpa-1" || e.BrokerID != "br-1" {
					t.Fatalf("ownership changed: %+v", e)
				}
				if e.Name != "Acme Co" {
					t.Fatalf("expected updated name, got %q", e.Name)
				}
				return e, nil
			},
		)

		in := validEmployerInput()
		in.TPAID = "tpa-9"
		in.BrokerID = "br-9"
		if _, err := uc.Update(context.Background(), tpaActor("tpa-1"), "e-1", in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestEmployerUseCase_Delete(t *testing.T) {
	t.Run("cascades documents best effort", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEmployerRepository(ctrl)
		docRepo := mock_interfaces.NewMockIDocumentRepository(ctrl)
		files := mock_interfaces.NewMockIFileStore(ctrl)
		uc := NewEmployerUseCase(repo, docRepo, files)

		repo.EXPECT().GetByID(gomock.Any(), "e-1").Return(entities.Employer{ID: "e-1", TPAID: "tpa-1"}, nil)
		repo.EXPECT().Delete(gomock.Any(), "e-1").Return(nil)
		docRepo.EXPECT().ListByEmployerID(gomock.Any(), "e-1").Return([]entities.Document{
			{ID: "d-1", FileKey: "submissions/e-1/documents/d-1/a.pdf"},
			{ID: "d-2", FileKey: "submissions/e-1/documents/d-2/b.pdf"},
		}, nil)
		docRepo.EXPECT().Delete(gomock.Any(), "d-1").Return(nil)
		docRepo.EXPECT().Delete(gomock.Any(), "d-2").Return(nil)
		files.EXPECT().Delete(gomock.Any(), "submissions/e-1/documents/d-1/a.pdf").
			Return(&interfaces.StorageError{Op: "delete", Key: "submissions/e-1/documents/d-1/a.pdf", Err: errors.New("gone")})
		files.EXPECT().Delete(gomock.Any(), "submissions/e-1/documents/d-2/b.pdf").Return(nil)

		// The storage failure on d-1 is swallowed.
		if err := uc.Delete(context.Background(), tpaActor("tpa-1"), "e-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEmployerRepository(ctrl)
		uc := NewEmployerUseCase(repo, nil, nil)
		repo.EXPECT().GetByID(gomock.Any(), "e-1").Return(entities.Employer{}, nil)

		err := uc.Delete(context.Background(), adminActor(), "e-1")
		if !errors.Is(err, ErrEmployerNotFound) {
			t.Fatalf("expected ErrEmployerNotFound, got %v", err)
		}
	})
}
