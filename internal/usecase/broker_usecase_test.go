package usecase

import (
	"context"
	"errors"
	"testing"

	"kyndly_ichra/internal/domain/entities"
	mock_interfaces "kyndly_ichra/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestBrokerUseCase_Create(t *testing.T) {
	t.Run("name is required", func(t *testing.T) {
		uc := NewBrokerUseCase(nil)
		_, err := uc.Create(context.Background(), tpaActor("tpa-1"), BrokerInput{Name: "  "})
		if !errors.Is(err, ErrInvalidBrokerInput) {
			t.Fatalf("expected ErrInvalidBrokerInput, got %v", err)
		}
	})

	t.Run("non-admin cannot mint into foreign tpa", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBrokerRepository(ctrl)
		uc := NewBrokerUseCase(repo)

		var created entities.Broker
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, b entities.Broker) (entities.Broker, error) {
				created = b
				return b, nil
			})

		// The payload asks for tpa-2; the actor's own TPA wins.
		_, err := uc.Create(context.Background(), tpaActor("tpa-1"), BrokerInput{Name: "Summit Benefits", TPAID: "tpa-2"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.TPAID != "tpa-1" {
			t.Fatalf("expected broker pinned to tpa-1, got %q", created.TPAID)
		}
	})

	t.Run("admin can create for any tpa", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBrokerRepository(ctrl)
		uc := NewBrokerUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, b entities.Broker) (entities.Broker, error) {
				return b, nil
			})

		b, err := uc.Create(context.Background(), adminActor(), BrokerInput{Name: "Summit Benefits", TPAID: "tpa-7"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.TPAID != "tpa-7" {
			t.Fatalf("expected tpa-7, got %q", b.TPAID)
		}
		if b.ID == "" {
			t.Fatal("expected a generated broker id")
		}
	})
}

func TestBrokerUseCase_GetByID(t *testing.T) {
	t.Run("cross tenant looks like not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBrokerRepository(ctrl)
		uc := NewBrokerUseCase(repo)
		repo.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Broker{ID: "b-1", TPAID: "tpa-2"}, nil)

		_, err := uc.GetByID(context.Background(), tpaActor("tpa-1"), "b-1")
		if !errors.Is(err, ErrBrokerNotFound) {
			t.Fatalf("expected ErrBrokerNotFound, got %v", err)
		}
	})

	t.Run("empty id rejected", func(t *testing.T) {
		uc := NewBrokerUseCase(nil)
		_, err := uc.GetByID(context.Background(), adminActor(), " ")
		if !errors.Is(err, ErrInvalidBrokerID) {
			t.Fatalf("expected ErrInvalidBrokerID, got %v", err)
		}
	})
}

func TestBrokerUseCase_List(t *testing.T) {
	t.Run("non-admin pinned to own tenant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBrokerRepository(ctrl)
		uc := NewBrokerUseCase(repo)
		// The requested tpa-2 filter is ignored.
		repo.EXPECT().ListByTPAID(gomock.Any(), "tpa-1").Return(nil, nil)

		if _, err := uc.List(context.Background(), tpaActor("tpa-1"), "tpa-2"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("admin without filter lists all", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBrokerRepository(ctrl)
		uc := NewBrokerUseCase(repo)
		repo.EXPECT().List(gomock.Any()).Return([]entities.Broker{{ID: "b-1"}}, nil)

		brokers, err := uc.List(context.Background(), adminActor(), "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(brokers) != 1 {
			t.Fatalf("expected 1 broker, got %d", len(brokers))
		}
	})
}

func TestBrokerUseCase_Update(t *testing.T) {
	t.Run("owning tpa is immutable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBrokerRepository(ctrl)
		uc := NewBrokerUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "b-1").
			Return(entities.Broker{ID: "b-1", Name: "Old Name", TPAID: "tpa-1"}, nil)

		var updated entities.Broker
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, b entities.Broker) (entities.Broker, error) {
				updated = b
				return b, nil
			})

		in := BrokerInput{Name: "New Name", Email: "new@broker.test", TPAID: "tpa-9"}
		if _, err := uc.Update(context.Background(), tpaActor("tpa-1"), "b-1", in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.TPAID != "tpa-1" {
			t.Fatalf("expected tpa-1 to survive the update, got %q", updated.TPAID)
		}
		if updated.Name != "New Name" || updated.Email != "new@broker.test" {
			t.Fatalf("contact fields not applied: %+v", updated)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBrokerRepository(ctrl)
		uc := NewBrokerUseCase(repo)
		repo.EXPECT().GetByID(gomock.Any(), "b-404").Return(entities.Broker{}, nil)

		_, err := uc.Update(context.Background(), adminActor(), "b-404", BrokerInput{Name: "X"})
		if !errors.Is(err, ErrBrokerNotFound) {
			t.Fatalf("expected ErrBrokerNotFound, got %v", err)
		}
	})
}

func TestBrokerUseCase_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBrokerRepository(ctrl)
		uc := NewBrokerUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Broker{ID: "b-1", TPAID: "tpa-1"}, nil)
		repo.EXPECT().Delete(gomock.Any(), "b-1").Return(nil)

		if err := uc.Delete(context.Background(), tpaActor("tpa-1"), "b-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("record delete failure surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBrokerRepository(ctrl)
		uc := NewBrokerUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Broker{ID: "b-1", TPAID: "tpa-1"}, nil)
		repo.EXPECT().Delete(gomock.Any(), "b-1").Return(errors.New("dynamo down"))

		if err := uc.Delete(context.Background(), tpaActor("tpa-1"), "b-1"); err == nil {
			t.Fatal("expected error")
		}
	})
}
