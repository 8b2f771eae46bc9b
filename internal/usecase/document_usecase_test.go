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

func TestDocumentUseCase_Upload(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		uc := NewDocumentUseCase(nil, nil, nil)
		in := DocumentUpload{EmployerID: "e-1", Title: "Census"}
		_, err := uc.Upload(context.Background(), adminActor(), in)
		if !errors.Is(err, ErrMissingDocumentFile) {
			t.Fatalf("expected ErrMissingDocumentFile, got %v", err)
		}
	})

	t.Run("scope inherited from employer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		employerRepo := mock_interfaces.NewMockIEmployerRepository(ctrl)
		uc := NewDocumentUseCase(nil, employerRepo, nil)

		employerRepo.EXPECT().GetByID(gomock.Any(), "e-1").Return(entities.Employer{ID: "e-1", TPAID: "tpa-2"}, nil)

		in := DocumentUpload{EmployerID: "e-1", Title: "Census", File: FileUpload{Data: []byte("x"), FileName: "a.pdf"}}
		_, err := uc.Upload(context.Background(), tpaActor("tpa-1"), in)
		if !errors.Is(err, ErrEmployerNotFound) {
			t.Fatalf("expected ErrEmployerNotFound, got %v", err)
		}
	})

	t.Run("success records stored key and size", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDocumentRepository(ctrl)
		employerRepo := mock_interfaces.NewMockIEmployerRepository(ctrl)
		files := mock_interfaces.NewMockIFileStore(ctrl)
		uc := NewDocumentUseCase(repo, employerRepo, files)

		employerRepo.EXPECT().GetByID(gomock.Any(), "e-1").Return(entities.Employer{ID: "e-1", TPAID: "tpa-1"}, nil)
		files.EXPECT().StoreQuoteFile(gomock.Any(), gomock.Any(), "a.pdf", "e-1", "documents", "application/pdf", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ []byte, fileName, _, _, _, docID string) (interfaces.StoredFile, error) {
				return interfaces.StoredFile{Key: "submissions/e-1/documents/" + docID + "/a.pdf", SubmissionID: docID}, nil
			})
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, d entities.Document) (entities.Document, error) {
				if d.FileKey == "" || d.FileSize != 4 || d.UploadedBy != "user-1" {
					t.Fatalf("unexpected document: %+v", d)
				}
				return d, nil
			},
		)

		in := DocumentUpload{EmployerID: "e-1", Title: "Census", File: FileUpload{Data: []byte("abcd"), FileName: "a.pdf", ContentType: "application/pdf"}}
		created, err := uc.Upload(context.Background(), tpaActor("tpa-1"), in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.EmployerID != "e-1" {
			t.Fatalf("unexpected employer: %q", created.EmployerID)
		}
	})
}

func TestDocumentUseCase_Delete(t *testing.T) {
	t.Run("two-phase delete reports failed key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDocumentRepository(ctrl)
		employerRepo := mock_interfaces.NewMockIEmployerRepository(ctrl)
		files := mock_interfaces.NewMockIFileStore(ctrl)
		uc := NewDocumentUseCase(repo, employerRepo, files)

		key := "submissions/e-1/documents/d-1/a.pdf"
		repo.EXPECT().GetByID(gomock.Any(), "d-1").Return(entities.Document{ID: "d-1", EmployerID: "e-1", FileKey: key}, nil)
		employerRepo.EXPECT().GetByID(gomock.Any(), "e-1").Return(entities.Employer{ID: "e-1", TPAID: "tpa-1"}, nil)
		repo.EXPECT().Delete(gomock.Any(), "d-1").Return(nil)
		files.EXPECT().Delete(gomock.Any(), key).Return(&interfaces.StorageError{Op: "delete", Key: key, Err: errors.New("gone")})

		res, err := uc.Delete(context.Background(), tpaActor("tpa-1"), "d-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.RecordDeleted || res.FileKeyFailed != key {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}
