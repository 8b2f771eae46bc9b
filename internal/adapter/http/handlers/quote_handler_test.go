package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"kyndly_ichra/internal/adapter/http/handlers/mocks"
	"kyndly_ichra/internal/adapter/http/middleware"
	"kyndly_ichra/internal/domain/auth"
	"kyndly_ichra/internal/domain/entities"
	"kyndly_ichra/internal/usecase"
	"kyndly_ichra/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func quoteRouter(h *QuoteHandler, actor *auth.Actor) *gin.Engine {
	r := gin.New()
	if actor != nil {
		a := *actor
		r.Use(func(c *gin.Context) {
			middleware.SetActor(c, a)
			c.Next()
		})
	}
	r.POST("/v1/quotes", h.CreateQuote)
	r.GET("/v1/quotes/:id", h.GetQuoteByID)
	r.PATCH("/v1/quotes/:id/status", h.UpdateQuoteStatus)
	r.DELETE("/v1/quotes/:id", h.DeleteQuote)
	return r
}

func testActor() auth.Actor {
	return auth.NewActor("user-1", "staff@tpa.com", auth.RoleTPAStaff, "tpa-1", "", "", nil)
}

func TestQuoteHandler_CreateQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("no actor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewQuoteHandler(mocks.NewMockIQuoteUseCase(ctrl))

		r := quoteRouter(h, nil)
		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewQuoteHandler(mocks.NewMockIQuoteUseCase(ctrl))

		actor := testActor()
		r := quoteRouter(h, &actor)
		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing fields mapped to validation error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		uc.EXPECT().SubmitQuote(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(usecase.QuoteIntakeResult{}, &usecase.MissingFieldsError{Fields: []string{"tpaId", "companyName"}})

		actor := testActor()
		r := quoteRouter(h, &actor)
		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "tpaId") {
			t.Fatalf("expected field names in body: %s", w.Body.String())
		}
	})

	t.Run("storage failure maps to 502", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		uc.EXPECT().SubmitQuote(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(usecase.QuoteIntakeResult{}, &interfaces.StorageError{Op: "upload", Key: "k", Err: errors.New("s3 down")})

		actor := testActor()
		r := quoteRouter(h, &actor)
		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(`{"tpaId":"tpa-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("multipart submission forwards files", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		uc.EXPECT().SubmitQuote(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, _ auth.Actor, in usecase.QuoteSubmission) (usecase.QuoteIntakeResult, error) {
				if in.CompanyName != "Acme Co" || !in.IsGLI {
					t.Fatalf("unexpected submission: %+v", in)
				}
				if in.CensusFile == nil || in.CensusFile.FileName != "census.csv" || string(in.CensusFile.Data) != "a,b" {
					t.Fatalf("census file not forwarded: %+v", in.CensusFile)
				}
				if in.PlanComparisonFile != nil {
					t.Fatalf("expected no plan comparison file")
				}
				return usecase.QuoteIntakeResult{ID: "q-1", SubmissionID: "sub-1"}, nil
			},
		)

		var body bytes.Buffer
		mw := multipart.NewWriter(&body)
		_ = mw.WriteField("tpaId", "tpa-1")
		_ = mw.WriteField("employerId", "emp-1")
		_ = mw.WriteField("transperraRep", "Jane Rep")
		_ = mw.WriteField("companyName", "Acme Co")
		_ = mw.WriteField("ichraEffectiveDate", "2026-01-01")
		_ = mw.WriteField("isGLI", "true")
		fw, _ := mw.CreateFormFile("censusFile", "census.csv")
		_, _ = fw.Write([]byte("a,b"))
		mw.Close()

		actor := testActor()
		r := quoteRouter(h, &actor)
		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", &body)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if resp["id"] != "q-1" || resp["submissionId"] != "sub-1" {
			t.Fatalf("unexpected response: %v", resp)
		}
		if len(resp) != 2 {
			t.Fatalf("response must carry identity only, got %v", resp)
		}
	})
}

func TestQuoteHandler_GetQuoteByID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		uc.EXPECT().GetByID(gomock.Any(), gomock.Any(), "q-404").Return(usecase.QuoteDetail{}, usecase.ErrQuoteNotFound)

		actor := testActor()
		r := quoteRouter(h, &actor)
		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/q-404", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("tenant denial has the not-found shape", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		uc.EXPECT().GetByID(gomock.Any(), gomock.Any(), "q-1").Return(usecase.QuoteDetail{}, usecase.ErrTenantAccessDenied)

		actor := testActor()
		r := quoteRouter(h, &actor)
		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/q-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "QUOTE_NOT_FOUND") {
			t.Fatalf("expected QUOTE_NOT_FOUND code, got %s", w.Body.String())
		}
	})
}

func TestQuoteHandler_UpdateQuoteStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid status names allowed set", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		uc.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), "q-1", "done").
			Return(entities.Quote{}, usecase.ErrInvalidQuoteStatus)

		actor := testActor()
		r := quoteRouter(h, &actor)
		req := httptest.NewRequest(http.MethodPatch, "/v1/quotes/q-1/status", bytes.NewBufferString(`{"status":"done"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		for _, s := range []string{"new", "in_progress", "completed", "cancelled"} {
			if !strings.Contains(w.Body.String(), s) {
				t.Fatalf("expected %q in error body: %s", s, w.Body.String())
			}
		}
	})
}

func TestQuoteHandler_DeleteQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("reports failed file keys", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		uc.EXPECT().Delete(gomock.Any(), gomock.Any(), "q-1").
			Return(usecase.QuoteDeleteResult{RecordDeleted: true, FailedFileKeys: []string{"submissions/tpa-1/emp-1/sub-1/census.csv"}}, nil)

		actor := testActor()
		r := quoteRouter(h, &actor)
		req := httptest.NewRequest(http.MethodDelete, "/v1/quotes/q-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "census.csv") {
			t.Fatalf("expected failed key in body: %s", w.Body.String())
		}
	})
}
