package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"kyndly_ichra/internal/adapter/http/dto/request"
	"kyndly_ichra/internal/adapter/http/dto/response"
	"kyndly_ichra/internal/adapter/http/middleware"
	"kyndly_ichra/internal/domain/entities"
	"kyndly_ichra/internal/usecase"
	"kyndly_ichra/internal/usecase/interfaces"
	"kyndly_ichra/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
	errMissingActor        = pkg.NewDomainErrorSimple("UNAUTHORIZED", "No authenticated actor", http.StatusUnauthorized)
)

// QuoteHandler handles HTTP requests for the quote intake pipeline.

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// CreateQuote accepts a multipart submission (when files are attached) or
// a plain JSON body, and responds with the created quote's identity only.
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(errMissingActor.HTTPStatus, errMissingActor.ToHTTPError())
		return
	}

	var payload request.QuoteRequest
	multipart := strings.HasPrefix(c.ContentType(), "multipart/form-data")
	if multipart {
		if err := c.ShouldBind(&payload); err != nil {
			c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
			return
		}
	} else {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
			return
		}
	}

	in := payload.ToSubmission()
	if multipart {
		census, err := readFormFile(c, "censusFile")
		if err != nil {
			c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
			return
		}
		plan, err := readFormFile(c, "planComparisonFile")
		if err != nil {
			c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
			return
		}
		in.CensusFile = census
		in.PlanComparisonFile = plan
	}

	result, err := h.usecase.SubmitQuote(c.Request.Context(), actor, in)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromIntakeResult(result))
}

func (h *QuoteHandler) GetQuotes(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(errMissingActor.HTTPStatus, errMissingActor.ToHTTPError())
		return
	}

	quotes, err := h.usecase.List(c.Request.Context(), actor, c.Query("tpaId"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}

func (h *QuoteHandler) GetQuoteByID(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(errMissingActor.HTTPStatus, errMissingActor.ToHTTPError())
		return
	}

	detail, err := h.usecase.GetByID(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuoteDetail(detail))
}

func (h *QuoteHandler) UpdateQuoteStatus(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(errMissingActor.HTTPStatus, errMissingActor.ToHTTPError())
		return
	}

	var payload request.QuoteStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	q, err := h.usecase.UpdateStatus(c.Request.Context(), actor, c.Param("id"), payload.Status)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(q))
}

func (h *QuoteHandler) DeleteQuote(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(errMissingActor.HTTPStatus, errMissingActor.ToHTTPError())
		return
	}

	result, err := h.usecase.Delete(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuoteDeleteResult(result))
}

func readFormFile(c *gin.Context, field string) (*usecase.FileUpload, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, err
	}

	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	return &usecase.FileUpload{
		Data:        data,
		FileName:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
	}, nil
}

func mapQuoteError(err error) *pkg.AppError {
	var missing *usecase.MissingFieldsError
	var storageErr *interfaces.StorageError
	switch {
	case errors.As(err, &missing):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Missing required fields: "+strings.Join(missing.Fields, ", "), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidQuoteStatus):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Invalid status. Must be one of: "+joinStatuses(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidQuoteID):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Invalid quote id", http.StatusBadRequest)
	// Tenant mismatch deliberately shares the not-found shape so callers
	// cannot probe for resources outside their scope.
	case errors.Is(err, usecase.ErrQuoteNotFound), errors.Is(err, usecase.ErrTenantAccessDenied):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.As(err, &storageErr):
		return pkg.NewDomainError("STORAGE_ERROR", "Failed to store uploaded file", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func joinStatuses() string {
	statuses := entities.QuoteStatuses()
	parts := make([]string, 0, len(statuses))
	for _, s := range statuses {
		parts = append(parts, string(s))
	}
	return strings.Join(parts, ", ")
}
