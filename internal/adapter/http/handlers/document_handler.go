package handlers

import (
	"errors"
	"net/http"

	"kyndly_ichra/internal/adapter/http/dto/response"
	"kyndly_ichra/internal/adapter/http/middleware"
	"kyndly_ichra/internal/usecase"
	"kyndly_ichra/internal/usecase/interfaces"
	"kyndly_ichra/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidDocumentPayload = pkg.NewDomainErrorSimple("INVALID_DOCUMENT_INPUT", "Invalid document payload", http.StatusBadRequest)

type DocumentHandler struct {
	usecase usecase.IDocumentUseCase
}

func NewDocumentHandler(uc usecase.IDocumentUseCase) *DocumentHandler {
	return &DocumentHandler{usecase: uc}
}

// UploadDocument is multipart only: metadata fields travel as form values
// next to the file part.
func (h *DocumentHandler) UploadDocument(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(errMissingActor.HTTPStatus, errMissingActor.ToHTTPError())
		return
	}

	file, err := readFormFile(c, "file")
	if err != nil || file == nil {
		c.JSON(errInvalidDocumentPayload.HTTPStatus, errInvalidDocumentPayload.ToHTTPError())
		return
	}

	in := usecase.DocumentUpload{
		EmployerID:   c.PostForm("employerId"),
		Title:        c.PostForm("title"),
		DocumentType: c.PostForm("documentType"),
		File:         *file,
	}

	created, err := h.usecase.Upload(c.Request.Context(), actor, in)
	if err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromDocument(created))
}

func (h *DocumentHandler) GetDocumentByID(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(errMissingActor.HTTPStatus, errMissingActor.ToHTTPError())
		return
	}

	detail, err := h.usecase.GetByID(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDocumentDetail(detail))
}

func (h *DocumentHandler) GetDocumentsByEmployer(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(errMissingActor.HTTPStatus, errMissingActor.ToHTTPError())
		return
	}

	// Mounted as /employers/:id/documents.
	docs, err := h.usecase.ListByEmployerID(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDocuments(docs))
}

func (h *DocumentHandler) DeleteDocument(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(errMissingActor.HTTPStatus, errMissingActor.ToHTTPError())
		return
	}

	result, err := h.usecase.Delete(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDocumentDeleteResult(result))
}

func mapDocumentError(err error) *pkg.AppError {
	var storageErr *interfaces.StorageError
	switch {
	case errors.Is(err, usecase.ErrInvalidDocumentID),
		errors.Is(err, usecase.ErrInvalidDocumentInput),
		errors.Is(err, usecase.ErrMissingDocumentFile),
		errors.Is(err, usecase.ErrInvalidEmployerID):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDocumentNotFound):
		return pkg.NewDomainErrorSimple("DOCUMENT_NOT_FOUND", "Document not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEmployerNotFound), errors.Is(err, usecase.ErrTenantAccessDenied):
		return pkg.NewDomainErrorSimple("EMPLOYER_NOT_FOUND", "Employer not found", http.StatusNotFound)
	case errors.As(err, &storageErr):
		return pkg.NewDomainError("STORAGE_ERROR", "Failed to store uploaded file", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
