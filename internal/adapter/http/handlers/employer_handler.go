package handlers

import (
	"errors"
	"net/http"

	"kyndly_ichra/internal/adapter/http/dto/request"
	"kyndly_ichra/internal/adapter/http/dto/response"
	"kyndly_ichra/internal/adapter/http/middleware"
	"kyndly_ichra/internal/usecase"
	"kyndly_ichra/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidEmployerPayload = pkg.NewDomainErrorSimple("INVALID_EMPLOYER_INPUT", "Invalid employer payload", http.StatusBadRequest)

type EmployerHandler struct {
	usecase usecase.IEmployerUseCase
}

func NewEmployerHandler(uc usecase.IEmployerUseCase) *EmployerHandler {
	return &EmployerHandler{usecase: uc}
}

func (h *EmployerHandler) CreateEmployer(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(errMissingActor.HTTPStatus, errMissingActor.ToHTTPError())
		return
	}

	var payload request.EmployerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEmployerPayload.HTTPStatus, errInvalidEmployerPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), actor, payload.ToInput())
	if err != nil {
		appErr := mapEmployerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromEmployer(created))
}

func (h *EmployerHandler) GetEmployers(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(errMissingActor.HTTPStatus, errMissingActor.ToHTTPError())
		return
	}

	employers, err := h.usecase.List(c.Request.Context(), actor, c.Query("tpaId"))
	if err != nil {
		appErr := mapEmployerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEmployers(employers))
}

func (h *EmployerHandler) GetEmployerByID(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(errMissingActor.HTTPStatus, errMissingActor.ToHTTPError())
		return
	}

	e, err := h.usecase.GetByID(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		appErr := mapEmployerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEmployer(e))
}

func (h *EmployerHandler) UpdateEmployer(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(errMissingActor.HTTPStatus, errMissingActor.ToHTTPError())
		return
	}

	var payload request.EmployerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEmployerPayload.HTTPStatus, errInvalidEmployerPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), actor, c.Param("id"), payload.ToInput())
	if err != nil {
		appErr := mapEmployerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEmployer(updated))
}

func (h *EmployerHandler) DeleteEmployer(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(errMissingActor.HTTPStatus, errMissingActor.ToHTTPError())
		return
	}

	if err := h.usecase.Delete(c.Request.Context(), actor, c.Param("id")); err != nil {
		appErr := mapEmployerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func mapEmployerError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEmployerID),
		errors.Is(err, usecase.ErrInvalidEmployerInput),
		errors.Is(err, usecase.ErrInvalidEmployeeCount),
		errors.Is(err, usecase.ErrInvalidEmployerStatus):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmployerNotFound), errors.Is(err, usecase.ErrTenantAccessDenied):
		return pkg.NewDomainErrorSimple("EMPLOYER_NOT_FOUND", "Employer not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
