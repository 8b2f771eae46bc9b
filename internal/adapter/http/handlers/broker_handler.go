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

var errInvalidBrokerPayload = pkg.NewDomainErrorSimple("INVALID_BROKER_INPUT", "Invalid broker payload", http.StatusBadRequest)

type BrokerHandler struct {
	usecase usecase.IBrokerUseCase
}

func NewBrokerHandler(uc usecase.IBrokerUseCase) *BrokerHandler {
	return &BrokerHandler{usecase: uc}
}

func (h *BrokerHandler) CreateBroker(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(errMissingActor.HTTPStatus, errMissingActor.ToHTTPError())
		return
	}

	var payload request.BrokerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBrokerPayload.HTTPStatus, errInvalidBrokerPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), actor, payload.ToInput())
	if err != nil {
		appErr := mapBrokerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromBroker(created))
}

func (h *BrokerHandler) GetBrokers(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(errMissingActor.HTTPStatus, errMissingActor.ToHTTPError())
		return
	}

	brokers, err := h.usecase.List(c.Request.Context(), actor, c.Query("tpaId"))
	if err != nil {
		appErr := mapBrokerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBrokers(brokers))
}

func (h *BrokerHandler) GetBrokerByID(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(errMissingActor.HTTPStatus, errMissingActor.ToHTTPError())
		return
	}

	b, err := h.usecase.GetByID(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		appErr := mapBrokerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBroker(b))
}

func (h *BrokerHandler) UpdateBroker(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(errMissingActor.HTTPStatus, errMissingActor.ToHTTPError())
		return
	}

	var payload request.BrokerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBrokerPayload.HTTPStatus, errInvalidBrokerPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), actor, c.Param("id"), payload.ToInput())
	if err != nil {
		appErr := mapBrokerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBroker(updated))
}

func (h *BrokerHandler) DeleteBroker(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(errMissingActor.HTTPStatus, errMissingActor.ToHTTPError())
		return
	}

	if err := h.usecase.Delete(c.Request.Context(), actor, c.Param("id")); err != nil {
		appErr := mapBrokerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func mapBrokerError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBrokerID),
		errors.Is(err, usecase.ErrInvalidBrokerInput):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBrokerNotFound), errors.Is(err, usecase.ErrTenantAccessDenied):
		return pkg.NewDomainErrorSimple("BROKER_NOT_FOUND", "Broker not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
