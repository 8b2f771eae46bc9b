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

var errInvalidAssistantPayload = pkg.NewDomainErrorSimple("INVALID_ASSISTANT_INPUT", "Invalid assistant payload", http.StatusBadRequest)

type AssistantHandler struct {
	usecase usecase.IAssistantUseCase
}

func NewAssistantHandler(uc usecase.IAssistantUseCase) *AssistantHandler {
	return &AssistantHandler{usecase: uc}
}

func (h *AssistantHandler) Chat(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(errMissingActor.HTTPStatus, errMissingActor.ToHTTPError())
		return
	}

	var payload request.AssistantChatRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAssistantPayload.HTTPStatus, errInvalidAssistantPayload.ToHTTPError())
		return
	}

	reply, err := h.usecase.Chat(c.Request.Context(), actor, payload.Message, payload.History())
	if err != nil {
		appErr := mapAssistantError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAssistantReply(reply))
}

func (h *AssistantHandler) TopicInfo(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(errMissingActor.HTTPStatus, errMissingActor.ToHTTPError())
		return
	}

	var payload request.AssistantTopicRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAssistantPayload.HTTPStatus, errInvalidAssistantPayload.ToHTTPError())
		return
	}

	info, err := h.usecase.TopicInfo(c.Request.Context(), actor, payload.Query)
	if err != nil {
		appErr := mapAssistantError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.AssistantTopicResponse{Response: info})
}

func mapAssistantError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingChatMessage),
		errors.Is(err, usecase.ErrMissingTopicQuery),
		errors.Is(err, usecase.ErrInvalidChatHistory):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAssistantNotConfigured):
		return pkg.NewDomainErrorSimple("ASSISTANT_UNAVAILABLE", "Assistant is not available", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("ASSISTANT_ERROR", "Failed to generate assistant response", err, http.StatusBadGateway)
	}
}
