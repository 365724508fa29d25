package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rentflow/backend/internal/application/onboarding"
	"github.com/rentflow/backend/internal/domain/identity"
	"github.com/rentflow/backend/internal/domain/shared"
	"github.com/rentflow/backend/internal/infrastructure/auth"
	"github.com/rentflow/backend/internal/interfaces/http/dto"
	"github.com/rentflow/backend/internal/interfaces/http/middleware"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

func getRequestID(c *gin.Context) string {
	return middleware.GetRequestID(c)
}

// Success sends a success response
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// Created sends a 201 created response
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(data))
}

// Error sends an error response with the appropriate status code
func (h *BaseHandler) Error(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, dto.NewErrorResponseWithRequestID(code, message, getRequestID(c)))
}

// BadRequest sends a 400 bad request response
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	h.Error(c, http.StatusBadRequest, dto.ErrCodeBadRequest, message)
}

// Unauthorized sends a 401 response asking the client to sign in
func (h *BaseHandler) Unauthorized(c *gin.Context) {
	h.Error(c, http.StatusUnauthorized, dto.ErrCodeAuthRequired, "Please sign in to continue")
}

// InternalError sends a 500 internal server error response
func (h *BaseHandler) InternalError(c *gin.Context, message string) {
	h.Error(c, http.StatusInternalServerError, dto.ErrCodeInternal, message)
}

// HandleError converts an error into an error response. Domain errors keep
// their code; a field error is reported as a detail on that field.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	requestID := getRequestID(c)

	var domainErr *shared.DomainError
	if !errors.As(err, &domainErr) {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponseWithRequestID(
			dto.ErrCodeInternal,
			"An unexpected error occurred",
			requestID,
		))
		return
	}

	status := dto.GetHTTPStatus(domainErr.Code)
	if domainErr.Field != "" {
		c.JSON(status, dto.NewFieldErrorResponse(domainErr.Code, domainErr.Message, requestID, domainErr.Field))
		return
	}
	c.JSON(status, dto.NewErrorResponseWithRequestID(domainErr.Code, domainErr.Message, requestID))
}

// sessionClaims returns the claims of the caller, answering 401 when the
// request is anonymous.
func (h *BaseHandler) sessionClaims(c *gin.Context) (*auth.SessionClaims, bool) {
	claims, ok := middleware.GetSessionClaims(c)
	if !ok {
		h.Unauthorized(c)
		return nil, false
	}
	return claims, true
}

// caller returns the caller with the role resolved by the gate
func (h *BaseHandler) caller(c *gin.Context) (*identity.Identity, bool) {
	id := middleware.GetIdentity(c)
	if id == nil {
		h.Unauthorized(c)
		return nil, false
	}
	return id, true
}

// actor returns the wizard actor of the caller
func (h *BaseHandler) actor(c *gin.Context) (onboarding.Actor, bool) {
	id, ok := h.caller(c)
	if !ok {
		return onboarding.Actor{}, false
	}
	return onboarding.ActorOf(id), true
}
