package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/contactdesk/backend/internal/domain/shared"
	"github.com/contactdesk/backend/internal/infrastructure/logger"
	"github.com/contactdesk/backend/internal/interfaces/http/dto"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// OK sends a 200 response with the given body.
func (h *BaseHandler) OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Fail sends an error response with the given status and the error's
// message, logging it with the request-scoped logger. The dashboard
// surfaces the message as-is.
func (h *BaseHandler) Fail(c *gin.Context, statusCode int, err error) {
	logger.FromGin(c).Warn("Request failed",
		zap.Int("status", statusCode),
		zap.Error(err),
	)
	c.JSON(statusCode, dto.NewErrorResponse(err.Error()))
}

// HandleDomainError maps a domain error to its HTTP status via the error
// code table, defaulting to 500 for non-domain errors.
func (h *BaseHandler) HandleDomainError(c *gin.Context, err error) {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		status := dto.GetHTTPStatus(domainErr.Code)
		logger.FromGin(c).Warn("Request failed",
			zap.Int("status", status),
			zap.String("code", domainErr.Code),
			zap.Error(err),
		)
		c.JSON(status, dto.NewErrorResponse(domainErr.Message))
		return
	}
	logger.FromGin(c).Error("Request failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(err.Error()))
}
