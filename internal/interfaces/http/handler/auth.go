package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/contactdesk/backend/internal/domain/shared"
	"github.com/contactdesk/backend/internal/infrastructure/auth"
	"github.com/contactdesk/backend/internal/interfaces/http/dto"
)

// AuthHandler handles login and logout for the dashboard session.
type AuthHandler struct {
	BaseHandler
	gate *auth.SessionGate
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(gate *auth.SessionGate) *AuthHandler {
	return &AuthHandler{gate: gate}
}

// RegisterRoutes registers the auth endpoints on the API group.
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/login", h.Login)
	rg.POST("/auth/logout", h.Logout)
}

// Login validates the submitted credential pair and issues the session
// marker cookie on success. Mismatch is a generic 401; there is no lockout
// or attempt counting.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleDomainError(c, shared.ErrInvalidInput)
		return
	}

	if err := h.gate.Authenticate(req.Username, req.Password); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.gate.IssueCookie(c)
	h.OK(c, dto.OKResponse{OK: true})
}

// Logout unconditionally clears the session marker.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.gate.ClearCookie(c)
	h.OK(c, dto.OKResponse{OK: true})
}
