package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	contactapp "github.com/contactdesk/backend/internal/application/contact"
	"github.com/contactdesk/backend/internal/domain/shared"
	"github.com/contactdesk/backend/internal/interfaces/http/dto"
	"github.com/contactdesk/backend/internal/interfaces/http/middleware"
)

// ContactHandler handles the contact CRUD endpoints. Note that these routes
// perform no session check of their own: page navigation is the only gated
// surface, mirroring the upstream dashboard's behavior.
type ContactHandler struct {
	BaseHandler
	service *contactapp.Service
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(service *contactapp.Service) *ContactHandler {
	return &ContactHandler{service: service}
}

// RegisterRoutes registers the contact endpoints on the API group.
func (h *ContactHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/contacts", h.List)
	rg.POST("/contacts", h.Create)
	rg.PUT("/contacts/:id", h.Update)
	rg.DELETE("/contacts/:id", h.Delete)
}

// List returns every contact the external system serves, up to the fixed
// fetch limit, in server-supplied order.
func (h *ContactHandler) List(c *gin.Context) {
	records, err := h.service.List(c.Request.Context())
	if err != nil {
		h.Fail(c, http.StatusInternalServerError, err)
		return
	}
	h.OK(c, dto.ContactsResponse{Contacts: records})
}

// Create validates the payload and issues the create mutation. Every
// attribute must be present in the body; an invalid payload never reaches
// the external system.
func (h *ContactHandler) Create(c *gin.Context) {
	var payload dto.ContactPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.HandleDomainError(c, shared.NewDomainError(dto.ErrCodeInvalidInput, middleware.ValidationMessage(err)))
		return
	}

	created, err := h.service.Create(c.Request.Context(), payload.Input())
	if err != nil {
		h.Fail(c, http.StatusBadRequest, err)
		return
	}
	h.OK(c, dto.ContactResponse{Contact: created})
}

// Update validates the payload and issues the update mutation for the
// record in the path. Full-record replace: every field is sent.
func (h *ContactHandler) Update(c *gin.Context) {
	var payload dto.ContactPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.HandleDomainError(c, shared.NewDomainError(dto.ErrCodeInvalidInput, middleware.ValidationMessage(err)))
		return
	}

	updated, err := h.service.Update(c.Request.Context(), c.Param("id"), payload.Input())
	if err != nil {
		h.Fail(c, http.StatusBadRequest, err)
		return
	}
	h.OK(c, dto.ContactResponse{Contact: updated})
}

// Delete permanently removes the record in the path.
func (h *ContactHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.Fail(c, http.StatusBadRequest, err)
		return
	}
	h.OK(c, dto.OKResponse{OK: true})
}
