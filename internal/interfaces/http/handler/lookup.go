package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	contactapp "github.com/contactdesk/backend/internal/application/contact"
)

// LookupHandler serves the taxonomy term names for the dashboard's
// multi-select inputs.
type LookupHandler struct {
	BaseHandler
	service *contactapp.Service
}

// NewLookupHandler creates a new LookupHandler
func NewLookupHandler(service *contactapp.Service) *LookupHandler {
	return &LookupHandler{service: service}
}

// RegisterRoutes registers the lookup endpoint on the API group.
func (h *LookupHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/lookups", h.Get)
}

// Get returns the sector and industry term names, refetched on every call.
func (h *LookupHandler) Get(c *gin.Context) {
	lookups, err := h.service.Lookups(c.Request.Context())
	if err != nil {
		h.Fail(c, http.StatusInternalServerError, err)
		return
	}
	h.OK(c, lookups)
}
