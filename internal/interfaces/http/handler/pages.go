package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/contactdesk/backend/web"
)

// PageHandler serves the static page shells the session guard navigates
// between. The dashboard UI itself is a separate artifact; these shells
// exist so navigation and the guard behave end to end.
type PageHandler struct{}

// NewPageHandler creates a new PageHandler
func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

// Login serves the login page shell.
func (h *PageHandler) Login(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", web.LoginPage)
}

// Dashboard serves the dashboard page shell.
func (h *PageHandler) Dashboard(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", web.DashboardPage)
}

// Root redirects to the dashboard; the guard bounces anonymous visitors on
// to the login page from there.
func (h *PageHandler) Root(c *gin.Context) {
	c.Redirect(http.StatusFound, "/dashboard")
}
