package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contactdesk/backend/internal/infrastructure/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupAuthAPI() *gin.Engine {
	engine := gin.New()
	gate := auth.NewSessionGate("admin", "admin123", "cms_auth")
	NewAuthHandler(gate).RegisterRoutes(engine.Group("/api"))
	return engine
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantCookie bool
	}{
		{
			name:       "matching credentials set the session cookie",
			body:       `{"username": "admin", "password": "admin123"}`,
			wantStatus: http.StatusOK,
			wantCookie: true,
		},
		{
			name:       "mismatch is a generic 401 with no cookie",
			body:       `{"username": "admin", "password": "wrong"}`,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "absent fields are just a mismatch",
			body:       `{}`,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "malformed body",
			body:       `{"username": `,
			wantStatus: http.StatusBadRequest,
		},
	}

	engine := setupAuthAPI()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)

			cookies := w.Result().Cookies()
			if tt.wantCookie {
				assert.JSONEq(t, `{"ok": true}`, w.Body.String())
				require.Len(t, cookies, 1)
				assert.Equal(t, "cms_auth", cookies[0].Name)
				assert.NotEmpty(t, cookies[0].Value)
			} else {
				assert.Empty(t, cookies)
				assert.Contains(t, w.Body.String(), "message")
			}
		})
	}
}

func TestLogout(t *testing.T) {
	engine := setupAuthAPI()

	// Logout clears the cookie whether or not the caller was logged in.
	for _, withCookie := range []bool{true, false} {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
		if withCookie {
			req.AddCookie(&http.Cookie{Name: "cms_auth", Value: "1"})
		}
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"ok": true}`, w.Body.String())
		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Empty(t, cookies[0].Value)
		assert.Negative(t, cookies[0].MaxAge)
	}
}
