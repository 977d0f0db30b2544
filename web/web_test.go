package web

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contactdesk/backend/internal/domain/contact"
)

func TestDashboardPageRendersFieldColumns(t *testing.T) {
	page := string(DashboardPage)
	require.NotEmpty(t, page)

	for _, f := range contact.Fields {
		assert.Contains(t, page, `data-key="`+f.Key+`"`)
		assert.Contains(t, page, ">"+f.Label+"<")
	}
}

func TestLoginPageEmbedded(t *testing.T) {
	assert.Contains(t, string(LoginPage), "login")
}
