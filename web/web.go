// Package web embeds the static page shells served behind the session guard.
package web

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/contactdesk/backend/internal/domain/contact"
)

//go:embed login.html
var LoginPage []byte

//go:embed dashboard.html.tmpl
var dashboardShell string

// DashboardPage is the dashboard shell with its table columns rendered from
// the contact field table, so the page and the record shape cannot drift.
var DashboardPage = renderDashboard()

func renderDashboard() []byte {
	tmpl := template.Must(template.New("dashboard").Parse(dashboardShell))
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, contact.Fields); err != nil {
		panic(err)
	}
	return buf.Bytes()
}
