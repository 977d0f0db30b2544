// Package dto defines the wire shapes of the dashboard API. Success bodies
// are endpoint-specific (the UI contract fixes them); failures always carry
// a single message.
package dto

import "github.com/contactdesk/backend/internal/domain/contact"

// ErrorResponse is the failure body for every endpoint.
type ErrorResponse struct {
	Message string `json:"message"`
}

// NewErrorResponse creates an error response
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Message: message}
}

// OKResponse acknowledges an operation with no payload (login, logout,
// delete).
type OKResponse struct {
	OK bool `json:"ok"`
}

// ContactsResponse wraps the record list.
type ContactsResponse struct {
	Contacts []contact.Contact `json:"contacts"`
}

// ContactResponse wraps a single created or updated record.
type ContactResponse struct {
	Contact contact.Contact `json:"contact"`
}
