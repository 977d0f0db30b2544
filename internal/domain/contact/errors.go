package contact

import "github.com/contactdesk/backend/internal/domain/shared"

// Errors returned when an otherwise successful mutation response is missing
// the nested record the external schema promises. They signal a contract
// violation by the external system, not a transport failure.
var (
	ErrUnableToCreate = shared.NewDomainError("EXTERNAL_CONTRACT", "Unable to create contact")
	ErrUnableToUpdate = shared.NewDomainError("EXTERNAL_CONTRACT", "Unable to update contact")
)
