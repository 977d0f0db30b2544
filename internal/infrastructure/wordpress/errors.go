package wordpress

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEndpointNotConfigured indicates the WPGraphQL endpoint URL is unset.
// The check runs before any network attempt.
var ErrEndpointNotConfigured = errors.New("wordpress: WPGraphQL endpoint is not configured")

// ErrNoData indicates a successful transport response whose envelope carried
// no data payload.
var ErrNoData = errors.New("wordpress: no GraphQL data returned")

// TransportError indicates a non-success HTTP status from the endpoint.
type TransportError struct {
	StatusCode int
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("wordpress: GraphQL request failed with status %d", e.StatusCode)
}

// GraphQLError indicates the endpoint answered with a non-empty errors list.
// The message is the server-supplied messages joined by comma-space, which
// the dashboard surfaces verbatim.
type GraphQLError struct {
	Messages []string
}

func (e *GraphQLError) Error() string {
	return strings.Join(e.Messages, ", ")
}
