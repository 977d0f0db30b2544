// Package wordpress talks to an external WordPress installation through its
// WPGraphQL endpoint and translates between its node shapes and the
// application's contact model.
package wordpress

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// maxResponseSize bounds how much of a GraphQL response is read (10MB).
const maxResponseSize = 10 * 1024 * 1024

const tracerName = "contactdesk/wordpress"

// Client executes GraphQL documents against one configured endpoint. One
// POST per call, no retries, no response caching.
type Client struct {
	endpoint   string
	httpClient *http.Client
	tracer     trace.Tracer
}

// NewClient creates a client for the given endpoint. An empty endpoint is
// allowed; every call will then fail with ErrEndpointNotConfigured.
func NewClient(endpoint string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
		tracer:     otel.Tracer(tracerName),
	}
}

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphqlEnvelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// Do executes one query or mutation and returns the raw data payload.
// Failure shapes, in order of detection: unconfigured endpoint, transport
// failure (non-2xx status), GraphQL errors list, absent data.
func (c *Client) Do(ctx context.Context, query string, variables map[string]any) (json.RawMessage, error) {
	if c.endpoint == "" {
		return nil, ErrEndpointNotConfigured
	}

	ctx, span := c.tracer.Start(ctx, "wordpress.graphql",
		trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	body, err := json.Marshal(graphqlRequest{Query: query, Variables: variables})
	if err != nil {
		return nil, fmt.Errorf("wordpress: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("wordpress: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Cache-Control", "no-store")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.fail(span, fmt.Errorf("wordpress: request: %w", err))
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, c.fail(span, &TransportError{StatusCode: resp.StatusCode})
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, c.fail(span, fmt.Errorf("wordpress: read response: %w", err))
	}

	var envelope graphqlEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, c.fail(span, fmt.Errorf("wordpress: decode response: %w", err))
	}

	if len(envelope.Errors) > 0 {
		messages := make([]string, len(envelope.Errors))
		for i, e := range envelope.Errors {
			messages[i] = e.Message
		}
		return nil, c.fail(span, &GraphQLError{Messages: messages})
	}

	if len(envelope.Data) == 0 || string(envelope.Data) == "null" {
		return nil, c.fail(span, ErrNoData)
	}

	return envelope.Data, nil
}

func (c *Client) fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
