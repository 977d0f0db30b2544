// Package contact composes the GraphQL transport client and the schema
// mapper into the four record operations plus the taxonomy lookup fetch.
package contact

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/contactdesk/backend/internal/domain/contact"
	"github.com/contactdesk/backend/internal/infrastructure/wordpress"
)

// GraphQLClient executes one GraphQL document and returns the raw data
// payload. Satisfied by *wordpress.Client.
type GraphQLClient interface {
	Do(ctx context.Context, query string, variables map[string]any) (json.RawMessage, error)
}

// Service implements the record operations over the external system. Every
// operation is an independent external round trip: no retries, no caching,
// no transactional guarantee across calls.
type Service struct {
	client   GraphQLClient
	postType string
	logger   *zap.Logger
}

// NewService creates a record service bound to one GraphQL client and one
// configured post type.
func NewService(client GraphQLClient, postType string, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		client:   client,
		postType: postType,
		logger:   logger,
	}
}

// List fetches up to 200 contacts in server-supplied order. Zero nodes yield
// an empty slice, not an error.
func (s *Service) List(ctx context.Context) ([]contact.Contact, error) {
	data, err := s.client.Do(ctx, wordpress.ContactListQuery(), nil)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Contacts struct {
			Nodes []wordpress.ContactNode `json:"nodes"`
		} `json:"contacts"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, err
	}

	records := make([]contact.Contact, 0, len(payload.Contacts.Nodes))
	for _, node := range payload.Contacts.Nodes {
		records = append(records, wordpress.MapContact(node))
	}
	return records, nil
}

// Lookups fetches the sector and industry term names in server-supplied
// order, regenerated on every call.
func (s *Service) Lookups(ctx context.Context) (contact.Lookups, error) {
	data, err := s.client.Do(ctx, wordpress.LookupsQuery(), nil)
	if err != nil {
		return contact.Lookups{}, err
	}

	var payload struct {
		Sectors    termList `json:"sectors"`
		Industries termList `json:"industries"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return contact.Lookups{}, err
	}

	return contact.Lookups{
		Sectors:    payload.Sectors.names(),
		Industries: payload.Industries.names(),
	}, nil
}

type termList struct {
	Nodes []struct {
		Name string `json:"name"`
	} `json:"nodes"`
}

func (t termList) names() []string {
	names := make([]string, 0, len(t.Nodes))
	for _, n := range t.Nodes {
		names = append(names, n.Name)
	}
	return names
}

// Create issues the create mutation and returns the mapped created record.
// A response missing the nested created node fails with ErrUnableToCreate.
func (s *Service) Create(ctx context.Context, in contact.Input) (contact.Contact, error) {
	data, err := s.client.Do(ctx, wordpress.CreateMutation(s.postType), map[string]any{
		"input": wordpress.BuildInput(in),
	})
	if err != nil {
		return contact.Contact{}, err
	}

	names := wordpress.NamesFor(s.postType)
	node, ok := extractNode(data, names.Create, names.Result)
	if !ok {
		return contact.Contact{}, contact.ErrUnableToCreate
	}

	s.logger.Info("Contact created", zap.String("id", node.ID))
	return wordpress.MapContact(node), nil
}

// Update issues the update mutation with the id merged into the input
// payload. Full-record replace semantics: every field is sent every time.
func (s *Service) Update(ctx context.Context, id string, in contact.Input) (contact.Contact, error) {
	input := wordpress.BuildInput(in)
	input["id"] = id

	data, err := s.client.Do(ctx, wordpress.UpdateMutation(s.postType), map[string]any{
		"input": input,
	})
	if err != nil {
		return contact.Contact{}, err
	}

	names := wordpress.NamesFor(s.postType)
	node, ok := extractNode(data, names.Update, names.Result)
	if !ok {
		return contact.Contact{}, contact.ErrUnableToUpdate
	}

	s.logger.Info("Contact updated", zap.String("id", id))
	return wordpress.MapContact(node), nil
}

// Delete issues the delete mutation with forceDelete always true: the record
// is permanently removed, never trashed. The confirmation payload is not
// inspected beyond the transport-level envelope checks.
func (s *Service) Delete(ctx context.Context, id string) error {
	_, err := s.client.Do(ctx, wordpress.DeleteMutation(s.postType), map[string]any{
		"input": map[string]any{
			"id":          id,
			"forceDelete": true,
		},
	})
	if err != nil {
		return err
	}

	s.logger.Info("Contact deleted", zap.String("id", id))
	return nil
}

// extractNode digs the mutated node out of data[operation][result]. A
// missing level at either key reports false.
func extractNode(data json.RawMessage, operation, result string) (wordpress.ContactNode, bool) {
	var payload map[string]map[string]*wordpress.ContactNode
	if err := json.Unmarshal(data, &payload); err != nil {
		return wordpress.ContactNode{}, false
	}
	node := payload[operation][result]
	if node == nil {
		return wordpress.ContactNode{}, false
	}
	return *node, true
}
