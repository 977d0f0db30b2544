package contact

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contactdesk/backend/internal/domain/contact"
	"github.com/contactdesk/backend/internal/infrastructure/wordpress"
)

// stubClient answers GraphQL calls from a function and records what it saw.
type stubClient struct {
	mu        sync.Mutex
	queries   []string
	variables []map[string]any
	do        func(query string, variables map[string]any) (json.RawMessage, error)
}

func (s *stubClient) Do(_ context.Context, query string, variables map[string]any) (json.RawMessage, error) {
	s.mu.Lock()
	s.queries = append(s.queries, query)
	s.variables = append(s.variables, variables)
	s.mu.Unlock()
	return s.do(query, variables)
}

func newService(client GraphQLClient) *Service {
	return NewService(client, "contact", nil)
}

func TestServiceList(t *testing.T) {
	client := &stubClient{do: func(string, map[string]any) (json.RawMessage, error) {
		return json.RawMessage(`{
			"contacts": {"nodes": [
				{"id": "a", "databaseId": 1, "title": "Jane Doe"},
				{"id": "b", "databaseId": 2, "contactFields": {"fullName": "Asha Rao", "sectors": ["Energy"]}}
			]}
		}`), nil
	}}

	records, err := newService(client).List(context.Background())

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "1", records[0].ID)
	assert.Equal(t, "Jane Doe", records[0].FullName)
	assert.Equal(t, "2", records[1].ID)
	assert.Equal(t, "Asha Rao", records[1].FullName)
	assert.Equal(t, []string{"Energy"}, records[1].Sectors)
}

func TestServiceList_ZeroNodes(t *testing.T) {
	client := &stubClient{do: func(string, map[string]any) (json.RawMessage, error) {
		return json.RawMessage(`{"contacts": {"nodes": []}}`), nil
	}}

	records, err := newService(client).List(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestServiceList_ErrorPassThrough(t *testing.T) {
	wantErr := &wordpress.TransportError{StatusCode: 503}
	client := &stubClient{do: func(string, map[string]any) (json.RawMessage, error) {
		return nil, wantErr
	}}

	_, err := newService(client).List(context.Background())

	// Failures propagate unchanged; there is no retry or rewrapping.
	assert.Same(t, wantErr, err)
	assert.Len(t, client.queries, 1)
}

func TestServiceLookups(t *testing.T) {
	client := &stubClient{do: func(string, map[string]any) (json.RawMessage, error) {
		return json.RawMessage(`{
			"sectors": {"nodes": [{"name": "Energy"}, {"name": "Health"}]},
			"industries": {"nodes": [{"name": "Solar"}]}
		}`), nil
	}}

	lookups, err := newService(client).Lookups(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"Energy", "Health"}, lookups.Sectors)
	assert.Equal(t, []string{"Solar"}, lookups.Industries)
}

func TestServiceCreate(t *testing.T) {
	client := &stubClient{do: func(query string, variables map[string]any) (json.RawMessage, error) {
		return json.RawMessage(`{
			"createContact": {"contact": {"id": "x", "databaseId": 77, "contactFields": {"fullName": "New Person"}}}
		}`), nil
	}}

	created, err := newService(client).Create(context.Background(), contact.Input{FullName: "New Person"})

	require.NoError(t, err)
	assert.Equal(t, "77", created.ID)
	assert.Equal(t, "New Person", created.FullName)

	require.Len(t, client.variables, 1)
	input, ok := client.variables[0]["input"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "New Person", input["title"])
}

func TestServiceCreate_MissingNestedNode(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "missing operation field", data: `{}`},
		{name: "missing result field", data: `{"createContact": {}}`},
		{name: "null result field", data: `{"createContact": {"contact": null}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &stubClient{do: func(string, map[string]any) (json.RawMessage, error) {
				return json.RawMessage(tt.data), nil
			}}

			_, err := newService(client).Create(context.Background(), contact.Input{FullName: "X"})

			assert.ErrorIs(t, err, contact.ErrUnableToCreate)
		})
	}
}

func TestServiceUpdate(t *testing.T) {
	client := &stubClient{do: func(string, map[string]any) (json.RawMessage, error) {
		return json.RawMessage(`{
			"updateContact": {"contact": {"databaseId": 5, "contactFields": {"fullName": "Edited"}}}
		}`), nil
	}}

	updated, err := newService(client).Update(context.Background(), "5", contact.Input{FullName: "Edited"})

	require.NoError(t, err)
	assert.Equal(t, "5", updated.ID)
	assert.Equal(t, "Edited", updated.FullName)

	// The id is merged into the mutation input alongside the full payload.
	input, ok := client.variables[0]["input"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "5", input["id"])
	assert.Equal(t, "Edited", input["title"])
}

func TestServiceUpdate_MissingNestedNode(t *testing.T) {
	client := &stubClient{do: func(string, map[string]any) (json.RawMessage, error) {
		return json.RawMessage(`{"updateContact": null}`), nil
	}}

	_, err := newService(client).Update(context.Background(), "5", contact.Input{FullName: "X"})

	assert.ErrorIs(t, err, contact.ErrUnableToUpdate)
}

func TestServiceDelete(t *testing.T) {
	client := &stubClient{do: func(string, map[string]any) (json.RawMessage, error) {
		return json.RawMessage(`{"deleteContact": {"deletedId": "x"}}`), nil
	}}

	err := newService(client).Delete(context.Background(), "42")

	require.NoError(t, err)
	require.Len(t, client.variables, 1)
	input, ok := client.variables[0]["input"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "42", input["id"])
	assert.Equal(t, true, input["forceDelete"])
}

func TestServiceDelete_ErrorPassThrough(t *testing.T) {
	wantErr := &wordpress.GraphQLError{Messages: []string{"not found"}}
	client := &stubClient{do: func(string, map[string]any) (json.RawMessage, error) {
		return nil, wantErr
	}}

	err := newService(client).Delete(context.Background(), "42")

	assert.Same(t, wantErr, err)
}

// List and Lookups are independent round trips: one failing must not block
// the other.
func TestServiceListAndLookupsIndependent(t *testing.T) {
	client := &stubClient{do: func(query string, _ map[string]any) (json.RawMessage, error) {
		if strings.Contains(query, "ContactList") {
			return nil, &wordpress.TransportError{StatusCode: 500}
		}
		return json.RawMessage(`{"sectors": {"nodes": []}, "industries": {"nodes": []}}`), nil
	}}
	svc := newService(client)

	var wg sync.WaitGroup
	var listErr, lookupsErr error
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, listErr = svc.List(context.Background())
	}()
	go func() {
		defer wg.Done()
		_, lookupsErr = svc.Lookups(context.Background())
	}()
	wg.Wait()

	assert.Error(t, listErr)
	assert.NoError(t, lookupsErr)
}
