package contact

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Every JSON key of Input must have a field descriptor, and vice versa, so
// the dashboard column table cannot drift from the record shape.
func TestFieldsCoverInput(t *testing.T) {
	raw, err := json.Marshal(Input{Sectors: []string{}, Industries: []string{}})
	require.NoError(t, err)
	var keys map[string]any
	require.NoError(t, json.Unmarshal(raw, &keys))

	require.Len(t, Fields, len(keys))
	for _, f := range Fields {
		assert.Contains(t, keys, f.Key)
		assert.NotEmpty(t, f.Label)
		assert.NotNil(t, f.Get)
	}
}

func TestFieldsRenderValues(t *testing.T) {
	c := Contact{
		ID: "1",
		Input: Input{
			FullName: "Asha Rao",
			Sectors:  []string{"Energy", "Health"},
		},
	}

	rendered := map[string]string{}
	for _, f := range Fields {
		rendered[f.Key] = f.Get(c)
	}

	assert.Equal(t, "Asha Rao", rendered["fullName"])
	// Multi-valued attributes render as a comma-joined list.
	assert.Equal(t, "Energy, Health", rendered["sectors"])
	assert.Empty(t, rendered["mobileNumber"])
}
