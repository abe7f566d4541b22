package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_PreservesBytes(t *testing.T) {
	raw := `{"b":1,"a":{"nested":[1,2,3]}}`

	var doc Document
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	out, err := json.Marshal(doc)
	require.NoError(t, err)

	// Key order and formatting survive untouched.
	assert.Equal(t, raw, string(out))
}

func TestDocument_EmptyMarshalsAsNull(t *testing.T) {
	out, err := json.Marshal(Document(nil))
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))
}
