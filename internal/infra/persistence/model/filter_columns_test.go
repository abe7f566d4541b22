package model

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The filter documents are opaque and must read back byte-identical, so
// their columns stay plain json. A jsonb column would decompose the value
// and re-serialize it in canonical form, losing key order and formatting.
func TestFilterColumnsUsePlainJSON(t *testing.T) {
	tests := []struct {
		name  string
		model any
		field string
	}{
		{name: "search history filters", model: SearchHistoryModel{}, field: "Filters"},
		{name: "saved address filters", model: SavedAddressModel{}, field: "FiltersUsed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field, ok := reflect.TypeOf(tt.model).FieldByName(tt.field)
			require.True(t, ok)
			assert.Equal(t, "type:json", field.Tag.Get("gorm"))
		})
	}
}
