package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeBusinessType(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  BusinessType
	}{
		{name: "known type", input: "coffee", want: BusinessTypeCoffee},
		{name: "other passes through", input: "other", want: BusinessTypeOther},
		{name: "unknown folds to other", input: "alpaca farm", want: BusinessTypeOther},
		{name: "empty folds to other", input: "", want: BusinessTypeOther},
		{name: "case sensitive", input: "Coffee", want: BusinessTypeOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeBusinessType(tt.input))
		})
	}
}
