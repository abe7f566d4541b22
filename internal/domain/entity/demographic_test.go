package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIncomeBracket(t *testing.T) {
	income := func(v int64) *int64 { return &v }

	tests := []struct {
		name         string
		medianIncome *int64
		want         string
	}{
		{name: "nil income", medianIncome: nil, want: IncomeUnknown},
		{name: "zero income", medianIncome: income(0), want: IncomeUnknown},
		{name: "below middle floor", medianIncome: income(39999), want: IncomeLow},
		{name: "at middle floor", medianIncome: income(40000), want: IncomeMiddle},
		{name: "below upper middle floor", medianIncome: income(74999), want: IncomeMiddle},
		{name: "at upper middle floor", medianIncome: income(75000), want: IncomeUpperMiddle},
		{name: "below high floor", medianIncome: income(119999), want: IncomeUpperMiddle},
		{name: "at high floor", medianIncome: income(120000), want: IncomeHigh},
		{name: "well above high floor", medianIncome: income(250000), want: IncomeHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IncomeBracket(tt.medianIncome))
		})
	}
}

func TestDemographic_IncomeRange(t *testing.T) {
	income := int64(78000)
	record := &Demographic{ZipCode: "66207", MedianIncome: &income}

	assert.Equal(t, IncomeUpperMiddle, record.IncomeRange())
}
