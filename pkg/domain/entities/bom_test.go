package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBOMLine_Validation(t *testing.T) {
	line, err := NewBOMLine("PCB-100", "RC0603FR-0710KL", "Yageo", 4, 10, "R10K", 1)
	require.NoError(t, err)
	assert.Equal(t, Quantity(4), line.QtyPer)
	assert.True(t, line.IsAlternate())
	assert.Empty(t, line.Category)

	testCases := []struct {
		name       string
		parentPN   PartNumber
		mpn        PartNumber
		qtyPer     Quantity
		findNumber int
		priority   int
		want       string
	}{
		{"empty parent", "", "R1", 1, 1, 0, "parent part number cannot be empty"},
		{"empty mpn", "PCB", "", 1, 1, 0, "manufacturer part number cannot be empty"},
		{"self reference", "PCB", "PCB", 1, 1, 0, "cannot be the same"},
		{"zero quantity", "PCB", "R1", 0, 1, 0, "quantity per must be positive"},
		{"zero find number", "PCB", "R1", 1, 0, 0, "find number must be positive"},
		{"negative priority", "PCB", "R1", 1, 1, -1, "priority cannot be negative"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewBOMLine(tc.parentPN, tc.mpn, "", tc.qtyPer, tc.findNumber, "", tc.priority)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestBOMLine_IsAlternate(t *testing.T) {
	assert.False(t, BOMLine{}.IsAlternate())
	assert.True(t, BOMLine{AlternateGroup: "G1"}.IsAlternate())
}

func TestBOMPolicy_Validate(t *testing.T) {
	assert.NoError(t, DefaultBOMPolicy().Validate())
	assert.Equal(t, 0.5, DefaultBOMPolicy().MinScore)

	assert.Error(t, BOMPolicy{MinScore: -0.1}.Validate())
	assert.Error(t, BOMPolicy{MinScore: 1.5}.Validate())
	assert.Error(t, BOMPolicy{Workers: -1}.Validate())
	assert.NoError(t, BOMPolicy{MinScore: 1, Workers: 8}.Validate())
}

func TestParseCategory(t *testing.T) {
	for c := CategoryOther; c <= CategoryAnalog; c++ {
		t.Run(c.String(), func(t *testing.T) {
			got, ok := ParseCategory(" " + c.String() + " ")
			require.True(t, ok)
			assert.Equal(t, c, got)
		})
	}

	got, ok := ParseCategory("flux-capacitor")
	assert.False(t, ok)
	assert.Equal(t, CategoryOther, got)

	got, ok = ParseCategory("RF")
	assert.True(t, ok)
	assert.Equal(t, CategoryRF, got)
}
