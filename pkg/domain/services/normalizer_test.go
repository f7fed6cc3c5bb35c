package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsinha/mpn/pkg/domain/entities"
)

func testSuffixRules() []entities.SuffixRule {
	return []entities.SuffixRule{
		{Manufacturer: entities.Nexperia, Name: "12nc-reel", Pattern: `,\d{3}$`},
		{Manufacturer: entities.ManufacturerNone, Name: "tape-and-reel", Pattern: `(-TR|/TR|-T&R|-REEL7?)$`},
		{Manufacturer: entities.Infineon, Name: "ir-leadfree", Guard: `^IR`, Pattern: `(TRPBF|TRLPBF|PBF)$`},
		{
			Manufacturer: entities.Microchip,
			Name:         "tape-marker",
			Pattern:      `^((?:PIC|MCP|ATSAM|ATMEGA|ATTINY)[0-9A-Z]*[0-9A-Z])T(-[0-9A-Z]+/[A-Z0-9]+)$`,
			Replace:      "$1$2",
		},
		{Manufacturer: entities.STMicro, Name: "st-reel", Guard: `^(STM32|STM8|LIS|LSM)`, Pattern: `TR$`},
	}
}

func TestNormalizer_Normalize(t *testing.T) {
	n, err := NewNormalizer(testSuffixRules())
	require.NoError(t, err)

	testCases := []struct {
		name string
		raw  string
		want string
	}{
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
		{"trim and upper", "  pmbt2222a ", "PMBT2222A"},
		{"interior whitespace", "SN74 HC244 N", "SN74HC244N"},
		{"full width", "ＰＭＢＴ２２２２Ａ", "PMBT2222A"},
		{"nexperia reel code", "PMBT2222A,215", "PMBT2222A"},
		{"reel code lower case", "pmbt2222a,115", "PMBT2222A"},
		{"generic tape and reel", "LM358-TR", "LM358"},
		{"slash tape and reel", "LM358/TR", "LM358"},
		{"reel7", "BAT54-REEL7", "BAT54"},
		{"ir lead free", "IRF540NPBF", "IRF540N"},
		{"ir tape lead free", "IRLML6344TRPBF", "IRLML6344"},
		{"pbf without ir guard kept", "XYZ123PBF", "XYZ123PBF"},
		{"microchip tape marker", "PIC16F18446T-I/SS", "PIC16F18446-I/SS"},
		{"st reel", "LIS3DHTR", "LIS3DH"},
		{"zener voltage kept", "BZX84-C5V1", "BZX84-C5V1"},
		{"renesas version kept", "R5F100LEAFB#V1", "R5F100LEAFB#V1"},
		{"no rule applies", "61300211121", "61300211121"},
		{"stacked suffixes", "PMBT2222A,215-TR", "PMBT2222A"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, n.Normalize(tc.raw))
		})
	}
}

func TestNormalizer_Idempotent(t *testing.T) {
	n, err := NewNormalizer(testSuffixRules())
	require.NoError(t, err)

	for _, raw := range []string{"PMBT2222A,215", "IRLML6344TRPBF", "PIC16F18446T-I/SS", "BZX84-C5V1"} {
		once := n.Normalize(raw)
		assert.Equal(t, once, n.Normalize(once), raw)
	}
}

func TestNormalizer_NeverStripsToEmpty(t *testing.T) {
	n, err := NewNormalizer([]entities.SuffixRule{{Name: "everything", Pattern: `.*`}})
	require.NoError(t, err)

	assert.Equal(t, "ABC", n.Normalize("abc"))
}

func TestNormalizer_NilRules(t *testing.T) {
	var n *Normalizer
	assert.Equal(t, "PMBT2222A,215", n.Normalize(" pmbt2222a,215 "))
}

func TestNewNormalizer_InvalidRules(t *testing.T) {
	_, err := NewNormalizer([]entities.SuffixRule{{Name: "empty"}})
	assert.Error(t, err)

	_, err = NewNormalizer([]entities.SuffixRule{{Name: "bad", Pattern: `(`}})
	assert.Error(t, err)

	_, err = NewNormalizer([]entities.SuffixRule{{Name: "bad guard", Guard: `[`, Pattern: `TR$`}})
	assert.Error(t, err)
}

func TestNormalizer_PackagingSuffix(t *testing.T) {
	n, err := NewNormalizer(testSuffixRules())
	require.NoError(t, err)

	name, ok := n.PackagingSuffix("pmbt2222a,215")
	assert.True(t, ok)
	assert.Equal(t, "12nc-reel", name)

	_, ok = n.PackagingSuffix("BZX84-C5V1")
	assert.False(t, ok)
}

func TestNormalizer_Rules(t *testing.T) {
	rules := testSuffixRules()
	n, err := NewNormalizer(rules)
	require.NoError(t, err)

	got := n.Rules()
	assert.Equal(t, rules, got)

	got[0].Pattern = "mutated"
	assert.Equal(t, `,\d{3}$`, n.Rules()[0].Pattern)
}
