package memory

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsinha/mpn/pkg/domain/entities"
)

func TestLiteralPrefixLength(t *testing.T) {
	testCases := []struct {
		pattern string
		want    int
	}{
		{`PMBT\d+`, 4},
		{`^PMBT\d+`, 4},
		{`R5F10[0-9A-Z]+`, 5},
		{`R5F\d{3,5}[A-Z0-9]+`, 3},
		{`(BZX84)-[BC]\d+V\d*`, 6},
		{`\d{11}`, 0},
		{`[A-Z]{2}\d+`, 0},
		{`PSM(N|B)\d+`, 3},
		{`SN74`, 4},
		{`(?i)grm\d+`, 3},
		{`[`, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.pattern, func(t *testing.T) {
			assert.Equal(t, tc.want, LiteralPrefixLength(tc.pattern))
		})
	}
}

func TestBuilder_RegisterAndLookup(t *testing.T) {
	b := NewBuilder(4)
	require.NoError(t, b.Register(entities.Transistor, `[A-Z]{2,4}\d{3,4}[A-Z]?`, entities.ManufacturerNone, 0))
	require.NoError(t, b.Register(entities.TransistorNexperia, `PMBT\d{4}[A-Z]?`, entities.Nexperia, 0))
	require.NoError(t, b.Register(entities.Diode, `BZX84-[BC]\d+V\d*`, entities.ManufacturerNone, 0))

	reg := b.Build()
	assert.Equal(t, 3, reg.Len())

	matches := reg.Lookup("PMBT2222A")
	require.Len(t, matches, 2, "overlapping patterns must both match")
	assert.Equal(t, entities.Transistor, matches[0].Type)
	assert.Equal(t, 0, matches[0].Index)
	assert.Equal(t, entities.TransistorNexperia, matches[1].Type)
	assert.Equal(t, 4, matches[1].Strength)
	assert.True(t, matches[1].Scoped())
	assert.False(t, matches[0].Scoped())

	// Matching is case-insensitive
	assert.Len(t, reg.Lookup("pmbt2222a"), 2)

	// Anchored at the start
	assert.Empty(t, reg.Lookup("XXBZX84-C5V1"))
	assert.Empty(t, reg.Lookup(""))
}

func TestBuilder_NoDeduplication(t *testing.T) {
	b := NewBuilder(2)
	require.NoError(t, b.Register(entities.Diode, `BZX84`, entities.ManufacturerNone, 0))
	require.NoError(t, b.Register(entities.Diode, `BZX84`, entities.ManufacturerNone, 0))

	reg := b.Build()
	assert.Len(t, reg.Lookup("BZX84-C5V1"), 2)
}

func TestBuilder_Validation(t *testing.T) {
	b := NewBuilder(1)

	err := b.Register(entities.Diode, `BZX84(`, entities.ManufacturerNone, 0)
	assert.True(t, errors.Is(err, ErrInvalidPattern))

	err = b.Register(entities.Diode, "   ", entities.ManufacturerNone, 0)
	assert.True(t, errors.Is(err, ErrInvalidPattern))

	err = b.Register(entities.Unknown, `X`, entities.ManufacturerNone, 0)
	assert.True(t, errors.Is(err, ErrInvalidPattern))

	// A variant cannot be registered under another manufacturer
	err = b.Register(entities.MOSFETNexperia, `PSMN`, entities.Infineon, 0)
	assert.True(t, errors.Is(err, ErrInvalidPattern))

	assert.Equal(t, 0, b.Len())
}

func TestBuilder_FrozenAfterBuild(t *testing.T) {
	b := NewBuilder(1)
	require.NoError(t, b.Register(entities.Diode, `BZX84`, entities.ManufacturerNone, 0))
	reg := b.Build()

	err := b.Register(entities.Diode, `BZX79`, entities.ManufacturerNone, 0)
	assert.True(t, errors.Is(err, ErrRegistryFrozen))
	assert.Equal(t, 1, reg.Len())
}

func TestRegistry_EntriesReturnsCopy(t *testing.T) {
	b := NewBuilder(1)
	require.NoError(t, b.Register(entities.Diode, `BZX84`, entities.ManufacturerNone, 0))
	reg := b.Build()

	entries := reg.Entries()
	entries[0].Pattern = "MUTATED"

	assert.Equal(t, "BZX84", reg.Entries()[0].Pattern)
}

func TestRegistry_ConcurrentLookup(t *testing.T) {
	b := NewBuilder(2)
	require.NoError(t, b.Register(entities.Transistor, `[A-Z]{2,4}\d{3,4}[A-Z]?`, entities.ManufacturerNone, 0))
	require.NoError(t, b.Register(entities.TransistorNexperia, `PMBT\d{4}[A-Z]?`, entities.Nexperia, 0))
	reg := b.Build()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if got := len(reg.Lookup("PMBT2222A")); got != 2 {
					t.Errorf("expected 2 matches, got %d", got)
					return
				}
			}
		}()
	}
	wg.Wait()
}
