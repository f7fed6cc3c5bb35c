package mpn

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/vsinha/mpn/pkg/domain/entities"
	"github.com/vsinha/mpn/pkg/infrastructure/handlers"
	"github.com/vsinha/mpn/pkg/infrastructure/metrics"
)

func newTestEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	e, err := NewEngine(opts...)
	require.NoError(t, err)
	return e
}

func TestEngine_Classify(t *testing.T) {
	e := newTestEngine(t)

	testCases := []struct {
		mpn  string
		hint string
		want ComponentType
	}{
		{"61300211121", "", entities.ConnectorWurth},
		{"PMBT2222A,215", "", entities.TransistorNexperia},
		{"R5F100LEAFB#30", "", entities.MicrocontrollerRenesasRL78},
		{"R5F51303ADFM", "", entities.MicrocontrollerRenesasRX},
		{"BZX84-C5V1", "", entities.DiodeNexperia},
		{"BZX84-C5V1", "onsemi", entities.Diode},
		{"  pmbt2222a,215 ", "", entities.TransistorNexperia},
		{"", "", Unknown},
		{"XYZZY", "", Unknown},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%q/%q", tc.mpn, tc.hint), func(t *testing.T) {
			assert.Equal(t, tc.want, e.ClassifyWithHint(tc.mpn, tc.hint))
			if tc.hint == "" {
				assert.Equal(t, tc.want, e.Classify(tc.mpn))
			}
		})
	}
}

func TestEngine_ClassifyIsDeterministic(t *testing.T) {
	e := newTestEngine(t)
	for i := 0; i < 10; i++ {
		assert.Equal(t, entities.MicrocontrollerRenesasRL78, e.Classify("R5F100LEAFB#30"))
	}
}

func TestEngine_ExtractAttributes(t *testing.T) {
	e := newTestEngine(t)

	t.Run("wurth header", func(t *testing.T) {
		attrs := e.ExtractAttributes("61300211121", "")
		assert.Equal(t, "61300", attrs[entities.AttrSeries])
		assert.Equal(t, "1", attrs[entities.AttrPackageCode])
		assert.Equal(t, "wurth", attrs[entities.AttrManufacturer])
	})

	t.Run("reel suffix stripped before extraction", func(t *testing.T) {
		attrs := e.ExtractAttributes("PMBT2222A,215", "")
		assert.Equal(t, "PMBT", attrs[entities.AttrSeries])
		assert.Equal(t, "SOT23", attrs[entities.AttrPackageCode])
	})

	t.Run("format specific package rule", func(t *testing.T) {
		assert.Equal(t, "SOT23", e.ExtractAttributes("BZX84-C5V1", "")[entities.AttrPackageCode])
	})

	t.Run("hint for a manufacturer without shapes", func(t *testing.T) {
		attrs := e.ExtractAttributes("2N3904", "Acme Parts")
		assert.Equal(t, "TO92", attrs[entities.AttrPackageCode])
	})

	t.Run("idempotent", func(t *testing.T) {
		first := e.ExtractAttributes("STM32F103C8T6", "")
		second := e.ExtractAttributes("STM32F103C8T6", "")
		assert.Equal(t, first, second)
		assert.Equal(t, "STM32F103", first[entities.AttrSeries])
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, e.ExtractAttributes("", ""))
	})
}

func TestEngine_Describe(t *testing.T) {
	e := newTestEngine(t)

	r := e.Describe("psmn3r5-30ylt", "")
	assert.Equal(t, entities.PartNumber("psmn3r5-30ylt"), r.MPN)
	assert.Equal(t, "PSMN3R5-30YLT", r.Normalized)
	assert.Equal(t, entities.MOSFETNexperia, r.Type)
	assert.Equal(t, entities.Nexperia, r.Manufacturer)
	assert.Equal(t, "LFPAK56", r.Attributes[entities.AttrPackageCode])

	r = e.Describe("2N3904", "Nexperia")
	assert.Equal(t, entities.Transistor, r.Type)
	assert.Equal(t, entities.Nexperia, r.Manufacturer, "hinted manufacturer is kept for generic matches")
}

func TestEngine_AreInterchangeable(t *testing.T) {
	e := newTestEngine(t)

	testCases := []struct {
		name       string
		a, b       string
		typ        ComponentType
		compatible bool
	}{
		{"psmn package suffix", "PSMN3R5-30YLT", "PSMN3R5-30YLU", entities.MOSFET, true},
		{"psmn different rds", "PSMN3R5-30YLT", "PSMN1R0-30YLT", entities.MOSFET, false},
		{"psmn logic vs standard gate", "PSMN3R5-30YLT", "PSMN3R5-30YST", entities.MOSFET, false},
		{"chip resistors across manufacturers", "RC0603FR-0710KL", "CRCW060310K0FKEA", entities.Resistor, true},
		{"chip resistor value differs", "RC0603FR-0710KL", "RC0603FR-0712KL", entities.Resistor, false},
		{"mlcc across manufacturers", "GRM188R71H104KA93D", "C0603C104K5RACTU", entities.Capacitor, true},
		{"cross-listed RF front ends", "SKY66112-11", "RFFM6204", entities.RFIC, true},
		{"logic family upgrade", "SN74HC244DR", "SN74HCT244DR", entities.LogicIC, true},
		{"logic family downgrade", "SN74HCT244DR", "SN74HC244DR", entities.LogicIC, false},
		{"type unknown to the caller", "PSMN3R5-30YLT", "PSMN3R5-30YLU", Unknown, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v := e.AreInterchangeable(tc.a, tc.b, tc.typ)
			assert.Equal(t, tc.compatible, v.Compatible, v.Reasons)
			assert.NotEmpty(t, v.Reasons)
		})
	}
}

func TestEngine_AreInterchangeable_Reflexive(t *testing.T) {
	e := newTestEngine(t)

	for _, mpn := range []string{"61300211121", "BZX84-C5V1", "SN74HC244DR", "XYZZY", "SKY66112-11"} {
		t.Run(mpn, func(t *testing.T) {
			v := e.AreInterchangeable(mpn, mpn, e.Classify(mpn))
			assert.True(t, v.Compatible)
			assert.Equal(t, 1.0, v.Score)
		})
	}

	v := e.AreInterchangeable("", "", Unknown)
	assert.False(t, v.Compatible)
	assert.Equal(t, []string{"FAIL input: empty MPN"}, v.Reasons)
}

func TestEngine_AreInterchangeable_Symmetric(t *testing.T) {
	e := newTestEngine(t)

	pairs := []struct {
		a, b string
		typ  ComponentType
	}{
		{"RC0603FR-0710KL", "CRCW060310K0FKEA", entities.Resistor},
		{"GRM188R71H104KA93D", "C0603C104K5RACTU", entities.Capacitor},
		{"PSMN3R5-30YLT", "PSMN1R0-30YLT", entities.MOSFET},
		{"STM32F103C8T6", "STM32F103CBT6", entities.Microcontroller},
	}

	for _, p := range pairs {
		t.Run(p.a+" vs "+p.b, func(t *testing.T) {
			ab := e.AreInterchangeable(p.a, p.b, p.typ)
			ba := e.AreInterchangeable(p.b, p.a, p.typ)
			assert.Equal(t, ab.Compatible, ba.Compatible)
			assert.InDelta(t, ab.Score, ba.Score, 1e-9)
		})
	}
}

func TestEngine_RankReplacements(t *testing.T) {
	e := newTestEngine(t)

	ranked := e.RankReplacements("RC0603FR-0710KL",
		[]string{"RC0603FR-0712KL", "CRCW060310K0FKEA", "RC0603JR-0710KL", "RC0603FR-1310KL"},
		entities.Resistor)
	require.Len(t, ranked, 4)

	assert.Equal(t, "RC0603FR-1310KL", ranked[0].Record.Normalized)
	assert.Equal(t, 1.0, ranked[0].Verdict.Score)
	for _, r := range ranked[:3] {
		assert.True(t, r.Verdict.Compatible, r.Record.Normalized)
	}
	assert.Equal(t, "RC0603FR-0712KL", ranked[3].Record.Normalized)
	assert.False(t, ranked[3].Verdict.Compatible)
}

func TestEngine_DescribeAll(t *testing.T) {
	e := newTestEngine(t)
	queries := []Query{
		{MPN: "61300211121"},
		{MPN: "BZX84-C5V1", Manufacturer: "onsemi"},
		{MPN: "XYZZY"},
	}

	records, err := e.DescribeAll(context.Background(), queries, 2)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, entities.ConnectorWurth, records[0].Type)
	assert.Equal(t, entities.Diode, records[1].Type)
	assert.Equal(t, Unknown, records[2].Type)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = e.DescribeAll(ctx, queries, 2)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEngine_Concurrent(t *testing.T) {
	e := newTestEngine(t)
	mpns := []string{"61300211121", "PMBT2222A,215", "R5F100LEAFB#30", "R5F51303ADFM", "BZX84-C5V1", "PSMN3R5-30YLT"}
	want := make([]ComponentType, len(mpns))
	for i, m := range mpns {
		want[i] = e.Classify(m)
	}

	var wg sync.WaitGroup
	for g := 0; g < 16; g++ {
		g := g
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				k := (g + i) % len(mpns)
				assert.Equal(t, want[k], e.Classify(mpns[k]))
				e.AreInterchangeable(mpns[k], mpns[(k+1)%len(mpns)], Unknown)
			}
		}()
	}
	wg.Wait()
}

func TestEngine_Observability(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	reg := prometheus.NewRegistry()
	recorder := metrics.NewRecorder(reg)

	e := newTestEngine(t, WithLogger(zap.New(core)), WithRecorder(recorder))
	assert.Equal(t, 1, logs.FilterMessage("mpn engine built").Len())

	e.Classify("XYZZY")
	e.Classify("PMBT2222A,215")
	e.AreInterchangeable("RC0603FR-0710KL", "CRCW060310K0FKEA", entities.Resistor)

	assert.Equal(t, 1, logs.FilterMessage("no pattern matched").Len())

	count, err := testutil.GatherAndCount(reg, "mpn_unknown_total", "mpn_classifications_total", "mpn_comparisons_total")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, count, 3)
}

func TestNewEngine_InvalidDefinitions(t *testing.T) {
	defs := []handlers.Definition{
		{ID: entities.Nexperia, Name: "A", Patterns: []handlers.PatternDef{{Type: entities.Diode, Expr: `BZX`}}},
		{ID: entities.Nexperia, Name: "B", Patterns: []handlers.PatternDef{{Type: entities.Diode, Expr: `BAT`}}},
	}
	_, err := NewEngine(WithDefinitions(defs...))
	assert.ErrorIs(t, err, handlers.ErrDuplicateHandler)

	assert.Panics(t, func() { MustNewEngine(WithDefinitions(defs...)) })
}

func TestNewEngine_CustomDefinitions(t *testing.T) {
	e := newTestEngine(t, WithDefinitions(handlers.Definition{
		ID:       entities.Nexperia,
		Name:     "Nexperia",
		Patterns: []handlers.PatternDef{{Type: entities.DiodeNexperia, Expr: `BZX84`}},
	}))
	assert.Equal(t, entities.DiodeNexperia, e.Classify("BZX84-C5V1"))
	assert.Equal(t, Unknown, e.Classify("2N3904"))
}

func TestDefault(t *testing.T) {
	assert.Same(t, Default(), Default())
	assert.Equal(t, entities.ConnectorWurth, Classify("61300211121"))
	assert.Equal(t, entities.Diode, ClassifyWithHint("BZX84-C5V1", "onsemi"))
	assert.Equal(t, "SOT23", ExtractAttributes("BZX84-C5V1", "")[entities.AttrPackageCode])
	assert.True(t, AreInterchangeable("PSMN3R5-30YLT", "PSMN3R5-30YLU", entities.MOSFET).Compatible)
}
