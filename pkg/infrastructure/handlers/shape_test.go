package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsinha/mpn/pkg/domain/entities"
)

func TestCompileShape_Errors(t *testing.T) {
	testCases := []struct {
		name  string
		shape Shape
	}{
		{"empty expression", Shape{Name: "x", Expr: "  "}},
		{"invalid regexp", Shape{Name: "x", Expr: `(?P<series>AB`}},
		{"field without attribute", Shape{Name: "x", Expr: `(?P<series>AB)`, Fields: []Field{{Group: GroupSeries}}}},
		{"field on unknown group", Shape{Name: "x", Expr: `(?P<series>AB)`, Fields: []Field{{Attr: entities.AttrPackageCode, Group: "size"}}}},
		{"append of unknown group", Shape{Name: "x", Expr: `(?P<series>AB)`, Fields: []Field{{Attr: entities.AttrSeries, Group: GroupSeries, Append: []string{"line"}}}}},
		{"inverted slice", Shape{Name: "x", Expr: `(?P<series>AB)`, Fields: []Field{{Attr: entities.AttrSeries, From: 3, To: 2}}}},
		{"negative slice", Shape{Name: "x", Expr: `(?P<series>AB)`, Fields: []Field{{Attr: entities.AttrSeries, From: -1}}}},
		{"facts key on unknown group", Shape{Name: "x", Expr: `(?P<series>AB)`, FactsKey: []string{GroupRating}}},
		{"interchangeable unknown group", Shape{Name: "x", Expr: `(?P<series>AB)`, Interchangeable: []string{GroupPkg}}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := compileShape(tc.shape)
			assert.Error(t, err)
		})
	}
}

func TestCompileShape_AnchorsBothEnds(t *testing.T) {
	s, err := compileShape(Shape{Name: "x", Expr: `(?P<series>AB)(?P<rating>\d{2})`})
	require.NoError(t, err)

	assert.NotNil(t, s.re.FindStringSubmatch("AB12"))
	assert.Nil(t, s.re.FindStringSubmatch("XAB12"))
	assert.Nil(t, s.re.FindStringSubmatch("AB123"))
}

func TestCompiledShape_Extract(t *testing.T) {
	s, err := compileShape(Shape{
		Name: "x",
		Expr: `(?P<series>AB)(?P<size>\d{2})(?P<rating>\d{3})(?P<tol>[FJ])(?P<suffix>[A-Z]*)`,
		Fields: []Field{
			{Attr: entities.AttrPackageCode, Group: "size", Table: map[string]string{"18": "0603"}},
			{Attr: entities.AttrValue, Group: GroupRating, Rule: RuleCapacitance},
			{Attr: entities.AttrTolerance, Group: "tol", Rule: RuleTolerance},
			{Attr: entities.AttrVariantCode, Group: GroupSuffix},
			{Attr: entities.AttrFamily, To: 3},
		},
		Facts: map[string]entities.ExtractedAttributes{
			"AB": {entities.AttrDielectric: "X7R", entities.AttrPackageCode: "ignored"},
		},
	})
	require.NoError(t, err)

	t.Run("decodes every field", func(t *testing.T) {
		mpn := "AB18104FZ"
		attrs := s.extract(mpn, s.re.FindStringSubmatch(mpn))

		assert.Equal(t, "AB", attrs[entities.AttrSeries])
		assert.Equal(t, "104", attrs[entities.AttrRatingToken])
		assert.Equal(t, "0603", attrs[entities.AttrPackageCode], "decoded fields beat facts")
		assert.Equal(t, "100000", attrs[entities.AttrValue])
		assert.Equal(t, "1", attrs[entities.AttrTolerance])
		assert.Equal(t, "Z", attrs[entities.AttrVariantCode])
		assert.Equal(t, "AB1", attrs[entities.AttrFamily])
		assert.Equal(t, "X7R", attrs[entities.AttrDielectric])
	})

	t.Run("table miss and empty group leave attributes absent", func(t *testing.T) {
		mpn := "AB21104J"
		attrs := s.extract(mpn, s.re.FindStringSubmatch(mpn))

		assert.Equal(t, "ignored", attrs[entities.AttrPackageCode], "facts fill what the table could not")
		assert.False(t, attrs.Has(entities.AttrVariantCode))
		assert.Equal(t, "5", attrs[entities.AttrTolerance])
	})
}

func TestCompiledShape_ExtractAppendsGroups(t *testing.T) {
	s, err := compileShape(Shape{
		Name: "x",
		Expr: `(?:(?P<decade>\d)-)?(?P<series>640456)-(?P<units>\d)`,
		Fields: []Field{
			{Attr: entities.AttrPinCount, Group: "decade", Append: []string{"units"}, Rule: RuleNumeric},
		},
	})
	require.NoError(t, err)

	for mpn, want := range map[string]string{"640456-4": "4", "1-640456-0": "10", "2-640456-2": "22"} {
		attrs := s.extract(mpn, s.re.FindStringSubmatch(mpn))
		assert.Equal(t, want, attrs[entities.AttrPinCount], mpn)
	}
}

func TestAfterLastDigit(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"R5F100LEAFB#30", "LEAFB"},
		{"R5F51303ADFM", "ADFM"},
		{"R5F51303ADFM#V1", "ADFM"},
		{"ABC", ""},
		{"123", ""},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, afterLastDigit(tc.in))
		})
	}
}

func TestCompiledShape_AppliesTo(t *testing.T) {
	s, err := compileShape(Shape{Name: "x", Expr: `AB`, Types: []entities.ComponentType{entities.MOSFETNexperia}})
	require.NoError(t, err)

	assert.True(t, s.appliesTo(entities.Unknown))
	assert.True(t, s.appliesTo(entities.MOSFETNexperia))
	assert.True(t, s.appliesTo(entities.MOSFET))
	assert.False(t, s.appliesTo(entities.MOSFETInfineon))
	assert.False(t, s.appliesTo(entities.Diode))

	untyped, err := compileShape(Shape{Name: "y", Expr: `AB`})
	require.NoError(t, err)
	assert.True(t, untyped.appliesTo(entities.Diode))
}

func TestRule_String(t *testing.T) {
	assert.Equal(t, "text", RuleText.String())
	assert.Equal(t, "after-last-digit", RuleAfterLastDigit.String())
	assert.Equal(t, "inductance", RuleInductance.String())
	assert.Equal(t, "unknown", Rule(99).String())
}
