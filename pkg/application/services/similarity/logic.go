package similarity

import (
	"slices"

	"github.com/vsinha/mpn/pkg/domain/entities"
)

// familyReplaces lists, per logic family, the families it can stand in for
var familyReplaces = map[string][]string{
	"HCT":  {"HC", "LS", "TTL"},
	"ACT":  {"AC", "HCT", "LS"},
	"AHCT": {"AHC", "HCT", "LS"},
	"ALS":  {"LS", "TTL"},
	"LVC":  {"LV"},
	"LS":   {"TTL"},
}

// FamilyReplaces reports whether a candidate logic family can replace the
// required one
func FamilyReplaces(candidate, required string) bool {
	return candidate == required || slices.Contains(familyReplaces[candidate], required)
}

type logicCalculator struct{}

func (logicCalculator) Category() entities.Category { return entities.CategoryLogic }
func (logicCalculator) Symmetric() bool             { return false }

func (logicCalculator) Compare(required, candidate entities.ComponentRecord) entities.CompatibilityVerdict {
	var c checkList
	c.equal("function", entities.AttrFunction, required, candidate)

	fa, okA := required.Attr(entities.AttrFamily)
	fb, okB := candidate.Attr(entities.AttrFamily)
	switch {
	case !okA || !okB:
		c.missing("family", fa, okA, fb, okB)
	case fa == fb:
		c.pass("family", "%s", fa)
	case FamilyReplaces(fb, fa):
		c.pass("family", "%s replaces %s", fb, fa)
	default:
		c.fail("family", "%s cannot replace %s", fb, fa)
	}

	c.softEqual("package", entities.AttrPackageCode, required, candidate)
	return c.verdict()
}
