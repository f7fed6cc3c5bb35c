package similarity

import (
	"github.com/shopspring/decimal"

	"github.com/vsinha/mpn/pkg/domain/entities"
	"github.com/vsinha/mpn/pkg/domain/units"
)

// maxGainDelta is the largest gain difference in dB accepted between parts
var maxGainDelta = decimal.NewFromInt(3)

// rfEquivalents lists series that are cross-listed as drop-in alternatives
var rfEquivalents = [][]string{
	{"SKY66112", "RFFM6204", "SE2431L"},
	{"CC2500", "NRF24L01"},
	{"CC2640", "CC2650"},
	{"CC2642", "CC2652"},
	{"QPL9503", "TQP3M9009", "SKY65017"},
}

var rfIndex = func() map[string]int {
	m := make(map[string]int)
	for i, g := range rfEquivalents {
		for _, s := range g {
			m[s] = i
		}
	}
	return m
}()

// CrossListed reports whether two RF series appear in the same equivalence
// group
func CrossListed(a, b string) bool {
	ga, okA := rfIndex[a]
	gb, okB := rfIndex[b]
	return okA && okB && ga == gb
}

// rfCalculator accepts a candidate that covers the required band and
// delivers at least the required output power
type rfCalculator struct{}

func (rfCalculator) Category() entities.Category { return entities.CategoryRF }
func (rfCalculator) Symmetric() bool             { return false }

func (rfCalculator) Compare(required, candidate entities.ComponentRecord) entities.CompatibilityVerdict {
	var c checkList

	sa, okA := required.Attr(entities.AttrSeries)
	sb, okB := candidate.Attr(entities.AttrSeries)
	switch {
	case !okA || !okB:
		c.missing("series", sa, okA, sb, okB)
	case sa == sb:
		c.pass("series", "%s", sa)
	case CrossListed(sa, sb):
		c.pass("series", "%s cross-listed with %s", sb, sa)
	default:
		c.fail("series", "%s vs %s", sa, sb)
	}

	fa, okA := required.Attr(entities.AttrFrequencyBand)
	fb, okB := candidate.Attr(entities.AttrFrequencyBand)
	ba, parsedA := units.ParseRange(fa)
	bb, parsedB := units.ParseRange(fb)
	switch {
	case !okA || !okB || !parsedA || !parsedB:
		c.missing("band", fa, okA, fb, okB)
	case ba.Overlaps(bb):
		c.pass("band", "%sMHz overlaps %sMHz", ba, bb)
	default:
		c.fail("band", "%sMHz does not overlap %sMHz", ba, bb)
	}

	pa, okA := decimalAttr(required, entities.AttrPowerRating)
	pb, okB := decimalAttr(candidate, entities.AttrPowerRating)
	switch {
	case !okA || !okB:
		c.unknown("power", "required %s, candidate %s", shownDecimal(pa, okA), shownDecimal(pb, okB))
	case pb.GreaterThanOrEqual(pa):
		c.pass("power", "%sdBm >= %sdBm", pb, pa)
	default:
		c.fail("power", "%sdBm < %sdBm", pb, pa)
	}

	ga, okA := decimalAttr(required, entities.AttrGain)
	gb, okB := decimalAttr(candidate, entities.AttrGain)
	switch {
	case !okA && !okB:
	case !okA || !okB:
		c.unknown("gain", "required %s, candidate %s", shownDecimal(ga, okA), shownDecimal(gb, okB))
	case ga.Sub(gb).Abs().LessThanOrEqual(maxGainDelta):
		c.pass("gain", "%sdB vs %sdB", ga, gb)
	default:
		c.fail("gain", "%sdB vs %sdB differs by more than %sdB", ga, gb, maxGainDelta)
	}
	return c.verdict()
}
