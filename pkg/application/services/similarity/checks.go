package similarity

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/stat"

	"github.com/vsinha/mpn/pkg/domain/entities"
	"github.com/vsinha/mpn/pkg/domain/units"
)

// Check outcomes as they appear at the start of a reason
const (
	StatusPass    = "PASS"
	StatusFail    = "FAIL"
	StatusUnknown = "UNKNOWN"
)

const (
	scorePass    = 1.0
	scoreUnknown = 0.5
	scoreFail    = 0.0

	weightHard = 1.0
	weightSoft = 0.5
)

// checkList accumulates check outcomes for one comparison
type checkList struct {
	reasons []string
	scores  []float64
	weights []float64
	passed  int
	failed  int
}

func (c *checkList) add(status, check string, score, weight float64, format string, args ...any) {
	c.reasons = append(c.reasons, fmt.Sprintf("%s %s: %s", status, check, fmt.Sprintf(format, args...)))
	c.scores = append(c.scores, score)
	c.weights = append(c.weights, weight)
}

func (c *checkList) pass(check, format string, args ...any) {
	c.passed++
	c.add(StatusPass, check, scorePass, weightHard, format, args...)
}

func (c *checkList) fail(check, format string, args ...any) {
	c.failed++
	c.add(StatusFail, check, scoreFail, weightHard, format, args...)
}

func (c *checkList) unknown(check, format string, args ...any) {
	c.add(StatusUnknown, check, scoreUnknown, weightHard, format, args...)
}

// soft records a check that lowers the score but never fails the verdict
func (c *checkList) soft(check string, score float64, format string, args ...any) {
	if score >= scorePass {
		c.passed++
		c.add(StatusPass, check, scorePass, weightSoft, format, args...)
		return
	}
	c.add(StatusPass, check, score, weightSoft, format+" (soft %.2f)", append(args, score)...)
}

// verdict is compatible when nothing failed and something passed
func (c *checkList) verdict() entities.CompatibilityVerdict {
	v := entities.CompatibilityVerdict{
		Compatible: c.failed == 0 && c.passed > 0,
		Reasons:    c.reasons,
	}
	if v.Reasons == nil {
		v.Reasons = []string{}
	}
	if len(c.scores) > 0 {
		v.Score = stat.Mean(c.scores, c.weights)
	}
	return v
}

// shown renders an attribute for a reason, "?" when absent
func shown(v string, ok bool) string {
	if !ok {
		return "?"
	}
	return v
}

func (c *checkList) missing(check string, va string, okA bool, vb string, okB bool) {
	c.unknown(check, "required %s, candidate %s", shown(va, okA), shown(vb, okB))
}

// equal is a hard equality check on one attribute
func (c *checkList) equal(check, attr string, required, candidate entities.ComponentRecord) {
	va, okA := required.Attr(attr)
	vb, okB := candidate.Attr(attr)
	switch {
	case !okA || !okB:
		c.missing(check, va, okA, vb, okB)
	case va == vb:
		c.pass(check, "%s", va)
	default:
		c.fail(check, "%s vs %s", va, vb)
	}
}

// equalIfAny is equal, skipped when neither record carries the attribute
func (c *checkList) equalIfAny(check, attr string, required, candidate entities.ComponentRecord) {
	if !required.Attributes.Has(attr) && !candidate.Attributes.Has(attr) {
		return
	}
	c.equal(check, attr, required, candidate)
}

// softEqual scores 1 on equality and 0.5 otherwise
func (c *checkList) softEqual(check, attr string, required, candidate entities.ComponentRecord) {
	va, okA := required.Attr(attr)
	vb, okB := candidate.Attr(attr)
	switch {
	case !okA && !okB:
		return
	case !okA || !okB:
		c.add(StatusUnknown, check, scoreUnknown, weightSoft, "required %s, candidate %s", shown(va, okA), shown(vb, okB))
	case va == vb:
		c.soft(check, scorePass, "%s", va)
	default:
		c.soft(check, scoreUnknown, "%s vs %s", va, vb)
	}
}

// softRatio scores min/max of two numeric attributes
func (c *checkList) softRatio(check, attr string, required, candidate entities.ComponentRecord) {
	va, okA := decimalAttr(required, attr)
	vb, okB := decimalAttr(candidate, attr)
	if !okA || !okB {
		if okA || okB {
			c.add(StatusUnknown, check, scoreUnknown, weightSoft, "required %s, candidate %s", shownDecimal(va, okA), shownDecimal(vb, okB))
		}
		return
	}
	c.soft(check, ratio(va, vb), "%s vs %s", va, vb)
}

// footprint is a hard check that package codes are equal or equivalent
func (c *checkList) footprint(required, candidate entities.ComponentRecord) {
	va, okA := required.Attr(entities.AttrPackageCode)
	vb, okB := candidate.Attr(entities.AttrPackageCode)
	switch {
	case !okA || !okB:
		c.missing("package", va, okA, vb, okB)
	case va == vb:
		c.pass("package", "%s", va)
	case FootprintsEquivalent(va, vb):
		c.pass("package", "%s equivalent to %s", va, vb)
	default:
		c.fail("package", "%s vs %s", va, vb)
	}
}

// valueBands is a hard check that value ± tolerance bands overlap. A
// missing tolerance narrows the band to the nominal value.
func (c *checkList) valueBands(unit string, required, candidate entities.ComponentRecord) {
	va, okA := decimalAttr(required, entities.AttrValue)
	vb, okB := decimalAttr(candidate, entities.AttrValue)
	if !okA || !okB {
		c.unknown("value", "required %s, candidate %s", shownDecimal(va, okA), shownDecimal(vb, okB))
		return
	}
	ba := toleranceBand(required, va)
	bb := toleranceBand(candidate, vb)
	if ba.Overlaps(bb) {
		c.pass("value", "%s%s [%s] overlaps %s%s [%s]", va, unit, ba, vb, unit, bb)
		return
	}
	c.fail("value", "%s%s [%s] does not overlap %s%s [%s]", va, unit, ba, vb, unit, bb)
}

func toleranceBand(r entities.ComponentRecord, nominal decimal.Decimal) units.Band {
	tol, ok := decimalAttr(r, entities.AttrTolerance)
	if !ok {
		tol = decimal.Zero
	}
	return units.NewBand(nominal, tol)
}

func decimalAttr(r entities.ComponentRecord, attr string) (decimal.Decimal, bool) {
	v, ok := r.Attr(attr)
	if !ok {
		return decimal.Zero, false
	}
	return units.ParseNumber(v)
}

func shownDecimal(d decimal.Decimal, ok bool) string {
	if !ok {
		return "?"
	}
	return d.String()
}

// ratio returns min/max of two non-negative values, 1 when both are zero
func ratio(a, b decimal.Decimal) float64 {
	lo, hi := a, b
	if lo.GreaterThan(hi) {
		lo, hi = hi, lo
	}
	if hi.IsZero() {
		return 1
	}
	return lo.Div(hi).InexactFloat64()
}

// splitList splits comma separated attribute values
func splitList(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
