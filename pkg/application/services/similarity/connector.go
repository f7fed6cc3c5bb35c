package similarity

import "github.com/vsinha/mpn/pkg/domain/entities"

type connectorCalculator struct{}

func (connectorCalculator) Category() entities.Category { return entities.CategoryConnector }
func (connectorCalculator) Symmetric() bool             { return true }

func (connectorCalculator) Compare(required, candidate entities.ComponentRecord) entities.CompatibilityVerdict {
	var c checkList

	pa, okA := decimalAttr(required, entities.AttrPitchCode)
	pb, okB := decimalAttr(candidate, entities.AttrPitchCode)
	switch {
	case !okA || !okB:
		c.unknown("pitch", "required %s, candidate %s", shownDecimal(pa, okA), shownDecimal(pb, okB))
	case pa.Equal(pb):
		c.pass("pitch", "%smm", pa)
	default:
		c.fail("pitch", "%smm vs %smm", pa, pb)
	}

	c.equal("pins", entities.AttrPinCount, required, candidate)
	c.softEqual("rows", entities.AttrRows, required, candidate)
	c.softEqual("series", entities.AttrSeries, required, candidate)
	return c.verdict()
}
