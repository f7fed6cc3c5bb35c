package similarity

import (
	"github.com/vsinha/mpn/pkg/domain/entities"
	"github.com/vsinha/mpn/pkg/domain/repositories"
)

// discreteCalculator covers diodes, transistors, MOSFETs and LEDs. Parts of
// one manufacturer are first put to that manufacturer's replacement rules.
type discreteCalculator struct {
	judge repositories.ReplacementJudge
}

func (discreteCalculator) Category() entities.Category { return entities.CategoryDiscrete }
func (discreteCalculator) Symmetric() bool             { return true }

func (d discreteCalculator) Compare(required, candidate entities.ComponentRecord) entities.CompatibilityVerdict {
	var c checkList

	baseA, baseB := required.Type.Base(), candidate.Type.Base()
	if required.Known() && candidate.Known() {
		if baseA != baseB {
			c.fail("type", "%s vs %s", baseA, baseB)
			return c.verdict()
		}
		c.pass("type", "%s", baseA)
	}

	if d.judge != nil && !required.Manufacturer.IsNone() && required.Manufacturer == candidate.Manufacturer &&
		d.judge.IsReplacementCompatible(required.Manufacturer, required.Normalized, candidate.Normalized) {
		c.pass("replacement", "%s rules accept %s for %s", required.Manufacturer, candidate.Normalized, required.Normalized)
		return c.verdict()
	}

	c.equal("series", entities.AttrSeries, required, candidate)
	c.equalIfAny("rating", entities.AttrRatingToken, required, candidate)
	c.equalIfAny("voltage", entities.AttrVoltageClass, required, candidate)
	c.equalIfAny("gate", entities.AttrVariantCode, required, candidate)
	c.footprint(required, candidate)
	return c.verdict()
}
