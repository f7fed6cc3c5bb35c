package similarity

import "github.com/vsinha/mpn/pkg/domain/entities"

// genericCalculator compares parts of categories without a dedicated
// calculator. Value and voltage checks run only when either part has them.
type genericCalculator struct{}

func (genericCalculator) Category() entities.Category { return entities.CategoryOther }
func (genericCalculator) Symmetric() bool            { return true }

func (genericCalculator) Compare(required, candidate entities.ComponentRecord) entities.CompatibilityVerdict {
	var c checkList
	c.equal("series", entities.AttrSeries, required, candidate)
	c.footprint(required, candidate)
	c.equalIfAny("value", entities.AttrValue, required, candidate)
	c.equalIfAny("voltage", entities.AttrVoltageClass, required, candidate)
	return c.verdict()
}
