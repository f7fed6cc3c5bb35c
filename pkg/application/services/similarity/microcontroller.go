package similarity

import "github.com/vsinha/mpn/pkg/domain/entities"

type microcontrollerCalculator struct{}

func (microcontrollerCalculator) Category() entities.Category {
	return entities.CategoryMicrocontroller
}
func (microcontrollerCalculator) Symmetric() bool { return true }

func (microcontrollerCalculator) Compare(required, candidate entities.ComponentRecord) entities.CompatibilityVerdict {
	var c checkList
	c.equal("series", entities.AttrSeries, required, candidate)
	c.equal("pins", entities.AttrPinCount, required, candidate)
	c.footprint(required, candidate)
	c.softEqual("memory", entities.AttrMemoryCode, required, candidate)
	c.softEqual("temperature", entities.AttrTemperatureGrade, required, candidate)
	return c.verdict()
}
