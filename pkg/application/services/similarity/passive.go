package similarity

import "github.com/vsinha/mpn/pkg/domain/entities"

type resistorCalculator struct{}

func (resistorCalculator) Category() entities.Category { return entities.CategoryResistor }
func (resistorCalculator) Symmetric() bool             { return true }

func (resistorCalculator) Compare(required, candidate entities.ComponentRecord) entities.CompatibilityVerdict {
	var c checkList
	c.valueBands("Ω", required, candidate)
	c.footprint(required, candidate)
	c.softRatio("tcr", entities.AttrTempCoefficient, required, candidate)
	return c.verdict()
}

type capacitorCalculator struct{}

func (capacitorCalculator) Category() entities.Category { return entities.CategoryCapacitor }
func (capacitorCalculator) Symmetric() bool             { return true }

func (capacitorCalculator) Compare(required, candidate entities.ComponentRecord) entities.CompatibilityVerdict {
	var c checkList
	c.valueBands("pF", required, candidate)
	c.footprint(required, candidate)
	c.softEqual("dielectric", entities.AttrDielectric, required, candidate)
	c.softRatio("voltage", entities.AttrVoltageClass, required, candidate)
	return c.verdict()
}

type inductorCalculator struct{}

func (inductorCalculator) Category() entities.Category { return entities.CategoryInductor }
func (inductorCalculator) Symmetric() bool             { return true }

func (inductorCalculator) Compare(required, candidate entities.ComponentRecord) entities.CompatibilityVerdict {
	var c checkList
	c.valueBands("µH", required, candidate)
	c.footprint(required, candidate)
	return c.verdict()
}
