// Package similarity compares classified component records. Each component
// category has its own Calculator; a Set dispatches on the category of the
// required part and falls back to a generic series/package comparison.
package similarity

import (
	"fmt"

	"github.com/vsinha/mpn/pkg/domain/entities"
	"github.com/vsinha/mpn/pkg/domain/repositories"
)

// Calculator decides whether candidate can replace required.
//
// Symmetric calculators return the same Compatible flag and Score when the
// arguments are swapped. Asymmetric ones (RF, logic) only accept a
// candidate that meets or exceeds the required part.
type Calculator interface {
	Category() entities.Category
	Symmetric() bool
	Compare(required, candidate entities.ComponentRecord) entities.CompatibilityVerdict
}

// Set is an immutable table of calculators keyed by category
type Set struct {
	calculators map[entities.Category]Calculator
	fallback    Calculator
}

// NewSet builds the default calculators. The judge answers same-manufacturer
// replacement questions for discrete parts and may be nil.
func NewSet(judge repositories.ReplacementJudge) *Set {
	return NewSetWith(genericCalculator{},
		resistorCalculator{},
		capacitorCalculator{},
		inductorCalculator{},
		discreteCalculator{judge: judge},
		connectorCalculator{},
		microcontrollerCalculator{},
		sensorCalculator{},
		rfCalculator{},
		logicCalculator{},
	)
}

// NewSetWith builds a Set from explicit calculators. A later calculator for
// the same category replaces an earlier one.
func NewSetWith(fallback Calculator, calculators ...Calculator) *Set {
	s := &Set{
		calculators: make(map[entities.Category]Calculator, len(calculators)),
		fallback:    fallback,
	}
	for _, c := range calculators {
		s.calculators[c.Category()] = c
	}
	return s
}

// For returns the calculator for a category, or the fallback
func (s *Set) For(category entities.Category) Calculator {
	if c, ok := s.calculators[category]; ok {
		return c
	}
	return s.fallback
}

// Compare checks whether candidate can replace required. Identical
// normalized MPNs are compatible with score 1 without further checks.
func (s *Set) Compare(required, candidate entities.ComponentRecord) entities.CompatibilityVerdict {
	if required.Normalized != "" && required.Normalized == candidate.Normalized {
		return entities.CompatibilityVerdict{
			Compatible: true,
			Score:      1.0,
			Reasons:    []string{fmt.Sprintf("PASS identity: %s", required.Normalized)},
		}
	}

	category := required.Type.Category()
	if required.Known() && candidate.Known() && category != candidate.Type.Category() {
		var c checkList
		c.fail("category", "%s vs %s", category, candidate.Type.Category())
		return c.verdict()
	}
	if !required.Known() {
		category = candidate.Type.Category()
	}
	return s.For(category).Compare(required, candidate)
}
