package entities

import "fmt"

// BOMPolicy controls a BOM check
type BOMPolicy struct {
	// RequiredCategories must each be covered by at least one line
	RequiredCategories []Category
	// MinScore is the lowest similarity score an alternate may have
	MinScore float64
	// Workers bounds concurrent line classification; 0 means one per CPU
	Workers int
	// FailOnUnknown reports unclassified MPNs as errors instead of warnings
	FailOnUnknown bool
}

// DefaultBOMPolicy accepts any compatible alternate and requires nothing
func DefaultBOMPolicy() BOMPolicy {
	return BOMPolicy{MinScore: 0.5}
}

// Validate checks the policy values
func (p BOMPolicy) Validate() error {
	if p.MinScore < 0 || p.MinScore > 1 {
		return fmt.Errorf("minimum score must be between 0 and 1, got %g", p.MinScore)
	}
	if p.Workers < 0 {
		return fmt.Errorf("workers cannot be negative, got %d", p.Workers)
	}
	return nil
}
