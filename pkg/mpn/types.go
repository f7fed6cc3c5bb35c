package mpn

import "github.com/vsinha/mpn/pkg/domain/entities"

// Public aliases so callers need only this package
type (
	ComponentType        = entities.ComponentType
	Category             = entities.Category
	ManufacturerID       = entities.ManufacturerID
	ExtractedAttributes  = entities.ExtractedAttributes
	ComponentRecord      = entities.ComponentRecord
	CompatibilityVerdict = entities.CompatibilityVerdict
)

// Unknown is the type of an MPN no pattern matches
const Unknown = entities.Unknown

// Query is one MPN with an optional manufacturer hint
type Query struct {
	MPN          string
	Manufacturer string
}

// RankedCandidate is one scored replacement candidate
type RankedCandidate struct {
	Record  ComponentRecord
	Verdict CompatibilityVerdict
}
