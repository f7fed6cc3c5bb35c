package repositories

import "github.com/vsinha/mpn/pkg/domain/entities"

// ManufacturerResolver maps a free-form manufacturer name or alias to an ID
type ManufacturerResolver interface {
	ResolveManufacturer(name string) entities.ManufacturerID
}

// AttributeExtractor decodes attributes for an MPN of a known type under a
// manufacturer's encoding rules
type AttributeExtractor interface {
	ExtractAttributes(manufacturer entities.ManufacturerID, mpn string, componentType entities.ComponentType) entities.ExtractedAttributes
}

// ReplacementJudge answers the handler-level replacement question for two
// MPNs of the same manufacturer
type ReplacementJudge interface {
	IsReplacementCompatible(manufacturer entities.ManufacturerID, mpnA, mpnB string) bool
}
