package repositories

import "github.com/vsinha/mpn/pkg/domain/entities"

// PatternRegistrar accepts pattern registrations while a registry is being built
type PatternRegistrar interface {
	Register(componentType entities.ComponentType, pattern string, manufacturer entities.ManufacturerID, priority int) error
}

// PatternLookup answers which registered patterns match an MPN.
// Implementations are immutable and safe for concurrent use.
type PatternLookup interface {
	// Lookup returns every matching entry in registration order
	Lookup(mpn string) []entities.PatternMatch
	// Entries returns a copy of all registered entries
	Entries() []entities.PatternEntry
}
