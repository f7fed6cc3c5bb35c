package entities

import (
	"fmt"
	"strings"
)

// PatternEntry is one registered (type, pattern, scope) triple
type PatternEntry struct {
	Type         ComponentType
	Pattern      string
	Manufacturer ManufacturerID
	Priority     int
}

// NewPatternEntry creates a validated PatternEntry
func NewPatternEntry(componentType ComponentType, pattern string, manufacturer ManufacturerID, priority int) (*PatternEntry, error) {
	if componentType == Unknown || !componentType.Valid() {
		return nil, fmt.Errorf("component type must be a declared non-unknown type, got %d", componentType)
	}
	if strings.TrimSpace(pattern) == "" {
		return nil, fmt.Errorf("pattern cannot be empty")
	}
	if priority < 0 {
		return nil, fmt.Errorf("priority cannot be negative, got %d", priority)
	}
	if variant := componentType.Manufacturer(); !variant.IsNone() && variant != manufacturer {
		return nil, fmt.Errorf("variant %s is qualified by %q, cannot be registered under %q",
			componentType, variant, manufacturer)
	}

	return &PatternEntry{
		Type:         componentType,
		Pattern:      pattern,
		Manufacturer: manufacturer,
		Priority:     priority,
	}, nil
}

// PatternMatch is one registry entry that matched an MPN
type PatternMatch struct {
	Type         ComponentType
	Manufacturer ManufacturerID
	// Strength is the length of the pattern's literal prefix
	Strength int
	Priority int
	Pattern  string
	// Index is the registration position of the entry
	Index int
}

// Scoped reports whether the matching pattern belongs to a manufacturer
func (m PatternMatch) Scoped() bool {
	return !m.Manufacturer.IsNone()
}
