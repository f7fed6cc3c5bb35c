package entities

import "fmt"

// Quantity represents an integer quantity value for discrete manufacturing units
type Quantity int64

// BOMLine represents a single line in a Bill of Materials. Lines sharing an
// AlternateGroup are substitutes for one another; Priority 0 is the primary.
type BOMLine struct {
	ParentPN       PartNumber
	MPN            PartNumber
	Manufacturer   string
	QtyPer         Quantity
	FindNumber     int
	Category       string
	AlternateGroup string
	Priority       int
}

// NewBOMLine creates a validated BOMLine
func NewBOMLine(parentPN, mpn PartNumber, manufacturer string, qtyPer Quantity, findNumber int, alternateGroup string, priority int) (*BOMLine, error) {
	if string(parentPN) == "" {
		return nil, fmt.Errorf("parent part number cannot be empty")
	}
	if string(mpn) == "" {
		return nil, fmt.Errorf("manufacturer part number cannot be empty")
	}
	if parentPN == mpn {
		return nil, fmt.Errorf("parent and child part numbers cannot be the same: %s", parentPN)
	}
	if qtyPer <= 0 {
		return nil, fmt.Errorf("quantity per must be positive, got %d", qtyPer)
	}
	if findNumber <= 0 {
		return nil, fmt.Errorf("find number must be positive, got %d", findNumber)
	}
	if priority < 0 {
		return nil, fmt.Errorf("priority cannot be negative, got %d", priority)
	}

	return &BOMLine{
		ParentPN:       parentPN,
		MPN:            mpn,
		Manufacturer:   manufacturer,
		QtyPer:         qtyPer,
		FindNumber:     findNumber,
		AlternateGroup: alternateGroup,
		Priority:       priority,
	}, nil
}

// IsAlternate reports whether the line belongs to an alternate group
func (l BOMLine) IsAlternate() bool {
	return l.AlternateGroup != ""
}
