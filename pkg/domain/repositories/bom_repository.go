package repositories

import "github.com/vsinha/mpn/pkg/domain/entities"

// BOMRepository provides access to Bill of Materials data
type BOMRepository interface {
	GetBOMLines(partNumber entities.PartNumber) ([]*entities.BOMLine, error)
	GetAllBOMLines() ([]*entities.BOMLine, error)
	LoadBOMLines(lines []*entities.BOMLine) error

	// GetAlternateGroups returns the lines of a parent grouped by alternate
	// group name. Lines without a group are omitted.
	GetAlternateGroups(parentPN entities.PartNumber) (map[string][]*entities.BOMLine, error)
}
