// Package memory holds in-process BOM storage
package memory

import (
	"fmt"
	"sort"

	"github.com/vsinha/mpn/pkg/domain/entities"
	"github.com/vsinha/mpn/pkg/domain/repositories"
)

// BOMRepository stores BOM lines indexed by parent part number
type BOMRepository struct {
	bomLines   []entities.BOMLine
	bomIndexes map[entities.PartNumber][]int
}

// NewBOMRepository creates a BOM repository sized for the expected lines
func NewBOMRepository(expectedBOMLines int) *BOMRepository {
	return &BOMRepository{
		bomLines:   make([]entities.BOMLine, 0, expectedBOMLines),
		bomIndexes: make(map[entities.PartNumber][]int),
	}
}

// Verify interface compliance
var _ repositories.BOMRepository = (*BOMRepository)(nil)

// LoadBOMLines loads BOM lines into the repository
func (r *BOMRepository) LoadBOMLines(lines []*entities.BOMLine) error {
	for i, line := range lines {
		if line == nil {
			return fmt.Errorf("BOM line %d is nil", i)
		}
	}
	for _, line := range lines {
		r.AddBOMLine(*line)
	}
	return nil
}

// AddBOMLine adds a BOM line to the repository
func (r *BOMRepository) AddBOMLine(line entities.BOMLine) {
	index := len(r.bomLines)
	r.bomLines = append(r.bomLines, line)
	r.bomIndexes[line.ParentPN] = append(r.bomIndexes[line.ParentPN], index)
}

// GetBOMLines returns copies of the BOM lines of a parent part number
func (r *BOMRepository) GetBOMLines(partNumber entities.PartNumber) ([]*entities.BOMLine, error) {
	indexes, exists := r.bomIndexes[partNumber]
	if !exists {
		return []*entities.BOMLine{}, nil
	}

	lines := make([]*entities.BOMLine, 0, len(indexes))
	for _, index := range indexes {
		line := r.bomLines[index]
		lines = append(lines, &line)
	}
	return lines, nil
}

// GetAllBOMLines returns copies of all BOM lines in load order
func (r *BOMRepository) GetAllBOMLines() ([]*entities.BOMLine, error) {
	lines := make([]*entities.BOMLine, 0, len(r.bomLines))
	for i := range r.bomLines {
		line := r.bomLines[i]
		lines = append(lines, &line)
	}
	return lines, nil
}

// GetParents returns every parent part number, sorted
func (r *BOMRepository) GetParents() []entities.PartNumber {
	parents := make([]entities.PartNumber, 0, len(r.bomIndexes))
	for pn := range r.bomIndexes {
		parents = append(parents, pn)
	}
	sort.Slice(parents, func(i, j int) bool { return parents[i] < parents[j] })
	return parents
}

// GetAlternateGroups returns the lines of a parent that belong to an
// alternate group, keyed by group name
func (r *BOMRepository) GetAlternateGroups(parentPN entities.PartNumber) (map[string][]*entities.BOMLine, error) {
	lines, err := r.GetBOMLines(parentPN)
	if err != nil {
		return nil, err
	}

	groups := make(map[string][]*entities.BOMLine)
	for _, line := range lines {
		if line.IsAlternate() {
			groups[line.AlternateGroup] = append(groups[line.AlternateGroup], line)
		}
	}
	return groups, nil
}
