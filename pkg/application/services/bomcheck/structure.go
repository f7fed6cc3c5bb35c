package bomcheck

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vsinha/mpn/pkg/domain/entities"
)

// ValidateStructure reports BOM cycles and duplicate lines. A line links its
// parent to its MPN, so a sub-assembly listed by part number closes a cycle
// when it reaches an ancestor. Lines with the same parent, find number and
// normalized MPN are duplicates.
func ValidateStructure(records []LineRecord) []Issue {
	issues := make([]Issue, 0)

	for _, cycle := range detectCycles(buildAdjacencyMap(records)) {
		parts := make([]string, len(cycle))
		for i, pn := range cycle {
			parts[i] = string(pn)
		}
		issues = append(issues, Issue{
			Severity: SeverityError,
			Code:     CodeCycle,
			ParentPN: cycle[0],
			Message:  fmt.Sprintf("BOM cycle detected: %s", strings.Join(parts, " -> ")),
		})
	}

	return append(issues, detectDuplicateLines(records)...)
}

// buildAdjacencyMap creates a map of parent -> children relationships
func buildAdjacencyMap(records []LineRecord) map[entities.PartNumber][]entities.PartNumber {
	adjacencyMap := make(map[entities.PartNumber][]entities.PartNumber)

	for _, lr := range records {
		child := entities.PartNumber(strings.TrimSpace(string(lr.Line.MPN)))
		children := adjacencyMap[lr.Line.ParentPN]

		found := false
		for _, c := range children {
			if c == child {
				found = true
				break
			}
		}
		if !found {
			adjacencyMap[lr.Line.ParentPN] = append(children, child)
		}
	}

	return adjacencyMap
}

// detectCycles uses DFS to find cycles, visiting parents in sorted order
func detectCycles(adjacencyMap map[entities.PartNumber][]entities.PartNumber) [][]entities.PartNumber {
	visited := make(map[entities.PartNumber]bool)
	recursionStack := make(map[entities.PartNumber]bool)
	cycles := make([][]entities.PartNumber, 0)

	parents := make([]entities.PartNumber, 0, len(adjacencyMap))
	for parent := range adjacencyMap {
		parents = append(parents, parent)
	}
	sort.Slice(parents, func(i, j int) bool { return parents[i] < parents[j] })

	for _, parent := range parents {
		if !visited[parent] {
			dfsDetectCycle(parent, adjacencyMap, visited, recursionStack, nil, &cycles)
		}
	}

	return cycles
}

func dfsDetectCycle(
	current entities.PartNumber,
	adjacencyMap map[entities.PartNumber][]entities.PartNumber,
	visited map[entities.PartNumber]bool,
	recursionStack map[entities.PartNumber]bool,
	path []entities.PartNumber,
	cycles *[][]entities.PartNumber,
) {
	visited[current] = true
	recursionStack[current] = true
	path = append(path, current)

	for _, child := range adjacencyMap[current] {
		if !visited[child] {
			dfsDetectCycle(child, adjacencyMap, visited, recursionStack, path, cycles)
			continue
		}
		if !recursionStack[child] {
			continue
		}
		for i, part := range path {
			if part == child {
				cycle := make([]entities.PartNumber, 0, len(path)-i+1)
				cycle = append(cycle, path[i:]...)
				cycle = append(cycle, child)
				*cycles = append(*cycles, cycle)
				break
			}
		}
	}

	recursionStack[current] = false
}

// detectDuplicateLines reports every repeat of a parent, find number and
// normalized MPN
func detectDuplicateLines(records []LineRecord) []Issue {
	seen := make(map[string]int)
	duplicates := make([]Issue, 0)

	for _, lr := range records {
		mpn := lr.Record.Normalized
		if mpn == "" {
			mpn = strings.ToUpper(strings.TrimSpace(string(lr.Line.MPN)))
		}
		key := fmt.Sprintf("%s|%d|%s", lr.Line.ParentPN, lr.Line.FindNumber, mpn)

		if first, exists := seen[key]; exists {
			duplicates = append(duplicates, lr.issue(SeverityError, CodeDuplicate,
				fmt.Sprintf("duplicate of line %d", first+1)))
			continue
		}
		seen[key] = lr.Index
	}

	return duplicates
}
