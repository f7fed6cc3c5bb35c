// Package csv loads BOM lines and MPN lists from CSV files
package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/vsinha/mpn/pkg/domain/entities"
)

// BOMHeader is the required header of a BOM file
var BOMHeader = []string{"parent_pn", "mpn", "manufacturer", "qty_per", "find_number", "category", "alternate_group", "priority"}

// Loader handles loading BOM data from CSV files
type Loader struct{}

// NewLoader creates a new CSV loader
func NewLoader() *Loader {
	return &Loader{}
}

// LoadBOM loads BOM lines from a CSV file
func (l *Loader) LoadBOM(filename string) ([]*entities.BOMLine, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open BOM file %s: %w", filename, err)
	}
	defer file.Close()
	return l.ReadBOM(file)
}

// ReadBOM reads BOM lines from CSV data
func (l *Loader) ReadBOM(r io.Reader) ([]*entities.BOMLine, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read BOM CSV: %w", err)
	}

	if len(records) < 2 {
		return nil, fmt.Errorf("BOM CSV must have header and at least one data row")
	}

	header := records[0]
	if !validateHeader(header, BOMHeader) {
		return nil, fmt.Errorf("BOM CSV header mismatch. Expected: %v, Got: %v", BOMHeader, header)
	}

	var bomLines []*entities.BOMLine
	for i, record := range records[1:] {
		if len(record) != len(BOMHeader) {
			return nil, fmt.Errorf("BOM CSV row %d: expected %d columns, got %d", i+2, len(BOMHeader), len(record))
		}

		bomLine, err := parseBOMLine(record)
		if err != nil {
			return nil, fmt.Errorf("BOM CSV row %d: %w", i+2, err)
		}

		bomLines = append(bomLines, bomLine)
	}

	return bomLines, nil
}

// LoadMPNs reads one column of MPNs from a CSV file. The column is picked by
// header name; an empty name reads the first column.
func (l *Loader) LoadMPNs(filename, column string) ([]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open MPN file %s: %w", filename, err)
	}
	defer file.Close()
	return l.ReadMPNs(file, column)
}

// ReadMPNs reads one column of MPNs from CSV data, skipping blank cells
func (l *Loader) ReadMPNs(r io.Reader, column string) ([]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read MPN CSV: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("MPN CSV must have header and at least one data row")
	}

	index := 0
	if column != "" {
		index = -1
		for i, name := range records[0] {
			if strings.EqualFold(strings.TrimSpace(name), column) {
				index = i
				break
			}
		}
		if index < 0 {
			return nil, fmt.Errorf("MPN CSV has no column %q. Got: %v", column, records[0])
		}
	}

	var mpns []string
	for i, record := range records[1:] {
		if index >= len(record) {
			return nil, fmt.Errorf("MPN CSV row %d: expected at least %d columns, got %d", i+2, index+1, len(record))
		}
		if mpn := strings.TrimSpace(record[index]); mpn != "" {
			mpns = append(mpns, mpn)
		}
	}
	return mpns, nil
}

// Helper functions for parsing CSV records

func validateHeader(actual, expected []string) bool {
	if len(actual) != len(expected) {
		return false
	}

	for i, col := range expected {
		name := strings.TrimPrefix(actual[i], "\ufeff")
		if strings.ToLower(strings.TrimSpace(name)) != col {
			return false
		}
	}

	return true
}

func parseBOMLine(record []string) (*entities.BOMLine, error) {
	for i := range record {
		record[i] = strings.TrimSpace(record[i])
	}

	qtyPer, err := strconv.ParseInt(record[3], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid qty_per: %s", record[3])
	}

	findNumber, err := strconv.Atoi(record[4])
	if err != nil {
		return nil, fmt.Errorf("invalid find_number: %s", record[4])
	}

	priority := 0
	if record[7] != "" {
		priority, err = strconv.Atoi(record[7])
		if err != nil {
			return nil, fmt.Errorf("invalid priority: %s", record[7])
		}
	}

	line, err := entities.NewBOMLine(
		entities.PartNumber(record[0]),
		entities.PartNumber(record[1]),
		record[2],
		entities.Quantity(qtyPer),
		findNumber,
		record[6],
		priority,
	)
	if err != nil {
		return nil, err
	}
	line.Category = record[5]
	return line, nil
}
