package entities

// PartNumber represents a manufacturer part number as written in a BOM
type PartNumber string

// ComponentRecord is a classified MPN together with its extracted attributes
type ComponentRecord struct {
	MPN          PartNumber
	Normalized   string
	Type         ComponentType
	Manufacturer ManufacturerID
	Attributes   ExtractedAttributes
}

// Known reports whether the record was classified
func (r ComponentRecord) Known() bool {
	return r.Type != Unknown
}

// Attr is shorthand for r.Attributes.Get
func (r ComponentRecord) Attr(name string) (string, bool) {
	return r.Attributes.Get(name)
}

// CompatibilityVerdict is the outcome of comparing two component records.
// Reasons lists one entry per check in evaluation order.
type CompatibilityVerdict struct {
	Compatible bool     `json:"compatible"`
	Score      float64  `json:"score"`
	Reasons    []string `json:"reasons"`
}

// SuffixRule is one row of a manufacturer packaging-suffix table. Pattern is
// applied only when Guard matches the whole MPN; matched text is replaced by
// Replace (empty strips it).
type SuffixRule struct {
	Manufacturer ManufacturerID
	Name         string
	Guard        string
	Pattern      string
	Replace      string
}
