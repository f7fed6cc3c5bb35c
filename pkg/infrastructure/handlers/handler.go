// Package handlers holds the manufacturer extraction catalog: one generic
// Handler evaluating a declarative Definition per manufacturer.
package handlers

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/vsinha/mpn/pkg/domain/entities"
	"github.com/vsinha/mpn/pkg/domain/repositories"
	"github.com/vsinha/mpn/pkg/domain/services"
)

var (
	// ErrInvalidDefinition is returned for definitions that fail validation
	ErrInvalidDefinition = errors.New("invalid handler definition")
	// ErrDuplicateHandler is returned when two definitions share an ID or alias
	ErrDuplicateHandler = errors.New("duplicate handler")
)

// PatternDef is one classification pattern contributed by a Definition
type PatternDef struct {
	Type     entities.ComponentType
	Expr     string
	Priority int
}

// Definition is the declarative rule table of one manufacturer family.
// The generic definition has an empty ID and registers unscoped patterns.
type Definition struct {
	ID        entities.ManufacturerID
	Name      string
	Aliases   []string
	Generic   bool
	Patterns  []PatternDef
	Shapes    []Shape
	Packaging []entities.SuffixRule
}

// Validate checks the definition without compiling its expressions
func (d Definition) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidDefinition)
	}
	if d.Generic != d.ID.IsNone() {
		return fmt.Errorf("%w: %s: only the generic definition may have an empty id", ErrInvalidDefinition, d.Name)
	}
	if len(d.Patterns) == 0 {
		return fmt.Errorf("%w: %s: at least one pattern is required", ErrInvalidDefinition, d.Name)
	}
	for _, p := range d.Patterns {
		if _, err := entities.NewPatternEntry(p.Type, p.Expr, d.ID, p.Priority); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidDefinition, d.Name, err)
		}
	}
	return nil
}

// Handler evaluates one Definition. It is immutable after construction and
// safe for concurrent use.
type Handler struct {
	def        Definition
	shapes     []*compiledShape
	types      []entities.ComponentType
	normalizer *services.Normalizer
}

// NewHandler validates and compiles a definition. The normalizer may be nil,
// in which case MPNs are only trimmed and upper-cased.
func NewHandler(def Definition, normalizer *services.Normalizer) (*Handler, error) {
	if err := def.Validate(); err != nil {
		return nil, err
	}

	h := &Handler{def: def, normalizer: normalizer}
	seen := make(map[entities.ComponentType]bool)
	for _, p := range def.Patterns {
		seen[p.Type] = true
	}
	for _, s := range def.Shapes {
		cs, err := compileShape(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidDefinition, def.Name, err)
		}
		h.shapes = append(h.shapes, cs)
		for _, t := range s.Types {
			seen[t] = true
		}
	}

	for t := range seen {
		h.types = append(h.types, t)
	}
	sort.Slice(h.types, func(i, j int) bool { return h.types[i] < h.types[j] })
	return h, nil
}

// ID returns the manufacturer ID; empty for the generic handler
func (h *Handler) ID() entities.ManufacturerID { return h.def.ID }

// Name returns the display name
func (h *Handler) Name() string { return h.def.Name }

// Generic reports whether this is the unscoped handler
func (h *Handler) Generic() bool { return h.def.Generic }

// SupportedTypes returns the component types the handler classifies or extracts
func (h *Handler) SupportedTypes() []entities.ComponentType {
	out := make([]entities.ComponentType, len(h.types))
	copy(out, h.types)
	return out
}

// PatternCount returns the number of patterns the handler registers
func (h *Handler) PatternCount() int { return len(h.def.Patterns) }

// RegisterPatterns registers every pattern of the definition, scoped to the
// handler's manufacturer
func (h *Handler) RegisterPatterns(registrar repositories.PatternRegistrar) error {
	for _, p := range h.def.Patterns {
		if err := registrar.Register(p.Type, p.Expr, h.def.ID, p.Priority); err != nil {
			return fmt.Errorf("handler %s: %w", h.def.Name, err)
		}
	}
	return nil
}

// Matches reports whether one of this handler's patterns for componentType
// matches the MPN. Unknown matches any type.
func (h *Handler) Matches(mpn string, componentType entities.ComponentType, lookup repositories.PatternLookup) bool {
	normalized := h.normalizer.Normalize(mpn)
	if normalized == "" || lookup == nil {
		return false
	}
	for _, m := range lookup.Lookup(normalized) {
		if m.Manufacturer != h.def.ID {
			continue
		}
		if componentType == entities.Unknown || m.Type.Is(componentType) {
			return true
		}
	}
	return false
}

// parse finds the first shape for componentType matching the normalized MPN
func (h *Handler) parse(mpn string, componentType entities.ComponentType) (*compiledShape, []string, string) {
	normalized := h.normalizer.Normalize(mpn)
	if normalized == "" {
		return nil, nil, ""
	}
	for _, s := range h.shapes {
		if !s.appliesTo(componentType) {
			continue
		}
		if m := s.re.FindStringSubmatch(normalized); m != nil {
			return s, m, normalized
		}
	}
	return nil, nil, normalized
}

// ExtractAttributes decodes every attribute the handler knows for the MPN.
// An MPN that fits none of the handler's shapes yields an empty set.
func (h *Handler) ExtractAttributes(mpn string, componentType entities.ComponentType) entities.ExtractedAttributes {
	s, m, normalized := h.parse(mpn, componentType)
	if s == nil {
		return entities.ExtractedAttributes{}
	}
	attrs := s.extract(normalized, m)
	if !h.def.Generic {
		attrs[entities.AttrManufacturer] = string(h.def.ID)
	}
	return attrs
}

// ExtractSeries returns the series code
func (h *Handler) ExtractSeries(mpn string) (string, bool) {
	return h.ExtractAttributes(mpn, entities.Unknown).Get(entities.AttrSeries)
}

// ExtractPackageCode returns the package code
func (h *Handler) ExtractPackageCode(mpn string) (string, bool) {
	return h.ExtractAttributes(mpn, entities.Unknown).Get(entities.AttrPackageCode)
}

// ExtractPinCount returns the pin count
func (h *Handler) ExtractPinCount(mpn string) (int, bool) {
	return h.ExtractAttributes(mpn, entities.Unknown).Int(entities.AttrPinCount)
}

// IsReplacementCompatible reports whether b can replace a at the part-number
// level: both fit the same shape with equal series and rating token and
// differ only in interchangeable groups. Identical MPNs are compatible.
func (h *Handler) IsReplacementCompatible(mpnA, mpnB string) bool {
	na := h.normalizer.Normalize(mpnA)
	nb := h.normalizer.Normalize(mpnB)
	if na == "" || nb == "" {
		return false
	}
	if na == nb {
		return true
	}

	for _, s := range h.shapes {
		ma := s.re.FindStringSubmatch(na)
		if ma == nil {
			continue
		}
		mb := s.re.FindStringSubmatch(nb)
		if mb == nil {
			continue
		}
		if s.replacementCompatible(s.extract(na, ma), s.extract(nb, mb), ma, mb) {
			return true
		}
	}
	return false
}
