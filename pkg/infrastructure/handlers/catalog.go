package handlers

import (
	"fmt"
	"sort"

	"github.com/vsinha/mpn/pkg/domain/entities"
	"github.com/vsinha/mpn/pkg/domain/repositories"
	"github.com/vsinha/mpn/pkg/domain/services"
)

// minAliasPrefix is the shortest alias accepted as a name prefix
const minAliasPrefix = 4

// Catalog is the immutable set of manufacturer handlers. It owns the
// normalizer assembled from every definition's packaging table and resolves
// free-form manufacturer names to handler IDs.
type Catalog struct {
	handlers   map[entities.ManufacturerID]*Handler
	ordered    []*Handler
	generic    *Handler
	aliases    map[string]entities.ManufacturerID
	prefixes   []string
	normalizer *services.Normalizer
}

// Verify interface compliance
var (
	_ repositories.ManufacturerResolver = (*Catalog)(nil)
	_ repositories.AttributeExtractor   = (*Catalog)(nil)
	_ repositories.ReplacementJudge     = (*Catalog)(nil)
)

// NewCatalog validates and compiles the definitions. At most one definition
// may be generic; IDs and aliases must be unique.
func NewCatalog(defs []Definition) (*Catalog, error) {
	var rules []entities.SuffixRule
	for _, def := range defs {
		for _, r := range def.Packaging {
			if r.Manufacturer.IsNone() {
				r.Manufacturer = def.ID
			}
			rules = append(rules, r)
		}
	}
	normalizer, err := services.NewNormalizer(rules)
	if err != nil {
		return nil, fmt.Errorf("%w: packaging table: %v", ErrInvalidDefinition, err)
	}

	c := &Catalog{
		handlers:   make(map[entities.ManufacturerID]*Handler, len(defs)),
		aliases:    make(map[string]entities.ManufacturerID),
		normalizer: normalizer,
	}

	for _, def := range defs {
		if _, exists := c.handlers[def.ID]; exists {
			return nil, fmt.Errorf("%w: id %q", ErrDuplicateHandler, def.ID)
		}
		h, err := NewHandler(def, normalizer)
		if err != nil {
			return nil, err
		}
		c.handlers[def.ID] = h
		c.ordered = append(c.ordered, h)
		if def.Generic {
			c.generic = h
			continue
		}

		names := append([]string{string(def.ID), def.Name}, def.Aliases...)
		for _, name := range names {
			key := entities.FoldManufacturerName(name)
			if key == "" {
				continue
			}
			if owner, taken := c.aliases[key]; taken && owner != def.ID {
				return nil, fmt.Errorf("%w: alias %q claimed by %q and %q", ErrDuplicateHandler, name, owner, def.ID)
			}
			c.aliases[key] = def.ID
		}
	}

	for key := range c.aliases {
		if len(key) >= minAliasPrefix {
			c.prefixes = append(c.prefixes, key)
		}
	}
	// longest alias first so "texasinstruments" beats "texas"
	sort.Slice(c.prefixes, func(i, j int) bool {
		if len(c.prefixes[i]) != len(c.prefixes[j]) {
			return len(c.prefixes[i]) > len(c.prefixes[j])
		}
		return c.prefixes[i] < c.prefixes[j]
	})
	return c, nil
}

// Normalizer returns the normalizer built from all packaging tables
func (c *Catalog) Normalizer() *services.Normalizer {
	return c.normalizer
}

// Handler returns the handler for a manufacturer ID
func (c *Catalog) Handler(id entities.ManufacturerID) (*Handler, bool) {
	h, ok := c.handlers[id]
	return h, ok
}

// Generic returns the unscoped handler, or nil when the catalog has none
func (c *Catalog) Generic() *Handler {
	return c.generic
}

// Handlers returns all handlers in definition order
func (c *Catalog) Handlers() []*Handler {
	out := make([]*Handler, len(c.ordered))
	copy(out, c.ordered)
	return out
}

// PatternCount returns the number of patterns all handlers register
func (c *Catalog) PatternCount() int {
	n := 0
	for _, h := range c.ordered {
		n += h.PatternCount()
	}
	return n
}

// RegisterPatterns registers every handler's patterns in definition order
func (c *Catalog) RegisterPatterns(registrar repositories.PatternRegistrar) error {
	for _, h := range c.ordered {
		if err := h.RegisterPatterns(registrar); err != nil {
			return err
		}
	}
	return nil
}

// ResolveManufacturer maps a free-form name ("Würth Elektronik", "TI",
// "Texas Instruments Inc.") to a handler ID. Names no handler claims fold to
// an ID of their own, so a hint for an unlisted manufacturer still rules out
// every scoped pattern. Blank names resolve to ManufacturerNone.
func (c *Catalog) ResolveManufacturer(name string) entities.ManufacturerID {
	key := entities.FoldManufacturerName(name)
	if key == "" {
		return entities.ManufacturerNone
	}
	if id, ok := c.aliases[key]; ok {
		return id
	}
	for _, prefix := range c.prefixes {
		if len(key) > len(prefix) && key[:len(prefix)] == prefix {
			return c.aliases[prefix]
		}
	}
	return entities.ManufacturerID(key)
}

// ExtractAttributes extracts with the manufacturer's handler, falling back
// to the generic handler when the manufacturer has none or its shapes do
// not fit the MPN
func (c *Catalog) ExtractAttributes(manufacturer entities.ManufacturerID, mpn string, componentType entities.ComponentType) entities.ExtractedAttributes {
	if !manufacturer.IsNone() {
		if h, ok := c.handlers[manufacturer]; ok {
			if attrs := h.ExtractAttributes(mpn, componentType); len(attrs) > 0 {
				return attrs
			}
		}
	}
	if c.generic == nil {
		return entities.ExtractedAttributes{}
	}
	return c.generic.ExtractAttributes(mpn, componentType)
}

// IsReplacementCompatible asks the manufacturer's handler, or the generic
// handler when the manufacturer has none
func (c *Catalog) IsReplacementCompatible(manufacturer entities.ManufacturerID, mpnA, mpnB string) bool {
	if h, ok := c.handlers[manufacturer]; ok {
		return h.IsReplacementCompatible(mpnA, mpnB)
	}
	if c.generic == nil {
		return false
	}
	return c.generic.IsReplacementCompatible(mpnA, mpnB)
}
