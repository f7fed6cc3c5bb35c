package services

import (
	"sort"

	"github.com/vsinha/mpn/pkg/domain/entities"
	"github.com/vsinha/mpn/pkg/domain/repositories"
)

// Resolution explains how an MPN was classified
type Resolution struct {
	Normalized string
	Hint       entities.ManufacturerID
	Best       entities.PatternMatch
	// Candidates holds every match that survived hint filtering, best first
	Candidates []entities.PatternMatch
}

// Ambiguous reports whether more than one pattern competed for the MPN
func (r Resolution) Ambiguous() bool {
	return len(r.Candidates) > 1
}

// ComponentTypeDetector resolves a single primary ComponentType for an MPN
// from the full set of registry matches
type ComponentTypeDetector struct {
	normalizer *Normalizer
	lookup     repositories.PatternLookup
	resolver   repositories.ManufacturerResolver
}

// NewComponentTypeDetector creates a detector. The resolver may be nil, in
// which case hints are folded with entities.FoldManufacturerName.
func NewComponentTypeDetector(normalizer *Normalizer, lookup repositories.PatternLookup, resolver repositories.ManufacturerResolver) *ComponentTypeDetector {
	return &ComponentTypeDetector{
		normalizer: normalizer,
		lookup:     lookup,
		resolver:   resolver,
	}
}

// DetectType classifies an MPN, returning entities.Unknown when nothing matches
func (d *ComponentTypeDetector) DetectType(mpn string) entities.ComponentType {
	return d.DetectTypeWithHint(mpn, "")
}

// DetectTypeWithHint classifies an MPN, ignoring patterns scoped to a
// manufacturer other than the hinted one
func (d *ComponentTypeDetector) DetectTypeWithHint(mpn, manufacturerHint string) entities.ComponentType {
	res, ok := d.Resolve(mpn, manufacturerHint)
	if !ok {
		return entities.Unknown
	}
	return res.Best.Type
}

// Resolve returns the winning match together with the ranked candidates.
// The second result is false when no pattern matches.
func (d *ComponentTypeDetector) Resolve(mpn, manufacturerHint string) (Resolution, bool) {
	normalized := d.normalizer.Normalize(mpn)
	hint := d.resolveHint(manufacturerHint)
	res := Resolution{Normalized: normalized, Hint: hint}
	if normalized == "" {
		return res, false
	}

	ranked := RankMatches(d.lookup.Lookup(normalized), hint)
	if len(ranked) == 0 {
		return res, false
	}
	res.Best = ranked[0]
	res.Candidates = ranked
	return res, true
}

// Normalize exposes the detector's normalizer
func (d *ComponentTypeDetector) Normalize(mpn string) string {
	return d.normalizer.Normalize(mpn)
}

func (d *ComponentTypeDetector) resolveHint(hint string) entities.ManufacturerID {
	if hint == "" {
		return entities.ManufacturerNone
	}
	if d.resolver != nil {
		return d.resolver.ResolveManufacturer(hint)
	}
	return entities.ManufacturerID(entities.FoldManufacturerName(hint))
}

// SelectBestMatch picks the winning match. It is a pure function of the
// match set: the input order does not affect the result.
func SelectBestMatch(matches []entities.PatternMatch, hint entities.ManufacturerID) (entities.PatternMatch, bool) {
	ranked := RankMatches(matches, hint)
	if len(ranked) == 0 {
		return entities.PatternMatch{}, false
	}
	return ranked[0], true
}

// RankMatches drops matches scoped to a manufacturer other than hint and
// orders the rest best first: longer literal prefix, then manufacturer
// scoped before generic, then higher priority. Remaining ties fall back to
// type ordinal, scope and pattern text so the order never depends on
// registration order.
func RankMatches(matches []entities.PatternMatch, hint entities.ManufacturerID) []entities.PatternMatch {
	ranked := make([]entities.PatternMatch, 0, len(matches))
	for _, m := range matches {
		if !hint.IsNone() && m.Scoped() && m.Manufacturer != hint {
			continue
		}
		ranked = append(ranked, m)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return outranks(ranked[i], ranked[j])
	})
	return ranked
}

func outranks(a, b entities.PatternMatch) bool {
	if a.Strength != b.Strength {
		return a.Strength > b.Strength
	}
	if a.Scoped() != b.Scoped() {
		return a.Scoped()
	}
	if a.Priority != b.Priority {
		return a.Priority > b.Priority
	}
	if a.Type != b.Type {
		return a.Type < b.Type
	}
	if a.Manufacturer != b.Manufacturer {
		return a.Manufacturer < b.Manufacturer
	}
	return a.Pattern < b.Pattern
}
