package memory

import (
	"errors"
	"fmt"
	"regexp"
	"regexp/syntax"
	"sync"

	"github.com/vsinha/mpn/pkg/domain/entities"
	"github.com/vsinha/mpn/pkg/domain/repositories"
)

var (
	// ErrInvalidPattern is returned for patterns that fail validation or compilation
	ErrInvalidPattern = errors.New("invalid pattern")
	// ErrRegistryFrozen is returned when registering after Build
	ErrRegistryFrozen = errors.New("pattern registry already built")
)

type compiledEntry struct {
	entry    entities.PatternEntry
	re       *regexp.Regexp
	strength int
}

// Builder collects pattern registrations. It is append-only and never
// deduplicates: overlapping patterns are kept and resolved at detection time.
type Builder struct {
	mu      sync.Mutex
	entries []compiledEntry
	built   bool
}

// NewBuilder creates an empty pattern registry builder
func NewBuilder(expectedPatterns int) *Builder {
	return &Builder{
		entries: make([]compiledEntry, 0, expectedPatterns),
	}
}

// Verify interface compliance
var _ repositories.PatternRegistrar = (*Builder)(nil)

// Register appends a pattern. Patterns are anchored at the start of the MPN
// and matched case-insensitively.
func (b *Builder) Register(componentType entities.ComponentType, pattern string, manufacturer entities.ManufacturerID, priority int) error {
	entry, err := entities.NewPatternEntry(componentType, pattern, manufacturer, priority)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}

	re, err := regexp.Compile(`(?i)^(?:` + pattern + `)`)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidPattern, pattern, err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.built {
		return fmt.Errorf("%w: cannot register %q", ErrRegistryFrozen, pattern)
	}

	b.entries = append(b.entries, compiledEntry{
		entry:    *entry,
		re:       re,
		strength: LiteralPrefixLength(pattern),
	})
	return nil
}

// Len returns the number of registered patterns
func (b *Builder) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.entries)
}

// Build freezes the builder and returns the immutable registry
func (b *Builder) Build() *Registry {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.built = true
	entries := make([]compiledEntry, len(b.entries))
	copy(entries, b.entries)
	return &Registry{entries: entries}
}

// Registry is an immutable, build-once pattern registry. All methods are
// safe for concurrent use without locking.
type Registry struct {
	entries []compiledEntry
}

// Verify interface compliance
var _ repositories.PatternLookup = (*Registry)(nil)

// Lookup returns every entry whose pattern matches the MPN, in registration order
func (r *Registry) Lookup(mpn string) []entities.PatternMatch {
	if r == nil || mpn == "" {
		return nil
	}

	var matches []entities.PatternMatch
	for i, e := range r.entries {
		if !e.re.MatchString(mpn) {
			continue
		}
		matches = append(matches, entities.PatternMatch{
			Type:         e.entry.Type,
			Manufacturer: e.entry.Manufacturer,
			Strength:     e.strength,
			Priority:     e.entry.Priority,
			Pattern:      e.entry.Pattern,
			Index:        i,
		})
	}
	return matches
}

// Entries returns a copy of all registered entries
func (r *Registry) Entries() []entities.PatternEntry {
	if r == nil {
		return nil
	}
	out := make([]entities.PatternEntry, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.entry
	}
	return out
}

// Len returns the number of registered patterns
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.entries)
}

// LiteralPrefixLength returns the number of literal characters a pattern
// requires before its first wildcard, class or repetition. Invalid patterns
// have length 0.
func LiteralPrefixLength(pattern string) int {
	re, err := syntax.Parse(pattern, syntax.Perl)
	if err != nil {
		return 0
	}
	n, _ := literalPrefix(re.Simplify())
	return n
}

// literalPrefix reports the literal prefix length of re and whether re is
// entirely literal
func literalPrefix(re *syntax.Regexp) (int, bool) {
	switch re.Op {
	case syntax.OpLiteral:
		return len(re.Rune), true
	case syntax.OpBeginText, syntax.OpBeginLine, syntax.OpEmptyMatch:
		return 0, true
	case syntax.OpCapture:
		return literalPrefix(re.Sub[0])
	case syntax.OpConcat:
		total := 0
		for _, sub := range re.Sub {
			n, complete := literalPrefix(sub)
			total += n
			if !complete {
				return total, false
			}
		}
		return total, true
	default:
		return 0, false
	}
}
