package services

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/vsinha/mpn/pkg/domain/entities"
)

// maxSuffixPasses bounds how many times the suffix table is re-applied
const maxSuffixPasses = 4

type compiledSuffixRule struct {
	rule    entities.SuffixRule
	guard   *regexp.Regexp
	pattern *regexp.Regexp
}

// Normalizer canonicalizes raw MPN strings before matching: Unicode
// compatibility folding, whitespace removal, upper-casing and removal of
// packaging suffixes listed in manufacturer suffix tables. Suffixes that
// encode identity (a Zener's -C5V1, a Renesas #V1) are never in the tables
// and survive normalization.
type Normalizer struct {
	rules []compiledSuffixRule
}

// NewNormalizer compiles a suffix table. Rules are tried in order.
func NewNormalizer(rules []entities.SuffixRule) (*Normalizer, error) {
	n := &Normalizer{rules: make([]compiledSuffixRule, 0, len(rules))}
	for _, rule := range rules {
		if rule.Pattern == "" {
			return nil, fmt.Errorf("suffix rule %q has an empty pattern", rule.Name)
		}
		pattern, err := regexp.Compile(rule.Pattern)
		if err != nil {
			return nil, fmt.Errorf("suffix rule %q: %w", rule.Name, err)
		}
		var guard *regexp.Regexp
		if rule.Guard != "" {
			guard, err = regexp.Compile(rule.Guard)
			if err != nil {
				return nil, fmt.Errorf("suffix rule %q guard: %w", rule.Name, err)
			}
		}
		n.rules = append(n.rules, compiledSuffixRule{rule: rule, guard: guard, pattern: pattern})
	}
	return n, nil
}

// Rules returns a copy of the suffix table
func (n *Normalizer) Rules() []entities.SuffixRule {
	out := make([]entities.SuffixRule, len(n.rules))
	for i, r := range n.rules {
		out[i] = r.rule
	}
	return out
}

// Normalize returns the canonical form of raw. Empty input yields "".
func (n *Normalizer) Normalize(raw string) string {
	if raw == "" {
		return ""
	}

	s := norm.NFKC.String(raw)
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToUpper(r)
	}, s)
	if s == "" || n == nil {
		return s
	}

	for pass := 0; pass < maxSuffixPasses; pass++ {
		stripped := n.stripOnce(s)
		if stripped == s || stripped == "" {
			break
		}
		s = stripped
	}
	return s
}

// stripOnce applies the first rule whose guard and pattern both match
func (n *Normalizer) stripOnce(s string) string {
	for _, r := range n.rules {
		if r.guard != nil && !r.guard.MatchString(s) {
			continue
		}
		if !r.pattern.MatchString(s) {
			continue
		}
		return r.pattern.ReplaceAllString(s, r.rule.Replace)
	}
	return s
}

// PackagingSuffix returns the name of the suffix rule that would fire on the
// upper-cased MPN, if any
func (n *Normalizer) PackagingSuffix(mpn string) (string, bool) {
	s := strings.ToUpper(strings.TrimSpace(mpn))
	for _, r := range n.rules {
		if r.guard != nil && !r.guard.MatchString(s) {
			continue
		}
		if r.pattern.MatchString(s) {
			return r.rule.Name, true
		}
	}
	return "", false
}
