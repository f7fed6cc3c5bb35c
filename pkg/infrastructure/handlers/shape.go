package handlers

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/vsinha/mpn/pkg/domain/entities"
	"github.com/vsinha/mpn/pkg/domain/units"
)

// Group names with a conventional meaning inside a Shape
const (
	GroupSeries = "series"
	GroupRating = "rating"
	GroupPkg    = "pkg"
	GroupSuffix = "suffix"
)

// Rule selects how a Field turns captured text into an attribute value
type Rule int

const (
	// RuleText copies the captured text
	RuleText Rule = iota
	// RuleAfterLastDigit keeps the text after the last digit, stopping at '#'
	RuleAfterLastDigit
	// RuleNumeric parses a non-negative integer, dropping leading zeros
	RuleNumeric
	// RuleResistance decodes a resistance code into ohms
	RuleResistance
	// RuleCapacitance decodes a capacitance code into picofarads
	RuleCapacitance
	// RuleInductance decodes an inductance code into microhenries
	RuleInductance
	// RuleTolerance decodes a tolerance letter or percentage into percent
	RuleTolerance
	// RuleVoltage decodes a voltage token such as 5V1 into volts
	RuleVoltage
	// RuleDecimal reads a plain number, dropping any unit
	RuleDecimal
)

// String method for Rule enum
func (r Rule) String() string {
	switch r {
	case RuleText:
		return "text"
	case RuleAfterLastDigit:
		return "after-last-digit"
	case RuleNumeric:
		return "numeric"
	case RuleResistance:
		return "resistance"
	case RuleCapacitance:
		return "capacitance"
	case RuleInductance:
		return "inductance"
	case RuleTolerance:
		return "tolerance"
	case RuleVoltage:
		return "voltage"
	case RuleDecimal:
		return "decimal"
	default:
		return "unknown"
	}
}

// Field extracts one attribute from a shape match. Group names the capture
// group to read ("" reads the whole normalized MPN) and Append lists groups
// concatenated after it. From/To slice the text (To 0 means to the end).
// When Table is set the text is looked up in it and a miss leaves the
// attribute absent.
type Field struct {
	Attr   string
	Group  string
	Append []string
	From   int
	To     int
	Table  map[string]string
	Rule   Rule
}

// Shape is one anchored MPN layout of a manufacturer. Named groups feed
// Fields; groups named series and rating also populate the series and
// ratingToken attributes unless a Field sets them.
type Shape struct {
	Name  string
	Types []entities.ComponentType
	Expr  string

	Fields []Field

	// Facts adds static attributes for a part family. The key is the
	// concatenation of FactsKey groups, or the series attribute when
	// FactsKey is empty. Decoded fields take precedence over facts.
	Facts    map[string]entities.ExtractedAttributes
	FactsKey []string

	// Interchangeable lists groups that may differ between replacement
	// compatible parts. Empty means pkg and suffix.
	Interchangeable []string
}

type compiledShape struct {
	Shape
	re              *regexp.Regexp
	groups          map[string]int
	interchangeable map[string]bool
}

func compileShape(s Shape) (*compiledShape, error) {
	if strings.TrimSpace(s.Expr) == "" {
		return nil, fmt.Errorf("shape %q has an empty expression", s.Name)
	}
	re, err := regexp.Compile(`^(?:` + s.Expr + `)$`)
	if err != nil {
		return nil, fmt.Errorf("shape %q: %w", s.Name, err)
	}

	groups := make(map[string]int)
	for i, name := range re.SubexpNames() {
		if name != "" {
			groups[name] = i
		}
	}

	requireGroup := func(name string) error {
		if _, ok := groups[name]; !ok {
			return fmt.Errorf("shape %q references unknown group %q", s.Name, name)
		}
		return nil
	}
	for _, f := range s.Fields {
		if f.Attr == "" {
			return nil, fmt.Errorf("shape %q has a field without an attribute name", s.Name)
		}
		if f.Group != "" {
			if err := requireGroup(f.Group); err != nil {
				return nil, err
			}
		}
		for _, g := range f.Append {
			if err := requireGroup(g); err != nil {
				return nil, err
			}
		}
		if f.From < 0 || f.To < 0 || (f.To > 0 && f.From >= f.To) {
			return nil, fmt.Errorf("shape %q field %s has an invalid slice [%d:%d]", s.Name, f.Attr, f.From, f.To)
		}
	}
	for _, g := range s.FactsKey {
		if err := requireGroup(g); err != nil {
			return nil, err
		}
	}

	interchangeable := make(map[string]bool)
	if len(s.Interchangeable) == 0 {
		interchangeable[GroupPkg] = true
		interchangeable[GroupSuffix] = true
	}
	for _, g := range s.Interchangeable {
		if err := requireGroup(g); err != nil {
			return nil, err
		}
		interchangeable[g] = true
	}

	return &compiledShape{
		Shape:           s,
		re:              re,
		groups:          groups,
		interchangeable: interchangeable,
	}, nil
}

// appliesTo reports whether the shape describes parts of the given type.
// Unknown applies to every shape.
func (s *compiledShape) appliesTo(ct entities.ComponentType) bool {
	if ct == entities.Unknown || len(s.Types) == 0 {
		return true
	}
	for _, t := range s.Types {
		if t == ct || t.Is(ct) || ct.Is(t) {
			return true
		}
	}
	return false
}

func (s *compiledShape) group(m []string, name string) string {
	i, ok := s.groups[name]
	if !ok {
		return ""
	}
	return m[i]
}

// extract evaluates the shape's fields against a submatch of mpn
func (s *compiledShape) extract(mpn string, m []string) entities.ExtractedAttributes {
	attrs := make(entities.ExtractedAttributes)

	if v := s.group(m, GroupSeries); v != "" {
		attrs[entities.AttrSeries] = v
	}
	if v := s.group(m, GroupRating); v != "" {
		attrs[entities.AttrRatingToken] = v
	}

	for _, f := range s.Fields {
		if v, ok := s.evaluate(f, mpn, m); ok {
			attrs[f.Attr] = v
		}
	}

	key := attrs[entities.AttrSeries]
	if len(s.FactsKey) > 0 {
		var b strings.Builder
		for _, g := range s.FactsKey {
			b.WriteString(s.group(m, g))
		}
		key = b.String()
	}
	for name, v := range s.Facts[key] {
		if !attrs.Has(name) {
			attrs[name] = v
		}
	}
	return attrs
}

func (s *compiledShape) evaluate(f Field, mpn string, m []string) (string, bool) {
	text := mpn
	if f.Group != "" {
		text = s.group(m, f.Group)
	}
	for _, g := range f.Append {
		text += s.group(m, g)
	}

	if f.From > 0 || f.To > 0 {
		to := f.To
		if to == 0 {
			to = len(text)
		}
		if to > len(text) || f.From >= to {
			return "", false
		}
		text = text[f.From:to]
	}

	if f.Rule == RuleAfterLastDigit {
		text = afterLastDigit(text)
	}

	if f.Table != nil {
		v, ok := f.Table[text]
		if !ok || v == "" {
			return "", false
		}
		text = v
	} else if text == "" {
		return "", false
	}

	return convert(f.Rule, text)
}

func convert(rule Rule, text string) (string, bool) {
	switch rule {
	case RuleNumeric:
		n, err := strconv.Atoi(text)
		if err != nil || n < 0 {
			return "", false
		}
		return strconv.Itoa(n), true
	case RuleResistance:
		v, ok := units.ParseResistance(text)
		return v.String(), ok
	case RuleCapacitance:
		v, ok := units.ParseCapacitance(text)
		return v.String(), ok
	case RuleInductance:
		v, ok := units.ParseInductance(text)
		return v.String(), ok
	case RuleTolerance:
		v, ok := units.ParseTolerance(text)
		return v.String(), ok
	case RuleVoltage:
		v, ok := units.ParseVoltage(text)
		return v.String(), ok
	case RuleDecimal:
		v, ok := units.ParseNumber(text)
		return v.String(), ok
	default:
		return text, text != ""
	}
}

// afterLastDigit returns the text following the last digit. A '#' marks
// the start of a version suffix and ends the scan.
func afterLastDigit(s string) string {
	if i := strings.IndexByte(s, '#'); i >= 0 {
		s = s[:i]
	}
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] >= '0' && s[i] <= '9' {
			return s[i+1:]
		}
	}
	return ""
}

// replacementCompatible compares two submatches of the same shape
func (s *compiledShape) replacementCompatible(a, b entities.ExtractedAttributes, ma, mb []string) bool {
	seriesA, okA := a.Get(entities.AttrSeries)
	seriesB, okB := b.Get(entities.AttrSeries)
	if !okA || !okB || seriesA != seriesB {
		return false
	}
	ratingA, okA := a.Get(entities.AttrRatingToken)
	ratingB, okB := b.Get(entities.AttrRatingToken)
	if !okA || !okB || ratingA != ratingB {
		return false
	}

	for name, i := range s.groups {
		if s.interchangeable[name] {
			continue
		}
		if ma[i] != mb[i] {
			return false
		}
	}
	return true
}
