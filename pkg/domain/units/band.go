package units

import (
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// tolerance letters per IEC 60062, in percent
var toleranceLetters = map[string]decimal.Decimal{
	"A": decimal.RequireFromString("0.05"),
	"B": decimal.RequireFromString("0.1"),
	"C": decimal.RequireFromString("0.25"),
	"D": decimal.RequireFromString("0.5"),
	"F": decimal.NewFromInt(1),
	"G": decimal.NewFromInt(2),
	"J": decimal.NewFromInt(5),
	"K": decimal.NewFromInt(10),
	"M": decimal.NewFromInt(20),
	"Z": decimal.NewFromInt(80),
}

// ToleranceFromLetter returns the symmetric tolerance in percent for a
// tolerance letter
func ToleranceFromLetter(letter string) (decimal.Decimal, bool) {
	v, ok := toleranceLetters[strings.ToUpper(strings.TrimSpace(letter))]
	return v, ok
}

// ParseTolerance accepts a tolerance letter or a percentage such as "1%"
func ParseTolerance(s string) (decimal.Decimal, bool) {
	if v, ok := ToleranceFromLetter(s); ok {
		return v, true
	}
	v, ok := ParseNumber(strings.TrimSuffix(strings.TrimSpace(s), "%"))
	if !ok || v.IsNegative() {
		return decimal.Zero, false
	}
	return v, true
}

// Band is a closed value interval
type Band struct {
	Min decimal.Decimal
	Max decimal.Decimal
}

// NewBand builds the band nominal ± tolerancePercent
func NewBand(nominal, tolerancePercent decimal.Decimal) Band {
	delta := nominal.Abs().Mul(tolerancePercent).Div(hundred)
	return Band{Min: nominal.Sub(delta), Max: nominal.Add(delta)}
}

// Overlaps reports whether two closed bands share at least one value
func (b Band) Overlaps(other Band) bool {
	return !b.Max.LessThan(other.Min) && !other.Max.LessThan(b.Min)
}

// Contains reports whether v lies within the band
func (b Band) Contains(v decimal.Decimal) bool {
	return !v.LessThan(b.Min) && !v.GreaterThan(b.Max)
}

// Covers reports whether b contains the whole of other
func (b Band) Covers(other Band) bool {
	return b.Contains(other.Min) && b.Contains(other.Max)
}

// String renders the band as "min..max"
func (b Band) String() string {
	return b.Min.String() + ".." + b.Max.String()
}
