package entities

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ManufacturerID is the canonical lower-case identifier of a manufacturer.
// The empty ID scopes a pattern to no manufacturer (a generic pattern).
type ManufacturerID string

const (
	ManufacturerNone ManufacturerID = ""

	Wurth            ManufacturerID = "wurth"
	Nexperia         ManufacturerID = "nexperia"
	Renesas          ManufacturerID = "renesas"
	TexasInstruments ManufacturerID = "ti"
	Vishay           ManufacturerID = "vishay"
	Yageo            ManufacturerID = "yageo"
	Murata           ManufacturerID = "murata"
	Kemet            ManufacturerID = "kemet"
	Infineon         ManufacturerID = "infineon"
	STMicro          ManufacturerID = "st"
	Microchip        ManufacturerID = "microchip"
	NXP              ManufacturerID = "nxp"
	Onsemi           ManufacturerID = "onsemi"
	Molex            ManufacturerID = "molex"
	TEConnectivity   ManufacturerID = "te"
	Bosch            ManufacturerID = "bosch"
	Nordic           ManufacturerID = "nordic"
	Skyworks         ManufacturerID = "skyworks"
	Qorvo            ManufacturerID = "qorvo"
)

// IsNone reports whether the ID is the generic (unscoped) ID
func (m ManufacturerID) IsNone() bool {
	return m == ManufacturerNone
}

// String returns the raw ID
func (m ManufacturerID) String() string {
	return string(m)
}

// FoldManufacturerName reduces a free-form manufacturer name to a lookup key:
// diacritics removed, lower-cased, punctuation and spacing dropped.
// "Würth Elektronik" and "wurth-elektronik" fold to the same key.
func FoldManufacturerName(name string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, name)
	if err != nil {
		folded = name
	}

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range strings.ToLower(folded) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
