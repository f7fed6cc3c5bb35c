// Package units decodes the value encodings found inside passive-component
// MPNs and compares the resulting tolerance bands with exact decimal
// arithmetic.
package units

import (
	"strings"

	"github.com/shopspring/decimal"
)

// multiplier letters used in RKM (IEC 60062) value codes
var rkmMultipliers = map[byte]int32{
	'R': 0,
	'K': 3,
	'M': 6,
	'G': 9,
}

// capacitance RKM letters scale to picofarads
var capacitanceMultipliers = map[byte]int32{
	'P': 0,
	'R': 0,
	'N': 3,
	'U': 6,
}

// inductance RKM letters scale to microhenries
var inductanceMultipliers = map[byte]int32{
	'N': -3,
	'R': 0,
	'U': 0,
}

// ParseResistance decodes a resistance code into ohms. Accepted forms are
// RKM ("4K7", "10K0", "1R0", "R47", "2M2", "100R") and EIA digit codes
// where the last digit is the power of ten ("103", "1002"). "0" and "000"
// decode to a zero-ohm jumper.
func ParseResistance(code string) (decimal.Decimal, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return decimal.Zero, false
	}
	if isDigits(code) {
		if strings.Trim(code, "0") == "" {
			return decimal.Zero, true
		}
		return parseDigitCode(code, 3, 4)
	}
	return parseRKM(code, rkmMultipliers)
}

// ParseCapacitance decodes a capacitance code into picofarads. Three-digit
// EIA codes ("104" is 100000 pF) use 8 and 9 as the 0.01 and 0.1
// multipliers; RKM forms use R or P for pF, N for nF and U for uF
// ("1R5", "4N7", "2U2").
func ParseCapacitance(code string) (decimal.Decimal, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return decimal.Zero, false
	}
	if isDigits(code) {
		if len(code) != 3 {
			return decimal.Zero, false
		}
		exp := int32(code[2] - '0')
		switch exp {
		case 8:
			exp = -2
		case 9:
			exp = -1
		}
		sig, err := decimal.NewFromString(code[:2])
		if err != nil {
			return decimal.Zero, false
		}
		return sig.Shift(exp), true
	}
	return parseRKM(code, capacitanceMultipliers)
}

// ParseInductance decodes an inductance code into microhenries: three-digit
// EIA codes ("100" is 10 uH, "101" is 100 uH), R as the decimal point
// ("4R7") and N for nanohenries ("47N").
func ParseInductance(code string) (decimal.Decimal, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return decimal.Zero, false
	}
	if isDigits(code) {
		return parseDigitCode(code, 3, 3)
	}
	return parseRKM(code, inductanceMultipliers)
}

// ParseVoltage decodes voltage tokens such as "5V1", "6V3", "50V" or "3.3"
func ParseVoltage(token string) (decimal.Decimal, bool) {
	token = strings.ToUpper(strings.TrimSpace(token))
	if token == "" {
		return decimal.Zero, false
	}
	if i := strings.IndexByte(token, 'V'); i >= 0 && i < len(token)-1 {
		token = token[:i] + "." + token[i+1:]
	}
	token = strings.TrimSuffix(token, "V")
	v, err := decimal.NewFromString(token)
	if err != nil || v.IsNegative() {
		return decimal.Zero, false
	}
	return v, true
}

// ParseNumber reads a signed decimal, ignoring a trailing unit such as
// "dBm", "dB", "MHz" or "W"
func ParseNumber(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	end := len(s)
	for end > 0 {
		c := s[end-1]
		if (c >= '0' && c <= '9') || c == '.' {
			break
		}
		end--
	}
	s = strings.TrimPrefix(s[:end], "+")
	if s == "" {
		return decimal.Zero, false
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return v, true
}

// ParseRange reads "lo-hi" (or a single value, which is a degenerate range)
func ParseRange(s string) (Band, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Band{}, false
	}
	sep := strings.IndexByte(s[1:], '-')
	if sep < 0 {
		v, ok := ParseNumber(s)
		if !ok {
			return Band{}, false
		}
		return Band{Min: v, Max: v}, true
	}
	sep++
	lo, ok := ParseNumber(s[:sep])
	if !ok {
		return Band{}, false
	}
	hi, ok := ParseNumber(s[sep+1:])
	if !ok || hi.LessThan(lo) {
		return Band{}, false
	}
	return Band{Min: lo, Max: hi}, true
}

// parseDigitCode decodes significant digits followed by a power-of-ten digit
func parseDigitCode(code string, minLen, maxLen int) (decimal.Decimal, bool) {
	if len(code) < minLen || len(code) > maxLen {
		return decimal.Zero, false
	}
	sig, err := decimal.NewFromString(code[:len(code)-1])
	if err != nil {
		return decimal.Zero, false
	}
	return sig.Shift(int32(code[len(code)-1] - '0')), true
}

// parseRKM decodes a code with exactly one multiplier letter standing in
// for the decimal point
func parseRKM(code string, multipliers map[byte]int32) (decimal.Decimal, bool) {
	pos := -1
	for i := 0; i < len(code); i++ {
		c := code[i]
		if c >= '0' && c <= '9' {
			continue
		}
		if _, ok := multipliers[c]; !ok || pos >= 0 {
			return decimal.Zero, false
		}
		pos = i
	}
	if pos < 0 || len(code) == 1 {
		return decimal.Zero, false
	}

	whole, frac := code[:pos], code[pos+1:]
	if whole == "" {
		whole = "0"
	}
	text := whole
	if frac != "" {
		text += "." + frac
	}
	v, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Zero, false
	}
	return v.Shift(multipliers[code[pos]]), true
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}
