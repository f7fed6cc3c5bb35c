package entities

import (
	"sort"
	"strconv"
)

// Attribute names produced by extraction handlers
const (
	AttrSeries           = "series"
	AttrPinCount         = "pinCount"
	AttrPitchCode        = "pitchCode"
	AttrPackageCode      = "packageCode"
	AttrVariantCode      = "variantCode"
	AttrTemperatureGrade = "temperatureGrade"
	AttrVoltageClass     = "voltageClass"
	AttrRatingToken      = "ratingToken"
	AttrSuffix           = "suffix"
	AttrValue            = "value"
	AttrValueCode        = "valueCode"
	AttrTolerance        = "tolerance"
	AttrTempCoefficient  = "tempCoefficient"
	AttrDielectric       = "dielectric"
	AttrFamily           = "family"
	AttrFunction         = "function"
	AttrFrequencyBand    = "frequencyBand"
	AttrPowerRating      = "powerRating"
	AttrGain             = "gain"
	AttrMeasures         = "measures"
	AttrInterface        = "interface"
	AttrRows             = "rows"
	AttrMemoryCode       = "memoryCode"
	AttrManufacturer     = "manufacturer"
)

// ExtractedAttributes maps attribute names to values. A missing key means the
// attribute does not apply or could not be decoded; it is never an error.
type ExtractedAttributes map[string]string

// Get returns the value of an attribute and whether it is present
func (a ExtractedAttributes) Get(name string) (string, bool) {
	v, ok := a[name]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// Has reports whether the attribute is present
func (a ExtractedAttributes) Has(name string) bool {
	_, ok := a.Get(name)
	return ok
}

// Int returns an attribute parsed as an integer
func (a ExtractedAttributes) Int(name string) (int, bool) {
	v, ok := a.Get(name)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Float returns an attribute parsed as a float
func (a ExtractedAttributes) Float(name string) (float64, bool) {
	v, ok := a.Get(name)
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Clone returns an independent copy
func (a ExtractedAttributes) Clone() ExtractedAttributes {
	c := make(ExtractedAttributes, len(a))
	for k, v := range a {
		c[k] = v
	}
	return c
}

// Names returns the present attribute names, sorted
func (a ExtractedAttributes) Names() []string {
	names := make([]string, 0, len(a))
	for k, v := range a {
		if v != "" {
			names = append(names, k)
		}
	}
	sort.Strings(names)
	return names
}
