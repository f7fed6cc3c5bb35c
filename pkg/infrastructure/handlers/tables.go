package handlers

import "github.com/vsinha/mpn/pkg/domain/entities"

// Lookup tables shared by several definitions

// jisVoltageCodes is the two-character rated voltage code used by Murata and TDK
var jisVoltageCodes = map[string]string{
	"0G": "4",
	"0J": "6.3",
	"1A": "10",
	"1C": "16",
	"1E": "25",
	"YA": "35",
	"1V": "35",
	"1H": "50",
	"2A": "100",
	"2D": "200",
	"2E": "250",
	"2J": "630",
}

// metricToImperial maps metric chip sizes to the imperial codes used as
// package codes throughout the catalog
var metricToImperial = map[string]string{
	"0603": "0201",
	"1005": "0402",
	"1608": "0603",
	"2012": "0805",
	"3216": "1206",
	"3225": "1210",
	"4532": "1812",
}

// imperialChipSizes accepts imperial size codes as they are
var imperialChipSizes = map[string]string{
	"0201": "0201",
	"0402": "0402",
	"0603": "0603",
	"0805": "0805",
	"1206": "1206",
	"1210": "1210",
	"1812": "1812",
	"2010": "2010",
	"2512": "2512",
}

// bzxPackages maps Zener series to their package
var bzxPackages = map[string]string{
	"BZX84":  "SOT23",
	"BZX79":  "DO35",
	"BZX585": "SOD523",
	"BZX384": "SOD323",
}

// bzxTolerances maps the BZX tolerance letter to percent
var bzxTolerances = map[string]string{
	"A": "1",
	"B": "2",
	"C": "5",
	"D": "10",
}

// logicFamilies lists 74-series family codes; alternation order puts longer
// codes first
const logicFamilies = `GTLP|AHCT|HCT|ACT|AHC|ALS|ALVC|LVC|LVT|ABT|BCT|FCT|GTL|AUP|AUC|HC|AC|AS|LV|LS|F|S`

// logicFamilyNames maps a captured family code to its name; plain 74xx is TTL
var logicFamilyNames = func() map[string]string {
	m := map[string]string{"": "TTL"}
	for _, f := range []string{"GTLP", "AHCT", "HCT", "ACT", "AHC", "ALS", "ALVC", "LVC", "LVT", "ABT", "BCT", "FCT", "GTL", "AUP", "AUC", "HC", "AC", "AS", "LV", "LS", "F", "S"} {
		m[f] = f
	}
	return m
}()

// tiLogicPackages maps TI package designators
var tiLogicPackages = map[string]string{
	"N":   "DIP",
	"D":   "SOIC",
	"DW":  "SOIC-W",
	"NS":  "SO",
	"PW":  "TSSOP",
	"DB":  "SSOP",
	"DGV": "TVSOP",
	"DBV": "SOT23-5",
	"DCK": "SC70-5",
	"DGK": "VSSOP8",
	"DRL": "SOT563",
	"RGY": "VQFN",
}

// rxPinCodes maps the trailing two-letter Renesas package code to pins
var rxPinCodes = map[string]string{
	"FP": "100",
	"FM": "64",
	"FL": "48",
	"FK": "64",
	"NE": "48",
	"NF": "40",
	"FN": "80",
	"LA": "100",
}

// stm32PinCodes maps the STM32/STM8 pin-count letter
var stm32PinCodes = map[string]string{
	"D": "14",
	"F": "20",
	"G": "28",
	"K": "32",
	"T": "36",
	"S": "44",
	"C": "48",
	"R": "64",
	"M": "80",
	"V": "100",
	"Z": "144",
	"A": "169",
	"I": "176",
	"B": "208",
	"N": "216",
}

// rfFacts builds the static attributes of an RF part
func rfFacts(band, power, gain string) entities.ExtractedAttributes {
	attrs := entities.ExtractedAttributes{entities.AttrFrequencyBand: band}
	if power != "" {
		attrs[entities.AttrPowerRating] = power
	}
	if gain != "" {
		attrs[entities.AttrGain] = gain
	}
	return attrs
}

// sensorFacts builds the static attributes of a sensor
func sensorFacts(measures, iface, pkg string) entities.ExtractedAttributes {
	attrs := entities.ExtractedAttributes{entities.AttrMeasures: measures}
	if iface != "" {
		attrs[entities.AttrInterface] = iface
	}
	if pkg != "" {
		attrs[entities.AttrPackageCode] = pkg
	}
	return attrs
}

// connectorFacts builds the static attributes of a connector series
func connectorFacts(pitch, rows string) entities.ExtractedAttributes {
	return entities.ExtractedAttributes{
		entities.AttrPitchCode: pitch,
		entities.AttrRows:      rows,
	}
}
