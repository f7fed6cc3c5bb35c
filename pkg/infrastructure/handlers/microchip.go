package handlers

import "github.com/vsinha/mpn/pkg/domain/entities"

var picPackages = map[string]string{
	"SS": "SSOP",
	"SO": "SOIC",
	"SN": "SOIC",
	"P":  "PDIP",
	"SP": "SPDIP",
	"ML": "QFN",
	"MV": "UQFN",
	"PT": "TQFP",
	"ST": "TSSOP",
	"MS": "MSOP",
	"MC": "DFN",
	"OT": "SOT23",
}

var avrPackages = map[string]string{
	"AU":  "TQFP",
	"PU":  "PDIP",
	"MU":  "QFN",
	"MMH": "QFN",
	"SU":  "SOIC",
	"XU":  "TSSOP",
	"SSU": "SOIC",
}

var samPinCodes = map[string]string{
	"E": "32",
	"G": "48",
	"J": "64",
	"N": "100",
}

func microchipDefinition() Definition {
	return Definition{
		ID:      entities.Microchip,
		Name:    "Microchip",
		Aliases: []string{"Microchip Technology", "Atmel"},
		Patterns: []PatternDef{
			{Type: entities.MicrocontrollerMicrochip, Expr: `PIC\d{2}[A-Z]{1,2}\d`},
			{Type: entities.MicrocontrollerMicrochip, Expr: `ATMEGA\d`},
			{Type: entities.MicrocontrollerMicrochip, Expr: `ATTINY\d`},
			{Type: entities.MicrocontrollerMicrochip, Expr: `ATSAM[A-Z]\d{2}`},
			{Type: entities.Sensor, Expr: `MCP98\d{2}`},
		},
		Shapes: []Shape{
			{
				// PIC16F18446-I/SS: industrial temperature, SSOP
				Name:  "pic",
				Types: []entities.ComponentType{entities.MicrocontrollerMicrochip},
				Expr:  `(?P<series>PIC\d{2}[A-Z]{1,2})(?P<rating>\d{2,5}(?:[A-Z]\d{2})?[A-Z]?)(?:-(?P<temp>[IEH])(?:/(?P<pkg>[0-9A-Z]{1,3}))?)?`,
				Fields: []Field{
					{Attr: entities.AttrTemperatureGrade, Group: "temp"},
					{Attr: entities.AttrPackageCode, Group: GroupPkg, Table: picPackages},
				},
			},
			{
				Name:  "avr",
				Types: []entities.ComponentType{entities.MicrocontrollerMicrochip},
				Expr:  `(?P<series>ATMEGA|ATTINY)(?P<rating>\d{1,4}[A-Z]{0,2}?)(?:-(?P<speed>\d{2})?(?P<pkg>[A-Z]{2,3}))?`,
				Fields: []Field{
					{Attr: entities.AttrSeries, Group: GroupSeries, Append: []string{GroupRating}},
					{Attr: entities.AttrPackageCode, Group: GroupPkg, Table: avrPackages},
				},
				Interchangeable: []string{"speed", GroupPkg},
			},
			{
				// ATSAMD21G18A-AU: 48 pins, 256 KB
				Name:  "sam",
				Types: []entities.ComponentType{entities.MicrocontrollerMicrochip},
				Expr:  `(?P<series>ATSAM[A-Z]\d{2})(?P<pins>[A-Z])(?P<rating>\d{2}[A-Z])(?:-(?P<pkg>[A-Z]{2,3}))?`,
				Fields: []Field{
					{Attr: entities.AttrPinCount, Group: "pins", Table: samPinCodes},
					{Attr: entities.AttrMemoryCode, Group: GroupRating, To: 2},
					{Attr: entities.AttrPackageCode, Group: GroupPkg, Table: avrPackages},
				},
			},
			{
				Name:     "temperature-sensor",
				Types:    []entities.ComponentType{entities.Sensor},
				Expr:     `(?P<series>MCP98)(?P<rating>\d{2})(?:-(?P<temp>[EI]))?(?:/(?P<pkg>[0-9A-Z]{2,3}))?`,
				FactsKey: []string{GroupSeries, GroupRating},
				Fields: []Field{
					{Attr: entities.AttrPackageCode, Group: GroupPkg, Table: picPackages},
					{Attr: entities.AttrTemperatureGrade, Group: "temp"},
				},
				Facts: map[string]entities.ExtractedAttributes{
					"MCP9808": sensorFacts("temperature", "I2C", ""),
					"MCP9800": sensorFacts("temperature", "I2C", ""),
					"MCP9843": sensorFacts("temperature", "I2C", ""),
				},
			},
		},
		Packaging: []entities.SuffixRule{
			{
				// MCP9808T-E/MS: the T after the device marks tape and reel
				Name:    "microchip-tape",
				Pattern: `^((?:PIC|MCP|ATSAM)[0-9A-Z]*[0-9A-Z])T(-[0-9A-Z]+/[0-9A-Z]+)$`,
				Replace: "$1$2",
			},
			{Name: "avr-reel", Guard: `^AT(MEGA|TINY|SAM)`, Pattern: `(-[A-Z]{2})R$`, Replace: "$1"},
		},
	}
}
