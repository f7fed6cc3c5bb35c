package handlers

import "github.com/vsinha/mpn/pkg/domain/entities"

// rl78PinCodes maps the first character after the RL78 group to pins
var rl78PinCodes = map[string]string{
	"6": "20",
	"7": "24",
	"8": "25",
	"A": "30",
	"B": "32",
	"C": "36",
	"E": "40",
	"F": "44",
	"G": "48",
	"J": "52",
	"L": "64",
	"M": "80",
	"P": "100",
	"S": "128",
}

func renesasDefinition() Definition {
	return Definition{
		ID:      entities.Renesas,
		Name:    "Renesas",
		Aliases: []string{"Renesas Electronics", "Renesas Electronics America"},
		Patterns: []PatternDef{
			{Type: entities.MicrocontrollerRenesasRL78, Expr: `R5F10[0-9A-Z]{3,}`},
			{Type: entities.MicrocontrollerRenesasRX, Expr: `R5F\d{3,5}[0-9A-Z]+`},
			{Type: entities.Microcontroller, Expr: `R7FA\d[A-Z]\d`},
		},
		Shapes: []Shape{
			{
				// R5F100LEAFB#30: group R5F100, pins L, flash E, grade A, package FB
				Name:  "rl78",
				Types: []entities.ComponentType{entities.MicrocontrollerRenesasRL78},
				Expr:  `(?P<series>R5F10[0-9A-Z])(?P<rating>[0-9A-Z]{2})(?P<grade>[A-Z])(?P<pkg>[A-Z]{2})(?P<version>#[0-9A-Z]+)?`,
				Fields: []Field{
					{Attr: entities.AttrPinCount, Group: GroupRating, To: 1, Table: rl78PinCodes},
					{Attr: entities.AttrMemoryCode, Group: GroupRating, From: 1},
					{Attr: entities.AttrTemperatureGrade, Group: "grade"},
					{Attr: entities.AttrPackageCode, Rule: RuleAfterLastDigit},
				},
				Interchangeable: []string{"version"},
			},
			{
				// R5F51303ADFM: group R5F5130, flash 3, grade A, temp D, package FM
				Name:  "rx",
				Types: []entities.ComponentType{entities.MicrocontrollerRenesasRX},
				Expr:  `(?P<series>R5F5\d{3})(?P<rating>\d)(?P<grade>[A-Z])(?P<temp>[A-Z])(?P<pins>[A-Z]{2})(?P<version>#[0-9A-Z]+)?`,
				Fields: []Field{
					{Attr: entities.AttrPinCount, Group: "pins", Table: rxPinCodes},
					{Attr: entities.AttrMemoryCode, Group: GroupRating},
					{Attr: entities.AttrTemperatureGrade, Group: "temp"},
					{Attr: entities.AttrPackageCode, Rule: RuleAfterLastDigit},
				},
				Interchangeable: []string{"version"},
			},
			{
				Name:  "ra",
				Types: []entities.ComponentType{entities.Microcontroller},
				Expr:  `(?P<series>R7FA\d[A-Z]\d)(?P<rating>[A-Z]{2})(?P<temp>\d)(?P<grade>[A-Z])(?P<pins>[A-Z]{2})(?P<version>#[0-9A-Z]+)?`,
				Fields: []Field{
					{Attr: entities.AttrPinCount, Group: "pins", Table: rxPinCodes},
					{Attr: entities.AttrMemoryCode, Group: GroupRating},
					{Attr: entities.AttrTemperatureGrade, Group: "temp"},
					{Attr: entities.AttrPackageCode, Rule: RuleAfterLastDigit},
				},
				Interchangeable: []string{"version"},
			},
			{
				Name:  "r5f-fallback",
				Types: []entities.ComponentType{entities.MicrocontrollerRenesasRL78, entities.MicrocontrollerRenesasRX},
				Expr:  `(?P<series>R5F\d{3})[0-9A-Z]*(?P<version>#[0-9A-Z]+)?`,
				Fields: []Field{
					{Attr: entities.AttrPackageCode, Rule: RuleAfterLastDigit},
				},
			},
		},
	}
}
