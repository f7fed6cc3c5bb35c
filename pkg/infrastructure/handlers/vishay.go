package handlers

import "github.com/vsinha/mpn/pkg/domain/entities"

// vishayTCR maps the Dale/Draloric temperature coefficient letter to ppm/K
var vishayTCR = map[string]string{
	"K": "100",
	"N": "200",
	"H": "50",
	"E": "25",
	"Y": "10",
}

// siliconixPackages keys on the first digit of the Si part number
var siliconixPackages = map[string]string{
	"2": "SOT23",
	"3": "TSOP6",
	"4": "SO8",
	"7": "PowerPAK-SO8",
}

func vishayDefinition() Definition {
	return Definition{
		ID:      entities.Vishay,
		Name:    "Vishay",
		Aliases: []string{"Vishay Dale", "Vishay Siliconix", "Vishay Intertechnology", "Vishay Draloric"},
		Patterns: []PatternDef{
			{Type: entities.ResistorVishay, Expr: `CRCW\d{4}`},
			{Type: entities.ResistorVishay, Expr: `TNPW\d{4}`},
			{Type: entities.MOSFET, Expr: `SI[2-9]\d{3}[A-Z]`},
		},
		Shapes: []Shape{
			{
				// CRCW060310K0FKEA: 0603, 10.0 kOhm, 1 %, TCR 100, packing EA
				Name:  "thick-thin-film-chip",
				Types: []entities.ComponentType{entities.ResistorVishay},
				Expr:  `(?P<series>CRCW|TNPW)(?P<size>\d{4})(?P<rating>\d*[RKM]\d*)(?P<tol>[BCDFGJ])(?P<tcr>[A-Z])(?P<suffix>[A-Z]{2}[0-9A-Z]*)`,
				Fields: []Field{
					{Attr: entities.AttrPackageCode, Group: "size", Table: imperialChipSizes},
					{Attr: entities.AttrValue, Group: GroupRating, Rule: RuleResistance},
					{Attr: entities.AttrValueCode, Group: GroupRating},
					{Attr: entities.AttrTolerance, Group: "tol", Rule: RuleTolerance},
					{Attr: entities.AttrTempCoefficient, Group: "tcr", Table: vishayTCR},
				},
			},
			{
				Name:  "siliconix-mosfet",
				Types: []entities.ComponentType{entities.MOSFET},
				Expr:  `(?P<series>SI)(?P<rating>\d{4})(?P<suffix>[A-Z]{1,4})`,
				Fields: []Field{
					{Attr: entities.AttrSeries, Group: GroupSeries, Append: []string{GroupRating}},
					{Attr: entities.AttrPackageCode, Group: GroupRating, To: 1, Table: siliconixPackages},
				},
			},
		},
		Packaging: []entities.SuffixRule{
			{Name: "siliconix-lead-free", Guard: `^SI\d`, Pattern: `(-T1)?-(GE3|E3)$`},
		},
	}
}
