package handlers

import "github.com/vsinha/mpn/pkg/domain/entities"

// wurthHeaderPitch maps the WR-PHD family prefix to its pitch in mm
var wurthHeaderPitch = map[string]string{
	"613": "2.54",
	"620": "2.00",
	"622": "1.27",
}

var wurthLEDSizes = map[string]string{
	"060": "0603",
	"080": "0805",
	"120": "1206",
	"141": "1411",
}

func wurthDefinition() Definition {
	return Definition{
		ID:      entities.Wurth,
		Name:    "Würth Elektronik",
		Aliases: []string{"Wurth", "Wuerth", "Wuerth Elektronik", "WE"},
		Patterns: []PatternDef{
			{Type: entities.ConnectorWurth, Expr: `6(13|20|22)\d{8}$`},
			{Type: entities.LEDWurth, Expr: `150\d{3}[A-Z]{2}\d{5}`},
			{Type: entities.Inductor, Expr: `7440\d{7}`},
		},
		Shapes: []Shape{
			{
				// 613 002 1112 1: family, pins, body style, plating variant
				Name:  "wr-phd-header",
				Types: []entities.ComponentType{entities.ConnectorWurth},
				Expr:  `(?P<family>613|620|622)(?P<pins>\d{3})(?P<body>\d{4})(?P<variant>\d)`,
				Fields: []Field{
					{Attr: entities.AttrSeries, To: 5},
					{Attr: entities.AttrPinCount, Group: "pins", Rule: RuleNumeric},
					{Attr: entities.AttrRatingToken, Group: "pins", Rule: RuleNumeric},
					{Attr: entities.AttrPitchCode, Group: "family", Table: wurthHeaderPitch},
					{Attr: entities.AttrVariantCode, Group: "variant"},
					{Attr: entities.AttrPackageCode, Group: "variant"},
				},
				Interchangeable: []string{"variant"},
			},
			{
				Name:  "wl-smcw-led",
				Types: []entities.ComponentType{entities.LEDWurth},
				Expr:  `(?P<series>150)(?P<size>060|080|120|141)(?P<color>[A-Z]{2})(?P<rating>\d{2})(?P<suffix>\d{3})`,
				Fields: []Field{
					{Attr: entities.AttrSeries, To: 6},
					{Attr: entities.AttrPackageCode, Group: "size", Table: wurthLEDSizes},
					{Attr: entities.AttrVariantCode, Group: "color"},
				},
			},
			{
				Name:  "we-pd-inductor",
				Types: []entities.ComponentType{entities.Inductor},
				Expr:  `(?P<series>7440\d)(?P<size>\d{3})(?P<rating>\d{3})`,
				Fields: []Field{
					{Attr: entities.AttrPackageCode, Group: GroupSeries, Append: []string{"size"}},
					{Attr: entities.AttrValue, Group: GroupRating, Rule: RuleInductance},
					{Attr: entities.AttrValueCode, Group: GroupRating},
				},
			},
		},
	}
}
