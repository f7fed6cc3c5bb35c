package handlers

import "github.com/vsinha/mpn/pkg/domain/entities"

var kemetVoltages = map[string]string{
	"9": "6.3",
	"8": "10",
	"4": "16",
	"3": "25",
	"6": "35",
	"5": "50",
	"1": "100",
	"2": "200",
	"A": "250",
}

var kemetDielectrics = map[string]string{
	"R": "X7R",
	"G": "C0G",
	"P": "X5R",
	"U": "Z5U",
	"V": "Y5V",
}

// kemetTantalumCases maps the case letter to the EIA metric case
var kemetTantalumCases = map[string]string{
	"A": "3216-18",
	"B": "3528-21",
	"C": "6032-28",
	"D": "7343-31",
	"E": "7343-43",
	"V": "7343-20",
}

func kemetDefinition() Definition {
	return Definition{
		ID:      entities.Kemet,
		Name:    "KEMET",
		Aliases: []string{"Kemet Corporation", "Kemet Electronics"},
		Patterns: []PatternDef{
			{Type: entities.CapacitorKemet, Expr: `C(0201|0402|0603|0805|1206|1210|1812)C\d{3}`},
			{Type: entities.CapacitorKemet, Expr: `T49[145][A-EV]\d{3}`},
		},
		Shapes: []Shape{
			{
				// C0603C104K5RACTU: 0603, 100 nF, 10 %, 50 V, X7R
				Name:  "ceramic-smd",
				Types: []entities.ComponentType{entities.CapacitorKemet},
				Expr:  `(?P<series>C)(?P<size>0201|0402|0603|0805|1206|1210|1812)(?P<style>C)(?P<rating>\d{3}|\dR\d)(?P<tol>[BCDFGJKMZ])(?P<voltage>[1-9A])(?P<dielectric>[A-Z])(?P<failure>A)(?P<term>C)(?P<suffix>[0-9A-Z]*)`,
				Fields: []Field{
					{Attr: entities.AttrPackageCode, Group: "size", Table: imperialChipSizes},
					{Attr: entities.AttrValue, Group: GroupRating, Rule: RuleCapacitance},
					{Attr: entities.AttrValueCode, Group: GroupRating},
					{Attr: entities.AttrTolerance, Group: "tol", Rule: RuleTolerance},
					{Attr: entities.AttrVoltageClass, Group: "voltage", Table: kemetVoltages},
					{Attr: entities.AttrDielectric, Group: "dielectric", Table: kemetDielectrics},
				},
			},
			{
				// T491A106K016AT: case A, 10 uF, 10 %, 16 V
				Name:  "tantalum",
				Types: []entities.ComponentType{entities.CapacitorKemet},
				Expr:  `(?P<series>T49[145])(?P<case>[A-EV])(?P<rating>\d{3})(?P<tol>[KM])(?P<voltage>\d{3})(?P<suffix>[0-9A-Z]*)`,
				Fields: []Field{
					{Attr: entities.AttrPackageCode, Group: "case", Table: kemetTantalumCases},
					{Attr: entities.AttrValue, Group: GroupRating, Rule: RuleCapacitance},
					{Attr: entities.AttrValueCode, Group: GroupRating},
					{Attr: entities.AttrTolerance, Group: "tol", Rule: RuleTolerance},
					{Attr: entities.AttrVoltageClass, Group: "voltage", Rule: RuleNumeric},
				},
				Facts: map[string]entities.ExtractedAttributes{
					"T491": {entities.AttrDielectric: "tantalum"},
					"T494": {entities.AttrDielectric: "tantalum"},
					"T495": {entities.AttrDielectric: "tantalum"},
				},
			},
		},
	}
}
