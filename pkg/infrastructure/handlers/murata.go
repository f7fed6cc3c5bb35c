package handlers

import "github.com/vsinha/mpn/pkg/domain/entities"

var murataSizes = map[string]string{
	"03": "0201",
	"15": "0402",
	"18": "0603",
	"21": "0805",
	"31": "1206",
	"32": "1210",
	"43": "1812",
}

var murataDielectrics = map[string]string{
	"R7": "X7R",
	"R6": "X5R",
	"5C": "C0G",
	"C7": "X7S",
	"C8": "X6S",
	"D7": "X7T",
	"E7": "X7U",
}

func murataDefinition() Definition {
	return Definition{
		ID:      entities.Murata,
		Name:    "Murata",
		Aliases: []string{"Murata Manufacturing", "Murata Electronics"},
		Patterns: []PatternDef{
			{Type: entities.CapacitorMurata, Expr: `GRM\d{3}`},
			{Type: entities.CapacitorMurata, Expr: `GCM\d{3}`},
			{Type: entities.CapacitorMurata, Expr: `GJM\d{3}`},
			{Type: entities.Inductor, Expr: `LQ[HMW]\d{2}`},
		},
		Shapes: []Shape{
			{
				// GRM188R71H104KA93D: 0603, X7R, 50 V, 100 nF, 10 %, reel D
				Name:  "mlcc",
				Types: []entities.ComponentType{entities.CapacitorMurata},
				Expr:  `(?P<series>GRM|GCM|GJM)(?P<size>\d{2})(?P<height>[0-9A-Z])(?P<dielectric>[0-9A-Z]{2})(?P<voltage>\d[A-Z])(?P<rating>\d{3}|\dR\d|R\d{2})(?P<tol>[BCDFGJKMWZ])(?P<spec>[0-9A-Z]{2,3}?)(?P<suffix>[DLJKBE])`,
				Fields: []Field{
					{Attr: entities.AttrPackageCode, Group: "size", Table: murataSizes},
					{Attr: entities.AttrDielectric, Group: "dielectric", Table: murataDielectrics},
					{Attr: entities.AttrVoltageClass, Group: "voltage", Table: jisVoltageCodes},
					{Attr: entities.AttrValue, Group: GroupRating, Rule: RuleCapacitance},
					{Attr: entities.AttrValueCode, Group: GroupRating},
					{Attr: entities.AttrTolerance, Group: "tol", Rule: RuleTolerance},
				},
			},
			{
				// LQH32CN100K23L: 1210, 10 uH, 10 %
				Name:  "chip-inductor",
				Types: []entities.ComponentType{entities.Inductor},
				Expr:  `(?P<series>LQ[HMW])(?P<size>\d{2})(?P<style>[A-Z]{2,3})(?P<rating>\d{3}|\d*[RN]\d*)(?P<tol>[BCGJKM])(?P<suffix>[0-9A-Z]+)`,
				Fields: []Field{
					{Attr: entities.AttrPackageCode, Group: "size", Table: murataSizes},
					{Attr: entities.AttrValue, Group: GroupRating, Rule: RuleInductance},
					{Attr: entities.AttrValueCode, Group: GroupRating},
					{Attr: entities.AttrTolerance, Group: "tol", Rule: RuleTolerance},
				},
			},
		},
	}
}
