package handlers

import "github.com/vsinha/mpn/pkg/domain/entities"

// yageoThinFilmTCR maps the RT series temperature coefficient letter
var yageoThinFilmTCR = map[string]string{
	"B": "10",
	"C": "15",
	"D": "25",
	"E": "50",
	"F": "100",
}

var yageoDielectrics = map[string]string{
	"NPO": "C0G",
	"X7R": "X7R",
	"X5R": "X5R",
	"Y5V": "Y5V",
}

var yageoVoltages = map[string]string{
	"5": "6.3",
	"6": "10",
	"7": "16",
	"8": "25",
	"9": "50",
	"0": "100",
}

func yageoDefinition() Definition {
	return Definition{
		ID:      entities.Yageo,
		Name:    "Yageo",
		Aliases: []string{"Yageo Corporation", "Phycomp"},
		Patterns: []PatternDef{
			{Type: entities.ResistorYageo, Expr: `RC\d{4}[BCDFGJ][RK]-`},
			{Type: entities.ResistorYageo, Expr: `RT\d{4}[BCDF][RK]`},
			{Type: entities.ResistorYageo, Expr: `AC\d{4}[FJ][RK]-`},
			{Type: entities.Capacitor, Expr: `CC\d{4}[BCDFJKMZ][RP](NPO|X7R|X5R|Y5V)`},
		},
		Shapes: []Shape{
			{
				// RC0603FR-0710KL: 0603, 1 %, paper tape, 7 inch reel, 10 kOhm
				Name:  "chip-resistor",
				Types: []entities.ComponentType{entities.ResistorYageo},
				Expr:  `(?P<series>RC|RT|AC)(?P<size>\d{4})(?P<tol>[BCDFGJ])(?P<packing>[RK])(?P<tcr>[B-F])?-?(?P<reel>07|10|13)(?P<rating>\d*[RKM]\d*)(?P<suffix>L?)`,
				Fields: []Field{
					{Attr: entities.AttrPackageCode, Group: "size", Table: imperialChipSizes},
					{Attr: entities.AttrValue, Group: GroupRating, Rule: RuleResistance},
					{Attr: entities.AttrValueCode, Group: GroupRating},
					{Attr: entities.AttrTolerance, Group: "tol", Rule: RuleTolerance},
					{Attr: entities.AttrTempCoefficient, Group: "tcr", Table: yageoThinFilmTCR},
				},
				Interchangeable: []string{"packing", "reel", GroupSuffix},
			},
			{
				// CC0603KRX7R9BB104: 0603, 10 %, X7R, 50 V, 100 nF
				Name:  "mlcc",
				Types: []entities.ComponentType{entities.Capacitor},
				Expr:  `(?P<series>CC)(?P<size>\d{4})(?P<tol>[BCDFJKMZ])(?P<packing>[RP])(?P<dielectric>NPO|X7R|X5R|Y5V)(?P<voltage>[05-9])(?P<spec>BB)(?P<rating>\d{3}|\dR\d)`,
				Fields: []Field{
					{Attr: entities.AttrPackageCode, Group: "size", Table: imperialChipSizes},
					{Attr: entities.AttrValue, Group: GroupRating, Rule: RuleCapacitance},
					{Attr: entities.AttrValueCode, Group: GroupRating},
					{Attr: entities.AttrTolerance, Group: "tol", Rule: RuleTolerance},
					{Attr: entities.AttrDielectric, Group: "dielectric", Table: yageoDielectrics},
					{Attr: entities.AttrVoltageClass, Group: "voltage", Table: yageoVoltages},
				},
				Interchangeable: []string{"packing"},
			},
		},
	}
}
