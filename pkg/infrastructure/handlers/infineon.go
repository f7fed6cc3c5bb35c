package handlers

import "github.com/vsinha/mpn/pkg/domain/entities"

var irPackages = map[string]string{
	"IRF":   "TO220",
	"IRFZ":  "TO220",
	"IRFB":  "TO220",
	"IRFR":  "DPAK",
	"IRFP":  "TO247",
	"IRFS":  "D2PAK",
	"IRL":   "TO220",
	"IRLZ":  "TO220",
	"IRLR":  "DPAK",
	"IRLML": "SOT23",
}

var optimosPackages = map[string]string{
	"BSC": "TDSON8",
	"BSZ": "TSDSON8",
	"IPP": "TO220",
	"IPB": "D2PAK",
	"IPD": "DPAK",
}

// optimosVoltages maps the two digits after N to the drain-source rating
var optimosVoltages = map[string]string{
	"03": "30",
	"04": "40",
	"06": "60",
	"08": "80",
	"10": "100",
	"15": "150",
}

func infineonDefinition() Definition {
	return Definition{
		ID:      entities.Infineon,
		Name:    "Infineon",
		Aliases: []string{"Infineon Technologies", "International Rectifier", "IR"},
		Patterns: []PatternDef{
			{Type: entities.MOSFETInfineon, Expr: `IRF[A-Z]{0,2}\d{2,4}`},
			{Type: entities.MOSFETInfineon, Expr: `IRL[A-Z]{0,2}\d{2,4}`},
			{Type: entities.MOSFETInfineon, Expr: `BSC\d{3}N\d{2}`},
			{Type: entities.MOSFETInfineon, Expr: `BSZ\d{3}N\d{2}`},
			{Type: entities.MOSFETInfineon, Expr: `IP[PBD]\d{3}N\d{2}`},
			{Type: entities.Sensor, Expr: `DPS3\d{2}`},
		},
		Shapes: []Shape{
			{
				Name:  "hexfet",
				Types: []entities.ComponentType{entities.MOSFETInfineon},
				Expr:  `(?P<series>IRF|IRFZ|IRFR|IRFB|IRFP|IRFS|IRL|IRLZ|IRLR|IRLML)(?P<rating>\d{2,4})(?P<suffix>[A-Z]*)`,
				Fields: []Field{
					{Attr: entities.AttrPackageCode, Group: GroupSeries, Table: irPackages},
				},
			},
			{
				// BSC010N04LS: 1.0 mOhm, 40 V, logic level
				Name:  "optimos",
				Types: []entities.ComponentType{entities.MOSFETInfineon},
				Expr:  `(?P<series>BSC|BSZ|IPP|IPB|IPD)(?P<rating>\d{3}N\d{2})(?P<suffix>[0-9A-Z]*)`,
				Fields: []Field{
					{Attr: entities.AttrPackageCode, Group: GroupSeries, Table: optimosPackages},
					{Attr: entities.AttrVoltageClass, Group: GroupRating, From: 4, Table: optimosVoltages},
				},
			},
			{
				Name:     "xensiv-pressure",
				Types:    []entities.ComponentType{entities.Sensor},
				Expr:     `(?P<series>DPS)(?P<rating>3\d{2})(?P<suffix>[0-9A-Z]*)`,
				FactsKey: []string{GroupSeries, GroupRating},
				Facts: map[string]entities.ExtractedAttributes{
					"DPS310": sensorFacts("pressure,temperature", "I2C,SPI", "LGA8"),
					"DPS368": sensorFacts("pressure,temperature", "I2C,SPI", "LGA8"),
				},
			},
		},
		Packaging: []entities.SuffixRule{
			{Name: "ir-lead-free", Guard: `^IR`, Pattern: `(TRPBF|TRLPBF|PBF)$`},
		},
	}
}
