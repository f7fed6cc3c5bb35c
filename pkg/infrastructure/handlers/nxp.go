package handlers

import "github.com/vsinha/mpn/pkg/domain/entities"

var lpcPackages = map[string]string{
	"FBD": "LQFP",
	"JBD": "LQFP",
	"FET": "TFBGA",
	"FHN": "HVQFN",
	"JHI": "HVQFN",
}

var kinetisPins = map[string]string{
	"LH": "64",
	"LL": "100",
	"LK": "80",
	"LF": "48",
	"FM": "32",
	"FT": "48",
	"MC": "121",
}

var kinetisPackages = map[string]string{
	"LH": "LQFP",
	"LL": "LQFP",
	"LK": "LQFP",
	"LF": "LQFP",
	"FM": "QFN",
	"FT": "QFN",
	"MC": "MAPBGA",
}

func nxpDefinition() Definition {
	return Definition{
		ID:      entities.NXP,
		Name:    "NXP",
		Aliases: []string{"NXP Semiconductors", "NXP USA", "Freescale"},
		Patterns: []PatternDef{
			{Type: entities.MicrocontrollerNXP, Expr: `LPC\d{4}`},
			{Type: entities.MicrocontrollerNXP, Expr: `MK\d{2}[A-Z]{1,2}\d{2,3}`},
			{Type: entities.Sensor, Expr: `FXOS\d{4}`},
			{Type: entities.Sensor, Expr: `FXAS\d{5}`},
			{Type: entities.Sensor, Expr: `MMA\d{4}`},
		},
		Shapes: []Shape{
			{
				// LPC1768FBD100: LQFP-100
				Name:  "lpc",
				Types: []entities.ComponentType{entities.MicrocontrollerNXP},
				Expr:  `(?P<series>LPC\d{2})(?P<rating>\d{2})(?P<pkg>[A-Z]{2,3})(?P<pins>\d{2,3})(?P<suffix>[0-9A-Z/]*)`,
				Fields: []Field{
					{Attr: entities.AttrSeries, Group: GroupSeries, Append: []string{GroupRating}},
					{Attr: entities.AttrPinCount, Group: "pins", Rule: RuleNumeric},
					{Attr: entities.AttrPackageCode, Group: GroupPkg, Table: lpcPackages},
				},
			},
			{
				// MK20DX256VLH7: 256 KB, -40..105, LQFP-64, 72 MHz
				Name:  "kinetis",
				Types: []entities.ComponentType{entities.MicrocontrollerNXP},
				Expr:  `(?P<series>MK\d{2})(?P<rating>[A-Z]{1,2}\d{2,3}[A-Z]?)(?P<temp>[VC])(?P<pkg>[A-Z]{2})(?P<speed>\d{1,3})(?P<suffix>R?)`,
				Fields: []Field{
					{Attr: entities.AttrPinCount, Group: GroupPkg, Table: kinetisPins},
					{Attr: entities.AttrPackageCode, Group: GroupPkg, Table: kinetisPackages},
					{Attr: entities.AttrTemperatureGrade, Group: "temp"},
				},
				Interchangeable: []string{GroupSuffix},
			},
			{
				Name:     "motion-sensor",
				Types:    []entities.ComponentType{entities.Sensor},
				Expr:     `(?P<series>FXOS|FXAS|MMA)(?P<rating>\d{4,5})(?P<suffix>[0-9A-Z]*)`,
				FactsKey: []string{GroupSeries, GroupRating},
				Facts: map[string]entities.ExtractedAttributes{
					"FXOS8700":  sensorFacts("acceleration,magnetic-field", "I2C,SPI", "QFN16"),
					"FXAS21002": sensorFacts("angular-rate", "I2C,SPI", "QFN24"),
					"MMA8451":   sensorFacts("acceleration", "I2C", "DFN16"),
					"MMA8452":   sensorFacts("acceleration", "I2C", "DFN16"),
				},
			},
		},
		Packaging: []entities.SuffixRule{
			{Name: "12nc-packing", Guard: `^(LPC|MK\d|FXOS|FXAS|MMA)`, Pattern: `,\d{3}$`},
		},
	}
}
