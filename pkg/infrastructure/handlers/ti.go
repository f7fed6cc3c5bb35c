package handlers

import "github.com/vsinha/mpn/pkg/domain/entities"

var tiSensorFacts = map[string]entities.ExtractedAttributes{
	"TMP117":  sensorFacts("temperature", "I2C", "WSON6"),
	"TMP116":  sensorFacts("temperature", "I2C", "WSON6"),
	"TMP102":  sensorFacts("temperature", "I2C", "SOT563"),
	"TMP112":  sensorFacts("temperature", "I2C", "SOT563"),
	"TMP235":  sensorFacts("temperature", "analog", "SOT23-3"),
	"HDC1080": sensorFacts("humidity,temperature", "I2C", "WSON6"),
	"HDC2080": sensorFacts("humidity,temperature", "I2C", "WSON6"),
	"OPT3001": sensorFacts("light", "I2C", "USON6"),
}

var tiRFFacts = map[string]entities.ExtractedAttributes{
	"CC1101": rfFacts("300-928", "12", ""),
	"CC1120": rfFacts("164-960", "16", ""),
	"CC1310": rfFacts("315-930", "15", ""),
	"CC1352": rfFacts("315-2483.5", "20", ""),
	"CC2500": rfFacts("2400-2483.5", "1", ""),
	"CC2640": rfFacts("2360-2500", "5", ""),
	"CC2642": rfFacts("2360-2500", "5", ""),
	"CC2650": rfFacts("2360-2500", "5", ""),
	"CC2652": rfFacts("2360-2500", "5", ""),
	"CC3220": rfFacts("2412-2484", "18", ""),
	"CC3235": rfFacts("2412-5825", "18", ""),
}

// tiFixedOutputs maps the output voltage digits of fixed LDOs
var tiFixedOutputs = map[string]string{
	"12": "1.2",
	"18": "1.8",
	"25": "2.5",
	"28": "2.8",
	"30": "3",
	"33": "3.3",
	"50": "5",
}

var msp430Packages = map[string]string{
	"PW":  "TSSOP",
	"N":   "PDIP",
	"RGE": "VQFN24",
	"RHB": "VQFN32",
	"DA":  "TSSOP38",
	"PM":  "LQFP64",
	"PN":  "LQFP80",
}

// tiReelGuard lists TI prefixes whose package designator may carry a
// trailing R (reel) or T (small reel)
const tiReelGuard = `^(SN74|SN54|CD74|TPS|TMP|HDC|OPT|OPA|INA|LMV|TLV|LM|TL|NE|MSP430)`

func tiDefinition() Definition {
	return Definition{
		ID:      entities.TexasInstruments,
		Name:    "Texas Instruments",
		Aliases: []string{"TI", "Texas Instruments Inc", "Texas Instruments Incorporated"},
		Patterns: []PatternDef{
			{Type: entities.LogicTI, Expr: `SN74(` + logicFamilies + `)?\d`},
			{Type: entities.LogicTI, Expr: `SN54(` + logicFamilies + `)?\d`},
			{Type: entities.LogicTI, Expr: `CD74(` + logicFamilies + `)?\d`},
			{Type: entities.SensorTI, Expr: `TMP\d{3}`},
			{Type: entities.SensorTI, Expr: `HDC\d{4}`},
			{Type: entities.SensorTI, Expr: `OPT\d{4}`},
			{Type: entities.RFICTI, Expr: `CC(1101|1120|1310|1352|2500|2640|2642|2650|2652|3220|3235)`},
			{Type: entities.RegulatorTI, Expr: `TPS\d[0-9A-Z]\d{2,3}`},
			{Type: entities.Microcontroller, Expr: `MSP430[A-Z]{1,2}\d{3,4}`},
			{Type: entities.OpAmp, Expr: `OPA\d{3,4}`},
			{Type: entities.OpAmp, Expr: `LMV\d{3}`},
			{Type: entities.OpAmp, Expr: `TLV\d{3,4}`},
			{Type: entities.OpAmp, Expr: `INA\d{3}`},
		},
		Shapes: []Shape{
			logicShape(tiLogicPackages, entities.LogicTI),
			{
				Name:     "ti-sensor",
				Types:    []entities.ComponentType{entities.SensorTI},
				Expr:     `(?P<series>TMP|HDC|OPT)(?P<rating>\d{3,4})(?P<pkg>[A-Z]*)`,
				FactsKey: []string{GroupSeries, GroupRating},
				Facts:    tiSensorFacts,
			},
			{
				Name:  "simplelink-rf",
				Types: []entities.ComponentType{entities.RFICTI},
				Expr:  `(?P<series>CC\d{4})(?P<suffix>[0-9A-Z]*)`,
				Facts: tiRFFacts,
			},
			{
				// TPS7A0233PDBV: fixed 3.3 V output
				Name:  "fixed-ldo",
				Types: []entities.ComponentType{entities.RegulatorTI},
				Expr:  `(?P<series>TPS7A\d{2})(?P<rating>\d{2})(?P<pkg>[A-Z]+)`,
				Fields: []Field{
					{Attr: entities.AttrVoltageClass, Group: GroupRating, Table: tiFixedOutputs},
					{Attr: entities.AttrPackageCode, Group: GroupPkg, From: 1, Table: tiLogicPackages},
				},
			},
			{
				Name:  "tps-regulator",
				Types: []entities.ComponentType{entities.RegulatorTI},
				Expr:  `(?P<series>TPS\d[0-9A-Z])(?P<rating>\d{2,3})(?P<pkg>[A-Z]*)`,
				Fields: []Field{
					{Attr: entities.AttrPackageCode, Group: GroupPkg, Table: tiLogicPackages},
				},
			},
			{
				// MSP430G2553IPW20: family G, device 2553, temp I, TSSOP-20
				Name:  "msp430",
				Types: []entities.ComponentType{entities.Microcontroller},
				Expr:  `(?P<series>MSP430[A-Z]{1,2})(?P<rating>\d{3,4})(?P<temp>[IT])?(?P<pkg>[A-Z]{1,3})(?P<pins>\d{2})?`,
				Fields: []Field{
					{Attr: entities.AttrSeries, Group: GroupSeries, Append: []string{GroupRating}},
					{Attr: entities.AttrPinCount, Group: "pins", Rule: RuleNumeric},
					{Attr: entities.AttrPackageCode, Group: GroupPkg, Table: msp430Packages},
					{Attr: entities.AttrTemperatureGrade, Group: "temp"},
				},
			},
			{
				Name:  "precision-amplifier",
				Types: []entities.ComponentType{entities.OpAmp},
				Expr:  `(?P<series>OPA|LMV|TLV|INA)(?P<rating>\d{3,4})(?P<grade>[A-Z]{0,2}?)(?P<pkg>D|DBV|DCK|DGK|PW|DRL)?`,
				Fields: []Field{
					{Attr: entities.AttrPackageCode, Group: GroupPkg, Table: tiLogicPackages},
				},
			},
		},
		Packaging: []entities.SuffixRule{
			{
				Name:    "ti-reel",
				Guard:   tiReelGuard,
				Pattern: `(D|DW|DB|DBV|DCK|PW|DGK|DRL|DSG|DRV|RGT|RGE|RHB|RGZ|DDC|DGV|NS)[RT]$`,
				Replace: "$1",
			},
		},
	}
}
