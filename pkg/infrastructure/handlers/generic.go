package handlers

import (
	"github.com/vsinha/mpn/pkg/domain/entities"
)

// bzxShape decodes BZX Zener part numbers; shared by the generic and
// Nexperia definitions
func bzxShape(types ...entities.ComponentType) Shape {
	return Shape{
		Name:  "bzx-zener",
		Types: types,
		Expr:  `(?P<series>BZX84|BZX79|BZX585|BZX384)-?(?P<tol>[A-D])(?P<rating>\d+V\d*)(?P<suffix>[A-Z]*)`,
		Fields: []Field{
			{Attr: entities.AttrPackageCode, Group: GroupSeries, Table: bzxPackages},
			{Attr: entities.AttrVoltageClass, Group: GroupRating},
			{Attr: entities.AttrTolerance, Group: "tol", Table: bzxTolerances},
		},
	}
}

// logicShape decodes 74/54-series logic with an optional vendor prefix.
// Single-gate parts carry their gate count in the function ("1G14").
func logicShape(packages map[string]string, types ...entities.ComponentType) Shape {
	return Shape{
		Name:  "74-series-logic",
		Types: types,
		Expr:  `(?P<vendor>[A-Z]{0,3}?)(?P<series>74|54)(?P<family>` + logicFamilies + `)?(?P<rating>(?:\d{1,2}G)?\d{2,4})(?P<pkg>[A-Z]{0,3})`,
		Fields: []Field{
			{Attr: entities.AttrFamily, Group: "family", Table: logicFamilyNames},
			{Attr: entities.AttrFunction, Group: GroupRating},
			{Attr: entities.AttrPackageCode, Group: GroupPkg, Table: packages},
		},
		Interchangeable: []string{"vendor", GroupPkg},
	}
}

func genericDefinition() Definition {
	return Definition{
		Name:    "Generic",
		Generic: true,
		Patterns: []PatternDef{
			{Type: entities.Resistor, Expr: `ERJ-?[1-8][A-Z]{2,3}[DFJ]`},
			{Type: entities.Resistor, Expr: `CR\d{4}-[FJ][XW]-`},
			{Type: entities.Capacitor, Expr: `CL(03|05|10|21|31|32)[ABCFX]\d`},
			{Type: entities.Capacitor, Expr: `C(0603|1005|1608|2012|3216|3225|4532)(X7R|X5R|X7S|X6S|C0G)`},
			{Type: entities.Inductor, Expr: `SRR\d{4}[A-Z]?-`},
			{Type: entities.Diode, Expr: `1N[45]\d{3}`},
			{Type: entities.Diode, Expr: `BZX(84|79|585|384)-?[A-D]\d+V\d*`},
			{Type: entities.Diode, Expr: `BAT54`},
			{Type: entities.Diode, Expr: `BA[SV]\d{2}`},
			{Type: entities.Diode, Expr: `SS[1-3]\d[A-Z]?$`},
			{Type: entities.Diode, Expr: `SMBJ\d`},
			{Type: entities.Transistor, Expr: `2N\d{4}`},
			{Type: entities.Transistor, Expr: `2S[ABCD]\d{3,4}`},
			{Type: entities.Transistor, Expr: `BC\d{3}`},
			{Type: entities.MOSFET, Expr: `2N7002`},
			{Type: entities.MOSFET, Expr: `BSS(84|123|138)`},
			{Type: entities.MOSFET, Expr: `AO\d{4}`},
			{Type: entities.LED, Expr: `LTST-[A-Z]\d{3}`},
			{Type: entities.Connector, Expr: `[BS]\d{1,2}B-(PH|XH|ZR|SH|EH|GH)-`},
			{Type: entities.Microcontroller, Expr: `ESP32`},
			{Type: entities.Microcontroller, Expr: `RP2040`},
			{Type: entities.Sensor, Expr: `SHT[34]\d`},
			{Type: entities.Sensor, Expr: `DS18B20`},
			{Type: entities.Sensor, Expr: `MPU-?(6050|6500|9250)`},
			{Type: entities.Sensor, Expr: `ADXL3\d{2}`},
			{Type: entities.LogicIC, Expr: `[A-Z]{0,3}(74|54)(` + logicFamilies + `)?\d{2,4}[A-Z]{0,3}$`},
			{Type: entities.OpAmp, Expr: `LM(358|324|741|2902|2904|833)`},
			{Type: entities.OpAmp, Expr: `TL0[78][124]`},
			{Type: entities.OpAmp, Expr: `NE5532`},
			{Type: entities.OpAmp, Expr: `MCP60\d{2}`},
			{Type: entities.VoltageRegulator, Expr: `(LM|L|UA|MC)78[LM]?\d{2}`},
			{Type: entities.VoltageRegulator, Expr: `(LM|AMS|LD)1117`},
			{Type: entities.VoltageRegulator, Expr: `LM(317|2940)`},
			{Type: entities.Crystal, Expr: `ABM\d{1,2}[A-Z]?-`},
			{Type: entities.Crystal, Expr: `ECS-\d{2,4}-`},
		},
		Shapes: []Shape{
			{
				Name:  "panasonic-erj",
				Types: []entities.ComponentType{entities.Resistor},
				Expr:  `(?P<series>ERJ)-?(?P<size>[1-8])(?P<grade>[A-Z]{2,3})(?P<tol>[DFJ])(?P<rating>\d{3,4}|\d*R\d+)(?P<suffix>[VXZ])`,
				Fields: []Field{
					{Attr: entities.AttrPackageCode, Group: "size", Table: map[string]string{
						"1": "0201", "2": "0402", "3": "0603", "6": "0805", "8": "1206",
					}},
					{Attr: entities.AttrTolerance, Group: "tol", Rule: RuleTolerance},
					{Attr: entities.AttrValue, Group: GroupRating, Rule: RuleResistance},
					{Attr: entities.AttrValueCode, Group: GroupRating},
				},
			},
			{
				Name:  "bourns-cr",
				Types: []entities.ComponentType{entities.Resistor},
				Expr:  `(?P<series>CR)(?P<size>\d{4})-(?P<tol>[FJ])(?P<tcr>[XW])-(?P<rating>\d{3,4}|\d*R\d+)(?P<suffix>E?LF)`,
				Fields: []Field{
					{Attr: entities.AttrPackageCode, Group: "size", Table: imperialChipSizes},
					{Attr: entities.AttrTolerance, Group: "tol", Rule: RuleTolerance},
					{Attr: entities.AttrValue, Group: GroupRating, Rule: RuleResistance},
					{Attr: entities.AttrTempCoefficient, Group: "tcr", Table: map[string]string{"X": "100", "W": "200"}},
				},
			},
			{
				Name:  "samsung-cl",
				Types: []entities.ComponentType{entities.Capacitor},
				Expr:  `(?P<series>CL)(?P<size>03|05|10|21|31|32)(?P<dielectric>[ABCFX])(?P<rating>\d{3}|\dR\d)(?P<tol>[BCDFJKMZ])(?P<voltage>[A-Z])(?P<thickness>[0-9A-Z])(?P<suffix>[A-Z0-9]+)`,
				Fields: []Field{
					{Attr: entities.AttrPackageCode, Group: "size", Table: map[string]string{
						"03": "0201", "05": "0402", "10": "0603", "21": "0805", "31": "1206", "32": "1210",
					}},
					{Attr: entities.AttrDielectric, Group: "dielectric", Table: map[string]string{
						"A": "X5R", "B": "X7R", "C": "C0G", "F": "Y5V", "X": "X6S",
					}},
					{Attr: entities.AttrVoltageClass, Group: "voltage", Table: map[string]string{
						"R": "4", "Q": "6.3", "P": "10", "O": "16", "A": "25", "L": "35", "B": "50", "C": "100", "D": "200",
					}},
					{Attr: entities.AttrValue, Group: GroupRating, Rule: RuleCapacitance},
					{Attr: entities.AttrTolerance, Group: "tol", Rule: RuleTolerance},
				},
				Interchangeable: []string{"thickness", GroupSuffix},
			},
			{
				Name:  "tdk-c",
				Types: []entities.ComponentType{entities.Capacitor},
				Expr:  `(?P<series>C)(?P<size>0603|1005|1608|2012|3216|3225|4532)(?P<dielectric>X7R|X5R|X7S|X6S|C0G)(?P<voltage>[0-2][A-Z])(?P<rating>\d{3}|\dR\d)(?P<tol>[BCDFGJKM])(?P<suffix>[0-9A-Z]*)`,
				Fields: []Field{
					{Attr: entities.AttrPackageCode, Group: "size", Table: metricToImperial},
					{Attr: entities.AttrDielectric, Group: "dielectric"},
					{Attr: entities.AttrVoltageClass, Group: "voltage", Table: jisVoltageCodes},
					{Attr: entities.AttrValue, Group: GroupRating, Rule: RuleCapacitance},
					{Attr: entities.AttrTolerance, Group: "tol", Rule: RuleTolerance},
				},
			},
			{
				Name:  "bourns-srr",
				Types: []entities.ComponentType{entities.Inductor},
				Expr:  `(?P<series>SRR\d{4}[A-Z]?)-(?P<rating>\d{3}|\d*R\d+)(?P<tol>[KLMN])(?P<suffix>[A-Z]*)`,
				Fields: []Field{
					{Attr: entities.AttrPackageCode, Group: GroupSeries},
					{Attr: entities.AttrValue, Group: GroupRating, Rule: RuleInductance},
					{Attr: entities.AttrTolerance, Group: "tol", Table: map[string]string{
						"K": "10", "L": "15", "M": "20", "N": "30",
					}},
				},
			},
			bzxShape(entities.Diode),
			{
				Name:  "1n-diode",
				Types: []entities.ComponentType{entities.Diode},
				Expr:  `(?P<series>1N)(?P<rating>[45]\d{3}(?P<variant>W[ST]?|[A-Z])?)(?P<suffix>(?:-[A-Z0-9]+)*)`,
				Fields: []Field{
					{Attr: entities.AttrPackageCode, Group: GroupRating, To: 3, Table: map[string]string{
						"414": "DO35", "400": "DO41", "473": "DO41", "474": "DO41", "475": "DO41",
						"581": "DO41", "540": "DO201AD", "523": "DO35", "524": "DO35",
					}},
					// SMD variants of the axial series override the series package
					{Attr: entities.AttrPackageCode, Group: "variant", Table: map[string]string{
						"W": "SOD123", "WS": "SOD323", "WT": "SOD523",
					}},
				},
			},
			{
				Name:  "small-signal-diode",
				Types: []entities.ComponentType{entities.Diode},
				Expr:  `(?P<series>BAT54|BAV99|BAV70|BAV21|BAS16|BAS40)(?P<rating>[ACS]?)(?P<suffix>[A-Z]*)`,
				Fields: []Field{
					{Attr: entities.AttrPackageCode, Group: GroupSuffix, Table: map[string]string{
						"": "SOT23", "L": "SOT23", "W": "SOT323", "T": "SOT523",
					}},
				},
			},
			{
				Name:  "schottky-ss",
				Types: []entities.ComponentType{entities.Diode},
				Expr:  `(?P<series>SS)(?P<rating>[1-3]\d)(?P<suffix>[A-Z]?)`,
				Fields: []Field{
					{Attr: entities.AttrPackageCode, Group: GroupRating, To: 1, Table: map[string]string{
						"1": "SMA", "2": "SMB", "3": "SMC",
					}},
					{Attr: entities.AttrVoltageClass, Group: GroupRating, From: 1, Table: map[string]string{
						"2": "20", "3": "30", "4": "40", "5": "50", "6": "60", "8": "80", "9": "90",
					}},
				},
			},
			{
				Name:  "tvs-smbj",
				Types: []entities.ComponentType{entities.Diode},
				Expr:  `(?P<series>SMBJ)(?P<rating>\d+(?:\.\d)?)(?P<suffix>C?A)`,
				Fields: []Field{
					{Attr: entities.AttrPackageCode, Group: GroupSeries, Table: map[string]string{"SMBJ": "SMB"}},
					{Attr: entities.AttrVoltageClass, Group: GroupRating, Rule: RuleVoltage},
				},
				Interchangeable: []string{GroupSuffix},
			},
			{
				Name:  "small-signal-mosfet",
				Types: []entities.ComponentType{entities.MOSFET},
				Expr:  `(?P<rating>(?P<series>2N7002|BSS84|BSS123|BSS138))(?P<suffix>[A-Z]*)`,
				Fields: []Field{
					{Attr: entities.AttrPackageCode, Group: GroupSuffix, Table: map[string]string{
						"": "SOT23", "K": "SOT23", "L": "SOT23", "W": "SOT323", "T": "SOT523",
					}},
				},
			},
			{
				Name:  "aos-mosfet",
				Types: []entities.ComponentType{entities.MOSFET},
				Expr:  `(?P<series>AO)(?P<rating>\d{4})(?P<suffix>[A-Z]?)`,
				Fields: []Field{
					{Attr: entities.AttrPackageCode, Group: GroupRating, To: 2, Table: map[string]string{
						"34": "SOT23", "44": "SO8", "46": "SO8", "48": "SO8",
					}},
				},
			},
			{
				Name:  "jedec-transistor",
				Types: []entities.ComponentType{entities.Transistor},
				Expr:  `(?P<series>2N|2SA|2SB|2SC|2SD)(?P<rating>\d{3,4}A?)(?P<suffix>[A-Z]*)`,
				Fields: []Field{
					{Attr: entities.AttrPackageCode, Group: GroupRating, Table: map[string]string{
						"3904": "TO92", "3906": "TO92", "2222A": "TO92", "2907A": "TO92",
						"4401": "TO92", "4403": "TO92", "5551": "TO92", "5401": "TO92",
					}},
				},
			},
			{
				Name:  "pro-electron-bc",
				Types: []entities.ComponentType{entities.Transistor},
				Expr:  `(?P<series>BC\d{3})(?P<rating>[A-C]?)(?P<suffix>[A-Z]*)`,
				Fields: []Field{
					{Attr: entities.AttrPackageCode, Group: GroupSeries, From: 2, To: 3, Table: map[string]string{
						"3": "TO92", "5": "TO92", "8": "SOT23",
					}},
					{Attr: entities.AttrPackageCode, Group: GroupSuffix, Table: map[string]string{
						"W": "SOT323", "T": "SOT416", "M": "SOT883",
					}},
				},
			},
			{
				Name:  "liteon-ltst",
				Types: []entities.ComponentType{entities.LED},
				Expr:  `(?P<series>LTST)-(?P<rating>[A-Z]\d{3})(?P<color>[A-Z]+)`,
				Fields: []Field{
					{Attr: entities.AttrPackageCode, Group: GroupRating, Table: map[string]string{
						"C190": "0603", "C191": "0603", "C170": "0805", "C171": "0805", "C150": "1206",
					}},
				},
			},
			{
				Name:  "jst-wire-to-board",
				Types: []entities.ComponentType{entities.Connector},
				Expr:  `(?P<entry>[BS])(?P<pins>\d{1,2})B-(?P<family>PH|XH|ZR|SH|EH|GH)-(?P<suffix>[A-Z0-9-]+)`,
				Fields: []Field{
					{Attr: entities.AttrSeries, Group: "family"},
					{Attr: entities.AttrPinCount, Group: "pins", Rule: RuleNumeric},
					{Attr: entities.AttrRatingToken, Group: "pins", Rule: RuleNumeric},
				},
				Facts: map[string]entities.ExtractedAttributes{
					"PH": connectorFacts("2.00", "1"),
					"XH": connectorFacts("2.50", "1"),
					"EH": connectorFacts("2.50", "1"),
					"ZR": connectorFacts("1.50", "1"),
					"GH": connectorFacts("1.25", "1"),
					"SH": connectorFacts("1.00", "1"),
				},
			},
			{
				Name:  "espressif",
				Types: []entities.ComponentType{entities.Microcontroller},
				Expr:  `(?P<series>ESP32)(?:-(?P<rating>[A-Z0-9]+))?(?P<suffix>(?:-[A-Z0-9]+)*)`,
			},
			{
				Name:  "raspberry-pi-rp",
				Types: []entities.ComponentType{entities.Microcontroller},
				Expr:  `(?P<series>RP2040)`,
				Facts: map[string]entities.ExtractedAttributes{
					"RP2040": {entities.AttrPinCount: "56", entities.AttrPackageCode: "QFN56"},
				},
			},
			{
				Name:     "sensirion-sht",
				Types:    []entities.ComponentType{entities.Sensor},
				Expr:     `(?P<series>SHT)(?P<rating>[34]\d)(?P<suffix>-[A-Z0-9]+)?`,
				FactsKey: []string{GroupSeries, GroupRating},
				Facts: map[string]entities.ExtractedAttributes{
					"SHT30": sensorFacts("humidity,temperature", "I2C", "DFN8"),
					"SHT31": sensorFacts("humidity,temperature", "I2C", "DFN8"),
					"SHT35": sensorFacts("humidity,temperature", "I2C", "DFN8"),
					"SHT40": sensorFacts("humidity,temperature", "I2C", "DFN4"),
					"SHT41": sensorFacts("humidity,temperature", "I2C", "DFN4"),
					"SHT45": sensorFacts("humidity,temperature", "I2C", "DFN4"),
				},
			},
			{
				Name:  "maxim-ds18b20",
				Types: []entities.ComponentType{entities.Sensor},
				Expr:  `(?P<series>DS18B20)(?P<suffix>[A-Z]*\+?)`,
				Fields: []Field{
					{Attr: entities.AttrPackageCode, Group: GroupSuffix, Table: map[string]string{
						"": "TO92", "+": "TO92", "U+": "USOP8", "Z+": "SO8",
					}},
				},
				Facts: map[string]entities.ExtractedAttributes{
					"DS18B20": sensorFacts("temperature", "1-Wire", ""),
				},
			},
			{
				Name:     "invensense-mpu",
				Types:    []entities.ComponentType{entities.Sensor},
				Expr:     `(?P<series>MPU)-?(?P<rating>6050|6500|9250)`,
				FactsKey: []string{GroupSeries, GroupRating},
				Facts: map[string]entities.ExtractedAttributes{
					"MPU6050": sensorFacts("acceleration,angular-rate", "I2C", "QFN24"),
					"MPU6500": sensorFacts("acceleration,angular-rate", "I2C,SPI", "QFN24"),
					"MPU9250": sensorFacts("acceleration,angular-rate,magnetic-field", "I2C,SPI", "QFN24"),
				},
			},
			{
				Name:     "adi-adxl",
				Types:    []entities.ComponentType{entities.Sensor},
				Expr:     `(?P<series>ADXL)(?P<rating>3\d{2})(?P<suffix>[A-Z0-9-]*)`,
				FactsKey: []string{GroupSeries, GroupRating},
				Facts: map[string]entities.ExtractedAttributes{
					"ADXL345": sensorFacts("acceleration", "I2C,SPI", "LGA14"),
					"ADXL335": sensorFacts("acceleration", "analog", "LFCSP16"),
					"ADXL362": sensorFacts("acceleration", "SPI", "LGA16"),
				},
			},
			logicShape(tiLogicPackages, entities.LogicIC),
			{
				Name:  "linear-regulator",
				Types: []entities.ComponentType{entities.VoltageRegulator},
				Expr:  `(?P<series>LM|AMS|LD|L|UA|MC)(?P<rating>78[LM]?\d{2}|317|1117|2940)(?P<suffix>[A-Z0-9.-]*)`,
				Fields: []Field{
					{Attr: entities.AttrSeries, Group: GroupRating},
					{Attr: entities.AttrVoltageClass, Group: GroupRating, Table: map[string]string{
						"7805": "5", "7809": "9", "7812": "12", "7815": "15", "7833": "3.3",
						"78L05": "5", "78M05": "5",
					}},
					{Attr: entities.AttrVoltageClass, Group: GroupSuffix, From: 1, Rule: RuleVoltage},
				},
				Interchangeable: []string{GroupSeries},
			},
			{
				Name:  "op-amp",
				Types: []entities.ComponentType{entities.OpAmp},
				Expr:  `(?P<series>LM|TL|NE|MCP)(?P<rating>\d{3,4})(?P<pkg>[A-Z0-9/-]*)`,
				Fields: []Field{
					{Attr: entities.AttrPackageCode, Group: GroupPkg},
				},
				Interchangeable: []string{GroupPkg},
			},
			{
				Name:  "abracon-abm",
				Types: []entities.ComponentType{entities.Crystal},
				Expr:  `(?P<series>ABM\d{1,2}[A-Z]?)-(?P<rating>\d+(?:\.\d+)?)MHZ(?P<suffix>(?:-[A-Z0-9]+)*)`,
				Fields: []Field{
					{Attr: entities.AttrValue, Group: GroupRating, Rule: RuleDecimal},
					{Attr: entities.AttrPackageCode, Group: GroupSeries, Table: map[string]string{
						"ABM3": "5.0x3.2", "ABM8": "3.2x2.5", "ABM10": "2.5x2.0", "ABM11": "2.0x1.6",
					}},
				},
			},
			{
				Name:  "ecs-crystal",
				Types: []entities.ComponentType{entities.Crystal},
				Expr:  `(?P<series>ECS)-(?P<rating>\d{2,4})-(?P<load>\d{2})-(?P<suffix>[0-9A-Z-]+)`,
				Fields: []Field{
					{Attr: entities.AttrValueCode, Group: GroupRating},
				},
			},
		},
		Packaging: []entities.SuffixRule{
			{Name: "tape-and-reel", Pattern: `(-TR|/TR|-T&R|-REEL7?)$`},
		},
	}
}
