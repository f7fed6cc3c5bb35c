package handlers

import "github.com/vsinha/mpn/pkg/domain/entities"

var nexperiaSmallSignalPackages = map[string]string{
	"PMBT": "SOT23",
	"PMST": "SOT323",
	"PZT":  "SOT223",
}

// nexperiaBCPackages keys on the letters after the gain group
var nexperiaBCPackages = map[string]string{
	"":   "SOT23",
	"W":  "SOT323",
	"T":  "SOT416",
	"M":  "SOT883",
	"QA": "DFN1010",
}

// nexperiaPowerPackages keys on the PSMN package letter
var nexperiaPowerPackages = map[string]string{
	"Y": "LFPAK56",
	"B": "D2PAK",
	"P": "TO220",
	"E": "I2PAK",
	"L": "LFPAK33",
	"M": "LFPAK33",
}

// nexperiaGateLevels keys on the letter after the PSMN package letter
var nexperiaGateLevels = map[string]string{
	"L": "logic-level",
	"S": "standard-level",
}

var nexperiaLogicPackages = map[string]string{
	"N":  "DIP",
	"D":  "SOIC",
	"PW": "TSSOP",
	"DB": "SSOP",
	"BQ": "DHVQFN",
	"GW": "SOT353",
	"GV": "SOT753",
}

func nexperiaDefinition() Definition {
	return Definition{
		ID:      entities.Nexperia,
		Name:    "Nexperia",
		Aliases: []string{"Nexperia B.V.", "Nexperia USA"},
		Patterns: []PatternDef{
			{Type: entities.TransistorNexperia, Expr: `PMBT\d{4}`},
			{Type: entities.TransistorNexperia, Expr: `PMST\d{4}`},
			{Type: entities.TransistorNexperia, Expr: `PZT\d{4}`},
			{Type: entities.TransistorNexperia, Expr: `BC8[0-5]\d`},
			{Type: entities.MOSFETNexperia, Expr: `PSMN[0-9R]+-\d{2,3}[A-Z]+`},
			{Type: entities.MOSFETNexperia, Expr: `PMV\d{2,3}[A-Z]{2}`},
			{Type: entities.MOSFETNexperia, Expr: `BUK\d{4}-\d{2,3}`},
			{Type: entities.DiodeNexperia, Expr: `BZX(84|79|585|384)-?[A-D]\d+V\d*`},
			{Type: entities.LogicNexperia, Expr: `74(AHCT|AHC|HCT|HC|LVC|LV|AUP|LVT|ALVC|ABT)\d`},
		},
		Shapes: []Shape{
			{
				Name:  "small-signal-transistor",
				Types: []entities.ComponentType{entities.TransistorNexperia},
				Expr:  `(?P<series>PMBT|PMST|PZT)(?P<rating>\d{4}[A-Z]?)(?P<suffix>[A-Z]*)`,
				Fields: []Field{
					{Attr: entities.AttrPackageCode, Group: GroupSeries, Table: nexperiaSmallSignalPackages},
				},
			},
			{
				Name:  "bc-transistor",
				Types: []entities.ComponentType{entities.TransistorNexperia},
				Expr:  `(?P<series>BC8[0-5]\d)(?P<rating>[A-C]?)(?P<pkg>[A-Z]*)`,
				Fields: []Field{
					{Attr: entities.AttrPackageCode, Group: GroupPkg, Table: nexperiaBCPackages},
				},
			},
			{
				// PSMN3R5-30YLT: RDS(on) 3.5 mOhm, 30 V, LFPAK56 logic level
				Name:  "psmn-power-mosfet",
				Types: []entities.ComponentType{entities.MOSFETNexperia},
				Expr:  `(?P<series>PSMN)(?P<rating>(?P<rds>\d+R\d+|\d+)-(?P<vds>\d{2,3}))(?P<pkg>[A-Z])(?P<level>[LS]?)(?P<suffix>[A-Z]*)`,
				Fields: []Field{
					{Attr: entities.AttrPackageCode, Group: GroupPkg, Table: nexperiaPowerPackages},
					{Attr: entities.AttrVoltageClass, Group: "vds", Rule: RuleNumeric},
					{Attr: entities.AttrVariantCode, Group: "level", Table: nexperiaGateLevels},
				},
				Interchangeable: []string{GroupSuffix},
			},
			{
				Name:  "pmv-small-mosfet",
				Types: []entities.ComponentType{entities.MOSFETNexperia},
				Expr:  `(?P<series>PMV)(?P<rating>\d{2,3}[A-Z]{2})(?P<suffix>\d?)`,
				Fields: []Field{
					{Attr: entities.AttrPackageCode, Group: GroupSeries, Table: map[string]string{"PMV": "SOT23"}},
				},
			},
			{
				Name:  "buk-automotive-mosfet",
				Types: []entities.ComponentType{entities.MOSFETNexperia},
				Expr:  `(?P<series>BUK\d)(?P<rating>\d{3}-(?P<vds>\d{2,3}))(?P<suffix>[A-Z]?)`,
				Fields: []Field{
					{Attr: entities.AttrVoltageClass, Group: "vds", Rule: RuleNumeric},
				},
			},
			bzxShape(entities.DiodeNexperia),
			logicShape(nexperiaLogicPackages, entities.LogicNexperia),
		},
		Packaging: []entities.SuffixRule{
			{Name: "12nc-packing", Guard: `^(PMBT|PMST|PZT|BC8|PSMN|PMV|BUK|BZX|74)`, Pattern: `,\d{3}$`},
		},
	}
}
