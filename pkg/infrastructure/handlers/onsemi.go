package handlers

import "github.com/vsinha/mpn/pkg/domain/entities"

var onsemiMOSFETPackages = map[string]string{
	"NTR":   "SOT23",
	"NTD":   "DPAK",
	"NTB":   "D2PAK",
	"NTS":   "SC70",
	"NTMFS": "SO8FL",
	"FDN":   "SOT23",
	"FDS":   "SO8",
	"FDD":   "DPAK",
	"FDP":   "TO220",
	"FDMS":  "POWER56",
}

var mmbtPackages = map[string]string{
	"":   "SOT23",
	"L":  "SOT23",
	"W":  "SOT323",
	"WT": "SOT323",
}

var mbrPackages = map[string]string{
	"MBRS": "SMB",
	"MBRA": "SMA",
	"MBRD": "DPAK",
	"MBR":  "DO41",
}

// mbrVoltages maps the MBR current/voltage digits to the reverse voltage
var mbrVoltages = map[string]string{
	"120":  "20",
	"130":  "30",
	"140":  "40",
	"320":  "20",
	"340":  "40",
	"360":  "60",
	"0520": "20",
	"0530": "30",
}

// mmszVoltages maps the 1N52xx-derived device number to the Zener voltage
var mmszVoltages = map[string]string{
	"5221": "2V4",
	"5226": "3V3",
	"5231": "5V1",
	"5232": "5V6",
	"5235": "6V8",
	"5240": "10V",
	"5242": "12V",
	"5245": "15V",
	"5248": "18V",
	"5252": "24V",
}

var onsemiLogicPackages = map[string]string{
	"N":   "DIP",
	"AN":  "DIP",
	"D":   "SOIC",
	"AD":  "SOIC",
	"DT":  "TSSOP",
	"ADT": "TSSOP",
}

var ncpPackages = map[string]string{
	"ST": "SOT223",
	"DT": "DPAK",
	"SN": "TSOP5",
}

func onsemiDefinition() Definition {
	return Definition{
		ID:      entities.Onsemi,
		Name:    "onsemi",
		Aliases: []string{"ON Semiconductor", "ON Semi", "Fairchild", "Fairchild Semiconductor"},
		Patterns: []PatternDef{
			{Type: entities.MOSFETOnsemi, Expr: `NT[RDBS]\d{4}`},
			{Type: entities.MOSFETOnsemi, Expr: `NTMFS\d`},
			{Type: entities.MOSFETOnsemi, Expr: `FD[NSDP]\d{3,4}`},
			{Type: entities.MOSFETOnsemi, Expr: `FDMS\d`},
			{Type: entities.Transistor, Expr: `MMBTA?\d{2,4}`},
			{Type: entities.Diode, Expr: `MBR[SAD]?\d{3,4}`},
			{Type: entities.Diode, Expr: `MMSZ5\d{3}`},
			{Type: entities.LogicIC, Expr: `MC74(` + logicFamilies + `)\d`},
			{Type: entities.VoltageRegulator, Expr: `NCP\d{3,4}`},
		},
		Shapes: []Shape{
			{
				Name:  "power-mosfet",
				Types: []entities.ComponentType{entities.MOSFETOnsemi},
				Expr:  `(?P<series>NTR|NTD|NTB|NTS|NTMFS|FDN|FDS|FDD|FDP|FDMS)(?P<rating>\d[0-9A-Z]?\d{1,3})(?P<suffix>[A-Z]*)`,
				Fields: []Field{
					{Attr: entities.AttrPackageCode, Group: GroupSeries, Table: onsemiMOSFETPackages},
				},
			},
			{
				Name:  "mmbt",
				Types: []entities.ComponentType{entities.Transistor},
				Expr:  `(?P<series>MMBTA|MMBT)(?P<rating>\d{2,4}A?)(?P<pkg>[A-Z]*)`,
				Fields: []Field{
					{Attr: entities.AttrPackageCode, Group: GroupPkg, Table: mmbtPackages},
				},
			},
			{
				Name:  "schottky",
				Types: []entities.ComponentType{entities.Diode},
				Expr:  `(?P<series>MBRS|MBRA|MBRD|MBR)(?P<rating>\d{3,4})(?P<suffix>[A-Z]*)`,
				Fields: []Field{
					{Attr: entities.AttrPackageCode, Group: GroupSeries, Table: mbrPackages},
					{Attr: entities.AttrVoltageClass, Group: GroupRating, Table: mbrVoltages},
				},
			},
			{
				// MMSZ5231B: 5.1 V, 5 %
				Name:  "mmsz-zener",
				Types: []entities.ComponentType{entities.Diode},
				Expr:  `(?P<series>MMSZ)(?P<rating>5\d{3}[A-Z]?)(?P<suffix>[A-Z]*)`,
				Fields: []Field{
					{Attr: entities.AttrVoltageClass, Group: GroupRating, To: 4, Table: mmszVoltages},
					{Attr: entities.AttrTolerance, Group: GroupRating, From: 4, Table: map[string]string{"B": "5", "C": "2"}},
					{Attr: entities.AttrPackageCode, Group: GroupSeries, Table: map[string]string{"MMSZ": "SOD123"}},
				},
			},
			logicShape(onsemiLogicPackages, entities.LogicIC),
			{
				// NCP1117ST33: SOT-223, 3.3 V
				Name:  "ncp-regulator",
				Types: []entities.ComponentType{entities.VoltageRegulator},
				Expr:  `(?P<series>NCP)(?P<rating>\d{3,4})(?P<pkg>[A-Z]{1,3})(?P<output>\d{2,3})?`,
				Fields: []Field{
					{Attr: entities.AttrVoltageClass, Group: "output", Table: tiFixedOutputs},
					{Attr: entities.AttrPackageCode, Group: GroupPkg, Table: ncpPackages},
				},
				Interchangeable: []string{GroupPkg},
			},
		},
		Packaging: []entities.SuffixRule{
			{
				Name:    "onsemi-reel",
				Guard:   `^(MMBT|MMBF|MBR|BC|NTR|NTD|NTB|NTS|NTMFS|MC74|MC33|NCP|NSV|BAT|MMSZ|FDN|FDS|FDD|FDMS)`,
				Pattern: `(T[13]G|R2G|G)$`,
			},
		},
	}
}
