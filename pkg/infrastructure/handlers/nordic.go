package handlers

import "github.com/vsinha/mpn/pkg/domain/entities"

var nordicPackages = map[string]string{
	"QF": "QFN",
	"QI": "QFN",
	"QD": "QFN",
	"CI": "WLCSP",
	"CK": "WLCSP",
	"CA": "WLCSP",
}

var nordicFacts = map[string]entities.ExtractedAttributes{
	"NRF51822": rfFacts("2400-2480", "4", ""),
	"NRF52810": rfFacts("2360-2500", "4", ""),
	"NRF52832": rfFacts("2360-2500", "4", ""),
	"NRF52833": rfFacts("2360-2500", "8", ""),
	"NRF52840": rfFacts("2360-2500", "8", ""),
	"NRF5340":  rfFacts("2360-2500", "3", ""),
	"NRF9160":  rfFacts("698-2200", "23", ""),
	"NRF24L01": rfFacts("2400-2525", "0", ""),
}

func nordicDefinition() Definition {
	return Definition{
		ID:      entities.Nordic,
		Name:    "Nordic Semiconductor",
		Aliases: []string{"Nordic", "Nordic Semi"},
		Patterns: []PatternDef{
			{Type: entities.RFICNordic, Expr: `NRF5[1-4]\d{2,3}`},
			{Type: entities.RFICNordic, Expr: `NRF91\d{2}`},
			{Type: entities.RFICNordic, Expr: `NRF24L01`},
		},
		Shapes: []Shape{
			{
				// NRF52832-QFAA: QFN, 512 KB variant AA
				Name:  "nrf-soc",
				Types: []entities.ComponentType{entities.RFICNordic},
				Expr:  `(?P<series>NRF5[1-4]|NRF91)(?P<rating>\d{2,3})(?:-(?P<pkg>[A-Z]{2})(?P<variant>[0-9A-Z]{2}))?(?P<suffix>[0-9A-Z-]*)`,
				Fields: []Field{
					{Attr: entities.AttrSeries, Group: GroupSeries, Append: []string{GroupRating}},
					{Attr: entities.AttrPackageCode, Group: GroupPkg, Table: nordicPackages},
					{Attr: entities.AttrVariantCode, Group: "variant"},
				},
				Facts:           nordicFacts,
				Interchangeable: []string{GroupPkg, "variant", GroupSuffix},
			},
			{
				Name:  "nrf24",
				Types: []entities.ComponentType{entities.RFICNordic},
				Expr:  `(?P<series>NRF24L01)(?P<rating>\+|P)?(?P<suffix>-?[0-9A-Z]*)`,
				Facts: nordicFacts,
			},
		},
		Packaging: []entities.SuffixRule{
			{Name: "nordic-reel", Guard: `^NRF`, Pattern: `-R7?$`},
		},
	}
}
