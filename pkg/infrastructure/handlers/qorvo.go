package handlers

import "github.com/vsinha/mpn/pkg/domain/entities"

var qorvoFacts = map[string]entities.ExtractedAttributes{
	"RFFM6204":  rfFacts("2400-2500", "20", "12"),
	"QPF4206":   rfFacts("2400-2500", "22", "32"),
	"QPL9503":   rfFacts("600-4200", "", "22"),
	"TQP3M9009": rfFacts("50-4000", "22", "20"),
}

func qorvoDefinition() Definition {
	return Definition{
		ID:      entities.Qorvo,
		Name:    "Qorvo",
		Aliases: []string{"Qorvo Inc", "RFMD", "TriQuint"},
		Patterns: []PatternDef{
			{Type: entities.RFICQorvo, Expr: `QP[ALF]\d{4}`},
			{Type: entities.RFICQorvo, Expr: `RFFM\d{4}`},
			{Type: entities.RFICQorvo, Expr: `TQP\d`},
		},
		Shapes: []Shape{
			{
				Name:  "qorvo-rf",
				Types: []entities.ComponentType{entities.RFICQorvo},
				Expr:  `(?P<series>QPA|QPL|QPF|RFFM|TQP)(?P<rating>\d[0-9A-Z]{3,6})`,
				Fields: []Field{
					{Attr: entities.AttrSeries, Group: GroupSeries, Append: []string{GroupRating}},
				},
				Facts: qorvoFacts,
			},
		},
		Packaging: []entities.SuffixRule{
			{Name: "qorvo-reel", Guard: `^(QP|RFFM|TQP)`, Pattern: `(TR7|TR13|SR|SQ)$`},
		},
	}
}
