package handlers

import "github.com/vsinha/mpn/pkg/domain/entities"

var molexSeriesNames = map[string]string{
	"002223": "KK254",
	"043650": "MICRO-FIT3.0",
	"043045": "MICRO-FIT3.0-DUAL",
	"053047": "PICOBLADE",
	"053048": "PICOBLADE-RA",
}

var molexFacts = map[string]entities.ExtractedAttributes{
	"KK254":             connectorFacts("2.54", "1"),
	"MICRO-FIT3.0":      connectorFacts("3.00", "1"),
	"MICRO-FIT3.0-DUAL": connectorFacts("3.00", "2"),
	"PICOBLADE":         connectorFacts("1.25", "1"),
	"PICOBLADE-RA":      connectorFacts("1.25", "1"),
}

// molexShape decodes a ten-digit Molex catalog number: series, an optional
// style digit, circuits and a plating or packaging variant
func molexShape(name, series, style string) Shape {
	return Shape{
		Name:  name,
		Types: []entities.ComponentType{entities.ConnectorMolex},
		Expr:  `(?P<series>` + series + `)(?P<style>` + style + `)(?P<pins>\d{2})(?P<variant>\d{1,2})`,
		Fields: []Field{
			{Attr: entities.AttrSeries, Group: GroupSeries, Table: molexSeriesNames},
			{Attr: entities.AttrPinCount, Group: "pins", Rule: RuleNumeric},
			{Attr: entities.AttrRatingToken, Group: "pins", Rule: RuleNumeric},
			{Attr: entities.AttrVariantCode, Group: "variant"},
		},
		Facts:           molexFacts,
		Interchangeable: []string{"variant"},
	}
}

func molexDefinition() Definition {
	return Definition{
		ID:      entities.Molex,
		Name:    "Molex",
		Aliases: []string{"Molex LLC", "Molex Incorporated"},
		Patterns: []PatternDef{
			{Type: entities.ConnectorMolex, Expr: `002223\d{4}`},
			{Type: entities.ConnectorMolex, Expr: `0430(45|65)\d{4}`},
			{Type: entities.ConnectorMolex, Expr: `05304[78]\d{4}`},
		},
		Shapes: []Shape{
			// 0022232021: KK 254, 2 circuits, tin
			molexShape("kk254", `002223`, `\d`),
			molexShape("micro-fit", `0430(?:45|65)`, ``),
			molexShape("picoblade", `05304[78]`, ``),
		},
		Packaging: []entities.SuffixRule{
			// catalog numbers are often written with dashes: 22-23-2021, 43650-0200
			{Name: "kk-dashed", Guard: `^22-23-\d{4}$`, Pattern: `^22-23-(\d{4})$`, Replace: "002223$1"},
			{Name: "dashed", Guard: `^(4304|4365|5304)\d-\d{4}$`, Pattern: `^(\d{5})-(\d{4})$`, Replace: "0$1$2"},
		},
	}
}
