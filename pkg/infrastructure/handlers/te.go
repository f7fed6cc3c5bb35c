package handlers

import "github.com/vsinha/mpn/pkg/domain/entities"

func teDefinition() Definition {
	return Definition{
		ID:      entities.TEConnectivity,
		Name:    "TE Connectivity",
		Aliases: []string{"TE", "Tyco Electronics", "AMP"},
		Patterns: []PatternDef{
			{Type: entities.ConnectorTE, Expr: `(\d{1,2}-)?6404(45|56)-\d$`},
		},
		Shapes: []Shape{
			{
				// 1-640456-0 is the ten position MTA-100 header: the prefix
				// carries the tens digit of the circuit count
				Name:  "mta-100",
				Types: []entities.ComponentType{entities.ConnectorTE},
				Expr:  `(?:(?P<decade>\d{1,2})-)?(?P<series>640456|640445)-(?P<units>\d)`,
				Fields: []Field{
					{Attr: entities.AttrPinCount, Group: "decade", Append: []string{"units"}, Rule: RuleNumeric},
					{Attr: entities.AttrRatingToken, Group: "decade", Append: []string{"units"}, Rule: RuleNumeric},
				},
				Facts: map[string]entities.ExtractedAttributes{
					"640456": connectorFacts("2.54", "1"),
					"640445": connectorFacts("2.54", "1"),
				},
			},
		},
	}
}
