package handlers

import "github.com/vsinha/mpn/pkg/domain/entities"

var skyworksFacts = map[string]entities.ExtractedAttributes{
	"SKY66112": rfFacts("2400-2483.5", "20", "12"),
	"SKY66114": rfFacts("2400-2483.5", "21", "12"),
	"SKY65404": rfFacts("4900-5900", "", "13"),
	"SKY65017": rfFacts("50-6000", "19", "20"),
	"SKY13317": rfFacts("20-6000", "", ""),
	"SE2431L":  rfFacts("2400-2483.5", "20", "25"),
	"SE2435L":  rfFacts("860-930", "30", "16"),
}

func skyworksDefinition() Definition {
	return Definition{
		ID:      entities.Skyworks,
		Name:    "Skyworks",
		Aliases: []string{"Skyworks Solutions", "Skyworks Solutions Inc"},
		Patterns: []PatternDef{
			{Type: entities.RFICSkyworks, Expr: `SKY\d{5}`},
			{Type: entities.RFICSkyworks, Expr: `SE\d{4}[A-Z]`},
		},
		Shapes: []Shape{
			{
				// SKY66112-11: front end module, build option 11
				Name:  "sky",
				Types: []entities.ComponentType{entities.RFICSkyworks},
				Expr:  `(?P<series>SKY\d{5})(?:-(?P<rating>\d{2,3}))?(?P<suffix>[A-Z]*)`,
				Facts: skyworksFacts,
			},
			{
				Name:  "se-fem",
				Types: []entities.ComponentType{entities.RFICSkyworks},
				Expr:  `(?P<series>SE\d{4}[A-Z])(?P<suffix>-?[0-9A-Z]*)`,
				Facts: skyworksFacts,
			},
		},
	}
}
