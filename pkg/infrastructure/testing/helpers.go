// Package testing provides shared BOM fixtures for tests and examples
package testing

import (
	"github.com/vsinha/mpn/pkg/domain/entities"
	"github.com/vsinha/mpn/pkg/infrastructure/repositories/memory"
)

// SampleMPNs covers one part of each supported manufacturer family
var SampleMPNs = []string{
	"RC0603FR-0710KL",
	"CRCW060310K0FKEA",
	"GRM188R71H104KA93D",
	"C0603C104K5RACTU",
	"PSMN3R5-30YLT",
	"BZX84-C5V1",
	"61300211121",
	"STM32F103C8T6",
	"SKY66112-11",
	"SN74HC244DR",
}

// SampleBOMLines builds a controller board BOM:
//   - R10K: Yageo primary with a Vishay second source and a mis-valued 12K
//   - C100N: Murata primary with a Kemet second source
//   - a microcontroller, a Zener and a header without alternates
//   - one MPN no pattern recognizes
func SampleBOMLines() []*entities.BOMLine {
	line := func(mpn, manufacturer string, qty entities.Quantity, find int, category, group string, priority int) *entities.BOMLine {
		l, err := entities.NewBOMLine("PCB-100", entities.PartNumber(mpn), manufacturer, qty, find, group, priority)
		if err != nil {
			panic(err)
		}
		l.Category = category
		return l
	}

	return []*entities.BOMLine{
		line("RC0603FR-0710KL", "Yageo", 4, 10, "resistor", "R10K", 0),
		line("CRCW060310K0FKEA", "Vishay", 4, 10, "resistor", "R10K", 1),
		line("RC0603FR-0712KL", "Yageo", 4, 10, "resistor", "R10K", 2),
		line("GRM188R71H104KA93D", "Murata", 6, 20, "capacitor", "C100N", 0),
		line("C0603C104K5RACTU", "KEMET", 6, 20, "capacitor", "C100N", 1),
		line("STM32F103C8T6", "STMicroelectronics", 1, 30, "microcontroller", "", 0),
		line("BZX84-C5V1", "Nexperia", 1, 40, "discrete", "", 0),
		line("61300211121", "Wurth Elektronik", 1, 50, "connector", "", 0),
		line("XYZZY", "", 1, 60, "", "", 0),
	}
}

// BuildSampleBOM loads SampleBOMLines into a memory repository
func BuildSampleBOM() *memory.BOMRepository {
	lines := SampleBOMLines()
	repo := memory.NewBOMRepository(len(lines))
	if err := repo.LoadBOMLines(lines); err != nil {
		panic(err)
	}
	return repo
}
