package main

import (
	"context"
	"fmt"

	"github.com/vsinha/mpn/pkg/application/services/bomcheck"
	"github.com/vsinha/mpn/pkg/domain/entities"
	fixtures "github.com/vsinha/mpn/pkg/infrastructure/testing"
	"github.com/vsinha/mpn/pkg/mpn"
)

func main() {
	ctx := context.Background()

	// Classify a handful of parts with the process-wide engine
	fmt.Println("🔎 Classifying sample MPNs...")
	for _, part := range fixtures.SampleMPNs {
		componentType := mpn.Classify(part)
		attrs := mpn.ExtractAttributes(part, "")
		fmt.Printf("  %-20s %-28s %v\n", part, componentType, attrs)
	}
	fmt.Println()

	// Compare a required part against candidate replacements
	required := "RC0603FR-0710KL"
	candidates := []string{"CRCW060310K0FKEA", "RC0603JR-0710KL", "RC0603FR-0712KL"}

	fmt.Printf("🔁 Replacements for %s:\n", required)
	for _, ranked := range mpn.Default().RankReplacements(required, candidates, entities.Resistor) {
		mark := "✅"
		if !ranked.Verdict.Compatible {
			mark = "❌"
		}
		fmt.Printf("  %s %-20s score %.2f\n", mark, ranked.Record.Normalized, ranked.Verdict.Score)
		for _, reason := range ranked.Verdict.Reasons {
			fmt.Printf("      %s\n", reason)
		}
	}
	fmt.Println()

	// Check a BOM with alternates
	policy := entities.DefaultBOMPolicy()
	policy.RequiredCategories = []entities.Category{entities.CategoryResistor, entities.CategoryCapacitor}

	checker := bomcheck.NewChecker(mpn.Default())
	report, err := checker.CheckRepository(ctx, fixtures.BuildSampleBOM(), policy)
	if err != nil {
		fmt.Printf("❌ BOM check failed: %v\n", err)
		return
	}

	fmt.Println("📋 BOM Check:")
	fmt.Printf("  Lines: %d (classified %d)\n", report.Lines, report.Classified)
	for _, issue := range report.Errors {
		fmt.Printf("  ❌ line %d %s: %s\n", issue.Line, issue.Code, issue.Message)
	}
	for _, issue := range report.Warnings {
		fmt.Printf("  ⚠️  line %d %s: %s\n", issue.Line, issue.Code, issue.Message)
	}
	for _, s := range report.Selections {
		fmt.Printf("  🔀 %s: %s -> %s\n", s.Group, s.Primary, s.Alternate)
	}
}
