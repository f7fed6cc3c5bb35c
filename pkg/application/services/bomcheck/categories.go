package bomcheck

import (
	"fmt"

	"github.com/vsinha/mpn/pkg/domain/entities"
)

// ValidateCategories checks each line's classification against its declared
// category and reports required categories no classified line covers.
// Unclassified MPNs are reported as warnings.
func ValidateCategories(records []LineRecord, required []entities.Category) []Issue {
	issues := make([]Issue, 0)
	covered := coverage(records)

	for _, lr := range records {
		if !lr.Record.Known() {
			issues = append(issues, lr.issue(SeverityWarning, CodeUnknownMPN,
				fmt.Sprintf("no pattern matches %s", lr.Line.MPN)))
		}

		if lr.Line.Category == "" {
			continue
		}
		declared, ok := entities.ParseCategory(lr.Line.Category)
		if !ok {
			issues = append(issues, lr.issue(SeverityError, CodeInvalidCategory,
				fmt.Sprintf("unknown category %q", lr.Line.Category)))
			continue
		}
		if !lr.Record.Known() {
			continue
		}
		if actual := lr.Record.Type.Category(); actual != declared {
			issues = append(issues, lr.issue(SeverityError, CodeCategoryMismatch,
				fmt.Sprintf("declared %s but classified as %s (%s)", declared, actual, lr.Record.Type)))
		}
	}

	for _, category := range required {
		if covered[category.String()] == 0 {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Code:     CodeMissingCategory,
				Message:  fmt.Sprintf("no line covers required category %s", category),
			})
		}
	}

	return issues
}

// coverage counts classified lines per category
func coverage(records []LineRecord) map[string]int {
	counts := make(map[string]int)
	for _, lr := range records {
		if lr.Record.Known() {
			counts[lr.Record.Type.Category().String()]++
		}
	}
	return counts
}
