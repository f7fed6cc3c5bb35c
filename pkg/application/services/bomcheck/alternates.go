package bomcheck

import (
	"fmt"
	"sort"

	"github.com/vsinha/mpn/pkg/domain/entities"
)

// AlternateGroup is the set of lines of one parent sharing a group name
type AlternateGroup struct {
	ParentPN entities.PartNumber
	Name     string
	Lines    []LineRecord
}

// GroupAlternates collects alternate groups in order of first appearance.
// Lines without a group are skipped.
func GroupAlternates(records []LineRecord) []AlternateGroup {
	index := make(map[string]int)
	groups := make([]AlternateGroup, 0)

	for _, lr := range records {
		if !lr.Line.IsAlternate() {
			continue
		}
		key := fmt.Sprintf("%s|%s", lr.Line.ParentPN, lr.Line.AlternateGroup)
		i, exists := index[key]
		if !exists {
			i = len(groups)
			index[key] = i
			groups = append(groups, AlternateGroup{ParentPN: lr.Line.ParentPN, Name: lr.Line.AlternateGroup})
		}
		groups[i].Lines = append(groups[i].Lines, lr)
	}

	return groups
}

// SelectByPriority returns the line with the lowest priority number.
// Ties keep input order. Returns false for an empty group.
// Priority rules: 0 = standard/primary, 1+ = alternates with lower number = higher priority
func SelectByPriority(lines []LineRecord) (LineRecord, bool) {
	if len(lines) == 0 {
		return LineRecord{}, false
	}

	sorted := make([]LineRecord, len(lines))
	copy(sorted, lines)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Line.Priority < sorted[j].Line.Priority
	})

	return sorted[0], true
}

// ValidateAlternates compares every alternate with its group's primary. An
// alternate that is not interchangeable is an error carrying the verdict
// reasons; one scoring below minScore is a warning. Unclassified lines are
// not compared.
func (c *Checker) ValidateAlternates(records []LineRecord, minScore float64) []Issue {
	issues := make([]Issue, 0)

	for _, group := range GroupAlternates(records) {
		primary, _ := SelectByPriority(group.Lines)
		if primary.Line.Priority != 0 {
			issues = append(issues, primary.issue(SeverityWarning, CodeMissingPrimary,
				fmt.Sprintf("alternate group %s has no priority 0 line, comparing against priority %d",
					group.Name, primary.Line.Priority)))
		}

		for _, alt := range group.Lines {
			if alt.Index == primary.Index || !primary.Record.Known() || !alt.Record.Known() {
				continue
			}

			verdict := c.classifier.Compare(primary.Record, alt.Record)
			switch {
			case !verdict.Compatible:
				issue := alt.issue(SeverityError, CodeIncompatibleAlternate,
					fmt.Sprintf("%s is not interchangeable with primary %s", alt.Line.MPN, primary.Line.MPN))
				issue.Reasons = verdict.Reasons
				issues = append(issues, issue)
			case verdict.Score < minScore:
				issue := alt.issue(SeverityWarning, CodeLowScore,
					fmt.Sprintf("score %.2f against primary %s is below %.2f", verdict.Score, primary.Line.MPN, minScore))
				issue.Reasons = verdict.Reasons
				issues = append(issues, issue)
			}
		}
	}

	return issues
}

// SelectBestAlternate picks the preferred second source for primary:
// compatible classified alternates only, by priority, then score, then MPN.
// Returns false when no alternate qualifies.
func (c *Checker) SelectBestAlternate(primary LineRecord, alternates []LineRecord) (LineRecord, entities.CompatibilityVerdict, bool) {
	type scored struct {
		line    LineRecord
		verdict entities.CompatibilityVerdict
	}

	candidates := make([]scored, 0, len(alternates))
	for _, alt := range alternates {
		if alt.Index == primary.Index || !alt.Record.Known() {
			continue
		}
		verdict := c.classifier.Compare(primary.Record, alt.Record)
		if verdict.Compatible {
			candidates = append(candidates, scored{line: alt, verdict: verdict})
		}
	}
	if len(candidates) == 0 {
		return LineRecord{}, entities.CompatibilityVerdict{}, false
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.line.Line.Priority != b.line.Line.Priority {
			return a.line.Line.Priority < b.line.Line.Priority
		}
		if a.verdict.Score != b.verdict.Score {
			return a.verdict.Score > b.verdict.Score
		}
		return a.line.Record.Normalized < b.line.Record.Normalized
	})

	best := candidates[0]
	return best.line, best.verdict, true
}

// selections returns one Selection per alternate group with a primary
func (c *Checker) selections(records []LineRecord) []Selection {
	selections := make([]Selection, 0)

	for _, group := range GroupAlternates(records) {
		primary, _ := SelectByPriority(group.Lines)
		selection := Selection{
			ParentPN: group.ParentPN,
			Group:    group.Name,
			Primary:  primary.Line.MPN,
		}
		if primary.Record.Known() {
			if alt, verdict, ok := c.SelectBestAlternate(primary, group.Lines); ok {
				selection.Alternate = alt.Line.MPN
				selection.Priority = alt.Line.Priority
				selection.Score = verdict.Score
			}
		}
		selections = append(selections, selection)
	}

	return selections
}
