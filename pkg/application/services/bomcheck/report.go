package bomcheck

import (
	"time"

	"github.com/google/uuid"

	"github.com/vsinha/mpn/pkg/domain/entities"
)

// Severity of an issue
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Code identifies the kind of issue
type Code string

const (
	CodeCycle                 Code = "cycle"
	CodeDuplicate             Code = "duplicate"
	CodeUnknownMPN            Code = "unknown-mpn"
	CodeInvalidCategory       Code = "invalid-category"
	CodeCategoryMismatch      Code = "category-mismatch"
	CodeMissingCategory       Code = "missing-category"
	CodeMissingPrimary        Code = "missing-primary"
	CodeIncompatibleAlternate Code = "incompatible-alternate"
	CodeLowScore              Code = "low-score"
)

// Line outcomes reported to the Recorder
const (
	OutcomeOK      = "ok"
	OutcomeWarning = "warning"
	OutcomeError   = "error"
)

// Issue is one finding of a BOM check. Line is the 1-based position of the
// offending line in the checked input, or 0 for BOM-level findings.
type Issue struct {
	Severity   Severity            `json:"severity"`
	Code       Code                `json:"code"`
	Line       int                 `json:"line,omitempty"`
	ParentPN   entities.PartNumber `json:"parent_pn,omitempty"`
	MPN        entities.PartNumber `json:"mpn,omitempty"`
	FindNumber int                 `json:"find_number,omitempty"`
	Message    string              `json:"message"`
	Reasons    []string            `json:"reasons,omitempty"`
}

// LineRecord pairs a BOM line with its classification. Index is the
// 0-based position in the checked input.
type LineRecord struct {
	Index  int
	Line   *entities.BOMLine
	Record entities.ComponentRecord
}

func (lr LineRecord) issue(severity Severity, code Code, message string) Issue {
	return Issue{
		Severity:   severity,
		Code:       code,
		Line:       lr.Index + 1,
		ParentPN:   lr.Line.ParentPN,
		MPN:        lr.Line.MPN,
		FindNumber: lr.Line.FindNumber,
		Message:    message,
	}
}

// Selection is the preferred second source of an alternate group
type Selection struct {
	ParentPN  entities.PartNumber `json:"parent_pn"`
	Group     string              `json:"group"`
	Primary   entities.PartNumber `json:"primary"`
	Alternate entities.PartNumber `json:"alternate,omitempty"`
	Priority  int                 `json:"priority,omitempty"`
	Score     float64             `json:"score,omitempty"`
}

// Report is the outcome of one BOM check
type Report struct {
	RunID      uuid.UUID      `json:"run_id"`
	StartedAt  time.Time      `json:"started_at"`
	FinishedAt time.Time      `json:"finished_at"`
	Lines      int            `json:"lines"`
	Classified int            `json:"classified"`
	Coverage   map[string]int `json:"coverage"`
	Errors     []Issue        `json:"errors"`
	Warnings   []Issue        `json:"warnings"`
	Selections []Selection    `json:"selections"`
	Records    []LineRecord   `json:"-"`
}

func newReport(lines int) *Report {
	return &Report{
		RunID:      uuid.New(),
		StartedAt:  time.Now().UTC(),
		Lines:      lines,
		Coverage:   make(map[string]int),
		Errors:     make([]Issue, 0),
		Warnings:   make([]Issue, 0),
		Selections: make([]Selection, 0),
	}
}

// Valid reports whether the check found no errors
func (r *Report) Valid() bool {
	return len(r.Errors) == 0
}

func (r *Report) add(issues ...Issue) {
	for _, issue := range issues {
		if issue.Severity == SeverityError {
			r.Errors = append(r.Errors, issue)
		} else {
			r.Warnings = append(r.Warnings, issue)
		}
	}
}

// lineOutcomes returns the worst outcome of every checked line
func (r *Report) lineOutcomes() []string {
	outcomes := make([]string, r.Lines)
	for i := range outcomes {
		outcomes[i] = OutcomeOK
	}
	for _, issue := range r.Warnings {
		if issue.Line > 0 && issue.Line <= r.Lines && outcomes[issue.Line-1] == OutcomeOK {
			outcomes[issue.Line-1] = OutcomeWarning
		}
	}
	for _, issue := range r.Errors {
		if issue.Line > 0 && issue.Line <= r.Lines {
			outcomes[issue.Line-1] = OutcomeError
		}
	}
	return outcomes
}
