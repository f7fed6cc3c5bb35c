// Package output renders classification results and BOM check reports
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"

	"github.com/vsinha/mpn/pkg/application/services/bomcheck"
	"github.com/vsinha/mpn/pkg/domain/entities"
	"github.com/vsinha/mpn/pkg/infrastructure/events"
)

// Config holds configuration for output generation
type Config struct {
	Format  string
	Verbose bool
	Elapsed time.Duration
}

// Record is the rendered form of a classified MPN
type Record struct {
	MPN          string            `json:"mpn"`
	Normalized   string            `json:"normalized"`
	Type         string            `json:"type"`
	Category     string            `json:"category"`
	Manufacturer string            `json:"manufacturer,omitempty"`
	Attributes   map[string]string `json:"attributes"`
}

// NewRecord converts a component record for rendering
func NewRecord(r entities.ComponentRecord) Record {
	attrs := make(map[string]string, len(r.Attributes))
	for _, name := range r.Attributes.Names() {
		attrs[name] = r.Attributes[name]
	}
	category := ""
	if r.Known() {
		category = r.Type.Category().String()
	}
	return Record{
		MPN:          string(r.MPN),
		Normalized:   r.Normalized,
		Type:         r.Type.String(),
		Category:     category,
		Manufacturer: r.Manufacturer.String(),
		Attributes:   attrs,
	}
}

// WriteRecords writes classified MPNs in the configured format
func WriteRecords(w io.Writer, records []entities.ComponentRecord, config Config) error {
	switch config.Format {
	case "text":
		return writeRecordsText(w, records, config)
	case "json":
		views := make([]Record, len(records))
		for i, r := range records {
			views[i] = NewRecord(r)
		}
		return writeJSON(w, views)
	case "csv":
		return writeRecordsCSV(w, records)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

// WriteReport writes a BOM check report in the configured format
func WriteReport(w io.Writer, report *bomcheck.Report, config Config) error {
	switch config.Format {
	case "text":
		return writeReportText(w, report, config)
	case "json":
		return writeJSON(w, report)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

// WriteEvents writes an event stream in the configured format
func WriteEvents(w io.Writer, stream []events.Event, config Config) error {
	switch config.Format {
	case "text":
		fmt.Fprintf(w, "Events:\n")
		for _, e := range stream {
			fmt.Fprintf(w, "  %3d %s %s\n", e.Version(), e.Timestamp().Format(time.RFC3339), e.Type())
		}
		return nil
	case "json":
		return writeJSON(w, stream)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

// WriteMetrics writes gathered metric families in the Prometheus text format
func WriteMetrics(w io.Writer, families []*dto.MetricFamily) error {
	encoder := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, family := range families {
		if err := encoder.Encode(family); err != nil {
			return fmt.Errorf("failed to encode metric family %s: %w", family.GetName(), err)
		}
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON output: %w", err)
	}
	return nil
}

func formatAttributes(attrs entities.ExtractedAttributes) string {
	names := attrs.Names()
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = name + "=" + attrs[name]
	}
	return strings.Join(parts, " ")
}

func writeRecordsText(w io.Writer, records []entities.ComponentRecord, config Config) error {
	fmt.Fprintf(w, "%-24s %-32s %-14s %s\n", "MPN", "Type", "Manufacturer", "Attributes")
	fmt.Fprintf(w, "%-24s %-32s %-14s %s\n",
		"------------------------", "--------------------------------", "--------------", "----------")

	unknown := 0
	for _, r := range records {
		if !r.Known() {
			unknown++
		}
		fmt.Fprintf(w, "%-24s %-32s %-14s %s\n",
			r.MPN, r.Type, r.Manufacturer, formatAttributes(r.Attributes))
	}

	if config.Verbose {
		fmt.Fprintf(w, "\nClassified: %d/%d\n", len(records)-unknown, len(records))
		fmt.Fprintf(w, "Elapsed: %v\n", config.Elapsed)
	}
	return nil
}

func writeRecordsCSV(w io.Writer, records []entities.ComponentRecord) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"mpn", "normalized", "type", "manufacturer", "attributes"}); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{string(r.MPN), r.Normalized, r.Type.String(), r.Manufacturer.String(), formatAttributes(r.Attributes)}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func writeIssues(w io.Writer, title string, issues []bomcheck.Issue) {
	if len(issues) == 0 {
		return
	}
	fmt.Fprintf(w, "%s:\n", title)
	fmt.Fprintf(w, "%-6s %-12s %-24s %-24s %s\n", "Line", "Parent", "MPN", "Code", "Message")
	fmt.Fprintf(w, "%-6s %-12s %-24s %-24s %s\n",
		"------", "------------", "------------------------", "------------------------", "-------")
	for _, issue := range issues {
		line := "-"
		if issue.Line > 0 {
			line = fmt.Sprintf("%d", issue.Line)
		}
		fmt.Fprintf(w, "%-6s %-12s %-24s %-24s %s\n", line, issue.ParentPN, issue.MPN, issue.Code, issue.Message)
		for _, reason := range issue.Reasons {
			fmt.Fprintf(w, "%-6s %-12s %-24s %-24s   %s\n", "", "", "", "", reason)
		}
	}
	fmt.Fprintln(w)
}

func writeReportText(w io.Writer, report *bomcheck.Report, config Config) error {
	fmt.Fprintf(w, "BOM Check %s\n", report.RunID)
	fmt.Fprintf(w, "====================\n\n")

	fmt.Fprintf(w, "Lines: %d\n", report.Lines)
	fmt.Fprintf(w, "Classified: %d\n", report.Classified)
	fmt.Fprintf(w, "Errors: %d\n", len(report.Errors))
	fmt.Fprintf(w, "Warnings: %d\n\n", len(report.Warnings))

	writeIssues(w, "Errors", report.Errors)
	writeIssues(w, "Warnings", report.Warnings)

	if len(report.Selections) > 0 {
		fmt.Fprintf(w, "Alternate Selections:\n")
		fmt.Fprintf(w, "%-12s %-10s %-24s %-24s %s\n", "Parent", "Group", "Primary", "Alternate", "Score")
		fmt.Fprintf(w, "%-12s %-10s %-24s %-24s %s\n",
			"------------", "----------", "------------------------", "------------------------", "-----")
		for _, s := range report.Selections {
			alternate, score := string(s.Alternate), fmt.Sprintf("%.2f", s.Score)
			if alternate == "" {
				alternate, score = "(none)", "-"
			}
			fmt.Fprintf(w, "%-12s %-10s %-24s %-24s %s\n", s.ParentPN, s.Group, s.Primary, alternate, score)
		}
		fmt.Fprintln(w)
	}

	if config.Verbose {
		fmt.Fprintf(w, "Coverage:\n")
		for _, category := range sortedKeys(report.Coverage) {
			fmt.Fprintf(w, "  %-16s %d\n", category, report.Coverage[category])
		}
		fmt.Fprintf(w, "Elapsed: %v\n", report.FinishedAt.Sub(report.StartedAt))
	}

	if report.Valid() {
		fmt.Fprintln(w, "Result: PASS")
	} else {
		fmt.Fprintln(w, "Result: FAIL")
	}
	return nil
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
