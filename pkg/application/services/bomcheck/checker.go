// Package bomcheck validates a bill of materials with the MPN engine:
// structure, declared categories and the interchangeability of alternates.
package bomcheck

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/vsinha/mpn/pkg/domain/entities"
	"github.com/vsinha/mpn/pkg/domain/repositories"
	"github.com/vsinha/mpn/pkg/infrastructure/events"
)

// Classifier describes and compares MPNs. *mpn.Engine satisfies it.
type Classifier interface {
	Describe(mpn, manufacturerHint string) entities.ComponentRecord
	Compare(required, candidate entities.ComponentRecord) entities.CompatibilityVerdict
}

// Recorder receives one outcome per checked line
type Recorder interface {
	RecordBOMLine(outcome string)
}

type nopRecorder struct{}

func (nopRecorder) RecordBOMLine(string) {}

// Option configures a Checker
type Option func(*Checker)

// WithLogger sets the checker's logger
func WithLogger(logger *zap.Logger) Option {
	return func(c *Checker) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithRecorder sets the checker's metrics recorder
func WithRecorder(recorder Recorder) Option {
	return func(c *Checker) {
		if recorder != nil {
			c.recorder = recorder
		}
	}
}

// Checker validates BOM lines
type Checker struct {
	classifier Classifier
	logger     *zap.Logger
	recorder   Recorder
	events     events.EventStore
}

// NewChecker creates a checker backed by classifier
func NewChecker(classifier Classifier, opts ...Option) *Checker {
	c := &Checker{
		classifier: classifier,
		logger:     zap.NewNop(),
		recorder:   nopRecorder{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Check classifies every line and validates the BOM against policy. The
// returned error is non-nil only for an invalid policy or a canceled
// context; findings are reported in the Report.
func (c *Checker) Check(ctx context.Context, lines []*entities.BOMLine, policy entities.BOMPolicy) (*Report, error) {
	if err := policy.Validate(); err != nil {
		return nil, fmt.Errorf("invalid BOM policy: %w", err)
	}

	report := newReport(len(lines))
	logger := c.logger.With(zap.String("run_id", report.RunID.String()))
	logger.Debug("BOM check started", zap.Int("lines", len(lines)), zap.Int("workers", policy.Workers))
	c.publish(report, CheckStartedEvent, CheckStarted{Lines: len(lines), Policy: policy})

	records, err := c.describeLines(ctx, lines, policy.Workers)
	if err != nil {
		return nil, err
	}
	report.Records = records
	report.Coverage = coverage(records)
	for _, n := range report.Coverage {
		report.Classified += n
	}

	report.add(ValidateStructure(records)...)

	categoryIssues := ValidateCategories(records, policy.RequiredCategories)
	if policy.FailOnUnknown {
		for i := range categoryIssues {
			if categoryIssues[i].Code == CodeUnknownMPN {
				categoryIssues[i].Severity = SeverityError
			}
		}
	}
	report.add(categoryIssues...)

	report.add(c.ValidateAlternates(records, policy.MinScore)...)
	report.Selections = c.selections(records)

	for _, outcome := range report.lineOutcomes() {
		c.recorder.RecordBOMLine(outcome)
	}
	report.FinishedAt = time.Now().UTC()
	c.publishResults(report)

	logger.Info("BOM check finished",
		zap.Int("lines", report.Lines),
		zap.Int("classified", report.Classified),
		zap.Int("errors", len(report.Errors)),
		zap.Int("warnings", len(report.Warnings)),
		zap.Duration("duration", report.FinishedAt.Sub(report.StartedAt)))

	return report, nil
}

// describeLines classifies lines concurrently, keeping input order
func (c *Checker) describeLines(ctx context.Context, lines []*entities.BOMLine, workers int) ([]LineRecord, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	records := make([]LineRecord, len(lines))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, line := range lines {
		if gctx.Err() != nil {
			break
		}
		i, line := i, line
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			records[i] = LineRecord{
				Index:  i,
				Line:   line,
				Record: c.classifier.Describe(string(line.MPN), line.Manufacturer),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// CheckRepository checks every line stored in repo
func (c *Checker) CheckRepository(ctx context.Context, repo repositories.BOMRepository, policy entities.BOMPolicy) (*Report, error) {
	lines, err := repo.GetAllBOMLines()
	if err != nil {
		return nil, fmt.Errorf("failed to read BOM lines: %w", err)
	}
	return c.Check(ctx, lines, policy)
}
