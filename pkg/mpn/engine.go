// Package mpn classifies manufacturer part numbers, extracts their encoded
// attributes and decides whether two parts are interchangeable.
//
// An Engine is immutable once built and safe for concurrent use. The
// package-level functions use a process-wide engine built on first use.
package mpn

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/vsinha/mpn/pkg/application/services/similarity"
	"github.com/vsinha/mpn/pkg/domain/entities"
	"github.com/vsinha/mpn/pkg/domain/services"
	"github.com/vsinha/mpn/pkg/infrastructure/handlers"
	"github.com/vsinha/mpn/pkg/infrastructure/registry/memory"
)

// Engine ties the pattern registry, the handler catalog and the similarity
// calculators together
type Engine struct {
	catalog    *handlers.Catalog
	registry   *memory.Registry
	detector   *services.ComponentTypeDetector
	similarity *similarity.Set
	logger     *zap.Logger
	recorder   Recorder
}

// NewEngine builds the catalog and registry. Errors come only from invalid
// definitions and wrap handlers.ErrInvalidDefinition,
// handlers.ErrDuplicateHandler or memory.ErrInvalidPattern.
func NewEngine(opts ...Option) (*Engine, error) {
	o := options{
		logger:   zap.NewNop(),
		recorder: nopRecorder{},
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.definitions == nil {
		o.definitions = handlers.DefaultDefinitions()
	}

	catalog, err := handlers.NewCatalog(o.definitions)
	if err != nil {
		return nil, fmt.Errorf("failed to build handler catalog: %w", err)
	}

	builder := memory.NewBuilder(catalog.PatternCount())
	if err := catalog.RegisterPatterns(builder); err != nil {
		return nil, fmt.Errorf("failed to register patterns: %w", err)
	}
	registry := builder.Build()

	e := &Engine{
		catalog:    catalog,
		registry:   registry,
		detector:   services.NewComponentTypeDetector(catalog.Normalizer(), registry, catalog),
		similarity: similarity.NewSet(catalog),
		logger:     o.logger,
		recorder:   o.recorder,
	}

	e.logger.Info("mpn engine built",
		zap.Int("handlers", len(catalog.Handlers())),
		zap.Int("patterns", registry.Len()),
		zap.Int("packaging_rules", len(catalog.Normalizer().Rules())))
	return e, nil
}

// MustNewEngine is NewEngine that panics on error
func MustNewEngine(opts ...Option) *Engine {
	e, err := NewEngine(opts...)
	if err != nil {
		panic(err)
	}
	return e
}

// Catalog returns the handler catalog
func (e *Engine) Catalog() *handlers.Catalog {
	return e.catalog
}

// Normalize returns the canonical form of an MPN
func (e *Engine) Normalize(mpn string) string {
	return e.detector.Normalize(mpn)
}

// Classify returns the component type of an MPN, Unknown when nothing matches
func (e *Engine) Classify(mpn string) ComponentType {
	return e.ClassifyWithHint(mpn, "")
}

// ClassifyWithHint classifies an MPN, ignoring patterns scoped to a
// manufacturer other than the hinted one
func (e *Engine) ClassifyWithHint(mpn, manufacturerHint string) ComponentType {
	res, ok := e.Resolve(mpn, manufacturerHint)
	if !ok {
		return Unknown
	}
	return res.Best.Type
}

// Resolve classifies an MPN and returns the ranked candidates
func (e *Engine) Resolve(mpn, manufacturerHint string) (services.Resolution, bool) {
	res, ok := e.detector.Resolve(mpn, manufacturerHint)
	if !ok {
		e.recorder.RecordUnknown()
		e.logger.Debug("no pattern matched",
			zap.String("mpn", mpn),
			zap.String("normalized", res.Normalized),
			zap.String("hint", string(res.Hint)))
		return res, false
	}

	e.recorder.RecordClassification(res.Best.Type.String(), string(res.Best.Manufacturer), res.Ambiguous())
	if res.Ambiguous() {
		e.logger.Debug("ambiguous classification",
			zap.String("normalized", res.Normalized),
			zap.Stringer("type", res.Best.Type),
			zap.String("pattern", res.Best.Pattern),
			zap.Int("candidates", len(res.Candidates)))
	}
	return res, true
}

// Describe classifies an MPN and extracts its attributes. Attributes come
// from the winning pattern's manufacturer, else the hinted manufacturer,
// else the generic handler.
func (e *Engine) Describe(mpn, manufacturerHint string) ComponentRecord {
	res, _ := e.Resolve(mpn, manufacturerHint)
	return e.describe(mpn, res, res.Best.Type)
}

func (e *Engine) describe(mpn string, res services.Resolution, componentType ComponentType) ComponentRecord {
	manufacturer := res.Best.Manufacturer
	if manufacturer.IsNone() {
		manufacturer = res.Hint
	}
	record := ComponentRecord{
		MPN:          entities.PartNumber(mpn),
		Normalized:   res.Normalized,
		Type:         componentType,
		Manufacturer: manufacturer,
	}
	if res.Normalized == "" {
		record.Attributes = ExtractedAttributes{}
		return record
	}
	record.Attributes = e.catalog.ExtractAttributes(manufacturer, mpn, componentType)
	return record
}

// ExtractAttributes returns every attribute encoded in the MPN. Absent
// attributes could not be decoded and are never an error.
func (e *Engine) ExtractAttributes(mpn, manufacturerHint string) ExtractedAttributes {
	return e.Describe(mpn, manufacturerHint).Attributes
}

// describeAs classifies an MPN for a comparison of the given type. A
// detected type that refines componentType is kept; otherwise the record
// takes componentType. Unknown keeps whatever was detected.
func (e *Engine) describeAs(mpn string, componentType ComponentType) ComponentRecord {
	res, _ := e.Resolve(mpn, "")
	t := res.Best.Type
	if componentType != Unknown && !t.Is(componentType) {
		t = componentType
	}
	return e.describe(mpn, res, t)
}

// AreInterchangeable reports whether mpnB can replace mpnA. The verdict
// lists one reason per check performed.
func (e *Engine) AreInterchangeable(mpnA, mpnB string, componentType ComponentType) CompatibilityVerdict {
	a := e.describeAs(mpnA, componentType)
	b := e.describeAs(mpnB, componentType)
	return e.Compare(a, b)
}

// Compare runs the similarity calculator for two described records
func (e *Engine) Compare(required, candidate ComponentRecord) CompatibilityVerdict {
	if required.Normalized == "" || candidate.Normalized == "" {
		return CompatibilityVerdict{
			Reasons: []string{fmt.Sprintf("%s input: empty MPN", similarity.StatusFail)},
		}
	}

	start := time.Now()
	v := e.similarity.Compare(required, candidate)
	category := required.Type.Category()
	if !required.Known() {
		category = candidate.Type.Category()
	}
	e.recorder.RecordComparison(category.String(), v.Compatible, time.Since(start))
	return v
}

// RankReplacements compares every candidate against the required MPN and
// orders them compatible first, then by score, then by MPN
func (e *Engine) RankReplacements(required string, candidates []string, componentType ComponentType) []RankedCandidate {
	req := e.describeAs(required, componentType)
	ranked := make([]RankedCandidate, 0, len(candidates))
	for _, c := range candidates {
		rec := e.describeAs(c, componentType)
		ranked = append(ranked, RankedCandidate{Record: rec, Verdict: e.Compare(req, rec)})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i].Verdict, ranked[j].Verdict
		if a.Compatible != b.Compatible {
			return a.Compatible
		}
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		return ranked[i].Record.Normalized < ranked[j].Record.Normalized
	})
	return ranked
}

// DescribeAll describes queries concurrently with at most workers
// goroutines (0 means one per CPU). Results keep the query order.
func (e *Engine) DescribeAll(ctx context.Context, queries []Query, workers int) ([]ComponentRecord, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	records := make([]ComponentRecord, len(queries))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, q := range queries {
		if gctx.Err() != nil {
			break
		}
		i, q := i, q
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			records[i] = e.Describe(q.MPN, q.Manufacturer)
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
