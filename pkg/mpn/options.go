package mpn

import (
	"time"

	"go.uber.org/zap"

	"github.com/vsinha/mpn/pkg/infrastructure/handlers"
)

// Recorder receives engine activity. *metrics.Recorder implements it.
type Recorder interface {
	RecordClassification(componentType, scope string, ambiguous bool)
	RecordUnknown()
	RecordComparison(category string, compatible bool, duration time.Duration)
}

type nopRecorder struct{}

func (nopRecorder) RecordClassification(string, string, bool)    {}
func (nopRecorder) RecordUnknown()                               {}
func (nopRecorder) RecordComparison(string, bool, time.Duration) {}

type options struct {
	logger      *zap.Logger
	recorder    Recorder
	definitions []handlers.Definition
}

// Option configures an Engine
type Option func(*options)

// WithLogger sets the logger; the default discards everything
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithRecorder sets the metrics recorder
func WithRecorder(recorder Recorder) Option {
	return func(o *options) {
		if recorder != nil {
			o.recorder = recorder
		}
	}
}

// WithDefinitions replaces the built-in manufacturer definitions
func WithDefinitions(defs ...handlers.Definition) Option {
	return func(o *options) {
		o.definitions = defs
	}
}
