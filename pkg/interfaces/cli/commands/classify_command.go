package commands

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/vsinha/mpn/pkg/infrastructure/repositories/csv"
	"github.com/vsinha/mpn/pkg/interfaces/cli/output"
	"github.com/vsinha/mpn/pkg/mpn"
)

// ClassifyCommand classifies MPNs and prints their attributes
type ClassifyCommand struct {
	config Config
	engine *mpn.Engine
	logger *zap.Logger
	out    io.Writer
}

// NewClassifyCommand creates a classify command writing to out
func NewClassifyCommand(config Config, engine *mpn.Engine, logger *zap.Logger, out io.Writer) *ClassifyCommand {
	return &ClassifyCommand{
		config: config,
		engine: engine,
		logger: logger,
		out:    out,
	}
}

// Execute runs the classify command
func (c *ClassifyCommand) Execute(ctx context.Context) error {
	if c.config.Help {
		ShowHelp(c.out)
		return nil
	}

	mpns, err := c.resolveMPNs()
	if err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	queries := make([]mpn.Query, len(mpns))
	for i, m := range mpns {
		queries[i] = mpn.Query{MPN: m, Manufacturer: c.config.Manufacturer}
	}

	startTime := time.Now()
	records, err := c.engine.DescribeAll(ctx, queries, c.config.Workers)
	if err != nil {
		return fmt.Errorf("error classifying MPNs: %w", err)
	}
	elapsed := time.Since(startTime)

	c.logger.Info("classification complete", zap.Int("mpns", len(records)), zap.Duration("elapsed", elapsed))

	outputConfig := output.Config{
		Format:  c.config.Format,
		Verbose: c.config.Verbose,
		Elapsed: elapsed,
	}
	if err := output.WriteRecords(c.out, records, outputConfig); err != nil {
		return fmt.Errorf("error generating output: %w", err)
	}
	return nil
}

// resolveMPNs reads MPNs from the arguments or the input file
func (c *ClassifyCommand) resolveMPNs() ([]string, error) {
	if c.config.InputFile != "" {
		if len(c.config.MPNs) > 0 {
			return nil, fmt.Errorf("specify MPNs as arguments or -input, not both")
		}
		return csv.NewLoader().LoadMPNs(c.config.InputFile, c.config.Column)
	}
	if len(c.config.MPNs) == 0 {
		return nil, fmt.Errorf("must specify MPNs as arguments or an -input file")
	}
	return c.config.MPNs, nil
}
