package commands

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/vsinha/mpn/pkg/application/services/bomcheck"
	"github.com/vsinha/mpn/pkg/domain/entities"
	"github.com/vsinha/mpn/pkg/infrastructure/config"
	"github.com/vsinha/mpn/pkg/infrastructure/events"
	"github.com/vsinha/mpn/pkg/infrastructure/repositories/csv"
	"github.com/vsinha/mpn/pkg/infrastructure/repositories/memory"
	"github.com/vsinha/mpn/pkg/interfaces/cli/output"
)

// CheckCommand validates a BOM file
type CheckCommand struct {
	config  Config
	policy  entities.BOMPolicy
	checker *bomcheck.Checker
	events  events.EventStore
	logger  *zap.Logger
	out     io.Writer
}

// NewCheckCommand creates a check command. policy is used unless the
// configuration names a policy file.
func NewCheckCommand(cfg Config, policy entities.BOMPolicy, checker *bomcheck.Checker, logger *zap.Logger, out io.Writer) *CheckCommand {
	return &CheckCommand{
		config:  cfg,
		policy:  policy,
		checker: checker,
		logger:  logger,
		out:     out,
	}
}

// WithEvents sets the store the checker publishes to. With Config.Events
// set, the run's stream is written after the report.
func (c *CheckCommand) WithEvents(store events.EventStore) *CheckCommand {
	c.events = store
	return c
}

// Execute runs the check command. It returns ErrCheckFailed after writing
// the report when the BOM has errors.
func (c *CheckCommand) Execute(ctx context.Context) error {
	if c.config.Help {
		ShowHelp(c.out)
		return nil
	}
	if c.config.BOMFile == "" {
		return fmt.Errorf("validation error: must specify a -bom file")
	}

	policy, err := c.resolvePolicy()
	if err != nil {
		return err
	}

	bomLines, err := csv.NewLoader().LoadBOM(c.config.BOMFile)
	if err != nil {
		return fmt.Errorf("error loading BOM: %w", err)
	}

	bomRepo := memory.NewBOMRepository(len(bomLines))
	if err := bomRepo.LoadBOMLines(bomLines); err != nil {
		return fmt.Errorf("failed to load BOM lines into repository: %w", err)
	}
	c.logger.Debug("BOM loaded",
		zap.String("file", c.config.BOMFile),
		zap.Int("lines", len(bomLines)),
		zap.Int("parents", len(bomRepo.GetParents())))

	report, err := c.checker.CheckRepository(ctx, bomRepo, policy)
	if err != nil {
		return fmt.Errorf("error checking BOM: %w", err)
	}

	outputConfig := output.Config{
		Format:  c.config.Format,
		Verbose: c.config.Verbose,
	}
	if err := output.WriteReport(c.out, report, outputConfig); err != nil {
		return fmt.Errorf("error generating output: %w", err)
	}

	if c.config.Events {
		if err := c.writeEvents(report, outputConfig); err != nil {
			return err
		}
	}

	if !report.Valid() {
		return fmt.Errorf("%w: %d errors", ErrCheckFailed, len(report.Errors))
	}
	return nil
}

// resolvePolicy loads the policy file when one is configured and applies
// the worker override
func (c *CheckCommand) resolvePolicy() (entities.BOMPolicy, error) {
	policy := c.policy
	if c.config.PolicyFile != "" {
		loaded, err := config.LoadPolicy(c.config.PolicyFile)
		if err != nil {
			return entities.BOMPolicy{}, fmt.Errorf("error loading policy: %w", err)
		}
		policy = loaded
	}
	if c.config.Workers > 0 {
		policy.Workers = c.config.Workers
	}
	return policy, nil
}

func (c *CheckCommand) writeEvents(report *bomcheck.Report, outputConfig output.Config) error {
	if c.events == nil {
		return fmt.Errorf("validation error: -events needs an event store")
	}
	stream, err := c.events.ReadEvents(report.RunID.String(), 0)
	if err != nil {
		return fmt.Errorf("error reading events: %w", err)
	}
	if err := output.WriteEvents(c.out, stream, outputConfig); err != nil {
		return fmt.Errorf("error generating output: %w", err)
	}
	return nil
}
