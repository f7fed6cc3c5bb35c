package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/vsinha/mpn/pkg/application/services/bomcheck"
	"github.com/vsinha/mpn/pkg/infrastructure/config"
	"github.com/vsinha/mpn/pkg/infrastructure/events"
	"github.com/vsinha/mpn/pkg/infrastructure/logging"
	"github.com/vsinha/mpn/pkg/infrastructure/metrics"
	"github.com/vsinha/mpn/pkg/interfaces/cli/commands"
	"github.com/vsinha/mpn/pkg/interfaces/cli/output"
	"github.com/vsinha/mpn/pkg/mpn"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 || args[0] == "-help" || args[0] == "--help" || args[0] == "help" {
		commands.ShowHelp(os.Stdout)
		return 0
	}
	mode := args[0]
	if mode != "classify" && mode != "check" {
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n", mode)
		commands.ShowHelp(os.Stderr)
		return 2
	}

	cfg := config.Load()

	// Command line flags
	fs := flag.NewFlagSet(mode, flag.ContinueOnError)
	var (
		inputFile    = fs.String("input", "", "CSV file with MPNs")
		column       = fs.String("column", "", "Column holding MPNs")
		manufacturer = fs.String("manufacturer", "", "Manufacturer hint for every MPN")
		bomFile      = fs.String("bom", "", "Path to BOM CSV file")
		policyFile   = fs.String("policy", "", "Path to YAML BOM policy file")
		format       = fs.String("format", "text", "Output format: text, json, csv")
		workers      = fs.Int("workers", cfg.GetInt(config.EnvWorkers, 0), "Concurrent classifications")
		showMetrics  = fs.Bool("metrics", false, "Print collected metrics after the run")
		showEvents   = fs.Bool("events", false, "Print the check's event stream after the report")
		verbose      = fs.Bool("verbose", false, "Enable verbose output")
		help         = fs.Bool("help", false, "Show help message")
	)
	if err := fs.Parse(args[1:]); err != nil {
		return 2
	}

	logConfig := logging.DefaultConfig()
	logConfig.Level = cfg.GetString(config.EnvLogLevel, logConfig.Level)
	logConfig.Format = cfg.GetString(config.EnvLogFormat, logConfig.Format)
	logConfig.Fields["command"] = mode
	logger, err := logging.NewLogger(logConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer logger.Sync() //nolint:errcheck

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	recorder := metrics.NewRecorder(reg)

	engine, err := mpn.NewEngine(mpn.WithLogger(logger), mpn.WithRecorder(recorder))
	if err != nil {
		logger.Error("failed to build engine", zap.Error(err))
		return 1
	}

	// Create command configuration
	cmdConfig := commands.Config{
		MPNs:         fs.Args(),
		InputFile:    *inputFile,
		Column:       *column,
		Manufacturer: *manufacturer,
		BOMFile:      *bomFile,
		PolicyFile:   *policyFile,
		Format:       *format,
		Workers:      *workers,
		Events:       *showEvents,
		Verbose:      *verbose,
		Help:         *help,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch mode {
	case "classify":
		err = commands.NewClassifyCommand(cmdConfig, engine, logger, os.Stdout).Execute(ctx)
	case "check":
		policy, perr := cfg.Policy()
		if perr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", perr)
			return 1
		}
		store := events.NewInMemoryEventStore(logger)
		checker := bomcheck.NewChecker(engine,
			bomcheck.WithLogger(logger),
			bomcheck.WithRecorder(recorder),
			bomcheck.WithEventStore(store))
		err = commands.NewCheckCommand(cmdConfig, policy, checker, logger, os.Stdout).WithEvents(store).Execute(ctx)
	}

	if *showMetrics {
		families, gerr := reg.Gather()
		if gerr == nil {
			gerr = output.WriteMetrics(os.Stdout, families)
		}
		if gerr != nil {
			logger.Warn("failed to write metrics", zap.Error(gerr))
		}
	}

	switch {
	case err == nil:
		return 0
	case errors.Is(err, commands.ErrCheckFailed):
		return 3
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
}
