package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/trackhist"
	"github.com/aretw0/trackhist/internal/config"
	"github.com/aretw0/trackhist/internal/presentation/tui"
	"github.com/aretw0/trackhist/pkg/adapters/jsonl"
	"github.com/aretw0/trackhist/pkg/adapters/yoda"
	"github.com/aretw0/trackhist/pkg/domain"
	"github.com/aretw0/trackhist/pkg/runner"
)

// RunOptions contains all the configuration for the run command.
type RunOptions struct {
	ConfigPath string
	Overrides  []string
	Input      string // NDJSON events file, "-" for stdin
	RunID      string
	Debug      bool
	JSON       bool // print the run as JSON instead of the summary
	Quiet      bool

	Stdout io.Writer
	Stderr io.Writer
}

// Execute loads the settings, processes the input and reports the run.
func Execute(ctx context.Context, opts RunOptions) (*domain.Run, error) {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	settings, err := config.Load(opts.ConfigPath, opts.Overrides)
	if err != nil {
		return nil, err
	}
	logger, err := createLogger(settings.LogLevel, settings.LogFormat, opts.Debug, opts.Stderr)
	if err != nil {
		return nil, err
	}

	interactive := !opts.JSON && !opts.Quiet && isTerminal(opts.Stdout)
	if interactive {
		tui.PrintBanner(opts.Stdout, trackhist.Version)
	}

	source, err := jsonl.Open(opts.Input)
	if err != nil {
		return nil, err
	}
	defer source.Close()

	persistence, err := OpenPersistence(ctx, settings, logger)
	if err != nil {
		return nil, err
	}
	defer persistence.Close()

	analysisOpts := []trackhist.Option{
		trackhist.WithWorkers(settings.Workers),
		trackhist.WithStore(persistence.Store),
		trackhist.WithLogger(logger),
	}
	if persistence.Locker != nil {
		analysisOpts = append(analysisOpts, trackhist.WithLocker(persistence.Locker))
	}
	if opts.Debug {
		analysisOpts = append(analysisOpts, trackhist.WithHooks(createDebugHooks(logger)))
	}
	if opts.RunID != "" {
		analysisOpts = append(analysisOpts, trackhist.WithRunnerOptions(runner.WithRunID(opts.RunID)))
	}

	run, err := trackhist.New(settings.Config, analysisOpts...).Run(ctx, source)
	if err != nil {
		return nil, err
	}

	if settings.Output.Dir != "" {
		written, err := yoda.WriteDir(settings.Output.Dir, run, settings.Output.Plots)
		if err != nil {
			return run, fmt.Errorf("failed to export run: %w", err)
		}
		logger.Info("Run exported", "dir", settings.Output.Dir, "files", len(written))
	}

	if err := report(opts, run, interactive); err != nil {
		return run, err
	}
	return run, nil
}

func report(opts RunOptions, run *domain.Run, interactive bool) error {
	switch {
	case opts.JSON:
		return writeJSON(opts.Stdout, run)
	case opts.Quiet:
		return nil
	}

	summary := tui.RunSummary(run)
	if interactive {
		rendered, err := tui.NewRenderer()(summary)
		if err == nil {
			summary = rendered
		}
	}
	_, err := io.WriteString(opts.Stdout, summary)
	if err == nil && interactive {
		printSystemMessage(opts.Stdout, "Run '%s' stored.", run.ID)
	}
	return err
}
