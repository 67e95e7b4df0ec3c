// Package cmd provides the root command and CLI setup for bundlepatch.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mouse-blink/bundlepatch/internal/adapter"
	"github.com/mouse-blink/bundlepatch/internal/controller"
	"github.com/mouse-blink/bundlepatch/internal/domain"
	"github.com/mouse-blink/bundlepatch/internal/domain/patches"
	m "github.com/mouse-blink/bundlepatch/internal/model"
)

// Process exit codes.
const (
	ExitOK      = 0
	ExitMissing = 1
	ExitUnknown = 2
	ExitStale   = 3
	ExitLocator = 4
	ExitUsage   = 5
)

var registry = patches.Registry()
var configLoader adapter.ConfigLoader = adapter.NewLocalConfigLoader()
var logger = zap.NewNop()
var config m.Config

// newWorkflow builds the workflow bound to cmd's output streams.
var newWorkflow = func(cmd *cobra.Command) domain.Workflow {
	ui := controller.NewUI(cmd, controller.IsTTY(cmd.OutOrStdout()))

	return domain.NewWorkflow(
		adapter.NewLocalArtifactFSAdapter(),
		adapter.NewLocalArtifactWatcher(0, logger),
		ui,
		registry,
		logger,
	)
}

var checkFlag bool
var rootDirFlag string
var configFlag string
var assetsFlag string
var patternFlag string
var verboseFlag bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bundlepatch [patches...]",
		Short: "Patch a prebuilt JavaScript bundle in place",
		Long: `Bundlepatch applies exact-text patches to a minified webview bundle.

Each patch knows every shape its target snippet may take, including the
shapes produced by other patches, so patches can be applied in any order
and re-running is a no-op. Without arguments the configured patch list is
applied in order.

Use --check to verify without writing:
  OK       patch present
  MISSING  patch not applied (exit 1)
  UNKNOWN  snippet not recognised, the bundle layout changed (exit 2)`,
		Args:              cobra.ArbitraryArgs,
		ValidArgs:         registry.Names(),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			_ = logger.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			names := selectPatches(args)
			workflow := newWorkflow(cmd)

			if checkFlag {
				return reported(workflow.Check(domain.CheckArgs{
					TargetArgs: targetArgs(),
					Patches:    names,
				}))
			}

			return reported(workflow.Apply(domain.ApplyArgs{
				TargetArgs: targetArgs(),
				Patches:    names,
			}))
		},
	}
	cmd.Flags().BoolVar(&checkFlag, "check", false, "verify the patches without writing")
	cmd.PersistentFlags().StringVar(&rootDirFlag, "root", ".", "project root the assets directory is relative to")
	cmd.PersistentFlags().StringVar(&configFlag, "config", "", "config file (default <root>/"+adapter.DefaultConfigFile+")")
	cmd.PersistentFlags().StringVar(&assetsFlag, "assets", "", "assets directory holding the bundle (default "+string(adapter.DefaultAssetsDir)+")")
	cmd.PersistentFlags().StringVar(&patternFlag, "pattern", "", "regular expression matching the bundle file name")
	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	os.Exit(execute(rootCmd))
}

func execute(cmd *cobra.Command) int {
	err := cmd.Execute()
	if err == nil {
		return ExitOK
	}

	var shown *reportedError
	if !errors.As(err, &shown) {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
	}

	return ExitCode(err)
}

// ExitCode maps a command error to the process exit code.
func ExitCode(err error) int {
	var locatorErr *adapter.LocatorError

	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, domain.ErrMissingPatch):
		return ExitMissing
	case errors.Is(err, domain.ErrUnknownShape):
		return ExitUnknown
	case errors.Is(err, domain.ErrStaleApply):
		return ExitStale
	case errors.As(err, &locatorErr):
		return ExitLocator
	default:
		return ExitUsage
	}
}

// reportedError marks an error the UI has already printed.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }

func (e *reportedError) Unwrap() error { return e.err }

func reported(err error) error {
	if err == nil {
		return nil
	}

	return &reportedError{err: err}
}

func setup(_ *cobra.Command, _ []string) error {
	var err error

	logger, err = newLogger(verboseFlag)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}

	config, err = loadConfig()
	if err != nil {
		return err
	}

	logger.Debug("configuration loaded",
		zap.String("assets", string(config.Assets)),
		zap.String("pattern", config.Pattern),
		zap.Strings("patches", config.Patches))

	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	cfg.DisableStacktrace = true

	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	return cfg.Build()
}

// loadConfig reads the config file and lets flags override its values. The
// default file is optional; an explicit --config must exist.
func loadConfig() (m.Config, error) {
	path := m.Path(filepath.Join(rootDirFlag, adapter.DefaultConfigFile))
	required := false

	if configFlag != "" {
		path = m.Path(configFlag)
		required = true
	}

	cfg, err := configLoader.Load(path, required)
	if err != nil {
		return m.Config{}, err
	}

	if assetsFlag != "" {
		cfg.Assets = m.Path(assetsFlag)
	}

	if patternFlag != "" {
		cfg.Pattern = patternFlag
	}

	return adapter.ApplyDefaults(cfg, registry.Names()), nil
}

func selectPatches(args []string) []string {
	if len(args) > 0 {
		return args
	}

	return config.Patches
}

func targetArgs() domain.TargetArgs {
	return domain.TargetArgs{
		Root:    m.Path(rootDirFlag),
		Assets:  config.Assets,
		Pattern: config.Pattern,
	}
}
