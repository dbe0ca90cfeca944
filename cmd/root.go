// Package cmd provides the root command and CLI setup for mdalint.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/mdalint/internal/adapter"
	"github.com/mouse-blink/mdalint/internal/config"
	"github.com/mouse-blink/mdalint/internal/controller"
	"github.com/mouse-blink/mdalint/internal/domain"
	m "github.com/mouse-blink/mdalint/internal/model"
)

const appName = "mdalint"

// workflow is built by prepare unless already set.
var workflow domain.Workflow

var settings runSettings

var parallelFlag int
var excludeFlags []string
var reportsFlag string
var noCacheFlag bool
var failOnPossibleFlag bool
var configFlag string
var debugFlag bool

// runSettings is the configuration file merged with explicitly set flags.
type runSettings struct {
	Workers        int
	Exclude        []string
	Reports        m.Path
	CacheDir       string
	UseCache       bool
	FailOnPossible bool
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

const rootLongDescription = `mdalint checks Python modules for classes that derive directly from
AnalysisBase and awards each one a badge. A badge is acquired when the class
follows the AnalysisBase contract and possible when it carries errors.

Supports Go-style path patterns:
  - ./...          recursively scan current directory
  - ./pkg/...      recursively scan pkg directory
  - ./a.py ./pkg   scan single modules and directories

Settings are read from .mdalint.yaml or the [tool.mdalint] table of
pyproject.toml; flags override them.`

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "mdalint [paths...]",
		Short:             "AnalysisBase conformance linter for Python",
		Long:              rootLongDescription,
		Args:              cobra.ArbitraryArgs,
		SilenceUsage:      true,
		PersistentPreRunE: prepare,
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Check(cmd.Context(), domain.CheckArgs{
				Paths:          parsePaths(args),
				Exclude:        settings.Exclude,
				Workers:        settings.Workers,
				Reports:        settings.Reports,
				UseCache:       settings.UseCache,
				FailOnPossible: settings.FailOnPossible,
			})
		},
	}

	cmd.PersistentFlags().IntVarP(&parallelFlag, "parallel", "p", 0, "number of parallel workers (0 uses one per CPU)")
	cmd.PersistentFlags().StringArrayVarP(&excludeFlags, "exclude", "x", nil, "exclude files matching regex (can be repeated)")
	cmd.PersistentFlags().StringVarP(&reportsFlag, "reports", "r", config.DefaultReportsDir, "reports directory, empty to skip saving")
	cmd.PersistentFlags().StringVar(&configFlag, "config", "", "configuration file (default: search for .mdalint.yaml or pyproject.toml)")
	cmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "enable debug logging")
	cmd.Flags().BoolVar(&noCacheFlag, "no-cache", false, "ignore the result cache")
	cmd.Flags().BoolVar(&failOnPossibleFlag, "fail-on-possible", false, "exit with an error when a possible badge is found")

	return cmd
}

func prepare(cmd *cobra.Command, _ []string) error {
	if debugFlag {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if cfg.Source != "" {
		slog.Debug("configuration loaded", "file", cfg.Source)
	}

	settings = resolveSettings(cmd, cfg)

	if workflow == nil {
		workflow = newWorkflow(cmd, settings)
	}

	return nil
}

func loadConfig() (*config.Config, error) {
	if configFlag != "" {
		cfg, err := config.LoadFile(configFlag)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}

		return cfg, nil
	}

	cfg, err := config.Load(".")
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	return cfg, nil
}

// resolveSettings lets flags the user actually passed win over the file.
func resolveSettings(cmd *cobra.Command, cfg *config.Config) runSettings {
	s := runSettings{
		Workers:        cfg.Workers,
		Exclude:        cfg.Exclude,
		Reports:        m.Path(cfg.Reports),
		CacheDir:       cfg.CacheDir,
		UseCache:       cfg.CacheEnabled(),
		FailOnPossible: cfg.FailsOnPossible(),
	}

	flags := cmd.Flags()

	if flags.Changed("parallel") {
		s.Workers = parallelFlag
	}

	if flags.Changed("exclude") {
		s.Exclude = append(append([]string(nil), s.Exclude...), excludeFlags...)
	}

	if flags.Changed("reports") {
		s.Reports = m.Path(reportsFlag)
	}

	if flags.Changed("no-cache") {
		s.UseCache = !noCacheFlag
	}

	if flags.Changed("fail-on-possible") {
		s.FailOnPossible = failOnPossibleFlag
	}

	return s
}

func newWorkflow(cmd *cobra.Command, s runSettings) domain.Workflow {
	ui := controller.NewUI(cmd, controller.IsTTY(cmd.OutOrStdout()))

	return domain.NewWorkflow(
		adapter.NewLocalSourceFSAdapter(),
		adapter.NewLocalPythonFileAdapter(),
		adapter.NewReportStore(),
		openCache(s),
		ui,
		domain.NewLinter(),
	)
}

// openCache returns nil when the cache is disabled or cannot be located.
func openCache(s runSettings) adapter.ResultCache {
	if !s.UseCache {
		return nil
	}

	if s.CacheDir != "" {
		return adapter.NewDiskResultCache(m.Path(s.CacheDir))
	}

	cache, err := adapter.OpenUserCache(appName)
	if err != nil {
		slog.Debug("result cache disabled", "error", err)
		return nil
	}

	return cache
}

func parsePaths(args []string) []m.Path {
	if len(args) == 0 {
		return []m.Path{"./..."}
	}

	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
