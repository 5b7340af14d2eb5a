// Package cmd provides the root command and CLI setup for eghc.
package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/eghc/internal/adapter"
	"github.com/mouse-blink/eghc/internal/controller"
	"github.com/mouse-blink/eghc/internal/domain"
	m "github.com/mouse-blink/eghc/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var cacheStore adapter.CacheStore
var configLoader adapter.ConfigLoader
var scriptAdapter adapter.ScriptAdapter
var compiler domain.Compiler
var orchestrator domain.Orchestrator
var workflow domain.Workflow
var ui controller.UI

func init() {
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	cacheStore = adapter.NewCacheStore()
	configLoader = adapter.NewConfigLoader()
	scriptAdapter = adapter.NewTreeSitterScriptAdapter()
	compiler = domain.NewCompiler(scriptAdapter)
	orchestrator = domain.NewOrchestrator(fsAdapter, cacheStore, compiler)
	workflow = domain.NewWorkflow(
		fsAdapter,
		ui,
		orchestrator,
		compiler,
	)
}

var configFlag string
var verboseFlag bool

// config is loaded before any subcommand runs.
var config = m.DefaultConfig()

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eghc",
		Short: "Compiler for reactive .egh components",
		Long: `eghc compiles .egh single-file components into plain JavaScript modules
that update the DOM directly. Reactive statements are resolved at build time,
so no virtual DOM or runtime dependency tracking ships with the output.

Supports Go-style path patterns:
  - ./...                 recursively scan current directory
  - ./components/...      recursively scan components directory
  - ./a ./b/Button.egh    scan directories and single files`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			setupLogging(cmd.ErrOrStderr(), verboseFlag)

			cfg, err := configLoader.Load(m.Path(configFlag))
			if err != nil {
				return err
			}

			config = cfg

			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&configFlag, "config", adapter.DefaultConfigFile, "path to the project configuration file")
	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging")

	return cmd
}

// setupLogging installs a text handler on w; --verbose lowers the level to
// debug.
func setupLogging(w io.Writer, verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
