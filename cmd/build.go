package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/eghc/internal/domain"
	m "github.com/mouse-blink/eghc/internal/model"
)

const buildLongDescription = `Compile components into JavaScript modules.

Every discovered .egh file produces <out>/<id>.js, plus <out>/<id>.css when
it has a style section and <out>/<id>.js.map with --sourcemap. Unchanged
components are served from the cache unless --no-cache is given. Flags
override the values read from the configuration file.`

var buildOutFlag string
var buildParallelFlag int
var buildSourceMapFlag bool
var buildNoCacheFlag bool
var buildExcludeFlags []string
var buildRuntimeFlag string

// buildCmd represents the build command.
var buildCmd = newBuildCmd()

func newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [paths...]",
		Short: "Compile components",
		Long:  buildLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config
			flags := cmd.Flags()

			if flags.Changed("out") {
				cfg.OutDir = buildOutFlag
			}

			if flags.Changed("parallel") {
				cfg.Parallel = buildParallelFlag
			}

			if flags.Changed("sourcemap") {
				cfg.SourceMaps = buildSourceMapFlag
			}

			if flags.Changed("runtime") {
				cfg.RuntimeImport = buildRuntimeFlag
			}

			return workflow.Build(cmd.Context(), domain.BuildArgs{
				SourceArgs: domain.SourceArgs{
					Paths:   parsePaths(args),
					Exclude: append(append([]string{}, cfg.Exclude...), buildExcludeFlags...),
				},
				OutDir:   m.Path(cfg.OutDir),
				CacheDir: m.Path(cfg.CacheDir),
				Parallel: cfg.Parallel,
				UseCache: !buildNoCacheFlag,
				Options: m.Options{
					RuntimeImport: cfg.RuntimeImport,
					SourceMaps:    cfg.SourceMaps,
				},
			})
		},
	}
	cmd.Flags().StringVarP(&buildOutFlag, "out", "o", "dist", "output directory")
	cmd.Flags().IntVarP(&buildParallelFlag, "parallel", "p", 1, "number of parallel workers")
	cmd.Flags().BoolVarP(&buildSourceMapFlag, "sourcemap", "m", false, "write source maps")
	cmd.Flags().BoolVar(&buildNoCacheFlag, "no-cache", false, "ignore and do not update the build cache")
	cmd.Flags().StringArrayVarP(&buildExcludeFlags, "exclude", "x", nil, "exclude components matching regex (can be repeated)")
	cmd.Flags().StringVar(&buildRuntimeFlag, "runtime", m.DefaultRuntimeImport, "module specifier of the DOM runtime")

	return cmd
}

func init() {
	rootCmd.AddCommand(buildCmd)
}
