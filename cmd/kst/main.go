// Command kst is a thin CLI wrapper around the KST engine library:
// validate, closure, enumerate, paths, analytics, cycles, and stats,
// each operating on a single JSON document path.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/surmisekit/kst/kstconfig"
)

var (
	verbose    bool
	configPath string
	logger     *zap.SugaredLogger
	engineCfg  kstconfig.Config
)

var rootCmd = &cobra.Command{
	Use:   "kst",
	Short: "Knowledge Space Theory engine CLI",
	Long: `kst operates on a single JSON knowledge-graph document: items,
surmise relations, and optionally attached knowledge states and student
snapshots. Each subcommand loads the document, runs one engine
operation, and prints a report.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zapCfg := zap.NewProductionConfig()
		if verbose {
			zapCfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		}
		zapCfg.Encoding = "console"
		zapCfg.EncoderConfig.TimeKey = ""
		built, err := zapCfg.Build()
		if err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}
		logger = built.Sugar()

		loaded, err := kstconfig.Load(configPath)
		if err != nil {
			return fmt.Errorf("load config %s: %w", configPath, err)
		}
		engineCfg = loaded
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config supplying the enumeration ceiling and the path-synthesis strategy order (its BLIM guess/slip values are not used by any subcommand)")
	rootCmd.AddCommand(
		validateCmd,
		closureCmd,
		enumerateCmd,
		pathsCmd,
		analyticsCmd,
		cyclesCmd,
		statsCmd,
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
