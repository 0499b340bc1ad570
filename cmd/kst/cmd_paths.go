package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/surmisekit/kst/downset"
	"github.com/surmisekit/kst/pathsyn"
	"github.com/surmisekit/kst/relalg"
)

var pathsCmd = &cobra.Command{
	Use:   "paths PATH",
	Short: "Synthesize one learning path per configured strategy",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadGraph(args[0])
		if err != nil {
			return err
		}

		proj := relalg.BuildProjections(g)
		res := downset.Enumerate(g, proj, engineCfg.MaxStates)
		idx := downset.NewIndex(res.States)
		ctx := pathsyn.NewContext(g, proj, idx)

		scorers := pathsyn.ScorersByNames(engineCfg.StrategyOrder)
		if len(scorers) == 0 {
			scorers = pathsyn.DefaultScorers()
		} else if len(scorers) < len(engineCfg.StrategyOrder) {
			logger.Warnw("ignoring unrecognized strategy names in config", "configured", engineCfg.StrategyOrder)
		}

		for _, p := range pathsyn.Synthesize(ctx, scorers, pathsyn.DefaultMaxPaths) {
			fmt.Printf("\n%s: %s\n", p.Strategy, strings.Join(p.Items, " -> "))
			fmt.Printf("  Length: %d items\n", len(p.Items))
			if !p.Complete {
				logger.Warnw("path incomplete", "strategy", p.Strategy, "items", len(p.Items))
			}
		}
		return nil
	},
}
