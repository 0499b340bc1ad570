package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/surmisekit/kst/core"
	"github.com/surmisekit/kst/downset"
	"github.com/surmisekit/kst/relalg"
)

var (
	enumerateMax  int
	enumerateSave bool
)

var enumerateCmd = &cobra.Command{
	Use:   "enumerate PATH",
	Short: "Enumerate feasible knowledge states",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		g, err := loadGraph(path)
		if err != nil {
			return err
		}

		max := enumerateMax
		if max <= 0 {
			max = engineCfg.MaxStates
		}

		proj := relalg.BuildProjections(g)
		result := downset.Enumerate(g, proj, max)
		if result.Truncated {
			logger.Warnw("enumeration truncated", "max_states", max)
			fmt.Printf("WARNING: state enumeration stopped at the configured ceiling; result is partial.\n")
		}

		domainSize := len(g.ItemIDs())
		density := float64(len(result.States)) / math.Pow(2, float64(domainSize))

		fmt.Printf("Enumerated %d feasible knowledge states\n", len(result.States))
		fmt.Printf("Domain size: %d items\n", domainSize)
		fmt.Printf("Density: %d / 2^%d = %.4f\n", len(result.States), domainSize, density)

		if enumerateSave {
			universe := g.ItemIDs()
			idx := downset.NewIndex(result.States)
			docs := make([]core.KnowledgeStateDoc, len(result.States))
			for i, s := range result.States {
				inner, outer := downset.Fringes(s, idx, universe)
				docs[i] = core.KnowledgeStateDoc{
					ID:          s.ID,
					Items:       s.Items,
					InnerFringe: inner,
					OuterFringe: outer,
				}
			}
			g.AttachKnowledgeStates(docs)
			if err := saveGraph(g, path); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	enumerateCmd.Flags().IntVar(&enumerateMax, "max", 0, "state enumeration ceiling (0 uses the configured max_states)")
	enumerateCmd.Flags().BoolVar(&enumerateSave, "save", false, "attach enumerated states to the document and save")
}
