package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/surmisekit/kst/relalg"
)

var closureApply bool

var closureCmd = &cobra.Command{
	Use:   "closure PATH",
	Short: "List missing transitive relations, optionally applying them",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		g, err := loadGraph(path)
		if err != nil {
			return err
		}

		missing, err := relalg.TransitiveClosure(g)
		if err != nil {
			return err
		}

		if len(missing) == 0 {
			fmt.Println("Relation is already transitively closed.")
			return nil
		}

		fmt.Printf("Found %d missing transitive relation(s):\n", len(missing))
		for _, r := range missing {
			fmt.Printf("  %s -> %s\n", r.Prerequisite, r.Target)
		}

		if closureApply {
			if err := g.AddEdges(missing...); err != nil {
				return fmt.Errorf("apply transitive closure: %w", err)
			}
			if err := saveGraph(g, path); err != nil {
				return err
			}
			fmt.Printf("Applied %d relation(s) to %s.\n", len(missing), path)
		}
		return nil
	},
}

func init() {
	closureCmd.Flags().BoolVar(&closureApply, "apply", false, "append missing relations and save")
}
