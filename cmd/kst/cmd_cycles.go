package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/surmisekit/kst/relalg"
)

var cyclesCmd = &cobra.Command{
	Use:   "cycles PATH",
	Short: "Detect cycles in the surmise relation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadGraph(args[0])
		if err != nil {
			return err
		}

		cycles := relalg.DetectCycles(g)
		if len(cycles) == 0 {
			fmt.Println("PASS: No cycles detected (valid quasi-order)")
			return nil
		}

		fmt.Printf("FAIL: %d cycle(s) detected:\n", len(cycles))
		for _, c := range cycles {
			fmt.Printf("  %s\n", strings.Join(c, " -> "))
		}
		os.Exit(1)
		return nil
	},
}
