package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/surmisekit/kst/relalg"
	"github.com/surmisekit/kst/validate"
)

var validateCmd = &cobra.Command{
	Use:   "validate PATH",
	Short: "Run structural and pedagogical validation checks",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadGraph(args[0])
		if err != nil {
			return err
		}
		proj := relalg.BuildProjections(g)
		result := validate.Validate(g, proj)

		for _, m := range result.Fail {
			fmt.Printf("[FAIL] %s: %s\n", m.Check, m.Text)
		}
		for _, m := range result.Warn {
			fmt.Printf("[WARN] %s: %s\n", m.Check, m.Text)
		}
		for _, m := range result.Pass {
			fmt.Printf("[PASS] %s: %s\n", m.Check, m.Text)
		}
		fmt.Printf("\nSummary: %d FAIL, %d WARN, %d PASS\n",
			len(result.Fail), len(result.Warn), len(result.Pass))

		if result.Failed() {
			logger.Warnw("validation failed", "fail_count", len(result.Fail))
			os.Exit(1)
		}
		return nil
	},
}
