package main

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/surmisekit/kst/analytics"
	"github.com/surmisekit/kst/relalg"
)

var analyticsCmd = &cobra.Command{
	Use:   "analytics PATH",
	Short: "Compute class-wide mastery and teaching-target analytics",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadGraph(args[0])
		if err != nil {
			return err
		}
		proj := relalg.BuildProjections(g)
		report := analytics.Compute(g, proj)

		if !report.HasData {
			fmt.Println("No student states found")
			os.Exit(1)
		}

		fmt.Printf("Students: %d\n", report.NStudents)
		fmt.Printf("Clusters: %d\n", len(report.Clusters))
		fmt.Println("\nTop teaching targets (by composite score):")

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Item", "Score", "Mastery", "Fringe Freq"})
		for _, id := range analytics.TopTargets(report, 10) {
			table.Append([]string{
				id,
				fmt.Sprintf("%.3f", report.TargetScores[id]),
				fmt.Sprintf("%.0f%%", report.MasteryRates[id]*100),
				fmt.Sprintf("%d", report.OuterFringeFreq[id]),
			})
		}
		table.Render()
		return nil
	},
}
