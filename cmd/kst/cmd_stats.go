package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats PATH",
	Short: "Print document counts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadGraph(args[0])
		if err != nil {
			return err
		}
		doc := g.ToDocument()

		domain := doc.DomainName()
		if domain == "" {
			domain = "unknown"
		}
		version := doc.Version()
		if version == "" {
			version = "unknown"
		}

		fmt.Printf("Domain: %s\n", domain)
		fmt.Printf("Version: %s\n", version)
		fmt.Printf("Items: %d\n", len(doc.Items))
		fmt.Printf("Surmise relations: %d\n", len(doc.SurmiseRelations))
		fmt.Printf("Knowledge states: %d\n", len(doc.KnowledgeStates))
		fmt.Printf("Learning paths: %d\n", len(doc.LearningPaths))
		fmt.Printf("Students tracked: %d\n", len(doc.StudentStates))
		fmt.Printf("Competences (CbKST): %d\n", len(doc.Competences))
		return nil
	},
}
