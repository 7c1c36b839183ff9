package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/swingplan/internal/classify"
	"github.com/abhisek/swingplan/internal/diagnosis"
	"github.com/abhisek/swingplan/internal/taxonomy"
)

var categoryCmd = &cobra.Command{
	Use:   "category",
	Short: "Browse the skill categories",
}

var categoryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all categories with their keywords",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		// Header.
		fmt.Fprintf(out, "%-18s  %-40s  %s\n", "Category", "Keywords", "Equipment")
		fmt.Fprintln(out, strings.Repeat("─", 90))

		for _, c := range taxonomy.Default().Categories() {
			keywords := strings.Join(c.Keywords, ", ")
			if len(keywords) > 40 {
				keywords = keywords[:37] + "..."
			}
			fmt.Fprintf(out, "%-18s  %-40s  %s\n", c.Name, keywords, strings.Join(c.RelatedEquipment, ", "))
		}
		return nil
	},
}

var categoryClassifyCmd = &cobra.Command{
	Use:   "classify <problem...>",
	Short: "Show how a problem description is classified",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		problem := strings.Join(args, " ")
		res := classify.Classify(taxonomy.Default(), problem)
		if res == nil {
			return fmt.Errorf("no categories configured")
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Category:   %s\n", res.Category.Name)
		if res.Fallback {
			fmt.Fprintln(out, "Score:      0 (default)")
		} else {
			fmt.Fprintf(out, "Score:      %d\n", res.Score)
		}
		if eq := classify.DetectEquipment(strings.ToLower(problem)); eq != "" {
			fmt.Fprintf(out, "Equipment:  %s\n", eq)
		}
		fmt.Fprintf(out, "Terms:      %s\n", strings.Join(classify.ExtractTerms(problem, res.Category), ", "))

		diag := diagnosis.New().Diagnose(problem, &res.Category)
		fmt.Fprintf(out, "Diagnosis:  %s (%s)\n", diag.TemplateID, diag.RuleName)
		return nil
	},
}

func init() {
	categoryCmd.AddCommand(categoryListCmd)
	categoryCmd.AddCommand(categoryClassifyCmd)
}
