package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/swingplan/internal/store"
	"github.com/abhisek/swingplan/internal/ui/planview"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect saved practice plans",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved plans",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		plans, err := s.PlanRepo().List(cmd.Context(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("list plans: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(plans) == 0 {
			fmt.Fprintln(out, "No saved plans. Use `swingplan plan --save` to record one.")
			return nil
		}

		// Header.
		fmt.Fprintf(out, "%-36s  %-16s  %-16s  %4s  %s\n",
			"ID", "Created", "Category", "Days", "Problem")
		fmt.Fprintln(out, strings.Repeat("─", 100))

		for _, p := range plans {
			problem := p.Problem
			if len(problem) > 40 {
				problem = problem[:37] + "..."
			}
			fmt.Fprintf(out, "%-36s  %-16s  %-16s  %4d  %s\n",
				p.ID,
				p.CreatedAt.Local().Format("2006-01-02 15:04"),
				p.Category,
				p.Days,
				problem,
			)
		}
		return nil
	},
}

var historyViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Show a saved plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")
		width, _ := cmd.Flags().GetInt("width")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		rec, err := s.PlanRepo().Get(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("get plan: %w", err)
		}

		out := cmd.OutOrStdout()
		if asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(rec.Plan)
		}
		fmt.Fprintf(out, "Created: %s\n\n", rec.CreatedAt.Local().Format("2006-01-02 15:04:05"))
		_, err = lipgloss.Fprint(out, planview.Render(rec.Plan, width))
		return err
	},
}

func init() {
	historyListCmd.Flags().Int("limit", 20, "Maximum number of plans to show")

	historyViewCmd.Flags().Bool("json", false, "Print the plan as JSON")
	historyViewCmd.Flags().Int("width", planview.DefaultWidth, "Output width")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyViewCmd)
}
