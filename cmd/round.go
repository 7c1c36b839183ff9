package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/swingplan/internal/logger"
	"github.com/abhisek/swingplan/internal/metrics"
	"github.com/abhisek/swingplan/internal/store"
)

var roundCmd = &cobra.Command{
	Use:   "round",
	Short: "Record and list played rounds",
}

var roundAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a round's totals",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		score, _ := cmd.Flags().GetInt("score")
		putts, _ := cmd.Flags().GetInt("putts")
		fairways, _ := cmd.Flags().GetInt("fairways")
		gir, _ := cmd.Flags().GetInt("gir")
		holes, _ := cmd.Flags().GetInt("holes")
		date, _ := cmd.Flags().GetString("date")

		if holes != 9 && holes != 18 {
			return fmt.Errorf("invalid hole count %d: must be 9 or 18", holes)
		}
		if score <= 0 {
			return fmt.Errorf("invalid score %d", score)
		}
		if gir > holes {
			return fmt.Errorf("greens in regulation (%d) exceeds hole count (%d)", gir, holes)
		}

		rec := &store.RoundRecord{
			Round: metrics.Round{
				TotalScore:         score,
				TotalPutts:         putts,
				FairwaysHit:        fairways,
				GreensInRegulation: gir,
				HoleCount:          holes,
			},
		}
		if date != "" {
			t, err := time.ParseInLocation("2006-01-02", date, time.Local)
			if err != nil {
				return fmt.Errorf("invalid date %q: %w", date, err)
			}
			rec.PlayedAt = t
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.RoundRepo().Add(cmd.Context(), rec); err != nil {
			return err
		}
		logger.WithCommand(appLog, "round add").WithField("id", rec.ID).Info("recorded round")
		fmt.Fprintf(cmd.OutOrStdout(), "Recorded round %d: %d over %d holes.\n", rec.ID, score, holes)
		return nil
	},
}

var roundListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent rounds",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		records, err := s.RoundRepo().List(cmd.Context(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("list rounds: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(records) == 0 {
			fmt.Fprintln(out, "No rounds recorded yet.")
			return nil
		}

		// Header.
		fmt.Fprintf(out, "%-5s  %-10s  %5s  %5s  %5s  %8s  %3s\n",
			"ID", "Date", "Holes", "Score", "Putts", "Fairways", "GIR")
		fmt.Fprintln(out, strings.Repeat("─", 56))

		for _, r := range records {
			fmt.Fprintf(out, "%-5d  %-10s  %5d  %5d  %5d  %8d  %3d\n",
				r.ID,
				r.PlayedAt.Local().Format("2006-01-02"),
				r.Round.HoleCount,
				r.Round.TotalScore,
				r.Round.TotalPutts,
				r.Round.FairwaysHit,
				r.Round.GreensInRegulation,
			)
		}

		t := metrics.Sum(store.Rounds(records))
		if t.Holes > 0 {
			fmt.Fprintf(out, "\nAverage per 18: %.1f\n", float64(t.Score)*18/float64(t.Holes))
		}
		return nil
	},
}

func init() {
	roundAddCmd.Flags().Int("score", 0, "Total strokes")
	roundAddCmd.Flags().Int("putts", 0, "Total putts")
	roundAddCmd.Flags().Int("fairways", 0, "Fairways hit")
	roundAddCmd.Flags().Int("gir", 0, "Greens in regulation")
	roundAddCmd.Flags().Int("holes", 18, "Holes played (9 or 18)")
	roundAddCmd.Flags().String("date", "", "Date played (YYYY-MM-DD, default today)")
	_ = roundAddCmd.MarkFlagRequired("score")

	roundListCmd.Flags().Int("limit", 20, "Maximum number of rounds to show")

	roundCmd.AddCommand(roundAddCmd)
	roundCmd.AddCommand(roundListCmd)
}
