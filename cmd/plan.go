package cmd

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/abhisek/swingplan/internal/catalog"
	"github.com/abhisek/swingplan/internal/logger"
	"github.com/abhisek/swingplan/internal/practice"
	"github.com/abhisek/swingplan/internal/store"
	"github.com/abhisek/swingplan/internal/ui/planview"
)

var planCmd = &cobra.Command{
	Use:   "plan <problem...>",
	Short: "Generate a practice plan for a described problem",
	Example: `  swingplan plan "I keep topping my irons" --days 3 --drills drills.yaml --challenges challenges.yaml
  swingplan plan three putting from long range --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logger.WithCommand(appLog, "plan")
		problem := strings.Join(args, " ")

		days, _ := cmd.Flags().GetInt("days")
		if !cmd.Flags().Changed("days") {
			days = cfg.DefaultDays
		}
		drillsPath, _ := cmd.Flags().GetString("drills")
		if drillsPath == "" {
			drillsPath = cfg.DrillsPath
		}
		challengesPath, _ := cmd.Flags().GetString("challenges")
		if challengesPath == "" {
			challengesPath = cfg.ChallengesPath
		}
		skill, _ := cmd.Flags().GetString("skill")
		if skill == "" {
			skill = cfg.SkillLevel
		}
		goal, _ := cmd.Flags().GetFloat64("goal")
		roundLimit, _ := cmd.Flags().GetInt("rounds")
		asJSON, _ := cmd.Flags().GetBool("json")
		save, _ := cmd.Flags().GetBool("save")
		width, _ := cmd.Flags().GetInt("width")

		// Load catalogs. A missing catalog plans from built-in defaults.
		var drills []catalog.Drill
		if drillsPath != "" {
			d, err := catalog.LoadDrills(drillsPath)
			if err != nil {
				return err
			}
			drills = d
			log.WithFields(logrus.Fields{"path": drillsPath, "count": len(d)}).Info("loaded drills")
		}
		var challenges []catalog.Challenge
		if challengesPath != "" {
			c, err := catalog.LoadChallenges(challengesPath)
			if err != nil {
				return err
			}
			challenges = c
			log.WithFields(logrus.Fields{"path": challengesPath, "count": len(c)}).Info("loaded challenges")
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		records, err := s.RoundRepo().List(ctx, store.QueryOpts{Limit: roundLimit})
		if err != nil {
			return fmt.Errorf("list rounds: %w", err)
		}

		opts := []practice.Option{practice.WithLogger(log)}
		if cmd.Flags().Changed("seed") {
			seed, _ := cmd.Flags().GetUint64("seed")
			opts = append(opts, practice.WithRand(rand.New(rand.NewPCG(seed, seed))))
		}
		engine := practice.NewEngine(opts...)

		plan, err := engine.GeneratePlan(ctx, practice.Request{
			Problem:      problem,
			Rounds:       store.Rounds(records),
			DurationDays: days,
			Drills:       drills,
			Challenges:   challenges,
			Profile:      practice.Profile{SkillLevel: skill, ScoreGoal: goal},
		})
		if err != nil {
			return fmt.Errorf("generate plan: %w", err)
		}

		if save {
			rec, err := s.PlanRepo().Save(ctx, plan)
			if err != nil {
				return err
			}
			log.WithField("id", rec.ID).Info("saved plan")
		}

		out := cmd.OutOrStdout()
		if asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(plan)
		}
		_, err = lipgloss.Fprint(out, planview.Render(plan, width))
		return err
	},
}

func init() {
	planCmd.Flags().Int("days", 3, "Number of practice days")
	planCmd.Flags().String("drills", "", "Drill catalog file (YAML or JSON)")
	planCmd.Flags().String("challenges", "", "Challenge catalog file (YAML or JSON)")
	planCmd.Flags().String("skill", "", "Skill level: beginner, intermediate, advanced, expert or pro")
	planCmd.Flags().Float64("goal", 0, "Target 18-hole score")
	planCmd.Flags().Int("rounds", 10, "Number of recent rounds to estimate skills from")
	planCmd.Flags().Uint64("seed", 0, "Seed for repeatable estimates")
	planCmd.Flags().Bool("json", false, "Print the plan as JSON")
	planCmd.Flags().Bool("save", false, "Record the plan in history")
	planCmd.Flags().Int("width", planview.DefaultWidth, "Output width")
}
