package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/swingplan/internal/catalog"
	"github.com/abhisek/swingplan/internal/logger"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Work with drill and challenge catalog files",
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Check catalog files against the schema and version rules",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logger.WithCommand(appLog, "catalog validate")
		out := cmd.OutOrStdout()

		var failed int
		for _, path := range args {
			sum, err := catalog.ValidateFile(path)
			if err != nil {
				failed++
				log.WithError(err).WithField("path", path).Debug("validation failed")
				fmt.Fprintf(out, "FAIL  %s: %v\n", path, err)
				continue
			}
			fmt.Fprintf(out, "ok    %s  %s %s, %d items\n", path, sum.Kind, sum.Version, sum.Count)
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d catalog files invalid", failed, len(args))
		}
		return nil
	},
}

func init() {
	catalogCmd.AddCommand(catalogValidateCmd)
}
