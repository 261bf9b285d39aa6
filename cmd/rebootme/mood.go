package rebootme

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/disneysandhya1/RebootMe-Backend/internal/service"
	"github.com/disneysandhya1/RebootMe-Backend/internal/wellness"
)

var moodCmd = &cobra.Command{
	Use:   "mood <0-4|emoji>",
	Short: "Record how you feel today (0 😔 .. 4 🤩)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mood, err := wellness.ParseMood(args[0])
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			if _, err := service.SetMood(sqldb, now(), mood); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Mood: %s (%d)\n", mood.Emoji(), mood)
			fmt.Fprintf(cmd.OutOrStdout(), "Wellness tip: %s\n", wellness.TipForMood(int(mood)))
			return nil
		})
	},
}

var tipCmd = &cobra.Command{
	Use:   "tip <mood>",
	Short: "Show the wellness tip for a mood score",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		score, err := parseIntArg("mood", args[0])
		if err != nil {
			if m, perr := wellness.ParseMood(args[0]); perr == nil {
				score = int(m)
			} else {
				return err
			}
		}
		fmt.Fprintln(cmd.OutOrStdout(), wellness.TipForMood(score))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(moodCmd, tipCmd)
}
