package rebootme

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/disneysandhya1/RebootMe-Backend/internal/history"
	"github.com/disneysandhya1/RebootMe-Backend/internal/observability"
	"github.com/disneysandhya1/RebootMe-Backend/internal/service"
	"github.com/disneysandhya1/RebootMe-Backend/internal/wellness"
)

var (
	checkinMood      string
	checkinWater     int
	checkinStretched bool
	checkinSave      bool
	checkinBoost     bool
)

var checkinCmd = &cobra.Command{
	Use:   "checkin",
	Short: "Check in and get your next wellness action",
	RunE: func(cmd *cobra.Command, args []string) error {
		var overrides service.CheckinOverrides
		if cmd.Flags().Changed("mood") {
			m, err := parseIntArg("mood", checkinMood)
			if err != nil {
				parsed, perr := wellness.ParseMood(checkinMood)
				if perr != nil {
					return perr
				}
				m = int(parsed)
			}
			overrides.Mood = &m
		}
		if cmd.Flags().Changed("water") {
			w := checkinWater
			overrides.Water = &w
		}
		if cmd.Flags().Changed("stretched") {
			s := checkinStretched
			overrides.Stretched = &s
		}

		return withHistory(func(sqldb *sql.DB, log history.Log) error {
			at := now()
			session, err := service.TodaySession(sqldb, at)
			if err != nil {
				return err
			}
			c, err := service.RunCheckin(session, overrides, at)
			if err != nil {
				return err
			}
			logger := observability.LoggerFromContext(cmd.Context())
			logger.Info("checkin", "mood", int(c.State.Mood()), "water", c.State.Water(), "stretched", c.State.Stretched(), "recommendation", c.Recommendation)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Mood: %s (%d) | Water: %d glasses | Stretched: %s\n", c.State.Mood().Emoji(), c.State.Mood(), c.State.Water(), yesNo(c.State.Stretched()))
			fmt.Fprintf(out, "Recommendation: %s\n", c.Recommendation)
			fmt.Fprintf(out, "Wellness tip: %s\n", c.Tip)

			if checkinBoost {
				q, err := fetchQuote(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Daily mood booster: ✨ %s\n", q.Text)
			}
			if checkinSave {
				if _, err := service.SaveCheckin(log, c.State); err != nil {
					return err
				}
				logger.Info("checkin saved", "history", historyLocation())
				fmt.Fprintln(out, "Saved!")
			}
			return nil
		})
	},
}

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save today's log to history",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withHistory(func(sqldb *sql.DB, log history.Log) error {
			at := now()
			session, err := service.TodaySession(sqldb, at)
			if err != nil {
				return err
			}
			state, err := service.BuildState(session, service.CheckinOverrides{}, at)
			if err != nil {
				return err
			}
			e, err := service.SaveCheckin(log, state)
			if err != nil {
				return err
			}
			observability.LoggerFromContext(cmd.Context()).Info("log saved", "history", historyLocation(), "mood", int(e.Mood), "water", e.Water)
			fmt.Fprintln(cmd.OutOrStdout(), "Saved!")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(checkinCmd, saveCmd)
	checkinCmd.Flags().StringVar(&checkinMood, "mood", "", "Mood 0-4 or emoji (default today's recorded mood)")
	checkinCmd.Flags().IntVar(&checkinWater, "water", 0, "Glasses of water today (default today's counter)")
	checkinCmd.Flags().BoolVar(&checkinStretched, "stretched", false, "Whether you stretched today (default today's record)")
	checkinCmd.Flags().BoolVar(&checkinSave, "save", false, "Append this check-in to the history log")
	checkinCmd.Flags().BoolVar(&checkinBoost, "boost", false, "Also show a mood booster quote")
}
