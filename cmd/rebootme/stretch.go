package rebootme

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/disneysandhya1/RebootMe-Backend/internal/observability"
	"github.com/disneysandhya1/RebootMe-Backend/internal/service"
	"github.com/disneysandhya1/RebootMe-Backend/internal/stretch"
)

var stretchDone bool

var stretchCmd = &cobra.Command{
	Use:   "stretch",
	Short: "Show a stretch to do now, or mark today's stretch done",
	RunE: func(cmd *cobra.Command, args []string) error {
		if stretchDone {
			return withDB(func(sqldb *sql.DB) error {
				s, err := service.MarkStretched(sqldb, now())
				if err != nil {
					return err
				}
				observability.LoggerFromContext(cmd.Context()).Info("stretch marked", "day", s.Day)
				fmt.Fprintln(cmd.OutOrStdout(), "Nice! You stretched.")
				return nil
			})
		}
		catalog, err := stretch.Default()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), catalog.ForTime(now()).String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(stretchCmd)
	stretchCmd.Flags().BoolVar(&stretchDone, "done", false, "Mark today's stretch complete")
}
