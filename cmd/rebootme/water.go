package rebootme

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/disneysandhya1/RebootMe-Backend/internal/observability"
	"github.com/disneysandhya1/RebootMe-Backend/internal/service"
)

var waterAdd int

var waterCmd = &cobra.Command{
	Use:   "water",
	Short: "Log glasses of water drunk today",
	RunE: func(cmd *cobra.Command, args []string) error {
		if waterAdd < 1 {
			return fmt.Errorf("--add must be >= 1")
		}
		return withDB(func(sqldb *sql.DB) error {
			s, err := service.AddWater(sqldb, now(), waterAdd)
			if err != nil {
				return err
			}
			observability.LoggerFromContext(cmd.Context()).Info("water logged", "day", s.Day, "added", waterAdd, "total", s.Water)
			fmt.Fprintf(cmd.OutOrStdout(), "Great! You drank water.\n")
			fmt.Fprintf(cmd.OutOrStdout(), "Water Count Today: %d glasses\n", s.Water)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(waterCmd)
	waterCmd.Flags().IntVar(&waterAdd, "add", 1, "Glasses to add")
}
