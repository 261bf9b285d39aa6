package rebootme

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/disneysandhya1/RebootMe-Backend/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize local rebootme database",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			fmt.Fprintf(cmd.OutOrStdout(), "Initialized rebootme database at %s\n", cfg.DBPath)
			if cfg.History.Backend != config.BackendSQLite {
				fmt.Fprintf(cmd.OutOrStdout(), "History log: %s (%s)\n", historyLocation(), cfg.History.Backend)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
