package rebootme

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/disneysandhya1/RebootMe-Backend/internal/app"
	"github.com/disneysandhya1/RebootMe-Backend/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage rebootme configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		file := cfg.File
		if file == "" {
			file = "(none)"
		}
		rows := [][2]string{
			{"config_file", file},
			{"db_path", cfg.DBPath},
			{"history.backend", cfg.History.Backend},
			{"history.csv_path", cfg.History.CSVPath},
			{"booster.provider", cfg.Booster.Provider},
			{"booster.timeout", cfg.Booster.Timeout.String()},
			{"openai.api_key", config.Mask(cfg.OpenAI.APIKey)},
			{"openai.model", cfg.OpenAI.Model},
			{"claude.api_key", config.Mask(cfg.Claude.APIKey)},
			{"claude.model", cfg.Claude.Model},
			{"gemini.api_key", config.Mask(cfg.Gemini.APIKey)},
			{"gemini.model", cfg.Gemini.Model},
			{"log.level", cfg.Log.Level},
			{"log.format", cfg.Log.Format},
		}
		fmt.Fprintln(cmd.OutOrStdout(), "KEY\tVALUE")
		for _, r := range rows {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", r[0], r[1])
		}
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with default values",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveConfigPath()
		if err != nil {
			return err
		}
		if err := app.EnsureDir(path); err != nil {
			return err
		}
		if err := config.WriteDefaults(path); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote config to %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd, configInitCmd)
}
