package rebootme

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/disneysandhya1/RebootMe-Backend/internal/app"
	"github.com/disneysandhya1/RebootMe-Backend/internal/config"
	"github.com/disneysandhya1/RebootMe-Backend/internal/observability"
)

var (
	dbPath         string
	configPath     string
	historyBackend string
	csvPath        string
	logLevel       string
)

// now is swapped in tests.
var now = time.Now

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:           "rebootme",
	Short:         "rebootme reminds you to hydrate, stretch, and check in on your mood",
	Long:          "rebootme is a local-first wellness reminder: track water and stretches through the day, check in with your mood, get a next-step recommendation, and keep a daily log.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := loadConfig()
		if err != nil {
			return err
		}
		cfg = loaded
		if err := observability.Configure(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format); err != nil {
			return err
		}
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		ctx = observability.WithRunID(ctx)
		cmd.SetContext(ctx)
		observability.LoggerFromContext(ctx).Debug("command start", "command", cmd.CommandPath(), "config_file", cfg.File, "history_backend", cfg.History.Backend)
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default <user config dir>/rebootme/rebootme.yaml)")
	rootCmd.PersistentFlags().StringVar(&historyBackend, "history", "", "History log backend: sqlite or csv")
	rootCmd.PersistentFlags().StringVar(&csvPath, "csv", "", "Path to CSV history log (csv backend)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
}

func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return app.DefaultConfigPath()
}

// loadConfig layers persistent flags over the file and env config.
func loadConfig() (*config.Config, error) {
	path, err := resolveConfigPath()
	if err != nil {
		return nil, err
	}
	c, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if dbPath != "" {
		c.DBPath = dbPath
	}
	if historyBackend != "" {
		c.History.Backend = historyBackend
	}
	if csvPath != "" {
		c.History.CSVPath = csvPath
	}
	if logLevel != "" {
		c.Log.Level = logLevel
	}
	if c.DBPath == "" {
		if c.DBPath, err = app.DefaultDBPath(); err != nil {
			return nil, err
		}
	}
	if c.History.CSVPath == "" {
		if c.History.CSVPath, err = app.DefaultCSVPath(); err != nil {
			return nil, err
		}
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}
