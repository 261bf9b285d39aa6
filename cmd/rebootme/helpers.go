package rebootme

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/disneysandhya1/RebootMe-Backend/internal/app"
	"github.com/disneysandhya1/RebootMe-Backend/internal/config"
	"github.com/disneysandhya1/RebootMe-Backend/internal/db"
	"github.com/disneysandhya1/RebootMe-Backend/internal/history"
)

func withDB(run func(*sql.DB) error) error {
	if err := app.EnsureDir(cfg.DBPath); err != nil {
		return err
	}
	sqldb, err := db.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer sqldb.Close()

	if err := db.ApplyMigrations(sqldb); err != nil {
		return err
	}
	return run(sqldb)
}

// withHistory opens the database for session counters and the configured
// history log next to it.
func withHistory(run func(*sql.DB, history.Log) error) error {
	return withDB(func(sqldb *sql.DB) error {
		return run(sqldb, historyLog(sqldb))
	})
}

func historyLog(sqldb *sql.DB) history.Log {
	if cfg.History.Backend == config.BackendCSV {
		return history.NewCSVLog(cfg.History.CSVPath)
	}
	return history.NewSQLiteLog(sqldb)
}

func historyLocation() string {
	if cfg.History.Backend == config.BackendCSV {
		return cfg.History.CSVPath
	}
	return cfg.DBPath
}

func parseIntArg(name, value string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, value)
	}
	return v, nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
