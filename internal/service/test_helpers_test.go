package service_test

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/disneysandhya1/RebootMe-Backend/internal/db"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rebootme.db")
	sqldb, err := db.Open(path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	return sqldb
}

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }
