package history

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/disneysandhya1/RebootMe-Backend/internal/db"
	"github.com/disneysandhya1/RebootMe-Backend/internal/wellness"
)

// SQLiteLog stores entries in the history_entries table. A database that
// has not been migrated yet reads as empty and is migrated on first append.
type SQLiteLog struct {
	sqldb *sql.DB
	mu    sync.Mutex
}

func NewSQLiteLog(sqldb *sql.DB) *SQLiteLog {
	return &SQLiteLog{sqldb: sqldb}
}

func (l *SQLiteLog) Append(e Entry) error {
	if err := validateEntry(e); err != nil {
		return &StorageError{Op: "append", Kind: KindCorruptData, Err: err}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	stretched := 0
	if e.Stretched {
		stretched = 1
	}
	insert := func() error {
		_, err := l.sqldb.Exec(`
INSERT INTO history_entries(recorded_at, mood, water_count, stretched)
VALUES(?, ?, ?, ?)
`, e.Timestamp.Format(time.RFC3339Nano), int(e.Mood), e.Water, stretched)
		return err
	}
	err := insert()
	if err != nil && classifySQLiteError(err) == KindNotFound {
		if merr := db.ApplyMigrations(l.sqldb); merr != nil {
			return &StorageError{Op: "append", Kind: KindIOFailure, Err: merr}
		}
		err = insert()
	}
	if err != nil {
		return &StorageError{Op: "append", Kind: classifySQLiteError(err), Err: fmt.Errorf("insert history entry: %w", err)}
	}
	return nil
}

func (l *SQLiteLog) ReadAll() ([]Entry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	rows, err := l.sqldb.Query(`SELECT recorded_at, mood, water_count, stretched FROM history_entries ORDER BY id ASC`)
	if err != nil {
		if classifySQLiteError(err) == KindNotFound {
			return []Entry{}, nil
		}
		return nil, &StorageError{Op: "read", Kind: KindIOFailure, Err: fmt.Errorf("list history entries: %w", err)}
	}
	defer rows.Close()

	entries := make([]Entry, 0)
	for rows.Next() {
		var (
			recordedAt string
			mood       int
			water      int
			stretched  int
		)
		if err := rows.Scan(&recordedAt, &mood, &water, &stretched); err != nil {
			return nil, &StorageError{Op: "read", Kind: KindCorruptData, Err: fmt.Errorf("scan history entry: %w", err)}
		}
		ts, err := time.Parse(time.RFC3339Nano, recordedAt)
		if err != nil {
			return nil, &StorageError{Op: "read", Kind: KindCorruptData, Err: fmt.Errorf("parse recorded_at %q: %w", recordedAt, err)}
		}
		e := Entry{Timestamp: ts, Mood: wellness.Mood(mood), Water: water, Stretched: stretched != 0}
		if err := validateEntry(e); err != nil {
			return nil, &StorageError{Op: "read", Kind: KindCorruptData, Err: err}
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, &StorageError{Op: "read", Kind: KindIOFailure, Err: fmt.Errorf("iterate history entries: %w", err)}
	}
	return entries, nil
}

func classifySQLiteError(err error) ErrorKind {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "no such table"):
		return KindNotFound
	case strings.Contains(msg, "malformed"), strings.Contains(msg, "not a database"), strings.Contains(msg, "constraint failed"):
		return KindCorruptData
	default:
		return KindIOFailure
	}
}
