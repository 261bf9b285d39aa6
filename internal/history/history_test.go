package history_test

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/disneysandhya1/RebootMe-Backend/internal/db"
	"github.com/disneysandhya1/RebootMe-Backend/internal/history"
	"github.com/disneysandhya1/RebootMe-Backend/internal/wellness"
)

func sampleEntries() []history.Entry {
	base := time.Date(2026, 3, 1, 8, 30, 0, 123456789, time.UTC)
	return []history.Entry{
		{Timestamp: base, Mood: wellness.MoodMeh, Water: 2, Stretched: false},
		{Timestamp: base.Add(26 * time.Hour), Mood: wellness.MoodGlowing, Water: 8, Stretched: true},
		{Timestamp: base.Add(49 * time.Hour), Mood: wellness.MoodCalm, Water: 5, Stretched: true},
	}
}

func newSQLiteLog(t *testing.T, migrate bool) *history.SQLiteLog {
	t.Helper()
	sqldb, err := db.Open(filepath.Join(t.TempDir(), "rebootme.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = sqldb.Close() })
	if migrate {
		if err := db.ApplyMigrations(sqldb); err != nil {
			t.Fatalf("apply migrations: %v", err)
		}
	}
	return history.NewSQLiteLog(sqldb)
}

func backends(t *testing.T) map[string]history.Log {
	t.Helper()
	return map[string]history.Log{
		"csv":               history.NewCSVLog(filepath.Join(t.TempDir(), "data", "log.csv")),
		"sqlite":            newSQLiteLog(t, true),
		"sqlite-unmigrated": newSQLiteLog(t, false),
	}
}

func TestReadAllOnFreshStoreIsEmpty(t *testing.T) {
	t.Parallel()

	for name, log := range backends(t) {
		entries, err := log.ReadAll()
		if err != nil {
			t.Fatalf("%s: read fresh log: %v", name, err)
		}
		if entries == nil || len(entries) != 0 {
			t.Fatalf("%s: expected empty non-nil slice, got %#v", name, entries)
		}
	}
}

func TestAppendPreservesOrder(t *testing.T) {
	t.Parallel()

	for name, log := range backends(t) {
		want := sampleEntries()
		for _, e := range want {
			if err := log.Append(e); err != nil {
				t.Fatalf("%s: append: %v", name, err)
			}
		}
		got, err := log.ReadAll()
		if err != nil {
			t.Fatalf("%s: read all: %v", name, err)
		}
		if len(got) != len(want) {
			t.Fatalf("%s: expected %d entries, got %d", name, len(want), len(got))
		}
		for i := range want {
			if !got[i].Timestamp.Equal(want[i].Timestamp) || got[i].Mood != want[i].Mood || got[i].Water != want[i].Water || got[i].Stretched != want[i].Stretched {
				t.Fatalf("%s: entry %d mismatch: expected %+v, got %+v", name, i, want[i], got[i])
			}
		}

		again, err := log.ReadAll()
		if err != nil {
			t.Fatalf("%s: second read: %v", name, err)
		}
		if !reflect.DeepEqual(got, again) {
			t.Fatalf("%s: expected repeated reads to match", name)
		}
	}
}

func TestAppendRejectsInvalidEntry(t *testing.T) {
	t.Parallel()

	for name, log := range backends(t) {
		err := log.Append(history.Entry{Timestamp: time.Now(), Mood: wellness.Mood(9), Water: 1})
		if !errors.Is(err, history.ErrCorruptData) {
			t.Fatalf("%s: expected corrupt data error, got %v", name, err)
		}
		entries, err := log.ReadAll()
		if err != nil || len(entries) != 0 {
			t.Fatalf("%s: expected nothing stored, got %v / %v", name, entries, err)
		}
	}
}

func TestCSVWritesHeaderOnce(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "log.csv")
	log := history.NewCSVLog(path)
	for _, e := range sampleEntries()[:2] {
		if err := log.Append(e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %q", string(raw))
	}
	if lines[0] != "timestamp,mood,water,stretched" {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], ",1,2,False") || !strings.HasSuffix(lines[2], ",4,8,True") {
		t.Fatalf("unexpected rows %q", lines[1:])
	}
}

func TestCSVReadsLegacyRows(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "log.csv")
	legacy := "timestamp,mood,water,stretched\n2025-06-01 09:15:42.123456,3,6,True\n2025-06-02 10:00:00,0,1,false"
	if err := os.WriteFile(path, []byte(legacy), 0o644); err != nil {
		t.Fatalf("seed legacy log: %v", err)
	}
	log := history.NewCSVLog(path)

	entries, err := log.ReadAll()
	if err != nil {
		t.Fatalf("read legacy log: %v", err)
	}
	if len(entries) != 2 || entries[0].Mood != wellness.MoodHappy || !entries[0].Stretched || entries[1].Water != 1 || entries[1].Stretched {
		t.Fatalf("unexpected legacy entries: %+v", entries)
	}

	if err := log.Append(sampleEntries()[0]); err != nil {
		t.Fatalf("append after legacy row without trailing newline: %v", err)
	}
	entries, err = log.ReadAll()
	if err != nil {
		t.Fatalf("read after append: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
}

func TestCSVCorruptDataIsSurfaced(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"bad header":   "when,how,water,stretched\n",
		"bad mood":     "timestamp,mood,water,stretched\n2026-01-01T00:00:00Z,seven,1,True\n",
		"out of range": "timestamp,mood,water,stretched\n2026-01-01T00:00:00Z,5,1,True\n",
		"short row":    "timestamp,mood,water,stretched\n2026-01-01T00:00:00Z,2,1\n",
	}
	for name, content := range cases {
		path := filepath.Join(t.TempDir(), "log.csv")
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("%s: seed log: %v", name, err)
		}
		_, err := history.NewCSVLog(path).ReadAll()
		if !errors.Is(err, history.ErrCorruptData) {
			t.Fatalf("%s: expected corrupt data error, got %v", name, err)
		}
		var serr *history.StorageError
		if !errors.As(err, &serr) || serr.Path != path {
			t.Fatalf("%s: expected storage error for %s, got %v", name, path, err)
		}
	}
}

func TestCSVAppendRefusesForeignHeader(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "log.csv")
	if err := os.WriteFile(path, []byte("a,b\n1,2\n"), 0o644); err != nil {
		t.Fatalf("seed log: %v", err)
	}
	err := history.NewCSVLog(path).Append(sampleEntries()[0])
	if !errors.Is(err, history.ErrCorruptData) {
		t.Fatalf("expected corrupt data error, got %v", err)
	}
	raw, _ := os.ReadFile(path)
	if string(raw) != "a,b\n1,2\n" {
		t.Fatalf("expected foreign file untouched, got %q", string(raw))
	}
}

func TestCSVEmptyFileReadsEmpty(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "log.csv")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("seed empty log: %v", err)
	}
	entries, err := history.NewCSVLog(path).ReadAll()
	if err != nil || len(entries) != 0 {
		t.Fatalf("expected empty history, got %v / %v", entries, err)
	}
}

func TestCSVReadFailureIsIOFailure(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	_, err := history.NewCSVLog(dir).ReadAll()
	if err == nil {
		t.Fatalf("expected error reading a directory as log")
	}
	if errors.Is(err, history.ErrNotFound) {
		t.Fatalf("directory must not be treated as missing log: %v", err)
	}
}
