package history

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/disneysandhya1/RebootMe-Backend/internal/wellness"
)

var csvHeader = []string{"timestamp", "mood", "water", "stretched"}

// pandas writes datetimes without a zone, keep reading those.
var legacyTimestampLayouts = []string{
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
}

// CSVLog stores entries in a delimited file with a
// timestamp,mood,water,stretched header row.
type CSVLog struct {
	path string
	mu   sync.Mutex
}

func NewCSVLog(path string) *CSVLog {
	return &CSVLog{path: path}
}

func (l *CSVLog) Path() string { return l.path }

func (l *CSVLog) Append(e Entry) error {
	if err := validateEntry(e); err != nil {
		return &StorageError{Op: "append", Path: l.path, Kind: KindCorruptData, Err: err}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return &StorageError{Op: "append", Path: l.path, Kind: KindIOFailure, Err: fmt.Errorf("create log directory: %w", err)}
	}
	f, err := os.OpenFile(l.path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return &StorageError{Op: "append", Path: l.path, Kind: KindIOFailure, Err: err}
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return &StorageError{Op: "append", Path: l.path, Kind: KindIOFailure, Err: err}
	}

	w := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := w.Write(csvHeader); err != nil {
			return &StorageError{Op: "append", Path: l.path, Kind: KindIOFailure, Err: fmt.Errorf("write header: %w", err)}
		}
	} else {
		if err := checkHeader(csv.NewReader(io.NewSectionReader(f, 0, info.Size()))); err != nil {
			return &StorageError{Op: "append", Path: l.path, Kind: KindCorruptData, Err: err}
		}
		if err := terminateLastLine(f, info.Size()); err != nil {
			return &StorageError{Op: "append", Path: l.path, Kind: KindIOFailure, Err: err}
		}
	}

	if err := w.Write(encodeRow(e)); err != nil {
		return &StorageError{Op: "append", Path: l.path, Kind: KindIOFailure, Err: fmt.Errorf("write row: %w", err)}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return &StorageError{Op: "append", Path: l.path, Kind: KindIOFailure, Err: fmt.Errorf("flush row: %w", err)}
	}
	if err := f.Sync(); err != nil {
		return &StorageError{Op: "append", Path: l.path, Kind: KindIOFailure, Err: fmt.Errorf("sync log: %w", err)}
	}
	return nil
}

func (l *CSVLog) ReadAll() ([]Entry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entries, err := l.readAll()
	if errors.Is(err, ErrNotFound) {
		return []Entry{}, nil
	}
	return entries, err
}

func (l *CSVLog) readAll() ([]Entry, error) {
	f, err := os.Open(l.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &StorageError{Op: "read", Path: l.path, Kind: KindNotFound, Err: err}
		}
		return nil, &StorageError{Op: "read", Path: l.path, Kind: KindIOFailure, Err: err}
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(csvHeader)
	if err := checkHeader(r); err != nil {
		if errors.Is(err, io.EOF) {
			return []Entry{}, nil
		}
		return nil, &StorageError{Op: "read", Path: l.path, Kind: KindCorruptData, Err: err}
	}

	entries := make([]Entry, 0)
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &StorageError{Op: "read", Path: l.path, Kind: KindCorruptData, Err: err}
		}
		e, err := decodeRow(record)
		if err != nil {
			line, _ := r.FieldPos(0)
			return nil, &StorageError{Op: "read", Path: l.path, Kind: KindCorruptData, Err: fmt.Errorf("line %d: %w", line, err)}
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// checkHeader returns io.EOF unchanged for an empty file.
func checkHeader(r *csv.Reader) error {
	header, err := r.Read()
	if err == io.EOF {
		return err
	}
	if err != nil {
		return fmt.Errorf("read header: %w", err)
	}
	if len(header) != len(csvHeader) {
		return fmt.Errorf("unexpected header %v", header)
	}
	for i := range csvHeader {
		if header[i] != csvHeader[i] {
			return fmt.Errorf("unexpected header %v", header)
		}
	}
	return nil
}

// terminateLastLine keeps a hand-edited file without a trailing newline
// from gluing the next row onto its last one.
func terminateLastLine(f *os.File, size int64) error {
	last := make([]byte, 1)
	if _, err := f.ReadAt(last, size-1); err != nil {
		return fmt.Errorf("read last byte: %w", err)
	}
	if last[0] == '\n' {
		return nil
	}
	if _, err := f.Write([]byte("\n")); err != nil {
		return fmt.Errorf("terminate last line: %w", err)
	}
	return nil
}

func encodeRow(e Entry) []string {
	stretched := "False"
	if e.Stretched {
		stretched = "True"
	}
	return []string{
		e.Timestamp.Format(time.RFC3339Nano),
		strconv.Itoa(int(e.Mood)),
		strconv.Itoa(e.Water),
		stretched,
	}
}

func decodeRow(record []string) (Entry, error) {
	ts, err := parseTimestamp(record[0])
	if err != nil {
		return Entry{}, err
	}
	mood, err := strconv.Atoi(record[1])
	if err != nil {
		return Entry{}, fmt.Errorf("invalid mood %q", record[1])
	}
	water, err := strconv.Atoi(record[2])
	if err != nil {
		return Entry{}, fmt.Errorf("invalid water %q", record[2])
	}
	stretched, err := strconv.ParseBool(record[3])
	if err != nil {
		return Entry{}, fmt.Errorf("invalid stretched %q", record[3])
	}
	e := Entry{Timestamp: ts, Mood: wellness.Mood(mood), Water: water, Stretched: stretched}
	if err := validateEntry(e); err != nil {
		return Entry{}, err
	}
	return e, nil
}

func parseTimestamp(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, nil
	}
	for _, layout := range legacyTimestampLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", value)
}
