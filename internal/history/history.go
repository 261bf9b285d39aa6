package history

import (
	"errors"
	"fmt"
	"time"

	"github.com/disneysandhya1/RebootMe-Backend/internal/wellness"
)

// Entry is one persisted check-in. Entries are never mutated once written.
type Entry struct {
	Timestamp time.Time     `json:"timestamp"`
	Mood      wellness.Mood `json:"mood"`
	Water     int           `json:"water"`
	Stretched bool          `json:"stretched"`
}

func EntryFromState(s wellness.State) Entry {
	return Entry{
		Timestamp: s.Timestamp(),
		Mood:      s.Mood(),
		Water:     s.Water(),
		Stretched: s.Stretched(),
	}
}

// Log is an append-only, insertion-ordered store of entries.
// ReadAll on a store that does not exist yet returns an empty slice.
type Log interface {
	Append(e Entry) error
	ReadAll() ([]Entry, error)
}

type ErrorKind int

const (
	KindIOFailure ErrorKind = iota
	KindNotFound
	KindCorruptData
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindCorruptData:
		return "corrupt data"
	default:
		return "io failure"
	}
}

var (
	ErrNotFound    = errors.New("history store not found")
	ErrIOFailure   = errors.New("history store io failure")
	ErrCorruptData = errors.New("history store corrupt")
)

type StorageError struct {
	Op   string
	Path string
	Kind ErrorKind
	Err  error
}

func (e *StorageError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s history (%s): %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s history %s (%s): %v", e.Op, e.Path, e.Kind, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func (e *StorageError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Kind == KindNotFound
	case ErrIOFailure:
		return e.Kind == KindIOFailure
	case ErrCorruptData:
		return e.Kind == KindCorruptData
	}
	return false
}

func validateEntry(e Entry) error {
	if !e.Mood.Valid() {
		return fmt.Errorf("mood %d out of range", e.Mood)
	}
	if e.Water < 0 {
		return fmt.Errorf("water %d must be >= 0", e.Water)
	}
	if e.Timestamp.IsZero() {
		return fmt.Errorf("timestamp is required")
	}
	return nil
}
