package service

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/disneysandhya1/RebootMe-Backend/internal/wellness"
)

const dayLayout = "2006-01-02"

// DaySession holds the running counters for one local calendar day.
type DaySession struct {
	Day       string         `json:"day"`
	Mood      *wellness.Mood `json:"mood,omitempty"`
	Water     int            `json:"water"`
	Stretched bool           `json:"stretched"`
}

func dayKey(t time.Time) string {
	return beginningOfDay(t).Format(dayLayout)
}

func beginningOfDay(t time.Time) time.Time {
	y, m, d := t.Local().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// TodaySession returns the session for the day containing at. A day with
// no activity yet returns zero counters without writing a row.
func TodaySession(db *sql.DB, at time.Time) (*DaySession, error) {
	day := dayKey(at)
	s := &DaySession{Day: day}
	var (
		mood      sql.NullInt64
		stretched int
	)
	err := db.QueryRow(`SELECT mood, water_count, stretched FROM day_sessions WHERE day = ?`, day).Scan(&mood, &s.Water, &stretched)
	if err == sql.ErrNoRows {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load session for %s: %w", day, err)
	}
	if mood.Valid {
		m := wellness.Mood(mood.Int64)
		s.Mood = &m
	}
	s.Stretched = stretched != 0
	return s, nil
}

func AddWater(db *sql.DB, at time.Time, glasses int) (*DaySession, error) {
	if glasses <= 0 {
		return nil, fmt.Errorf("glasses must be > 0")
	}
	day := dayKey(at)
	_, err := db.Exec(`
INSERT INTO day_sessions(day, water_count, updated_at)
VALUES(?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(day) DO UPDATE SET water_count = water_count + excluded.water_count, updated_at = excluded.updated_at
`, day, glasses)
	if err != nil {
		return nil, fmt.Errorf("add water for %s: %w", day, err)
	}
	return TodaySession(db, at)
}

func MarkStretched(db *sql.DB, at time.Time) (*DaySession, error) {
	day := dayKey(at)
	_, err := db.Exec(`
INSERT INTO day_sessions(day, stretched, updated_at)
VALUES(?, 1, CURRENT_TIMESTAMP)
ON CONFLICT(day) DO UPDATE SET stretched = 1, updated_at = excluded.updated_at
`, day)
	if err != nil {
		return nil, fmt.Errorf("mark stretch for %s: %w", day, err)
	}
	return TodaySession(db, at)
}

func SetMood(db *sql.DB, at time.Time, mood wellness.Mood) (*DaySession, error) {
	if !mood.Valid() {
		return nil, fmt.Errorf("%w %d", wellness.ErrInvalidMood, mood)
	}
	day := dayKey(at)
	_, err := db.Exec(`
INSERT INTO day_sessions(day, mood, updated_at)
VALUES(?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(day) DO UPDATE SET mood = excluded.mood, updated_at = excluded.updated_at
`, day, int(mood))
	if err != nil {
		return nil, fmt.Errorf("set mood for %s: %w", day, err)
	}
	return TodaySession(db, at)
}
