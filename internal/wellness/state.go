package wellness

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Mood is the 0-4 check-in scale, low = negative affect.
type Mood int

const (
	MoodDown Mood = iota
	MoodMeh
	MoodCalm
	MoodHappy
	MoodGlowing
)

const (
	MinMood = MoodDown
	MaxMood = MoodGlowing
)

var ErrInvalidMood = errors.New("invalid mood")

var moodEmojis = [...]string{"😔", "😐", "🙂", "😃", "🤩"}

func (m Mood) Valid() bool {
	return m >= MinMood && m <= MaxMood
}

func (m Mood) Emoji() string {
	if !m.Valid() {
		return "?"
	}
	return moodEmojis[m]
}

func (m Mood) String() string {
	return strconv.Itoa(int(m))
}

// ParseMood accepts either the score ("0".."4") or its emoji.
func ParseMood(s string) (Mood, error) {
	s = strings.TrimSpace(s)
	for i, e := range moodEmojis {
		if s == e {
			return Mood(i), nil
		}
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w %q (expected 0-4 or one of %s)", ErrInvalidMood, s, strings.Join(moodEmojis[:], " "))
	}
	m := Mood(v)
	if !m.Valid() {
		return 0, fmt.Errorf("%w %d (must be between %d and %d)", ErrInvalidMood, v, MinMood, MaxMood)
	}
	return m, nil
}

type ValidationError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

// State is one check-in snapshot. The zero value is a valid state
// (lowest mood, no water, no stretch) but callers should go through NewState.
type State struct {
	mood      Mood
	water     int
	stretched bool
	at        time.Time
}

func NewState(mood int, water int, stretched bool, at time.Time) (State, error) {
	if !Mood(mood).Valid() {
		return State{}, &ValidationError{Field: "mood", Value: mood, Reason: fmt.Sprintf("must be between %d and %d", MinMood, MaxMood)}
	}
	if water < 0 {
		return State{}, &ValidationError{Field: "water", Value: water, Reason: "must be >= 0"}
	}
	if at.IsZero() {
		at = time.Now()
	}
	return State{mood: Mood(mood), water: water, stretched: stretched, at: at}, nil
}

func (s State) Mood() Mood           { return s.mood }
func (s State) Water() int           { return s.water }
func (s State) Stretched() bool      { return s.stretched }
func (s State) Timestamp() time.Time { return s.at }
