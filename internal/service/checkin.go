package service

import (
	"errors"
	"time"

	"github.com/disneysandhya1/RebootMe-Backend/internal/history"
	"github.com/disneysandhya1/RebootMe-Backend/internal/wellness"
)

var ErrMoodNotSet = errors.New("mood not set for today (pass --mood or run `rebootme mood`)")

// CheckinOverrides replaces stored session values when non-nil.
type CheckinOverrides struct {
	Mood      *int
	Water     *int
	Stretched *bool
}

type Checkin struct {
	State          wellness.State
	Recommendation string
	Tip            string
}

// BuildState turns the day's counters plus any overrides into a validated
// snapshot taken at now.
func BuildState(s *DaySession, o CheckinOverrides, now time.Time) (wellness.State, error) {
	var mood int
	switch {
	case o.Mood != nil:
		mood = *o.Mood
	case s != nil && s.Mood != nil:
		mood = int(*s.Mood)
	default:
		return wellness.State{}, ErrMoodNotSet
	}
	water := 0
	stretched := false
	if s != nil {
		water = s.Water
		stretched = s.Stretched
	}
	if o.Water != nil {
		water = *o.Water
	}
	if o.Stretched != nil {
		stretched = *o.Stretched
	}
	return wellness.NewState(mood, water, stretched, now)
}

func RunCheckin(s *DaySession, o CheckinOverrides, now time.Time) (*Checkin, error) {
	state, err := BuildState(s, o, now)
	if err != nil {
		return nil, err
	}
	return &Checkin{
		State:          state,
		Recommendation: wellness.Recommend(state),
		Tip:            wellness.TipForMood(int(state.Mood())),
	}, nil
}

// SaveCheckin appends the snapshot to the log.
func SaveCheckin(log history.Log, state wellness.State) (history.Entry, error) {
	e := history.EntryFromState(state)
	if err := log.Append(e); err != nil {
		return history.Entry{}, err
	}
	return e, nil
}
