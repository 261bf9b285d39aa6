package wellness_test

import (
	"errors"
	"testing"
	"time"

	"github.com/disneysandhya1/RebootMe-Backend/internal/wellness"
)

func mustState(t *testing.T, mood, water int, stretched bool) wellness.State {
	t.Helper()
	s, err := wellness.NewState(mood, water, stretched, time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("new state mood=%d water=%d: %v", mood, water, err)
	}
	return s
}

func TestRecommendExamples(t *testing.T) {
	t.Parallel()

	cases := []struct {
		mood      int
		water     int
		stretched bool
		want      string
	}{
		{1, 0, false, "Take a short walk or do a calming breath exercise"},
		{3, 4, true, "Hydrate! Drink a glass of water"},
		{4, 10, false, "Do a 1-minute neck or back stretch"},
		{4, 10, true, "You're doing great! Keep it up"},
	}
	for _, tc := range cases {
		got := wellness.Recommend(mustState(t, tc.mood, tc.water, tc.stretched))
		if got != tc.want {
			t.Fatalf("recommend(%d, %d, %v): expected %q, got %q", tc.mood, tc.water, tc.stretched, tc.want, got)
		}
	}
}

func TestRecommendPriorityChain(t *testing.T) {
	t.Parallel()

	for mood := 0; mood <= 4; mood++ {
		for water := 0; water <= 12; water++ {
			for _, stretched := range []bool{false, true} {
				got := wellness.Recommend(mustState(t, mood, water, stretched))
				var want string
				switch {
				case mood < 2:
					want = wellness.ActionCalm
				case water < 5:
					want = wellness.ActionHydrate
				case !stretched:
					want = wellness.ActionStretch
				default:
					want = wellness.ActionAffirming
				}
				if got != want {
					t.Fatalf("recommend(%d, %d, %v): expected %q, got %q", mood, water, stretched, want, got)
				}
			}
		}
	}
}

func TestRecommendThresholdsAreStrict(t *testing.T) {
	t.Parallel()

	if got := wellness.Recommend(mustState(t, 2, 5, false)); got != wellness.ActionStretch {
		t.Fatalf("mood 2 / water 5 should skip calm and hydrate branches, got %q", got)
	}
	if got := wellness.Recommend(mustState(t, 2, 4, true)); got != wellness.ActionHydrate {
		t.Fatalf("mood 2 / water 4 should hydrate, got %q", got)
	}
}

func TestNewStateRejectsOutOfDomain(t *testing.T) {
	t.Parallel()

	cases := []struct {
		mood  int
		water int
		field string
	}{
		{-1, 0, "mood"},
		{5, 0, "mood"},
		{99, 3, "mood"},
		{2, -1, "water"},
	}
	for _, tc := range cases {
		_, err := wellness.NewState(tc.mood, tc.water, false, time.Now())
		var verr *wellness.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("mood=%d water=%d: expected validation error, got %v", tc.mood, tc.water, err)
		}
		if verr.Field != tc.field {
			t.Fatalf("mood=%d water=%d: expected field %q, got %q", tc.mood, tc.water, tc.field, verr.Field)
		}
	}
}

func TestNewStateDefaultsTimestamp(t *testing.T) {
	t.Parallel()

	before := time.Now()
	s, err := wellness.NewState(3, 2, true, time.Time{})
	if err != nil {
		t.Fatalf("new state: %v", err)
	}
	if s.Timestamp().Before(before) {
		t.Fatalf("expected timestamp to default to now, got %s", s.Timestamp())
	}
	if s.Mood() != wellness.MoodHappy || s.Water() != 2 || !s.Stretched() {
		t.Fatalf("unexpected state fields: %+v", s)
	}
}
