package wellness

const (
	ActionCalm      = "Take a short walk or do a calming breath exercise"
	ActionHydrate   = "Hydrate! Drink a glass of water"
	ActionStretch   = "Do a 1-minute neck or back stretch"
	ActionAffirming = "You're doing great! Keep it up"
)

const (
	lowMoodBelow = MoodCalm
	waterGoal    = 5
)

// Recommend returns the next action using a fixed priority chain:
// low mood > hydration > stretch > affirmation. First match wins.
func Recommend(s State) string {
	if s.mood < lowMoodBelow {
		return ActionCalm
	}
	if s.water < waterGoal {
		return ActionHydrate
	}
	if !s.stretched {
		return ActionStretch
	}
	return ActionAffirming
}
