package wellness

const FallbackTip = "Remember, your well-being matters."

var moodTips = map[Mood]string{
	MoodDown:    "Take a deep breath and do a 5-minute guided meditation.",
	MoodMeh:     "Listen to calming music and write down 3 good things.",
	MoodCalm:    "Maintain this calm by walking outside for a few minutes.",
	MoodHappy:   "Share your smile with someone today — it doubles your joy.",
	MoodGlowing: "You're glowing! Use this energy to plan something you love.",
}

// TipForMood looks up the static tip for a raw score. Scores outside 0-4
// get FallbackTip.
func TipForMood(score int) string {
	if tip, ok := moodTips[Mood(score)]; ok {
		return tip
	}
	return FallbackTip
}
