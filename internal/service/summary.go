package service

import (
	"time"

	"github.com/disneysandhya1/RebootMe-Backend/internal/history"
)

type HistorySummary struct {
	Entries      int       `json:"entries"`
	AverageMood  float64   `json:"average_mood"`
	AverageWater float64   `json:"average_water"`
	StretchRate  float64   `json:"stretch_rate"`
	First        time.Time `json:"first,omitempty"`
	Last         time.Time `json:"last,omitempty"`
}

func Summarize(entries []history.Entry) HistorySummary {
	out := HistorySummary{Entries: len(entries)}
	if len(entries) == 0 {
		return out
	}
	var mood, water, stretched int
	for _, e := range entries {
		mood += int(e.Mood)
		water += e.Water
		if e.Stretched {
			stretched++
		}
	}
	n := float64(len(entries))
	out.AverageMood = float64(mood) / n
	out.AverageWater = float64(water) / n
	out.StretchRate = float64(stretched) / n
	out.First = entries[0].Timestamp
	out.Last = entries[len(entries)-1].Timestamp
	return out
}
