package analysis

import (
	"slices"

	"github.com/limbo/drinklog/pkg/entity"
)

type Streaks struct {
	MaxConsecutiveDays int `json:"max_consecutive_days"`
	MaxRestDays        int `json:"max_rest_days"`
}

// CalculateStreaks finds the longest runs of drinking and of rest among the given records.
// Runs are counted over recorded days only: a day without a record neither breaks nor extends a run.
// The input slice is left untouched.
func CalculateStreaks(records []entity.DailyRecord) Streaks {
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b entity.DailyRecord) int {
		return a.Date.Compare(b.Date)
	})
	var res Streaks
	drinking, resting := 0, 0
	for _, r := range sorted {
		if r.Drank {
			drinking++
			resting = 0
			res.MaxConsecutiveDays = max(res.MaxConsecutiveDays, drinking)
		} else {
			resting++
			drinking = 0
			res.MaxRestDays = max(res.MaxRestDays, resting)
		}
	}
	return res
}
