package analysis

import "github.com/limbo/drinklog/pkg/entity"

// Totals are the sums and rates of one bucket.
type Totals struct {
	TotalDays        int
	DrinkingDays     int
	DrinkingRate     float64
	TotalSojuBottles int
	TotalBeerCans    int
	AverageDailySoju float64
	AverageDailyBeer float64
}

// Aggregate sums the records of a window. totalDays is the window length, not the number of records.
func Aggregate(records []entity.DailyRecord, totalDays int) Totals {
	t := Totals{TotalDays: totalDays}
	for _, r := range records {
		if r.Drank {
			t.DrinkingDays++
		}
		t.TotalSojuBottles += max(r.SojuBottles, 0)
		t.TotalBeerCans += max(r.BeerCans, 0)
	}
	if totalDays > 0 {
		t.DrinkingRate = float64(t.DrinkingDays) / float64(totalDays) * 100
		t.AverageDailySoju = float64(t.TotalSojuBottles) / float64(totalDays)
		t.AverageDailyBeer = float64(t.TotalBeerCans) / float64(totalDays)
	}
	return t
}

// GoalAchievement scores a week against the weekly goal on a 0..100 scale.
// Each component is capped at 1 before averaging; a component without a target contributes 0.
func GoalAchievement(goal *entity.Goal, soju, beer int) float64 {
	if goal == nil || (goal.SojuBottles <= 0 && goal.BeerCans <= 0) {
		return 0
	}
	sojuRate, beerRate := 0.0, 0.0
	if goal.SojuBottles > 0 {
		sojuRate = min(float64(soju)/float64(goal.SojuBottles), 1)
	}
	if goal.BeerCans > 0 {
		beerRate = min(float64(beer)/float64(goal.BeerCans), 1)
	}
	return (sojuRate + beerRate) / 2 * 100
}
