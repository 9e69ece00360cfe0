package analysis_test

import (
	"testing"
	"time"

	"github.com/limbo/drinklog/internal/analysis"
	"github.com/limbo/drinklog/pkg/entity"
	"github.com/stretchr/testify/assert"
)

func TestAggregate(t *testing.T) {
	records := []entity.DailyRecord{
		{Date: date(2024, time.January, 1), Drank: true, SojuBottles: 2, BeerCans: 3},
		{Date: date(2024, time.January, 2), Drank: false},
		{Date: date(2024, time.January, 4), Drank: true, SojuBottles: 1},
	}
	t.Run("week", func(t *testing.T) {
		res := analysis.Aggregate(records, 7)
		assert.Equal(t, 7, res.TotalDays)
		assert.Equal(t, 2, res.DrinkingDays)
		assert.InDelta(t, 200.0/7, res.DrinkingRate, 1e-9)
		assert.Equal(t, 3, res.TotalSojuBottles)
		assert.Equal(t, 3, res.TotalBeerCans)
		assert.InDelta(t, 3.0/7, res.AverageDailySoju, 1e-9)
		assert.InDelta(t, 3.0/7, res.AverageDailyBeer, 1e-9)
	})
	t.Run("no records", func(t *testing.T) {
		res := analysis.Aggregate(nil, 31)
		assert.Equal(t, analysis.Totals{TotalDays: 31}, res)
	})
	t.Run("zero days does not divide", func(t *testing.T) {
		res := analysis.Aggregate(records, 0)
		assert.Zero(t, res.DrinkingRate)
		assert.Zero(t, res.AverageDailySoju)
		assert.Zero(t, res.AverageDailyBeer)
	})
}

func TestGoalAchievement(t *testing.T) {
	testCases := []struct {
		Desc   string
		Goal   *entity.Goal
		Soju   int
		Beer   int
		Result float64
	}{
		{Desc: "no goal", Goal: nil, Soju: 3, Beer: 3, Result: 0},
		{Desc: "empty goal", Goal: &entity.Goal{}, Soju: 3, Beer: 3, Result: 0},
		{Desc: "soju capped, beer half", Goal: &entity.Goal{SojuBottles: 7, BeerCans: 14}, Soju: 10, Beer: 7, Result: 75},
		{Desc: "only soju target", Goal: &entity.Goal{SojuBottles: 4}, Soju: 2, Beer: 10, Result: 25},
		{Desc: "only beer target reached", Goal: &entity.Goal{BeerCans: 5}, Soju: 0, Beer: 5, Result: 50},
		{Desc: "both exceeded", Goal: &entity.Goal{SojuBottles: 1, BeerCans: 1}, Soju: 9, Beer: 9, Result: 100},
		{Desc: "nothing drunk", Goal: &entity.Goal{SojuBottles: 3, BeerCans: 3}, Soju: 0, Beer: 0, Result: 0},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			assert.InDelta(t, tc.Result, analysis.GoalAchievement(tc.Goal, tc.Soju, tc.Beer), 1e-9)
		})
	}
}
