package analysis_test

import (
	"testing"
	"time"

	"github.com/limbo/drinklog/internal/analysis"
	"github.com/limbo/drinklog/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekly(t *testing.T) {
	t.Run("empty year", func(t *testing.T) {
		weeks, err := analysis.Weekly(2024, analysis.NewRecordIndex(nil), &entity.Goal{SojuBottles: 7, BeerCans: 14})
		require.NoError(t, err)
		require.Len(t, weeks, 52)
		for i, w := range weeks {
			assert.Equal(t, i+1, w.WeekNumber)
			assert.Equal(t, 2024, w.Year)
			assert.Equal(t, 7, w.TotalDays)
			assert.Zero(t, w.DrinkingDays)
			assert.Zero(t, w.DrinkingRate)
			assert.Zero(t, w.GoalAchievement)
		}
	})
	t.Run("goal achievement and bounds", func(t *testing.T) {
		records := []entity.DailyRecord{
			{Date: date(2024, time.January, 1), Drank: true, SojuBottles: 6, BeerCans: 4},
			{Date: date(2024, time.January, 3), Drank: true, SojuBottles: 4, BeerCans: 3},
			{Date: date(2024, time.January, 5), Drank: false},
			{Date: date(2024, time.January, 8), Drank: true, BeerCans: 2},
		}
		weeks, err := analysis.Weekly(2024, analysis.NewRecordIndex(records), &entity.Goal{SojuBottles: 7, BeerCans: 14})
		require.NoError(t, err)
		first := weeks[0]
		assert.Equal(t, 2, first.DrinkingDays)
		assert.InDelta(t, 200.0/7, first.DrinkingRate, 1e-9)
		assert.Equal(t, 10, first.TotalSojuBottles)
		assert.Equal(t, 7, first.TotalBeerCans)
		assert.InDelta(t, 75, first.GoalAchievement, 1e-9)

		second := weeks[1]
		assert.Equal(t, 1, second.DrinkingDays)
		assert.Equal(t, 2, second.TotalBeerCans)
		for _, w := range weeks {
			assert.LessOrEqual(t, w.DrinkingDays, w.TotalDays)
			assert.GreaterOrEqual(t, w.DrinkingRate, 0.0)
			assert.LessOrEqual(t, w.DrinkingRate, 100.0)
		}
	})
	t.Run("days before first monday belong to no week", func(t *testing.T) {
		records := []entity.DailyRecord{{Date: date(2023, time.January, 1), Drank: true, SojuBottles: 1}}
		weeks, err := analysis.Weekly(2023, analysis.NewRecordIndex(records), nil)
		require.NoError(t, err)
		for _, w := range weeks {
			assert.Zero(t, w.DrinkingDays)
		}
	})
	t.Run("idempotent", func(t *testing.T) {
		idx := analysis.NewRecordIndex([]entity.DailyRecord{{Date: date(2024, time.May, 6), Drank: true, SojuBottles: 1}})
		a, err := analysis.Weekly(2024, idx, nil)
		require.NoError(t, err)
		b, err := analysis.Weekly(2024, idx, nil)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})
}

func TestMonthly(t *testing.T) {
	records := []entity.DailyRecord{
		{Date: date(2024, time.February, 1), Drank: true, SojuBottles: 2},
		{Date: date(2024, time.February, 2), Drank: true, BeerCans: 4},
		{Date: date(2024, time.February, 3), Drank: false},
		{Date: date(2024, time.February, 4), Drank: false},
		{Date: date(2024, time.February, 29), Drank: true, SojuBottles: 1},
		{Date: date(2024, time.March, 1), Drank: true, SojuBottles: 5},
	}
	months, err := analysis.Monthly(2024, analysis.NewRecordIndex(records))
	require.NoError(t, err)
	require.Len(t, months, 12)

	feb := months[1]
	assert.Equal(t, 2, feb.Month)
	assert.Equal(t, 29, feb.TotalDays)
	assert.Equal(t, 3, feb.DrinkingDays)
	assert.InDelta(t, 300.0/29, feb.DrinkingRate, 1e-9)
	assert.Equal(t, 3, feb.TotalSojuBottles)
	assert.Equal(t, 4, feb.TotalBeerCans)
	assert.InDelta(t, 3.0/29, feb.AverageDailySoju, 1e-9)
	assert.InDelta(t, 4.0/29, feb.AverageDailyBeer, 1e-9)
	assert.Equal(t, 2, feb.MaxConsecutiveDays)
	assert.Equal(t, 2, feb.MaxRestDays)

	mar := months[2]
	assert.Equal(t, 31, mar.TotalDays)
	assert.Equal(t, 1, mar.DrinkingDays)
	assert.Equal(t, 1, mar.MaxConsecutiveDays)

	jan := months[0]
	assert.Zero(t, jan.DrinkingDays)
	assert.Zero(t, jan.MaxConsecutiveDays)
	assert.Zero(t, jan.MaxRestDays)
}

func TestCustom(t *testing.T) {
	t.Run("first week of 2024", func(t *testing.T) {
		w, err := analysis.RangeWindow(date(2024, time.January, 1), date(2024, time.January, 7))
		require.NoError(t, err)
		res, err := analysis.Custom(w, analysis.NewRecordIndex(nil), nil)
		require.NoError(t, err)
		assert.Equal(t, 7, res.TotalDays)
		require.Len(t, res.WeeklyBreakdown, 1)
		assert.Equal(t, 1, res.WeeklyBreakdown[0].WeekNumber)
		assert.Equal(t, date(2024, time.January, 1), res.WeeklyBreakdown[0].StartDate)
	})
	t.Run("across years", func(t *testing.T) {
		records := []entity.DailyRecord{
			{Date: date(2023, time.December, 19), Drank: true, SojuBottles: 9},
			{Date: date(2023, time.December, 20), Drank: true, SojuBottles: 1},
			{Date: date(2023, time.December, 26), Drank: true, BeerCans: 2},
			{Date: date(2023, time.December, 27), Drank: false},
			{Date: date(2024, time.January, 2), Drank: true, SojuBottles: 3},
			{Date: date(2024, time.January, 3), Drank: true, SojuBottles: 1},
			{Date: date(2024, time.January, 4), Drank: true, BeerCans: 1},
			{Date: date(2024, time.January, 15), Drank: true, SojuBottles: 9},
		}
		w, err := analysis.RangeWindow(date(2023, time.December, 20), date(2024, time.January, 14))
		require.NoError(t, err)
		goal := &entity.Goal{SojuBottles: 4, BeerCans: 2}
		res, err := analysis.Custom(w, analysis.NewRecordIndex(records), goal)
		require.NoError(t, err)

		assert.Equal(t, 26, res.TotalDays)
		assert.Equal(t, 5, res.DrinkingDays)
		assert.Equal(t, 5, res.TotalSojuBottles)
		assert.Equal(t, 3, res.TotalBeerCans)
		assert.InDelta(t, 500.0/26, res.DrinkingRate, 1e-9)
		assert.InDelta(t, 5.0/26, res.AverageDailySoju, 1e-9)
		assert.Equal(t, 3, res.MaxConsecutiveDays)
		assert.Equal(t, 1, res.MaxRestDays)

		require.Len(t, res.WeeklyBreakdown, 3)
		assert.Equal(t, 2023, res.WeeklyBreakdown[0].Year)
		assert.Equal(t, 52, res.WeeklyBreakdown[0].WeekNumber)
		assert.Equal(t, date(2023, time.December, 25), res.WeeklyBreakdown[0].StartDate)
		assert.Equal(t, 2, res.WeeklyBreakdown[0].TotalBeerCans)
		assert.InDelta(t, 50, res.WeeklyBreakdown[0].GoalAchievement, 1e-9)
		assert.Equal(t, 2024, res.WeeklyBreakdown[1].Year)
		assert.Equal(t, 1, res.WeeklyBreakdown[1].WeekNumber)
		assert.Equal(t, 4, res.WeeklyBreakdown[1].TotalSojuBottles)
		assert.InDelta(t, 75, res.WeeklyBreakdown[1].GoalAchievement, 1e-9)
		assert.Equal(t, 2, res.WeeklyBreakdown[2].WeekNumber)
		assert.Zero(t, res.WeeklyBreakdown[2].DrinkingDays)
	})
	t.Run("range shorter than any week", func(t *testing.T) {
		w, err := analysis.RangeWindow(date(2024, time.January, 3), date(2024, time.January, 5))
		require.NoError(t, err)
		res, err := analysis.Custom(w, analysis.NewRecordIndex(nil), nil)
		require.NoError(t, err)
		assert.Equal(t, 3, res.TotalDays)
		assert.Empty(t, res.WeeklyBreakdown)
	})
}

func TestCalendar(t *testing.T) {
	records := []entity.DailyRecord{
		{Date: date(2024, time.February, 1), Drank: true, SojuBottles: 1},
		{Date: date(2024, time.February, 2), Drank: false},
	}
	w, err := analysis.MonthWindow(2024, time.February)
	require.NoError(t, err)
	days := analysis.Calendar(w, analysis.NewRecordIndex(records))
	require.Len(t, days, 29)
	assert.Equal(t, entity.DayDrank, days[0].Status)
	assert.Equal(t, entity.DaySober, days[1].Status)
	assert.Equal(t, entity.DayUnrecorded, days[28].Status)
	assert.Equal(t, date(2024, time.February, 29), days[28].Date)
}
