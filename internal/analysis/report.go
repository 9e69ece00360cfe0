package analysis

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/limbo/drinklog/pkg/entity"
)

// Weekly builds the 52 weekly entries of a year, ordered by week number.
func Weekly(year int, idx RecordIndex, goal *entity.Goal) ([]entity.WeeklyAnalysis, error) {
	result := make([]entity.WeeklyAnalysis, 0, WeeksPerYear)
	for week := 1; week <= WeeksPerYear; week++ {
		w, err := WeekWindow(year, week)
		if err != nil {
			return nil, err
		}
		t := Aggregate(idx.Between(w), w.TotalDays)
		result = append(result, entity.WeeklyAnalysis{
			WeekNumber:       week,
			Year:             year,
			StartDate:        w.StartDate,
			EndDate:          w.EndDate,
			TotalDays:        t.TotalDays,
			DrinkingDays:     t.DrinkingDays,
			DrinkingRate:     t.DrinkingRate,
			TotalSojuBottles: t.TotalSojuBottles,
			TotalBeerCans:    t.TotalBeerCans,
			GoalAchievement:  GoalAchievement(goal, t.TotalSojuBottles, t.TotalBeerCans),
		})
	}
	return result, nil
}

// Monthly builds the 12 monthly entries of a year, ordered by month.
func Monthly(year int, idx RecordIndex) ([]entity.MonthlyAnalysis, error) {
	result := make([]entity.MonthlyAnalysis, 0, 12)
	for month := time.January; month <= time.December; month++ {
		w, err := MonthWindow(year, month)
		if err != nil {
			return nil, err
		}
		records := idx.Between(w)
		t := Aggregate(records, w.TotalDays)
		s := CalculateStreaks(records)
		result = append(result, entity.MonthlyAnalysis{
			Month:              int(month),
			Year:               year,
			TotalDays:          t.TotalDays,
			DrinkingDays:       t.DrinkingDays,
			DrinkingRate:       t.DrinkingRate,
			TotalSojuBottles:   t.TotalSojuBottles,
			TotalBeerCans:      t.TotalBeerCans,
			AverageDailySoju:   t.AverageDailySoju,
			AverageDailyBeer:   t.AverageDailyBeer,
			MaxConsecutiveDays: s.MaxConsecutiveDays,
			MaxRestDays:        s.MaxRestDays,
		})
	}
	return result, nil
}

// Custom aggregates an arbitrary range. The weekly breakdown runs the weekly builder for every
// calendar year the range touches and keeps the weeks lying inside that year's clipped bounds.
// idx must hold at least the records of the range.
func Custom(w PeriodWindow, idx RecordIndex, goal *entity.Goal) (*entity.CustomPeriodAnalysis, error) {
	records := idx.Between(w)
	t := Aggregate(records, w.TotalDays)
	s := CalculateStreaks(records)
	breakdown, err := weeklyBreakdown(w, idx, goal)
	if err != nil {
		return nil, err
	}
	return &entity.CustomPeriodAnalysis{
		StartDate:          w.StartDate,
		EndDate:            w.EndDate,
		TotalDays:          t.TotalDays,
		DrinkingDays:       t.DrinkingDays,
		DrinkingRate:       t.DrinkingRate,
		TotalSojuBottles:   t.TotalSojuBottles,
		TotalBeerCans:      t.TotalBeerCans,
		AverageDailySoju:   t.AverageDailySoju,
		AverageDailyBeer:   t.AverageDailyBeer,
		MaxConsecutiveDays: s.MaxConsecutiveDays,
		MaxRestDays:        s.MaxRestDays,
		WeeklyBreakdown:    breakdown,
	}, nil
}

func weeklyBreakdown(w PeriodWindow, idx RecordIndex, goal *entity.Goal) ([]entity.WeeklyAnalysis, error) {
	result := make([]entity.WeeklyAnalysis, 0)
	startYear, endYear := w.StartDate.Year, w.EndDate.Year
	for year := startYear; year <= endYear; year++ {
		bounds, err := YearWindow(year)
		if err != nil {
			return nil, err
		}
		if year == startYear {
			bounds.StartDate = w.StartDate
		}
		if year == endYear {
			bounds.EndDate = w.EndDate
		}
		weeks, err := Weekly(year, idx, goal)
		if err != nil {
			return nil, err
		}
		for _, wk := range weeks {
			if !wk.StartDate.Before(bounds.StartDate) && !wk.EndDate.After(bounds.EndDate) {
				result = append(result, wk)
			}
		}
	}
	return result, nil
}

// Calendar lists every day of the window with its logged status.
func Calendar(w PeriodWindow, idx RecordIndex) []entity.CalendarDay {
	days := make([]entity.CalendarDay, 0, w.TotalDays)
	for d := w.StartDate; !d.After(w.EndDate); d = d.AddDays(1) {
		days = append(days, entity.CalendarDay{Date: d, Status: dayStatus(idx, d)})
	}
	return days
}

func dayStatus(idx RecordIndex, d civil.Date) entity.DayStatus {
	r, ok := idx.Lookup(d)
	switch {
	case !ok:
		return entity.DayUnrecorded
	case r.Drank:
		return entity.DayDrank
	default:
		return entity.DaySober
	}
}
