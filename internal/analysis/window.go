// Package analysis turns sparse daily drink records into weekly, monthly and custom-period statistics.
// Every date here is a civil.Date: no time zones are involved in bucketing.
package analysis

import (
	"time"

	"cloud.google.com/go/civil"
	errorvalues "github.com/limbo/drinklog/internal/error_values"
)

const (
	WeeksPerYear = 52
	daysPerWeek  = 7
	minYear      = 1
	maxYear      = 9999
)

// PeriodWindow is an inclusive date range and its length in days.
type PeriodWindow struct {
	StartDate civil.Date `json:"start_date"`
	EndDate   civil.Date `json:"end_date"`
	TotalDays int        `json:"total_days"`
}

func (w PeriodWindow) Contains(d civil.Date) bool {
	return !d.Before(w.StartDate) && !d.After(w.EndDate)
}

// InclusiveDays counts the days from start to end, both included.
func InclusiveDays(start, end civil.Date) int {
	return end.DaysSince(start) + 1
}

func ValidateYear(year int) error {
	if year < minYear || year > maxYear {
		return errorvalues.ErrInvalidYear
	}
	return nil
}

// FirstMonday is the start of week 1: January 1 when it is a Monday, otherwise the following Monday.
func FirstMonday(year int) civil.Date {
	jan1 := civil.Date{Year: year, Month: time.January, Day: 1}
	offset := (int(time.Monday) - int(jan1.Weekday()) + daysPerWeek) % daysPerWeek
	return jan1.AddDays(offset)
}

// WeekWindow returns the 7-day block of the given week. Week numbers run 1..52, week 53 never exists.
func WeekWindow(year, week int) (PeriodWindow, error) {
	if err := ValidateYear(year); err != nil {
		return PeriodWindow{}, err
	}
	if week < 1 || week > WeeksPerYear {
		return PeriodWindow{}, errorvalues.ErrInvalidWeek
	}
	start := FirstMonday(year).AddDays((week - 1) * daysPerWeek)
	end := start.AddDays(daysPerWeek - 1)
	return PeriodWindow{
		StartDate: start,
		EndDate:   end,
		TotalDays: min(daysPerWeek, InclusiveDays(start, end)),
	}, nil
}

func MonthWindow(year int, month time.Month) (PeriodWindow, error) {
	if err := ValidateYear(year); err != nil {
		return PeriodWindow{}, err
	}
	if month < time.January || month > time.December {
		return PeriodWindow{}, errorvalues.ErrInvalidMonth
	}
	// Day 0 of the next month is the last day of this one.
	days := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	return PeriodWindow{
		StartDate: civil.Date{Year: year, Month: month, Day: 1},
		EndDate:   civil.Date{Year: year, Month: month, Day: days},
		TotalDays: days,
	}, nil
}

func YearWindow(year int) (PeriodWindow, error) {
	if err := ValidateYear(year); err != nil {
		return PeriodWindow{}, err
	}
	start := civil.Date{Year: year, Month: time.January, Day: 1}
	end := civil.Date{Year: year, Month: time.December, Day: 31}
	return PeriodWindow{StartDate: start, EndDate: end, TotalDays: InclusiveDays(start, end)}, nil
}

// RangeWindow validates a caller supplied range. An end before the start is rejected
// instead of being turned into a negative or absolute day count.
func RangeWindow(start, end civil.Date) (PeriodWindow, error) {
	if !start.IsValid() || !end.IsValid() {
		return PeriodWindow{}, errorvalues.ErrInvalidRange
	}
	if err := ValidateYear(start.Year); err != nil {
		return PeriodWindow{}, err
	}
	if err := ValidateYear(end.Year); err != nil {
		return PeriodWindow{}, err
	}
	if end.Before(start) {
		return PeriodWindow{}, errorvalues.ErrInvalidRange
	}
	return PeriodWindow{StartDate: start, EndDate: end, TotalDays: InclusiveDays(start, end)}, nil
}
