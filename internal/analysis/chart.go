package analysis

import (
	"fmt"
	"strings"

	errorvalues "github.com/limbo/drinklog/internal/error_values"
	"github.com/limbo/drinklog/pkg/entity"
)

type Mode string

const (
	ModeWeekly  Mode = "weekly"
	ModeMonthly Mode = "monthly"
	ModeCustom  Mode = "custom"
)

func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeWeekly, ModeMonthly, ModeCustom:
		return m, nil
	}
	return "", errorvalues.ErrUnknownMode
}

// Result is one analysis outcome. Mode tells which of the other fields is set.
type Result struct {
	Mode    Mode
	Weekly  []entity.WeeklyAnalysis
	Monthly []entity.MonthlyAnalysis
	Custom  *entity.CustomPeriodAnalysis
}

func WeeklyResult(weeks []entity.WeeklyAnalysis) Result {
	return Result{Mode: ModeWeekly, Weekly: weeks}
}

func MonthlyResult(months []entity.MonthlyAnalysis) Result {
	return Result{Mode: ModeMonthly, Monthly: months}
}

func CustomResult(c *entity.CustomPeriodAnalysis) Result {
	return Result{Mode: ModeCustom, Custom: c}
}

// LabelLocale picks the wording of chart period labels.
type LabelLocale string

const (
	LocaleEnglish LabelLocale = "en"
	LocaleKorean  LabelLocale = "ko"
)

func ParseLocale(s string) LabelLocale {
	if LabelLocale(strings.ToLower(s)) == LocaleKorean {
		return LocaleKorean
	}
	return LocaleEnglish
}

func (l LabelLocale) weekLabel(n int) string {
	if l == LocaleKorean {
		return fmt.Sprintf("%d주차", n)
	}
	return fmt.Sprintf("week %d", n)
}

func (l LabelLocale) monthLabel(n int) string {
	if l == LocaleKorean {
		return fmt.Sprintf("%d월", n)
	}
	return fmt.Sprintf("month %d", n)
}

// ToChartPoints flattens a result into plot points, keeping the input order.
// A custom result is plotted week by week from its breakdown.
func ToChartPoints(res Result, locale LabelLocale) []entity.ChartDataPoint {
	switch res.Mode {
	case ModeWeekly:
		return weeklyPoints(res.Weekly, locale)
	case ModeMonthly:
		points := make([]entity.ChartDataPoint, 0, len(res.Monthly))
		for _, m := range res.Monthly {
			points = append(points, entity.ChartDataPoint{
				Period:       locale.monthLabel(m.Month),
				DrinkingRate: m.DrinkingRate,
				TotalSoju:    m.TotalSojuBottles,
				TotalBeer:    m.TotalBeerCans,
				DrinkingDays: m.DrinkingDays,
				TotalDays:    m.TotalDays,
			})
		}
		return points
	case ModeCustom:
		if res.Custom == nil {
			return []entity.ChartDataPoint{}
		}
		return weeklyPoints(res.Custom.WeeklyBreakdown, locale)
	}
	return []entity.ChartDataPoint{}
}

func weeklyPoints(weeks []entity.WeeklyAnalysis, locale LabelLocale) []entity.ChartDataPoint {
	points := make([]entity.ChartDataPoint, 0, len(weeks))
	for _, w := range weeks {
		points = append(points, entity.ChartDataPoint{
			Period:       locale.weekLabel(w.WeekNumber),
			DrinkingRate: w.DrinkingRate,
			TotalSoju:    w.TotalSojuBottles,
			TotalBeer:    w.TotalBeerCans,
			DrinkingDays: w.DrinkingDays,
			TotalDays:    w.TotalDays,
		})
	}
	return points
}
