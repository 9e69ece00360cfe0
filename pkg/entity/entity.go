package entity

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Name         string
	PasswordHash string
}

// DailyRecord is what a user logged for one calendar day. Quantities are zero when Drank is false.
type DailyRecord struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"uid"`
	Date        civil.Date `json:"date"`
	Drank       bool       `json:"drank"`
	SojuBottles int        `json:"soju_bottles"`
	BeerCans    int        `json:"beer_cans"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Goal is the user's weekly drinking target.
type Goal struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"uid"`
	SojuBottles int       `json:"soju_bottles"`
	BeerCans    int       `json:"beer_cans"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type DayStatus string

const (
	DayDrank      DayStatus = "drank"
	DaySober      DayStatus = "sober"
	DayUnrecorded DayStatus = "unrecorded"
)

type CalendarDay struct {
	Date   civil.Date `json:"date"`
	Status DayStatus  `json:"status"`
}

type WeeklyAnalysis struct {
	WeekNumber       int        `json:"week_number"`
	Year             int        `json:"year"`
	StartDate        civil.Date `json:"start_date"`
	EndDate          civil.Date `json:"end_date"`
	TotalDays        int        `json:"total_days"`
	DrinkingDays     int        `json:"drinking_days"`
	DrinkingRate     float64    `json:"drinking_rate"`
	TotalSojuBottles int        `json:"total_soju_bottles"`
	TotalBeerCans    int        `json:"total_beer_cans"`
	GoalAchievement  float64    `json:"goal_achievement"`
}

type MonthlyAnalysis struct {
	Month              int     `json:"month"`
	Year               int     `json:"year"`
	TotalDays          int     `json:"total_days"`
	DrinkingDays       int     `json:"drinking_days"`
	DrinkingRate       float64 `json:"drinking_rate"`
	TotalSojuBottles   int     `json:"total_soju_bottles"`
	TotalBeerCans      int     `json:"total_beer_cans"`
	AverageDailySoju   float64 `json:"average_daily_soju"`
	AverageDailyBeer   float64 `json:"average_daily_beer"`
	MaxConsecutiveDays int     `json:"max_consecutive_days"`
	MaxRestDays        int     `json:"max_rest_days"`
}

type CustomPeriodAnalysis struct {
	StartDate          civil.Date       `json:"start_date"`
	EndDate            civil.Date       `json:"end_date"`
	TotalDays          int              `json:"total_days"`
	DrinkingDays       int              `json:"drinking_days"`
	DrinkingRate       float64          `json:"drinking_rate"`
	TotalSojuBottles   int              `json:"total_soju_bottles"`
	TotalBeerCans      int              `json:"total_beer_cans"`
	AverageDailySoju   float64          `json:"average_daily_soju"`
	AverageDailyBeer   float64          `json:"average_daily_beer"`
	MaxConsecutiveDays int              `json:"max_consecutive_days"`
	MaxRestDays        int              `json:"max_rest_days"`
	WeeklyBreakdown    []WeeklyAnalysis `json:"weekly_breakdown"`
}

type ChartDataPoint struct {
	Period       string  `json:"period"`
	DrinkingRate float64 `json:"drinking_rate"`
	TotalSoju    int     `json:"total_soju"`
	TotalBeer    int     `json:"total_beer"`
	DrinkingDays int     `json:"drinking_days"`
	TotalDays    int     `json:"total_days"`
}
