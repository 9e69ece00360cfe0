package service

import (
	"context"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/limbo/drinklog/internal/analysis"
	"github.com/limbo/drinklog/pkg/entity"
)

//go:generate mockgen -destination=mocks/mocks.go -package=mocks . UserServiceI,RecordsServiceI,GoalsServiceI,AnalysisServiceI

type RegisterRequest struct {
	Name     string `validate:"required,alphanum_underscore,min=3,max=100"`
	Password string `validate:"required,min=8,max=72"`
}

type SaveRecordRequest struct {
	Date        civil.Date
	Drank       bool
	SojuBottles int `validate:"min=0,max=100"`
	BeerCans    int `validate:"min=0,max=100"`
}

type SetGoalRequest struct {
	SojuBottles int `validate:"min=0,max=1000"`
	BeerCans    int `validate:"min=0,max=1000"`
}

// ChartRequest selects the analysis behind a chart. Year is used by weekly and monthly
// modes, From and To by custom mode.
type ChartRequest struct {
	Mode analysis.Mode
	Year int
	From civil.Date
	To   civil.Date
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, name, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByName(ctx context.Context, name string) (*entity.User, error)
	DeleteAccount(ctx context.Context, id uuid.UUID, password string) error
}

type RecordsServiceI interface {
	// Validates and stores the record of the day, replacing an existing one
	SaveRecord(ctx context.Context, uid uuid.UUID, req SaveRecordRequest) (*entity.DailyRecord, error)
	GetRecord(ctx context.Context, uid uuid.UUID, date civil.Date) (*entity.DailyRecord, error)
	// Lists records of an inclusive period in ascending date order
	ListRecords(ctx context.Context, uid uuid.UUID, from, to civil.Date) ([]entity.DailyRecord, error)
	DeleteRecord(ctx context.Context, uid uuid.UUID, date civil.Date) error
	// One entry per day of the month with drank, sober or unrecorded status
	MonthCalendar(ctx context.Context, uid uuid.UUID, year, month int) ([]entity.CalendarDay, error)
}

type GoalsServiceI interface {
	SetGoal(ctx context.Context, uid uuid.UUID, req SetGoalRequest) (*entity.Goal, error)
	GetGoal(ctx context.Context, uid uuid.UUID) (*entity.Goal, error)
}

type AnalysisServiceI interface {
	WeeklyAnalysis(ctx context.Context, uid uuid.UUID, year int) ([]entity.WeeklyAnalysis, error)
	MonthlyAnalysis(ctx context.Context, uid uuid.UUID, year int) ([]entity.MonthlyAnalysis, error)
	CustomPeriodAnalysis(ctx context.Context, uid uuid.UUID, start, end civil.Date) (*entity.CustomPeriodAnalysis, error)
	Chart(ctx context.Context, uid uuid.UUID, req ChartRequest) ([]entity.ChartDataPoint, error)
}
