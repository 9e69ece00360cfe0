package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/limbo/drinklog/internal/analysis"
	errorvalues "github.com/limbo/drinklog/internal/error_values"
	"github.com/limbo/drinklog/internal/repository"
	"github.com/limbo/drinklog/pkg/entity"
	"golang.org/x/sync/errgroup"
)

// AnalysisService reads records and the goal of a user and hands them to the analysis package.
// Every call does its own reads, nothing is cached between calls.
type AnalysisService struct {
	records repository.RecordsRepositoryI
	goals   repository.GoalsRepositoryI
	locale  analysis.LabelLocale
	logger  *slog.Logger
}

func NewAnalysisService(
	recordsRepo repository.RecordsRepositoryI,
	goalsRepo repository.GoalsRepositoryI,
	locale analysis.LabelLocale,
	logger *slog.Logger,
) *AnalysisService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AnalysisService{
		records: recordsRepo,
		goals:   goalsRepo,
		locale:  locale,
		logger:  logger,
	}
}

// fetch loads the records of the window and, when withGoal is set, the goal in parallel.
func (as *AnalysisService) fetch(ctx context.Context, uid uuid.UUID, w analysis.PeriodWindow, withGoal bool) (analysis.RecordIndex, *entity.Goal, error) {
	var (
		records []entity.DailyRecord
		goal    *entity.Goal
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = as.records.GetByDateRange(gctx, uid, w.StartDate, w.EndDate)
		if err != nil {
			return fmt.Errorf("fetching records: %w", err)
		}
		return nil
	})
	if withGoal {
		g.Go(func() error {
			var err error
			goal, err = as.goals.GetByUserID(gctx, uid)
			if err != nil {
				return fmt.Errorf("fetching goal: %w", err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	as.logger.Debug("analysis input loaded",
		slog.String("uid", uid.String()),
		slog.String("from", w.StartDate.String()),
		slog.String("to", w.EndDate.String()),
		slog.Int("records", len(records)),
		slog.Bool("goal", goal != nil),
	)
	return analysis.NewRecordIndex(records), goal, nil
}

func (as *AnalysisService) WeeklyAnalysis(ctx context.Context, uid uuid.UUID, year int) (result []entity.WeeklyAnalysis, err error) {
	defer func(start time.Time) { observeAnalysis(analysis.ModeWeekly, start, err) }(time.Now())
	yw, err := analysis.YearWindow(year)
	if err != nil {
		return nil, err
	}
	// Only the calendar year is read, so a week 52 running into January sees no January records.
	idx, goal, err := as.fetch(ctx, uid, yw, true)
	if err != nil {
		return nil, err
	}
	return analysis.Weekly(year, idx, goal)
}

func (as *AnalysisService) MonthlyAnalysis(ctx context.Context, uid uuid.UUID, year int) (result []entity.MonthlyAnalysis, err error) {
	defer func(start time.Time) { observeAnalysis(analysis.ModeMonthly, start, err) }(time.Now())
	yw, err := analysis.YearWindow(year)
	if err != nil {
		return nil, err
	}
	idx, _, err := as.fetch(ctx, uid, yw, false)
	if err != nil {
		return nil, err
	}
	return analysis.Monthly(year, idx)
}

// CustomPeriodAnalysis validates the range before touching the stores. Records and goal are
// read once for the whole range; breakdown weeks always lie inside it.
func (as *AnalysisService) CustomPeriodAnalysis(ctx context.Context, uid uuid.UUID, start, end civil.Date) (result *entity.CustomPeriodAnalysis, err error) {
	defer func(start time.Time) { observeAnalysis(analysis.ModeCustom, start, err) }(time.Now())
	w, err := analysis.RangeWindow(start, end)
	if err != nil {
		return nil, err
	}
	idx, goal, err := as.fetch(ctx, uid, w, true)
	if err != nil {
		return nil, err
	}
	return analysis.Custom(w, idx, goal)
}

func (as *AnalysisService) Chart(ctx context.Context, uid uuid.UUID, req ChartRequest) ([]entity.ChartDataPoint, error) {
	var res analysis.Result
	switch req.Mode {
	case analysis.ModeWeekly:
		weeks, err := as.WeeklyAnalysis(ctx, uid, req.Year)
		if err != nil {
			return nil, err
		}
		res = analysis.WeeklyResult(weeks)
	case analysis.ModeMonthly:
		months, err := as.MonthlyAnalysis(ctx, uid, req.Year)
		if err != nil {
			return nil, err
		}
		res = analysis.MonthlyResult(months)
	case analysis.ModeCustom:
		custom, err := as.CustomPeriodAnalysis(ctx, uid, req.From, req.To)
		if err != nil {
			return nil, err
		}
		res = analysis.CustomResult(custom)
	default:
		return nil, errorvalues.ErrUnknownMode
	}
	return analysis.ToChartPoints(res, as.locale), nil
}
