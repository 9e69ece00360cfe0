package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/limbo/drinklog/internal/analysis"
	errorvalues "github.com/limbo/drinklog/internal/error_values"
	"github.com/limbo/drinklog/internal/repository"
	"github.com/limbo/drinklog/pkg/entity"
)

type RecordsService struct {
	repo repository.RecordsRepositoryI
	now  func() time.Time
}

func NewRecordsService(recordsRepo repository.RecordsRepositoryI) *RecordsService {
	return &RecordsService{
		repo: recordsRepo,
		now:  time.Now,
	}
}

// WithClock replaces the source of "today" used to reject future records.
func (rs *RecordsService) WithClock(now func() time.Time) *RecordsService {
	rs.now = now
	return rs
}

func (rs *RecordsService) SaveRecord(ctx context.Context, uid uuid.UUID, req SaveRecordRequest) (*entity.DailyRecord, error) {
	if !req.Date.IsValid() {
		return nil, fmt.Errorf("%w: invalid record date", errorvalues.ErrValidation)
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	if req.Date.After(civil.DateOf(rs.now())) {
		return nil, errorvalues.ErrRecordDateNotAllowed
	}
	record := entity.DailyRecord{
		UserID:      uid,
		Date:        req.Date,
		Drank:       req.Drank,
		SojuBottles: req.SojuBottles,
		BeerCans:    req.BeerCans,
	}
	// A sober day carries no quantities.
	if !record.Drank {
		record.SojuBottles, record.BeerCans = 0, 0
	}
	err := rs.repo.Upsert(ctx, &record)
	if err != nil {
		if errors.Is(err, errorvalues.ErrOwnerNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("repository saving error: " + err.Error())
	}
	saved, err := rs.repo.GetByDate(ctx, uid, req.Date)
	if err != nil {
		return nil, errors.New("repository searching error: " + err.Error())
	}
	return saved, nil
}

func (rs *RecordsService) GetRecord(ctx context.Context, uid uuid.UUID, date civil.Date) (*entity.DailyRecord, error) {
	if !date.IsValid() {
		return nil, fmt.Errorf("%w: invalid record date", errorvalues.ErrValidation)
	}
	record, err := rs.repo.GetByDate(ctx, uid, date)
	if err != nil {
		if errors.Is(err, errorvalues.ErrRecordNotFound) {
			return nil, err
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	return record, nil
}

func (rs *RecordsService) ListRecords(ctx context.Context, uid uuid.UUID, from, to civil.Date) ([]entity.DailyRecord, error) {
	w, err := analysis.RangeWindow(from, to)
	if err != nil {
		return nil, err
	}
	records, err := rs.repo.GetByDateRange(ctx, uid, w.StartDate, w.EndDate)
	if err != nil {
		return nil, fmt.Errorf("fetching records: %w", err)
	}
	return records, nil
}

func (rs *RecordsService) DeleteRecord(ctx context.Context, uid uuid.UUID, date civil.Date) error {
	if !date.IsValid() {
		return fmt.Errorf("%w: invalid record date", errorvalues.ErrValidation)
	}
	err := rs.repo.Delete(ctx, uid, date)
	if err != nil {
		if errors.Is(err, errorvalues.ErrRecordNotFound) {
			return err
		}
		return errors.New("repository deletion error: " + err.Error())
	}
	return nil
}

func (rs *RecordsService) MonthCalendar(ctx context.Context, uid uuid.UUID, year, month int) ([]entity.CalendarDay, error) {
	w, err := analysis.MonthWindow(year, time.Month(month))
	if err != nil {
		return nil, err
	}
	records, err := rs.repo.GetByDateRange(ctx, uid, w.StartDate, w.EndDate)
	if err != nil {
		return nil, fmt.Errorf("fetching records: %w", err)
	}
	return analysis.Calendar(w, analysis.NewRecordIndex(records)), nil
}
