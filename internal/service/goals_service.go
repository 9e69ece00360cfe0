package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/drinklog/internal/error_values"
	"github.com/limbo/drinklog/internal/repository"
	"github.com/limbo/drinklog/pkg/entity"
)

type GoalsService struct {
	repo repository.GoalsRepositoryI
}

func NewGoalsService(goalsRepo repository.GoalsRepositoryI) *GoalsService {
	return &GoalsService{
		repo: goalsRepo,
	}
}

// SetGoal replaces the user's weekly goal.
func (gs *GoalsService) SetGoal(ctx context.Context, uid uuid.UUID, req SetGoalRequest) (*entity.Goal, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	err := gs.repo.Upsert(ctx, &entity.Goal{
		UserID:      uid,
		SojuBottles: req.SojuBottles,
		BeerCans:    req.BeerCans,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrOwnerNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("repository saving error: " + err.Error())
	}
	return gs.GetGoal(ctx, uid)
}

func (gs *GoalsService) GetGoal(ctx context.Context, uid uuid.UUID) (*entity.Goal, error) {
	goal, err := gs.repo.GetByUserID(ctx, uid)
	if err != nil {
		return nil, errors.New("repository searching error: " + err.Error())
	}
	if goal == nil {
		return nil, errorvalues.ErrGoalNotFound
	}
	return goal, nil
}
