package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/limbo/drinklog/internal/error_values"
	"github.com/limbo/drinklog/pkg/entity"
)

type GoalsRepository struct {
	conn PgConnection
}

func NewGoalsRepo(pool *pgxpool.Pool) *GoalsRepository {
	return &GoalsRepository{
		conn: pool,
	}
}

func NewGoalsRepoWithConn(conn PgConnection) *GoalsRepository {
	mustPing(conn, "goalsRepo")
	return &GoalsRepository{
		conn: conn,
	}
}

func (gr *GoalsRepository) Upsert(ctx context.Context, goal *entity.Goal) error {
	if goal == nil {
		return errors.New("goal is nil")
	}
	_, err := gr.conn.Exec(
		ctx,
		`INSERT INTO drink_goals (user_id, soju_bottles, beer_cans) VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE
		SET soju_bottles = EXCLUDED.soju_bottles, beer_cans = EXCLUDED.beer_cans, updated_at = NOW();`,
		goal.UserID,
		goal.SojuBottles,
		goal.BeerCans,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return errorvalues.ErrOwnerNotFound
			}
		}
		return errors.New("saving goal error: " + err.Error())
	}
	return nil
}

func (gr *GoalsRepository) GetByUserID(ctx context.Context, uid uuid.UUID) (*entity.Goal, error) {
	var goal entity.Goal
	row := gr.conn.QueryRow(
		ctx,
		`SELECT id, user_id, soju_bottles, beer_cans, created_at, updated_at FROM drink_goals WHERE user_id = $1;`,
		uid,
	)
	err := row.Scan(&goal.ID, &goal.UserID, &goal.SojuBottles, &goal.BeerCans, &goal.CreatedAt, &goal.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.New("getting goal error: " + err.Error())
	}
	return &goal, nil
}
