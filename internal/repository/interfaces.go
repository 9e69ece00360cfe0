package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/drinklog/pkg/entity"
)

//go:generate mockgen -destination=mocks/mocks.go -package=mocks . UsersRepositoryI,RecordsRepositoryI,GoalsRepositoryI

type UsersRepositoryI interface {
	// Creates new user in database
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by name. Can be used for login
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Updates user's info
	Update(ctx context.Context, user *entity.User) error
	// Deletes user
	Delete(ctx context.Context, uid uuid.UUID) error
}

type RecordsRepositoryI interface {
	// Creates the record of user for record.Date or overwrites the existing one
	Upsert(ctx context.Context, record *entity.DailyRecord) error
	// Provides the record of user for a date
	GetByDate(ctx context.Context, uid uuid.UUID, date civil.Date) (*entity.DailyRecord, error)
	// Provides records of user for an inclusive period, ordered by date
	GetByDateRange(ctx context.Context, uid uuid.UUID, from, to civil.Date) ([]entity.DailyRecord, error)
	// Deletes the record of user for a date
	Delete(ctx context.Context, uid uuid.UUID, date civil.Date) error
}

type GoalsRepositoryI interface {
	// Creates user's goal or replaces the existing one
	Upsert(ctx context.Context, goal *entity.Goal) error
	// Returns current goal of user. Returns nil without error if none was set
	GetByUserID(ctx context.Context, uid uuid.UUID) (*entity.Goal, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
	SSLMode  string
}

func (pgcfg *PGCfg) ConnString() string {
	connStr := fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
	if pgcfg.SSLMode != "" {
		connStr += "?sslmode=" + pgcfg.SSLMode
	}
	return connStr
}
