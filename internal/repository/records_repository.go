package repository

import (
	"context"
	"errors"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/limbo/drinklog/internal/error_values"
	"github.com/limbo/drinklog/pkg/entity"
)

type RecordsRepository struct {
	conn PgConnection
}

func NewRecordsRepo(pool *pgxpool.Pool) *RecordsRepository {
	return &RecordsRepository{
		conn: pool,
	}
}

func NewRecordsRepoWithConn(conn PgConnection) *RecordsRepository {
	mustPing(conn, "recordsRepo")
	return &RecordsRepository{
		conn: conn,
	}
}

// Dates travel to postgres as UTC midnights so the DATE column never shifts a day.
func dateArg(d civil.Date) time.Time {
	return d.In(time.UTC)
}

func (rr *RecordsRepository) Upsert(ctx context.Context, record *entity.DailyRecord) error {
	if record == nil {
		return errors.New("record is nil")
	}
	_, err := rr.conn.Exec(
		ctx,
		`INSERT INTO daily_records (user_id, record_date, drank, soju_bottles, beer_cans) VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, record_date) DO UPDATE
		SET drank = EXCLUDED.drank, soju_bottles = EXCLUDED.soju_bottles, beer_cans = EXCLUDED.beer_cans, updated_at = NOW();`,
		record.UserID,
		dateArg(record.Date),
		record.Drank,
		record.SojuBottles,
		record.BeerCans,
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
		return errors.New("saving record error: " + err.Error())
	}
	return nil
}

func (rr *RecordsRepository) GetByDate(ctx context.Context, uid uuid.UUID, date civil.Date) (*entity.DailyRecord, error) {
	row := rr.conn.QueryRow(
		ctx,
		`SELECT id, user_id, record_date, drank, soju_bottles, beer_cans, created_at, updated_at
		FROM daily_records WHERE user_id = $1 AND record_date = $2;`,
		uid,
		dateArg(date),
	)
	record, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrRecordNotFound
		}
		return nil, errors.New("getting record by date error: " + err.Error())
	}
	return record, nil
}

func (rr *RecordsRepository) GetByDateRange(ctx context.Context, uid uuid.UUID, from, to civil.Date) ([]entity.DailyRecord, error) {
	rows, err := rr.conn.Query(
		ctx,
		`SELECT id, user_id, record_date, drank, soju_bottles, beer_cans, created_at, updated_at
		FROM daily_records WHERE user_id = $1 AND record_date >= $2 AND record_date <= $3 ORDER BY record_date;`,
		uid,
		dateArg(from),
		dateArg(to),
	)
	if err != nil {
		return nil, errors.New("getting records for period error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.DailyRecord, 0, 8)
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, errors.New("record row parsing error: " + err.Error())
		}
		result = append(result, *record)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected record rows error: " + err.Error())
	}
	return result, nil
}

func (rr *RecordsRepository) Delete(ctx context.Context, uid uuid.UUID, date civil.Date) error {
	ct, err := rr.conn.Exec(
		ctx,
		`DELETE FROM daily_records WHERE user_id = $1 AND record_date = $2;`,
		uid,
		dateArg(date),
	)
	if err != nil {
		return errors.New("deleting record error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrRecordNotFound
	}
	return nil
}

func scanRecord(row pgx.Row) (*entity.DailyRecord, error) {
	var (
		record entity.DailyRecord
		day    time.Time
	)
	err := row.Scan(
		&record.ID,
		&record.UserID,
		&day,
		&record.Drank,
		&record.SojuBottles,
		&record.BeerCans,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	record.Date = civil.DateOf(day)
	return &record, nil
}
