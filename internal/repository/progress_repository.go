package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/limerock/habitflow/internal/error_values"
	"github.com/limerock/habitflow/pkg/cleanup"
	"github.com/limerock/habitflow/pkg/entity"
)

// ProgressRepository persists per-day completion entries of habits.
// Per-day uniqueness is a UNIQUE (habit_id, entry_date) constraint, so
// marking is a plain upsert.
type ProgressRepository struct {
	conn PgConnection
}

func NewProgressRepo(cfg DBConfig) *ProgressRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for progressRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for progressRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &ProgressRepository{
		conn: pool,
	}
}

func NewProgressRepoWithConn(conn PgConnection) *ProgressRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for progressRepo: " + err.Error())
	}
	return &ProgressRepository{
		conn: conn,
	}
}

func (pr *ProgressRepository) MarkDay(ctx context.Context, habitID uuid.UUID, day time.Time) error {
	_, err := pr.conn.Exec(
		ctx,
		`INSERT INTO habit_progress (habit_id, entry_date, completed) VALUES ($1, $2, TRUE)
		ON CONFLICT (habit_id, entry_date) DO UPDATE SET completed = TRUE;`,
		habitID,
		day,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return errorvalues.ErrHabitNotFound
			}
		}
		return errors.New("marking day error: " + err.Error())
	}
	return nil
}

func (pr *ProgressRepository) UnmarkDay(ctx context.Context, habitID uuid.UUID, day time.Time) error {
	// Zero affected rows is fine: unmarking an absent day is a no-op
	_, err := pr.conn.Exec(
		ctx,
		`DELETE FROM habit_progress WHERE habit_id = $1 AND entry_date = $2;`,
		habitID,
		day,
	)
	if err != nil {
		return errors.New("unmarking day error: " + err.Error())
	}
	return nil
}

func (pr *ProgressRepository) GetByHabitID(ctx context.Context, habitID uuid.UUID) ([]entity.ProgressEntry, error) {
	rows, err := pr.conn.Query(
		ctx,
		`SELECT entry_date, completed FROM habit_progress WHERE habit_id = $1 ORDER BY id;`,
		habitID,
	)
	if err != nil {
		return nil, errors.New("getting progress error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.ProgressEntry, 0)
	for rows.Next() {
		entry := entity.ProgressEntry{}
		err = rows.Scan(&entry.Date, &entry.Completed)
		if err != nil {
			return nil, errors.New("progress row parsing error: " + err.Error())
		}
		result = append(result, entry)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected progress rows error: " + rows.Err().Error())
	}
	return result, nil
}

func (pr *ProgressRepository) GetByHabitAndMonth(ctx context.Context, habitID uuid.UUID, month time.Month, year int) ([]entity.ProgressEntry, error) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)
	rows, err := pr.conn.Query(
		ctx,
		`SELECT entry_date, completed FROM habit_progress
		WHERE habit_id = $1 AND entry_date >= $2 AND entry_date < $3 ORDER BY id;`,
		habitID,
		from,
		to,
	)
	if err != nil {
		return nil, errors.New("getting progress for month error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.ProgressEntry, 0)
	for rows.Next() {
		entry := entity.ProgressEntry{}
		err = rows.Scan(&entry.Date, &entry.Completed)
		if err != nil {
			return nil, errors.New("progress row parsing error: " + err.Error())
		}
		result = append(result, entry)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected progress rows error: " + rows.Err().Error())
	}
	return result, nil
}
