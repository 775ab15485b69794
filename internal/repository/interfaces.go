package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limerock/habitflow/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new user in database. Returns the generated id
	Create(ctx context.Context, user *entity.User) (uuid.UUID, error)
	// Looks up user by email. Used for login
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}

type HabitsRepositoryI interface {
	// Creates new habit. Only UserID, Title, Description are read from habit
	Create(ctx context.Context, habit *entity.Habit) (uuid.UUID, error)
	// Searches habit with given id. Progress is not attached here
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Habit, error)
	// Lists habits owned by user with uid
	GetByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.Habit, error)
	// Updates habit's title and description by ID
	Update(ctx context.Context, habit *entity.Habit) error
	// Deletes habit with id and its progress
	Delete(ctx context.Context, id uuid.UUID) error
}

type ProgressRepositoryI interface {
	// Upserts the entry for day with completed = TRUE. Idempotent
	MarkDay(ctx context.Context, habitID uuid.UUID, day time.Time) error
	// Removes the entry for day. Absent entry is a no-op
	UnmarkDay(ctx context.Context, habitID uuid.UUID, day time.Time) error
	// Provides all entries of habitID in insertion order
	GetByHabitID(ctx context.Context, habitID uuid.UUID) ([]entity.ProgressEntry, error)
	// Provides entries of habitID falling in month/year, insertion order
	GetByHabitAndMonth(ctx context.Context, habitID uuid.UUID, month time.Month, year int) ([]entity.ProgressEntry, error)
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
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
