package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/limerock/habitflow/pkg/entity"
)

type RegisterRequest struct {
	Username string `validate:"required,alphanum_underscore,min=3,max=100"`
	Email    string `validate:"required,email,max=254"`
	Password string `validate:"required,min=8,max=72"`
}

type CreateHabitRequest struct {
	Title       string `validate:"required,single_line,max=200"`
	Description string `validate:"max=2000"`
}

// UpdateHabitRequest carries a partial update: empty fields leave the
// stored values unchanged, so a description can't be cleared to "".
type UpdateHabitRequest struct {
	Title       string
	Description string
}

type UserServiceI interface {
	// Validates credentials, hashes the password and creates the user.
	// Gives back the new user's id
	Register(ctx context.Context, req *RegisterRequest) (uuid.UUID, error)
	// Compares given credentials. Unknown email and wrong password fail
	// with the same error
	Login(ctx context.Context, email, password string) (uuid.UUID, error)
}

type HabitsServiceI interface {
	CreateHabit(ctx context.Context, uid uuid.UUID, req *CreateHabitRequest) (*entity.Habit, error)
	// Habit is returned with its full ordered progress attached
	GetHabit(ctx context.Context, habitID, userID uuid.UUID) (*entity.Habit, error)
	GetUserHabits(ctx context.Context, uid uuid.UUID) ([]*entity.Habit, error)
	UpdateHabit(ctx context.Context, habitID, userID uuid.UUID, req *UpdateHabitRequest) (*entity.Habit, error)
	DeleteHabit(ctx context.Context, habitID, userID uuid.UUID) error
}

type ProgressServiceI interface {
	// Sets date's entry to completed, creating it when absent. Idempotent
	MarkDay(ctx context.Context, habitID, userID uuid.UUID, date time.Time) (*entity.Habit, error)
	// Removes date's entry. Absent entry is a no-op
	UnmarkDay(ctx context.Context, habitID, userID uuid.UUID, date time.Time) (*entity.Habit, error)
	// Entries of the habit falling in month/year. Month is 1-indexed
	MonthProgress(ctx context.Context, habitID, userID uuid.UUID, month, year int) ([]entity.ProgressEntry, error)
}
