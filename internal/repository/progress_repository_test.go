package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limerock/habitflow/internal/error_values"
	"github.com/limerock/habitflow/internal/repository"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
)

func TestMarkDay(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewProgressRepoWithConn(conn)
	habitID := uuid.New()
	day := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta(`INSERT INTO habit_progress (habit_id, entry_date, completed) VALUES ($1, $2, TRUE)
		ON CONFLICT (habit_id, entry_date) DO UPDATE SET completed = TRUE;`)
	t.Run("marked", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(habitID, day).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		err := repo.MarkDay(ctx, habitID, day)
		assert.NoError(t, err)
	})
	t.Run("marking existing entry is fine", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(habitID, day).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		err := repo.MarkDay(ctx, habitID, day)
		assert.NoError(t, err)
	})
	t.Run("fk violation maps to habit not found", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(habitID, day).
			WillReturnError(&pgconn.PgError{
				Code: "23503",
			})
		err := repo.MarkDay(ctx, habitID, day)
		assert.ErrorIs(t, err, errorvalues.ErrHabitNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(habitID, day).
			WillReturnError(errors.New("db error"))
		err := repo.MarkDay(ctx, habitID, day)
		assert.Error(t, err)
	})
}

func TestUnmarkDay(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewProgressRepoWithConn(conn)
	habitID := uuid.New()
	day := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta(`DELETE FROM habit_progress WHERE habit_id = $1 AND entry_date = $2;`)
	t.Run("unmarked", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(habitID, day).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))
		err := repo.UnmarkDay(ctx, habitID, day)
		assert.NoError(t, err)
	})
	t.Run("absent day is a no-op", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(habitID, day).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))
		err := repo.UnmarkDay(ctx, habitID, day)
		assert.NoError(t, err)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(habitID, day).
			WillReturnError(errors.New("db error"))
		err := repo.UnmarkDay(ctx, habitID, day)
		assert.Error(t, err)
	})
}

func TestGetProgressByHabitID(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewProgressRepoWithConn(conn)
	habitID := uuid.New()
	first := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
	second := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta(`SELECT entry_date, completed FROM habit_progress WHERE habit_id = $1 ORDER BY id;`)
	t.Run("insertion order is preserved", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(habitID).
			WillReturnRows(pgxmock.NewRows([]string{"entry_date", "completed"}).
				AddRow(first, true).
				AddRow(second, true))
		result, err := repo.GetByHabitID(ctx, habitID)
		assert.NoError(t, err)
		assert.Len(t, result, 2)
		assert.Equal(t, first, result[0].Date)
		assert.Equal(t, second, result[1].Date)
	})
	t.Run("empty progress", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(habitID).
			WillReturnRows(pgxmock.NewRows([]string{"entry_date", "completed"}))
		result, err := repo.GetByHabitID(ctx, habitID)
		assert.NoError(t, err)
		assert.Empty(t, result)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(habitID).
			WillReturnError(errors.New("db error"))
		_, err := repo.GetByHabitID(ctx, habitID)
		assert.Error(t, err)
	})
}

func TestGetProgressByHabitAndMonth(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewProgressRepoWithConn(conn)
	habitID := uuid.New()
	from := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta(`SELECT entry_date, completed FROM habit_progress
		WHERE habit_id = $1 AND entry_date >= $2 AND entry_date < $3 ORDER BY id;`)
	t.Run("month window bounds", func(t *testing.T) {
		day := time.Date(2024, time.March, 14, 0, 0, 0, 0, time.UTC)
		conn.ExpectQuery(query).
			WithArgs(habitID, from, to).
			WillReturnRows(pgxmock.NewRows([]string{"entry_date", "completed"}).
				AddRow(day, true))
		result, err := repo.GetByHabitAndMonth(ctx, habitID, time.March, 2024)
		assert.NoError(t, err)
		assert.Len(t, result, 1)
		assert.Equal(t, day, result[0].Date)
		assert.True(t, result[0].Completed)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(habitID, from, to).
			WillReturnError(errors.New("db error"))
		_, err := repo.GetByHabitAndMonth(ctx, habitID, time.March, 2024)
		assert.Error(t, err)
	})
}
