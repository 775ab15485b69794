package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/limerock/habitflow/internal/repository"
	"github.com/limerock/habitflow/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHabitsProgressIntegrational(t *testing.T) {
	dbCfg := setupUsersTestDB(t)
	us := service.NewUserService(repository.NewUsersRepo(dbCfg))
	habitsRepo := repository.NewHabitsRepo(dbCfg)
	progressRepo := repository.NewProgressRepo(dbCfg)
	hs := service.NewHabitsService(habitsRepo, progressRepo)
	ps := service.NewProgressService(habitsRepo, progressRepo)
	ctx := context.Background()

	uid, err := us.Register(ctx, &service.RegisterRequest{
		Username: "habit_owner",
		Email:    "habit_owner@example.com",
		Password: "test_password",
	})
	require.NoError(t, err)
	habit, err := hs.CreateHabit(ctx, uid, &service.CreateHabitRequest{
		Title:       "read",
		Description: "20 pages",
	})
	require.NoError(t, err)
	require.Empty(t, habit.Progress)

	marchDay := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
	aprilDay := time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)

	t.Run("marking same day twice keeps one entry", func(t *testing.T) {
		_, err := ps.MarkDay(ctx, habit.ID, uid, marchDay.Add(9*time.Hour))
		assert.NoError(t, err)
		after, err := ps.MarkDay(ctx, habit.ID, uid, marchDay.Add(21*time.Hour))
		assert.NoError(t, err)
		assert.Len(t, after.Progress, 1)
		assert.Equal(t, marchDay, after.Progress[0].Date)
		assert.True(t, after.Progress[0].Completed)
	})
	t.Run("month filter excludes other months", func(t *testing.T) {
		_, err := ps.MarkDay(ctx, habit.ID, uid, aprilDay)
		assert.NoError(t, err)
		entries, err := ps.MonthProgress(ctx, habit.ID, uid, 3, 2024)
		assert.NoError(t, err)
		assert.Len(t, entries, 1)
		assert.Equal(t, marchDay, entries[0].Date)
	})
	t.Run("unmarked day leaves the month empty", func(t *testing.T) {
		after, err := ps.UnmarkDay(ctx, habit.ID, uid, marchDay)
		assert.NoError(t, err)
		assert.Len(t, after.Progress, 1)
		assert.Equal(t, aprilDay, after.Progress[0].Date)
		entries, err := ps.MonthProgress(ctx, habit.ID, uid, 3, 2024)
		assert.NoError(t, err)
		assert.Empty(t, entries)
	})
}
