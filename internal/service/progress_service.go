package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limerock/habitflow/internal/error_values"
	"github.com/limerock/habitflow/internal/repository"
	"github.com/limerock/habitflow/pkg/entity"
)

type ProgressService struct {
	habitsRepo   repository.HabitsRepositoryI
	progressRepo repository.ProgressRepositoryI
}

func NewProgressService(habitsRepo repository.HabitsRepositoryI, progressRepo repository.ProgressRepositoryI) *ProgressService {
	if habitsRepo == nil || progressRepo == nil {
		log.Fatal("provided nil repos to progress service")
	}
	return &ProgressService{
		habitsRepo:   habitsRepo,
		progressRepo: progressRepo,
	}
}

// NormalizeDay truncates t to calendar-day granularity in UTC.
func NormalizeDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (ps *ProgressService) requireOwned(ctx context.Context, habitID, userID uuid.UUID) error {
	habit, err := ps.habitsRepo.GetByID(ctx, habitID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return err
		}
		return errors.New("habits repository error: " + err.Error())
	}
	if habit.UserID != userID {
		return errorvalues.ErrWrongOwner
	}
	return nil
}

func (ps *ProgressService) refreshed(ctx context.Context, habitID uuid.UUID) (*entity.Habit, error) {
	habit, err := ps.habitsRepo.GetByID(ctx, habitID)
	if err != nil {
		return nil, errors.New("habits repository error: " + err.Error())
	}
	progress, err := ps.progressRepo.GetByHabitID(ctx, habitID)
	if err != nil {
		return nil, errors.New("progress repository error: " + err.Error())
	}
	habit.Progress = progress
	return habit, nil
}

func (ps *ProgressService) MarkDay(ctx context.Context, habitID, userID uuid.UUID, date time.Time) (*entity.Habit, error) {
	if err := ps.requireOwned(ctx, habitID, userID); err != nil {
		return nil, err
	}
	err := ps.progressRepo.MarkDay(ctx, habitID, NormalizeDay(date))
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return nil, err
		}
		return nil, errors.New("progress repository error: " + err.Error())
	}
	return ps.refreshed(ctx, habitID)
}

func (ps *ProgressService) UnmarkDay(ctx context.Context, habitID, userID uuid.UUID, date time.Time) (*entity.Habit, error) {
	if err := ps.requireOwned(ctx, habitID, userID); err != nil {
		return nil, err
	}
	err := ps.progressRepo.UnmarkDay(ctx, habitID, NormalizeDay(date))
	if err != nil {
		return nil, errors.New("progress repository error: " + err.Error())
	}
	return ps.refreshed(ctx, habitID)
}

func (ps *ProgressService) MonthProgress(ctx context.Context, habitID, userID uuid.UUID, month, year int) ([]entity.ProgressEntry, error) {
	if month < 1 || month > 12 || year < 1 {
		return nil, errorvalues.ErrInvalidInput
	}
	if err := ps.requireOwned(ctx, habitID, userID); err != nil {
		return nil, err
	}
	entries, err := ps.progressRepo.GetByHabitAndMonth(ctx, habitID, time.Month(month), year)
	if err != nil {
		return nil, errors.New("progress repository error: " + err.Error())
	}
	return entries, nil
}
