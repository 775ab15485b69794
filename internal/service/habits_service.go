package service

import (
	"context"
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	errorvalues "github.com/limerock/habitflow/internal/error_values"
	"github.com/limerock/habitflow/internal/repository"
	"github.com/limerock/habitflow/pkg/entity"
)

type HabitsService struct {
	habitsRepo   repository.HabitsRepositoryI
	progressRepo repository.ProgressRepositoryI
}

func NewHabitsService(habitsRepo repository.HabitsRepositoryI, progressRepo repository.ProgressRepositoryI) *HabitsService {
	if habitsRepo == nil || progressRepo == nil {
		log.Fatal("provided nil repos to habits service")
	}
	return &HabitsService{
		habitsRepo:   habitsRepo,
		progressRepo: progressRepo,
	}
}

func (hs *HabitsService) CreateHabit(ctx context.Context, uid uuid.UUID, req *CreateHabitRequest) (*entity.Habit, error) {
	err := validate.Struct(*req)
	if err != nil {
		if validationError, ok := err.(validator.ValidationErrors); ok {
			err = errorvalues.ErrInvalidInput
			for _, fieldErr := range validationError {
				err = errors.Join(err, fieldErr)
			}
			return nil, err
		}
		return nil, errors.New("validation unexpected error: " + err.Error())
	}
	id, err := hs.habitsRepo.Create(ctx, &entity.Habit{
		UserID:      uid,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("habits repository error: " + err.Error())
	}
	habit, err := hs.habitsRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.New("habits repository error: " + err.Error())
	}
	habit.Progress = make([]entity.ProgressEntry, 0)
	return habit, nil
}

// getOwned loads the habit and confirms userID owns it. Existence is
// checked before ownership, so a nonexistent id never reveals an owner.
func (hs *HabitsService) getOwned(ctx context.Context, habitID, userID uuid.UUID) (*entity.Habit, error) {
	habit, err := hs.habitsRepo.GetByID(ctx, habitID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return nil, err
		}
		return nil, errors.New("habits repository error: " + err.Error())
	}
	if habit.UserID != userID {
		return nil, errorvalues.ErrWrongOwner
	}
	return habit, nil
}

func (hs *HabitsService) GetHabit(ctx context.Context, habitID, userID uuid.UUID) (*entity.Habit, error) {
	habit, err := hs.getOwned(ctx, habitID, userID)
	if err != nil {
		return nil, err
	}
	progress, err := hs.progressRepo.GetByHabitID(ctx, habitID)
	if err != nil {
		return nil, errors.New("progress repository error: " + err.Error())
	}
	habit.Progress = progress
	return habit, nil
}

func (hs *HabitsService) GetUserHabits(ctx context.Context, uid uuid.UUID) ([]*entity.Habit, error) {
	habits, err := hs.habitsRepo.GetByUserID(ctx, uid)
	if err != nil {
		return nil, errors.New("habits repository error: " + err.Error())
	}
	for _, habit := range habits {
		progress, err := hs.progressRepo.GetByHabitID(ctx, habit.ID)
		if err != nil {
			return nil, errors.New("progress repository error: " + err.Error())
		}
		habit.Progress = progress
	}
	return habits, nil
}

func (hs *HabitsService) UpdateHabit(ctx context.Context, habitID, userID uuid.UUID, req *UpdateHabitRequest) (*entity.Habit, error) {
	habit, err := hs.getOwned(ctx, habitID, userID)
	if err != nil {
		return nil, err
	}
	// Partial update: empty fields keep the stored values
	if req.Title != "" {
		habit.Title = req.Title
	}
	if req.Description != "" {
		habit.Description = req.Description
	}
	err = hs.habitsRepo.Update(ctx, habit)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return nil, err
		}
		return nil, errors.New("habits repository error: " + err.Error())
	}
	progress, err := hs.progressRepo.GetByHabitID(ctx, habitID)
	if err != nil {
		return nil, errors.New("progress repository error: " + err.Error())
	}
	habit.Progress = progress
	return habit, nil
}

func (hs *HabitsService) DeleteHabit(ctx context.Context, habitID, userID uuid.UUID) error {
	_, err := hs.getOwned(ctx, habitID, userID)
	if err != nil {
		return err
	}
	// Progress entries go with the habit via ON DELETE CASCADE
	err = hs.habitsRepo.Delete(ctx, habitID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return err
		}
		return errors.New("habits repository error: " + err.Error())
	}
	return nil
}
