package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	errorvalues "github.com/limerock/habitflow/internal/error_values"
	"github.com/limerock/habitflow/internal/repository"
	"github.com/limerock/habitflow/pkg/entity"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	repo repository.UsersRepositoryI
}

func NewUserService(usersRepo repository.UsersRepositoryI) *UserService {
	return &UserService{
		repo: usersRepo,
	}
}

func (us *UserService) Register(ctx context.Context, req *RegisterRequest) (uuid.UUID, error) {
	err := validate.Struct(*req)
	if err != nil {
		if validationError, ok := err.(validator.ValidationErrors); ok {
			err = errorvalues.ErrInvalidInput
			for _, fieldErr := range validationError {
				err = errors.Join(err, fieldErr)
			}
			return uuid.UUID{}, err
		}
		return uuid.UUID{}, errors.New("validation unexpected error: " + err.Error())
	}
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return uuid.UUID{}, errors.New("hashing password error: " + err.Error())
	}
	uid, err := us.repo.Create(ctx, &entity.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(passwordHash),
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserExists) {
			return uuid.UUID{}, errorvalues.ErrUserExists
		}
		return uuid.UUID{}, errors.New("repository creating error: " + err.Error())
	}
	return uid, nil
}

func (us *UserService) Login(ctx context.Context, email, password string) (uuid.UUID, error) {
	user, err := us.repo.FindByEmail(ctx, email)
	if err != nil {
		// Unknown email reads the same as a wrong password, so a caller
		// can't probe which emails are registered
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return uuid.UUID{}, errorvalues.ErrWrongCredentials
		}
		return uuid.UUID{}, errors.New("repository searching error: " + err.Error())
	}
	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return uuid.UUID{}, errorvalues.ErrWrongCredentials
	}
	return user.ID, nil
}
