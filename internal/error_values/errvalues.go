package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("user with such email already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong email or password")
	ErrInvalidToken     = errors.New("invalid or expired token")
	ErrHabitNotFound    = errors.New("habit doesn't exists")
	ErrInvalidInput     = errors.New("invalid input")
	ErrWrongOwner       = errors.New("habit has different owner")
)
