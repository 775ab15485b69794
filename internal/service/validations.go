package service

import (
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("alphanum_underscore", validateAlphanumUnderscore)
		validate.RegisterValidation("single_line", validateSingleLine)
	})
}

// Usernames: digits, letters or underscore, not starting with a digit
// or underscore
func validateAlphanumUnderscore(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	for i, char := range value {
		if i == 0 && (unicode.IsDigit(char) || char == '_') {
			return false
		}
		if !unicode.IsLetter(char) && !unicode.IsDigit(char) && char != '_' {
			return false
		}
	}
	return true
}

// Habit titles: printable text without control characters
func validateSingleLine(fl validator.FieldLevel) bool {
	for _, char := range fl.Field().String() {
		if unicode.IsControl(char) {
			return false
		}
	}
	return true
}
