package api

import (
	"github.com/google/uuid"
)

type JWTServiceI interface {
	GenerateToken(uid uuid.UUID) (string, error)
	ParseToken(tokenString string) (uuid.UUID, error)
}
