package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

type Habit struct {
	ID          uuid.UUID       `json:"id"`
	UserID      uuid.UUID       `json:"uid"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	StartDate   time.Time       `json:"start_date"`
	Progress    []ProgressEntry `json:"progress"`
}

// ProgressEntry is one calendar day's completion record of a habit.
// Date carries day granularity only; entries keep insertion order.
type ProgressEntry struct {
	Date      time.Time `json:"date"`
	Completed bool      `json:"completed"`
}
