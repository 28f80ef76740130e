package entity

import (
	"time"

	"github.com/google/uuid"
)

type Habit struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId        uuid.UUID `gorm:"type:uuid;index"`
	Name          string
	Streak        int
	LastCompleted string // YYYY-MM-DD of the latest check-in
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}
