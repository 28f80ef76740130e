package entity

import (
	"time"

	"github.com/google/uuid"
)

type FinanceEntry struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId      uuid.UUID `gorm:"type:uuid;index"`
	Type        string    // "income" | "expense"
	Amount      float64
	Category    string
	Description string
	Date        string // YYYY-MM-DD
	IsSpecial   bool
	CreatedAt   time.Time
}

type Budget struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId    uuid.UUID `gorm:"type:uuid;index"`
	Category  string
	Amount    float64
	CreatedAt time.Time
	UpdatedAt *time.Time
}

type SavingsGoal struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId    uuid.UUID `gorm:"type:uuid;index"`
	Name      string
	Target    float64
	Saved     float64
	CreatedAt time.Time
	UpdatedAt *time.Time
}
