package entity

import (
	"time"

	"github.com/google/uuid"
)

type Task struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId       uuid.UUID `gorm:"type:uuid;index"`
	Title        string
	Priority     string // "low" | "medium" | "high"
	DueDate      string // YYYY-MM-DD
	ContextType  string // "general" | "finance" | ...
	ExpectedCost float64
	FinanceType  string // entry type recorded when a finance task completes
	Completed    bool
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}
