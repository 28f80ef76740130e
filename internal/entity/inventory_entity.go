package entity

import (
	"time"

	"github.com/google/uuid"
)

type InventoryItem struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId    uuid.UUID `gorm:"type:uuid;index"`
	Name      string
	Quantity  float64
	Location  string
	CreatedAt time.Time
	UpdatedAt *time.Time
}
