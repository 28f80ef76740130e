package entity

import (
	"time"

	"github.com/google/uuid"
)

// ConversationMessage is one turn of the assistant conversation. Immutable
// once created; only a bounded trailing window is forwarded per request.
type ConversationMessage struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId    uuid.UUID `gorm:"type:uuid;index"`
	Role      string    // "user" | "assistant" | "system"
	Content   string
	CreatedAt time.Time
}
