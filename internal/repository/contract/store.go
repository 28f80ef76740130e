package contract

import (
	"context"

	"ai-lifeboard-be/internal/entity"
	"ai-lifeboard-be/pkg/assistant/hooks"

	"github.com/google/uuid"
)

// DomainStore produces the capability subsets the dispatcher hands to
// executors. Hooks must be requested fresh on every dispatch call; the core
// never caches them.
type DomainStore interface {
	Hooks(userId uuid.UUID) hooks.Capabilities
}

// ConversationStore persists assistant conversation turns and serves the
// bounded trailing window resent with each completion request.
type ConversationStore interface {
	Append(ctx context.Context, userId uuid.UUID, role, content string) error
	// Recent returns up to limit messages, oldest first.
	Recent(ctx context.Context, userId uuid.UUID, limit int) ([]entity.ConversationMessage, error)
}
