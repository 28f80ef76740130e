package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"ai-lifeboard-be/internal/entity"
	"ai-lifeboard-be/pkg/assistant/hooks"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// Store is the in-memory capability-hook implementation, used by tests, the
// simulation REPL and the default dev wiring when no database is configured.
// Collections live in a go-cache instance keyed per user and collection.
type Store struct {
	c  *cache.Cache
	mu sync.Mutex
}

func NewStore() *Store {
	return &Store{
		c: cache.New(cache.NoExpiration, 10*time.Minute),
	}
}

// Hooks returns a fresh capability bundle bound to one user.
func (s *Store) Hooks(userId uuid.UUID) hooks.Capabilities {
	return hooks.Capabilities{
		Finance:   &financeHooks{store: s, userId: userId},
		Tasks:     &taskHooks{store: s, userId: userId},
		Notes:     &noteHooks{store: s, userId: userId},
		Habits:    &habitHooks{store: s, userId: userId},
		Study:     &studyHooks{store: s, userId: userId},
		Inventory: &inventoryHooks{store: s, userId: userId},
	}
}

func key(collection string, userId uuid.UUID) string {
	return fmt.Sprintf("%s:%s", collection, userId)
}

// getSlice returns the stored slice for a collection, or an empty one.
func getSlice[T any](s *Store, collection string, userId uuid.UUID) []T {
	if v, found := s.c.Get(key(collection, userId)); found {
		return v.([]T)
	}
	return nil
}

func putSlice[T any](s *Store, collection string, userId uuid.UUID, items []T) {
	s.c.Set(key(collection, userId), items, cache.NoExpiration)
}

// --- Conversation store ---

func (s *Store) Append(ctx context.Context, userId uuid.UUID, role, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	msgs := getSlice[entity.ConversationMessage](s, "conversation", userId)
	msgs = append(msgs, entity.ConversationMessage{
		Id:        uuid.New(),
		UserId:    userId,
		Role:      role,
		Content:   content,
		CreatedAt: time.Now(),
	})
	putSlice(s, "conversation", userId, msgs)
	return nil
}

func (s *Store) Recent(ctx context.Context, userId uuid.UUID, limit int) ([]entity.ConversationMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	msgs := getSlice[entity.ConversationMessage](s, "conversation", userId)
	if len(msgs) > limit {
		msgs = msgs[len(msgs)-limit:]
	}
	out := make([]entity.ConversationMessage, len(msgs))
	copy(out, msgs)
	return out, nil
}
