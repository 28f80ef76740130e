package memory

import (
	"context"
	"fmt"
	"time"

	"ai-lifeboard-be/internal/entity"
	"ai-lifeboard-be/pkg/assistant/hooks"

	"github.com/google/uuid"
)

type habitHooks struct {
	store  *Store
	userId uuid.UUID
}

var _ hooks.HabitHooks = &habitHooks{}

func (h *habitHooks) Habits(ctx context.Context) ([]hooks.Habit, error) {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()

	habits := getSlice[entity.Habit](h.store, "habits", h.userId)
	out := make([]hooks.Habit, len(habits))
	for i, hb := range habits {
		out[i] = hooks.Habit{Id: hb.Id, Name: hb.Name, Streak: hb.Streak}
	}
	return out, nil
}

func (h *habitHooks) AddHabit(ctx context.Context, name string) error {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()

	habits := getSlice[entity.Habit](h.store, "habits", h.userId)
	habits = append(habits, entity.Habit{
		Id:        uuid.New(),
		UserId:    h.userId,
		Name:      name,
		CreatedAt: time.Now(),
	})
	putSlice(h.store, "habits", h.userId, habits)
	return nil
}

// CompleteHabit records today's check-in. A second check-in on the same day
// does not grow the streak again.
func (h *habitHooks) CompleteHabit(ctx context.Context, id uuid.UUID) error {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()

	habits := getSlice[entity.Habit](h.store, "habits", h.userId)
	now := time.Now()
	today := now.Format("2006-01-02")
	for i, hb := range habits {
		if hb.Id == id {
			if hb.LastCompleted != today {
				habits[i].Streak++
				habits[i].LastCompleted = today
				habits[i].UpdatedAt = &now
			}
			putSlice(h.store, "habits", h.userId, habits)
			return nil
		}
	}
	return fmt.Errorf("habit %s not found", id)
}

func (h *habitHooks) DeleteHabit(ctx context.Context, id uuid.UUID) error {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()

	habits := getSlice[entity.Habit](h.store, "habits", h.userId)
	for i, hb := range habits {
		if hb.Id == id {
			habits = append(habits[:i], habits[i+1:]...)
			putSlice(h.store, "habits", h.userId, habits)
			return nil
		}
	}
	return fmt.Errorf("habit %s not found", id)
}
