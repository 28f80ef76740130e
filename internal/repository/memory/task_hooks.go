package memory

import (
	"context"
	"fmt"
	"time"

	"ai-lifeboard-be/internal/entity"
	"ai-lifeboard-be/pkg/assistant/hooks"

	"github.com/google/uuid"
)

type taskHooks struct {
	store  *Store
	userId uuid.UUID
}

var _ hooks.TaskHooks = &taskHooks{}

func (h *taskHooks) Tasks(ctx context.Context) ([]hooks.Task, error) {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()

	tasks := getSlice[entity.Task](h.store, "tasks", h.userId)
	out := make([]hooks.Task, len(tasks))
	for i, t := range tasks {
		out[i] = hooks.Task{
			Id:           t.Id,
			Title:        t.Title,
			Priority:     t.Priority,
			DueDate:      t.DueDate,
			ContextType:  t.ContextType,
			ExpectedCost: t.ExpectedCost,
			FinanceType:  t.FinanceType,
			Completed:    t.Completed,
		}
	}
	return out, nil
}

func (h *taskHooks) AddTask(ctx context.Context, task hooks.NewTask) error {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()

	tasks := getSlice[entity.Task](h.store, "tasks", h.userId)
	tasks = append(tasks, entity.Task{
		Id:           uuid.New(),
		UserId:       h.userId,
		Title:        task.Title,
		Priority:     task.Priority,
		DueDate:      task.DueDate,
		ContextType:  task.ContextType,
		ExpectedCost: task.ExpectedCost,
		FinanceType:  task.FinanceType,
		CreatedAt:    time.Now(),
	})
	putSlice(h.store, "tasks", h.userId, tasks)
	return nil
}

func (h *taskHooks) UpdateTask(ctx context.Context, id uuid.UUID, patch hooks.TaskPatch) error {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()

	tasks := getSlice[entity.Task](h.store, "tasks", h.userId)
	now := time.Now()
	for i, t := range tasks {
		if t.Id == id {
			if patch.Title != nil {
				tasks[i].Title = *patch.Title
			}
			if patch.Priority != nil {
				tasks[i].Priority = *patch.Priority
			}
			if patch.DueDate != nil {
				tasks[i].DueDate = *patch.DueDate
			}
			tasks[i].UpdatedAt = &now
			putSlice(h.store, "tasks", h.userId, tasks)
			return nil
		}
	}
	return fmt.Errorf("task %s not found", id)
}

// CompleteTask marks the task done and, for finance-context tasks carrying an
// expected cost, records the matching finance entry. The cross-domain effect
// lives here so every caller of the capability gets it, not just the assistant.
func (h *taskHooks) CompleteTask(ctx context.Context, id uuid.UUID) error {
	h.store.mu.Lock()

	tasks := getSlice[entity.Task](h.store, "tasks", h.userId)
	var completed *entity.Task
	now := time.Now()
	for i, t := range tasks {
		if t.Id == id {
			tasks[i].Completed = true
			tasks[i].UpdatedAt = &now
			completed = &tasks[i]
			break
		}
	}
	if completed == nil {
		h.store.mu.Unlock()
		return fmt.Errorf("task %s not found", id)
	}
	putSlice(h.store, "tasks", h.userId, tasks)
	h.store.mu.Unlock()

	if completed.ContextType == "finance" && completed.ExpectedCost > 0 {
		entryType := completed.FinanceType
		if entryType == "" {
			entryType = "expense"
		}
		fin := &financeHooks{store: h.store, userId: h.userId}
		return fin.AddEntry(ctx, hooks.NewEntry{
			Type:        entryType,
			Amount:      completed.ExpectedCost,
			Category:    "Tasks",
			Description: completed.Title,
			Date:        now.Format("2006-01-02"),
		})
	}
	return nil
}

func (h *taskHooks) DeleteTask(ctx context.Context, id uuid.UUID) error {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()

	tasks := getSlice[entity.Task](h.store, "tasks", h.userId)
	for i, t := range tasks {
		if t.Id == id {
			tasks = append(tasks[:i], tasks[i+1:]...)
			putSlice(h.store, "tasks", h.userId, tasks)
			return nil
		}
	}
	return fmt.Errorf("task %s not found", id)
}
