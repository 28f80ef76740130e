package gormstore

import (
	"context"
	"time"

	"ai-lifeboard-be/internal/entity"
	"ai-lifeboard-be/pkg/assistant/hooks"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type taskHooks struct {
	db     *gorm.DB
	userId uuid.UUID
}

var _ hooks.TaskHooks = &taskHooks{}

func (h *taskHooks) Tasks(ctx context.Context) ([]hooks.Task, error) {
	var rows []entity.Task
	if err := h.db.WithContext(ctx).Where("user_id = ?", h.userId).Order("created_at").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]hooks.Task, len(rows))
	for i, t := range rows {
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
	row := entity.Task{
		Id:           uuid.New(),
		UserId:       h.userId,
		Title:        task.Title,
		Priority:     task.Priority,
		DueDate:      task.DueDate,
		ContextType:  task.ContextType,
		ExpectedCost: task.ExpectedCost,
		FinanceType:  task.FinanceType,
		CreatedAt:    time.Now(),
	}
	return h.db.WithContext(ctx).Create(&row).Error
}

func (h *taskHooks) UpdateTask(ctx context.Context, id uuid.UUID, patch hooks.TaskPatch) error {
	updates := map[string]interface{}{"updated_at": time.Now()}
	if patch.Title != nil {
		updates["title"] = *patch.Title
	}
	if patch.Priority != nil {
		updates["priority"] = *patch.Priority
	}
	if patch.DueDate != nil {
		updates["due_date"] = *patch.DueDate
	}

	res := h.db.WithContext(ctx).Model(&entity.Task{}).
		Where("id = ? AND user_id = ?", id, h.userId).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CompleteTask marks the task done and, for finance-context tasks carrying an
// expected cost, records the matching finance entry inside one transaction.
func (h *taskHooks) CompleteTask(ctx context.Context, id uuid.UUID) error {
	return h.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var task entity.Task
		if err := tx.Where("id = ? AND user_id = ?", id, h.userId).First(&task).Error; err != nil {
			return err
		}

		now := time.Now()
		if err := tx.Model(&task).
			Updates(map[string]interface{}{"completed": true, "updated_at": now}).Error; err != nil {
			return err
		}

		if task.ContextType == "finance" && task.ExpectedCost > 0 {
			entryType := task.FinanceType
			if entryType == "" {
				entryType = "expense"
			}
			entry := entity.FinanceEntry{
				Id:          uuid.New(),
				UserId:      h.userId,
				Type:        entryType,
				Amount:      task.ExpectedCost,
				Category:    "Tasks",
				Description: task.Title,
				Date:        now.Format("2006-01-02"),
				CreatedAt:   now,
			}
			if err := tx.Create(&entry).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (h *taskHooks) DeleteTask(ctx context.Context, id uuid.UUID) error {
	res := h.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, h.userId).
		Delete(&entity.Task{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
