package gormstore

import (
	"context"
	"time"

	"ai-lifeboard-be/internal/entity"
	"ai-lifeboard-be/pkg/assistant/hooks"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type habitHooks struct {
	db     *gorm.DB
	userId uuid.UUID
}

var _ hooks.HabitHooks = &habitHooks{}

func (h *habitHooks) Habits(ctx context.Context) ([]hooks.Habit, error) {
	var rows []entity.Habit
	if err := h.db.WithContext(ctx).Where("user_id = ?", h.userId).Order("created_at").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]hooks.Habit, len(rows))
	for i, hb := range rows {
		out[i] = hooks.Habit{Id: hb.Id, Name: hb.Name, Streak: hb.Streak}
	}
	return out, nil
}

func (h *habitHooks) AddHabit(ctx context.Context, name string) error {
	row := entity.Habit{
		Id:        uuid.New(),
		UserId:    h.userId,
		Name:      name,
		CreatedAt: time.Now(),
	}
	return h.db.WithContext(ctx).Create(&row).Error
}

// CompleteHabit records today's check-in. A second check-in on the same day
// does not grow the streak again.
func (h *habitHooks) CompleteHabit(ctx context.Context, id uuid.UUID) error {
	return h.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var habit entity.Habit
		if err := tx.Where("id = ? AND user_id = ?", id, h.userId).First(&habit).Error; err != nil {
			return err
		}

		now := time.Now()
		today := now.Format("2006-01-02")
		if habit.LastCompleted == today {
			return nil
		}
		return tx.Model(&habit).Updates(map[string]interface{}{
			"streak":         habit.Streak + 1,
			"last_completed": today,
			"updated_at":     now,
		}).Error
	})
}

func (h *habitHooks) DeleteHabit(ctx context.Context, id uuid.UUID) error {
	res := h.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, h.userId).
		Delete(&entity.Habit{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
