package gormstore

import (
	"context"
	"time"

	"ai-lifeboard-be/internal/entity"
	"ai-lifeboard-be/pkg/assistant/hooks"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type financeHooks struct {
	db     *gorm.DB
	userId uuid.UUID
}

var _ hooks.FinanceHooks = &financeHooks{}

func (h *financeHooks) Budgets(ctx context.Context) ([]hooks.Budget, error) {
	var rows []entity.Budget
	if err := h.db.WithContext(ctx).Where("user_id = ?", h.userId).Order("created_at").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]hooks.Budget, len(rows))
	for i, b := range rows {
		out[i] = hooks.Budget{Id: b.Id, Category: b.Category, Amount: b.Amount}
	}
	return out, nil
}

func (h *financeHooks) SavingsGoals(ctx context.Context) ([]hooks.SavingsGoal, error) {
	var rows []entity.SavingsGoal
	if err := h.db.WithContext(ctx).Where("user_id = ?", h.userId).Order("created_at").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]hooks.SavingsGoal, len(rows))
	for i, g := range rows {
		out[i] = hooks.SavingsGoal{Id: g.Id, Name: g.Name, Target: g.Target, Saved: g.Saved}
	}
	return out, nil
}

func (h *financeHooks) AddEntry(ctx context.Context, e hooks.NewEntry) error {
	row := entity.FinanceEntry{
		Id:          uuid.New(),
		UserId:      h.userId,
		Type:        e.Type,
		Amount:      e.Amount,
		Category:    e.Category,
		Description: e.Description,
		Date:        e.Date,
		IsSpecial:   e.IsSpecial,
		CreatedAt:   time.Now(),
	}
	return h.db.WithContext(ctx).Create(&row).Error
}

// SetBudget upserts by category (case-insensitive).
func (h *financeHooks) SetBudget(ctx context.Context, category string, amount float64) error {
	now := time.Now()
	var existing entity.Budget
	err := h.db.WithContext(ctx).
		Where("user_id = ? AND LOWER(category) = LOWER(?)", h.userId, category).
		First(&existing).Error

	if err == gorm.ErrRecordNotFound {
		row := entity.Budget{
			Id:        uuid.New(),
			UserId:    h.userId,
			Category:  category,
			Amount:    amount,
			CreatedAt: now,
		}
		return h.db.WithContext(ctx).Create(&row).Error
	}
	if err != nil {
		return err
	}

	return h.db.WithContext(ctx).Model(&existing).
		Updates(map[string]interface{}{"amount": amount, "updated_at": now}).Error
}

func (h *financeHooks) AddSavingsGoal(ctx context.Context, goal hooks.NewSavingsGoal) error {
	row := entity.SavingsGoal{
		Id:        uuid.New(),
		UserId:    h.userId,
		Name:      goal.Name,
		Target:    goal.Target,
		CreatedAt: time.Now(),
	}
	return h.db.WithContext(ctx).Create(&row).Error
}

func (h *financeHooks) AddToSavings(ctx context.Context, id uuid.UUID, amount float64) error {
	return h.adjustSavings(ctx, id, amount)
}

func (h *financeHooks) WithdrawFromSavings(ctx context.Context, id uuid.UUID, amount float64) error {
	return h.adjustSavings(ctx, id, -amount)
}

func (h *financeHooks) adjustSavings(ctx context.Context, id uuid.UUID, delta float64) error {
	res := h.db.WithContext(ctx).Model(&entity.SavingsGoal{}).
		Where("id = ? AND user_id = ?", id, h.userId).
		Updates(map[string]interface{}{
			"saved":      gorm.Expr("saved + ?", delta),
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
