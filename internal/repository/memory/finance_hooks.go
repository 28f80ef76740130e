package memory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ai-lifeboard-be/internal/entity"
	"ai-lifeboard-be/pkg/assistant/hooks"

	"github.com/google/uuid"
)

type financeHooks struct {
	store  *Store
	userId uuid.UUID
}

var _ hooks.FinanceHooks = &financeHooks{}

func (h *financeHooks) Budgets(ctx context.Context) ([]hooks.Budget, error) {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()

	budgets := getSlice[entity.Budget](h.store, "budgets", h.userId)
	out := make([]hooks.Budget, len(budgets))
	for i, b := range budgets {
		out[i] = hooks.Budget{Id: b.Id, Category: b.Category, Amount: b.Amount}
	}
	return out, nil
}

func (h *financeHooks) SavingsGoals(ctx context.Context) ([]hooks.SavingsGoal, error) {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()

	goals := getSlice[entity.SavingsGoal](h.store, "savings_goals", h.userId)
	out := make([]hooks.SavingsGoal, len(goals))
	for i, g := range goals {
		out[i] = hooks.SavingsGoal{Id: g.Id, Name: g.Name, Target: g.Target, Saved: g.Saved}
	}
	return out, nil
}

func (h *financeHooks) AddEntry(ctx context.Context, e hooks.NewEntry) error {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()

	entries := getSlice[entity.FinanceEntry](h.store, "entries", h.userId)
	entries = append(entries, entity.FinanceEntry{
		Id:          uuid.New(),
		UserId:      h.userId,
		Type:        e.Type,
		Amount:      e.Amount,
		Category:    e.Category,
		Description: e.Description,
		Date:        e.Date,
		IsSpecial:   e.IsSpecial,
		CreatedAt:   time.Now(),
	})
	putSlice(h.store, "entries", h.userId, entries)
	return nil
}

// SetBudget upserts by category (case-insensitive).
func (h *financeHooks) SetBudget(ctx context.Context, category string, amount float64) error {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()

	budgets := getSlice[entity.Budget](h.store, "budgets", h.userId)
	now := time.Now()
	for i, b := range budgets {
		if strings.EqualFold(b.Category, category) {
			budgets[i].Amount = amount
			budgets[i].UpdatedAt = &now
			putSlice(h.store, "budgets", h.userId, budgets)
			return nil
		}
	}

	budgets = append(budgets, entity.Budget{
		Id:        uuid.New(),
		UserId:    h.userId,
		Category:  category,
		Amount:    amount,
		CreatedAt: now,
	})
	putSlice(h.store, "budgets", h.userId, budgets)
	return nil
}

func (h *financeHooks) AddSavingsGoal(ctx context.Context, goal hooks.NewSavingsGoal) error {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()

	goals := getSlice[entity.SavingsGoal](h.store, "savings_goals", h.userId)
	goals = append(goals, entity.SavingsGoal{
		Id:        uuid.New(),
		UserId:    h.userId,
		Name:      goal.Name,
		Target:    goal.Target,
		CreatedAt: time.Now(),
	})
	putSlice(h.store, "savings_goals", h.userId, goals)
	return nil
}

func (h *financeHooks) AddToSavings(ctx context.Context, id uuid.UUID, amount float64) error {
	return h.adjustSavings(id, amount)
}

func (h *financeHooks) WithdrawFromSavings(ctx context.Context, id uuid.UUID, amount float64) error {
	return h.adjustSavings(id, -amount)
}

func (h *financeHooks) adjustSavings(id uuid.UUID, delta float64) error {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()

	goals := getSlice[entity.SavingsGoal](h.store, "savings_goals", h.userId)
	now := time.Now()
	for i, g := range goals {
		if g.Id == id {
			goals[i].Saved += delta
			goals[i].UpdatedAt = &now
			putSlice(h.store, "savings_goals", h.userId, goals)
			return nil
		}
	}
	return fmt.Errorf("savings goal %s not found", id)
}
