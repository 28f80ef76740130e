package modules

import (
	"context"
	"fmt"

	"ai-lifeboard-be/pkg/assistant/hooks"
	"ai-lifeboard-be/pkg/assistant/resolve"
	"ai-lifeboard-be/pkg/assistant/router"
)

// Finance action names
const (
	ActionAddExpense          = "ADD_EXPENSE"
	ActionAddIncome           = "ADD_INCOME"
	ActionSetBudget           = "SET_BUDGET"
	ActionAddSavingsGoal      = "ADD_SAVINGS_GOAL"
	ActionAddToSavings        = "ADD_TO_SAVINGS"
	ActionWithdrawFromSavings = "WITHDRAW_FROM_SAVINGS"
)

const financePrompt = `FINANCE RULES:
- ADD_EXPENSE / ADD_INCOME data: {"amount": number, "category": string, "description": string, "date": "YYYY-MM-DD", "is_special": bool}.
  Category defaults to "General". Use "Food" for meals/coffee/groceries. Mark one-off
  large purchases with "is_special": true so they don't skew monthly averages.
- SET_BUDGET data: {"category": string, "amount": number}. Creates or updates the
  monthly budget for that category.
- ADD_SAVINGS_GOAL data: {"name": string, "target": number}.
- ADD_TO_SAVINGS / WITHDRAW_FROM_SAVINGS data: {"name": string, "amount": number}.
  The name may be partial ("laptop" matches "Laptop Fund"). A withdrawal also
  records a matching expense entry automatically - do NOT emit a separate
  ADD_EXPENSE for it.
Example: "spent 200 on coffee and 500 on groceries" ->
  {"actions": [
    {"action": "ADD_EXPENSE", "data": {"amount": 200, "category": "Food", "description": "coffee"}},
    {"action": "ADD_EXPENSE", "data": {"amount": 500, "category": "Food", "description": "groceries"}}
  ], "response_text": "Logged both expenses under Food."}`

type financeExecutor struct {
	resolver resolve.Strategy
}

// NewFinanceModule builds the finance module descriptor.
func NewFinanceModule(resolver resolve.Strategy) router.Module {
	e := &financeExecutor{resolver: resolver}
	return router.Module{
		Name: hooks.DomainFinance,
		Actions: []string{
			ActionAddExpense,
			ActionAddIncome,
			ActionSetBudget,
			ActionAddSavingsGoal,
			ActionAddToSavings,
			ActionWithdrawFromSavings,
		},
		PromptFragment: financePrompt,
		Execute:        e.execute,
	}
}

func (e *financeExecutor) execute(ctx context.Context, action string, data map[string]any, caps hooks.Capabilities) router.Outcome {
	fin := caps.Finance

	switch action {
	case ActionAddExpense:
		return e.addEntry(ctx, fin, action, data, "expense")

	case ActionAddIncome:
		return e.addEntry(ctx, fin, action, data, "income")

	case ActionSetBudget:
		category := str(data, "category")
		amount, ok := num(data, "amount")
		if category == "" || !ok {
			return router.Skipped(action, "budget needs a category and an amount")
		}
		if err := fin.SetBudget(ctx, category, amount); err != nil {
			return router.Failed(action, err)
		}
		return router.Applied(action)

	case ActionAddSavingsGoal:
		name := str(data, "name")
		if name == "" {
			return router.Skipped(action, "savings goal needs a name")
		}
		goal := hooks.NewSavingsGoal{
			Name:   name,
			Target: numDefault(data, "target", 0),
		}
		if err := fin.AddSavingsGoal(ctx, goal); err != nil {
			return router.Failed(action, err)
		}
		return router.Applied(action)

	case ActionAddToSavings:
		goal, outcome, ok := e.resolveGoal(ctx, fin, action, data)
		if !ok {
			return outcome
		}
		amount, hasAmount := num(data, "amount")
		if !hasAmount {
			return router.Skipped(action, "deposit needs an amount")
		}
		if err := fin.AddToSavings(ctx, goal.Id, amount); err != nil {
			return router.Failed(action, err)
		}
		return router.Applied(action)

	case ActionWithdrawFromSavings:
		return e.withdraw(ctx, fin, data)

	default:
		return router.Unhandled(action)
	}
}

func (e *financeExecutor) addEntry(ctx context.Context, fin hooks.FinanceHooks, action string, data map[string]any, entryType string) router.Outcome {
	amount, ok := num(data, "amount")
	if !ok {
		return router.Skipped(action, "entry needs an amount")
	}

	entry := hooks.NewEntry{
		Type:        entryType,
		Amount:      amount,
		Category:    strDefault(data, "category", "General"),
		Description: str(data, "description"),
		Date:        strDefault(data, "date", today()),
		IsSpecial:   boolean(data, "is_special"),
	}

	if err := fin.AddEntry(ctx, entry); err != nil {
		return router.Failed(action, err)
	}
	return router.Applied(action)
}

// withdraw is a compound operation: decrement the savings goal, then record a
// matching expense entry, in that order. There is no rollback; if the entry
// write fails the outcome carries which step broke so the host can warn.
func (e *financeExecutor) withdraw(ctx context.Context, fin hooks.FinanceHooks, data map[string]any) router.Outcome {
	action := ActionWithdrawFromSavings

	goal, outcome, ok := e.resolveGoal(ctx, fin, action, data)
	if !ok {
		return outcome
	}
	amount, hasAmount := num(data, "amount")
	if !hasAmount {
		return router.Skipped(action, "withdrawal needs an amount")
	}

	if err := fin.WithdrawFromSavings(ctx, goal.Id, amount); err != nil {
		return router.Failed(action, err)
	}

	entry := hooks.NewEntry{
		Type:        "expense",
		Amount:      amount,
		Category:    "Savings",
		Description: fmt.Sprintf("Withdrawal from %s", goal.Name),
		Date:        strDefault(data, "date", today()),
	}
	if err := fin.AddEntry(ctx, entry); err != nil {
		return router.FailedDetail(action, "savings updated but expense entry failed", err)
	}

	return router.AppliedDetail(action, fmt.Sprintf("withdrew from %s and recorded expense", goal.Name))
}

func (e *financeExecutor) resolveGoal(ctx context.Context, fin hooks.FinanceHooks, action string, data map[string]any) (hooks.SavingsGoal, router.Outcome, bool) {
	name := str(data, "name")
	goals, err := fin.SavingsGoals(ctx)
	if err != nil {
		return hooks.SavingsGoal{}, router.Failed(action, err), false
	}

	candidates := make([]resolve.Candidate, len(goals))
	for i, g := range goals {
		candidates[i] = resolve.Candidate{Id: g.Id, Name: g.Name}
	}

	match, found := e.resolver.Resolve(name, candidates)
	if !found {
		return hooks.SavingsGoal{}, router.NotFound(action, name), false
	}

	for _, g := range goals {
		if g.Id == match.Id {
			return g, router.Outcome{}, true
		}
	}
	return hooks.SavingsGoal{}, router.NotFound(action, name), false
}
