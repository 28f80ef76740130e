package modules

import (
	"context"
	"errors"
	"testing"

	"ai-lifeboard-be/pkg/assistant/hooks"
	"ai-lifeboard-be/pkg/assistant/resolve"
	"ai-lifeboard-be/pkg/assistant/router"

	"github.com/google/uuid"
)

func financeCaps(f *fakeFinance) hooks.Capabilities {
	return hooks.Capabilities{Finance: f}
}

func TestFinanceAddEntry(t *testing.T) {
	tests := []struct {
		name       string
		action     string
		data       map[string]any
		wantStatus router.Status
		wantType   string
		wantCat    string
	}{
		{
			name:       "expense with full data",
			action:     ActionAddExpense,
			data:       map[string]any{"amount": 200.0, "category": "Food", "description": "coffee"},
			wantStatus: router.StatusApplied,
			wantType:   "expense",
			wantCat:    "Food",
		},
		{
			name:       "income",
			action:     ActionAddIncome,
			data:       map[string]any{"amount": 5000.0, "category": "Salary"},
			wantStatus: router.StatusApplied,
			wantType:   "income",
			wantCat:    "Salary",
		},
		{
			name:       "category defaults to General",
			action:     ActionAddExpense,
			data:       map[string]any{"amount": 50.0},
			wantStatus: router.StatusApplied,
			wantType:   "expense",
			wantCat:    "General",
		},
		{
			name:       "numeric string amount is coerced",
			action:     ActionAddExpense,
			data:       map[string]any{"amount": "125.50", "category": "Food"},
			wantStatus: router.StatusApplied,
			wantType:   "expense",
			wantCat:    "Food",
		},
		{
			name:       "missing amount skips without mutation",
			action:     ActionAddExpense,
			data:       map[string]any{"category": "Food"},
			wantStatus: router.StatusSkipped,
		},
		{
			name:       "unparseable amount skips",
			action:     ActionAddExpense,
			data:       map[string]any{"amount": "a lot"},
			wantStatus: router.StatusSkipped,
		},
	}

	mod := NewFinanceModule(resolve.NewSubstring())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fin := &fakeFinance{}
			outcome := mod.Execute(context.Background(), tt.action, tt.data, financeCaps(fin))

			if outcome.Status != tt.wantStatus {
				t.Fatalf("status = %s, want %s (detail: %s)", outcome.Status, tt.wantStatus, outcome.Detail)
			}
			if tt.wantStatus == router.StatusSkipped {
				if len(fin.entries) != 0 {
					t.Error("skipped intent must not write entries")
				}
				return
			}
			if len(fin.entries) != 1 {
				t.Fatalf("wrote %d entries, want 1", len(fin.entries))
			}
			e := fin.entries[0]
			if e.Type != tt.wantType {
				t.Errorf("entry type = %q, want %q", e.Type, tt.wantType)
			}
			if e.Category != tt.wantCat {
				t.Errorf("entry category = %q, want %q", e.Category, tt.wantCat)
			}
			if e.Date == "" {
				t.Error("entry date should default to today, got empty")
			}
		})
	}
}

func TestFinanceWithdrawRecordsExpenseAfterSavings(t *testing.T) {
	goalId := uuid.New()
	fin := &fakeFinance{
		goals: []hooks.SavingsGoal{{Id: goalId, Name: "Laptop Fund", Target: 2000, Saved: 800}},
	}

	mod := NewFinanceModule(resolve.NewSubstring())
	outcome := mod.Execute(context.Background(), ActionWithdrawFromSavings,
		map[string]any{"name": "laptop", "amount": 300.0}, financeCaps(fin))

	if outcome.Status != router.StatusApplied {
		t.Fatalf("status = %s, want applied (err: %v)", outcome.Status, outcome.Err)
	}

	// Order matters: goal decrement first, then the linked expense entry
	want := []string{"WithdrawFromSavings", "AddEntry"}
	if len(fin.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", fin.calls, want)
	}
	for i := range want {
		if fin.calls[i] != want[i] {
			t.Fatalf("calls = %v, want %v", fin.calls, want)
		}
	}

	e := fin.entries[0]
	if e.Type != "expense" || e.Category != "Savings" {
		t.Errorf("linked entry = %+v, want expense under Savings", e)
	}
	if e.Amount != 300 {
		t.Errorf("linked entry amount = %v, want 300", e.Amount)
	}
}

func TestFinanceWithdrawEntryFailureIsReported(t *testing.T) {
	goalId := uuid.New()
	fin := &fakeFinance{
		goals:    []hooks.SavingsGoal{{Id: goalId, Name: "Laptop Fund"}},
		entryErr: errors.New("entries table unavailable"),
	}

	mod := NewFinanceModule(resolve.NewSubstring())
	outcome := mod.Execute(context.Background(), ActionWithdrawFromSavings,
		map[string]any{"name": "laptop", "amount": 100.0}, financeCaps(fin))

	if outcome.Status != router.StatusFailed {
		t.Fatalf("status = %s, want failed", outcome.Status)
	}
	// The savings decrement already happened; the outcome must say so
	if outcome.Detail == "" {
		t.Error("partial compound failure should carry a detail explaining which step broke")
	}
	if len(fin.calls) != 1 || fin.calls[0] != "WithdrawFromSavings" {
		t.Errorf("calls = %v, want only WithdrawFromSavings", fin.calls)
	}
}

func TestFinanceWithdrawUnknownGoalIsNotFound(t *testing.T) {
	fin := &fakeFinance{
		goals: []hooks.SavingsGoal{{Id: uuid.New(), Name: "Laptop Fund"}},
	}

	mod := NewFinanceModule(resolve.NewSubstring())
	outcome := mod.Execute(context.Background(), ActionWithdrawFromSavings,
		map[string]any{"name": "car", "amount": 100.0}, financeCaps(fin))

	if outcome.Status != router.StatusNotFound {
		t.Fatalf("status = %s, want not_found", outcome.Status)
	}
	if outcome.Reference != "car" {
		t.Errorf("reference = %q, want the unresolved name", outcome.Reference)
	}
	if len(fin.calls) != 0 {
		t.Errorf("unresolved reference must not mutate anything, calls = %v", fin.calls)
	}
}

func TestFinanceSetBudget(t *testing.T) {
	mod := NewFinanceModule(resolve.NewSubstring())

	fin := &fakeFinance{}
	outcome := mod.Execute(context.Background(), ActionSetBudget,
		map[string]any{"category": "Food", "amount": 1000.0}, financeCaps(fin))
	if outcome.Status != router.StatusApplied {
		t.Fatalf("status = %s, want applied", outcome.Status)
	}

	fin = &fakeFinance{}
	outcome = mod.Execute(context.Background(), ActionSetBudget,
		map[string]any{"amount": 1000.0}, financeCaps(fin))
	if outcome.Status != router.StatusSkipped {
		t.Errorf("budget without category should skip, got %s", outcome.Status)
	}
}
