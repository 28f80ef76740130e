package memory

import (
	"context"
	"testing"

	"ai-lifeboard-be/internal/entity"
	"ai-lifeboard-be/pkg/assistant/hooks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreIsolatesUsers(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	alice, bob := uuid.New(), uuid.New()

	require.NoError(t, store.Hooks(alice).Notes.AddNote(ctx, hooks.NewNote{Title: "Alice's note"}))

	bobNotes, err := store.Hooks(bob).Notes.Notes(ctx)
	require.NoError(t, err)
	assert.Empty(t, bobNotes)

	aliceNotes, err := store.Hooks(alice).Notes.Notes(ctx)
	require.NoError(t, err)
	assert.Len(t, aliceNotes, 1)
}

func TestFinanceSetBudgetUpserts(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	fin := store.Hooks(uuid.New()).Finance

	require.NoError(t, fin.SetBudget(ctx, "Food", 1000))
	require.NoError(t, fin.SetBudget(ctx, "food", 1500)) // case-insensitive update

	budgets, err := fin.Budgets(ctx)
	require.NoError(t, err)
	require.Len(t, budgets, 1)
	assert.Equal(t, float64(1500), budgets[0].Amount)
}

func TestFinanceSavingsAdjustments(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	fin := store.Hooks(uuid.New()).Finance

	require.NoError(t, fin.AddSavingsGoal(ctx, hooks.NewSavingsGoal{Name: "Laptop", Target: 2000}))
	goals, err := fin.SavingsGoals(ctx)
	require.NoError(t, err)
	require.Len(t, goals, 1)

	require.NoError(t, fin.AddToSavings(ctx, goals[0].Id, 500))
	require.NoError(t, fin.WithdrawFromSavings(ctx, goals[0].Id, 200))

	goals, err = fin.SavingsGoals(ctx)
	require.NoError(t, err)
	assert.Equal(t, float64(300), goals[0].Saved)

	err = fin.AddToSavings(ctx, uuid.New(), 100)
	assert.Error(t, err, "unknown goal id should error")
}

func TestCompleteFinanceTaskRecordsEntry(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	userId := uuid.New()
	caps := store.Hooks(userId)

	require.NoError(t, caps.Tasks.AddTask(ctx, hooks.NewTask{
		Title:        "Buy standing desk",
		Priority:     "medium",
		DueDate:      "2026-09-01",
		ContextType:  "finance",
		ExpectedCost: 450,
		FinanceType:  "expense",
	}))

	tasks, err := caps.Tasks.Tasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)

	require.NoError(t, caps.Tasks.CompleteTask(ctx, tasks[0].Id))

	tasks, err = caps.Tasks.Tasks(ctx)
	require.NoError(t, err)
	assert.True(t, tasks[0].Completed)

	// Completing the finance-context task logged the expected cost
	entries := getSlice[entity.FinanceEntry](store, "entries", userId)
	require.Len(t, entries, 1)
	assert.Equal(t, "expense", entries[0].Type)
	assert.Equal(t, float64(450), entries[0].Amount)
	assert.Equal(t, "Tasks", entries[0].Category)
}

func TestCompleteGeneralTaskDoesNotRecordEntry(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	userId := uuid.New()
	caps := store.Hooks(userId)

	require.NoError(t, caps.Tasks.AddTask(ctx, hooks.NewTask{
		Title: "Water plants", Priority: "low", DueDate: "2026-09-01", ContextType: "general",
	}))
	tasks, _ := caps.Tasks.Tasks(ctx)
	require.NoError(t, caps.Tasks.CompleteTask(ctx, tasks[0].Id))

	entries := getSlice[entity.FinanceEntry](store, "entries", userId)
	assert.Empty(t, entries)
}

func TestHabitStreakGuardsSameDay(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	hab := store.Hooks(uuid.New()).Habits

	require.NoError(t, hab.AddHabit(ctx, "Morning run"))
	habits, err := hab.Habits(ctx)
	require.NoError(t, err)
	require.Len(t, habits, 1)

	require.NoError(t, hab.CompleteHabit(ctx, habits[0].Id))
	require.NoError(t, hab.CompleteHabit(ctx, habits[0].Id)) // same day, no double count

	habits, err = hab.Habits(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, habits[0].Streak)
}

func TestConversationWindow(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	userId := uuid.New()

	for i := 0; i < 15; i++ {
		require.NoError(t, store.Append(ctx, userId, "user", "message"))
	}

	msgs, err := store.Recent(ctx, userId, 10)
	require.NoError(t, err)
	assert.Len(t, msgs, 10)
}
