package router

import (
	"context"

	"ai-lifeboard-be/pkg/assistant/hooks"

	"github.com/google/uuid"
)

// Inert hook implementations used to verify capability subsetting.

type stubFinance struct{}

func (stubFinance) Budgets(context.Context) ([]hooks.Budget, error)           { return nil, nil }
func (stubFinance) SavingsGoals(context.Context) ([]hooks.SavingsGoal, error) { return nil, nil }
func (stubFinance) AddEntry(context.Context, hooks.NewEntry) error            { return nil }
func (stubFinance) SetBudget(context.Context, string, float64) error          { return nil }
func (stubFinance) AddSavingsGoal(context.Context, hooks.NewSavingsGoal) error {
	return nil
}
func (stubFinance) AddToSavings(context.Context, uuid.UUID, float64) error        { return nil }
func (stubFinance) WithdrawFromSavings(context.Context, uuid.UUID, float64) error { return nil }

type stubTasks struct{}

func (stubTasks) Tasks(context.Context) ([]hooks.Task, error)                { return nil, nil }
func (stubTasks) AddTask(context.Context, hooks.NewTask) error               { return nil }
func (stubTasks) UpdateTask(context.Context, uuid.UUID, hooks.TaskPatch) error { return nil }
func (stubTasks) CompleteTask(context.Context, uuid.UUID) error              { return nil }
func (stubTasks) DeleteTask(context.Context, uuid.UUID) error                { return nil }

type stubNotes struct{}

func (stubNotes) Notes(context.Context) ([]hooks.Note, error)  { return nil, nil }
func (stubNotes) AddNote(context.Context, hooks.NewNote) error { return nil }
func (stubNotes) DeleteNote(context.Context, uuid.UUID) error  { return nil }

type stubHabits struct{}

func (stubHabits) Habits(context.Context) ([]hooks.Habit, error) { return nil, nil }
func (stubHabits) AddHabit(context.Context, string) error        { return nil }
func (stubHabits) CompleteHabit(context.Context, uuid.UUID) error {
	return nil
}
func (stubHabits) DeleteHabit(context.Context, uuid.UUID) error { return nil }

type stubStudy struct{}

func (stubStudy) Subjects(context.Context) ([]hooks.Subject, error) { return nil, nil }
func (stubStudy) Chapters(context.Context, uuid.UUID) ([]hooks.Chapter, error) {
	return nil, nil
}
func (stubStudy) Parts(context.Context, uuid.UUID) ([]hooks.Part, error) { return nil, nil }
func (stubStudy) Presets(context.Context) ([]hooks.Preset, error)        { return nil, nil }
func (stubStudy) AddSubject(context.Context, string) error               { return nil }
func (stubStudy) AddChapter(context.Context, uuid.UUID, string) error    { return nil }
func (stubStudy) AddPart(context.Context, uuid.UUID, string) error       { return nil }
func (stubStudy) CompletePart(context.Context, uuid.UUID) error          { return nil }
func (stubStudy) AddPreset(context.Context, string) error                { return nil }
func (stubStudy) ApplyPreset(context.Context, uuid.UUID, uuid.UUID, string) error {
	return nil
}

type stubInventory struct{}

func (stubInventory) Items(context.Context) ([]hooks.InventoryItem, error) { return nil, nil }
func (stubInventory) AddItem(context.Context, hooks.NewInventoryItem) error {
	return nil
}
func (stubInventory) UpdateItem(context.Context, uuid.UUID, hooks.InventoryPatch) error {
	return nil
}
func (stubInventory) DeleteItem(context.Context, uuid.UUID) error { return nil }
