package modules

import (
	"context"

	"ai-lifeboard-be/pkg/assistant/hooks"

	"github.com/google/uuid"
)

// Recording fakes. Each call appends a short trace entry so tests can assert
// on what mutated and in which order.

type fakeFinance struct {
	goals   []hooks.SavingsGoal
	calls   []string
	entries []hooks.NewEntry

	entryErr    error
	withdrawErr error
}

func (f *fakeFinance) Budgets(context.Context) ([]hooks.Budget, error) { return nil, nil }
func (f *fakeFinance) SavingsGoals(context.Context) ([]hooks.SavingsGoal, error) {
	return f.goals, nil
}
func (f *fakeFinance) AddEntry(_ context.Context, e hooks.NewEntry) error {
	if f.entryErr != nil {
		return f.entryErr
	}
	f.calls = append(f.calls, "AddEntry")
	f.entries = append(f.entries, e)
	return nil
}
func (f *fakeFinance) SetBudget(_ context.Context, category string, amount float64) error {
	f.calls = append(f.calls, "SetBudget")
	return nil
}
func (f *fakeFinance) AddSavingsGoal(_ context.Context, g hooks.NewSavingsGoal) error {
	f.calls = append(f.calls, "AddSavingsGoal")
	return nil
}
func (f *fakeFinance) AddToSavings(_ context.Context, id uuid.UUID, amount float64) error {
	f.calls = append(f.calls, "AddToSavings")
	return nil
}
func (f *fakeFinance) WithdrawFromSavings(_ context.Context, id uuid.UUID, amount float64) error {
	if f.withdrawErr != nil {
		return f.withdrawErr
	}
	f.calls = append(f.calls, "WithdrawFromSavings")
	return nil
}

type fakeTasks struct {
	tasks []hooks.Task
	calls []string
}

func (f *fakeTasks) Tasks(context.Context) ([]hooks.Task, error) { return f.tasks, nil }
func (f *fakeTasks) AddTask(_ context.Context, t hooks.NewTask) error {
	f.calls = append(f.calls, "AddTask")
	f.tasks = append(f.tasks, hooks.Task{
		Id:       uuid.New(),
		Title:    t.Title,
		Priority: t.Priority,
		DueDate:  t.DueDate,
	})
	return nil
}
func (f *fakeTasks) UpdateTask(_ context.Context, id uuid.UUID, p hooks.TaskPatch) error {
	f.calls = append(f.calls, "UpdateTask")
	return nil
}
func (f *fakeTasks) CompleteTask(_ context.Context, id uuid.UUID) error {
	f.calls = append(f.calls, "CompleteTask")
	return nil
}
func (f *fakeTasks) DeleteTask(_ context.Context, id uuid.UUID) error {
	f.calls = append(f.calls, "DeleteTask")
	return nil
}

type fakeHabits struct {
	habits []hooks.Habit
	calls  []string
}

func (f *fakeHabits) Habits(context.Context) ([]hooks.Habit, error) { return f.habits, nil }
func (f *fakeHabits) AddHabit(_ context.Context, name string) error {
	f.calls = append(f.calls, "AddHabit")
	return nil
}
func (f *fakeHabits) CompleteHabit(_ context.Context, id uuid.UUID) error {
	f.calls = append(f.calls, "CompleteHabit")
	return nil
}
func (f *fakeHabits) DeleteHabit(_ context.Context, id uuid.UUID) error {
	f.calls = append(f.calls, "DeleteHabit")
	return nil
}

type appliedPreset struct {
	PresetId  uuid.UUID
	ChapterId uuid.UUID
	PartScope string
}

type fakeStudy struct {
	subjects []hooks.Subject
	chapters map[uuid.UUID][]hooks.Chapter
	parts    map[uuid.UUID][]hooks.Part
	presets  []hooks.Preset

	calls   []string
	applied []appliedPreset
}

func (f *fakeStudy) Subjects(context.Context) ([]hooks.Subject, error) { return f.subjects, nil }
func (f *fakeStudy) Chapters(_ context.Context, subjectId uuid.UUID) ([]hooks.Chapter, error) {
	return f.chapters[subjectId], nil
}
func (f *fakeStudy) Parts(_ context.Context, chapterId uuid.UUID) ([]hooks.Part, error) {
	return f.parts[chapterId], nil
}
func (f *fakeStudy) Presets(context.Context) ([]hooks.Preset, error) { return f.presets, nil }
func (f *fakeStudy) AddSubject(_ context.Context, name string) error {
	f.calls = append(f.calls, "AddSubject")
	f.subjects = append(f.subjects, hooks.Subject{Id: uuid.New(), Name: name})
	return nil
}
func (f *fakeStudy) AddChapter(_ context.Context, subjectId uuid.UUID, name string) error {
	f.calls = append(f.calls, "AddChapter")
	if f.chapters == nil {
		f.chapters = make(map[uuid.UUID][]hooks.Chapter)
	}
	f.chapters[subjectId] = append(f.chapters[subjectId], hooks.Chapter{Id: uuid.New(), SubjectId: subjectId, Name: name})
	return nil
}
func (f *fakeStudy) AddPart(_ context.Context, chapterId uuid.UUID, name string) error {
	f.calls = append(f.calls, "AddPart")
	if f.parts == nil {
		f.parts = make(map[uuid.UUID][]hooks.Part)
	}
	f.parts[chapterId] = append(f.parts[chapterId], hooks.Part{Id: uuid.New(), ChapterId: chapterId, Name: name})
	return nil
}
func (f *fakeStudy) CompletePart(_ context.Context, id uuid.UUID) error {
	f.calls = append(f.calls, "CompletePart")
	return nil
}
func (f *fakeStudy) AddPreset(_ context.Context, name string) error {
	f.calls = append(f.calls, "AddPreset")
	return nil
}
func (f *fakeStudy) ApplyPreset(_ context.Context, presetId, chapterId uuid.UUID, partScope string) error {
	f.calls = append(f.calls, "ApplyPreset")
	f.applied = append(f.applied, appliedPreset{PresetId: presetId, ChapterId: chapterId, PartScope: partScope})
	return nil
}

type fakeNotes struct {
	notes []hooks.Note
	calls []string
}

func (f *fakeNotes) Notes(context.Context) ([]hooks.Note, error) { return f.notes, nil }
func (f *fakeNotes) AddNote(_ context.Context, n hooks.NewNote) error {
	f.calls = append(f.calls, "AddNote")
	return nil
}
func (f *fakeNotes) DeleteNote(_ context.Context, id uuid.UUID) error {
	f.calls = append(f.calls, "DeleteNote")
	return nil
}

type fakeInventory struct {
	items []hooks.InventoryItem
	calls []string
	added []hooks.NewInventoryItem
}

func (f *fakeInventory) Items(context.Context) ([]hooks.InventoryItem, error) { return f.items, nil }
func (f *fakeInventory) AddItem(_ context.Context, item hooks.NewInventoryItem) error {
	f.calls = append(f.calls, "AddItem")
	f.added = append(f.added, item)
	return nil
}
func (f *fakeInventory) UpdateItem(_ context.Context, id uuid.UUID, p hooks.InventoryPatch) error {
	f.calls = append(f.calls, "UpdateItem")
	return nil
}
func (f *fakeInventory) DeleteItem(_ context.Context, id uuid.UUID) error {
	f.calls = append(f.calls, "DeleteItem")
	return nil
}
