package modules

import (
	"context"
	"testing"

	"ai-lifeboard-be/pkg/assistant/hooks"
	"ai-lifeboard-be/pkg/assistant/resolve"
	"ai-lifeboard-be/pkg/assistant/router"

	"github.com/google/uuid"
)

func TestTasksAddDefaults(t *testing.T) {
	tasks := &fakeTasks{}
	mod := NewTasksModule(resolve.NewSubstring())

	outcome := mod.Execute(context.Background(), ActionAddTask,
		map[string]any{"title": "Buy milk"}, hooks.Capabilities{Tasks: tasks})

	if outcome.Status != router.StatusApplied {
		t.Fatalf("status = %s, want applied", outcome.Status)
	}
	if len(tasks.tasks) != 1 {
		t.Fatalf("stored %d tasks, want 1", len(tasks.tasks))
	}
	added := tasks.tasks[0]
	if added.Priority != "medium" {
		t.Errorf("priority = %q, want default medium", added.Priority)
	}
	if added.DueDate == "" {
		t.Error("due date should default to today")
	}
}

func TestTasksAddWithoutTitleSkips(t *testing.T) {
	tasks := &fakeTasks{}
	mod := NewTasksModule(resolve.NewSubstring())

	outcome := mod.Execute(context.Background(), ActionAddTask,
		map[string]any{}, hooks.Capabilities{Tasks: tasks})

	if outcome.Status != router.StatusSkipped {
		t.Fatalf("status = %s, want skipped", outcome.Status)
	}
	if len(tasks.calls) != 0 {
		t.Error("skipped intent must not mutate")
	}
}

func TestTasksCompleteByPartialTitle(t *testing.T) {
	tasks := &fakeTasks{
		tasks: []hooks.Task{
			{Id: uuid.New(), Title: "Call the dentist"},
			{Id: uuid.New(), Title: "Pay electricity bill"},
		},
	}
	mod := NewTasksModule(resolve.NewSubstring())

	outcome := mod.Execute(context.Background(), ActionCompleteTask,
		map[string]any{"title": "dentist"}, hooks.Capabilities{Tasks: tasks})

	if outcome.Status != router.StatusApplied {
		t.Fatalf("status = %s, want applied", outcome.Status)
	}
	if len(tasks.calls) != 1 || tasks.calls[0] != "CompleteTask" {
		t.Errorf("calls = %v, want one CompleteTask", tasks.calls)
	}
}

func TestTasksUnresolvedReferenceIsNotFoundWithoutMutation(t *testing.T) {
	tasks := &fakeTasks{
		tasks: []hooks.Task{{Id: uuid.New(), Title: "Call the dentist"}},
	}
	mod := NewTasksModule(resolve.NewSubstring())

	for _, action := range []string{ActionUpdateTask, ActionCompleteTask, ActionDeleteTask} {
		outcome := mod.Execute(context.Background(), action,
			map[string]any{"title": "plumber"}, hooks.Capabilities{Tasks: tasks})

		if outcome.Status != router.StatusNotFound {
			t.Errorf("%s status = %s, want not_found", action, outcome.Status)
		}
		if outcome.Err != nil {
			t.Errorf("%s: a miss is not an error, got %v", action, outcome.Err)
		}
	}
	if len(tasks.calls) != 0 {
		t.Errorf("unresolved references must not mutate, calls = %v", tasks.calls)
	}
}

func TestTasksUpdatePatchesOnlyProvidedFields(t *testing.T) {
	tasks := &fakeTasks{
		tasks: []hooks.Task{{Id: uuid.New(), Title: "Write report"}},
	}
	mod := NewTasksModule(resolve.NewSubstring())

	outcome := mod.Execute(context.Background(), ActionUpdateTask,
		map[string]any{"title": "report", "priority": "high"}, hooks.Capabilities{Tasks: tasks})

	if outcome.Status != router.StatusApplied {
		t.Fatalf("status = %s, want applied", outcome.Status)
	}
	if len(tasks.calls) != 1 || tasks.calls[0] != "UpdateTask" {
		t.Errorf("calls = %v, want one UpdateTask", tasks.calls)
	}
}

func TestHabitsResolveAndComplete(t *testing.T) {
	habits := &fakeHabits{
		habits: []hooks.Habit{
			{Id: uuid.New(), Name: "Morning gym session", Streak: 4},
		},
	}
	mod := NewHabitsModule(resolve.NewSubstring())

	outcome := mod.Execute(context.Background(), ActionCompleteHabit,
		map[string]any{"name": "gym"}, hooks.Capabilities{Habits: habits})

	if outcome.Status != router.StatusApplied {
		t.Fatalf("status = %s, want applied", outcome.Status)
	}

	outcome = mod.Execute(context.Background(), ActionDeleteHabit,
		map[string]any{"name": "yoga"}, hooks.Capabilities{Habits: habits})
	if outcome.Status != router.StatusNotFound {
		t.Errorf("unknown habit should be not_found, got %s", outcome.Status)
	}
}

func TestNotesAddAndDelete(t *testing.T) {
	noteId := uuid.New()
	notes := &fakeNotes{
		notes: []hooks.Note{{Id: noteId, Title: "Meeting notes"}},
	}
	mod := NewNotesModule(resolve.NewSubstring())

	outcome := mod.Execute(context.Background(), ActionAddNote,
		map[string]any{"title": "Ideas", "content": "..."}, hooks.Capabilities{Notes: notes})
	if outcome.Status != router.StatusApplied {
		t.Fatalf("add status = %s, want applied", outcome.Status)
	}

	outcome = mod.Execute(context.Background(), ActionDeleteNote,
		map[string]any{"title": "meeting"}, hooks.Capabilities{Notes: notes})
	if outcome.Status != router.StatusApplied {
		t.Fatalf("delete status = %s, want applied", outcome.Status)
	}
}

func TestInventoryAddDefaults(t *testing.T) {
	inv := &fakeInventory{}
	mod := NewInventoryModule(resolve.NewSubstring())

	outcome := mod.Execute(context.Background(), ActionAddInventoryItem,
		map[string]any{"name": "AA batteries"}, hooks.Capabilities{Inventory: inv})

	if outcome.Status != router.StatusApplied {
		t.Fatalf("status = %s, want applied", outcome.Status)
	}
	if len(inv.added) != 1 {
		t.Fatalf("added %d items, want 1", len(inv.added))
	}
	if inv.added[0].Quantity != 1 {
		t.Errorf("quantity = %v, want default 1", inv.added[0].Quantity)
	}
	if inv.added[0].Location != "general" {
		t.Errorf("location = %q, want default general", inv.added[0].Location)
	}
}
