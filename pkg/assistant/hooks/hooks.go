package hooks

import (
	"context"

	"github.com/google/uuid"
)

// Domain keys. Each module owns exactly one and receives only that domain's hooks.
const (
	DomainFinance   = "finance"
	DomainTasks     = "tasks"
	DomainNotes     = "notes"
	DomainHabits    = "habits"
	DomainStudy     = "study"
	DomainInventory = "inventory"
)

// PartScopeAll is the sentinel for applying a study preset to every part of a
// chapter instead of one specific part.
const PartScopeAll = "all-parts"

// Capabilities bundles the per-domain hook interfaces the host supplies on every
// dispatch call. The dispatcher blanks every field except the owning module's
// before invoking an executor. Executors must not cache these across calls.
type Capabilities struct {
	Finance   FinanceHooks
	Tasks     TaskHooks
	Notes     NoteHooks
	Habits    HabitHooks
	Study     StudyHooks
	Inventory InventoryHooks
}

// --- Finance ---

type Entry struct {
	Id          uuid.UUID
	Type        string // "income" | "expense"
	Amount      float64
	Category    string
	Description string
	Date        string // YYYY-MM-DD
	IsSpecial   bool
}

type NewEntry struct {
	Type        string
	Amount      float64
	Category    string
	Description string
	Date        string
	IsSpecial   bool
}

type Budget struct {
	Id       uuid.UUID
	Category string
	Amount   float64
}

type SavingsGoal struct {
	Id     uuid.UUID
	Name   string
	Target float64
	Saved  float64
}

type NewSavingsGoal struct {
	Name   string
	Target float64
}

type FinanceHooks interface {
	Budgets(ctx context.Context) ([]Budget, error)
	SavingsGoals(ctx context.Context) ([]SavingsGoal, error)
	AddEntry(ctx context.Context, entry NewEntry) error
	SetBudget(ctx context.Context, category string, amount float64) error
	AddSavingsGoal(ctx context.Context, goal NewSavingsGoal) error
	AddToSavings(ctx context.Context, id uuid.UUID, amount float64) error
	WithdrawFromSavings(ctx context.Context, id uuid.UUID, amount float64) error
}

// --- Tasks ---

type Task struct {
	Id           uuid.UUID
	Title        string
	Priority     string // "low" | "medium" | "high"
	DueDate      string // YYYY-MM-DD
	ContextType  string // "general" | "finance" | ...
	ExpectedCost float64
	FinanceType  string // entry type to record when a finance task completes
	Completed    bool
}

type NewTask struct {
	Title        string
	Priority     string
	DueDate      string
	ContextType  string
	ExpectedCost float64
	FinanceType  string
}

type TaskPatch struct {
	Title    *string
	Priority *string
	DueDate  *string
}

type TaskHooks interface {
	Tasks(ctx context.Context) ([]Task, error)
	AddTask(ctx context.Context, task NewTask) error
	UpdateTask(ctx context.Context, id uuid.UUID, patch TaskPatch) error
	// CompleteTask owns the finance-linked side effect: completing a task with
	// ContextType "finance" and an expected cost also records a finance entry.
	CompleteTask(ctx context.Context, id uuid.UUID) error
	DeleteTask(ctx context.Context, id uuid.UUID) error
}

// --- Notes ---

type Note struct {
	Id      uuid.UUID
	Title   string
	Content string
}

type NewNote struct {
	Title   string
	Content string
}

type NoteHooks interface {
	Notes(ctx context.Context) ([]Note, error)
	AddNote(ctx context.Context, note NewNote) error
	DeleteNote(ctx context.Context, id uuid.UUID) error
}

// --- Habits ---

type Habit struct {
	Id     uuid.UUID
	Name   string
	Streak int
}

type HabitHooks interface {
	Habits(ctx context.Context) ([]Habit, error)
	AddHabit(ctx context.Context, name string) error
	CompleteHabit(ctx context.Context, id uuid.UUID) error
	DeleteHabit(ctx context.Context, id uuid.UUID) error
}

// --- Study ---

type Subject struct {
	Id   uuid.UUID
	Name string
}

type Chapter struct {
	Id        uuid.UUID
	SubjectId uuid.UUID
	Name      string
}

type Part struct {
	Id        uuid.UUID
	ChapterId uuid.UUID
	Name      string
	Completed bool
}

// Preset is a named study template. Presets can nest; only top-level presets
// (ParentId == nil) are addressable by name from user text.
type Preset struct {
	Id       uuid.UUID
	Name     string
	ParentId *uuid.UUID
}

type StudyHooks interface {
	Subjects(ctx context.Context) ([]Subject, error)
	Chapters(ctx context.Context, subjectId uuid.UUID) ([]Chapter, error)
	Parts(ctx context.Context, chapterId uuid.UUID) ([]Part, error)
	Presets(ctx context.Context) ([]Preset, error)
	AddSubject(ctx context.Context, name string) error
	AddChapter(ctx context.Context, subjectId uuid.UUID, name string) error
	AddPart(ctx context.Context, chapterId uuid.UUID, name string) error
	CompletePart(ctx context.Context, id uuid.UUID) error
	AddPreset(ctx context.Context, name string) error
	// ApplyPreset attaches a preset to a chapter. partScope is either the id of
	// one part (as string) or the PartScopeAll sentinel.
	ApplyPreset(ctx context.Context, presetId, chapterId uuid.UUID, partScope string) error
}

// --- Inventory ---

type InventoryItem struct {
	Id       uuid.UUID
	Name     string
	Quantity float64
	Location string
}

type NewInventoryItem struct {
	Name     string
	Quantity float64
	Location string
}

type InventoryPatch struct {
	Quantity *float64
	Location *string
}

type InventoryHooks interface {
	Items(ctx context.Context) ([]InventoryItem, error)
	AddItem(ctx context.Context, item NewInventoryItem) error
	UpdateItem(ctx context.Context, id uuid.UUID, patch InventoryPatch) error
	DeleteItem(ctx context.Context, id uuid.UUID) error
}
