package modules

import (
	"context"

	"ai-lifeboard-be/pkg/assistant/hooks"
	"ai-lifeboard-be/pkg/assistant/resolve"
	"ai-lifeboard-be/pkg/assistant/router"
)

// Habit action names
const (
	ActionAddHabit      = "ADD_HABIT"
	ActionCompleteHabit = "COMPLETE_HABIT"
	ActionDeleteHabit   = "DELETE_HABIT"
)

const habitsPrompt = `HABIT RULES:
- ADD_HABIT data: {"name": string}.
- COMPLETE_HABIT data: {"name": string}. Marks today's check-in for the habit.
- DELETE_HABIT data: {"name": string}. Partial names are fine ("gym" matches
  "Morning gym session").`

type habitsExecutor struct {
	resolver resolve.Strategy
}

// NewHabitsModule builds the habits module descriptor.
func NewHabitsModule(resolver resolve.Strategy) router.Module {
	e := &habitsExecutor{resolver: resolver}
	return router.Module{
		Name:           hooks.DomainHabits,
		Actions:        []string{ActionAddHabit, ActionCompleteHabit, ActionDeleteHabit},
		PromptFragment: habitsPrompt,
		Execute:        e.execute,
	}
}

func (e *habitsExecutor) execute(ctx context.Context, action string, data map[string]any, caps hooks.Capabilities) router.Outcome {
	habits := caps.Habits

	switch action {
	case ActionAddHabit:
		name := str(data, "name")
		if name == "" {
			return router.Skipped(action, "habit needs a name")
		}
		if err := habits.AddHabit(ctx, name); err != nil {
			return router.Failed(action, err)
		}
		return router.Applied(action)

	case ActionCompleteHabit:
		match, outcome, ok := e.resolveHabit(ctx, habits, action, data)
		if !ok {
			return outcome
		}
		if err := habits.CompleteHabit(ctx, match.Id); err != nil {
			return router.Failed(action, err)
		}
		return router.Applied(action)

	case ActionDeleteHabit:
		match, outcome, ok := e.resolveHabit(ctx, habits, action, data)
		if !ok {
			return outcome
		}
		if err := habits.DeleteHabit(ctx, match.Id); err != nil {
			return router.Failed(action, err)
		}
		return router.Applied(action)

	default:
		return router.Unhandled(action)
	}
}

func (e *habitsExecutor) resolveHabit(ctx context.Context, habits hooks.HabitHooks, action string, data map[string]any) (resolve.Candidate, router.Outcome, bool) {
	name := str(data, "name")
	all, err := habits.Habits(ctx)
	if err != nil {
		return resolve.Candidate{}, router.Failed(action, err), false
	}

	candidates := make([]resolve.Candidate, len(all))
	for i, h := range all {
		candidates[i] = resolve.Candidate{Id: h.Id, Name: h.Name}
	}

	match, found := e.resolver.Resolve(name, candidates)
	if !found {
		return resolve.Candidate{}, router.NotFound(action, name), false
	}
	return match, router.Outcome{}, true
}
