package modules

import (
	"context"

	"ai-lifeboard-be/pkg/assistant/hooks"
	"ai-lifeboard-be/pkg/assistant/resolve"
	"ai-lifeboard-be/pkg/assistant/router"
)

// Task action names
const (
	ActionAddTask      = "ADD_TASK"
	ActionUpdateTask   = "UPDATE_TASK"
	ActionCompleteTask = "COMPLETE_TASK"
	ActionDeleteTask   = "DELETE_TASK"
)

const tasksPrompt = `TASK RULES:
- ADD_TASK data: {"title": string, "priority": "low"|"medium"|"high", "due_date": "YYYY-MM-DD",
  "context_type": string, "expected_cost": number, "finance_type": "expense"|"income"}.
  Priority defaults to "medium", due_date to today, context_type to "general".
  When the task is about buying/paying for something, set "context_type": "finance"
  and fill expected_cost + finance_type; completing it will then log the money
  automatically.
- UPDATE_TASK data: {"title": string, "new_title": string, "priority": string, "due_date": string}.
  "title" locates the existing task (partial names are fine); the other fields are
  the changes.
- COMPLETE_TASK / DELETE_TASK data: {"title": string}. Partial names are fine.`

type tasksExecutor struct {
	resolver resolve.Strategy
}

// NewTasksModule builds the tasks module descriptor.
func NewTasksModule(resolver resolve.Strategy) router.Module {
	e := &tasksExecutor{resolver: resolver}
	return router.Module{
		Name: hooks.DomainTasks,
		Actions: []string{
			ActionAddTask,
			ActionUpdateTask,
			ActionCompleteTask,
			ActionDeleteTask,
		},
		PromptFragment: tasksPrompt,
		Execute:        e.execute,
	}
}

func (e *tasksExecutor) execute(ctx context.Context, action string, data map[string]any, caps hooks.Capabilities) router.Outcome {
	tasks := caps.Tasks

	switch action {
	case ActionAddTask:
		title := str(data, "title")
		if title == "" {
			return router.Skipped(action, "task needs a title")
		}
		task := hooks.NewTask{
			Title:        title,
			Priority:     strDefault(data, "priority", "medium"),
			DueDate:      strDefault(data, "due_date", today()),
			ContextType:  strDefault(data, "context_type", "general"),
			ExpectedCost: numDefault(data, "expected_cost", 0),
			FinanceType:  str(data, "finance_type"),
		}
		if err := tasks.AddTask(ctx, task); err != nil {
			return router.Failed(action, err)
		}
		return router.Applied(action)

	case ActionUpdateTask:
		target, outcome, ok := e.resolveTask(ctx, tasks, action, data)
		if !ok {
			return outcome
		}
		patch := hooks.TaskPatch{}
		if v := str(data, "new_title"); v != "" {
			patch.Title = &v
		}
		if v := str(data, "priority"); v != "" {
			patch.Priority = &v
		}
		if v := str(data, "due_date"); v != "" {
			patch.DueDate = &v
		}
		if err := tasks.UpdateTask(ctx, target.Id, patch); err != nil {
			return router.Failed(action, err)
		}
		return router.Applied(action)

	case ActionCompleteTask:
		// The capability owns any finance-linked completion side effect; this
		// executor only completes by id.
		target, outcome, ok := e.resolveTask(ctx, tasks, action, data)
		if !ok {
			return outcome
		}
		if err := tasks.CompleteTask(ctx, target.Id); err != nil {
			return router.Failed(action, err)
		}
		return router.Applied(action)

	case ActionDeleteTask:
		target, outcome, ok := e.resolveTask(ctx, tasks, action, data)
		if !ok {
			return outcome
		}
		if err := tasks.DeleteTask(ctx, target.Id); err != nil {
			return router.Failed(action, err)
		}
		return router.Applied(action)

	default:
		return router.Unhandled(action)
	}
}

func (e *tasksExecutor) resolveTask(ctx context.Context, tasks hooks.TaskHooks, action string, data map[string]any) (hooks.Task, router.Outcome, bool) {
	title := str(data, "title")
	all, err := tasks.Tasks(ctx)
	if err != nil {
		return hooks.Task{}, router.Failed(action, err), false
	}

	candidates := make([]resolve.Candidate, len(all))
	for i, t := range all {
		candidates[i] = resolve.Candidate{Id: t.Id, Name: t.Title}
	}

	match, found := e.resolver.Resolve(title, candidates)
	if !found {
		return hooks.Task{}, router.NotFound(action, title), false
	}

	for _, t := range all {
		if t.Id == match.Id {
			return t, router.Outcome{}, true
		}
	}
	return hooks.Task{}, router.NotFound(action, title), false
}
