package modules

import (
	"context"

	"ai-lifeboard-be/pkg/assistant/hooks"
	"ai-lifeboard-be/pkg/assistant/resolve"
	"ai-lifeboard-be/pkg/assistant/router"
)

// Note action names
const (
	ActionAddNote    = "ADD_NOTE"
	ActionDeleteNote = "DELETE_NOTE"
)

const notesPrompt = `NOTE RULES:
- ADD_NOTE data: {"title": string, "content": string}. If the user dictates a quick
  thought without a title, derive a short title from the first few words.
- DELETE_NOTE data: {"title": string}. Partial titles are fine.`

type notesExecutor struct {
	resolver resolve.Strategy
}

// NewNotesModule builds the notes module descriptor.
func NewNotesModule(resolver resolve.Strategy) router.Module {
	e := &notesExecutor{resolver: resolver}
	return router.Module{
		Name:           hooks.DomainNotes,
		Actions:        []string{ActionAddNote, ActionDeleteNote},
		PromptFragment: notesPrompt,
		Execute:        e.execute,
	}
}

func (e *notesExecutor) execute(ctx context.Context, action string, data map[string]any, caps hooks.Capabilities) router.Outcome {
	notes := caps.Notes

	switch action {
	case ActionAddNote:
		title := str(data, "title")
		if title == "" {
			return router.Skipped(action, "note needs a title")
		}
		note := hooks.NewNote{
			Title:   title,
			Content: str(data, "content"),
		}
		if err := notes.AddNote(ctx, note); err != nil {
			return router.Failed(action, err)
		}
		return router.Applied(action)

	case ActionDeleteNote:
		title := str(data, "title")
		all, err := notes.Notes(ctx)
		if err != nil {
			return router.Failed(action, err)
		}
		candidates := make([]resolve.Candidate, len(all))
		for i, n := range all {
			candidates[i] = resolve.Candidate{Id: n.Id, Name: n.Title}
		}
		match, found := e.resolver.Resolve(title, candidates)
		if !found {
			return router.NotFound(action, title)
		}
		if err := notes.DeleteNote(ctx, match.Id); err != nil {
			return router.Failed(action, err)
		}
		return router.Applied(action)

	default:
		return router.Unhandled(action)
	}
}
