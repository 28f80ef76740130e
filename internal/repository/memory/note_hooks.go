package memory

import (
	"context"
	"fmt"
	"time"

	"ai-lifeboard-be/internal/entity"
	"ai-lifeboard-be/pkg/assistant/hooks"

	"github.com/google/uuid"
)

type noteHooks struct {
	store  *Store
	userId uuid.UUID
}

var _ hooks.NoteHooks = &noteHooks{}

func (h *noteHooks) Notes(ctx context.Context) ([]hooks.Note, error) {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()

	notes := getSlice[entity.Note](h.store, "notes", h.userId)
	out := make([]hooks.Note, len(notes))
	for i, n := range notes {
		out[i] = hooks.Note{Id: n.Id, Title: n.Title, Content: n.Content}
	}
	return out, nil
}

func (h *noteHooks) AddNote(ctx context.Context, note hooks.NewNote) error {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()

	notes := getSlice[entity.Note](h.store, "notes", h.userId)
	notes = append(notes, entity.Note{
		Id:        uuid.New(),
		UserId:    h.userId,
		Title:     note.Title,
		Content:   note.Content,
		CreatedAt: time.Now(),
	})
	putSlice(h.store, "notes", h.userId, notes)
	return nil
}

func (h *noteHooks) DeleteNote(ctx context.Context, id uuid.UUID) error {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()

	notes := getSlice[entity.Note](h.store, "notes", h.userId)
	for i, n := range notes {
		if n.Id == id {
			notes = append(notes[:i], notes[i+1:]...)
			putSlice(h.store, "notes", h.userId, notes)
			return nil
		}
	}
	return fmt.Errorf("note %s not found", id)
}
