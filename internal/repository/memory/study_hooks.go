package memory

import (
	"context"
	"fmt"
	"time"

	"ai-lifeboard-be/internal/entity"
	"ai-lifeboard-be/pkg/assistant/hooks"

	"github.com/google/uuid"
)

type studyHooks struct {
	store  *Store
	userId uuid.UUID
}

var _ hooks.StudyHooks = &studyHooks{}

func (h *studyHooks) Subjects(ctx context.Context) ([]hooks.Subject, error) {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()

	subjects := getSlice[entity.StudySubject](h.store, "study_subjects", h.userId)
	out := make([]hooks.Subject, len(subjects))
	for i, s := range subjects {
		out[i] = hooks.Subject{Id: s.Id, Name: s.Name}
	}
	return out, nil
}

func (h *studyHooks) Chapters(ctx context.Context, subjectId uuid.UUID) ([]hooks.Chapter, error) {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()

	chapters := getSlice[entity.StudyChapter](h.store, "study_chapters", h.userId)
	out := make([]hooks.Chapter, 0)
	for _, c := range chapters {
		if c.SubjectId == subjectId {
			out = append(out, hooks.Chapter{Id: c.Id, SubjectId: c.SubjectId, Name: c.Name})
		}
	}
	return out, nil
}

func (h *studyHooks) Parts(ctx context.Context, chapterId uuid.UUID) ([]hooks.Part, error) {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()

	parts := getSlice[entity.StudyPart](h.store, "study_parts", h.userId)
	out := make([]hooks.Part, 0)
	for _, p := range parts {
		if p.ChapterId == chapterId {
			out = append(out, hooks.Part{Id: p.Id, ChapterId: p.ChapterId, Name: p.Name, Completed: p.Completed})
		}
	}
	return out, nil
}

func (h *studyHooks) Presets(ctx context.Context) ([]hooks.Preset, error) {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()

	presets := getSlice[entity.StudyPreset](h.store, "study_presets", h.userId)
	out := make([]hooks.Preset, len(presets))
	for i, p := range presets {
		out[i] = hooks.Preset{Id: p.Id, Name: p.Name, ParentId: p.ParentId}
	}
	return out, nil
}

func (h *studyHooks) AddSubject(ctx context.Context, name string) error {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()

	subjects := getSlice[entity.StudySubject](h.store, "study_subjects", h.userId)
	subjects = append(subjects, entity.StudySubject{
		Id:        uuid.New(),
		UserId:    h.userId,
		Name:      name,
		CreatedAt: time.Now(),
	})
	putSlice(h.store, "study_subjects", h.userId, subjects)
	return nil
}

func (h *studyHooks) AddChapter(ctx context.Context, subjectId uuid.UUID, name string) error {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()

	chapters := getSlice[entity.StudyChapter](h.store, "study_chapters", h.userId)
	chapters = append(chapters, entity.StudyChapter{
		Id:        uuid.New(),
		SubjectId: subjectId,
		Name:      name,
		CreatedAt: time.Now(),
	})
	putSlice(h.store, "study_chapters", h.userId, chapters)
	return nil
}

func (h *studyHooks) AddPart(ctx context.Context, chapterId uuid.UUID, name string) error {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()

	parts := getSlice[entity.StudyPart](h.store, "study_parts", h.userId)
	parts = append(parts, entity.StudyPart{
		Id:        uuid.New(),
		ChapterId: chapterId,
		Name:      name,
		CreatedAt: time.Now(),
	})
	putSlice(h.store, "study_parts", h.userId, parts)
	return nil
}

func (h *studyHooks) CompletePart(ctx context.Context, id uuid.UUID) error {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()

	parts := getSlice[entity.StudyPart](h.store, "study_parts", h.userId)
	now := time.Now()
	for i, p := range parts {
		if p.Id == id {
			parts[i].Completed = true
			parts[i].UpdatedAt = &now
			putSlice(h.store, "study_parts", h.userId, parts)
			return nil
		}
	}
	return fmt.Errorf("study part %s not found", id)
}

func (h *studyHooks) AddPreset(ctx context.Context, name string) error {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()

	presets := getSlice[entity.StudyPreset](h.store, "study_presets", h.userId)
	presets = append(presets, entity.StudyPreset{
		Id:        uuid.New(),
		UserId:    h.userId,
		Name:      name,
		CreatedAt: time.Now(),
	})
	putSlice(h.store, "study_presets", h.userId, presets)
	return nil
}

func (h *studyHooks) ApplyPreset(ctx context.Context, presetId, chapterId uuid.UUID, partScope string) error {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()

	links := getSlice[entity.StudyPresetLink](h.store, "study_preset_links", h.userId)
	links = append(links, entity.StudyPresetLink{
		Id:        uuid.New(),
		PresetId:  presetId,
		ChapterId: chapterId,
		PartScope: partScope,
		CreatedAt: time.Now(),
	})
	putSlice(h.store, "study_preset_links", h.userId, links)
	return nil
}

// PresetLinks is a read helper for tests and the REPL; the assistant core
// itself never reads links back.
func (h *studyHooks) PresetLinks(ctx context.Context) ([]entity.StudyPresetLink, error) {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()

	return getSlice[entity.StudyPresetLink](h.store, "study_preset_links", h.userId), nil
}
