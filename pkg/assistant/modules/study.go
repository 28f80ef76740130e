package modules

import (
	"context"
	"strings"

	"ai-lifeboard-be/pkg/assistant/hooks"
	"ai-lifeboard-be/pkg/assistant/resolve"
	"ai-lifeboard-be/pkg/assistant/router"

	"github.com/google/uuid"
)

// Study action names
const (
	ActionAddStudySubject   = "ADD_STUDY_SUBJECT"
	ActionAddStudyChapter   = "ADD_STUDY_CHAPTER"
	ActionAddStudyPart      = "ADD_STUDY_PART"
	ActionCompleteStudyPart = "COMPLETE_STUDY_PART"
	ActionAddStudyPreset    = "ADD_STUDY_PRESET"
	ActionApplyStudyPreset  = "APPLY_STUDY_PRESET"
)

const studyPrompt = `STUDY RULES:
Study material is hierarchical: Subject -> Chapter -> Part.
- ADD_STUDY_SUBJECT data: {"name": string}.
- ADD_STUDY_CHAPTER data: {"subject_name": string, "chapter_name": string}.
- ADD_STUDY_PART data: {"subject_name": string, "chapter_name": string, "part_name": string}.
- COMPLETE_STUDY_PART data: same keys as ADD_STUDY_PART; marks the part done.
- ADD_STUDY_PRESET data: {"name": string}. Creates a reusable study template.
- APPLY_STUDY_PRESET data: {"preset_name": string, "subject_name": string,
  "chapter_name": string, "part_name": string}. Attaches the preset to the chapter.
  Use "part_name": "all-parts" to cover every part of the chapter.
All names may be partial ("physics" matches "Physics 101"). When the user creates
a subject and its chapters in one message, emit the subject action FIRST.`

type studyExecutor struct {
	resolver resolve.Strategy
}

// NewStudyModule builds the study module descriptor.
func NewStudyModule(resolver resolve.Strategy) router.Module {
	e := &studyExecutor{resolver: resolver}
	return router.Module{
		Name: hooks.DomainStudy,
		Actions: []string{
			ActionAddStudySubject,
			ActionAddStudyChapter,
			ActionAddStudyPart,
			ActionCompleteStudyPart,
			ActionAddStudyPreset,
			ActionApplyStudyPreset,
		},
		PromptFragment: studyPrompt,
		Execute:        e.execute,
	}
}

func (e *studyExecutor) execute(ctx context.Context, action string, data map[string]any, caps hooks.Capabilities) router.Outcome {
	study := caps.Study

	switch action {
	case ActionAddStudySubject:
		name := str(data, "name")
		if name == "" {
			return router.Skipped(action, "subject needs a name")
		}
		if err := study.AddSubject(ctx, name); err != nil {
			return router.Failed(action, err)
		}
		return router.Applied(action)

	case ActionAddStudyChapter:
		subject, outcome, ok := e.resolveSubject(ctx, study, action, data)
		if !ok {
			return outcome
		}
		chapterName := str(data, "chapter_name")
		if chapterName == "" {
			return router.Skipped(action, "chapter needs a name")
		}
		if err := study.AddChapter(ctx, subject.Id, chapterName); err != nil {
			return router.Failed(action, err)
		}
		return router.Applied(action)

	case ActionAddStudyPart:
		chapter, outcome, ok := e.resolveChapter(ctx, study, action, data)
		if !ok {
			return outcome
		}
		partName := str(data, "part_name")
		if partName == "" {
			return router.Skipped(action, "part needs a name")
		}
		if err := study.AddPart(ctx, chapter.Id, partName); err != nil {
			return router.Failed(action, err)
		}
		return router.Applied(action)

	case ActionCompleteStudyPart:
		part, outcome, ok := e.resolvePart(ctx, study, action, data)
		if !ok {
			return outcome
		}
		if err := study.CompletePart(ctx, part.Id); err != nil {
			return router.Failed(action, err)
		}
		return router.Applied(action)

	case ActionAddStudyPreset:
		name := str(data, "name")
		if name == "" {
			return router.Skipped(action, "preset needs a name")
		}
		if err := study.AddPreset(ctx, name); err != nil {
			return router.Failed(action, err)
		}
		return router.Applied(action)

	case ActionApplyStudyPreset:
		return e.applyPreset(ctx, study, data)

	default:
		return router.Unhandled(action)
	}
}

func (e *studyExecutor) applyPreset(ctx context.Context, study hooks.StudyHooks, data map[string]any) router.Outcome {
	action := ActionApplyStudyPreset

	presetName := str(data, "preset_name")
	presets, err := study.Presets(ctx)
	if err != nil {
		return router.Failed(action, err)
	}

	// Only top-level presets are addressable; children of another preset are
	// internal structure, not names the user can target.
	candidates := make([]resolve.Candidate, 0, len(presets))
	for _, p := range presets {
		if p.ParentId != nil {
			continue
		}
		candidates = append(candidates, resolve.Candidate{Id: p.Id, Name: p.Name})
	}

	preset, found := e.resolver.Resolve(presetName, candidates)
	if !found {
		return router.NotFound(action, presetName)
	}

	chapter, outcome, ok := e.resolveChapter(ctx, study, action, data)
	if !ok {
		return outcome
	}

	partName := str(data, "part_name")
	if strings.EqualFold(partName, hooks.PartScopeAll) || partName == "" {
		if err := study.ApplyPreset(ctx, preset.Id, chapter.Id, hooks.PartScopeAll); err != nil {
			return router.Failed(action, err)
		}
		return router.Applied(action)
	}

	part, outcome, ok := e.resolvePartIn(ctx, study, action, chapter.Id, partName)
	if !ok {
		return outcome
	}
	if err := study.ApplyPreset(ctx, preset.Id, chapter.Id, part.Id.String()); err != nil {
		return router.Failed(action, err)
	}
	return router.Applied(action)
}

func (e *studyExecutor) resolveSubject(ctx context.Context, study hooks.StudyHooks, action string, data map[string]any) (hooks.Subject, router.Outcome, bool) {
	name := str(data, "subject_name")
	subjects, err := study.Subjects(ctx)
	if err != nil {
		return hooks.Subject{}, router.Failed(action, err), false
	}

	candidates := make([]resolve.Candidate, len(subjects))
	for i, s := range subjects {
		candidates[i] = resolve.Candidate{Id: s.Id, Name: s.Name}
	}

	match, found := e.resolver.Resolve(name, candidates)
	if !found {
		return hooks.Subject{}, router.NotFound(action, name), false
	}

	for _, s := range subjects {
		if s.Id == match.Id {
			return s, router.Outcome{}, true
		}
	}
	return hooks.Subject{}, router.NotFound(action, name), false
}

func (e *studyExecutor) resolveChapter(ctx context.Context, study hooks.StudyHooks, action string, data map[string]any) (hooks.Chapter, router.Outcome, bool) {
	subject, outcome, ok := e.resolveSubject(ctx, study, action, data)
	if !ok {
		return hooks.Chapter{}, outcome, false
	}

	name := str(data, "chapter_name")
	chapters, err := study.Chapters(ctx, subject.Id)
	if err != nil {
		return hooks.Chapter{}, router.Failed(action, err), false
	}

	candidates := make([]resolve.Candidate, len(chapters))
	for i, c := range chapters {
		candidates[i] = resolve.Candidate{Id: c.Id, Name: c.Name}
	}

	match, found := e.resolver.Resolve(name, candidates)
	if !found {
		return hooks.Chapter{}, router.NotFound(action, name), false
	}

	for _, c := range chapters {
		if c.Id == match.Id {
			return c, router.Outcome{}, true
		}
	}
	return hooks.Chapter{}, router.NotFound(action, name), false
}

func (e *studyExecutor) resolvePart(ctx context.Context, study hooks.StudyHooks, action string, data map[string]any) (hooks.Part, router.Outcome, bool) {
	chapter, outcome, ok := e.resolveChapter(ctx, study, action, data)
	if !ok {
		return hooks.Part{}, outcome, false
	}
	return e.resolvePartIn(ctx, study, action, chapter.Id, str(data, "part_name"))
}

func (e *studyExecutor) resolvePartIn(ctx context.Context, study hooks.StudyHooks, action string, chapterId uuid.UUID, name string) (hooks.Part, router.Outcome, bool) {
	parts, err := study.Parts(ctx, chapterId)
	if err != nil {
		return hooks.Part{}, router.Failed(action, err), false
	}

	candidates := make([]resolve.Candidate, len(parts))
	for i, p := range parts {
		candidates[i] = resolve.Candidate{Id: p.Id, Name: p.Name}
	}

	match, found := e.resolver.Resolve(name, candidates)
	if !found {
		return hooks.Part{}, router.NotFound(action, name), false
	}

	for _, p := range parts {
		if p.Id == match.Id {
			return p, router.Outcome{}, true
		}
	}
	return hooks.Part{}, router.NotFound(action, name), false
}
