package gormstore

import (
	"context"
	"time"

	"ai-lifeboard-be/internal/entity"
	"ai-lifeboard-be/pkg/assistant/hooks"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type studyHooks struct {
	db     *gorm.DB
	userId uuid.UUID
}

var _ hooks.StudyHooks = &studyHooks{}

func (h *studyHooks) Subjects(ctx context.Context) ([]hooks.Subject, error) {
	var rows []entity.StudySubject
	if err := h.db.WithContext(ctx).Where("user_id = ?", h.userId).Order("created_at").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]hooks.Subject, len(rows))
	for i, s := range rows {
		out[i] = hooks.Subject{Id: s.Id, Name: s.Name}
	}
	return out, nil
}

func (h *studyHooks) Chapters(ctx context.Context, subjectId uuid.UUID) ([]hooks.Chapter, error) {
	var rows []entity.StudyChapter
	if err := h.db.WithContext(ctx).Where("subject_id = ?", subjectId).Order("created_at").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]hooks.Chapter, len(rows))
	for i, c := range rows {
		out[i] = hooks.Chapter{Id: c.Id, SubjectId: c.SubjectId, Name: c.Name}
	}
	return out, nil
}

func (h *studyHooks) Parts(ctx context.Context, chapterId uuid.UUID) ([]hooks.Part, error) {
	var rows []entity.StudyPart
	if err := h.db.WithContext(ctx).Where("chapter_id = ?", chapterId).Order("created_at").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]hooks.Part, len(rows))
	for i, p := range rows {
		out[i] = hooks.Part{Id: p.Id, ChapterId: p.ChapterId, Name: p.Name, Completed: p.Completed}
	}
	return out, nil
}

func (h *studyHooks) Presets(ctx context.Context) ([]hooks.Preset, error) {
	var rows []entity.StudyPreset
	if err := h.db.WithContext(ctx).Where("user_id = ?", h.userId).Order("created_at").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]hooks.Preset, len(rows))
	for i, p := range rows {
		out[i] = hooks.Preset{Id: p.Id, Name: p.Name, ParentId: p.ParentId}
	}
	return out, nil
}

func (h *studyHooks) AddSubject(ctx context.Context, name string) error {
	row := entity.StudySubject{
		Id:        uuid.New(),
		UserId:    h.userId,
		Name:      name,
		CreatedAt: time.Now(),
	}
	return h.db.WithContext(ctx).Create(&row).Error
}

func (h *studyHooks) AddChapter(ctx context.Context, subjectId uuid.UUID, name string) error {
	row := entity.StudyChapter{
		Id:        uuid.New(),
		SubjectId: subjectId,
		Name:      name,
		CreatedAt: time.Now(),
	}
	return h.db.WithContext(ctx).Create(&row).Error
}

func (h *studyHooks) AddPart(ctx context.Context, chapterId uuid.UUID, name string) error {
	row := entity.StudyPart{
		Id:        uuid.New(),
		ChapterId: chapterId,
		Name:      name,
		CreatedAt: time.Now(),
	}
	return h.db.WithContext(ctx).Create(&row).Error
}

func (h *studyHooks) CompletePart(ctx context.Context, id uuid.UUID) error {
	res := h.db.WithContext(ctx).Model(&entity.StudyPart{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"completed": true, "updated_at": time.Now()})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (h *studyHooks) AddPreset(ctx context.Context, name string) error {
	row := entity.StudyPreset{
		Id:        uuid.New(),
		UserId:    h.userId,
		Name:      name,
		CreatedAt: time.Now(),
	}
	return h.db.WithContext(ctx).Create(&row).Error
}

func (h *studyHooks) ApplyPreset(ctx context.Context, presetId, chapterId uuid.UUID, partScope string) error {
	row := entity.StudyPresetLink{
		Id:        uuid.New(),
		PresetId:  presetId,
		ChapterId: chapterId,
		PartScope: partScope,
		CreatedAt: time.Now(),
	}
	return h.db.WithContext(ctx).Create(&row).Error
}
