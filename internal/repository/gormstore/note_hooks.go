package gormstore

import (
	"context"
	"time"

	"ai-lifeboard-be/internal/entity"
	"ai-lifeboard-be/pkg/assistant/hooks"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type noteHooks struct {
	db     *gorm.DB
	userId uuid.UUID
}

var _ hooks.NoteHooks = &noteHooks{}

func (h *noteHooks) Notes(ctx context.Context) ([]hooks.Note, error) {
	var rows []entity.Note
	if err := h.db.WithContext(ctx).Where("user_id = ?", h.userId).Order("created_at").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]hooks.Note, len(rows))
	for i, n := range rows {
		out[i] = hooks.Note{Id: n.Id, Title: n.Title, Content: n.Content}
	}
	return out, nil
}

func (h *noteHooks) AddNote(ctx context.Context, note hooks.NewNote) error {
	row := entity.Note{
		Id:        uuid.New(),
		UserId:    h.userId,
		Title:     note.Title,
		Content:   note.Content,
		CreatedAt: time.Now(),
	}
	return h.db.WithContext(ctx).Create(&row).Error
}

func (h *noteHooks) DeleteNote(ctx context.Context, id uuid.UUID) error {
	res := h.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, h.userId).
		Delete(&entity.Note{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
