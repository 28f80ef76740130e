package gormstore

import (
	"context"
	"time"

	"ai-lifeboard-be/internal/entity"
	"ai-lifeboard-be/pkg/assistant/hooks"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Store is the postgres-backed capability-hook implementation.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// AutoMigrate creates/updates the domain tables.
func (s *Store) AutoMigrate() error {
	return s.db.AutoMigrate(
		&entity.FinanceEntry{},
		&entity.Budget{},
		&entity.SavingsGoal{},
		&entity.Task{},
		&entity.Note{},
		&entity.Habit{},
		&entity.StudySubject{},
		&entity.StudyChapter{},
		&entity.StudyPart{},
		&entity.StudyPreset{},
		&entity.StudyPresetLink{},
		&entity.InventoryItem{},
		&entity.ConversationMessage{},
	)
}

// Hooks returns a fresh capability bundle bound to one user.
func (s *Store) Hooks(userId uuid.UUID) hooks.Capabilities {
	return hooks.Capabilities{
		Finance:   &financeHooks{db: s.db, userId: userId},
		Tasks:     &taskHooks{db: s.db, userId: userId},
		Notes:     &noteHooks{db: s.db, userId: userId},
		Habits:    &habitHooks{db: s.db, userId: userId},
		Study:     &studyHooks{db: s.db, userId: userId},
		Inventory: &inventoryHooks{db: s.db, userId: userId},
	}
}

// --- Conversation store ---

func (s *Store) Append(ctx context.Context, userId uuid.UUID, role, content string) error {
	msg := entity.ConversationMessage{
		Id:        uuid.New(),
		UserId:    userId,
		Role:      role,
		Content:   content,
		CreatedAt: time.Now(),
	}
	return s.db.WithContext(ctx).Create(&msg).Error
}

func (s *Store) Recent(ctx context.Context, userId uuid.UUID, limit int) ([]entity.ConversationMessage, error) {
	var msgs []entity.ConversationMessage
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userId).
		Order("created_at DESC").
		Limit(limit).
		Find(&msgs).Error
	if err != nil {
		return nil, err
	}

	// Reverse to oldest-first for prompt assembly
	for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
		msgs[i], msgs[j] = msgs[j], msgs[i]
	}
	return msgs, nil
}
