package entity

import (
	"time"

	"github.com/google/uuid"
)

type StudySubject struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId    uuid.UUID `gorm:"type:uuid;index"`
	Name      string
	CreatedAt time.Time
}

type StudyChapter struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	SubjectId uuid.UUID `gorm:"type:uuid;index"`
	Name      string
	CreatedAt time.Time
}

type StudyPart struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ChapterId uuid.UUID `gorm:"type:uuid;index"`
	Name      string
	Completed bool
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// StudyPreset is a reusable study template. Child presets (ParentId set) are
// internal structure and are never matched by name from user text.
type StudyPreset struct {
	Id        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserId    uuid.UUID  `gorm:"type:uuid;index"`
	Name      string
	ParentId  *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt time.Time
}

// StudyPresetLink attaches a preset to a chapter, scoped to one part or to the
// whole chapter ("all-parts").
type StudyPresetLink struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	PresetId  uuid.UUID `gorm:"type:uuid;index"`
	ChapterId uuid.UUID `gorm:"type:uuid;index"`
	PartScope string    // part id as string, or "all-parts"
	CreatedAt time.Time
}
