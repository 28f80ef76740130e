package dto

import "github.com/google/uuid"

type CreateSubjectRequest struct {
	Name string `json:"name" validate:"required"`
}

type CreateChapterRequest struct {
	SubjectId uuid.UUID `json:"subject_id" validate:"required"`
	Name      string    `json:"name" validate:"required"`
}

type CreatePartRequest struct {
	ChapterId uuid.UUID `json:"chapter_id" validate:"required"`
	Name      string    `json:"name" validate:"required"`
}

type CreatePresetRequest struct {
	Name string `json:"name" validate:"required"`
}

type ApplyPresetRequest struct {
	ChapterId uuid.UUID `json:"chapter_id" validate:"required"`
	// PartScope is the target part id, or "all-parts" for the whole chapter.
	PartScope string `json:"part_scope" validate:"required"`
}

type SubjectResponse struct {
	Id   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type ChapterResponse struct {
	Id        uuid.UUID `json:"id"`
	SubjectId uuid.UUID `json:"subject_id"`
	Name      string    `json:"name"`
}

type PartResponse struct {
	Id        uuid.UUID `json:"id"`
	ChapterId uuid.UUID `json:"chapter_id"`
	Name      string    `json:"name"`
	Completed bool      `json:"completed"`
}

type PresetResponse struct {
	Id       uuid.UUID  `json:"id"`
	Name     string     `json:"name"`
	ParentId *uuid.UUID `json:"parent_id,omitempty"`
}
