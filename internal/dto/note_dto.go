package dto

import "github.com/google/uuid"

type CreateNoteRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content,omitempty"`
}

type NoteResponse struct {
	Id      uuid.UUID `json:"id"`
	Title   string    `json:"title"`
	Content string    `json:"content"`
}
