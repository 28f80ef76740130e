package dto

import "github.com/google/uuid"

type CreateHabitRequest struct {
	Name string `json:"name" validate:"required"`
}

type HabitResponse struct {
	Id     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Streak int       `json:"streak"`
}
