package dto

import "github.com/google/uuid"

type CreateEntryRequest struct {
	Type        string  `json:"type" validate:"required,oneof=income expense"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Category    string  `json:"category" validate:"required"`
	Description string  `json:"description,omitempty"`
	Date        string  `json:"date,omitempty"`
	IsSpecial   bool    `json:"is_special,omitempty"`
}

type SetBudgetRequest struct {
	Category string  `json:"category" validate:"required"`
	Amount   float64 `json:"amount" validate:"required,gt=0"`
}

type CreateSavingsGoalRequest struct {
	Name   string  `json:"name" validate:"required"`
	Target float64 `json:"target" validate:"required,gt=0"`
}

type AdjustSavingsRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

type BudgetResponse struct {
	Id       uuid.UUID `json:"id"`
	Category string    `json:"category"`
	Amount   float64   `json:"amount"`
}

type SavingsGoalResponse struct {
	Id     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Target float64   `json:"target"`
	Saved  float64   `json:"saved"`
}
