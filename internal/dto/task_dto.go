package dto

import "github.com/google/uuid"

type CreateTaskRequest struct {
	Title        string  `json:"title" validate:"required"`
	Priority     string  `json:"priority,omitempty" validate:"omitempty,oneof=low medium high"`
	DueDate      string  `json:"due_date,omitempty"`
	ContextType  string  `json:"context_type,omitempty"`
	ExpectedCost float64 `json:"expected_cost,omitempty"`
	FinanceType  string  `json:"finance_type,omitempty" validate:"omitempty,oneof=income expense"`
}

type UpdateTaskRequest struct {
	Title    *string `json:"title,omitempty"`
	Priority *string `json:"priority,omitempty" validate:"omitempty,oneof=low medium high"`
	DueDate  *string `json:"due_date,omitempty"`
}

type TaskResponse struct {
	Id           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Priority     string    `json:"priority"`
	DueDate      string    `json:"due_date"`
	ContextType  string    `json:"context_type"`
	ExpectedCost float64   `json:"expected_cost,omitempty"`
	FinanceType  string    `json:"finance_type,omitempty"`
	Completed    bool      `json:"completed"`
}
