package dto

import "github.com/google/uuid"

type CreateInventoryItemRequest struct {
	Name     string  `json:"name" validate:"required"`
	Quantity float64 `json:"quantity,omitempty"`
	Location string  `json:"location,omitempty"`
}

type UpdateInventoryItemRequest struct {
	Quantity *float64 `json:"quantity,omitempty"`
	Location *string  `json:"location,omitempty"`
}

type InventoryItemResponse struct {
	Id       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Quantity float64   `json:"quantity"`
	Location string    `json:"location"`
}
