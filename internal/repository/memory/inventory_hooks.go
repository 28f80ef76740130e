package memory

import (
	"context"
	"fmt"
	"time"

	"ai-lifeboard-be/internal/entity"
	"ai-lifeboard-be/pkg/assistant/hooks"

	"github.com/google/uuid"
)

type inventoryHooks struct {
	store  *Store
	userId uuid.UUID
}

var _ hooks.InventoryHooks = &inventoryHooks{}

func (h *inventoryHooks) Items(ctx context.Context) ([]hooks.InventoryItem, error) {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()

	items := getSlice[entity.InventoryItem](h.store, "inventory", h.userId)
	out := make([]hooks.InventoryItem, len(items))
	for i, item := range items {
		out[i] = hooks.InventoryItem{Id: item.Id, Name: item.Name, Quantity: item.Quantity, Location: item.Location}
	}
	return out, nil
}

func (h *inventoryHooks) AddItem(ctx context.Context, item hooks.NewInventoryItem) error {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()

	items := getSlice[entity.InventoryItem](h.store, "inventory", h.userId)
	items = append(items, entity.InventoryItem{
		Id:        uuid.New(),
		UserId:    h.userId,
		Name:      item.Name,
		Quantity:  item.Quantity,
		Location:  item.Location,
		CreatedAt: time.Now(),
	})
	putSlice(h.store, "inventory", h.userId, items)
	return nil
}

func (h *inventoryHooks) UpdateItem(ctx context.Context, id uuid.UUID, patch hooks.InventoryPatch) error {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()

	items := getSlice[entity.InventoryItem](h.store, "inventory", h.userId)
	now := time.Now()
	for i, item := range items {
		if item.Id == id {
			if patch.Quantity != nil {
				items[i].Quantity = *patch.Quantity
			}
			if patch.Location != nil {
				items[i].Location = *patch.Location
			}
			items[i].UpdatedAt = &now
			putSlice(h.store, "inventory", h.userId, items)
			return nil
		}
	}
	return fmt.Errorf("inventory item %s not found", id)
}

func (h *inventoryHooks) DeleteItem(ctx context.Context, id uuid.UUID) error {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()

	items := getSlice[entity.InventoryItem](h.store, "inventory", h.userId)
	for i, item := range items {
		if item.Id == id {
			items = append(items[:i], items[i+1:]...)
			putSlice(h.store, "inventory", h.userId, items)
			return nil
		}
	}
	return fmt.Errorf("inventory item %s not found", id)
}
