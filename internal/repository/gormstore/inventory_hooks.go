package gormstore

import (
	"context"
	"time"

	"ai-lifeboard-be/internal/entity"
	"ai-lifeboard-be/pkg/assistant/hooks"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type inventoryHooks struct {
	db     *gorm.DB
	userId uuid.UUID
}

var _ hooks.InventoryHooks = &inventoryHooks{}

func (h *inventoryHooks) Items(ctx context.Context) ([]hooks.InventoryItem, error) {
	var rows []entity.InventoryItem
	if err := h.db.WithContext(ctx).Where("user_id = ?", h.userId).Order("created_at").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]hooks.InventoryItem, len(rows))
	for i, item := range rows {
		out[i] = hooks.InventoryItem{Id: item.Id, Name: item.Name, Quantity: item.Quantity, Location: item.Location}
	}
	return out, nil
}

func (h *inventoryHooks) AddItem(ctx context.Context, item hooks.NewInventoryItem) error {
	row := entity.InventoryItem{
		Id:        uuid.New(),
		UserId:    h.userId,
		Name:      item.Name,
		Quantity:  item.Quantity,
		Location:  item.Location,
		CreatedAt: time.Now(),
	}
	return h.db.WithContext(ctx).Create(&row).Error
}

func (h *inventoryHooks) UpdateItem(ctx context.Context, id uuid.UUID, patch hooks.InventoryPatch) error {
	updates := map[string]interface{}{"updated_at": time.Now()}
	if patch.Quantity != nil {
		updates["quantity"] = *patch.Quantity
	}
	if patch.Location != nil {
		updates["location"] = *patch.Location
	}

	res := h.db.WithContext(ctx).Model(&entity.InventoryItem{}).
		Where("id = ? AND user_id = ?", id, h.userId).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (h *inventoryHooks) DeleteItem(ctx context.Context, id uuid.UUID) error {
	res := h.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, h.userId).
		Delete(&entity.InventoryItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
