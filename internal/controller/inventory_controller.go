package controller

import (
	"ai-lifeboard-be/internal/dto"
	"ai-lifeboard-be/internal/pkg/serverutils"
	"ai-lifeboard-be/internal/repository/contract"
	"ai-lifeboard-be/pkg/assistant/hooks"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IInventoryController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type inventoryController struct {
	store contract.DomainStore
}

func NewInventoryController(store contract.DomainStore) IInventoryController {
	return &inventoryController{store: store}
}

func (c *inventoryController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/inventory/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
}

func (c *inventoryController) hooks(ctx *fiber.Ctx) hooks.InventoryHooks {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	return c.store.Hooks(userId).Inventory
}

func (c *inventoryController) List(ctx *fiber.Ctx) error {
	items, err := c.hooks(ctx).Items(ctx.Context())
	if err != nil {
		return err
	}

	res := make([]dto.InventoryItemResponse, len(items))
	for i, item := range items {
		res[i] = dto.InventoryItemResponse{Id: item.Id, Name: item.Name, Quantity: item.Quantity, Location: item.Location}
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list items", res))
}

func (c *inventoryController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateInventoryItemRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	if req.Location == "" {
		req.Location = "general"
	}

	err := c.hooks(ctx).AddItem(ctx.Context(), hooks.NewInventoryItem{
		Name:     req.Name,
		Quantity: req.Quantity,
		Location: req.Location,
	})
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success create item", nil))
}

func (c *inventoryController) Update(ctx *fiber.Ctx) error {
	id, _ := uuid.Parse(ctx.Params("id"))

	var req dto.UpdateInventoryItemRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	err := c.hooks(ctx).UpdateItem(ctx.Context(), id, hooks.InventoryPatch{
		Quantity: req.Quantity,
		Location: req.Location,
	})
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update item", nil))
}

func (c *inventoryController) Delete(ctx *fiber.Ctx) error {
	id, _ := uuid.Parse(ctx.Params("id"))

	if err := c.hooks(ctx).DeleteItem(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success delete item", nil))
}
