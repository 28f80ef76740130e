package controller

import (
	"ai-lifeboard-be/internal/dto"
	"ai-lifeboard-be/internal/pkg/serverutils"
	"ai-lifeboard-be/internal/repository/contract"
	"ai-lifeboard-be/pkg/assistant/hooks"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IHabitController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Complete(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type habitController struct {
	store contract.DomainStore
}

func NewHabitController(store contract.DomainStore) IHabitController {
	return &habitController{store: store}
}

func (c *habitController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/habit/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Put(":id/complete", c.Complete)
	h.Delete(":id", c.Delete)
}

func (c *habitController) hooks(ctx *fiber.Ctx) hooks.HabitHooks {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	return c.store.Hooks(userId).Habits
}

func (c *habitController) List(ctx *fiber.Ctx) error {
	habits, err := c.hooks(ctx).Habits(ctx.Context())
	if err != nil {
		return err
	}

	res := make([]dto.HabitResponse, len(habits))
	for i, h := range habits {
		res[i] = dto.HabitResponse{Id: h.Id, Name: h.Name, Streak: h.Streak}
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list habits", res))
}

func (c *habitController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateHabitRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.hooks(ctx).AddHabit(ctx.Context(), req.Name); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success create habit", nil))
}

func (c *habitController) Complete(ctx *fiber.Ctx) error {
	id, _ := uuid.Parse(ctx.Params("id"))

	if err := c.hooks(ctx).CompleteHabit(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success complete habit", nil))
}

func (c *habitController) Delete(ctx *fiber.Ctx) error {
	id, _ := uuid.Parse(ctx.Params("id"))

	if err := c.hooks(ctx).DeleteHabit(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success delete habit", nil))
}
