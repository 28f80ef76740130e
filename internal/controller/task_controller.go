package controller

import (
	"time"

	"ai-lifeboard-be/internal/dto"
	"ai-lifeboard-be/internal/pkg/serverutils"
	"ai-lifeboard-be/internal/repository/contract"
	"ai-lifeboard-be/pkg/assistant/hooks"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ITaskController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Complete(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type taskController struct {
	store contract.DomainStore
}

func NewTaskController(store contract.DomainStore) ITaskController {
	return &taskController{store: store}
}

func (c *taskController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/task/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Put(":id", c.Update)
	h.Put(":id/complete", c.Complete)
	h.Delete(":id", c.Delete)
}

func (c *taskController) hooks(ctx *fiber.Ctx) hooks.TaskHooks {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	return c.store.Hooks(userId).Tasks
}

func (c *taskController) List(ctx *fiber.Ctx) error {
	tasks, err := c.hooks(ctx).Tasks(ctx.Context())
	if err != nil {
		return err
	}

	res := make([]dto.TaskResponse, len(tasks))
	for i, t := range tasks {
		res[i] = dto.TaskResponse{
			Id:           t.Id,
			Title:        t.Title,
			Priority:     t.Priority,
			DueDate:      t.DueDate,
			ContextType:  t.ContextType,
			ExpectedCost: t.ExpectedCost,
			FinanceType:  t.FinanceType,
			Completed:    t.Completed,
		}
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list tasks", res))
}

func (c *taskController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateTaskRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	if req.Priority == "" {
		req.Priority = "medium"
	}
	if req.DueDate == "" {
		req.DueDate = time.Now().Format("2006-01-02")
	}
	if req.ContextType == "" {
		req.ContextType = "general"
	}

	err := c.hooks(ctx).AddTask(ctx.Context(), hooks.NewTask{
		Title:        req.Title,
		Priority:     req.Priority,
		DueDate:      req.DueDate,
		ContextType:  req.ContextType,
		ExpectedCost: req.ExpectedCost,
		FinanceType:  req.FinanceType,
	})
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success create task", nil))
}

func (c *taskController) Update(ctx *fiber.Ctx) error {
	id, _ := uuid.Parse(ctx.Params("id"))

	var req dto.UpdateTaskRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	err := c.hooks(ctx).UpdateTask(ctx.Context(), id, hooks.TaskPatch{
		Title:    req.Title,
		Priority: req.Priority,
		DueDate:  req.DueDate,
	})
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update task", nil))
}

func (c *taskController) Complete(ctx *fiber.Ctx) error {
	id, _ := uuid.Parse(ctx.Params("id"))

	if err := c.hooks(ctx).CompleteTask(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success complete task", nil))
}

func (c *taskController) Delete(ctx *fiber.Ctx) error {
	id, _ := uuid.Parse(ctx.Params("id"))

	if err := c.hooks(ctx).DeleteTask(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success delete task", nil))
}
