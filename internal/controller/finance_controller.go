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

type IFinanceController interface {
	RegisterRoutes(r fiber.Router)
	CreateEntry(ctx *fiber.Ctx) error
	ListBudgets(ctx *fiber.Ctx) error
	SetBudget(ctx *fiber.Ctx) error
	ListSavingsGoals(ctx *fiber.Ctx) error
	CreateSavingsGoal(ctx *fiber.Ctx) error
	AddToSavings(ctx *fiber.Ctx) error
	WithdrawFromSavings(ctx *fiber.Ctx) error
}

type financeController struct {
	store contract.DomainStore
}

func NewFinanceController(store contract.DomainStore) IFinanceController {
	return &financeController{store: store}
}

func (c *financeController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/finance/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("entries", c.CreateEntry)
	h.Get("budgets", c.ListBudgets)
	h.Put("budgets", c.SetBudget)
	h.Get("savings-goals", c.ListSavingsGoals)
	h.Post("savings-goals", c.CreateSavingsGoal)
	h.Put("savings-goals/:id/deposit", c.AddToSavings)
	h.Put("savings-goals/:id/withdraw", c.WithdrawFromSavings)
}

func (c *financeController) hooks(ctx *fiber.Ctx) hooks.FinanceHooks {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	return c.store.Hooks(userId).Finance
}

func (c *financeController) CreateEntry(ctx *fiber.Ctx) error {
	var req dto.CreateEntryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	if req.Date == "" {
		req.Date = time.Now().Format("2006-01-02")
	}

	err := c.hooks(ctx).AddEntry(ctx.Context(), hooks.NewEntry{
		Type:        req.Type,
		Amount:      req.Amount,
		Category:    req.Category,
		Description: req.Description,
		Date:        req.Date,
		IsSpecial:   req.IsSpecial,
	})
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create entry", nil))
}

func (c *financeController) ListBudgets(ctx *fiber.Ctx) error {
	budgets, err := c.hooks(ctx).Budgets(ctx.Context())
	if err != nil {
		return err
	}

	res := make([]dto.BudgetResponse, len(budgets))
	for i, b := range budgets {
		res[i] = dto.BudgetResponse{Id: b.Id, Category: b.Category, Amount: b.Amount}
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list budgets", res))
}

func (c *financeController) SetBudget(ctx *fiber.Ctx) error {
	var req dto.SetBudgetRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.hooks(ctx).SetBudget(ctx.Context(), req.Category, req.Amount); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success set budget", nil))
}

func (c *financeController) ListSavingsGoals(ctx *fiber.Ctx) error {
	goals, err := c.hooks(ctx).SavingsGoals(ctx.Context())
	if err != nil {
		return err
	}

	res := make([]dto.SavingsGoalResponse, len(goals))
	for i, g := range goals {
		res[i] = dto.SavingsGoalResponse{Id: g.Id, Name: g.Name, Target: g.Target, Saved: g.Saved}
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list savings goals", res))
}

func (c *financeController) CreateSavingsGoal(ctx *fiber.Ctx) error {
	var req dto.CreateSavingsGoalRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	err := c.hooks(ctx).AddSavingsGoal(ctx.Context(), hooks.NewSavingsGoal{Name: req.Name, Target: req.Target})
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success create savings goal", nil))
}

func (c *financeController) AddToSavings(ctx *fiber.Ctx) error {
	id, _ := uuid.Parse(ctx.Params("id"))

	var req dto.AdjustSavingsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.hooks(ctx).AddToSavings(ctx.Context(), id, req.Amount); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success add to savings", nil))
}

func (c *financeController) WithdrawFromSavings(ctx *fiber.Ctx) error {
	id, _ := uuid.Parse(ctx.Params("id"))

	var req dto.AdjustSavingsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.hooks(ctx).WithdrawFromSavings(ctx.Context(), id, req.Amount); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success withdraw from savings", nil))
}
