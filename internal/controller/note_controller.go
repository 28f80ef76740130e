package controller

import (
	"ai-lifeboard-be/internal/dto"
	"ai-lifeboard-be/internal/pkg/serverutils"
	"ai-lifeboard-be/internal/repository/contract"
	"ai-lifeboard-be/pkg/assistant/hooks"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type INoteController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type noteController struct {
	store contract.DomainStore
}

func NewNoteController(store contract.DomainStore) INoteController {
	return &noteController{store: store}
}

func (c *noteController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/note/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Delete(":id", c.Delete)
}

func (c *noteController) hooks(ctx *fiber.Ctx) hooks.NoteHooks {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	return c.store.Hooks(userId).Notes
}

func (c *noteController) List(ctx *fiber.Ctx) error {
	notes, err := c.hooks(ctx).Notes(ctx.Context())
	if err != nil {
		return err
	}

	res := make([]dto.NoteResponse, len(notes))
	for i, n := range notes {
		res[i] = dto.NoteResponse{Id: n.Id, Title: n.Title, Content: n.Content}
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list notes", res))
}

func (c *noteController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	err := c.hooks(ctx).AddNote(ctx.Context(), hooks.NewNote{Title: req.Title, Content: req.Content})
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success create note", nil))
}

func (c *noteController) Delete(ctx *fiber.Ctx) error {
	id, _ := uuid.Parse(ctx.Params("id"))

	if err := c.hooks(ctx).DeleteNote(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success delete note", nil))
}
