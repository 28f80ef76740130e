package controller

import (
	"ai-lifeboard-be/internal/dto"
	"ai-lifeboard-be/internal/pkg/serverutils"
	"ai-lifeboard-be/internal/repository/contract"
	"ai-lifeboard-be/pkg/assistant/hooks"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IStudyController interface {
	RegisterRoutes(r fiber.Router)
	ListSubjects(ctx *fiber.Ctx) error
	CreateSubject(ctx *fiber.Ctx) error
	ListChapters(ctx *fiber.Ctx) error
	CreateChapter(ctx *fiber.Ctx) error
	ListParts(ctx *fiber.Ctx) error
	CreatePart(ctx *fiber.Ctx) error
	CompletePart(ctx *fiber.Ctx) error
	ListPresets(ctx *fiber.Ctx) error
	CreatePreset(ctx *fiber.Ctx) error
	ApplyPreset(ctx *fiber.Ctx) error
}

type studyController struct {
	store contract.DomainStore
}

func NewStudyController(store contract.DomainStore) IStudyController {
	return &studyController{store: store}
}

func (c *studyController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/study/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("subjects", c.ListSubjects)
	h.Post("subjects", c.CreateSubject)
	h.Get("subjects/:id/chapters", c.ListChapters)
	h.Post("chapters", c.CreateChapter)
	h.Get("chapters/:id/parts", c.ListParts)
	h.Post("parts", c.CreatePart)
	h.Put("parts/:id/complete", c.CompletePart)
	h.Get("presets", c.ListPresets)
	h.Post("presets", c.CreatePreset)
	h.Post("presets/:id/apply", c.ApplyPreset)
}

func (c *studyController) hooks(ctx *fiber.Ctx) hooks.StudyHooks {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	return c.store.Hooks(userId).Study
}

func (c *studyController) ListSubjects(ctx *fiber.Ctx) error {
	subjects, err := c.hooks(ctx).Subjects(ctx.Context())
	if err != nil {
		return err
	}

	res := make([]dto.SubjectResponse, len(subjects))
	for i, s := range subjects {
		res[i] = dto.SubjectResponse{Id: s.Id, Name: s.Name}
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list subjects", res))
}

func (c *studyController) CreateSubject(ctx *fiber.Ctx) error {
	var req dto.CreateSubjectRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.hooks(ctx).AddSubject(ctx.Context(), req.Name); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success create subject", nil))
}

func (c *studyController) ListChapters(ctx *fiber.Ctx) error {
	subjectId, _ := uuid.Parse(ctx.Params("id"))

	chapters, err := c.hooks(ctx).Chapters(ctx.Context(), subjectId)
	if err != nil {
		return err
	}

	res := make([]dto.ChapterResponse, len(chapters))
	for i, ch := range chapters {
		res[i] = dto.ChapterResponse{Id: ch.Id, SubjectId: ch.SubjectId, Name: ch.Name}
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list chapters", res))
}

func (c *studyController) CreateChapter(ctx *fiber.Ctx) error {
	var req dto.CreateChapterRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.hooks(ctx).AddChapter(ctx.Context(), req.SubjectId, req.Name); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success create chapter", nil))
}

func (c *studyController) ListParts(ctx *fiber.Ctx) error {
	chapterId, _ := uuid.Parse(ctx.Params("id"))

	parts, err := c.hooks(ctx).Parts(ctx.Context(), chapterId)
	if err != nil {
		return err
	}

	res := make([]dto.PartResponse, len(parts))
	for i, p := range parts {
		res[i] = dto.PartResponse{Id: p.Id, ChapterId: p.ChapterId, Name: p.Name, Completed: p.Completed}
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list parts", res))
}

func (c *studyController) CreatePart(ctx *fiber.Ctx) error {
	var req dto.CreatePartRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.hooks(ctx).AddPart(ctx.Context(), req.ChapterId, req.Name); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success create part", nil))
}

func (c *studyController) CompletePart(ctx *fiber.Ctx) error {
	id, _ := uuid.Parse(ctx.Params("id"))

	if err := c.hooks(ctx).CompletePart(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success complete part", nil))
}

func (c *studyController) ListPresets(ctx *fiber.Ctx) error {
	presets, err := c.hooks(ctx).Presets(ctx.Context())
	if err != nil {
		return err
	}

	res := make([]dto.PresetResponse, len(presets))
	for i, p := range presets {
		res[i] = dto.PresetResponse{Id: p.Id, Name: p.Name, ParentId: p.ParentId}
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list presets", res))
}

func (c *studyController) CreatePreset(ctx *fiber.Ctx) error {
	var req dto.CreatePresetRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.hooks(ctx).AddPreset(ctx.Context(), req.Name); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success create preset", nil))
}

func (c *studyController) ApplyPreset(ctx *fiber.Ctx) error {
	presetId, _ := uuid.Parse(ctx.Params("id"))

	var req dto.ApplyPresetRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.hooks(ctx).ApplyPreset(ctx.Context(), presetId, req.ChapterId, req.PartScope); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success apply preset", nil))
}
