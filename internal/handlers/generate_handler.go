package handlers

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/Anujnegi157/evalease-screens/internal/models"
	"github.com/Anujnegi157/evalease-screens/internal/repositories"
	"github.com/Anujnegi157/evalease-screens/internal/requisition"
	"github.com/Anujnegi157/evalease-screens/internal/services"
)

type GenerateHandler struct {
	repo      repositories.RequisitionRepository
	generator services.GeneratorService
	validate  *validator.Validate
}

func NewGenerateHandler(
	repo repositories.RequisitionRepository,
	generator services.GeneratorService,
	validate *validator.Validate,
) *GenerateHandler {
	return &GenerateHandler{
		repo:      repo,
		generator: generator,
		validate:  validate,
	}
}

// HandleGenerate handles POST /generate. Nothing is stored.
func (h *GenerateHandler) HandleGenerate(c *fiber.Ctx) error {
	var req models.GenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if err := services.ValidateStruct(h.validate, req); err != nil {
		return errorResponse(c, err)
	}

	result, err := h.generator.Generate(c.UserContext(), req.JobDescription)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(models.GenerateResponse{
		Content: result.Content,
		Source:  result.Source,
		Notice:  result.Notice,
	})
}

// HandleGenerateForDraft handles POST /requisitions/:id/generate. The
// generated skills and questions are merged into the draft.
func (h *GenerateHandler) HandleGenerateForDraft(c *fiber.Ctx) error {
	id, err := parseDraftID(c)
	if err != nil {
		return err
	}

	draft, err := h.repo.BeginOperation(id, models.OperationGenerate)
	if err != nil {
		return errorResponse(c, err)
	}
	defer h.repo.EndOperation(id)

	result, err := h.generator.Generate(c.UserContext(), draft.Requisition.JobDescription)
	if err != nil {
		return errorResponse(c, err)
	}

	content := result.Content
	updated, err := h.repo.Complete(id, requisition.Event{
		Type:    requisition.EventGenerated,
		Content: &content,
	})
	if err != nil {
		if errors.Is(err, repositories.ErrDraftNotFound) {
			log.Printf("⚠️  Requisition %s was deleted during generation, dropping result\n", id)
		}
		return errorResponse(c, err)
	}

	return c.JSON(models.DraftResponse{
		Draft:  updated,
		Notice: result.Notice,
	})
}
