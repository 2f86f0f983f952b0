package handlers

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Anujnegi157/evalease-screens/internal/models"
	"github.com/Anujnegi157/evalease-screens/internal/repositories"
	"github.com/Anujnegi157/evalease-screens/internal/requisition"
	"github.com/Anujnegi157/evalease-screens/internal/services"
)

type RequisitionHandler struct {
	repo     repositories.RequisitionRepository
	validate *validator.Validate
}

func NewRequisitionHandler(repo repositories.RequisitionRepository, validate *validator.Validate) *RequisitionHandler {
	return &RequisitionHandler{
		repo:     repo,
		validate: validate,
	}
}

// HandleCreate handles POST /requisitions. The body is optional.
func (h *RequisitionHandler) HandleCreate(c *fiber.Ctx) error {
	var fields models.RequisitionFields
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&fields); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid request payload",
			})
		}
	}

	var initial models.Requisition
	if fields.CandidateName != nil {
		initial.CandidateName = *fields.CandidateName
	}
	if fields.CandidatePhone != nil {
		initial.CandidatePhone = *fields.CandidatePhone
	}
	if fields.JobDescription != nil {
		initial.JobDescription = *fields.JobDescription
	}
	if fields.FirstMessage != nil {
		initial.FirstMessage = *fields.FirstMessage
	}

	draft, err := h.repo.Create(initial)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.DraftResponse{Draft: draft})
}

// HandleGet handles GET /requisitions/:id
func (h *RequisitionHandler) HandleGet(c *fiber.Ctx) error {
	id, err := parseDraftID(c)
	if err != nil {
		return err
	}

	draft, err := h.repo.FindByID(id)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(models.DraftResponse{Draft: draft})
}

// HandleUpdateFields handles PATCH /requisitions/:id
func (h *RequisitionHandler) HandleUpdateFields(c *fiber.Ctx) error {
	id, err := parseDraftID(c)
	if err != nil {
		return err
	}

	var fields models.RequisitionFields
	if err := c.BodyParser(&fields); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	changes := []struct {
		field requisition.Field
		value *string
	}{
		{requisition.FieldCandidateName, fields.CandidateName},
		{requisition.FieldCandidatePhone, fields.CandidatePhone},
		{requisition.FieldJobDescription, fields.JobDescription},
		{requisition.FieldFirstMessage, fields.FirstMessage},
	}

	draft, err := h.repo.FindByID(id)
	if err != nil {
		return errorResponse(c, err)
	}

	for _, ch := range changes {
		if ch.value == nil {
			continue
		}
		draft, err = h.repo.Apply(id, requisition.Event{
			Type:  requisition.EventFieldChanged,
			Field: ch.field,
			Value: *ch.value,
		})
		if err != nil {
			return errorResponse(c, err)
		}
	}

	return c.JSON(models.DraftResponse{Draft: draft})
}

// HandleDelete handles DELETE /requisitions/:id
func (h *RequisitionHandler) HandleDelete(c *fiber.Ctx) error {
	id, err := parseDraftID(c)
	if err != nil {
		return err
	}

	if err := h.repo.Delete(id); err != nil {
		return errorResponse(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// HandleAddSkill handles POST /requisitions/:id/skills/:list
func (h *RequisitionHandler) HandleAddSkill(c *fiber.Ctx) error {
	id, list, err := h.skillTarget(c)
	if err != nil {
		return err
	}

	var req models.SkillRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}
	if err := services.ValidateStruct(h.validate, req); err != nil {
		return errorResponse(c, err)
	}

	return h.apply(c, id, requisition.Event{
		Type:  requisition.EventSkillAdded,
		List:  list,
		Value: req.Skill,
	})
}

// HandleRemoveSkill handles DELETE /requisitions/:id/skills/:list?value=
func (h *RequisitionHandler) HandleRemoveSkill(c *fiber.Ctx) error {
	id, list, err := h.skillTarget(c)
	if err != nil {
		return err
	}

	value := c.Query("value")
	if value == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "value query parameter is required",
		})
	}

	return h.apply(c, id, requisition.Event{
		Type:  requisition.EventSkillRemoved,
		List:  list,
		Value: value,
	})
}

// HandleAddQuestion handles POST /requisitions/:id/questions
func (h *RequisitionHandler) HandleAddQuestion(c *fiber.Ctx) error {
	id, err := parseDraftID(c)
	if err != nil {
		return err
	}

	var req models.QuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}
	if err := services.ValidateStruct(h.validate, req); err != nil {
		return errorResponse(c, err)
	}

	return h.apply(c, id, requisition.Event{
		Type:  requisition.EventQuestionAdded,
		Value: req.Text,
	})
}

// HandleUpdateQuestion handles PUT /requisitions/:id/questions/:index
func (h *RequisitionHandler) HandleUpdateQuestion(c *fiber.Ctx) error {
	id, err := parseDraftID(c)
	if err != nil {
		return err
	}

	index, err := c.ParamsInt("index")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid question index",
		})
	}

	var req models.QuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	return h.apply(c, id, requisition.Event{
		Type:  requisition.EventQuestionUpdated,
		Index: index,
		Value: req.Text,
	})
}

// HandleRemoveQuestion handles DELETE /requisitions/:id/questions?value=
func (h *RequisitionHandler) HandleRemoveQuestion(c *fiber.Ctx) error {
	id, err := parseDraftID(c)
	if err != nil {
		return err
	}

	value := c.Query("value")
	if strings.TrimSpace(value) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "value query parameter is required",
		})
	}

	return h.apply(c, id, requisition.Event{
		Type:  requisition.EventQuestionRemoved,
		Value: value,
	})
}

func (h *RequisitionHandler) skillTarget(c *fiber.Ctx) (uuid.UUID, requisition.SkillList, error) {
	id, err := parseDraftID(c)
	if err != nil {
		return uuid.Nil, "", err
	}

	list, err := requisition.ParseSkillList(c.Params("list"))
	if err != nil {
		return uuid.Nil, "", fiber.NewError(fiber.StatusBadRequest, "skill list must be mandatory or good-to-have")
	}

	return id, list, nil
}

func (h *RequisitionHandler) apply(c *fiber.Ctx, id uuid.UUID, ev requisition.Event) error {
	draft, err := h.repo.Apply(id, ev)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(models.DraftResponse{Draft: draft})
}
