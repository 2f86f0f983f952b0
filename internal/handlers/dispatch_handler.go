package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/Anujnegi157/evalease-screens/internal/models"
	"github.com/Anujnegi157/evalease-screens/internal/repositories"
	"github.com/Anujnegi157/evalease-screens/internal/requisition"
	"github.com/Anujnegi157/evalease-screens/internal/services"
)

type DispatchHandler struct {
	repo       repositories.RequisitionRepository
	dispatcher services.DispatchService
}

func NewDispatchHandler(repo repositories.RequisitionRepository, dispatcher services.DispatchService) *DispatchHandler {
	return &DispatchHandler{
		repo:       repo,
		dispatcher: dispatcher,
	}
}

// HandleDispatch handles POST /requisitions/:id/dispatch. On success the
// draft is reset for the next candidate; on failure it is left as it was.
func (h *DispatchHandler) HandleDispatch(c *fiber.Ctx) error {
	id, err := parseDraftID(c)
	if err != nil {
		return err
	}

	draft, err := h.repo.BeginOperation(id, models.OperationDispatch)
	if err != nil {
		return errorResponse(c, err)
	}
	defer h.repo.EndOperation(id)

	result, err := h.dispatcher.Dispatch(c.UserContext(), draft.Requisition)
	if err != nil {
		return errorResponse(c, err)
	}

	reset, err := h.repo.Complete(id, requisition.Event{Type: requisition.EventReset})
	if err != nil && !errors.Is(err, repositories.ErrDraftNotFound) {
		return errorResponse(c, err)
	}
	if err != nil {
		log.Printf("⚠️  Requisition %s was deleted during dispatch\n", id)
	}

	return c.Status(fiber.StatusAccepted).JSON(models.DispatchResponse{
		CallID:  result.CallID,
		Status:  result.Status,
		Message: "Call scheduled successfully",
		Draft:   reset,
	})
}
