package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Anujnegi157/evalease-screens/internal/repositories"
	"github.com/Anujnegi157/evalease-screens/internal/requisition"
	"github.com/Anujnegi157/evalease-screens/internal/services"
)

// errorStatus maps service and repository errors to HTTP status codes.
func errorStatus(err error) int {
	var (
		verr *services.ValidationError
		derr *services.DispatchError
		ferr *services.FetchError
		fe   *fiber.Error
	)

	switch {
	case errors.As(err, &verr), errors.Is(err, requisition.ErrQuestionIndexOutOfRange):
		return fiber.StatusBadRequest
	case errors.Is(err, repositories.ErrDraftNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, repositories.ErrOperationInProgress):
		return fiber.StatusConflict
	case errors.As(err, &derr), errors.As(err, &ferr):
		return fiber.StatusBadGateway
	case errors.As(err, &fe):
		return fe.Code
	default:
		return fiber.StatusInternalServerError
	}
}

// errorMessage is the user-facing text for err. Vendor errors carry their
// own message so the raw transport error never reaches the client.
func errorMessage(err error) string {
	var (
		verr *services.ValidationError
		derr *services.DispatchError
		ferr *services.FetchError
	)

	switch {
	case errors.As(err, &verr):
		return verr.Message
	case errors.As(err, &derr):
		return derr.Message
	case errors.As(err, &ferr):
		return ferr.Message
	default:
		return err.Error()
	}
}

func errorResponse(c *fiber.Ctx, err error) error {
	body := fiber.Map{
		"error": errorMessage(err),
	}

	var verr *services.ValidationError
	if errors.As(err, &verr) && len(verr.Fields) > 0 {
		body["fields"] = verr.Fields
	}

	return c.Status(errorStatus(err)).JSON(body)
}

func parseDraftID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid requisition ID format")
	}
	return id, nil
}

// ErrorHandler is the fiber fallback for errors returned by handlers.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := errorStatus(err)

	return c.Status(code).JSON(fiber.Map{
		"error": errorMessage(err),
		"code":  code,
	})
}
