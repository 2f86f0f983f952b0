package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Anujnegi157/evalease-screens/internal/models"
	"github.com/Anujnegi157/evalease-screens/internal/services"
)

type CallHandler struct {
	callLog   services.CallLogService
	analytics services.AnalyticsService
}

func NewCallHandler(callLog services.CallLogService, analytics services.AnalyticsService) *CallHandler {
	return &CallHandler{
		callLog:   callLog,
		analytics: analytics,
	}
}

// HandleListCalls handles GET /calls?status=&q=
func (h *CallHandler) HandleListCalls(c *fiber.Ctx) error {
	status := strings.ToLower(strings.TrimSpace(c.Query("status")))
	if status != "" && status != "all" && !models.CallStatus(status).Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "status must be all, completed, scheduled or missed",
		})
	}

	records, err := h.callLog.FetchAll(c.UserContext())
	if err != nil {
		return c.Status(errorStatus(err)).JSON(fiber.Map{
			"state": models.CallLogError,
			"error": errorMessage(err),
			"calls": []models.CallRecord{},
			"total": 0,
		})
	}

	calls := services.FilterCalls(records, status, c.Query("q"))

	state := models.CallLogReady
	if len(calls) == 0 {
		state = models.CallLogEmpty
	}

	return c.JSON(models.CallListResponse{
		State: state,
		Calls: calls,
		Total: len(records),
	})
}

// HandleGetCall handles GET /calls/:id
func (h *CallHandler) HandleGetCall(c *fiber.Ctx) error {
	records, err := h.callLog.FetchAll(c.UserContext())
	if err != nil {
		return errorResponse(c, err)
	}

	call, ok := services.FindCall(records, c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Call not found",
		})
	}

	return c.JSON(call)
}

// HandleAnalytics handles GET /analytics
func (h *CallHandler) HandleAnalytics(c *fiber.Ctx) error {
	records, err := h.callLog.FetchAll(c.UserContext())
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(h.analytics.Compute(records))
}
