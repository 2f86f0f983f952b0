package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Requisition *RequisitionHandler
	Generate    *GenerateHandler
	Dispatch    *DispatchHandler
	Upload      *UploadHandler
	Call        *CallHandler
}

// RegisterRoutes mounts every endpoint on api, normally the /api/v1 group.
func RegisterRoutes(api fiber.Router, h Handlers) {
	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	api.Post("/generate", h.Generate.HandleGenerate)

	reqs := api.Group("/requisitions")
	reqs.Post("/", h.Requisition.HandleCreate)
	reqs.Get("/:id", h.Requisition.HandleGet)
	reqs.Patch("/:id", h.Requisition.HandleUpdateFields)
	reqs.Delete("/:id", h.Requisition.HandleDelete)
	reqs.Post("/:id/skills/:list", h.Requisition.HandleAddSkill)
	reqs.Delete("/:id/skills/:list", h.Requisition.HandleRemoveSkill)
	reqs.Post("/:id/questions", h.Requisition.HandleAddQuestion)
	reqs.Put("/:id/questions/:index", h.Requisition.HandleUpdateQuestion)
	reqs.Delete("/:id/questions", h.Requisition.HandleRemoveQuestion)
	reqs.Post("/:id/generate", h.Generate.HandleGenerateForDraft)
	reqs.Post("/:id/job-description", h.Upload.HandleJobDescriptionUpload)
	reqs.Post("/:id/dispatch", h.Dispatch.HandleDispatch)

	api.Get("/calls", h.Call.HandleListCalls)
	api.Get("/calls/:id", h.Call.HandleGetCall)
	api.Get("/analytics", h.Call.HandleAnalytics)
}
