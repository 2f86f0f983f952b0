package handlers

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/Anujnegi157/evalease-screens/internal/models"
	"github.com/Anujnegi157/evalease-screens/internal/repositories"
	"github.com/Anujnegi157/evalease-screens/internal/requisition"
	"github.com/Anujnegi157/evalease-screens/internal/services"
)

type UploadHandler struct {
	repo           repositories.RequisitionRepository
	storageService services.StorageService
	pdfParser      services.PDFParserService
	maxFileSize    int64
}

func NewUploadHandler(
	repo repositories.RequisitionRepository,
	storageService services.StorageService,
	pdfParser services.PDFParserService,
	maxFileSize int64,
) *UploadHandler {
	return &UploadHandler{
		repo:           repo,
		storageService: storageService,
		pdfParser:      pdfParser,
		maxFileSize:    maxFileSize,
	}
}

// HandleJobDescriptionUpload handles POST /requisitions/:id/job-description.
// The PDF text replaces the draft's job description and the file is removed.
func (h *UploadHandler) HandleJobDescriptionUpload(c *fiber.Ctx) error {
	id, err := parseDraftID(c)
	if err != nil {
		return err
	}

	if _, err := h.repo.FindByID(id); err != nil {
		return errorResponse(c, err)
	}

	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "file is required",
		})
	}

	if file.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Job description file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	stored, err := h.storageService.SaveUpload(file, "jd")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to save job description file: %v", err),
		})
	}
	defer func() {
		if err := h.storageService.Remove(stored.Filename); err != nil {
			log.Printf("⚠️  Failed to remove %s: %v\n", stored.Filename, err)
		}
	}()

	content, err := h.pdfParser.ExtractText(stored.Path)
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to read job description: %v", err),
		})
	}

	draft, err := h.repo.Apply(id, requisition.Event{
		Type:  requisition.EventFieldChanged,
		Field: requisition.FieldJobDescription,
		Value: content.Text,
	})
	if err != nil {
		return errorResponse(c, err)
	}

	log.Printf("✅ Job description extracted from %s (%d pages)\n", stored.OriginalName, content.PageCount)

	return c.JSON(models.UploadResponse{
		Draft: draft,
		Document: models.JobDescriptionDocument{
			Filename:         stored.Filename,
			OriginalFileName: stored.OriginalName,
			PageCount:        content.PageCount,
			Characters:       len([]rune(content.Text)),
		},
	})
}
