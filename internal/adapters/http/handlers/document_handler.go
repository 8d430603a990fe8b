package handlers

import (
	"errors"

	"instacash-backend/internal/core/domain"
	"instacash-backend/internal/core/services"
	"instacash-backend/internal/pkg/logger"
	"instacash-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// DocumentHandler handles document upload endpoints
type DocumentHandler struct {
	documentService *services.DocumentService
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(documentService *services.DocumentService) *DocumentHandler {
	return &DocumentHandler{documentService: documentService}
}

// Upload handles multipart document upload
// @Summary Upload documents
// @Description Store uploaded files under the upload directory
// @Tags Documents
// @Accept multipart/form-data
// @Produce json
// @Param documents formData file true "Documents"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /upload-documents [post]
func (h *DocumentHandler) Upload(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return response.BadRequest(c, "No file part")
	}

	files := form.File["documents"]
	if len(files) == 0 {
		return response.BadRequest(c, "No file part")
	}

	stored, err := h.documentService.Store(files)
	if err != nil {
		if errors.Is(err, domain.ErrNoDocuments) {
			return response.BadRequest(c, "No file part")
		}
		logger.Get().Error().Err(err).Msg("document upload failed")
		return response.InternalServerError(c, "Failed to store documents")
	}

	return response.OK(c, fiber.Map{
		"message": "Documents uploaded successfully",
		"files":   stored,
	})
}
