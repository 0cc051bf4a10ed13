package handlers

import (
	"io"

	"ems-portal/internal/adapters/persistence/models"
	"ems-portal/internal/core/services"
	"ems-portal/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// DocumentHandler handles employee document uploads and downloads
type DocumentHandler struct {
	documentService *services.DocumentService
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(documentService *services.DocumentService) *DocumentHandler {
	return &DocumentHandler{documentService: documentService}
}

const documentNotFound = "Document not found"

// Upload stores a file for the logged in employee
// @Summary Upload document
// @Tags Employee
// @Accept multipart/form-data
// @Produce json
// @Param category formData string true "personal, education or skills"
// @Param file formData file true "Document"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /employee/documents [post]
func (h *DocumentHandler) Upload(c *fiber.Ctx) error {
	employeeID, err := currentID(c)
	if err != nil {
		return err
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "file is required")
	}
	if fh.Size > h.documentService.MaxBytes() {
		return response.BadRequest(c, "file is too large")
	}

	f, err := fh.Open()
	if err != nil {
		return response.BadRequest(c, "file could not be read")
	}
	defer f.Close()

	content, err := io.ReadAll(io.LimitReader(f, h.documentService.MaxBytes()+1))
	if err != nil {
		return response.BadRequest(c, "file could not be read")
	}

	doc, err := h.documentService.Upload(c.UserContext(), employeeID, &services.UploadInput{
		Category: c.FormValue("category"),
		FileName: fh.Filename,
		Content:  content,
	})
	if err != nil {
		return fail(c, err, documentNotFound)
	}
	return response.Created(c, "Document uploaded", doc)
}

// ListMine returns the documents of the logged in employee
// @Summary My documents
// @Tags Employee
// @Produce json
// @Success 200 {object} response.Response
// @Router /employee/documents [get]
func (h *DocumentHandler) ListMine(c *fiber.Ctx) error {
	employeeID, err := currentID(c)
	if err != nil {
		return err
	}
	return h.list(c, employeeID)
}

// DownloadMine sends one document of the logged in employee
// @Summary Download my document
// @Tags Employee
// @Produce octet-stream
// @Param id path int true "Document ID"
// @Success 200 {file} file
// @Failure 404 {object} response.Response
// @Router /employee/documents/{id}/download [get]
func (h *DocumentHandler) DownloadMine(c *fiber.Ctx) error {
	employeeID, err := currentID(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	doc, err := h.documentService.GetOwned(c.UserContext(), employeeID, id)
	if err != nil {
		return fail(c, err, documentNotFound)
	}
	return send(c, doc)
}

// DeleteMine removes one document of the logged in employee
// @Summary Delete my document
// @Tags Employee
// @Produce json
// @Param id path int true "Document ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /employee/documents/{id} [delete]
func (h *DocumentHandler) DeleteMine(c *fiber.Ctx) error {
	employeeID, err := currentID(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	if err := h.documentService.DeleteOwned(c.UserContext(), employeeID, id); err != nil {
		return fail(c, err, documentNotFound)
	}
	return response.Success(c, "Document deleted", nil)
}

// ListForEmployee returns the documents of any employee
// @Summary Employee documents
// @Tags Admin Documents
// @Produce json
// @Param id path int true "Employee ID"
// @Success 200 {object} response.Response
// @Router /admin/employees/{id}/documents [get]
func (h *DocumentHandler) ListForEmployee(c *fiber.Ctx) error {
	employeeID, err := paramID(c, "id")
	if err != nil {
		return err
	}
	return h.list(c, employeeID)
}

// Download sends any document
// @Summary Download document
// @Tags Admin Documents
// @Produce octet-stream
// @Param id path int true "Document ID"
// @Success 200 {file} file
// @Failure 404 {object} response.Response
// @Router /admin/documents/{id} [get]
func (h *DocumentHandler) Download(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	doc, err := h.documentService.Get(c.UserContext(), id)
	if err != nil {
		return fail(c, err, documentNotFound)
	}
	return send(c, doc)
}

// Delete removes any document
// @Summary Delete document
// @Tags Admin Documents
// @Produce json
// @Param id path int true "Document ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/documents/{id} [delete]
func (h *DocumentHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	if err := h.documentService.Delete(c.UserContext(), id); err != nil {
		return fail(c, err, documentNotFound)
	}
	return response.Success(c, "Document deleted", nil)
}

func (h *DocumentHandler) list(c *fiber.Ctx, employeeID uint) error {
	docs, err := h.documentService.List(c.UserContext(), employeeID)
	if err != nil {
		return fail(c, err, documentNotFound)
	}
	return response.Success(c, "Documents retrieved successfully", docs)
}

func send(c *fiber.Ctx, doc *models.Document) error {
	c.Set(fiber.HeaderContentType, doc.ContentType)
	c.Set(fiber.HeaderContentDisposition, services.ContentDisposition(doc.FileName))
	return c.Send(doc.Content)
}
