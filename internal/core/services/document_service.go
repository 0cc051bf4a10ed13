package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"ems-portal/internal/adapters/persistence/models"
	"ems-portal/internal/adapters/persistence/repositories"
	"ems-portal/internal/config"
	"ems-portal/internal/core/domain"
	"ems-portal/internal/pkg/logger"

	"github.com/gabriel-vasile/mimetype"
)

// AllowedDocumentTypes lists the content types accepted for upload
var AllowedDocumentTypes = []string{
	"application/pdf",
	"image/png",
	"image/jpeg",
	"text/plain",
	"application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// DocumentService handles employee document uploads
type DocumentService struct {
	documentRepo repositories.DocumentRepository
	cfg          *config.Config
}

// NewDocumentService creates a new document service
func NewDocumentService(documentRepo repositories.DocumentRepository, cfg *config.Config) *DocumentService {
	return &DocumentService{documentRepo: documentRepo, cfg: cfg}
}

// UploadInput is one uploaded file
type UploadInput struct {
	Category string
	FileName string
	Content  []byte
}

// MaxBytes is the upload size limit
func (s *DocumentService) MaxBytes() int64 {
	return int64(s.cfg.Upload.MaxMB) << 20
}

// Upload stores a document after checking its category, size and sniffed type
func (s *DocumentService) Upload(ctx context.Context, employeeID uint, input *UploadInput) (*models.Document, error) {
	switch input.Category {
	case domain.DocumentPersonal, domain.DocumentEducation, domain.DocumentSkills:
	default:
		return nil, invalid("unknown document category %q", input.Category)
	}
	if len(input.Content) == 0 {
		return nil, invalid("file is empty")
	}
	if int64(len(input.Content)) > s.MaxBytes() {
		return nil, invalid("file exceeds %d MB", s.cfg.Upload.MaxMB)
	}

	mtype := mimetype.Detect(input.Content)
	if !allowedType(mtype) {
		return nil, invalid("file type %s is not allowed", mtype.String())
	}

	name := filepath.Base(strings.TrimSpace(input.FileName))
	if name == "." || name == "/" || name == "" {
		name = "document" + mtype.Extension()
	}

	document := &models.Document{
		EmployeeID:  employeeID,
		Category:    input.Category,
		FileName:    name,
		ContentType: mtype.String(),
		Size:        int64(len(input.Content)),
		Content:     input.Content,
	}
	if err := s.documentRepo.Create(ctx, document); err != nil {
		return nil, storageError("create document", err)
	}

	logger.Log.Infof("✅ Document uploaded: employee_id=%d category=%s type=%s", employeeID, document.Category, document.ContentType)
	return document, nil
}

// List lists the documents of an employee without their content
func (s *DocumentService) List(ctx context.Context, employeeID uint) ([]*models.Document, error) {
	documents, err := s.documentRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, storageError("list documents", err)
	}
	return documents, nil
}

// Get returns a document with its content
func (s *DocumentService) Get(ctx context.Context, id uint) (*models.Document, error) {
	document, err := s.documentRepo.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, domain.ErrNotFound
		}
		return nil, storageError("load document", err)
	}
	return document, nil
}

// GetOwned returns a document of the employee; other employees' documents are not found
func (s *DocumentService) GetOwned(ctx context.Context, employeeID, id uint) (*models.Document, error) {
	document, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if document.EmployeeID != employeeID {
		return nil, domain.ErrNotFound
	}
	return document, nil
}

// Delete removes a document
func (s *DocumentService) Delete(ctx context.Context, id uint) error {
	if err := s.documentRepo.Delete(ctx, id); err != nil {
		if isNotFound(err) {
			return domain.ErrNotFound
		}
		return storageError("delete document", err)
	}
	logger.Log.Infof("✅ Document deleted: %d", id)
	return nil
}

// DeleteOwned removes a document of the employee
func (s *DocumentService) DeleteOwned(ctx context.Context, employeeID, id uint) error {
	if _, err := s.GetOwned(ctx, employeeID, id); err != nil {
		return err
	}
	return s.Delete(ctx, id)
}

func allowedType(mtype *mimetype.MIME) bool {
	for _, allowed := range AllowedDocumentTypes {
		if mtype.Is(allowed) {
			return true
		}
	}
	return false
}

// ContentDisposition builds the attachment header of a download
func ContentDisposition(fileName string) string {
	return fmt.Sprintf("attachment; filename=%q", strings.ReplaceAll(fileName, `"`, ""))
}
