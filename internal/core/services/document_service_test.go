package services

import (
	"bytes"
	"context"
	"testing"

	"ems-portal/internal/core/domain"
	"ems-portal/internal/testhelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pdfBytes = []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\ntrailer\n<< /Root 1 0 R >>\n%%EOF\n")

func newDocumentService() *DocumentService {
	db := testhelpers.NewMemoryDB()
	return NewDocumentService(db.Documents(), testhelpers.TestConfig())
}

func TestUploadDocument(t *testing.T) {
	svc := newDocumentService()
	ctx := context.Background()

	doc, err := svc.Upload(ctx, 7, &UploadInput{Category: domain.DocumentEducation, FileName: "../../degree.pdf", Content: pdfBytes})
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", doc.ContentType)
	assert.Equal(t, "degree.pdf", doc.FileName)
	assert.Equal(t, int64(len(pdfBytes)), doc.Size)

	list, err := svc.List(ctx, 7)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Nil(t, list[0].Content)

	got, err := svc.GetOwned(ctx, 7, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, pdfBytes, got.Content)

	_, err = svc.GetOwned(ctx, 8, doc.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, svc.DeleteOwned(ctx, 8, doc.ID), domain.ErrNotFound)

	require.NoError(t, svc.DeleteOwned(ctx, 7, doc.ID))
	_, err = svc.Get(ctx, doc.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUploadDocumentRejects(t *testing.T) {
	tests := []struct {
		name  string
		input UploadInput
	}{
		{"unknown category", UploadInput{Category: "medical", FileName: "a.pdf", Content: pdfBytes}},
		{"empty file", UploadInput{Category: domain.DocumentPersonal, FileName: "a.pdf"}},
		{"too large", UploadInput{Category: domain.DocumentPersonal, FileName: "a.txt", Content: bytes.Repeat([]byte("a"), 1<<20+1)}},
		{"archive", UploadInput{Category: domain.DocumentSkills, FileName: "a.zip", Content: append([]byte("PK\x03\x04"), make([]byte, 64)...)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newDocumentService().Upload(context.Background(), 1, &tt.input)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestContentDisposition(t *testing.T) {
	assert.Equal(t, `attachment; filename="cv.pdf"`, ContentDisposition(`c"v.pdf`))
}
