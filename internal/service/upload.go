package service

import (
	"fmt"
	"log/slog"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/D1Massacre007/York-Realty/internal/model"
	"github.com/D1Massacre007/York-Realty/internal/storage"
	"github.com/google/uuid"
)

// UploadService stages incoming files into storage under a unique name and
// rolls them back on demand. A staged file belongs to the request that staged
// it until a listing row commits it.
type UploadService struct {
	storage storage.Storage
}

func NewUploadService(storage storage.Storage) *UploadService {
	return &UploadService{storage: storage}
}

// Stage writes the upload to storage under a fresh uuid-based filename.
// Validation (type, size, content) must have happened before this point;
// nothing oversized or of a disallowed type is ever written.
func (s *UploadService) Stage(file multipart.File, header *multipart.FileHeader) (*model.StagedUpload, error) {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	filename := fmt.Sprintf("%s%s", uuid.New().String(), ext)

	err := s.storage.Save(filename, file)
	if err != nil {
		return nil, fmt.Errorf("failed to save file: %w", err)
	}

	return &model.StagedUpload{
		Filename:     filename,
		OriginalName: header.Filename,
		StoragePath:  filename,
		Size:         header.Size,
		MimeType:     header.Header.Get("Content-Type"),
	}, nil
}

// Unstage deletes a staged file. It is the rollback half of Stage: best
// effort, idempotent, and safe to call when the file is already gone.
func (s *UploadService) Unstage(upload *model.StagedUpload) {
	err := s.storage.Delete(upload.StoragePath)
	if err != nil {
		slog.Error("failed to delete staged upload", "error", err, "path", upload.StoragePath)
	}
}

// URL returns the public URL a committed upload is served under.
func (s *UploadService) URL(upload *model.StagedUpload) string {
	return s.storage.URL(upload.StoragePath)
}
