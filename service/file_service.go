package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/eduquery/eduquery-be/types"
)

// FileService stores uploaded files on disk and hands them to the
// ingestion pipeline. Unsupported formats are not rejected here: they
// extract to empty text and yield an empty document.
type FileService struct {
	uploadDir string
	ingest    *IngestService
}

func NewFileService(uploadDir string, ingest *IngestService) (*FileService, error) {
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}
	return &FileService{
		uploadDir: uploadDir,
		ingest:    ingest,
	}, nil
}

// UploadAndIngest saves the multipart file under a timestamped name and
// ingests it, returning the new document id.
func (s *FileService) UploadAndIngest(ctx context.Context, file *multipart.FileHeader, owner types.Requester) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	ext := strings.ToLower(filepath.Ext(file.Filename))
	base := strings.TrimSuffix(file.Filename, filepath.Ext(file.Filename))
	stored := fmt.Sprintf("%s_%d%s", sanitizeFilename(base), time.Now().Unix(), ext)
	storedPath := filepath.Join(s.uploadDir, stored)

	dst, err := os.Create(storedPath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err = io.Copy(dst, src); err != nil {
		return "", err
	}

	return s.ingest.Ingest(ctx, storedPath, file.Filename, owner)
}

func sanitizeFilename(name string) string {
	return strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_' || r == '.' {
			return r
		}
		return '_'
	}, name)
}
