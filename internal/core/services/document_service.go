package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"instacash-backend/internal/core/domain"
	"instacash-backend/internal/pkg/logger"
)

// DocumentService stores uploaded documents on local disk
type DocumentService struct {
	uploadDir string
}

// NewDocumentService creates a new document service
func NewDocumentService(uploadDir string) *DocumentService {
	return &DocumentService{uploadDir: uploadDir}
}

// Store writes each uploaded file under the upload directory (created
// if absent) as {unixTimestamp}_{originalName} and returns the stored
// filenames.
func (s *DocumentService) Store(files []*multipart.FileHeader) ([]string, error) {
	if len(files) == 0 {
		return nil, domain.ErrNoDocuments
	}

	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return nil, err
	}

	timestamp := time.Now().Unix()

	stored := make([]string, 0, len(files))
	for _, fh := range files {
		if fh.Filename == "" {
			continue
		}

		// Base strips any path components a client may smuggle in.
		name := fmt.Sprintf("%d_%s", timestamp, filepath.Base(fh.Filename))
		if err := s.saveFile(fh, filepath.Join(s.uploadDir, name)); err != nil {
			return nil, err
		}
		stored = append(stored, name)
	}

	logger.Get().Info().Int("count", len(stored)).Msg("documents uploaded")

	return stored, nil
}

func (s *DocumentService) saveFile(fh *multipart.FileHeader, dest string) error {
	src, err := fh.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer dst.Close()

	_, err = io.Copy(dst, src)
	return err
}
