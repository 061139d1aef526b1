package service

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrUnsupportedFileType = errors.New("unsupported file type")

// allowed extensions for ID proofs and feedback attachments
var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".pdf":  true,
}

// UploadService stores multipart uploads on local disk under a public
// uploads directory, with a randomized, timestamped filename so concurrent
// uploads never collide and original names never leak.
type UploadService struct {
	dir string
}

func NewUploadService(dir string) (*UploadService, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create uploads directory: %w", err)
	}
	return &UploadService{dir: dir}, nil
}

// Save writes the uploaded file to disk and returns its stored path.
// The original extension is preserved; everything else is regenerated.
func (s *UploadService) Save(file multipart.File, header *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedExtensions[ext] {
		return "", ErrUnsupportedFileType
	}

	filename := fmt.Sprintf("%s_%d%s", uuid.New().String(), time.Now().UnixNano(), ext)
	path := filepath.Join(s.dir, filename)

	dst, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		os.Remove(path)
		return "", err
	}

	return path, nil
}
