package service

import (
	"fmt"
	"mime/multipart"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	appErrors "github.com/fmontiron/portfolio-api/pkg/errors"
	"github.com/fmontiron/portfolio-api/pkg/storage"
)

var allowedImageExtensions = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".gif":  {},
	".webp": {},
	".svg":  {},
}

// UploadService stores admin-uploaded images under the static uploads dir.
type UploadService struct {
	store      *storage.LocalStorage
	publicPath string
	maxSize    int64
	logger     *zap.Logger
}

// NewUploadService constructs an UploadService instance.
func NewUploadService(store *storage.LocalStorage, publicPath string, maxSize int64, logger *zap.Logger) *UploadService {
	if publicPath == "" {
		publicPath = "/uploads"
	}
	if maxSize <= 0 {
		maxSize = 5 * 1024 * 1024
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UploadService{store: store, publicPath: publicPath, maxSize: maxSize, logger: logger}
}

// Save validates and persists the uploaded image, returning its public URL.
// Stored names are random so uploads never collide or echo client input.
func (s *UploadService) Save(file *multipart.FileHeader) (string, error) {
	if file == nil {
		return "", appErrors.Clone(appErrors.ErrValidation, "image file is required")
	}
	if file.Size > s.maxSize {
		return "", appErrors.Clone(appErrors.ErrPayloadTooLarge, fmt.Sprintf("image exceeds %d bytes", s.maxSize))
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if _, ok := allowedImageExtensions[ext]; !ok {
		return "", appErrors.Clone(appErrors.ErrValidation, "unsupported image type")
	}

	src, err := file.Open()
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to read upload")
	}
	defer src.Close() //nolint:errcheck

	name := uuid.NewString() + ext
	if _, err := s.store.SaveStream(name, src); err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store upload")
	}

	s.logger.Info("image uploaded", zap.String("file", name), zap.Int64("size", file.Size))
	return path.Join(s.publicPath, name), nil
}
