package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	reportapp "github.com/facultyfeedback/backend/internal/application/report"
	"github.com/facultyfeedback/backend/internal/domain/shared"
	"go.uber.org/zap"
)

var _ reportapp.ReportStorage = (*FileSystemStorage)(nil)

// ErrInvalidKey is returned for keys that are empty or would escape the base directory
var ErrInvalidKey = errors.New("invalid storage key")

// FileSystemStorage stores report exports on local disk and serves them
// through the API under baseURL
type FileSystemStorage struct {
	basePath string
	baseURL  string
	logger   *zap.Logger
}

// NewFileSystemStorage creates the base directory if needed
func NewFileSystemStorage(basePath, baseURL string, logger *zap.Logger) (*FileSystemStorage, error) {
	if basePath == "" {
		basePath = "./data/reports"
	}
	if baseURL == "" {
		baseURL = "/api/v1/reports/files"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	return &FileSystemStorage{
		basePath: basePath,
		baseURL:  strings.TrimRight(baseURL, "/"),
		logger:   logger,
	}, nil
}

// resolve maps a key to an absolute path under basePath
func (s *FileSystemStorage) resolve(key string) (string, error) {
	if key == "" || filepath.IsAbs(key) || containsDotDot(key) {
		s.logger.Warn("Blocked storage key", zap.String("key", key))
		return "", ErrInvalidKey
	}

	absBase, err := filepath.Abs(s.basePath)
	if err != nil {
		return "", fmt.Errorf("failed to resolve base path: %w", err)
	}
	absPath, err := filepath.Abs(filepath.Join(absBase, filepath.FromSlash(key)))
	if err != nil {
		return "", fmt.Errorf("failed to resolve file path: %w", err)
	}
	if !strings.HasPrefix(absPath, absBase+string(filepath.Separator)) {
		s.logger.Warn("Blocked storage path escape", zap.String("key", key), zap.String("path", absPath))
		return "", ErrInvalidKey
	}
	return absPath, nil
}

// Upload writes data to basePath/key, creating parent directories
func (s *FileSystemStorage) Upload(ctx context.Context, key string, data []byte, contentType string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path, err := s.resolve(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	s.logger.Info("Report stored", zap.String("key", key), zap.Int("size", len(data)))
	return nil
}

// GenerateDownloadURL returns the API path serving key. Local files are
// served to authenticated admins, so the expiry is informational.
func (s *FileSystemStorage) GenerateDownloadURL(ctx context.Context, key string, expiresIn time.Duration) (string, time.Time, error) {
	if _, err := s.resolve(key); err != nil {
		return "", time.Time{}, err
	}
	return s.baseURL + "/" + strings.TrimLeft(filepath.ToSlash(filepath.Clean(key)), "/"), time.Now().Add(expiresIn), nil
}

// Open returns the stored file for key. A missing file yields shared.ErrNotFound.
func (s *FileSystemStorage) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path, err := s.resolve(key)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, shared.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open report: %w", err)
	}
	return f, nil
}

// Delete removes the file for key; a missing file is not an error
func (s *FileSystemStorage) Delete(ctx context.Context, key string) error {
	path, err := s.resolve(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete report: %w", err)
	}
	return nil
}

// containsDotDot checks the raw key for ".." components before any cleaning
func containsDotDot(key string) bool {
	parts := strings.FieldsFunc(key, func(r rune) bool {
		return r == '/' || r == '\\'
	})
	return slices.Contains(parts, "..")
}
