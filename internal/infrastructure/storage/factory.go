package storage

import (
	"context"
	"fmt"
	"time"

	reportapp "github.com/facultyfeedback/backend/internal/application/report"
	"github.com/facultyfeedback/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// New builds the report store selected by cfg.Backend. The S3 bucket is
// created on first use when missing.
func New(ctx context.Context, cfg *config.StorageConfig, logger *zap.Logger) (reportapp.ReportStorage, error) {
	switch cfg.Backend {
	case "s3":
		s3Storage, err := NewS3ReportStorage(cfg, WithLogger(logger))
		if err != nil {
			return nil, err
		}
		ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		if err := s3Storage.EnsureBucket(ctx); err != nil {
			return nil, err
		}
		logger.Info("Using S3 report storage", zap.String("bucket", s3Storage.Bucket()))
		return s3Storage, nil
	case "local", "":
		fs, err := NewFileSystemStorage(cfg.LocalPath, cfg.LocalBaseURL, logger)
		if err != nil {
			return nil, err
		}
		logger.Info("Using local report storage", zap.String("path", fs.basePath))
		return fs, nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
