package report

import (
	"context"
	"time"
)

// ReportStorage persists generated report files and hands out download links
type ReportStorage interface {
	// Upload writes data under key, replacing any existing object
	Upload(ctx context.Context, key string, data []byte, contentType string) error

	// GenerateDownloadURL returns a link to key that is valid for expiresIn
	GenerateDownloadURL(ctx context.Context, key string, expiresIn time.Duration) (string, time.Time, error)
}
