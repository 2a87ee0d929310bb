package storage

import (
	"context"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/facultyfeedback/backend/internal/infrastructure/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func validS3Config() *config.StorageConfig {
	return &config.StorageConfig{
		Backend:      "s3",
		Bucket:       "feedback-reports",
		AccessKey:    "test-key",
		SecretKey:    "test-secret",
		Endpoint:     "http://localhost:9000",
		UsePathStyle: true,
	}
}

func TestNewS3ReportStorage_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.StorageConfig)
		wantErr string
	}{
		{"missing bucket", func(c *config.StorageConfig) { c.Bucket = "" }, "bucket is required"},
		{"missing access key", func(c *config.StorageConfig) { c.AccessKey = "" }, "access key is required"},
		{"missing secret key", func(c *config.StorageConfig) { c.SecretKey = "" }, "secret key is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validS3Config()
			tt.mutate(cfg)
			_, err := NewS3ReportStorage(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	t.Run("nil config", func(t *testing.T) {
		_, err := NewS3ReportStorage(nil)
		assert.Error(t, err)
	})
}

func TestNewS3ReportStorage_Defaults(t *testing.T) {
	cfg := validS3Config()
	cfg.Endpoint = "minio:9000"

	s, err := NewS3ReportStorage(cfg, WithLogger(zaptest.NewLogger(t)))
	require.NoError(t, err)
	assert.Equal(t, "feedback-reports", s.Bucket())
	assert.Equal(t, 15*time.Minute, s.lifetime)

	s, err = NewS3ReportStorage(validS3Config(), WithLinkLifetime(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, time.Hour, s.lifetime)
}

func TestS3ReportStorage_GenerateDownloadURL(t *testing.T) {
	s, err := NewS3ReportStorage(validS3Config())
	require.NoError(t, err)

	raw, expires, err := s.GenerateDownloadURL(context.Background(), "exports/feedback.csv", 5*time.Minute)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(5*time.Minute), expires, 5*time.Second)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "localhost:9000", u.Host)
	assert.Equal(t, "/feedback-reports/exports/feedback.csv", u.Path)
	assert.Equal(t, "300", u.Query().Get("X-Amz-Expires"))

	_, _, err = s.GenerateDownloadURL(context.Background(), "", 0)
	assert.ErrorIs(t, err, ErrInvalidKey)

	raw, _, err = s.GenerateDownloadURL(context.Background(), "exports/feedback.csv", 0)
	require.NoError(t, err)
	u, err = url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "900", u.Query().Get("X-Amz-Expires"))
}

func TestS3ReportStorage_EmptyKeys(t *testing.T) {
	s, err := NewS3ReportStorage(validS3Config())
	require.NoError(t, err)
	ctx := context.Background()

	assert.ErrorIs(t, s.Upload(ctx, "", []byte("x"), "text/csv"), ErrInvalidKey)
	assert.ErrorIs(t, s.Delete(ctx, ""), ErrInvalidKey)
	_, err = s.Exists(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidKey)
}

func TestS3Endpoint(t *testing.T) {
	tests := []struct {
		raw    string
		useSSL bool
		want   string
	}{
		{"", false, "http://localhost:9000"},
		{"minio:9000", false, "http://minio:9000"},
		{"s3.example.com", true, "https://s3.example.com"},
		{"https://s3.example.com", false, "https://s3.example.com"},
	}
	for _, tt := range tests {
		got, err := s3Endpoint(tt.raw, tt.useSSL)
		require.NoError(t, err, tt.raw)
		assert.Equal(t, tt.want, got)
	}

	_, err := s3Endpoint("http://", false)
	assert.Error(t, err)
}

// Runs against a real S3-compatible server when FFB_TEST_S3_ENDPOINT is set
func TestS3ReportStorage_Integration(t *testing.T) {
	endpoint := os.Getenv("FFB_TEST_S3_ENDPOINT")
	if endpoint == "" {
		t.Skip("FFB_TEST_S3_ENDPOINT not set")
	}
	cfg := validS3Config()
	cfg.Endpoint = endpoint
	cfg.Bucket = "ffb-test-" + strings.ToLower(uuid.NewString()[:8])
	if v := os.Getenv("FFB_TEST_S3_ACCESS_KEY"); v != "" {
		cfg.AccessKey = v
		cfg.SecretKey = os.Getenv("FFB_TEST_S3_SECRET_KEY")
	}

	s, err := NewS3ReportStorage(cfg)
	require.NoError(t, err)
	ctx := context.Background()
	require.NoError(t, s.EnsureBucket(ctx))
	require.NoError(t, s.EnsureBucket(ctx))

	key := "exports/it.csv"
	require.NoError(t, s.Upload(ctx, key, []byte("a,b\n1,2\n"), "text/csv"))
	exists, err := s.Exists(ctx, key)
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, s.Delete(ctx, key))
	exists, err = s.Exists(ctx, key)
	require.NoError(t, err)
	assert.False(t, exists)
}
