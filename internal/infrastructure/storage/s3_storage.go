// Package storage provides the object stores that hold exported reports.
package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	reportapp "github.com/facultyfeedback/backend/internal/application/report"
	"github.com/facultyfeedback/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

var _ reportapp.ReportStorage = (*S3ReportStorage)(nil)

const (
	defaultS3Endpoint   = "http://localhost:9000"
	defaultS3Region     = "us-east-1"
	defaultLinkLifetime = 15 * time.Minute
)

// S3ReportStorage keeps CSV exports in an S3-compatible bucket and hands out
// presigned links to them. MinIO works with UsePathStyle.
type S3ReportStorage struct {
	client   *s3.Client
	presign  *s3.PresignClient
	bucket   string
	lifetime time.Duration
	logger   *zap.Logger
}

// S3Option customizes an S3ReportStorage
type S3Option func(*S3ReportStorage)

func WithLogger(logger *zap.Logger) S3Option {
	return func(s *S3ReportStorage) { s.logger = logger.Named("s3") }
}

// WithLinkLifetime overrides storage.presign_expiration
func WithLinkLifetime(d time.Duration) S3Option {
	return func(s *S3ReportStorage) { s.lifetime = d }
}

// NewS3ReportStorage builds a client with the static key pair from cfg. No
// request is made until the first call.
func NewS3ReportStorage(cfg *config.StorageConfig, opts ...S3Option) (*S3ReportStorage, error) {
	if cfg == nil {
		return nil, errors.New("storage configuration is required")
	}
	switch {
	case cfg.Bucket == "":
		return nil, errors.New("storage bucket is required")
	case cfg.AccessKey == "":
		return nil, errors.New("storage access key is required")
	case cfg.SecretKey == "":
		return nil, errors.New("storage secret key is required")
	}

	endpoint, err := s3Endpoint(cfg.Endpoint, cfg.UseSSL)
	if err != nil {
		return nil, err
	}
	region := cfg.Region
	if region == "" {
		region = defaultS3Region
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = cfg.UsePathStyle
	})

	s := &S3ReportStorage{
		client:   client,
		presign:  s3.NewPresignClient(client),
		bucket:   cfg.Bucket,
		lifetime: cfg.PresignExpiration,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.lifetime <= 0 {
		s.lifetime = defaultLinkLifetime
	}
	return s, nil
}

// s3Endpoint adds a scheme to bare host:port endpoints
func s3Endpoint(raw string, useSSL bool) (string, error) {
	if raw == "" {
		return defaultS3Endpoint, nil
	}
	if !strings.Contains(raw, "://") {
		scheme := "http://"
		if useSSL {
			scheme = "https://"
		}
		raw = scheme + raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "", fmt.Errorf("invalid storage endpoint %q", raw)
	}
	return raw, nil
}

// Bucket is the configured bucket name
func (s *S3ReportStorage) Bucket() string { return s.bucket }

// EnsureBucket creates the bucket when HeadBucket says it is missing.
func (s *S3ReportStorage) EnsureBucket(ctx context.Context) error {
	_, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(s.bucket)})
	if err == nil {
		return nil
	}
	if !isMissing(err) {
		return fmt.Errorf("head bucket %s: %w", s.bucket, err)
	}

	_, err = s.client.CreateBucket(ctx, &s3.CreateBucketInput{Bucket: aws.String(s.bucket)})
	var owned *types.BucketAlreadyOwnedByYou
	if err != nil && !errors.As(err, &owned) {
		return fmt.Errorf("create bucket %s: %w", s.bucket, err)
	}
	s.logger.Info("Report bucket created", zap.String("bucket", s.bucket))
	return nil
}

// Upload stores one export. An existing object under key is replaced.
func (s *S3ReportStorage) Upload(ctx context.Context, key string, data []byte, contentType string) error {
	if key == "" {
		return ErrInvalidKey
	}
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		return fmt.Errorf("put %s: %w", key, err)
	}
	s.logger.Debug("Report uploaded", zap.String("key", key), zap.Int("bytes", len(data)))
	return nil
}

// GenerateDownloadURL presigns a GET for key. expiresIn <= 0 falls back to
// the configured lifetime.
func (s *S3ReportStorage) GenerateDownloadURL(ctx context.Context, key string, expiresIn time.Duration) (string, time.Time, error) {
	if key == "" {
		return "", time.Time{}, ErrInvalidKey
	}
	if expiresIn <= 0 {
		expiresIn = s.lifetime
	}
	req, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(expiresIn))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("presign %s: %w", key, err)
	}
	return req.URL, time.Now().Add(expiresIn), nil
}

// Exists reports whether key is in the bucket
func (s *S3ReportStorage) Exists(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, ErrInvalidKey
	}
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	switch {
	case err == nil:
		return true, nil
	case isMissing(err):
		return false, nil
	default:
		return false, fmt.Errorf("head %s: %w", key, err)
	}
}

// Delete removes key. Deleting a missing object is not an error.
func (s *S3ReportStorage) Delete(ctx context.Context, key string) error {
	if key == "" {
		return ErrInvalidKey
	}
	if _, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// isMissing matches the typed not-found errors and, for servers that only
// set the code string, the code itself.
func isMissing(err error) bool {
	var (
		notFound *types.NotFound
		noBucket *types.NoSuchBucket
		noKey    *types.NoSuchKey
	)
	if errors.As(err, &notFound) || errors.As(err, &noBucket) || errors.As(err, &noKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "NotFound") || strings.Contains(msg, "NoSuchKey") || strings.Contains(msg, "NoSuchBucket")
}
