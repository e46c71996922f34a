package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"

	"eventpilot/internal/config"
	"eventpilot/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"go.uber.org/zap"
)

// S3Uploader stores rendered documents in S3-compatible object storage.
//
// Uploads try the primary bucket first and walk the fallback chain when a
// bucket does not exist.
type S3Uploader struct {
	client  *s3.Client
	buckets []string
	logger  *zap.Logger
}

var _ interfaces.IBlobStore = (*S3Uploader)(nil)

func NewS3Uploader(awsCfg aws.Config, cfg *config.Config, logger *zap.Logger) *S3Uploader {
	var opts []func(*s3.Options)
	if endpoint := os.Getenv("S3_ENDPOINT"); endpoint != "" {
		opts = append(opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		})
	}

	buckets := append([]string{cfg.Storage.Bucket}, cfg.Storage.FallbackBuckets...)
	return &S3Uploader{
		client:  s3.NewFromConfig(awsCfg, opts...),
		buckets: buckets,
		logger:  logger,
	}
}

func (u *S3Uploader) Upload(ctx context.Context, filename string, body []byte, contentType string) (string, error) {
	var lastErr error
	for _, bucket := range u.buckets {
		_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(bucket),
			Key:         aws.String(filename),
			Body:        bytes.NewReader(body),
			ContentType: aws.String(contentType),
		})
		if err == nil {
			return fmt.Sprintf("s3://%s/%s", bucket, filename), nil
		}

		lastErr = err
		var noBucket *types.NoSuchBucket
		if errors.As(err, &noBucket) {
			u.logger.Warn("bucket missing, trying fallback",
				zap.String("bucket", bucket), zap.String("filename", filename))
			continue
		}
		return "", err
	}
	if lastErr == nil {
		lastErr = errors.New("no storage bucket configured")
	}
	return "", lastErr
}
