package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"growth-server/internal/config"
	"growth-server/internal/observability"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
)

// S3Client talks to an S3-compatible bucket holding creator video uploads
type S3Client struct {
	client        *s3.Client
	presign       *s3.PresignClient
	bucket        string
	publicBaseURL string
	logger        *observability.Logger
}

// NewS3Client builds a client from static credentials. A custom endpoint (R2, MinIO)
// switches the client to path-style addressing.
func NewS3Client(ctx context.Context, cfg config.StorageConfig, logger *observability.Logger) (*S3Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID, cfg.SecretAccessKey, "",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load storage config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Client{
		client:        client,
		presign:       s3.NewPresignClient(client),
		bucket:        cfg.Bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		logger:        logger,
	}, nil
}

// Exists reports whether an object is stored at path
func (c *S3Client) Exists(ctx context.Context, path string) (bool, error) {
	_, err := c.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(path),
	})
	if err == nil {
		return true, nil
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) && (apiErr.ErrorCode() == "NotFound" || apiErr.ErrorCode() == "NoSuchKey") {
		return false, nil
	}
	c.logger.Error(observability.WithFields(ctx, observability.Field{Key: "storage_path", Value: path}), "failed to head object", err)
	return false, fmt.Errorf("storage: failed to check object: %w", err)
}

// Download opens the object at path for streaming. Callers must close the reader.
func (c *S3Client) Download(ctx context.Context, path string) (io.ReadCloser, error) {
	out, err := c.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(path),
	})
	if err != nil {
		c.logger.Error(observability.WithFields(ctx, observability.Field{Key: "storage_path", Value: path}), "failed to get object", err)
		return nil, fmt.Errorf("storage: failed to download object: %w", err)
	}
	return out.Body, nil
}

// Delete removes the object at path
func (c *S3Client) Delete(ctx context.Context, path string) error {
	_, err := c.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(path),
	})
	if err != nil {
		c.logger.Error(observability.WithFields(ctx, observability.Field{Key: "storage_path", Value: path}), "failed to delete object", err)
		return fmt.Errorf("storage: failed to delete object: %w", err)
	}
	return nil
}

// PublicURL returns the CDN URL an object is served from
func (c *S3Client) PublicURL(path string) string {
	return fmt.Sprintf("%s/%s", c.publicBaseURL, strings.TrimLeft(path, "/"))
}

// PresignUpload returns a URL the creator's browser can PUT the video to directly
func (c *S3Client) PresignUpload(ctx context.Context, path, contentType string, ttl time.Duration) (string, error) {
	req, err := c.presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(path),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(ttl))
	if err != nil {
		return "", fmt.Errorf("storage: failed to presign upload: %w", err)
	}
	return req.URL, nil
}
