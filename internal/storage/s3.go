package storage

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"menu-app-go/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var ErrForeignObject = errors.New("object url does not belong to bucket")

type deleteObjectAPI interface {
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3Storage removes menu images from an S3 compatible bucket (R2, MinIO, S3).
type S3Storage struct {
	client  deleteObjectAPI
	bucket  string
	baseURL string
}

func NewS3Storage(ctx context.Context, cfg config.StorageConfig) (*S3Storage, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(
		ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Storage{
		client:  client,
		bucket:  cfg.Bucket,
		baseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
	}, nil
}

func (s *S3Storage) Remove(ctx context.Context, objectURL string) error {
	key, err := s.objectKey(objectURL)
	if err != nil {
		return err
	}

	_, err = s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("delete object %q: %w", key, err)
	}
	return nil
}

// objectKey maps a public object URL back to its bucket key. URLs under the
// configured public base are trimmed; otherwise a path-style "/bucket/key"
// path is accepted.
func (s *S3Storage) objectKey(objectURL string) (string, error) {
	objectURL = strings.TrimSpace(objectURL)
	if objectURL == "" {
		return "", ErrForeignObject
	}

	if s.baseURL != "" && strings.HasPrefix(objectURL, s.baseURL+"/") {
		key, err := url.PathUnescape(strings.TrimPrefix(objectURL, s.baseURL+"/"))
		if err != nil || key == "" {
			return "", ErrForeignObject
		}
		return key, nil
	}

	parsed, err := url.Parse(objectURL)
	if err != nil {
		return "", ErrForeignObject
	}
	path := strings.TrimPrefix(parsed.Path, "/")
	prefix := s.bucket + "/"
	if !strings.HasPrefix(path, prefix) || len(path) == len(prefix) {
		return "", ErrForeignObject
	}
	return strings.TrimPrefix(path, prefix), nil
}
