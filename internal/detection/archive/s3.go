// Package archive uploads submitted leaf images to S3-compatible object storage.
package archive

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// Config holds S3 connection settings. Endpoint is optional (set it for MinIO and other
// S3-compatible stores; path-style addressing is used then).
type Config struct {
	Bucket    string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
}

// objectPutter is the subset of *s3.Client used by S3Archive.
type objectPutter interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

var loadDefaultAWSConfig = config.LoadDefaultConfig

// S3Archive stores images under scans/<account>/<yyyy>/<mm>/<dd>/<uuid>.
type S3Archive struct {
	client objectPutter
	bucket string
	nowF   func() time.Time
}

// NewS3Archive builds an S3 client from cfg. Static credentials are used when both keys are set;
// otherwise the default AWS credential chain applies.
func NewS3Archive(ctx context.Context, cfg Config) (*S3Archive, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("archive: bucket is required")
	}
	opts := []func(*config.LoadOptions) error{config.WithRegion(cfg.Region)}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}
	awsCfg, err := loadDefaultAWSConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("archive: load aws config: %w", err)
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})
	return newS3Archive(client, cfg.Bucket), nil
}

func newS3Archive(client objectPutter, bucket string) *S3Archive {
	return &S3Archive{client: client, bucket: bucket, nowF: time.Now}
}

// Store uploads image for accountID and returns the object key.
func (a *S3Archive) Store(ctx context.Context, accountID string, image []byte) (string, error) {
	now := a.nowF().UTC()
	contentType := http.DetectContentType(image)
	key := path.Join("scans", accountID, now.Format("2006/01/02"), uuid.New().String()+extension(contentType))
	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(a.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(image),
		ContentLength: aws.Int64(int64(len(image))),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("archive: put %s: %w", key, err)
	}
	return key, nil
}

func extension(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	default:
		return ""
	}
}
