package archive

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type fakePutter struct {
	in   *s3.PutObjectInput
	body []byte
	err  error
}

func (f *fakePutter) PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.in = in
	if in.Body != nil {
		f.body, _ = io.ReadAll(in.Body)
	}
	if f.err != nil {
		return nil, f.err
	}
	return &s3.PutObjectOutput{}, nil
}

var pngHeader = []byte("\x89PNG\r\n\x1a\n0000")

func TestS3Archive_Store(t *testing.T) {
	put := &fakePutter{}
	a := newS3Archive(put, "palay-scans")
	a.nowF = func() time.Time { return time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC) }

	key, err := a.Store(context.Background(), "acc-1", pngHeader)
	if err != nil {
		t.Fatalf("Store: %v", err)
	}
	if !strings.HasPrefix(key, "scans/acc-1/2025/06/01/") || !strings.HasSuffix(key, ".png") {
		t.Errorf("key = %q", key)
	}
	if aws.ToString(put.in.Bucket) != "palay-scans" || aws.ToString(put.in.Key) != key {
		t.Errorf("input bucket=%q key=%q", aws.ToString(put.in.Bucket), aws.ToString(put.in.Key))
	}
	if aws.ToString(put.in.ContentType) != "image/png" {
		t.Errorf("content type = %q", aws.ToString(put.in.ContentType))
	}
	if string(put.body) != string(pngHeader) {
		t.Error("uploaded body differs from image")
	}
}

func TestS3Archive_StoreError(t *testing.T) {
	boom := errors.New("access denied")
	a := newS3Archive(&fakePutter{err: boom}, "b")
	if _, err := a.Store(context.Background(), "acc-1", []byte("x")); !errors.Is(err, boom) {
		t.Errorf("want wrapped put error, got %v", err)
	}
}

func TestNewS3Archive(t *testing.T) {
	if _, err := NewS3Archive(context.Background(), Config{}); err == nil {
		t.Error("missing bucket should fail")
	}

	orig := loadDefaultAWSConfig
	defer func() { loadDefaultAWSConfig = orig }()
	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*config.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("no config")
	}
	if _, err := NewS3Archive(context.Background(), Config{Bucket: "b"}); err == nil {
		t.Error("aws config failure should be returned")
	}

	loadDefaultAWSConfig = orig
	a, err := NewS3Archive(context.Background(), Config{
		Bucket: "b", Region: "us-east-1", Endpoint: "http://127.0.0.1:9000", AccessKey: "minioadmin", SecretKey: "minioadmin",
	})
	if err != nil {
		t.Fatalf("NewS3Archive: %v", err)
	}
	if a.bucket != "b" || a.client == nil {
		t.Errorf("archive = %+v", a)
	}
}

func TestExtension(t *testing.T) {
	for ct, want := range map[string]string{"image/jpeg": ".jpg", "image/png": ".png", "image/webp": ".webp", "application/octet-stream": ""} {
		if got := extension(ct); got != want {
			t.Errorf("extension(%q) = %q, want %q", ct, got, want)
		}
	}
}
