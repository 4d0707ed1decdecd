package storage

import (
	"context"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	cfg "github.com/winterarc/tracker/internal/config"
)

func TestNewWithoutBucket(t *testing.T) {
	s, err := New(context.Background(), &cfg.Config{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if s != nil {
		t.Errorf("New() = %v, want nil storage without a bucket", s)
	}
}

func TestPresignedURL(t *testing.T) {
	client := s3.New(s3.Options{
		Region:       "us-east-1",
		Credentials:  credentials.NewStaticCredentialsProvider("key", "secret", ""),
		BaseEndpoint: aws.String("http://localhost:9000"),
		UsePathStyle: true,
	})
	s := &S3Storage{
		client:        client,
		presignClient: s3.NewPresignClient(client),
		bucket:        "exports",
		presignExpiry: 15 * time.Minute,
	}

	raw, err := s.PresignedURL(context.Background(), "exports/u1/2025-10-20.json")
	if err != nil {
		t.Fatalf("PresignedURL() error = %v", err)
	}

	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("invalid URL %q: %v", raw, err)
	}
	if !strings.HasPrefix(u.Path, "/exports/exports/u1/2025-10-20.json") {
		t.Errorf("path = %q, want bucket and key", u.Path)
	}
	if got := u.Query().Get("X-Amz-Expires"); got != "900" {
		t.Errorf("X-Amz-Expires = %q, want 900", got)
	}
}
