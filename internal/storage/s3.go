// Package storage produces pre-signed S3 upload targets. The server never
// proxies image bytes: the client asks for a signed PUT URL, uploads
// directly to the bucket, and then registers the resulting public URL as an
// image row.
package storage

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// UploadSigner is what the handler layer depends on; tests substitute a stub.
type UploadSigner interface {
	// SignPut returns a time-limited pre-authorized PUT URL for the upload
	// and the public URL the object will have once uploaded.
	SignPut(ctx context.Context, fileName, fileType string) (signedURL, publicURL string, err error)
}

// S3Signer signs upload URLs against one fixed bucket.
type S3Signer struct {
	presign *s3.PresignClient
	bucket  string
	ttl     time.Duration
}

// NewS3Signer resolves AWS credentials through the SDK default chain and
// builds a presign client for the configured region and bucket.
func NewS3Signer(ctx context.Context, region, bucket string, ttl time.Duration) (*S3Signer, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return &S3Signer{
		presign: s3.NewPresignClient(s3.NewFromConfig(cfg)),
		bucket:  bucket,
		ttl:     ttl,
	}, nil
}

// SignPut builds the object key from a random prefix plus the sanitized
// original file name, so repeated uploads of the same file never collide.
func (s *S3Signer) SignPut(ctx context.Context, fileName, fileType string) (string, string, error) {
	key := uuid.NewString() + "-" + sanitizeName(fileName)
	req, err := s.presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(fileType),
	}, s3.WithPresignExpires(s.ttl))
	if err != nil {
		return "", "", fmt.Errorf("presign put: %w", err)
	}
	publicURL := fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.bucket, key)
	return req.URL, publicURL, nil
}

// sanitizeName keeps only the base name and replaces characters that would
// need escaping in an object key.
func sanitizeName(name string) string {
	base := path.Base(strings.ReplaceAll(name, "\\", "/"))
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.' || r == '-' || r == '_':
			return r
		default:
			return '-'
		}
	}, base)
}
