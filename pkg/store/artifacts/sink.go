package artifacts

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var ErrInvalidDestination = errors.New("invalid artifact destination")

// Sink receives finished artifacts. Put returns the location the artifact was written to.
type Sink interface {
	Put(ctx context.Context, name, contentType string, body []byte) (string, error)
}

type DirSink struct {
	dir string
}

func NewDirSink(dir string) (*DirSink, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("%w: directory is empty", ErrInvalidDestination)
	}
	return &DirSink{dir: dir}, nil
}

func (s *DirSink) Put(ctx context.Context, name, _ string, body []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create artifact directory: %w", err)
	}
	target := filepath.Join(s.dir, filepath.Base(name))
	if err := os.WriteFile(target, body, 0o644); err != nil {
		return "", fmt.Errorf("write artifact %s: %w", name, err)
	}
	return target, nil
}

// ObjectPutter is the part of the S3 client the sink needs
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type S3Sink struct {
	client ObjectPutter
	bucket string
	prefix string
}

func NewS3Sink(client ObjectPutter, bucket, prefix string) (*S3Sink, error) {
	if client == nil {
		return nil, fmt.Errorf("s3 client is nil")
	}
	if bucket == "" {
		return nil, fmt.Errorf("%w: bucket is empty", ErrInvalidDestination)
	}
	return &S3Sink{client: client, bucket: bucket, prefix: strings.Trim(prefix, "/")}, nil
}

func (s *S3Sink) Put(ctx context.Context, name, contentType string, body []byte) (string, error) {
	key := path.Join(s.prefix, name)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("put s3://%s/%s: %w", s.bucket, key, err)
	}
	return "s3://" + s.bucket + "/" + key, nil
}

// ParseS3URL splits s3://bucket/prefix into its bucket and prefix.
func ParseS3URL(destination string) (bucket, prefix string, err error) {
	u, err := url.Parse(destination)
	if err != nil || u.Scheme != "s3" || u.Host == "" {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidDestination, destination)
	}
	return u.Host, strings.Trim(u.Path, "/"), nil
}
