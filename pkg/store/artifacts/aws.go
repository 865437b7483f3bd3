package artifacts

import (
	"context"
	"fmt"
	"strings"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const DefaultRegion = "us-east-1"

type S3Options struct {
	Profile string
	Region  string
}

func LoadAWSConfig(ctx context.Context, opts S3Options) (*awssdk.Config, error) {
	region := opts.Region
	if region == "" {
		region = DefaultRegion
	}
	loadOpts := []func(*config.LoadOptions) error{config.WithDefaultRegion(region)}
	if opts.Profile != "" {
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(opts.Profile))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS SDK config: %w", err)
	}
	return &awsCfg, nil
}

// NewSink picks an S3 sink for s3:// destinations and a directory sink otherwise.
func NewSink(ctx context.Context, destination string, opts S3Options) (Sink, error) {
	if !strings.HasPrefix(destination, "s3://") {
		return NewDirSink(destination)
	}

	bucket, prefix, err := ParseS3URL(destination)
	if err != nil {
		return nil, err
	}
	cfg, err := LoadAWSConfig(ctx, opts)
	if err != nil {
		return nil, err
	}
	return NewS3Sink(s3.NewFromConfig(*cfg), bucket, prefix)
}
