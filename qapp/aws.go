package qapp

import (
	"context"
	"time"

	"github.com/advdv/queen/storage"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.opentelemetry.io/contrib/instrumentation/github.com/aws/aws-sdk-go-v2/otelaws"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const awsConfigTimeout = 10 * time.Second

// NewAWSConfig loads the default AWS SDK v2 configuration. A non-empty region overrides the one
// from the default chain.
func NewAWSConfig(ctx context.Context, region string) (aws.Config, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}
	return awsconfig.LoadDefaultConfig(ctx, opts...)
}

// provideAWSConfig loads the AWS config with a timeout and instruments it for AWS SDK tracing.
func provideAWSConfig(env Environment, tp trace.TracerProvider, prop propagation.TextMapPropagator) (aws.Config, error) {
	ctx, cancel := context.WithTimeout(context.Background(), awsConfigTimeout)
	defer cancel()
	cfg, err := NewAWSConfig(ctx, env.awsRegion())
	if err != nil {
		return cfg, err
	}
	otelaws.AppendMiddlewares(&cfg.APIOptions,
		otelaws.WithTracerProvider(tp),
		otelaws.WithTextMapPropagator(prop),
	)
	return cfg, nil
}

// NewUploadStore returns the store multipart uploads are written to: the S3 bucket of
// QUEEN_UPLOAD_BUCKET when set, the QUEEN_UPLOAD_DIR directory otherwise. Unique names are added
// on top when QUEEN_UPLOAD_UNIQUE_NAMES is set.
func NewUploadStore(env Environment, logger *zap.Logger, cfg aws.Config) (storage.Store, error) {
	var store storage.Store
	if bucket := env.uploadBucket(); bucket != "" {
		store = storage.NewS3(s3.NewFromConfig(cfg), bucket, "")
		logger.Info("storing uploads in bucket", zap.String("bucket", bucket))
	} else {
		dir, err := storage.NewDir(env.uploadDir())
		if err != nil {
			return nil, err
		}
		store = dir
		logger.Info("storing uploads in directory", zap.String("dir", dir.Path()))
	}

	if env.uploadUniqueNames() {
		store = storage.Unique(store)
	}
	return store, nil
}
