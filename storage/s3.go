package storage

import (
	"bytes"
	"context"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/cockroachdb/errors"
)

// S3API is the part of the S3 client the store uses.
type S3API interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3 stores files as objects in a bucket, below an optional key prefix.
type S3 struct {
	client S3API
	bucket string
	prefix string
}

// NewS3 returns a store that writes to bucket, with keys below prefix.
func NewS3(client S3API, bucket, prefix string) *S3 {
	return &S3{client: client, bucket: bucket, prefix: prefix}
}

// Put uploads data and returns the object location as an s3:// url.
func (s *S3) Put(ctx context.Context, name string, data []byte) (string, error) {
	if err := CheckName(name); err != nil {
		return "", err
	}

	key := path.Join(s.prefix, name)
	if _, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
	}); err != nil {
		return "", errors.Wrapf(err, "put object %q", key)
	}

	return "s3://" + s.bucket + "/" + key, nil
}
