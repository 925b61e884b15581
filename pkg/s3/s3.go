package s3

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	awss3 "github.com/aws/aws-sdk-go/service/s3"
)

// StorageError wraps a failure talking to the object store. Handlers log it
// and report a generic message to the client.
type StorageError struct {
	Key string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("store object %s: %v", e.Key, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Options configures the gateway for an S3-compatible bucket. Endpoint and
// path-style addressing are what Cloudflare R2 expects.
type Options struct {
	Endpoint        string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	PublicURL       string
}

// Gateway pushes byte buffers to a bucket and returns public URLs for them.
type Gateway struct {
	client    *awss3.S3
	bucket    string
	publicURL string
}

// NewGateway constructs a gateway from the given options.
func NewGateway(opts Options) (*Gateway, error) {
	sess, err := session.NewSession(&aws.Config{
		Endpoint:         aws.String(opts.Endpoint),
		Region:           aws.String(opts.Region),
		Credentials:      credentials.NewStaticCredentials(opts.AccessKeyID, opts.SecretAccessKey, ""),
		S3ForcePathStyle: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	return &Gateway{
		client:    awss3.New(sess),
		bucket:    opts.Bucket,
		publicURL: strings.TrimSuffix(opts.PublicURL, "/"),
	}, nil
}

// Put stores body under key with the given content type and returns the
// public URL. The bucket is not checked beforehand; any failure surfaces as
// a *StorageError. There is no retry.
func (g *Gateway) Put(ctx context.Context, key string, body []byte, contentType string) (string, error) {
	_, err := g.client.PutObjectWithContext(ctx, &awss3.PutObjectInput{
		Bucket:      aws.String(g.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", &StorageError{Key: key, Err: err}
	}
	return g.publicURL + "/" + key, nil
}
