package publish

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3PutObjectAPI is the part of *s3.Client the publisher uses.
type S3PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Publisher uploads artifacts to an S3 bucket.
//
// Example usage:
//
//	client := publish.NewS3Client(publish.S3ClientOptions{Region: "eu-west-1"})
//	p := publish.NewS3Publisher(client, "my-bucket", "gallery/", 0)
//	err := p.Publish(ctx, "index.html", "text/html; charset=utf-8", body)
type S3Publisher struct {
	client  S3PutObjectAPI
	bucket  string
	prefix  string
	maxSize int64
}

// NewS3Publisher creates a publisher for bucket. Object keys are prefix
// followed by the object name. maxSize limits each object in bytes
// (0 = no limit).
func NewS3Publisher(client S3PutObjectAPI, bucket, prefix string, maxSize int64) *S3Publisher {
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return &S3Publisher{
		client:  client,
		bucket:  bucket,
		prefix:  strings.TrimPrefix(prefix, "/"),
		maxSize: maxSize,
	}
}

// Key returns the object key for name.
func (p *S3Publisher) Key(name string) (string, error) {
	name, err := CleanName(name)
	if err != nil {
		return "", err
	}
	return p.prefix + name, nil
}

// Publish implements Publisher.
func (p *S3Publisher) Publish(ctx context.Context, name, contentType string, body io.Reader) error {
	key, err := p.Key(name)
	if err != nil {
		return err
	}

	// The body is buffered so the SDK can sign and retry the request.
	data, err := readLimited(body, p.maxSize)
	if err != nil {
		return err
	}

	_, err = p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
		Metadata: map[string]string{
			"publish-time": time.Now().UTC().Format(time.RFC3339),
		},
	})
	if err != nil {
		return fmt.Errorf("s3 upload failed: %w", err)
	}
	return nil
}

// S3ClientOptions configures NewS3Client.
type S3ClientOptions struct {
	Region string

	// Endpoint overrides the service endpoint, for S3-compatible stores.
	// Path-style addressing is used when it is set.
	Endpoint string
}

// NewS3Client creates an S3 client. Credentials are read from the standard
// AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY and AWS_SESSION_TOKEN variables
// when a request is signed.
func NewS3Client(opts S3ClientOptions) *s3.Client {
	o := s3.Options{
		Region:      opts.Region,
		Credentials: aws.NewCredentialsCache(envCredentials()),
	}
	if opts.Endpoint != "" {
		o.BaseEndpoint = aws.String(opts.Endpoint)
		o.UsePathStyle = true
	}
	return s3.New(o)
}

func envCredentials() aws.CredentialsProvider {
	return aws.CredentialsProviderFunc(func(context.Context) (aws.Credentials, error) {
		creds := aws.Credentials{
			AccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
			SecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
			SessionToken:    os.Getenv("AWS_SESSION_TOKEN"),
			Source:          "Environment",
		}
		if creds.AccessKeyID == "" || creds.SecretAccessKey == "" {
			return aws.Credentials{}, fmt.Errorf("publish: AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY must be set")
		}
		return creds, nil
	})
}
