package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Provider selects the S3-compatible backend
type Provider string

const (
	ProviderAWS    Provider = "aws"
	ProviderWasabi Provider = "wasabi"
)

// WasabiEndpoints maps regions to Wasabi endpoints
var WasabiEndpoints = map[string]string{
	"us-east-1":      "s3.us-east-1.wasabisys.com",
	"us-east-2":      "s3.us-east-2.wasabisys.com",
	"us-west-1":      "s3.us-west-1.wasabisys.com",
	"eu-central-1":   "s3.eu-central-1.wasabisys.com",
	"eu-west-1":      "s3.eu-west-1.wasabisys.com",
	"ap-southeast-1": "s3.ap-southeast-1.wasabisys.com",
}

// Config holds settings for the resume object store
type Config struct {
	Provider        Provider
	AccessKeyID     string
	SecretAccessKey string
	Region          string
	Bucket          string

	// Wasabi-specific endpoint, resolved from region when empty
	WasabiEndpoint string
}

// ResumeStore uploads and deletes candidate resume files in an
// S3-compatible bucket and hands back public object URLs. Only the URL is
// persisted by callers; the store owns all bucket interaction.
type ResumeStore struct {
	client *s3.Client
	bucket string
	base   string // public URL prefix, e.g. https://bucket.s3.region.amazonaws.com
}

func NewResumeStore(ctx context.Context, cfg Config) (*ResumeStore, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	var client *s3.Client
	var base string

	switch cfg.Provider {
	case ProviderWasabi:
		endpoint := cfg.WasabiEndpoint
		if endpoint == "" {
			endpoint = WasabiEndpoints[cfg.Region]
		}
		if endpoint == "" {
			return nil, fmt.Errorf("unknown Wasabi region: %s", cfg.Region)
		}
		client = s3.NewFromConfig(awsCfg, func(o *s3.Options) {
			o.BaseEndpoint = aws.String("https://" + endpoint)
			o.UsePathStyle = true // Wasabi requires path-style
		})
		base = fmt.Sprintf("https://%s/%s", endpoint, cfg.Bucket)
	default:
		client = s3.NewFromConfig(awsCfg)
		base = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	}

	return &ResumeStore{client: client, bucket: cfg.Bucket, base: base}, nil
}

// Upload stores the object under key and returns its public URL.
func (s *ResumeStore) Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return s.base + "/" + key, nil
}

// Delete removes the object a previously returned URL points at. URLs not
// produced by this store are rejected rather than guessed at.
func (s *ResumeStore) Delete(ctx context.Context, fileURL string) error {
	key, ok := strings.CutPrefix(fileURL, s.base+"/")
	if !ok || key == "" {
		return fmt.Errorf("url %q does not belong to bucket %s", fileURL, s.bucket)
	}
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}
