package s3

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	s3aws "github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/nakhla/datesqr/core/storage"
)

var _ storage.Storage = (*Storage)(nil)

// S3Client is the subset of the SDK client used by Storage.
type S3Client interface {
	PutObject(ctx context.Context, params *s3aws.PutObjectInput, optFns ...func(*s3aws.Options)) (*s3aws.PutObjectOutput, error)
	HeadObject(ctx context.Context, params *s3aws.HeadObjectInput, optFns ...func(*s3aws.Options)) (*s3aws.HeadObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3aws.DeleteObjectInput, optFns ...func(*s3aws.Options)) (*s3aws.DeleteObjectOutput, error)
}

// Storage stores files in a single bucket, optionally under a key prefix.
type Storage struct {
	client         S3Client
	bucket         string
	region         string
	prefix         string
	endpoint       string
	baseURL        string
	forcePathStyle bool
	uploadTimeout  time.Duration
	cacheControl   string
}

// Config holds connection settings. AccessKeyID and SecretKey are optional;
// the default AWS credential chain is used when they are empty.
type Config struct {
	Bucket         string `env:"S3_BUCKET"`
	Region         string `env:"S3_REGION" envDefault:"us-east-1"`
	AccessKeyID    string `env:"S3_ACCESS_KEY_ID"`
	SecretKey      string `env:"S3_SECRET_KEY"`
	Endpoint       string `env:"S3_ENDPOINT"`
	BaseURL        string `env:"S3_BASE_URL"`
	Prefix         string `env:"S3_PREFIX" envDefault:"qr"`
	ForcePathStyle bool   `env:"S3_FORCE_PATH_STYLE" envDefault:"false"`
}

// Option configures Storage.
type Option func(*options)

type options struct {
	httpClient    *http.Client
	s3Client      S3Client
	uploadTimeout time.Duration
	cacheControl  string
}

// WithS3Client sets a pre-configured client, mostly for tests.
func WithS3Client(client S3Client) Option {
	return func(o *options) {
		o.s3Client = client
	}
}

// WithHTTPClient sets the HTTP client used by the SDK.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// WithUploadTimeout bounds each Put call.
func WithUploadTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.uploadTimeout = timeout
	}
}

// WithCacheControl sets the Cache-Control metadata of uploaded objects.
func WithCacheControl(v string) Option {
	return func(o *options) {
		o.cacheControl = v
	}
}

// New creates an S3-backed Storage.
func New(ctx context.Context, cfg Config, opts ...Option) (*Storage, error) {
	if cfg.Bucket == "" || cfg.Region == "" {
		return nil, fmt.Errorf("%w: bucket and region are required", storage.ErrInvalidConfig)
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	client := o.s3Client
	if client == nil {
		loadOpts := []func(*config.LoadOptions) error{
			config.WithRegion(cfg.Region),
		}
		if cfg.AccessKeyID != "" && cfg.SecretKey != "" {
			loadOpts = append(loadOpts, config.WithCredentialsProvider(
				credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretKey, ""),
			))
		}
		if o.httpClient != nil {
			loadOpts = append(loadOpts, config.WithHTTPClient(o.httpClient))
		}

		awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
		if err != nil {
			return nil, fmt.Errorf("failed to load AWS config: %w", err)
		}

		client = s3aws.NewFromConfig(awsCfg, func(so *s3aws.Options) {
			if cfg.Endpoint != "" {
				so.BaseEndpoint = aws.String(cfg.Endpoint)
			}
			so.UsePathStyle = cfg.ForcePathStyle
		})
	}

	return &Storage{
		client:         client,
		bucket:         cfg.Bucket,
		region:         cfg.Region,
		prefix:         strings.Trim(cfg.Prefix, "/"),
		endpoint:       cfg.Endpoint,
		baseURL:        cfg.BaseURL,
		forcePathStyle: cfg.ForcePathStyle,
		uploadTimeout:  o.uploadTimeout,
		cacheControl:   o.cacheControl,
	}, nil
}

func (s *Storage) key(p string) (string, error) {
	clean, err := storage.CleanPath(p)
	if err != nil {
		return "", err
	}
	if s.prefix == "" {
		return clean, nil
	}
	return s.prefix + "/" + clean, nil
}

// Put uploads data. The returned RelativePath excludes the key prefix.
func (s *Storage) Put(ctx context.Context, p string, data []byte, contentType string) (*storage.File, error) {
	if len(data) == 0 {
		return nil, storage.ErrEmptyFile
	}

	rel, err := storage.CleanPath(p)
	if err != nil {
		return nil, err
	}
	dir, name := path.Split(rel)
	rel = path.Join(dir, storage.SanitizeFilename(name))

	key, err := s.key(rel)
	if err != nil {
		return nil, err
	}

	if s.uploadTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.uploadTimeout)
		defer cancel()
	}

	if contentType == "" {
		contentType = storage.DetectContentType(rel, data)
	}

	input := &s3aws.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(contentType),
	}
	if s.cacheControl != "" {
		input.CacheControl = aws.String(s.cacheControl)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return nil, classifyS3Error(err, "upload file")
	}

	return &storage.File{
		Filename:     path.Base(rel),
		Size:         int64(len(data)),
		MIMEType:     contentType,
		RelativePath: rel,
	}, nil
}

// Exists reports whether the object exists. Any lookup error reads as false.
func (s *Storage) Exists(ctx context.Context, p string) bool {
	key, err := s.key(p)
	if err != nil {
		return false
	}
	_, err = s.client.HeadObject(ctx, &s3aws.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	return err == nil
}

// Delete removes the object, returning storage.ErrFileNotFound when it is absent.
func (s *Storage) Delete(ctx context.Context, p string) error {
	key, err := s.key(p)
	if err != nil {
		return err
	}

	// S3 deletes are idempotent; check first so missing files are reported.
	if _, err := s.client.HeadObject(ctx, &s3aws.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}); err != nil {
		return classifyS3Error(err, "check file")
	}

	if _, err := s.client.DeleteObject(ctx, &s3aws.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}); err != nil {
		return classifyS3Error(err, "delete file")
	}
	return nil
}

// URL returns the public URL of p:
//   - BaseURL set: {BaseURL}/{key}
//   - custom Endpoint: path-style or virtual-hosted-style on that endpoint
//   - AWS: https://{bucket}.s3.{region}.amazonaws.com/{key} (or path-style)
func (s *Storage) URL(p string) string {
	key := strings.TrimPrefix(p, "/")
	if s.prefix != "" {
		key = s.prefix + "/" + key
	}

	if s.baseURL != "" {
		return strings.TrimSuffix(s.baseURL, "/") + "/" + key
	}

	if s.endpoint != "" {
		endpoint := strings.TrimSuffix(s.endpoint, "/")
		scheme := "https://"
		if after, ok := strings.CutPrefix(endpoint, "http://"); ok {
			scheme = "http://"
			endpoint = after
		} else if after, ok := strings.CutPrefix(endpoint, "https://"); ok {
			endpoint = after
		}
		if s.forcePathStyle {
			return fmt.Sprintf("%s%s/%s/%s", scheme, endpoint, s.bucket, key)
		}
		return fmt.Sprintf("%s%s.%s/%s", scheme, s.bucket, endpoint, key)
	}

	if s.forcePathStyle {
		return fmt.Sprintf("https://s3.%s.amazonaws.com/%s/%s", s.region, s.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}
