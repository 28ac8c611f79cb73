package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// maxImageSize caps event image uploads at 5 MiB.
const maxImageSize = 5 << 20

// s3Client is an interface for testability.
type s3Client interface {
	PutObject(ctx context.Context, input *s3.PutObjectInput, opts ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Config holds S3-compatible object storage configuration.
type Config struct {
	Endpoint  string
	Bucket    string
	Region    string
	AccessKey string
	SecretKey string

	// PublicBaseURL is the prefix under which uploaded objects are served.
	// Defaults to <Endpoint>/<Bucket>.
	PublicBaseURL string
}

// Service uploads event images to the hosted object store and hands back
// their public URLs.
type Service struct {
	cfg    Config
	client s3Client
}

// NewService creates the storage service. With incomplete credentials the
// service reports unconfigured and every upload fails fast.
func NewService(cfg Config) *Service {
	s := &Service{cfg: cfg}
	if cfg.Bucket != "" && cfg.AccessKey != "" && cfg.SecretKey != "" {
		s.client = newS3Client(cfg)
	}
	return s
}

func newS3Client(cfg Config) *s3.Client {
	opts := s3.Options{
		Region:       cfg.Region,
		Credentials:  credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		UsePathStyle: true,
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
	}
	return s3.New(opts)
}

// Configured reports whether uploads can be attempted.
func (s *Service) Configured() bool {
	return s.client != nil
}

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// UploadImage stores an event image under the uploading user's prefix and
// returns its public URL. Content type and size are checked before any bytes
// leave the process.
func (s *Service) UploadImage(ctx context.Context, userID, filename, contentType string, r io.Reader) (string, error) {
	if !s.Configured() {
		return "", fmt.Errorf("image storage not configured")
	}

	fallbackExt, ok := imageExtensions[contentType]
	if !ok {
		return "", fmt.Errorf("unsupported image type %q", contentType)
	}

	data, err := io.ReadAll(io.LimitReader(r, maxImageSize+1))
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}
	if len(data) > maxImageSize {
		return "", fmt.Errorf("image exceeds %d byte limit", maxImageSize)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("empty image upload")
	}

	ext := strings.ToLower(path.Ext(filename))
	if ext == "" {
		ext = fallbackExt
	}
	key := fmt.Sprintf("events/%s/%s%s", userID, uuid.NewString(), ext)

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.cfg.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("upload image: %w", err)
	}

	return s.publicURL(key), nil
}

func (s *Service) publicURL(key string) string {
	base := s.cfg.PublicBaseURL
	if base == "" {
		base = strings.TrimSuffix(s.cfg.Endpoint, "/") + "/" + s.cfg.Bucket
	}
	return strings.TrimSuffix(base, "/") + "/" + key
}
