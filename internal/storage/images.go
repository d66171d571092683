package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	_ "golang.org/x/image/webp"

	"github.com/BruksfildServices01/service-marketplace/internal/config"
	"github.com/BruksfildServices01/service-marketplace/internal/httperr"
)

const MaxImageBytes = 5 << 20

var ErrNotConfigured = errors.New("image storage is not configured")

var contentTypes = map[string]string{
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"gif":  "image/gif",
	"webp": "image/webp",
}

// ObjectPutter is the part of *s3.Client uploads need.
type ObjectPutter interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type ImageStore struct {
	client    ObjectPutter
	bucket    string
	publicURL string
	newKey    func(ext string) string
}

// NewS3ImageStore builds a store against AWS S3 or any S3 compatible endpoint.
func NewS3ImageStore(cfg config.S3Config) *ImageStore {
	opts := s3.Options{
		Region:      cfg.Region,
		Credentials: credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
		opts.UsePathStyle = true
	}

	publicURL := cfg.PublicURL
	if publicURL == "" {
		if cfg.Endpoint != "" {
			publicURL = strings.TrimRight(cfg.Endpoint, "/") + "/" + cfg.Bucket
		} else {
			publicURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
		}
	}

	return NewImageStore(s3.New(opts), cfg.Bucket, publicURL)
}

func NewImageStore(client ObjectPutter, bucket, publicURL string) *ImageStore {
	return &ImageStore{
		client:    client,
		bucket:    bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
		newKey: func(ext string) string {
			return "images/" + uuid.NewString() + "." + ext
		},
	}
}

type Uploaded struct {
	Key string `json:"image"`
	URL string `json:"url"`
}

// Upload validates data as an image and stores it under a fresh key.
func (s *ImageStore) Upload(ctx context.Context, data []byte) (*Uploaded, error) {
	if s == nil {
		return nil, ErrNotConfigured
	}

	format, err := DetectImage(data)
	if err != nil {
		return nil, err
	}

	key := s.newKey(format)
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(contentTypes[format]),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		return nil, httperr.Wrap(httperr.KindInternal, "image_upload_failed", "Could not store the image.", err)
	}

	return &Uploaded{Key: key, URL: s.publicURL + "/" + key}, nil
}

// DetectImage returns the decoded format name of data (jpeg, png, gif or webp).
func DetectImage(data []byte) (string, error) {
	if len(data) == 0 {
		return "", httperr.New(httperr.KindValidation, "empty_image", "Image file is empty.")
	}
	if len(data) > MaxImageBytes {
		return "", httperr.New(httperr.KindValidation, "image_too_large", "Image must be at most 5 MiB.")
	}

	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", httperr.New(httperr.KindValidation, "invalid_image", "File is not a supported image.")
	}
	if _, ok := contentTypes[format]; !ok {
		return "", httperr.New(httperr.KindValidation, "invalid_image", "File is not a supported image.")
	}
	return format, nil
}
