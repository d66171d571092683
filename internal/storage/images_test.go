package storage

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/service-marketplace/internal/config"
	"github.com/BruksfildServices01/service-marketplace/internal/httperr"
)

type fakePutter struct {
	in   *s3.PutObjectInput
	body []byte
	err  error
}

func (f *fakePutter) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.in = in
	if in.Body != nil {
		f.body, _ = io.ReadAll(in.Body)
	}
	if f.err != nil {
		return nil, f.err
	}
	return &s3.PutObjectOutput{}, nil
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestDetectImage(t *testing.T) {
	format, err := DetectImage(pngBytes(t))
	require.NoError(t, err)
	require.Equal(t, "png", format)

	_, err = DetectImage(nil)
	require.True(t, httperr.IsBusiness(err, "empty_image"))

	_, err = DetectImage([]byte("definitely not an image"))
	require.True(t, httperr.IsBusiness(err, "invalid_image"))

	_, err = DetectImage(make([]byte, MaxImageBytes+1))
	require.True(t, httperr.IsBusiness(err, "image_too_large"))
}

func TestUpload(t *testing.T) {
	putter := &fakePutter{}
	store := NewImageStore(putter, "bucket", "https://cdn.example/")
	store.newKey = func(ext string) string { return "images/fixed." + ext }

	data := pngBytes(t)
	out, err := store.Upload(context.Background(), data)
	require.NoError(t, err)
	require.Equal(t, "images/fixed.png", out.Key)
	require.Equal(t, "https://cdn.example/images/fixed.png", out.URL)
	require.LessOrEqual(t, len(out.Key), 75)

	require.Equal(t, "bucket", aws.ToString(putter.in.Bucket))
	require.Equal(t, "image/png", aws.ToString(putter.in.ContentType))
	require.Equal(t, data, putter.body)

	putter.err = errors.New("access denied")
	_, err = store.Upload(context.Background(), data)
	require.True(t, httperr.IsBusiness(err, "image_upload_failed"))

	_, err = store.Upload(context.Background(), []byte("text"))
	require.True(t, httperr.IsBusiness(err, "invalid_image"))
}

func TestKeyLength(t *testing.T) {
	store := NewImageStore(&fakePutter{}, "b", "")
	// images/ + 36 char uuid + .webp
	require.LessOrEqual(t, len(store.newKey("webp")), 75)
}

func TestNilStore(t *testing.T) {
	var store *ImageStore
	_, err := store.Upload(context.Background(), nil)
	require.ErrorIs(t, err, ErrNotConfigured)
}

func TestNewS3ImageStorePublicURL(t *testing.T) {
	s := NewS3ImageStore(config.S3Config{Bucket: "b", Region: "us-east-1", AccessKey: "k", SecretKey: "s"})
	require.Equal(t, "https://b.s3.us-east-1.amazonaws.com", s.publicURL)

	s = NewS3ImageStore(config.S3Config{Bucket: "b", Region: "us-east-1", Endpoint: "http://minio:9000/", AccessKey: "k", SecretKey: "s"})
	require.Equal(t, "http://minio:9000/b", s.publicURL)
}
