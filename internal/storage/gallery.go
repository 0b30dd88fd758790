package storage

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chai2010/webp"
	"github.com/google/uuid"
	"golang.org/x/image/draw"

	"github.com/velora-studio/salon-scheduler/internal/config"
)

const (
	maxImageWidth = 1600
	webpQuality   = 82
)

// GalleryStorage keeps gallery photos in an S3 bucket. Every upload is
// re-encoded as webp so the site serves one predictable format.
type GalleryStorage struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

func NewGalleryStorage(cfg *config.Config) *GalleryStorage {
	awsCfg := aws.Config{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		),
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})

	publicURL := cfg.S3PublicURL
	if publicURL == "" {
		publicURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.S3Bucket, cfg.S3Region)
	}

	return &GalleryStorage{
		client:    client,
		bucket:    cfg.S3Bucket,
		publicURL: publicURL,
	}
}

// Upload decodes, downsizes and webp-encodes the image, then stores it
// under a fresh key. Returns the object key and its public URL.
func (s *GalleryStorage) Upload(ctx context.Context, r io.Reader) (string, string, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return "", "", fmt.Errorf("decode image: %w", err)
	}

	src = downsize(src)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, src, &webp.Options{Quality: webpQuality}); err != nil {
		return "", "", fmt.Errorf("encode webp: %w", err)
	}

	key := fmt.Sprintf("gallery/%s.webp", uuid.NewString())

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", "", fmt.Errorf("put object: %w", err)
	}

	return key, fmt.Sprintf("%s/%s", s.publicURL, key), nil
}

func (s *GalleryStorage) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	return err
}

func downsize(src image.Image) image.Image {
	bounds := src.Bounds()
	if bounds.Dx() <= maxImageWidth {
		return src
	}

	h := bounds.Dy() * maxImageWidth / bounds.Dx()
	dst := image.NewRGBA(image.Rect(0, 0, maxImageWidth, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
	return dst
}
