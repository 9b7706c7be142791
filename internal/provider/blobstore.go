package provider

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/harshit-shukla-1/secret-santa/internal/domain"
	"github.com/harshit-shukla-1/secret-santa/internal/infra"
)

// Presigned URL lifetime for uploads and downloads.
const presignExpiry = 15 * time.Minute

var allowedContentTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
	"audio/mpeg": ".mp3",
	"audio/ogg":  ".ogg",
	"audio/webm": ".webm",
	"audio/wav":  ".wav",
}

// UploadTicket is a presigned PUT grant for a single attachment upload.
type UploadTicket struct {
	Key       string    `json:"key"`
	UploadURL string    `json:"upload_url"`
	ExpiresAt time.Time `json:"expires_at"`
	MaxBytes  int64     `json:"max_bytes"`
}

// BlobStore issues presigned S3 URLs for message attachments
// (images and voice notes). Works against AWS S3 or MinIO.
type BlobStore struct {
	cfg      *infra.Config
	presign  presignAPI
	maxBytes int64
}

// presignAPI is the subset of s3.PresignClient the store uses.
type presignAPI interface {
	PresignPutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*signedRequest, error)
	PresignGetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*signedRequest, error)
}

type signedRequest struct {
	URL string
}

type presignClientAdapter struct {
	pc *s3.PresignClient
}

func (a *presignClientAdapter) PresignPutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*signedRequest, error) {
	req, err := a.pc.PresignPutObject(ctx, in, optFns...)
	if err != nil {
		return nil, err
	}
	return &signedRequest{URL: req.URL}, nil
}

func (a *presignClientAdapter) PresignGetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*signedRequest, error) {
	req, err := a.pc.PresignGetObject(ctx, in, optFns...)
	if err != nil {
		return nil, err
	}
	return &signedRequest{URL: req.URL}, nil
}

// NewBlobStore builds the S3 presign client from config.
func NewBlobStore(ctx context.Context, cfg *infra.Config) (*BlobStore, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3BaseEndpoint)
			o.UsePathStyle = true
		}
	})

	return &BlobStore{
		cfg:      cfg,
		presign:  &presignClientAdapter{pc: s3.NewPresignClient(client)},
		maxBytes: cfg.MaxUploadBytes,
	}, nil
}

// IssueUpload validates the declared size and content type, then returns
// a presigned PUT ticket. The size check happens before any S3 call so
// oversized requests never reach storage.
func (b *BlobStore) IssueUpload(ctx context.Context, username, contentType string, sizeBytes int64) (*UploadTicket, error) {
	if sizeBytes <= 0 {
		return nil, domain.ErrValidation("size_bytes must be positive")
	}
	if sizeBytes > b.maxBytes {
		return nil, domain.ErrValidation(fmt.Sprintf("attachment exceeds %d byte limit", b.maxBytes))
	}
	ext, ok := allowedContentTypes[strings.ToLower(contentType)]
	if !ok {
		return nil, domain.ErrValidation("unsupported content type: " + contentType)
	}

	key := storageKey(username, ext)
	req, err := b.presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(b.cfg.S3Bucket),
		Key:           aws.String(key),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(sizeBytes),
	}, s3.WithPresignExpires(presignExpiry))
	if err != nil {
		return nil, fmt.Errorf("presign put: %w", err)
	}

	return &UploadTicket{
		Key:       key,
		UploadURL: req.URL,
		ExpiresAt: time.Now().Add(presignExpiry),
		MaxBytes:  b.maxBytes,
	}, nil
}

// DownloadURL returns a presigned GET URL for a previously uploaded key.
func (b *BlobStore) DownloadURL(ctx context.Context, key string) (string, error) {
	if key == "" || strings.Contains(key, "..") {
		return "", domain.ErrValidation("invalid attachment key")
	}
	req, err := b.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(b.cfg.S3Bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(presignExpiry))
	if err != nil {
		return "", fmt.Errorf("presign get: %w", err)
	}
	return req.URL, nil
}

func storageKey(username, ext string) string {
	d := time.Now()
	return path.Join("attachments",
		fmt.Sprintf("%d/%02d/%02d", d.Year(), d.Month(), d.Day()),
		username,
		uuid.NewString()+ext)
}
