package provider

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harshit-shukla-1/secret-santa/internal/domain"
	"github.com/harshit-shukla-1/secret-santa/internal/infra"
)

type fakePresign struct {
	putURL string
	getURL string
	err    error

	lastPut *s3.PutObjectInput
	lastGet *s3.GetObjectInput
}

func (f *fakePresign) PresignPutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.PresignOptions)) (*signedRequest, error) {
	f.lastPut = in
	if f.err != nil {
		return nil, f.err
	}
	return &signedRequest{URL: f.putURL}, nil
}

func (f *fakePresign) PresignGetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.PresignOptions)) (*signedRequest, error) {
	f.lastGet = in
	if f.err != nil {
		return nil, f.err
	}
	return &signedRequest{URL: f.getURL}, nil
}

func newTestStore(fp *fakePresign) *BlobStore {
	return &BlobStore{
		cfg:      &infra.Config{S3Bucket: "santa-gifts"},
		presign:  fp,
		maxBytes: 5 << 20,
	}
}

func TestIssueUpload(t *testing.T) {
	fp := &fakePresign{putURL: "https://minio.local/santa-gifts/signed"}
	store := newTestStore(fp)

	ticket, err := store.IssueUpload(context.Background(), "carol", "image/png", 1024)
	require.NoError(t, err)
	assert.Equal(t, "https://minio.local/santa-gifts/signed", ticket.UploadURL)
	assert.Equal(t, int64(5<<20), ticket.MaxBytes)
	assert.True(t, strings.HasPrefix(ticket.Key, "attachments/"))
	assert.True(t, strings.HasSuffix(ticket.Key, ".png"))
	assert.Contains(t, ticket.Key, "/carol/")

	require.NotNil(t, fp.lastPut)
	assert.Equal(t, "santa-gifts", *fp.lastPut.Bucket)
	assert.Equal(t, int64(1024), *fp.lastPut.ContentLength)
}

func TestIssueUpload_Rejections(t *testing.T) {
	store := newTestStore(&fakePresign{putURL: "https://x"})

	tests := []struct {
		name        string
		contentType string
		size        int64
	}{
		{"zero size", "image/png", 0},
		{"negative size", "image/png", -1},
		{"over limit", "image/png", (5 << 20) + 1},
		{"unsupported type", "application/pdf", 1024},
		{"video not allowed", "video/mp4", 1024},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := store.IssueUpload(context.Background(), "carol", tt.contentType, tt.size)
			require.Error(t, err)
			var appErr *domain.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
		})
	}
}

func TestIssueUpload_AtLimitAllowed(t *testing.T) {
	store := newTestStore(&fakePresign{putURL: "https://x"})

	_, err := store.IssueUpload(context.Background(), "carol", "audio/webm", 5<<20)
	require.NoError(t, err)
}

func TestDownloadURL(t *testing.T) {
	fp := &fakePresign{getURL: "https://minio.local/get"}
	store := newTestStore(fp)

	url, err := store.DownloadURL(context.Background(), "attachments/2026/08/31/carol/abc.png")
	require.NoError(t, err)
	assert.Equal(t, "https://minio.local/get", url)

	_, err = store.DownloadURL(context.Background(), "")
	require.Error(t, err)

	_, err = store.DownloadURL(context.Background(), "../secrets")
	require.Error(t, err)
}

func TestIssueUpload_PresignFailure(t *testing.T) {
	store := newTestStore(&fakePresign{err: errors.New("s3 unreachable")})

	_, err := store.IssueUpload(context.Background(), "carol", "image/png", 1024)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "presign put")
}
