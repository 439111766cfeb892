package s3_test

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gstinvoice/internal/config"
	"gstinvoice/internal/port"
	s3storage "gstinvoice/internal/storage/s3"
)

type recordedRequest struct {
	method      string
	path        string
	contentType string
	disposition string
	body        []byte
}

// fakeS3 answers just enough of the S3 REST API for the archive calls.
type fakeS3 struct {
	mu       sync.Mutex
	requests []recordedRequest
}

func (f *fakeS3) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	f.mu.Lock()
	f.requests = append(f.requests, recordedRequest{
		method:      r.Method,
		path:        r.URL.Path,
		contentType: r.Header.Get("Content-Type"),
		disposition: r.Header.Get("Content-Disposition"),
		body:        body,
	})
	f.mu.Unlock()

	switch {
	case strings.HasSuffix(r.URL.Path, "/denied.pdf"):
		w.Header().Set("Content-Type", "application/xml")
		w.WriteHeader(http.StatusForbidden)
		_, _ = io.WriteString(w, `<?xml version="1.0" encoding="UTF-8"?><Error><Code>AccessDenied</Code><Message>Access Denied</Message></Error>`)
	case r.Method == http.MethodPut:
		w.Header().Set("ETag", `"d41d8cd98f00b204e9800998ecf8427e"`)
		w.WriteHeader(http.StatusOK)
	case r.Method == http.MethodDelete:
		w.WriteHeader(http.StatusNoContent)
	default:
		w.WriteHeader(http.StatusNotImplemented)
	}
}

func (f *fakeS3) last(t *testing.T) recordedRequest {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.requests)
	return f.requests[len(f.requests)-1]
}

func newArchive(t *testing.T) (port.ObjectStorage, *fakeS3, string) {
	t.Helper()
	t.Setenv("AWS_CONFIG_FILE", filepath.Join(t.TempDir(), "config"))
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", filepath.Join(t.TempDir(), "credentials"))

	fake := &fakeS3{}
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	store, err := s3storage.NewArchiveStore(&config.S3Config{
		Region:    "ap-south-1",
		Bucket:    "archive",
		Endpoint:  srv.URL,
		AccessKey: "test",
		SecretKey: "test",
	})
	require.NoError(t, err)
	return store, fake, srv.URL
}

func TestNewArchiveStore_RequiresBucket(t *testing.T) {
	_, err := s3storage.NewArchiveStore(&config.S3Config{Region: "ap-south-1"})
	assert.Error(t, err)
}

func TestArchiveStore_Upload_PathStyle(t *testing.T) {
	store, fake, _ := newArchive(t)

	out, err := store.Upload(context.Background(), port.UploadInput{
		Bucket: "archive",
		Key:    "invoices/24-25-007.pdf",
		Body:   bytes.NewReader([]byte("%PDF-1.3")),
	})
	require.NoError(t, err)
	assert.Equal(t, `"d41d8cd98f00b204e9800998ecf8427e"`, out.ETag)

	req := fake.last(t)
	assert.Equal(t, http.MethodPut, req.method)
	assert.Equal(t, "/archive/invoices/24-25-007.pdf", req.path)
	assert.Equal(t, "application/pdf", req.contentType)
	assert.Equal(t, `inline; filename="24-25-007.pdf"`, req.disposition)
	assert.Contains(t, string(req.body), "%PDF-1.3")
}

func TestArchiveStore_Upload_Error(t *testing.T) {
	store, _, _ := newArchive(t)

	_, err := store.Upload(context.Background(), port.UploadInput{
		Bucket:      "archive",
		Key:         "invoices/denied.pdf",
		Body:        bytes.NewReader([]byte("%PDF-1.3")),
		ContentType: "application/pdf",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "s3 upload invoices/denied.pdf")
}

func TestArchiveStore_Delete(t *testing.T) {
	store, fake, _ := newArchive(t)

	require.NoError(t, store.Delete(context.Background(), "archive", "invoices/24-25-007.pdf"))

	req := fake.last(t)
	assert.Equal(t, http.MethodDelete, req.method)
	assert.Equal(t, "/archive/invoices/24-25-007.pdf", req.path)
}

func TestArchiveStore_GetPresignedURL(t *testing.T) {
	store, fake, endpoint := newArchive(t)

	url, err := store.GetPresignedURL(context.Background(), "archive", "invoices/24-25-007.pdf", 600)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, endpoint+"/archive/invoices/24-25-007.pdf?"), url)
	assert.Contains(t, url, "X-Amz-Expires=600")
	assert.Contains(t, url, "response-content-disposition=attachment")
	assert.Empty(t, fake.requests, "presigning must not call the endpoint")
}

func TestArchiveStore_GetPresignedURL_DefaultExpiry(t *testing.T) {
	store, _, _ := newArchive(t)

	url, err := store.GetPresignedURL(context.Background(), "archive", "invoices/a.pdf", 0)
	require.NoError(t, err)
	assert.Contains(t, url, "X-Amz-Expires=900")
}
