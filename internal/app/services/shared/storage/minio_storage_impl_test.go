package storage

import (
	"appointment-service/internal/pkg/constvars"
	"appointment-service/internal/pkg/exceptions"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	method string
	path   string
	body   string
}

type fakeObjectStore struct {
	mu       sync.Mutex
	requests []recordedRequest
	deny     bool
}

func (f *fakeObjectStore) denyAll() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deny = true
}

func (f *fakeObjectStore) recorded() []recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]recordedRequest(nil), f.requests...)
}

func (f *fakeObjectStore) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	f.mu.Lock()
	f.requests = append(f.requests, recordedRequest{method: r.Method, path: r.URL.Path, body: string(body)})
	deny := f.deny
	f.mu.Unlock()

	if deny {
		w.Header().Set(constvars.HeaderContentType, "application/xml")
		w.WriteHeader(http.StatusForbidden)
		_, _ = io.WriteString(w, `<?xml version="1.0" encoding="UTF-8"?><Error><Code>AccessDenied</Code><Message>Access Denied.</Message></Error>`)
		return
	}

	switch r.Method {
	case http.MethodPut:
		w.Header().Set("ETag", `"d41d8cd98f00b204e9800998ecf8427e"`)
		w.WriteHeader(http.StatusOK)
	case http.MethodDelete:
		w.WriteHeader(http.StatusNoContent)
	default:
		w.WriteHeader(http.StatusNotImplemented)
	}
}

func newTestStorage(t *testing.T) (*fakeObjectStore, *minioStorage) {
	t.Helper()
	store := &fakeObjectStore{}
	server := httptest.NewServer(store)
	t.Cleanup(server.Close)

	client, err := minio.New(strings.TrimPrefix(server.URL, "http://"), &minio.Options{
		Creds:  credentials.NewStaticV4("access", "secret", ""),
		Region: "us-east-1",
	})
	require.NoError(t, err)
	return store, &minioStorage{MinioClient: client}
}

func TestMinioStorage_UploadObject(t *testing.T) {
	store, storage := newTestStorage(t)

	objectName, err := storage.UploadObject(context.Background(), "appointment-exports", "history_p1.ics", constvars.MIMETextCalendar, []byte("BEGIN:VCALENDAR"))
	require.NoError(t, err)
	assert.Equal(t, "history_p1.ics", objectName)

	requests := store.recorded()
	require.Len(t, requests, 1)
	assert.Equal(t, http.MethodPut, requests[0].method)
	assert.Equal(t, "/appointment-exports/history_p1.ics", requests[0].path)
	assert.Contains(t, requests[0].body, "BEGIN:VCALENDAR")
}

func TestMinioStorage_UploadObjectDenied(t *testing.T) {
	store, storage := newTestStorage(t)
	store.denyAll()

	_, err := storage.UploadObject(context.Background(), "appointment-exports", "history_p1.ics", constvars.MIMETextCalendar, []byte("x"))

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusInternalServerError, customErr.StatusCode)
}

func TestMinioStorage_GetObjectUrlWithExpiryTime(t *testing.T) {
	store, storage := newTestStorage(t)

	url, err := storage.GetObjectUrlWithExpiryTime(context.Background(), "appointment-exports", "history_p1.ics", 2*time.Hour)
	require.NoError(t, err)
	assert.Contains(t, url, "/appointment-exports/history_p1.ics")
	assert.Contains(t, url, "X-Amz-Expires=7200")
	assert.Contains(t, url, "X-Amz-Signature=")
	assert.Empty(t, store.recorded(), "presigning happens offline")
}

func TestMinioStorage_DeleteObject(t *testing.T) {
	store, storage := newTestStorage(t)

	require.NoError(t, storage.DeleteObject(context.Background(), "appointment-exports", "history_p1.ics"))
	requests := store.recorded()
	require.Len(t, requests, 1)
	assert.Equal(t, http.MethodDelete, requests[0].method)

	store.denyAll()
	assert.Error(t, storage.DeleteObject(context.Background(), "appointment-exports", "history_p1.ics"))
}
