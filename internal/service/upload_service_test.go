package service

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/fmontiron/portfolio-api/pkg/errors"
	"github.com/fmontiron/portfolio-api/pkg/storage"
)

func multipartImage(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))
	return req.MultipartForm.File["image"][0]
}

func newUploadService(t *testing.T, maxSize int64) (*UploadService, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := storage.NewLocalStorage(dir)
	require.NoError(t, err)
	return NewUploadService(store, "/uploads", maxSize, nil), dir
}

func TestUploadServiceSaveStoresFile(t *testing.T) {
	svc, dir := newUploadService(t, 1024)

	url, err := svc.Save(multipartImage(t, "avatar.PNG", "fake-png-bytes"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/uploads/"))
	assert.True(t, strings.HasSuffix(url, ".png"), "extension is normalised to lower case")
	assert.NotContains(t, url, "avatar", "stored name never echoes client input")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	stored, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	assert.Equal(t, "fake-png-bytes", string(stored))
}

func TestUploadServiceRejectsUnknownExtension(t *testing.T) {
	svc, dir := newUploadService(t, 1024)

	_, err := svc.Save(multipartImage(t, "payload.exe", "nope"))
	require.Error(t, err)
	assert.Equal(t, 400, appErrors.FromError(err).Status)

	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}

func TestUploadServiceRejectsOversizedFile(t *testing.T) {
	svc, _ := newUploadService(t, 4)

	_, err := svc.Save(multipartImage(t, "big.jpg", "way too many bytes"))
	require.Error(t, err)
	assert.Equal(t, 413, appErrors.FromError(err).Status)
}

func TestUploadServiceRequiresFile(t *testing.T) {
	svc, _ := newUploadService(t, 1024)

	_, err := svc.Save(nil)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}
