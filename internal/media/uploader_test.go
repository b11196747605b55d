package media

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidora/accounts/internal/config"
	"github.com/vidora/accounts/internal/logger"
)

func stageTestFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "avatar.png")
	require.NoError(t, os.WriteFile(path, []byte("fake png bytes"), 0o600))
	return path
}

func newTestUploader(t *testing.T, url string) Uploader {
	t.Helper()
	u, err := NewHTTPUploader(config.Media{
		UploadURL:      url,
		APIKey:         "test-api-key",
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)
	return u
}

func TestUpload_Success(t *testing.T) {
	var gotAPIKey string
	var gotFilename string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAPIKey = r.Header.Get("X-Api-Key")

		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotFilename = r.FormValue("filename")

		file, _, err := r.FormFile("file")
		require.NoError(t, err)
		file.Close()

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"url":"https://media.example.com/assets/avatar.png"}`))
	}))
	defer srv.Close()

	uploader := newTestUploader(t, srv.URL)
	staged := stageTestFile(t)

	url, err := uploader.Upload(context.Background(), staged)
	require.NoError(t, err)
	assert.Equal(t, "https://media.example.com/assets/avatar.png", url)
	assert.Equal(t, "test-api-key", gotAPIKey)
	assert.Equal(t, "avatar.png", gotFilename)

	_, err = os.Stat(staged)
	assert.True(t, os.IsNotExist(err), "staged file must be removed after a successful upload")
}

func TestUpload_HostRejects(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusForbidden)
	}))
	defer srv.Close()

	uploader := newTestUploader(t, srv.URL)
	staged := stageTestFile(t)

	_, err := uploader.Upload(context.Background(), staged)
	require.ErrorIs(t, err, ErrUploadFailed)

	_, statErr := os.Stat(staged)
	assert.NoError(t, statErr, "staged file must survive a failed upload for the janitor")
}

func TestUpload_EmptyURLInResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	uploader := newTestUploader(t, srv.URL)

	_, err := uploader.Upload(context.Background(), stageTestFile(t))
	require.ErrorIs(t, err, ErrUploadFailed)
}

func TestUpload_NoFile(t *testing.T) {
	uploader := newTestUploader(t, "https://media.example.com/upload")

	_, err := uploader.Upload(context.Background(), "")
	require.ErrorIs(t, err, ErrNoFileProvided)

	_, err = uploader.Upload(context.Background(), "/does/not/exist.png")
	require.ErrorIs(t, err, ErrNoFileProvided)
}

func TestNewHTTPUploader_InvalidURL(t *testing.T) {
	_, err := NewHTTPUploader(config.Media{UploadURL: ""}, logger.Nop())
	require.Error(t, err)
}

func TestNormalizeUploadURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "https://media.example.com/upload", want: "https://media.example.com/upload"},
		{in: "media.example.com/upload", want: "https://media.example.com/upload"},
		{in: "https://media.example.com/upload/", want: "https://media.example.com/upload"},
	}

	for _, tt := range tests {
		got, err := normalizeUploadURL(tt.in)
		require.NoError(t, err, "url %q", tt.in)
		assert.Equal(t, tt.want, got, "url %q", tt.in)
	}
}
