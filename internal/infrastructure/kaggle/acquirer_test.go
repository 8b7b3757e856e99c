package kaggle

import (
	"archive/zip"
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"sketch-loader/internal/domain/entity"
)

func zipOf(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, body := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(body))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestAcquirer_DownloadsAndCaches(t *testing.T) {
	archive := zipOf(t, map[string]string{
		"drawings/cat/1.png": "a",
		"drawings/dog/1.png": "b",
	})
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		require.Equal(t, "/datasets/download/owner/sketches", r.URL.Path)
		user, key, ok := r.BasicAuth()
		require.True(t, ok)
		require.Equal(t, "alice", user)
		require.Equal(t, "secret", key)
		w.Write(archive)
	}))
	defer srv.Close()

	cache := t.TempDir()
	acq := NewAcquirer(srv.URL, "alice", "secret", cache)

	path, err := acq.Acquire(context.Background(), "owner/sketches")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(cache, "datasets", "owner", "sketches"), path)

	data, err := os.ReadFile(filepath.Join(path, "drawings", "dog", "1.png"))
	require.NoError(t, err)
	require.Equal(t, "b", string(data))

	_, err = os.Stat(path + ".zip")
	require.True(t, os.IsNotExist(err))

	again, err := acq.Acquire(context.Background(), "owner/sketches")
	require.NoError(t, err)
	require.Equal(t, path, again)
	require.Equal(t, 1, hits)
}

func TestAcquirer_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewAcquirer(srv.URL, "", "", t.TempDir()).Acquire(context.Background(), "owner/missing")
	require.ErrorIs(t, err, entity.ErrAcquisition)
	require.Contains(t, err.Error(), "404")
}

func TestAcquirer_RejectsEscapingEntries(t *testing.T) {
	archive := zipOf(t, map[string]string{"../evil.png": "x"})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(archive)
	}))
	defer srv.Close()

	cache := t.TempDir()
	_, err := NewAcquirer(srv.URL, "", "", cache).Acquire(context.Background(), "owner/evil")
	require.ErrorIs(t, err, entity.ErrAcquisition)

	_, err = os.Stat(filepath.Join(cache, "datasets", "owner", "evil.png"))
	require.True(t, os.IsNotExist(err))
}

func TestParseID(t *testing.T) {
	owner, name, err := ParseID("gergvincze/simple-hand-drawn-and-digitized-images")
	require.NoError(t, err)
	require.Equal(t, "gergvincze", owner)
	require.Equal(t, "simple-hand-drawn-and-digitized-images", name)

	for _, id := range []string{"", "owner", "owner/", "/name", "a/b/c", "../x"} {
		_, _, err := ParseID(id)
		require.ErrorIs(t, err, entity.ErrAcquisition, id)
	}
}
