package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorageSaveAndGetURL(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStorage(Config{BasePath: dir, BaseURL: "/files"})
	require.NoError(t, err)

	ctx := context.Background()
	err = store.Save(ctx, "resumes/u1/cv.pdf", strings.NewReader("%PDF-1.4 data"), "application/pdf")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "resumes", "u1", "cv.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 data", string(data))

	url, err := store.GetURL(ctx, "resumes/u1/cv.pdf")
	require.NoError(t, err)
	assert.Equal(t, "/files/resumes/u1/cv.pdf", url)
}

func TestLocalStorageDefaultsURLBase(t *testing.T) {
	store, err := NewLocalStorage(Config{BasePath: t.TempDir()})
	require.NoError(t, err)

	url, err := store.GetURL(context.Background(), "a/b.pdf")
	require.NoError(t, err)
	assert.Equal(t, "/files/a/b.pdf", url)
}

func TestNewStorageRejectsUnknownType(t *testing.T) {
	_, err := NewStorage(Config{Type: "carrier-pigeon"})
	assert.Error(t, err)
}
