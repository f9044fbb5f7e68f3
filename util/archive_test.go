package util

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type zipEntry struct {
	name string
	body string
}

func writeZip(t *testing.T, path string, entries []zipEntry) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	w := zip.NewWriter(f)
	for _, e := range entries {
		writer, err := w.Create(e.name)
		require.NoError(t, err)
		_, err = writer.Write([]byte(e.body))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
}

func TestStatArchive(t *testing.T) {
	dir := t.TempDir()
	archive := filepath.Join(dir, "app.apk")
	writeZip(t, archive, []zipEntry{{name: "icon.png", body: "png"}})

	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{name: "existing archive", path: archive},
		{name: "missing archive", path: filepath.Join(dir, "missing.apk"), wantErr: ErrArchiveNotFound},
		{name: "directory instead of archive", path: dir, wantErr: ErrExpectedFile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := StatArchive(tt.path)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestListArchive(t *testing.T) {
	archive := filepath.Join(t.TempDir(), "app.apk")
	writeZip(t, archive, []zipEntry{
		{name: "res/", body: ""},
		{name: "res/icon.png", body: "png-bytes"},
		{name: "classes.dex", body: "dex"},
	})

	entries, err := ListArchive(archive)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "res/", entries[0].Name)
	assert.True(t, entries[0].IsDir)
	assert.Equal(t, "res/icon.png", entries[1].Name)
	assert.Equal(t, uint64(len("png-bytes")), entries[1].Size)
	assert.False(t, entries[1].IsDir)
	assert.Equal(t, "classes.dex", entries[2].Name)
}

func TestListArchive_NotAZip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.apk")
	require.NoError(t, os.WriteFile(path, []byte("definitely not a zip"), 0o644))

	_, err := ListArchive(path)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrArchiveNotFound)
}

func TestCountFilesInArchive(t *testing.T) {
	archive := filepath.Join(t.TempDir(), "app.apk")
	writeZip(t, archive, []zipEntry{
		{name: "assets/", body: ""},
		{name: "assets/a.mp3", body: "a"},
		{name: "assets/b.mp3", body: "b"},
		{name: "AndroidManifest.xml", body: "<manifest/>"},
	})

	count, err := CountFilesInArchive(archive)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	_, err = CountFilesInArchive(filepath.Join(t.TempDir(), "nope.apk"))
	assert.ErrorIs(t, err, ErrArchiveNotFound)
}
