package cmd

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dendrascience/apkextract/organize"
	"github.com/dendrascience/apkextract/util"
)

func writeArchive(t *testing.T, path string, entries map[string]string) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	w := zip.NewWriter(f)
	for name, body := range entries {
		writer, err := w.Create(name)
		require.NoError(t, err)
		_, err = writer.Write([]byte(body))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func scenarioArchive(t *testing.T) (archive, dest string) {
	t.Helper()
	dir := t.TempDir()
	archive = filepath.Join(dir, "app.apk")
	writeArchive(t, archive, map[string]string{
		"icon.png":            "png",
		"sound.mp3":           "mp3",
		"data.bin":            "bin",
		"AndroidManifest.xml": "<manifest/>",
	})
	return archive, filepath.Join(dir, "extracted_apk")
}

func TestExtractCmd(t *testing.T) {
	archive, dest := scenarioArchive(t)

	out, err := execute(t, "extract", archive, "-o", dest, "--tree")
	require.NoError(t, err)

	assert.Contains(t, out, "Extracted 4 files")
	assert.Contains(t, out, "icon.png")
	assert.Contains(t, out, "sound.mp3")
	assert.Contains(t, out, "Files organized in: "+organize.OutputDir(dest))
	assert.Contains(t, out, "✓ Extraction complete!")

	manifest, err := organize.LoadManifest(organize.ManifestPath(dest))
	require.NoError(t, err)
	assert.Equal(t, []string{"icon.png"}, manifest.Images)
	assert.Equal(t, []string{"sound.mp3"}, manifest.Audio)
	assert.Equal(t, []string{"data.bin"}, manifest.Other)
}

func TestExtractCmd_MissingArchive(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(dir, "out")

	out, err := execute(t, "extract", filepath.Join(dir, "missing.apk"), "-o", dest)
	assert.ErrorIs(t, err, util.ErrArchiveNotFound)
	assert.Contains(t, out, "✗ Extraction failed!")
	assert.NoDirExists(t, dest)
}

func TestExtractCmd_ConfigFile(t *testing.T) {
	archive, dest := scenarioArchive(t)
	cfgPath := filepath.Join(t.TempDir(), "apkextract.toml")
	body := "archive_path = " + quote(archive) + "\noutput_dir = " + quote(dest) + "\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(body), 0o644))

	out, err := execute(t, "extract", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "✓ Extraction complete!")
	assert.FileExists(t, organize.ManifestPath(dest))
}

func TestExtractCmd_FlagsOverrideConfig(t *testing.T) {
	archive, dest := scenarioArchive(t)
	cfgPath := filepath.Join(t.TempDir(), "apkextract.toml")
	body := "archive_path = \"nowhere.apk\"\noutput_dir = \"nowhere\"\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(body), 0o644))

	_, err := execute(t, "extract", archive, "--config", cfgPath, "-o", dest)
	require.NoError(t, err)
	assert.FileExists(t, organize.ManifestPath(dest))
}

func TestOrganizeCmd(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "res"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "res", "bg.jpg"), []byte("jpg"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "classes.dex"), []byte("dex"), 0o644))

	out, err := execute(t, "organize", root)
	require.NoError(t, err)
	assert.Contains(t, out, "images")

	manifest, err := organize.LoadManifest(organize.ManifestPath(root))
	require.NoError(t, err)
	assert.Equal(t, []string{"res/bg.jpg"}, manifest.Images)
	assert.Equal(t, 1, manifest.Len())
}

func TestListCmd(t *testing.T) {
	archive, _ := scenarioArchive(t)

	out, err := execute(t, "list", archive)
	require.NoError(t, err)
	assert.Contains(t, out, "icon.png")
	assert.Contains(t, out, "data.bin")
	assert.NotContains(t, out, "AndroidManifest.xml")

	out, err = execute(t, "list", archive, "--excluded")
	require.NoError(t, err)
	assert.Contains(t, out, "AndroidManifest.xml")
	assert.Contains(t, out, "excluded")

	_, err = execute(t, "list", filepath.Join(t.TempDir(), "missing.apk"))
	assert.ErrorIs(t, err, util.ErrArchiveNotFound)
}

func TestTreeCmd(t *testing.T) {
	archive, dest := scenarioArchive(t)
	_, err := execute(t, "extract", archive, "-o", dest)
	require.NoError(t, err)

	out, err := execute(t, "tree", dest)
	require.NoError(t, err)
	assert.Contains(t, out, "images (1)")
	assert.Contains(t, out, "audio (1)")
	assert.Contains(t, out, "other (1)")
	assert.Contains(t, out, "icon.png")

	_, err = execute(t, "tree", t.TempDir())
	assert.Error(t, err)
}

func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "") + "'"
}
