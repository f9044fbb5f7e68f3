package util

import (
	"archive/zip"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"
)

// ArchiveEntry describes a single member of a ZIP archive.
type ArchiveEntry struct {
	Name     string    `json:"name"`
	Size     uint64    `json:"size"`
	Modified time.Time `json:"modified"`
	IsDir    bool      `json:"is_dir"`
}

// StatArchive reports whether path names an existing archive file.
// A missing path yields ErrArchiveNotFound and a directory yields ErrExpectedFile.
func StatArchive(path string) error {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrArchiveNotFound, path)
	}
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s", ErrExpectedFile, path)
	}
	return nil
}

// ListArchive returns the entries of the archive at path in archive order.
func ListArchive(path string) ([]ArchiveEntry, error) {
	if err := StatArchive(path); err != nil {
		return nil, err
	}
	// insecure names are still listed; Extract is what refuses them
	zrc, err := zip.OpenReader(path)
	if err != nil && !errors.Is(err, zip.ErrInsecurePath) {
		return nil, fmt.Errorf("open archive %s: %w", path, err)
	}
	defer zrc.Close()

	entries := make([]ArchiveEntry, 0, len(zrc.File))
	for _, f := range zrc.File {
		entries = append(entries, ArchiveEntry{
			Name:     f.Name,
			Size:     f.UncompressedSize64,
			Modified: f.Modified,
			IsDir:    f.FileInfo().IsDir(),
		})
	}
	return entries, nil
}

// CountFilesInArchive returns the number of non-directory entries.
func CountFilesInArchive(path string) (int, error) {
	entries, err := ListArchive(path)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, e := range entries {
		if !e.IsDir {
			count++
		}
	}
	return count, nil
}
