package extract

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/apex/log"
	"github.com/gofrs/flock"

	"github.com/dendrascience/apkextract/config"
	"github.com/dendrascience/apkextract/organize"
	"github.com/dendrascience/apkextract/util"
)

// lockName is created inside the organizer subtree, which walks skip.
const lockName = ".lock"

// Stats summarizes what Extract wrote.
type Stats struct {
	Entries int    `json:"entries"` // archive entries processed, directories included
	Files   int    `json:"files"`   // regular files written
	Bytes   uint64 `json:"bytes"`   // uncompressed bytes written
}

// Result is the outcome of a successful Run.
type Result struct {
	Archive   string
	OutputDir string
	Stats     Stats
	Manifest  organize.Manifest
}

// Run extracts cfg.ArchivePath into cfg.OutputDir and organizes the result.
//
// The archive is checked before anything is created on disk, so a missing
// archive (util.ErrArchiveNotFound) leaves no directories behind. Any later
// failure is returned as is; partially written files are left in place.
func Run(cfg config.Config) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	if err := util.StatArchive(cfg.ArchivePath); err != nil {
		return Result{}, err
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return Result{}, fmt.Errorf("create output directory: %w", err)
	}

	lock, err := lockDestination(cfg.OutputDir)
	if err != nil {
		return Result{}, err
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			log.WithError(err).WithField("dest", cfg.OutputDir).Debug("release lock")
		}
	}()

	total, err := util.CountFilesInArchive(cfg.ArchivePath)
	if err != nil {
		return Result{}, err
	}

	ctx := log.WithFields(log.Fields{
		"archive": filepath.Base(cfg.ArchivePath),
		"dest":    cfg.OutputDir,
	})
	ctx.WithField("files", total).Info("extracting")

	stats, err := Extract(cfg.ArchivePath, cfg.OutputDir)
	if err != nil {
		return Result{}, err
	}
	ctx.WithFields(log.Fields{
		"entries": stats.Entries,
		"files":   stats.Files,
	}).Info("extracted")

	manifest, err := organize.Organize(cfg.OutputDir)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Archive:   cfg.ArchivePath,
		OutputDir: cfg.OutputDir,
		Stats:     stats,
		Manifest:  manifest,
	}, nil
}

func lockDestination(dest string) (*flock.Flock, error) {
	dir := organize.OutputDir(dest)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create organizer directory: %w", err)
	}
	lock := flock.New(filepath.Join(dir, lockName))
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", util.ErrDestinationLocked, dest)
	}
	return lock, nil
}

// Extract writes every entry of the archive at archivePath below dest,
// recreating the archive's directory structure and overwriting existing
// files. Entries that would land outside dest fail with
// util.ErrIllegalEntryPath.
func Extract(archivePath, dest string) (Stats, error) {
	var stats Stats

	// With GODEBUG=zipinsecurepath=0 the reader itself refuses unsafe names;
	// otherwise the per-entry IsLocal check below does.
	zrc, err := zip.OpenReader(archivePath)
	if errors.Is(err, zip.ErrInsecurePath) {
		zrc.Close()
		return stats, fmt.Errorf("%w: %s", util.ErrIllegalEntryPath, archivePath)
	}
	if err != nil {
		return stats, fmt.Errorf("open archive %s: %w", archivePath, err)
	}
	defer zrc.Close()

	for _, f := range zrc.File {
		if !filepath.IsLocal(f.Name) {
			return stats, fmt.Errorf("%w: %q", util.ErrIllegalEntryPath, f.Name)
		}
		target := filepath.Join(dest, filepath.FromSlash(f.Name))
		stats.Entries++

		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return stats, fmt.Errorf("create directory %s: %w", f.Name, err)
			}
			continue
		}

		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return stats, fmt.Errorf("create directory for %s: %w", f.Name, err)
		}
		n, err := writeEntry(f, target)
		if err != nil {
			return stats, err
		}
		stats.Files++
		stats.Bytes += uint64(n)
		log.WithField("entry", f.Name).Debug("extracted entry")
	}
	return stats, nil
}

func writeEntry(f *zip.File, target string) (int64, error) {
	rc, err := f.Open()
	if err != nil {
		return 0, fmt.Errorf("open entry %s: %w", f.Name, err)
	}
	defer rc.Close()

	out, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return 0, err
	}
	defer out.Close()

	n, err := io.Copy(out, rc)
	if err != nil {
		return n, fmt.Errorf("read entry %s: %w", f.Name, err)
	}
	return n, out.Close()
}
