package organize

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/apex/log"

	"github.com/dendrascience/apkextract/util"
)

const (
	// OutputDirName is the organizer's own subtree under the extraction root.
	OutputDirName = "assets_organized"
	// ManifestName is the manifest file inside OutputDirName.
	ManifestName = "manifest.json"
)

// OutputDir returns the organizer output directory for an extraction root.
func OutputDir(root string) string {
	return filepath.Join(root, OutputDirName)
}

// ManifestPath returns where Organize writes the manifest for root.
func ManifestPath(root string) string {
	return filepath.Join(OutputDir(root), ManifestName)
}

// Organize copies every qualifying file under root into a flat per-bucket
// directory below OutputDir(root) and writes the manifest.
//
// Bucket copies are keyed by file name only: when two files in different
// directories share a name, the one walked last wins the bucket copy. Both
// stay listed in the manifest and the overwrite is logged as a warning.
func Organize(root string) (Manifest, error) {
	root = filepath.Clean(root)
	outputDir := OutputDir(root)

	info, err := os.Stat(root)
	if err != nil {
		return Manifest{}, err
	}
	if !info.IsDir() {
		return Manifest{}, fmt.Errorf("%w: %s", util.ErrExpectedDirectory, root)
	}

	for _, b := range Buckets {
		if err := os.MkdirAll(filepath.Join(outputDir, b.String()), 0o755); err != nil {
			return Manifest{}, fmt.Errorf("create bucket directory %s: %w", b, err)
		}
	}

	manifest := NewManifest()
	copied := make(map[string]string)

	for path, err := range Files(root) {
		if err != nil {
			return Manifest{}, fmt.Errorf("walk %s: %w", root, err)
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return Manifest{}, fmt.Errorf("relative path of %s: %w", path, err)
		}
		rel = filepath.ToSlash(rel)

		name := filepath.Base(path)
		bucket := Classify(name)
		dest := filepath.Join(outputDir, bucket.String(), name)

		if prev, ok := copied[dest]; ok {
			log.WithFields(log.Fields{
				"bucket":   bucket,
				"path":     rel,
				"replaces": prev,
			}).Warn("bucket copy overwritten by file with the same name")
		}
		if err := util.CopyFile(path, dest); err != nil {
			return Manifest{}, fmt.Errorf("copy %s: %w", rel, err)
		}
		copied[dest] = rel
		manifest.Add(bucket, rel)

		log.WithFields(log.Fields{"bucket": bucket, "path": rel}).Debug("organized")
	}

	manifestPath := ManifestPath(root)
	if err := manifest.Save(manifestPath); err != nil {
		return Manifest{}, fmt.Errorf("write manifest: %w", err)
	}

	log.WithFields(log.Fields{
		"images": len(manifest.Images),
		"audio":  len(manifest.Audio),
		"other":  len(manifest.Other),
		"dir":    outputDir,
	}).Info("organized files")

	return manifest, nil
}
