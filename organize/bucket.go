package organize

import (
	"path"
	"path/filepath"
	"strings"
)

// Bucket is one of the fixed classification categories.
type Bucket int

const (
	Images Bucket = iota
	Audio
	Other
)

// Buckets lists every bucket in manifest order.
var Buckets = []Bucket{Images, Audio, Other}

var bucketNames = [...]string{
	Images: "images",
	Audio:  "audio",
	Other:  "other",
}

func (b Bucket) String() string {
	if b < Images || b > Other {
		return "unknown"
	}
	return bucketNames[b]
}

// extensionBuckets maps a lower-cased extension, dot included, to its bucket.
// Anything missing from the table is Other.
var extensionBuckets = map[string]Bucket{
	".png":  Images,
	".jpg":  Images,
	".jpeg": Images,
	".gif":  Images,
	".webp": Images,
	".svg":  Images,
	".bmp":  Images,

	".mp3":  Audio,
	".wav":  Audio,
	".ogg":  Audio,
	".m4a":  Audio,
	".aac":  Audio,
	".flac": Audio,
}

// Classify returns the bucket for a file name based solely on its
// lower-cased extension.
func Classify(name string) Bucket {
	if b, ok := extensionBuckets[strings.ToLower(filepath.Ext(name))]; ok {
		return b
	}
	return Other
}

// excludedNames are APK internals that are never sorted.
var excludedNames = map[string]struct{}{
	"AndroidManifest.xml": {},
	"classes.dex":         {},
	"resources.arsc":      {},
}

// Excluded reports whether a file name is skipped by the organizer:
// hidden files and the fixed APK internals.
func Excluded(name string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	_, ok := excludedNames[name]
	return ok
}

// SkipsEntry reports whether a slash-separated path relative to the
// extraction root is left out of the manifest.
func SkipsEntry(rel string) bool {
	if rel == OutputDirName || strings.HasPrefix(rel, OutputDirName+"/") {
		return true
	}
	return Excluded(path.Base(rel))
}
