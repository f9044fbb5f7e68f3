package organize

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
)

// Manifest records, per bucket, the paths of the sorted files relative to
// the extraction root, in walk order. Field order is the serialized key order.
type Manifest struct {
	Images []string `json:"images"`
	Audio  []string `json:"audio"`
	Other  []string `json:"other"`
}

// NewManifest returns a manifest whose buckets encode as [] rather than null.
func NewManifest() Manifest {
	return Manifest{Images: []string{}, Audio: []string{}, Other: []string{}}
}

func (m *Manifest) bucket(b Bucket) *[]string {
	switch b {
	case Images:
		return &m.Images
	case Audio:
		return &m.Audio
	default:
		return &m.Other
	}
}

// Add appends rel to bucket b.
func (m *Manifest) Add(b Bucket, rel string) {
	list := m.bucket(b)
	*list = append(*list, rel)
}

// Paths returns the recorded paths of bucket b.
func (m Manifest) Paths(b Bucket) []string {
	return *m.bucket(b)
}

// Counts returns the number of files per bucket.
func (m Manifest) Counts() map[Bucket]int {
	counts := make(map[Bucket]int, len(Buckets))
	for _, b := range Buckets {
		counts[b] = len(m.Paths(b))
	}
	return counts
}

// Len returns the number of files across all buckets.
func (m Manifest) Len() int {
	total := 0
	for _, b := range Buckets {
		total += len(m.Paths(b))
	}
	return total
}

// Encode writes m as indented JSON. Non-ASCII and HTML characters are
// written verbatim.
func (m Manifest) Encode(w io.Writer) error {
	if m.Images == nil || m.Audio == nil || m.Other == nil {
		m = m.filled()
	}
	je := json.NewEncoder(w)
	je.SetEscapeHTML(false)
	je.SetIndent("", "  ")
	return je.Encode(m)
}

func (m Manifest) filled() Manifest {
	for _, b := range Buckets {
		list := m.bucket(b)
		if *list == nil {
			*list = []string{}
		}
	}
	return m
}

// Save writes the manifest to path through a temporary sibling file so a
// reader never observes a partial manifest.
func (m Manifest) Save(path string) error {
	tmp := fmt.Sprintf("%s.%s.tmp", path, uuid.NewString())
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	if err := m.Encode(f); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, path)
}

// LoadManifest reads a manifest written by Save.
func LoadManifest(path string) (Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return Manifest{}, err
	}
	defer f.Close()

	var m Manifest
	if err := json.NewDecoder(f).Decode(&m); err != nil {
		return Manifest{}, fmt.Errorf("decode manifest %s: %w", path, err)
	}
	return m.filled(), nil
}
