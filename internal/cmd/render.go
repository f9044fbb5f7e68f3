package cmd

import (
	"fmt"
	"io"
	"os"
	"path"

	"github.com/disiqueira/gotree/v3"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
	"github.com/taigrr/colorhash"

	"github.com/dendrascience/apkextract/organize"
)

func shouldColorize(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// bucketLabel returns the bucket name, colored with a color derived from
// the name so a bucket looks the same in every run.
func bucketLabel(b organize.Bucket, colorize bool) string {
	name := b.String()
	if !colorize {
		return name
	}
	code := colorhash.HashString(name) % 6
	if code < 0 {
		code = -code
	}
	return fmt.Sprintf("\x1b[%dm%s\x1b[0m", 31+code, name)
}

func renderSummary(m organize.Manifest, colorize bool) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.SetTitle("Organized files")
	tw.AppendHeader(table.Row{"Bucket", "Files"})

	counts := m.Counts()
	for _, b := range organize.Buckets {
		tw.AppendRow(table.Row{bucketLabel(b, colorize), counts[b]})
	}
	tw.AppendFooter(table.Row{"total", m.Len()})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignFooter: text.AlignRight},
	})
	return tw.Render()
}

// manifestTree nests manifest paths below their bucket by directory.
type manifestTree struct {
	root gotree.Tree
	dirs map[string]gotree.Tree
}

func (t manifestTree) dir(bucket gotree.Tree, key, dirPath string) gotree.Tree {
	if dirPath == "." || dirPath == "" {
		return bucket
	}
	k := key + "/" + dirPath
	if d, ok := t.dirs[k]; ok {
		return d
	}
	parent := t.dir(bucket, key, path.Dir(dirPath))
	d := parent.Add(path.Base(dirPath) + "/")
	t.dirs[k] = d
	return d
}

func renderManifestTree(rootLabel string, m organize.Manifest, colorize bool) string {
	t := manifestTree{root: gotree.New(rootLabel), dirs: make(map[string]gotree.Tree)}
	for _, b := range organize.Buckets {
		paths := m.Paths(b)
		bucket := t.root.Add(fmt.Sprintf("%s (%d)", bucketLabel(b, colorize), len(paths)))
		for _, p := range paths {
			t.dir(bucket, b.String(), path.Dir(p)).Add(path.Base(p))
		}
	}
	return t.root.Print()
}
