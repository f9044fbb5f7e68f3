package cmd

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/dendrascience/apkextract/organize"
	"github.com/dendrascience/apkextract/util"
)

// NewListCmd creates and returns the list subcommand for the apkextract CLI.
// It shows where each archive entry would be sorted without extracting anything.
func NewListCmd() *cobra.Command {
	var showExcluded bool

	cmd := &cobra.Command{
		Use:   "list ARCHIVE",
		Short: "List archive entries with the bucket each would be sorted into",
		Long: `List the file entries of ARCHIVE in archive order together with their
uncompressed size and the bucket the organizer would assign. Nothing is
written to disk.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd.OutOrStdout(), args[0], showExcluded)
		},
	}

	cmd.Flags().BoolVar(&showExcluded, "excluded", false, "Also show entries the organizer skips")

	return cmd
}

func runList(w io.Writer, archivePath string, showExcluded bool) error {
	entries, err := util.ListArchive(archivePath)
	if err != nil {
		return err
	}

	colorize := shouldColorize(w)
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Entry", "Size", "Bucket"})

	var files, skipped int
	var total uint64
	for _, e := range entries {
		if e.IsDir {
			continue
		}
		files++
		total += e.Size
		bucket := bucketLabel(organize.Classify(e.Name), colorize)
		if organize.SkipsEntry(e.Name) {
			skipped++
			if !showExcluded {
				continue
			}
			bucket = "excluded"
		}
		tw.AppendRow(table.Row{e.Name, humanize.Bytes(e.Size), bucket})
	}
	tw.AppendFooter(table.Row{fmt.Sprintf("%d files, %d skipped", files, skipped), humanize.Bytes(total), ""})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignFooter: text.AlignRight},
	})

	fmt.Fprintln(w, tw.Render())
	return nil
}
