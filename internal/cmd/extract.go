package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/dendrascience/apkextract/config"
	"github.com/dendrascience/apkextract/extract"
	"github.com/dendrascience/apkextract/organize"
	"github.com/dendrascience/apkextract/util"
)

// NewExtractCmd creates and returns the extract subcommand for the apkextract CLI.
// It runs the whole extract-and-organize pipeline.
func NewExtractCmd() *cobra.Command {
	var (
		configPath string
		outputDir  string
		showTree   bool
	)

	cmd := &cobra.Command{
		Use:   "extract [ARCHIVE]",
		Short: "Extract an archive and sort its files into images, audio and other",
		Long: `Extract a ZIP-format archive into the output directory and organize the result.

ARCHIVE defaults to the archive_path of the config file, or
"Durood sharif with audio.apk" without one. The output directory is
recreated idempotently; existing files are overwritten.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if len(args) > 0 {
				cfg.ArchivePath = args[0]
			}
			if cmd.Flags().Changed("output") {
				cfg.OutputDir = outputDir
			}
			if verbose, _ := cmd.Flags().GetBool("verbose"); !verbose {
				log.SetLevel(cfg.Level())
			}
			return runExtract(cmd.OutOrStdout(), cfg, showTree)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to a TOML config file")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory (default \"extracted_apk\")")
	cmd.Flags().BoolVar(&showTree, "tree", false, "Print the organized files as a tree")

	return cmd
}

func runExtract(w io.Writer, cfg config.Config, showTree bool) error {
	result, err := extract.Run(cfg)
	if err != nil {
		if errors.Is(err, util.ErrArchiveNotFound) {
			log.WithField("archive", cfg.ArchivePath).Error("archive file not found")
		}
		fmt.Fprintln(w, "\n✗ Extraction failed!")
		return err
	}

	fmt.Fprintf(w, "Extracted %d files (%s) to %s\n\n",
		result.Stats.Files, humanize.Bytes(result.Stats.Bytes), result.OutputDir)
	printOrganized(w, result.OutputDir, result.Manifest, showTree)
	fmt.Fprintln(w, "\n✓ Extraction complete!")
	return nil
}

func printOrganized(w io.Writer, root string, manifest organize.Manifest, showTree bool) {
	colorize := shouldColorize(w)
	fmt.Fprintln(w, renderSummary(manifest, colorize))
	if showTree {
		fmt.Fprintln(w, renderManifestTree(organize.OutputDirName, manifest, colorize))
	}
	fmt.Fprintf(w, "\nFiles organized in: %s\n", organize.OutputDir(root))
}
