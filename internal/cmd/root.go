package cmd

import (
	"github.com/apex/log"
	"github.com/spf13/cobra"

	"github.com/dendrascience/apkextract/version"
)

// NewRootCmd creates and returns the root cobra command for the apkextract CLI.
// It sets up all subcommands, command groups, and logging.
func NewRootCmd() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "apkextract",
		Short: "apkextract - Extract APK archives and sort their assets",
		Long: `apkextract unpacks a ZIP-format archive, usually an Android APK, and sorts
the extracted files into images, audio and other by file extension.

The sorted copies land in <output>/assets_organized/<bucket>/ next to a
manifest.json listing every file's original path per bucket.

Use subcommands to perform different operations:
  - extract: Extract an archive and organize its files
  - organize: Organize an already extracted tree
  - list: Show archive entries and the bucket each would land in
  - tree: Render the manifest of an organized tree`,
		Version:       version.GetFullVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			setupLogging(cmd.ErrOrStderr(), level)
		},
	}

	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")

	groupArchive := "archive"
	groupInspect := "inspect"

	rootCmd.AddGroup(&cobra.Group{
		ID:    groupArchive,
		Title: "Archive Operations",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupInspect,
		Title: "Inspection Commands",
	})

	extractCmd := NewExtractCmd()
	organizeCmd := NewOrganizeCmd()
	listCmd := NewListCmd()
	treeCmd := NewTreeCmd()

	extractCmd.GroupID = groupArchive
	organizeCmd.GroupID = groupArchive
	listCmd.GroupID = groupInspect
	treeCmd.GroupID = groupInspect

	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(organizeCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(treeCmd)

	return rootCmd
}
