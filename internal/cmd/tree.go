package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dendrascience/apkextract/organize"
)

// NewTreeCmd creates and returns the tree subcommand for the apkextract CLI.
func NewTreeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tree DIR",
		Short: "Render the manifest of an organized tree",
		Long: `Read DIR/assets_organized/manifest.json and print every bucket with the
original paths of its files as a tree.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			manifest, err := organize.LoadManifest(organize.ManifestPath(args[0]))
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, renderManifestTree(organize.OutputDir(args[0]), manifest, shouldColorize(w)))
			return nil
		},
	}
}
