package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dendrascience/apkextract/organize"
)

// NewOrganizeCmd creates and returns the organize subcommand for the apkextract CLI.
func NewOrganizeCmd() *cobra.Command {
	var showTree bool

	cmd := &cobra.Command{
		Use:   "organize DIR",
		Short: "Sort an already extracted tree into images, audio and other",
		Long: `Run only the organize step on DIR, a directory that already holds
extracted archive contents. Files are copied into DIR/assets_organized and
DIR/assets_organized/manifest.json is rewritten.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			manifest, err := organize.Organize(args[0])
			if err != nil {
				return err
			}
			printOrganized(cmd.OutOrStdout(), args[0], manifest, showTree)
			return nil
		},
	}

	cmd.Flags().BoolVar(&showTree, "tree", false, "Print the organized files as a tree")

	return cmd
}
