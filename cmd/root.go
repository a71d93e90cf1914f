package cmd

import (
	"github.com/grovetools/navcoord/cli"
	"github.com/spf13/cobra"
)

// NewRootCmd assembles the navdemo command tree.
func NewRootCmd() *cobra.Command {
	root := cli.NewStandardCommand(
		"navdemo",
		"Tabbed navigation demo built on navcoord coordinators",
	)
	root.Long = `Runs a two-tab terminal app (Home and Profile) where each tab keeps its own
navigation stack. The navigation state can be saved and restored between runs.`

	root.AddCommand(NewRunCmd())
	root.AddCommand(NewStateCmd())
	root.AddCommand(NewConfigCmd())
	root.AddCommand(cli.NewVersionCommand("navdemo"))

	cli.ApplyStyledHelpRecursive(root)
	return root
}
