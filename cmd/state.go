package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/grovetools/navcoord/cli"
	"github.com/grovetools/navcoord/state"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func NewStateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "state",
		Short: "Inspect or clear the saved navigation state",
	}
	cmd.AddCommand(newStateShowCmd(), newStateClearCmd())
	return cmd
}

func openStore(cmd *cobra.Command) (*state.Store, error) {
	cfg, err := cli.LoadConfig(cli.GetOptions(cmd))
	if err != nil {
		return nil, err
	}
	return state.NewStore(cfg.State.Path)
}

func newStateShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the saved snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(cmd)
			if err != nil {
				return err
			}
			snap, err := store.Load()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if cli.GetOptions(cmd).JSONOutput {
				data, err := json.MarshalIndent(snap, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(data))
				return nil
			}

			if snap.IsEmpty() {
				fmt.Fprintf(out, "No saved state at %s\n", store.Path())
				return nil
			}
			fmt.Fprintf(out, "# Source: %s\n", store.Path())
			data, err := yaml.Marshal(snap)
			if err != nil {
				return err
			}
			fmt.Fprint(out, string(data))
			return nil
		},
	}
}

func newStateClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete the saved snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(cmd)
			if err != nil {
				return err
			}
			if err := store.Clear(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Cleared %s\n", store.Path())
			return nil
		},
	}
}
