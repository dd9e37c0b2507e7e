package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"cactus/internal/store"
)

func keysCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "List keys in sorted order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rt.withStore(0, func(s *store.Store) error {
				for _, k := range s.Keys() {
					fmt.Fprintln(cmd.OutOrStdout(), k)
				}
				return nil
			})
		},
	}
}

func countCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "count",
		Short: "Print the number of entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rt.withStore(0, func(s *store.Store) error {
				fmt.Fprintln(cmd.OutOrStdout(), s.Count())
				return nil
			})
		},
	}
}

func existsCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "exists <key>",
		Short: "Report whether a key is present",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return rt.withStore(0, func(s *store.Store) error {
				fmt.Fprintln(cmd.OutOrStdout(), s.Exists(args[0]))
				return nil
			})
		},
	}
}
