package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"cactus/internal/store"
)

func deleteCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <key>",
		Short: "Remove a key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return rt.withStore(modeSave, func(s *store.Store) error {
				if !s.Delete(args[0]) {
					return fmt.Errorf("%w: %q", store.ErrNotFound, args[0])
				}
				fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
				return nil
			})
		},
	}
}

// clear empties the store; auto-save then writes the empty document.
func clearCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rt.withStore(modeSave, func(s *store.Store) error {
				n := s.Count()
				s.Clear()
				fmt.Fprintf(cmd.OutOrStdout(), "cleared %d entries\n", n)
				return nil
			})
		},
	}
}

// destroy deletes the file without loading it first.
func destroyCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "destroy",
		Short: "Delete the store file from disk",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rt.withStore(modeNoLoad, func(s *store.Store) error {
				if err := s.Destroy(); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "destroyed %s\n", s.Path())
				return nil
			})
		},
	}
}
