package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"cactus/internal/store"
)

// set <key> <value>: value is taken as JSON when it parses, else as a string.
func setCmd(rt *runtime) *cobra.Command {
	var raw bool
	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Store a value under a key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], parseValue(args[1], raw)
			return rt.withStore(modeSave|modeValues, func(s *store.Store) error {
				if err := s.Store(key, value); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "stored %s\n", key)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "store the value as a plain string, never as JSON")
	return cmd
}

func parseValue(arg string, raw bool) any {
	if raw {
		return arg
	}
	var v any
	if err := json.Unmarshal([]byte(arg), &v); err != nil || v == nil {
		return arg
	}
	return v
}
