package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"cactus/internal/store"
)

func getCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Print the value stored under a key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return rt.withStore(modeValues, func(s *store.Store) error {
				v, err := s.Get(args[0])
				if err != nil {
					return err
				}
				return printValue(cmd.OutOrStdout(), v)
			})
		},
	}
}

// printValue writes strings verbatim and everything else as indented JSON.
func printValue(w io.Writer, v any) error {
	if s, ok := v.(string); ok {
		_, err := fmt.Fprintln(w, s)
		return err
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
