package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"cactus/internal/store"
)

// query <key> --where field=value: the stored value must be a list of objects.
func queryCmd(rt *runtime) *cobra.Command {
	var where []string
	cmd := &cobra.Command{
		Use:   "query <key>",
		Short: "Print the objects in a stored list that match every --where",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			match, err := parseWhere(where)
			if err != nil {
				return err
			}
			return rt.withStore(modeValues, func(s *store.Store) error {
				seq, err := store.Query(s, args[0], match)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				for item := range seq {
					b, err := json.Marshal(item)
					if err != nil {
						return err
					}
					fmt.Fprintln(out, string(b))
				}
				return nil
			})
		},
	}
	cmd.Flags().StringArrayVar(&where, "where", nil, "field=value filter (repeatable)")
	return cmd
}

// parseWhere turns field=value clauses into a predicate comparing the
// field's printed value. No clauses match everything.
func parseWhere(clauses []string) (func(map[string]any) bool, error) {
	if len(clauses) == 0 {
		return nil, nil
	}
	want := make(map[string]string, len(clauses))
	for _, c := range clauses {
		field, value, ok := strings.Cut(c, "=")
		if !ok || field == "" {
			return nil, fmt.Errorf("invalid --where %q, expected field=value", c)
		}
		want[field] = value
	}
	return func(item map[string]any) bool {
		for field, value := range want {
			v, ok := item[field]
			if !ok || fmt.Sprint(v) != value {
				return false
			}
		}
		return true
	}, nil
}
