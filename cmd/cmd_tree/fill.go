package cmd_tree

import (
	"fmt"
	"strconv"

	"github.com/nats-io/nuid"
	"github.com/spf13/cobra"
)

func newFillCmd(s *session) *cobra.Command {
	var (
		count  int
		prefix string
	)
	cmd := &cobra.Command{
		Use:   "fill",
		Short: "Insert random keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := nuid.New()
			for i := 0; i < count; i++ {
				if err := s.set(prefix+ids.Next(), strconv.Itoa(i)); err != nil {
					return err
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "inserted %d, entries %d\n", count, s.tree.Len())
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 100, "number of keys")
	cmd.Flags().StringVarP(&prefix, "prefix", "p", "", "prefix for every key")
	return cmd
}
