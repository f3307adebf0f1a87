package cmd_tree

import (
	"github.com/spf13/cobra"
)

func newPrefixCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "prefix [prefix]",
		Short: "List entries whose key starts with prefix",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var p string
			if len(args) == 1 {
				p = args[0]
			}
			return s.prefix(cmd.OutOrStdout(), p)
		},
	}
}

func newMapCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "map",
		Short: "List every entry in key order",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			s.mapAll(cmd.OutOrStdout())
		},
	}
}

func newDumpCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "Print the node structure",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			s.dump(cmd.OutOrStdout())
		},
	}
}
