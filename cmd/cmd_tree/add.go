package cmd_tree

import (
	"github.com/spf13/cobra"
)

func newAddCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "add <word>...",
		Short: "Store each word under itself, dumping the tree after every insert",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, word := range args {
				if err := s.set(word, word); err != nil {
					return err
				}
				s.dump(cmd.OutOrStdout())
			}
			return nil
		},
	}
}
