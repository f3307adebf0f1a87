package cmd_tree

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/rskv-p/rtree/codec"
)

func newExportCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "export [file]",
		Short: "Write every entry as JSON lines",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var w io.Writer = cmd.OutOrStdout()
			if len(args) == 1 {
				f, err := os.Create(args[0])
				if err != nil {
					return errors.Wrap(err, "export")
				}
				defer f.Close()
				w = f
			}
			n, err := codec.EncodeEntries(w, s.tree)
			if err != nil {
				return errors.Wrap(err, "export")
			}
			s.log.Debug().Int("entries", n).Msg("exported")
			return nil
		},
	}
}
