package cmd

import (
	"fmt"
	"os"

	"github.com/rskv-p/rtree/cmd/cmd_tree"
	"github.com/rskv-p/rtree/recover"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "rtree",
	Short:         "Bounded radix tree driver",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := recover.Guard("rtree", rootCmd.Execute); err != nil {
		fmt.Fprintln(os.Stderr, "rtree:", err)
		os.Exit(1)
	}
}

func init() {
	cmd_tree.Register(rootCmd)
}
