package cmd_tree

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/shlex"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/rskv-p/rtree/pkg/x_radix"
	"github.com/rskv-p/rtree/recover"
)

// ErrScript marks a line script cannot run.
var ErrScript = errors.New("bad script line")

func newScriptCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "script <file|->",
		Short: "Run tree commands from a file, one per line",
		Long: `Each line is split like a shell command line. Known commands:
  set <key> <value>, get <key>, rm <key>, prefix [prefix], map, dump
Blank lines and lines starting with # are skipped. A get on a missing
key prints "<key>: not found" and the script goes on.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return errors.Wrap(err, "script")
				}
				defer f.Close()
				in = f
			}
			return s.runScript(in, cmd.OutOrStdout())
		},
	}
}

func (s *session) runScript(r io.Reader, w io.Writer) error {
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		words, err := shlex.Split(text)
		if err != nil {
			return errors.Wrapf(ErrScript, "line %d: %v", line, err)
		}
		err = recover.Guard(fmt.Sprintf("script line %d", line), func() error {
			return s.exec(w, words)
		})
		if err != nil {
			return errors.Wrapf(err, "line %d", line)
		}
	}
	return errors.Wrap(sc.Err(), "script")
}

func (s *session) exec(w io.Writer, words []string) error {
	if len(words) == 0 {
		return nil
	}
	cmd, args := words[0], words[1:]

	want := map[string][2]int{
		"set":    {2, 2},
		"get":    {1, 1},
		"rm":     {1, 1},
		"prefix": {0, 1},
		"map":    {0, 0},
		"dump":   {0, 0},
	}
	n, ok := want[cmd]
	if !ok {
		return errors.Wrapf(ErrScript, "unknown command %q", cmd)
	}
	if len(args) < n[0] || len(args) > n[1] {
		return errors.Wrapf(ErrScript, "%s: %d arguments", cmd, len(args))
	}

	switch cmd {
	case "set":
		return s.set(args[0], args[1])
	case "get":
		err := s.get(w, args[0])
		if errors.Is(err, x_radix.ErrNotFound) {
			fmt.Fprintf(w, "%s: not found\n", args[0])
			return nil
		}
		return err
	case "rm":
		return s.remove(args[0])
	case "prefix":
		return s.prefix(w, strings.Join(args, ""))
	case "map":
		s.mapAll(w)
	case "dump":
		s.dump(w)
	}
	return nil
}
