// Package cmd_tree is the ad hoc driver for a string-valued radix tree.
// Every invocation builds a fresh tree, optionally seeded with --load and
// written back with --save.
package cmd_tree

import (
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rskv-p/rtree/codec"
	"github.com/rskv-p/rtree/pkg/x_cfg"
	"github.com/rskv-p/rtree/pkg/x_log"
	"github.com/rskv-p/rtree/pkg/x_radix"
)

// flags shared by every command of one Register call
type flags struct {
	config   string
	alphabet int
	load     string
	save     string
	debug    bool
}

// session is the tree an invocation works on.
type session struct {
	flags
	cfg   *x_cfg.Config
	tree  *x_radix.Tree[string]
	limit *x_radix.LimitAllocator // nil when memory_limit is 0
	log   zerolog.Logger
}

// Register adds the tree commands and their persistent flags to root.
func Register(root *cobra.Command) {
	s := &session{}

	pf := root.PersistentFlags()
	pf.StringVar(&s.config, "config", "", "config file (default $"+x_cfg.EnvConfigPath+" or ./rtree.json)")
	pf.IntVar(&s.alphabet, "alphabet", 0, "alphabet size, overrides tree.alphabet_size")
	pf.StringVar(&s.load, "load", "", "seed the tree from a JSON-lines export")
	pf.StringVar(&s.save, "save", "", "write the tree as JSON lines after the command")
	pf.BoolVar(&s.debug, "debug", false, "debug logging")

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return s.open()
	}
	root.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		return s.close()
	}

	root.AddCommand(
		newSetCmd(s),
		newGetCmd(s),
		newRemoveCmd(s),
		newPrefixCmd(s),
		newMapCmd(s),
		newDumpCmd(s),
		newScriptCmd(s),
		newFillCmd(s),
		newExportCmd(s),
		newAddCmd(s),
	)
}

func (s *session) open() error {
	cfg, err := x_cfg.Load(s.config)
	if err != nil {
		return err
	}
	if s.alphabet != 0 {
		cfg.Tree.AlphabetSize = s.alphabet
	}
	if s.debug {
		cfg.Log.Level = "debug"
	}
	s.cfg = cfg
	x_log.InitWithConfig(&cfg.Log, "rtree")
	s.log = x_log.New("cmd_tree")

	tree, limit, err := NewFromConfig(cfg.Tree, x_radix.WithLogger(x_log.New("x_radix")))
	if err != nil {
		return err
	}
	s.tree, s.limit = tree, limit

	if s.load != "" {
		if err := s.seed(s.load); err != nil {
			return err
		}
	}
	return nil
}

func (s *session) close() error {
	defer x_log.Close()
	if s.tree == nil {
		return nil
	}
	defer s.tree.Free()

	if s.save == "" {
		return nil
	}
	f, err := os.Create(s.save)
	if err != nil {
		return errors.Wrap(err, "save")
	}
	n, err := codec.EncodeEntries(f, s.tree)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return errors.Wrapf(err, "save %s", s.save)
	}
	s.log.Debug().Str("file", s.save).Int("entries", n).Msg("saved")
	return nil
}

func (s *session) seed(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "load")
	}
	defer f.Close()

	n, err := codec.DecodeEntries(f, func(e codec.Entry) error {
		return s.tree.Set([]byte(e.Key), e.Value)
	})
	if err != nil {
		return errors.Wrapf(err, "load %s", path)
	}
	s.log.Debug().Str("file", path).Int("entries", n).Msg("loaded")
	return nil
}

// NewFromConfig builds a string tree sized by cfg. A positive memory limit
// puts the tree behind a LimitAllocator, which is returned as well.
func NewFromConfig(cfg x_cfg.TreeConfig, opts ...x_radix.Option) (*x_radix.Tree[string], *x_radix.LimitAllocator, error) {
	var limit *x_radix.LimitAllocator
	if cfg.MemoryLimit > 0 {
		limit = x_radix.NewLimitAllocator(cfg.MemoryLimit)
		opts = append(opts, x_radix.WithAllocator(limit))
	}
	if cfg.MaxKeyLen > 0 {
		opts = append(opts, x_radix.WithMaxKeyLen(cfg.MaxKeyLen))
	}
	tree, err := x_radix.New[string](cfg.AlphabetSize, nil, opts...)
	if err != nil {
		return nil, nil, errors.Wrap(err, "new tree")
	}
	return tree, limit, nil
}
