package cmd_tree

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
)

// The operations below are shared by the one-shot commands and script.

func (s *session) set(key, value string) error {
	if err := s.tree.Set([]byte(key), value); err != nil {
		return errors.Wrapf(err, "set %q", key)
	}
	s.log.Debug().Str("key", key).Int("entries", s.tree.Len()).Msg("set")
	return nil
}

func (s *session) get(w io.Writer, key string) error {
	v, err := s.tree.Get([]byte(key))
	if err != nil {
		return errors.Wrapf(err, "get %q", key)
	}
	fmt.Fprintln(w, v)
	return nil
}

func (s *session) remove(key string) error {
	if err := s.tree.Remove([]byte(key)); err != nil {
		return errors.Wrapf(err, "rm %q", key)
	}
	s.log.Debug().Str("key", key).Int("entries", s.tree.Len()).Msg("removed")
	return nil
}

func (s *session) prefix(w io.Writer, p string) error {
	it, err := s.tree.Prefix([]byte(p))
	if err != nil {
		return errors.Wrapf(err, "prefix %q", p)
	}
	for k, v := range it.All() {
		fmt.Fprintf(w, "%s\t%s\n", k, v)
	}
	return nil
}

func (s *session) mapAll(w io.Writer) {
	s.tree.Map(func(k []byte, v string) {
		fmt.Fprintf(w, "%s\t%s\n", k, v)
	})
}

var statsStyle = lipgloss.NewStyle().Bold(true)

func (s *session) dump(w io.Writer) {
	s.tree.Dump(w)
	if s.limit == nil {
		return
	}
	fmt.Fprintln(w, statsStyle.Render(fmt.Sprintf("-- MEMORY in_use=%d peak=%d limit=%d",
		s.limit.InUse(), s.limit.Peak(), s.limit.Limit())))
}
