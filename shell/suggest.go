package shell

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/janleigh/ms-dos-clone/errors"
)

// badCommand reports an unknown command and, when one is close enough,
// the command the user probably meant.
func (s *Session) badCommand(name string) error {
	s.println("Bad command or file name: " + name)
	if hint, ok := s.commands.suggest(name); ok {
		s.println("Did you mean " + hint + "?")
	}
	return errors.Newf(errors.CodeInvalidInput, "unknown command: %s", name)
}

// suggest returns the primary name of the best fuzzy match for name
// among all command names and aliases.
func (t *table) suggest(name string) (string, bool) {
	if name == "" {
		return "", false
	}
	matches := fuzzy.Find(name, t.names)
	if len(matches) == 0 {
		return "", false
	}
	cmd, _ := t.lookup(t.names[matches[0].Index])
	return strings.ToUpper(cmd.name), true
}
