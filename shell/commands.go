package shell

import (
	"sort"
	"strings"

	"github.com/janleigh/ms-dos-clone/cmdline"
)

// command is one entry of the dispatch table. run prints its own output
// and returns the underlying failure, if any, for the command log.
type command struct {
	name    string
	aliases []string
	help    string
	run     func(s *Session, l cmdline.Line) error
}

// table maps lower-case command names and aliases to commands.
type table struct {
	byName map[string]*command
	list   []*command
	names  []string
}

func newTable(cmds ...*command) *table {
	t := &table{byName: make(map[string]*command)}
	for _, c := range cmds {
		t.list = append(t.list, c)
		for _, n := range append([]string{c.name}, c.aliases...) {
			t.byName[n] = c
			t.names = append(t.names, n)
		}
	}
	sort.Slice(t.list, func(i, j int) bool { return t.list[i].name < t.list[j].name })
	sort.Strings(t.names)
	return t
}

func (t *table) lookup(name string) (*command, bool) {
	c, ok := t.byName[strings.ToLower(name)]
	return c, ok
}

func builtins() *table {
	return newTable(
		&command{name: "ver", aliases: []string{"version"}, help: "Shows version information", run: cmdVer},
		&command{name: "cls", aliases: []string{"clear"}, help: "Clears the screen", run: cmdCls},
		&command{name: "help", help: "Shows this help message", run: cmdHelp},
		&command{name: "dir", aliases: []string{"ls"}, help: "Lists files and directories", run: cmdDir},
		&command{name: "type", aliases: []string{"cat"}, help: "Displays the contents of a file", run: cmdType},
		&command{name: "copy", aliases: []string{"cp"}, help: "Copies a file", run: cmdCopy},
		&command{name: "ren", aliases: []string{"rename"}, help: "Renames a file", run: cmdRen},
		&command{name: "move", aliases: []string{"mv"}, help: "Moves a file", run: cmdMove},
		&command{name: "del", aliases: []string{"delete", "rm"}, help: "Deletes a file", run: cmdDel},
		&command{name: "mkdir", aliases: []string{"md"}, help: "Creates a directory", run: cmdMkdir},
		&command{name: "rmdir", aliases: []string{"rd"}, help: "Removes an empty directory", run: cmdRmdir},
		&command{name: "cd", aliases: []string{"chdir"}, help: "Changes the current directory", run: cmdCd},
		&command{name: "echo", help: "Displays messages or toggles command echoing", run: cmdEcho},
		&command{name: "touch", help: "Creates an empty file", run: cmdTouch},
		&command{name: "color", help: "Sets the text colors", run: cmdColor},
		&command{name: "colortest", help: "Displays a color test", run: cmdColorTest},
		&command{name: "exit", help: "Ends the session", run: cmdExit},
	)
}
